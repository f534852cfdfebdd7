package service

import (
	"errors"

	"find-your-doctor/internal/models"
	"find-your-doctor/internal/repository"

	"github.com/rs/zerolog"
)

var (
	ErrAdminsCannotRequest = errors.New("admins cannot send affiliation requests")
	ErrAgreementsRequired  = errors.New("you must agree to the privacy policy and terms of service")
)

// AffiliationService runs the two-party claim workflow: users request to
// manage a hospital, admins accept or reject.
type AffiliationService struct {
	hospitalUserRepo *repository.HospitalUserRepository
	hospitalRepo     *repository.HospitalRepository
	log              zerolog.Logger
}

func NewAffiliationService(
	hospitalUserRepo *repository.HospitalUserRepository,
	hospitalRepo *repository.HospitalRepository,
	log zerolog.Logger,
) *AffiliationService {
	return &AffiliationService{
		hospitalUserRepo: hospitalUserRepo,
		hospitalRepo:     hospitalRepo,
		log:              log,
	}
}

// RequestInput carries one affiliation request submission
type RequestInput struct {
	HospitalID              uint
	UserID                  uint
	Role                    string
	RequestMessage          string
	PrivacyPolicyAgreement  bool
	TermsOfServiceAgreement bool
}

// CreateRequest submits a user's claim on a hospital. Admins are refused,
// both agreements are mandatory, the hospital must exist, and the user
// must not already hold a pending request (enforced transactionally in
// the repository).
func (s *AffiliationService) CreateRequest(in RequestInput) (*models.HospitalUser, error) {
	if in.Role == models.RoleAdmin {
		return nil, ErrAdminsCannotRequest
	}
	if !in.PrivacyPolicyAgreement || !in.TermsOfServiceAgreement {
		return nil, ErrAgreementsRequired
	}

	if _, err := s.hospitalRepo.GetHospitalByID(in.HospitalID); err != nil {
		return nil, err
	}

	request := &models.HospitalUser{
		HospitalID:              in.HospitalID,
		UserID:                  in.UserID,
		RequestMessage:          in.RequestMessage,
		PrivacyPolicyAgreement:  in.PrivacyPolicyAgreement,
		TermsOfServiceAgreement: in.TermsOfServiceAgreement,
	}
	if err := s.hospitalUserRepo.CreateRequest(request); err != nil {
		return nil, err
	}

	s.log.Info().
		Uint("request_id", request.ID).
		Uint("hospital_id", in.HospitalID).
		Uint("user_id", in.UserID).
		Msg("affiliation request created")
	return request, nil
}

// ListRequests returns all affiliation requests for the admin view
func (s *AffiliationService) ListRequests() ([]models.HospitalUser, error) {
	return s.hospitalUserRepo.ListRequests()
}

// AcceptRequest marks a request accepted. The hospital's own status is
// untouched; hospital moderation is a separate admin action.
func (s *AffiliationService) AcceptRequest(id uint) error {
	if err := s.hospitalUserRepo.UpdateRequestStatus(id, models.RequestStatusAccept); err != nil {
		return err
	}
	s.log.Info().Uint("request_id", id).Msg("affiliation request accepted")
	return nil
}

// RejectRequest marks a request rejected
func (s *AffiliationService) RejectRequest(id uint) error {
	if err := s.hospitalUserRepo.UpdateRequestStatus(id, models.RequestStatusReject); err != nil {
		return err
	}
	s.log.Info().Uint("request_id", id).Msg("affiliation request rejected")
	return nil
}
