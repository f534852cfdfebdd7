package service

import (
	"math"

	"find-your-doctor/internal/models"
	"find-your-doctor/internal/repository"

	"github.com/rs/zerolog"
)

// HospitalListResult is one page of the hospital listing
type HospitalListResult struct {
	Items      []models.Hospital `json:"items"`
	TotalCount int64             `json:"total_count"`
	TotalPages int               `json:"total_pages"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
}

type HospitalService struct {
	hospitalRepo     *repository.HospitalRepository
	hospitalUserRepo *repository.HospitalUserRepository
	geoRepo          *repository.GeoRepository
	dedupAllCreates  bool
	log              zerolog.Logger
}

// NewHospitalService wires the hospital listing and lifecycle service.
// dedupAllCreates extends the admin-only name+area duplicate check to
// manager creates as well.
func NewHospitalService(
	hospitalRepo *repository.HospitalRepository,
	hospitalUserRepo *repository.HospitalUserRepository,
	geoRepo *repository.GeoRepository,
	dedupAllCreates bool,
	log zerolog.Logger,
) *HospitalService {
	return &HospitalService{
		hospitalRepo:     hospitalRepo,
		hospitalUserRepo: hospitalUserRepo,
		geoRepo:          geoRepo,
		dedupAllCreates:  dedupAllCreates,
		log:              log,
	}
}

// checkArea validates the area reference before any hospital write
func (s *HospitalService) checkArea(areaID uint) error {
	exists, err := s.geoRepo.AreaExists(areaID)
	if err != nil {
		return err
	}
	if !exists {
		return repository.ErrAreaNotFound
	}
	return nil
}

func totalPages(totalCount int64, pageSize int) int {
	return int(math.Ceil(float64(totalCount) / float64(pageSize)))
}

// ListHospitals returns one page of hospitals for the listing view
func (s *HospitalService) ListHospitals(filter repository.ListFilter) (*HospitalListResult, error) {
	filter.Normalize()

	hospitals, total, err := s.hospitalRepo.ListHospitals(filter)
	if err != nil {
		return nil, err
	}

	return &HospitalListResult{
		Items:      hospitals,
		TotalCount: total,
		TotalPages: totalPages(total, filter.PageSize),
		Page:       filter.Page,
		PageSize:   filter.PageSize,
	}, nil
}

// GetHospitalByID returns a hospital with its full display data
func (s *HospitalService) GetHospitalByID(id uint) (*models.Hospital, error) {
	return s.hospitalRepo.GetHospitalByID(id)
}

// CreateHospital creates a hospital on behalf of a user. Admin-created
// hospitals go live immediately with an accepted owner link; manager
// hospitals start pending with a pending link and are blocked while the
// manager already has a pending request outstanding.
func (s *HospitalService) CreateHospital(hospital *models.Hospital, phones, facilities []string, userID uint, role string) error {
	if err := s.checkArea(hospital.AreaID); err != nil {
		return err
	}

	isAdmin := role == models.RoleAdmin

	if isAdmin {
		hospital.Status = models.HospitalStatusActive
	} else {
		hospital.Status = models.HospitalStatusPending
	}

	ownerStatus := models.RequestStatusPending
	if isAdmin {
		ownerStatus = models.RequestStatusAccept
	}

	err := s.hospitalRepo.CreateHospital(repository.CreateHospitalInput{
		Hospital:   hospital,
		Phones:     phones,
		Facilities: facilities,
		Owner: models.HospitalUser{
			UserID: userID,
			Status: ownerStatus,
			// Creator-side links carry both agreements implicitly
			PrivacyPolicyAgreement:  true,
			TermsOfServiceAgreement: true,
		},
		DedupeByNameArea:    isAdmin || s.dedupAllCreates,
		BlockOnOwnerPending: !isAdmin,
	})
	if err != nil {
		return err
	}

	s.log.Info().
		Uint("hospital_id", hospital.ID).
		Uint("user_id", userID).
		Str("status", hospital.Status).
		Msg("hospital created")
	return nil
}

// UpdateHospital saves a hospital edit, replacing the phone and facility
// collections wholesale
func (s *HospitalService) UpdateHospital(hospital *models.Hospital, phones, facilities []string) error {
	if err := s.checkArea(hospital.AreaID); err != nil {
		return err
	}
	return s.hospitalRepo.UpdateHospital(hospital, phones, facilities)
}

// ListPendingHospitals returns hospitals awaiting admin moderation
func (s *HospitalService) ListPendingHospitals() ([]models.Hospital, error) {
	return s.hospitalRepo.ListPendingHospitals()
}

// ApproveHospital activates a pending hospital. The associated
// HospitalUser rows are not re-validated, matching the moderation flow.
func (s *HospitalService) ApproveHospital(id uint) error {
	if err := s.hospitalRepo.UpdateHospitalStatus(id, models.HospitalStatusActive); err != nil {
		return err
	}
	s.log.Info().Uint("hospital_id", id).Msg("hospital approved")
	return nil
}

// RejectHospital deactivates a pending hospital
func (s *HospitalService) RejectHospital(id uint) error {
	if err := s.hospitalRepo.UpdateHospitalStatus(id, models.HospitalStatusInactive); err != nil {
		return err
	}
	s.log.Info().Uint("hospital_id", id).Msg("hospital rejected")
	return nil
}
