package service

import (
	"find-your-doctor/internal/models"
	"find-your-doctor/internal/repository"

	"github.com/rs/zerolog"
)

// DoctorListResult is one page of the doctor listing
type DoctorListResult struct {
	Items      []models.Doctor `json:"items"`
	TotalCount int64           `json:"total_count"`
	TotalPages int             `json:"total_pages"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
}

type DoctorService struct {
	doctorRepo *repository.DoctorRepository
	log        zerolog.Logger
}

func NewDoctorService(doctorRepo *repository.DoctorRepository, log zerolog.Logger) *DoctorService {
	return &DoctorService{
		doctorRepo: doctorRepo,
		log:        log,
	}
}

// ListDoctors returns one page of doctors for the listing view
func (s *DoctorService) ListDoctors(filter repository.ListFilter) (*DoctorListResult, error) {
	filter.Normalize()

	doctors, total, err := s.doctorRepo.ListDoctors(filter)
	if err != nil {
		return nil, err
	}

	return &DoctorListResult{
		Items:      doctors,
		TotalCount: total,
		TotalPages: totalPages(total, filter.PageSize),
		Page:       filter.Page,
		PageSize:   filter.PageSize,
	}, nil
}

// GetDoctorByID returns a doctor with certifications and affiliations
func (s *DoctorService) GetDoctorByID(id uint) (*models.Doctor, error) {
	return s.doctorRepo.GetDoctorByID(id)
}

// CreateDoctor creates a doctor with certifications and hospital links
func (s *DoctorService) CreateDoctor(doctor *models.Doctor, certifications []models.DoctorCertification, hospitalIDs []uint) error {
	if err := s.doctorRepo.CreateDoctor(doctor, certifications, hospitalIDs); err != nil {
		return err
	}
	s.log.Info().Uint("doctor_id", doctor.ID).Msg("doctor created")
	return nil
}

// UpdateDoctor saves a doctor edit. Certifications and hospital links are
// replaced wholesale, not merged.
func (s *DoctorService) UpdateDoctor(doctor *models.Doctor, certifications []models.DoctorCertification, hospitalIDs []uint) error {
	return s.doctorRepo.UpdateDoctor(doctor, certifications, hospitalIDs)
}
