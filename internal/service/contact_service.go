package service

import (
	"find-your-doctor/internal/models"
	"find-your-doctor/internal/repository"

	"github.com/rs/zerolog"
)

type ContactService struct {
	contactRepo *repository.ContactReportRepository
	log         zerolog.Logger
}

func NewContactService(contactRepo *repository.ContactReportRepository, log zerolog.Logger) *ContactService {
	return &ContactService{
		contactRepo: contactRepo,
		log:         log,
	}
}

// SubmitReport stores a public contact form submission. Failures
// propagate to the caller; a lost report is never swallowed.
func (s *ContactService) SubmitReport(name, contactInfo, message string) (*models.ContactReport, error) {
	report := &models.ContactReport{
		Name:        name,
		ContactInfo: contactInfo,
		Message:     message,
	}
	if err := s.contactRepo.CreateReport(report); err != nil {
		return nil, err
	}

	s.log.Info().Uint("report_id", report.ID).Msg("contact report received")
	return report, nil
}

// ListReports returns all contact reports for the admin view
func (s *ContactService) ListReports() ([]models.ContactReport, error) {
	return s.contactRepo.ListReports()
}
