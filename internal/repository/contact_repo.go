package repository

import (
	"find-your-doctor/internal/models"

	"gorm.io/gorm"
)

type ContactReportRepository struct {
	db *gorm.DB
}

func NewContactReportRepo(db *gorm.DB) *ContactReportRepository {
	return &ContactReportRepository{db: db}
}

// CreateReport stores a contact form submission
func (r *ContactReportRepository) CreateReport(report *models.ContactReport) error {
	return r.db.Create(report).Error
}

// ListReports retrieves all contact reports, newest first
func (r *ContactReportRepository) ListReports() ([]models.ContactReport, error) {
	var reports []models.ContactReport
	err := r.db.Order("created_at DESC").Find(&reports).Error
	return reports, err
}
