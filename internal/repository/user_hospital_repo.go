package repository

import (
	"errors"

	"find-your-doctor/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrRequestNotFound = errors.New("affiliation request not found")

type HospitalUserRepository struct {
	db *gorm.DB
}

func NewHospitalUserRepo(db *gorm.DB) *HospitalUserRepository {
	return &HospitalUserRepository{db: db}
}

// CreateRequest inserts an affiliation request. The single-pending-per-user
// invariant is re-checked inside the transaction with the user's request
// rows locked, so two concurrent submissions serialize instead of both
// passing the check. MySQL has no partial unique indexes, which is why the
// invariant lives here and not in the schema.
func (r *HospitalUserRepository) CreateRequest(request *models.HospitalUser) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var pending int64
		err := tx.Model(&models.HospitalUser{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND status = ?", request.UserID, models.RequestStatusPending).
			Count(&pending).Error
		if err != nil {
			return err
		}
		if pending > 0 {
			return ErrPendingRequestExists
		}

		request.Status = models.RequestStatusPending
		return tx.Create(request).Error
	})
}

// GetRequestByID retrieves an affiliation request by primary key
func (r *HospitalUserRepository) GetRequestByID(id uint) (*models.HospitalUser, error) {
	var request models.HospitalUser
	err := r.db.Where("id = ?", id).First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return &request, nil
}

// ListRequests retrieves all affiliation requests with the hospital and
// requesting user preloaded, for the admin moderation view
func (r *HospitalUserRepository) ListRequests() ([]models.HospitalUser, error) {
	var requests []models.HospitalUser
	err := r.db.
		Preload("Hospital").
		Preload("User").
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

// UpdateRequestStatus sets a request's status. Re-deciding an already
// decided request rewrites the status; the permissive behavior is kept.
func (r *HospitalUserRepository) UpdateRequestStatus(id uint, status string) error {
	var request models.HospitalUser
	if err := r.db.Select("id").Where("id = ?", id).First(&request).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRequestNotFound
		}
		return err
	}
	return r.db.Model(&models.HospitalUser{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// CountPendingByUser returns how many pending requests a user holds
func (r *HospitalUserRepository) CountPendingByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.HospitalUser{}).
		Where("user_id = ? AND status = ?", userID, models.RequestStatusPending).
		Count(&count).Error
	return count, err
}
