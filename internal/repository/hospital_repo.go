package repository

import (
	"errors"

	"find-your-doctor/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrHospitalNotFound     = errors.New("hospital not found")
	ErrDuplicateHospital    = errors.New("a hospital with this name already exists in the selected area")
	ErrPendingRequestExists = errors.New("user already has a pending request")
)

type HospitalRepository struct {
	db *gorm.DB
}

func NewHospitalRepo(db *gorm.DB) *HospitalRepository {
	return &HospitalRepository{db: db}
}

// scopedQuery applies the search and geo constraints of the filter.
// The narrowest supplied geo level wins; hospitals outside the selected
// subtree never join.
func (r *HospitalRepository) scopedQuery(f ListFilter) *gorm.DB {
	q := r.db.Model(&models.Hospital{})

	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("hospitals.name LIKE ? OR hospitals.summary LIKE ? OR hospitals.address LIKE ?", like, like, like)
	}

	switch {
	case f.HospitalID != 0:
		q = q.Where("hospitals.id = ?", f.HospitalID)
	case f.AreaID != 0:
		q = q.Where("hospitals.area_id = ?", f.AreaID)
	case f.CityID != 0:
		q = q.Joins("INNER JOIN areas ON areas.id = hospitals.area_id").
			Where("areas.city_id = ?", f.CityID)
	case f.CountryID != 0:
		q = q.Joins("INNER JOIN areas ON areas.id = hospitals.area_id").
			Joins("INNER JOIN cities ON cities.id = areas.city_id").
			Where("cities.country_id = ?", f.CountryID)
	}

	return q
}

// ListHospitals retrieves one page of hospitals matching the filter,
// with the geo chain, phones, facilities and doctors preloaded.
// Returns the page plus the total match count.
func (r *HospitalRepository) ListHospitals(f ListFilter) ([]models.Hospital, int64, error) {
	f.Normalize()

	var total int64
	if err := r.scopedQuery(f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var hospitals []models.Hospital
	err := r.scopedQuery(f).
		Preload("Area.City.Country").
		Preload("Phones").
		Preload("Facilities").
		Preload("Doctors").
		Order("hospitals.name ASC").
		Limit(f.PageSize).
		Offset(f.Offset()).
		Find(&hospitals).Error
	if err != nil {
		return nil, 0, err
	}

	return hospitals, total, nil
}

// GetHospitalByID retrieves a hospital with its full display data
func (r *HospitalRepository) GetHospitalByID(id uint) (*models.Hospital, error) {
	var hospital models.Hospital
	err := r.db.
		Preload("Area.City.Country").
		Preload("Phones").
		Preload("Facilities").
		Preload("Doctors.Certifications").
		Where("id = ?", id).
		First(&hospital).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHospitalNotFound
		}
		return nil, err
	}
	return &hospital, nil
}

// CreateHospitalInput bundles a hospital creation: the row itself, its
// child collections and the owner link created alongside it. The two
// flags select which uniqueness check runs inside the transaction.
type CreateHospitalInput struct {
	Hospital            *models.Hospital
	Phones              []string
	Facilities          []string
	Owner               models.HospitalUser
	DedupeByNameArea    bool
	BlockOnOwnerPending bool
}

// CreateHospital inserts a hospital, its phones and facilities, and the
// owning HospitalUser row in a single transaction. The duplicate checks
// run under row locks inside the same transaction so two concurrent
// submissions cannot both pass.
func (r *HospitalRepository) CreateHospital(in CreateHospitalInput) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if in.BlockOnOwnerPending {
			var pending int64
			err := tx.Model(&models.HospitalUser{}).
				Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("user_id = ? AND status = ?", in.Owner.UserID, models.RequestStatusPending).
				Count(&pending).Error
			if err != nil {
				return err
			}
			if pending > 0 {
				return ErrPendingRequestExists
			}
		}

		if in.DedupeByNameArea {
			var dupes int64
			err := tx.Model(&models.Hospital{}).
				Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("name = ? AND area_id = ?", in.Hospital.Name, in.Hospital.AreaID).
				Count(&dupes).Error
			if err != nil {
				return err
			}
			if dupes > 0 {
				return ErrDuplicateHospital
			}
		}

		if err := tx.Create(in.Hospital).Error; err != nil {
			return err
		}

		for _, phone := range in.Phones {
			child := models.HospitalPhone{HospitalID: in.Hospital.ID, PhoneNumber: phone}
			if err := tx.Create(&child).Error; err != nil {
				return err
			}
		}

		for _, facility := range in.Facilities {
			child := models.HospitalFacility{HospitalID: in.Hospital.ID, FacilityName: facility}
			if err := tx.Create(&child).Error; err != nil {
				return err
			}
		}

		owner := in.Owner
		owner.HospitalID = in.Hospital.ID
		return tx.Create(&owner).Error
	})
}

// UpdateHospital saves the hospital's own columns and replaces both
// child collections. Replace, not merge: existing phones and facilities
// are deleted and the submitted sets inserted in one transaction.
func (r *HospitalRepository) UpdateHospital(hospital *models.Hospital, phones, facilities []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Hospital
		if err := tx.Select("id").Where("id = ?", hospital.ID).First(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrHospitalNotFound
			}
			return err
		}

		err := tx.Model(&models.Hospital{}).
			Where("id = ?", hospital.ID).
			Updates(map[string]interface{}{
				"name":             hospital.Name,
				"area_id":          hospital.AreaID,
				"summary":          hospital.Summary,
				"emergency_status": hospital.EmergencyStatus,
				"address":          hospital.Address,
				"contact_email":    hospital.ContactEmail,
				"website":          hospital.Website,
				"is_private":       hospital.IsPrivate,
				"image_url":        hospital.ImageURL,
			}).Error
		if err != nil {
			return err
		}

		if err := tx.Where("hospital_id = ?", hospital.ID).Delete(&models.HospitalPhone{}).Error; err != nil {
			return err
		}
		for _, phone := range phones {
			child := models.HospitalPhone{HospitalID: hospital.ID, PhoneNumber: phone}
			if err := tx.Create(&child).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("hospital_id = ?", hospital.ID).Delete(&models.HospitalFacility{}).Error; err != nil {
			return err
		}
		for _, facility := range facilities {
			child := models.HospitalFacility{HospitalID: hospital.ID, FacilityName: facility}
			if err := tx.Create(&child).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// ListPendingHospitals retrieves all hospitals awaiting admin moderation
func (r *HospitalRepository) ListPendingHospitals() ([]models.Hospital, error) {
	var hospitals []models.Hospital
	err := r.db.
		Preload("Area.City.Country").
		Preload("Phones").
		Preload("Facilities").
		Preload("Doctors").
		Where("status = ?", models.HospitalStatusPending).
		Order("hospitals.name ASC").
		Find(&hospitals).Error
	return hospitals, err
}

// UpdateHospitalStatus transitions a hospital's lifecycle status.
// Rewriting an unchanged status is allowed, so existence is checked with
// a read rather than inferred from affected rows.
func (r *HospitalRepository) UpdateHospitalStatus(id uint, status string) error {
	var hospital models.Hospital
	if err := r.db.Select("id").Where("id = ?", id).First(&hospital).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrHospitalNotFound
		}
		return err
	}
	return r.db.Model(&models.Hospital{}).
		Where("id = ?", id).
		Update("status", status).Error
}
