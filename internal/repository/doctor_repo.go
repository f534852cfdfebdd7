package repository

import (
	"errors"

	"find-your-doctor/internal/models"

	"gorm.io/gorm"
)

var ErrDoctorNotFound = errors.New("doctor not found")

type DoctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepo(db *gorm.DB) *DoctorRepository {
	return &DoctorRepository{db: db}
}

// scopedQuery applies search and geo constraints. Doctors are scoped to
// the geo hierarchy transitively through their hospital affiliations, so
// any geo level forces the doctor_hospitals join.
func (r *DoctorRepository) scopedQuery(f ListFilter) *gorm.DB {
	q := r.db.Model(&models.Doctor{})

	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("doctors.first_name LIKE ? OR doctors.last_name LIKE ? OR doctors.title LIKE ? OR doctors.bio LIKE ?",
			like, like, like, like)
	}

	if f.HospitalID != 0 || f.AreaID != 0 || f.CityID != 0 || f.CountryID != 0 {
		q = q.Joins("INNER JOIN doctor_hospitals ON doctor_hospitals.doctor_id = doctors.id").
			Joins("INNER JOIN hospitals ON hospitals.id = doctor_hospitals.hospital_id").
			Distinct("doctors.*")

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
	}

	return q
}

// ListDoctors retrieves one page of doctors matching the filter, with
// certifications and affiliated hospitals (including their geo chain)
// preloaded. Returns the page plus the total match count.
func (r *DoctorRepository) ListDoctors(f ListFilter) ([]models.Doctor, int64, error) {
	f.Normalize()

	var total int64
	if err := r.scopedQuery(f).Distinct("doctors.id").Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var doctors []models.Doctor
	err := r.scopedQuery(f).
		Preload("Certifications").
		Preload("Hospitals.Area.City.Country").
		Order("doctors.last_name ASC, doctors.first_name ASC").
		Limit(f.PageSize).
		Offset(f.Offset()).
		Find(&doctors).Error
	if err != nil {
		return nil, 0, err
	}

	return doctors, total, nil
}

// GetDoctorByID retrieves a doctor with certifications and hospital
// affiliations
func (r *DoctorRepository) GetDoctorByID(id uint) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.db.
		Preload("Certifications").
		Preload("Hospitals.Area.City.Country").
		Where("id = ?", id).
		First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDoctorNotFound
		}
		return nil, err
	}
	return &doctor, nil
}

// CreateDoctor inserts a doctor with certifications and hospital links
// in a single transaction
func (r *DoctorRepository) CreateDoctor(doctor *models.Doctor, certifications []models.DoctorCertification, hospitalIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Certifications", "Hospitals").Create(doctor).Error; err != nil {
			return err
		}

		for i := range certifications {
			certifications[i].DoctorID = doctor.ID
			if err := tx.Create(&certifications[i]).Error; err != nil {
				return err
			}
		}

		for _, hospitalID := range hospitalIDs {
			link := models.DoctorHospital{DoctorID: doctor.ID, HospitalID: hospitalID}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// UpdateDoctor saves the doctor's own columns and replaces both the
// certification set and the hospital link set wholesale.
func (r *DoctorRepository) UpdateDoctor(doctor *models.Doctor, certifications []models.DoctorCertification, hospitalIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Doctor
		if err := tx.Select("id").Where("id = ?", doctor.ID).First(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrDoctorNotFound
			}
			return err
		}

		err := tx.Model(&models.Doctor{}).
			Where("id = ?", doctor.ID).
			Updates(map[string]interface{}{
				"first_name": doctor.FirstName,
				"last_name":  doctor.LastName,
				"title":      doctor.Title,
				"bio":        doctor.Bio,
				"image_url":  doctor.ImageURL,
			}).Error
		if err != nil {
			return err
		}

		if err := tx.Where("doctor_id = ?", doctor.ID).Delete(&models.DoctorCertification{}).Error; err != nil {
			return err
		}
		for i := range certifications {
			certifications[i].ID = 0
			certifications[i].DoctorID = doctor.ID
			if err := tx.Create(&certifications[i]).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("doctor_id = ?", doctor.ID).Delete(&models.DoctorHospital{}).Error; err != nil {
			return err
		}
		for _, hospitalID := range hospitalIDs {
			link := models.DoctorHospital{DoctorID: doctor.ID, HospitalID: hospitalID}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}

		return nil
	})
}
