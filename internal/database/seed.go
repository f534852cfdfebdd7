package database

import (
	"fmt"
	"time"

	"find-your-doctor/internal/models"
	"find-your-doctor/pkg/utils"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// Seed loads the sample dataset: the geo hierarchy, a handful of
// hospitals and doctors, and the default admin account. Safe to call on
// every boot; it only writes when the tables are empty.
func Seed(db *gorm.DB, log zerolog.Logger) error {
	if err := ensureAdmin(db); err != nil {
		return err
	}

	var countryCount int64
	if err := db.Model(&models.Country{}).Count(&countryCount).Error; err != nil {
		return err
	}
	if countryCount > 0 {
		log.Debug().Msg("seed skipped, geo data already present")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		country := models.Country{Name: "Iraq"}
		if err := tx.Create(&country).Error; err != nil {
			return err
		}

		cityNames := []string{"Sulaimani", "Hawler", "Dhok", "Karkuk", "Halabja"}
		var hospitals []models.Hospital
		for i, cityName := range cityNames {
			city := models.City{Name: cityName, CountryID: country.ID}
			if err := tx.Create(&city).Error; err != nil {
				return err
			}

			areaNames := []string{"Central", cityName + " East", cityName + " West"}
			areas := make([]models.Area, 0, len(areaNames))
			for _, areaName := range areaNames {
				area := models.Area{Name: areaName, CityID: city.ID}
				if err := tx.Create(&area).Error; err != nil {
					return err
				}
				areas = append(areas, area)
			}

			// Two hospitals per city: one central, one in the east area
			for j, suffix := range []string{"General Hospital", "Medical Center"} {
				hospital := models.Hospital{
					AreaID:          areas[j].ID,
					Name:            cityName + " " + suffix,
					Summary:         "Quality care in " + cityName + ".",
					EmergencyStatus: j == 0,
					Address:         "Street 1, " + cityName,
					Status:          models.HospitalStatusActive,
				}
				if err := tx.Create(&hospital).Error; err != nil {
					return err
				}

				phone := models.HospitalPhone{HospitalID: hospital.ID, PhoneNumber: fmt.Sprintf("0771-1000%02d", i*2+j+1)}
				if err := tx.Create(&phone).Error; err != nil {
					return err
				}
				facility := models.HospitalFacility{HospitalID: hospital.ID, FacilityName: sampleFacilities[(i*2+j)%len(sampleFacilities)]}
				if err := tx.Create(&facility).Error; err != nil {
					return err
				}

				hospitals = append(hospitals, hospital)
			}
		}

		for i, sample := range sampleDoctors {
			doctor := sample
			if err := tx.Create(&doctor).Error; err != nil {
				return err
			}

			awarded := time.Date(2008+i, time.January, 15, 0, 0, 0, 0, time.UTC)
			certification := models.DoctorCertification{
				DoctorID:            doctor.ID,
				Title:               doctor.Title + " Certification",
				DegreeLevel:         "Board Certification",
				AwardingInstitution: "Kurdistan Medical Board",
				AwardedDate:         &awarded,
			}
			if err := tx.Create(&certification).Error; err != nil {
				return err
			}

			link := models.DoctorHospital{DoctorID: doctor.ID, HospitalID: hospitals[i%len(hospitals)].ID}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}

		log.Info().
			Int("cities", len(cityNames)).
			Int("hospitals", len(hospitals)).
			Int("doctors", len(sampleDoctors)).
			Msg("seed data loaded")
		return nil
	})
}

var sampleFacilities = []string{
	"X-Ray", "MRI", "CT Scan", "Pharmacy", "Ambulance",
	"ICU", "Cardiology", "Neurology", "Pediatrics", "Emergency Room",
}

var sampleDoctors = []models.Doctor{
	{FirstName: "Hemin", LastName: "Abdullah", Title: "General Medicine", Bio: "Expert in general medicine"},
	{FirstName: "Berivan", LastName: "Jalal", Title: "Surgery", Bio: "Specialist in surgery"},
	{FirstName: "Zana", LastName: "Karim", Title: "Pediatrics", Bio: "Focused on child health"},
	{FirstName: "Rojin", LastName: "Hassan", Title: "Orthopedics", Bio: "Expert in bone and joint surgery"},
	{FirstName: "Shivan", LastName: "Azad", Title: "Dermatology", Bio: "Skilled in skin treatments"},
	{FirstName: "Avin", LastName: "Soran", Title: "Neurology", Bio: "Specialist in brain health"},
	{FirstName: "Nazar", LastName: "Qadir", Title: "Gynecology", Bio: "Experienced in women's health"},
	{FirstName: "Hor", LastName: "Jon", Title: "General Practice", Bio: "Family medicine expert"},
	{FirstName: "Choman", LastName: "Aso", Title: "Cardiology", Bio: "Expert in heart conditions"},
	{FirstName: "Aram", LastName: "Barzani", Title: "Radiology", Bio: "Skilled in diagnostic imaging"},
}

// ensureAdmin guarantees the default admin account exists
func ensureAdmin(db *gorm.DB) error {
	const adminEmail = "admin@gmail.com"

	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", adminEmail).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	passwordHash, err := utils.HashPassword("123123")
	if err != nil {
		return err
	}

	admin := models.User{
		FirstName:    "Admin",
		LastName:     "Admin",
		Role:         models.RoleAdmin,
		Status:       models.UserStatusAccept,
		Email:        adminEmail,
		PasswordHash: passwordHash,
	}
	return db.Create(&admin).Error
}
