package repository

import (
	"errors"

	"find-your-doctor/internal/models"

	"gorm.io/gorm"
)

var ErrAreaNotFound = errors.New("area not found")

type GeoRepository struct {
	db *gorm.DB
}

func NewGeoRepo(db *gorm.DB) *GeoRepository {
	return &GeoRepository{db: db}
}

// ListCountries retrieves every country for the root dropdown
func (r *GeoRepository) ListCountries() ([]models.Country, error) {
	var countries []models.Country
	err := r.db.Order("name ASC").Find(&countries).Error
	return countries, err
}

// ListCities retrieves the cities of a country, ordered by name
func (r *GeoRepository) ListCities(countryID uint) ([]models.City, error) {
	var cities []models.City
	err := r.db.Where("country_id = ?", countryID).Order("name ASC").Find(&cities).Error
	return cities, err
}

// ListAreas retrieves the areas of a city, ordered by name
func (r *GeoRepository) ListAreas(cityID uint) ([]models.Area, error) {
	var areas []models.Area
	err := r.db.Where("city_id = ?", cityID).Order("name ASC").Find(&areas).Error
	return areas, err
}

// AreaExists reports whether the referenced area is present; hospital
// writes check this before accepting an area_id
func (r *GeoRepository) AreaExists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Area{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
