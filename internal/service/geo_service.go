package service

import (
	"find-your-doctor/internal/models"
	"find-your-doctor/internal/repository"
)

// GeoService serves the cascading dropdown data for the
// Country -> City -> Area hierarchy. Pure reads, no side effects.
type GeoService struct {
	geoRepo *repository.GeoRepository
}

func NewGeoService(geoRepo *repository.GeoRepository) *GeoService {
	return &GeoService{geoRepo: geoRepo}
}

// ListCountries returns every country for the root dropdown
func (s *GeoService) ListCountries() ([]models.Country, error) {
	return s.geoRepo.ListCountries()
}

// ListCities returns the cities of a country ordered by name.
// An absent country id yields an empty list, not an error.
func (s *GeoService) ListCities(countryID uint) ([]models.City, error) {
	if countryID == 0 {
		return []models.City{}, nil
	}
	return s.geoRepo.ListCities(countryID)
}

// ListAreas returns the areas of a city ordered by name.
// An absent city id yields an empty list, not an error.
func (s *GeoService) ListAreas(cityID uint) ([]models.Area, error) {
	if cityID == 0 {
		return []models.Area{}, nil
	}
	return s.geoRepo.ListAreas(cityID)
}
