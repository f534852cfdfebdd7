package handler

import (
	"net/http"

	"find-your-doctor/internal/service"
	"find-your-doctor/pkg/utils"

	"github.com/gin-gonic/gin"
)

type GeoHandler struct {
	geoService *service.GeoService
}

func NewGeoHandler(geoService *service.GeoService) *GeoHandler {
	return &GeoHandler{geoService: geoService}
}

// ListCountries returns all countries for the root dropdown
func (h *GeoHandler) ListCountries(c *gin.Context) {
	countries, err := h.geoService.ListCountries()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch countries")
		return
	}

	utils.SuccessResponse(c, countries)
}

// ListCities returns the cities of the selected country.
// No country selected means an empty list.
func (h *GeoHandler) ListCities(c *gin.Context) {
	cities, err := h.geoService.ListCities(parseUintQuery(c, "country_id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch cities")
		return
	}

	utils.SuccessResponse(c, cities)
}

// ListAreas returns the areas of the selected city.
// No city selected means an empty list.
func (h *GeoHandler) ListAreas(c *gin.Context) {
	areas, err := h.geoService.ListAreas(parseUintQuery(c, "city_id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch areas")
		return
	}

	utils.SuccessResponse(c, areas)
}
