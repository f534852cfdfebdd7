package handler

import (
	"strconv"

	"find-your-doctor/internal/repository"

	"github.com/gin-gonic/gin"
)

// parseListFilter reads the listing query parameters. Malformed or
// non-positive pagination values fall back to defaults downstream;
// malformed geo ids read as zero, meaning unscoped.
func parseListFilter(c *gin.Context) repository.ListFilter {
	return repository.ListFilter{
		Search:     c.Query("search"),
		CountryID:  parseUintQuery(c, "country"),
		CityID:     parseUintQuery(c, "city"),
		AreaID:     parseUintQuery(c, "area"),
		HospitalID: parseUintQuery(c, "hospital"),
		Page:       parseIntQuery(c, "page"),
		PageSize:   parseIntQuery(c, "limit"),
	}
}

func parseUintQuery(c *gin.Context, key string) uint {
	value, err := strconv.ParseUint(c.Query(key), 10, 32)
	if err != nil {
		return 0
	}
	return uint(value)
}

func parseIntQuery(c *gin.Context, key string) int {
	value, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return value
}
