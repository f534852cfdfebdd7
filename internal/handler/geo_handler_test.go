package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"find-your-doctor/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func geoRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewGeoHandler(service.NewGeoService(nil))

	r := gin.New()
	r.GET("/hospitals/api/cities", h.ListCities)
	r.GET("/hospitals/api/areas", h.ListAreas)
	return r
}

func decodeDataList(t *testing.T, body []byte) []json.RawMessage {
	t.Helper()
	var envelope struct {
		Success bool              `json:"success"`
		Data    []json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))
	assert.True(t, envelope.Success)
	return envelope.Data
}

func TestListCitiesWithoutCountryIsEmpty(t *testing.T) {
	r := geoRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/hospitals/api/cities", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeDataList(t, w.Body.Bytes()))
}

func TestListCitiesMalformedCountryIsEmpty(t *testing.T) {
	r := geoRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/hospitals/api/cities?country_id=iraq", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeDataList(t, w.Body.Bytes()))
}

func TestListAreasWithoutCityIsEmpty(t *testing.T) {
	r := geoRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/hospitals/api/areas", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeDataList(t, w.Body.Bytes()))
}
