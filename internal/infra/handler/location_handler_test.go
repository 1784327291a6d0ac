package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KasumiMercury/primind-car-care/internal/domain"
	"github.com/KasumiMercury/primind-car-care/internal/infra/handler"
)

func TestRegisterLocationHandler(t *testing.T) {
	router, m := setupTestRouter(t)

	m.locations.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/locations", map[string]any{
		"name":      "Equator Garage",
		"latitude":  0,
		"longitude": 0,
	})

	require.Equal(t, http.StatusCreated, rec.Code)

	body := decode[handler.LocationResponse](t, rec)
	assert.Equal(t, "service_center", body.Category)
	assert.Equal(t, 0.0, body.Latitude)
}

func TestFindNearbyHandler(t *testing.T) {
	router, m := setupTestRouter(t)

	coords, err := domain.NewCoordinates(59.331, 18.071)
	require.NoError(t, err)

	location, err := domain.NewServiceLocation("Near", "", domain.LocationCategoryCarWash, coords, "")
	require.NoError(t, err)

	m.locations.EXPECT().FindWithinBounds(gomock.Any(), gomock.Any()).Return([]*domain.ServiceLocation{location}, nil)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/locations/nearby?lat=59.33&lon=18.07&radius_km=5&limit=3", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	body := decode[handler.NearbyLocationsResponse](t, rec)
	require.Equal(t, int32(1), body.Count)
	assert.Equal(t, "Near", body.Locations[0].Name)
	assert.InDelta(t, 0.13, body.Locations[0].DistanceKm, 0.02)
}

func TestFindNearbyHandlerMissingCoordinates(t *testing.T) {
	router, _ := setupTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/locations/nearby?lat=59.33", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFindNearbyHandlerNonFiniteRadius(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{name: "NaN", query: "radius_km=NaN"},
		{name: "positive infinity", query: "radius_km=Inf"},
		{name: "negative infinity", query: "radius_km=-Inf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := setupTestRouter(t)

			rec := doRequest(t, router, http.MethodGet, "/api/v1/locations/nearby?lat=59.33&lon=18.07&"+tt.query, nil)

			assert.Equal(t, http.StatusBadRequest, rec.Code)

			body := decode[handler.ErrorResponse](t, rec)
			assert.Equal(t, "validation_error", body.Error)
			assert.Equal(t, "radius_km", body.Field)
		})
	}
}
