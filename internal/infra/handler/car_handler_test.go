package handler_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/KasumiMercury/primind-car-care/internal/domain"
	"github.com/KasumiMercury/primind-car-care/internal/infra/handler"
)

func TestCreateCarHandlerSuccess(t *testing.T) {
	router, m := setupTestRouter(t)

	m.cars.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/cars", map[string]any{
		"make":          "Honda",
		"model":         "Civic",
		"year":          2020,
		"license_plate": "xyz 987",
		"mileage":       12000,
	})

	assert.Equal(t, http.StatusCreated, rec.Code)

	body := decode[handler.CarResponse](t, rec)
	assert.NotEmpty(t, body.ID)
	assert.Equal(t, "Honda Civic", body.DisplayName)
	assert.Equal(t, "XYZ 987", body.LicensePlate)
}

func TestCreateCarHandlerError(t *testing.T) {
	tests := []struct {
		name          string
		body          map[string]any
		expectedField string
	}{
		{
			name:          "missing model fails binding",
			body:          map[string]any{"make": "Honda", "year": 2020},
			expectedField: "",
		},
		{
			name:          "negative mileage fails binding",
			body:          map[string]any{"make": "Honda", "model": "Civic", "year": 2020, "mileage": -1},
			expectedField: "",
		},
		{
			name:          "year out of range",
			body:          map[string]any{"make": "Honda", "model": "Civic", "year": 1700},
			expectedField: "year",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := setupTestRouter(t)

			rec := doRequest(t, router, http.MethodPost, "/api/v1/cars", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)

			body := decode[handler.ErrorResponse](t, rec)
			assert.Equal(t, "validation_error", body.Error)
			assert.Equal(t, tt.expectedField, body.Field)
		})
	}
}

func TestGetCarHandlerStatusCodes(t *testing.T) {
	tests := []struct {
		name         string
		path         func(car *domain.Car) string
		setup        func(m mocks, car *domain.Car)
		expectedCode int
		expectedErr  string
	}{
		{
			name: "found",
			path: func(car *domain.Car) string { return "/api/v1/cars/" + car.ID().String() },
			setup: func(m mocks, car *domain.Car) {
				m.cars.EXPECT().FindByID(gomock.Any(), car.ID()).Return(car, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "not found",
			path: func(*domain.Car) string { return "/api/v1/cars/" + uuid.Must(uuid.NewV7()).String() },
			setup: func(m mocks, _ *domain.Car) {
				m.cars.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(nil, domain.ErrCarNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedErr:  "not_found",
		},
		{
			name:         "malformed id",
			path:         func(*domain.Car) string { return "/api/v1/cars/123" },
			setup:        func(mocks, *domain.Car) {},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "validation_error",
		},
		{
			name: "storage failure",
			path: func(car *domain.Car) string { return "/api/v1/cars/" + car.ID().String() },
			setup: func(m mocks, _ *domain.Car) {
				m.cars.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedErr:  "internal_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := setupTestRouter(t)
			car := newCar(t)
			tt.setup(m, car)

			rec := doRequest(t, router, http.MethodGet, tt.path(car), nil)

			assert.Equal(t, tt.expectedCode, rec.Code)

			if tt.expectedErr != "" {
				assert.Equal(t, tt.expectedErr, decode[handler.ErrorResponse](t, rec).Error)
			}
		})
	}
}

func TestDeleteCarHandlerSuccess(t *testing.T) {
	router, m := setupTestRouter(t)
	car := newCar(t)

	m.cars.EXPECT().FindByID(gomock.Any(), car.ID()).Return(car, nil)
	m.cars.EXPECT().Delete(gomock.Any(), car.ID()).Return(nil)

	rec := doRequest(t, router, http.MethodDelete, "/api/v1/cars/"+car.ID().String(), nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
