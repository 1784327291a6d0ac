package handler_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KasumiMercury/primind-car-care/internal/domain"
	"github.com/KasumiMercury/primind-car-care/internal/infra/handler"
)

func TestGetDashboardHandler(t *testing.T) {
	tests := []struct {
		name                string
		carsErr             error
		expectedCars        int
		expectedPartial     bool
		expectedUnavailable []string
	}{
		{
			name:                "all sources loaded",
			expectedCars:        1,
			expectedPartial:     false,
			expectedUnavailable: []string{},
		},
		{
			name:                "cars source failed",
			carsErr:             errors.New("timeout"),
			expectedCars:        0,
			expectedPartial:     true,
			expectedUnavailable: []string{"cars"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := setupTestRouter(t)

			if tt.carsErr != nil {
				m.cars.EXPECT().FindByUserID(gomock.Any(), gomock.Any()).Return(nil, tt.carsErr)
			} else {
				m.cars.EXPECT().FindByUserID(gomock.Any(), gomock.Any()).Return([]*domain.Car{newCar(t)}, nil)
			}

			m.records.EXPECT().FindByUserID(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

			rec := doRequest(t, router, http.MethodGet, "/api/v1/dashboard?today=2024-06-01", nil)

			require.Equal(t, http.StatusOK, rec.Code)

			body := decode[handler.DashboardResponse](t, rec)
			assert.Equal(t, "2024-06-01", body.Today)
			assert.Equal(t, tt.expectedCars, body.TotalCars)
			assert.Equal(t, 0, body.TotalMaintenanceRecords)
			assert.Equal(t, tt.expectedPartial, body.Partial)
			assert.Equal(t, tt.expectedUnavailable, body.Unavailable)
		})
	}
}
