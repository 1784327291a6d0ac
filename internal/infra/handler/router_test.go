package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KasumiMercury/primind-car-care/internal/app"
	"github.com/KasumiMercury/primind-car-care/internal/domain"
	"github.com/KasumiMercury/primind-car-care/internal/infra/handler"
)

const testUserID = "user-1"

var testToday = domain.MustCalendarDate(2024, time.June, 1)

type mocks struct {
	cars      *domain.MockCarRepository
	records   *domain.MockMaintenanceRecordRepository
	reminders *domain.MockReminderRepository
	locations *domain.MockServiceLocationRepository
}

func setupTestRouter(t *testing.T) (*gin.Engine, mocks) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	m := mocks{
		cars:      domain.NewMockCarRepository(ctrl),
		records:   domain.NewMockMaintenanceRecordRepository(ctrl),
		reminders: domain.NewMockReminderRepository(ctrl),
		locations: domain.NewMockServiceLocationRepository(ctrl),
	}

	calendar := app.NewFixedCalendar(testToday)

	router := gin.New()
	api := router.Group("/api/v1", handler.RequireUser())
	handler.NewCarHandler(app.NewCarUseCase(m.cars)).RegisterRoutes(api)
	handler.NewMaintenanceHandler(app.NewMaintenanceUseCase(m.records, m.cars)).RegisterRoutes(api)
	handler.NewReminderHandler(app.NewReminderUseCase(m.reminders, m.cars, calendar)).RegisterRoutes(api)
	handler.NewNotificationHandler(app.NewNotificationUseCase(m.reminders, nil, nil, calendar)).RegisterRoutes(api)
	handler.NewDashboardHandler(app.NewDashboardUseCase(m.cars, m.records, calendar)).RegisterRoutes(api)
	handler.NewLocationHandler(app.NewLocationUseCase(m.locations)).RegisterRoutes(api)

	return router, m
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)

		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(handler.UserIDHeader, testUserID)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))

	return v
}

func mustUserID(t *testing.T) domain.UserID {
	t.Helper()

	id, err := domain.UserIDFromString(testUserID)
	require.NoError(t, err)

	return id
}

func newCar(t *testing.T) *domain.Car {
	t.Helper()

	car, err := domain.NewCar(mustUserID(t), domain.CarDetails{Make: "Honda", Model: "Civic", Year: 2020})
	require.NoError(t, err)

	return car
}

func newReminder(t *testing.T, title string, target domain.CalendarDate) *domain.Reminder {
	t.Helper()

	r, err := domain.NewReminder(mustUserID(t), domain.ReminderDetails{Title: title, TargetDate: target})
	require.NoError(t, err)

	return r
}
