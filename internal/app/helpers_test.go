package app_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-car-care/internal/app"
	"github.com/KasumiMercury/primind-car-care/internal/domain"
)

const (
	ownerID    = "user-owner"
	strangerID = "user-stranger"
)

var testToday = domain.MustCalendarDate(2024, time.June, 1)

func fixedCalendar() *app.Calendar {
	return app.NewFixedCalendar(testToday)
}

func intPtr(v int) *int {
	return &v
}

func strPtr(s string) *string {
	return &s
}

func floatPtr(v float64) *float64 {
	return &v
}

func mustUserID(t *testing.T, s string) domain.UserID {
	t.Helper()

	id, err := domain.UserIDFromString(s)
	require.NoError(t, err)

	return id
}

func newTestCar(t *testing.T, owner string) *domain.Car {
	t.Helper()

	car, err := domain.NewCar(mustUserID(t, owner), domain.CarDetails{
		Make:  "Toyota",
		Model: "Corolla",
		Year:  2018,
	})
	require.NoError(t, err)

	return car
}

func newTestRecord(t *testing.T, owner string, carID domain.CarID, cost *float64, nextDue *domain.CalendarDate) *domain.MaintenanceRecord {
	t.Helper()

	record, err := domain.NewMaintenanceRecord(mustUserID(t, owner), domain.MaintenanceDetails{
		CarID:       carID,
		ServiceType: domain.ServiceTypeOilChange,
		ServiceDate: domain.MustCalendarDate(2024, time.January, 10),
		Cost:        cost,
		NextDueDate: nextDue,
	})
	require.NoError(t, err)

	return record
}

func newTestReminder(t *testing.T, owner, title string, target domain.CalendarDate, notifyBefore *int, devices int) *domain.Reminder {
	t.Helper()

	deviceSlice := make([]domain.Device, 0, devices)
	for i := 0; i < devices; i++ {
		d, err := domain.NewDevice(
			"device-"+string(rune('a'+i)),
			"token-"+string(rune('a'+i)),
		)
		require.NoError(t, err)

		deviceSlice = append(deviceSlice, d)
	}

	deviceCollection, err := domain.NewDevices(deviceSlice)
	require.NoError(t, err)

	reminder, err := domain.NewReminder(mustUserID(t, owner), domain.ReminderDetails{
		Title:            title,
		TargetDate:       target,
		NotifyBeforeDays: notifyBefore,
		Devices:          deviceCollection,
	})
	require.NoError(t, err)

	return reminder
}
