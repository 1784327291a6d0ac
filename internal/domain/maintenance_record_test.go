package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-car-care/internal/domain"
)

func floatPtr(v float64) *float64 {
	return &v
}

func datePtr(d domain.CalendarDate) *domain.CalendarDate {
	return &d
}

func newRecord(t *testing.T, cost *float64, nextDue *domain.CalendarDate) *domain.MaintenanceRecord {
	t.Helper()

	record, err := domain.NewMaintenanceRecord(mustUserID(t, "user-1"), domain.MaintenanceDetails{
		CarID:       domain.NewCarID(),
		ServiceType: domain.ServiceTypeOilChange,
		ServiceDate: domain.MustCalendarDate(2024, time.January, 15),
		Cost:        cost,
		NextDueDate: nextDue,
	})
	require.NoError(t, err)

	return record
}

func TestNewMaintenanceRecordError(t *testing.T) {
	serviceDate := domain.MustCalendarDate(2024, time.January, 15)

	tests := []struct {
		name        string
		details     domain.MaintenanceDetails
		expectedErr error
	}{
		{
			name:        "missing car",
			details:     domain.MaintenanceDetails{ServiceDate: serviceDate},
			expectedErr: domain.ErrMissingCar,
		},
		{
			name:        "missing service date",
			details:     domain.MaintenanceDetails{CarID: domain.NewCarID()},
			expectedErr: domain.ErrMissingDate,
		},
		{
			name:        "negative cost",
			details:     domain.MaintenanceDetails{CarID: domain.NewCarID(), ServiceDate: serviceDate, Cost: floatPtr(-1)},
			expectedErr: domain.ErrNegativeCost,
		},
		{
			name: "next due before service",
			details: domain.MaintenanceDetails{
				CarID:       domain.NewCarID(),
				ServiceDate: serviceDate,
				NextDueDate: datePtr(serviceDate.AddDays(-1)),
			},
			expectedErr: domain.ErrNextDueBeforeService,
		},
		{
			name: "negative next due mileage",
			details: domain.MaintenanceDetails{
				CarID:          domain.NewCarID(),
				ServiceDate:    serviceDate,
				NextDueMileage: intPtr(-10),
			},
			expectedErr: domain.ErrNegativeMileage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.NewMaintenanceRecord(mustUserID(t, "user-1"), tt.details)

			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestMaintenanceRecordCostOrZero(t *testing.T) {
	assert.Equal(t, 0.0, newRecord(t, nil, nil).CostOrZero())
	assert.Equal(t, 150.50, newRecord(t, floatPtr(150.50), nil).CostOrZero())
}

func TestMaintenanceRecordIsDueWithin(t *testing.T) {
	today := domain.MustCalendarDate(2024, time.June, 1)

	tests := []struct {
		name     string
		nextDue  *domain.CalendarDate
		expected bool
	}{
		{
			name:     "no next due date",
			nextDue:  nil,
			expected: false,
		},
		{
			name:     "due today",
			nextDue:  datePtr(today),
			expected: true,
		},
		{
			name:     "due on last day of window",
			nextDue:  datePtr(today.AddDays(30)),
			expected: true,
		},
		{
			name:     "due one day after window",
			nextDue:  datePtr(today.AddDays(31)),
			expected: false,
		},
		{
			name:     "due yesterday",
			nextDue:  datePtr(today.AddDays(-1)),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := newRecord(t, nil, tt.nextDue)

			assert.Equal(t, tt.expected, record.IsDueWithin(today, 30))
		})
	}
}
