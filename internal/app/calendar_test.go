package app_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-car-care/internal/app"
	"github.com/KasumiMercury/primind-car-care/internal/domain"
)

func TestCalendarResolve(t *testing.T) {
	fixed := domain.MustCalendarDate(2024, time.June, 1)
	calendar := app.NewFixedCalendar(fixed)

	tests := []struct {
		name     string
		today    string
		expected domain.CalendarDate
	}{
		{
			name:     "empty falls back to clock",
			today:    "",
			expected: fixed,
		},
		{
			name:     "client date wins",
			today:    "2024-12-31",
			expected: domain.MustCalendarDate(2024, time.December, 31),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := calendar.Resolve(tt.today)

			require.NoError(t, err)
			assert.True(t, tt.expected.Equals(got))
		})
	}
}

func TestCalendarResolveError(t *testing.T) {
	calendar := app.NewCalendar(time.UTC)

	for _, today := range []string{"2024-13-01", "06/01/2024", "tomorrow"} {
		t.Run(today, func(t *testing.T) {
			_, err := calendar.Resolve(today)

			var validationErr *app.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, "today", validationErr.Field)
		})
	}
}

func TestCalendarTodayUsesLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	calendar := app.NewCalendar(tokyo)

	expected := domain.CalendarDateOf(time.Now().In(tokyo))

	assert.True(t, expected.Equals(calendar.Today()) || expected.AddDays(1).Equals(calendar.Today()))
	assert.Equal(t, tokyo, calendar.Location())
}
