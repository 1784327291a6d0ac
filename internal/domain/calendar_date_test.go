package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-car-care/internal/domain"
)

func TestParseCalendarDateSuccess(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected domain.CalendarDate
	}{
		{
			name:     "regular date",
			input:    "2024-06-01",
			expected: domain.MustCalendarDate(2024, time.June, 1),
		},
		{
			name:     "leap day",
			input:    "2024-02-29",
			expected: domain.MustCalendarDate(2024, time.February, 29),
		},
		{
			name:     "end of year",
			input:    "2023-12-31",
			expected: domain.MustCalendarDate(2023, time.December, 31),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := domain.ParseCalendarDate(tt.input)

			require.NoError(t, err)
			assert.True(t, tt.expected.Equals(d))
			assert.Equal(t, tt.input, d.String())
		})
	}
}

func TestParseCalendarDateError(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectedErr error
	}{
		{
			name:        "empty string",
			input:       "",
			expectedErr: domain.ErrMissingDate,
		},
		{
			name:        "garbage",
			input:       "not-a-date",
			expectedErr: domain.ErrInvalidDate,
		},
		{
			name:        "non leap year february 29",
			input:       "2023-02-29",
			expectedErr: domain.ErrInvalidDate,
		},
		{
			name:        "timestamp instead of date",
			input:       "2024-06-01T10:00:00Z",
			expectedErr: domain.ErrInvalidDate,
		},
		{
			name:        "day first format",
			input:       "01.06.2024",
			expectedErr: domain.ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.ParseCalendarDate(tt.input)

			assert.ErrorIs(t, err, tt.expectedErr)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestNewCalendarDateError(t *testing.T) {
	_, err := domain.NewCalendarDate(2024, time.April, 31)

	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestCalendarDateOfIgnoresTimeOfDay(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)

	tests := []struct {
		name     string
		input    time.Time
		expected domain.CalendarDate
	}{
		{
			name:     "late evening UTC",
			input:    time.Date(2024, time.June, 1, 23, 59, 59, 0, time.UTC),
			expected: domain.MustCalendarDate(2024, time.June, 1),
		},
		{
			name:     "early morning in another zone keeps local calendar day",
			input:    time.Date(2024, time.June, 2, 0, 30, 0, 0, tokyo),
			expected: domain.MustCalendarDate(2024, time.June, 2),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, domain.CalendarDateOf(tt.input))
		})
	}
}

func TestCalendarDateDaysUntil(t *testing.T) {
	tests := []struct {
		name     string
		from     domain.CalendarDate
		to       domain.CalendarDate
		expected int
	}{
		{
			name:     "same day",
			from:     domain.MustCalendarDate(2024, time.June, 1),
			to:       domain.MustCalendarDate(2024, time.June, 1),
			expected: 0,
		},
		{
			name:     "day before",
			from:     domain.MustCalendarDate(2024, time.June, 1),
			to:       domain.MustCalendarDate(2024, time.May, 31),
			expected: -1,
		},
		{
			name:     "across leap day",
			from:     domain.MustCalendarDate(2024, time.February, 28),
			to:       domain.MustCalendarDate(2024, time.March, 1),
			expected: 2,
		},
		{
			name:     "across DST change in many zones",
			from:     domain.MustCalendarDate(2024, time.March, 30),
			to:       domain.MustCalendarDate(2024, time.April, 1),
			expected: 2,
		},
		{
			name:     "across year",
			from:     domain.MustCalendarDate(2023, time.December, 31),
			to:       domain.MustCalendarDate(2024, time.December, 31),
			expected: 366,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.from.DaysUntil(tt.to))
		})
	}
}

func TestCalendarDateAddDays(t *testing.T) {
	d := domain.MustCalendarDate(2024, time.June, 1)

	assert.Equal(t, domain.MustCalendarDate(2024, time.July, 1), d.AddDays(30))
	assert.Equal(t, domain.MustCalendarDate(2024, time.May, 31), d.AddDays(-1))
	assert.True(t, d.Before(d.AddDays(1)))
	assert.True(t, d.After(d.AddDays(-1)))
	assert.True(t, domain.CalendarDate{}.IsZero())
	assert.Empty(t, domain.CalendarDate{}.String())
}
