package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-car-care/internal/domain"
)

func intPtr(v int) *int {
	return &v
}

func TestClassifyDueSuccess(t *testing.T) {
	today := domain.MustCalendarDate(2024, time.June, 1)

	tests := []struct {
		name              string
		target            domain.CalendarDate
		notifyBeforeDays  *int
		expectedStatus    domain.DueStatus
		expectedDaysUntil int
	}{
		{
			name:              "target equal to today is due today",
			target:            today,
			notifyBeforeDays:  nil,
			expectedStatus:    domain.DueStatusDueToday,
			expectedDaysUntil: 0,
		},
		{
			name:              "one day before today is overdue",
			target:            today.AddDays(-1),
			notifyBeforeDays:  nil,
			expectedStatus:    domain.DueStatusOverdue,
			expectedDaysUntil: -1,
		},
		{
			name:              "far in the past is overdue",
			target:            today.AddDays(-400),
			notifyBeforeDays:  intPtr(7),
			expectedStatus:    domain.DueStatusOverdue,
			expectedDaysUntil: -400,
		},
		{
			name:              "tomorrow with default window is due soon",
			target:            today.AddDays(1),
			notifyBeforeDays:  nil,
			expectedStatus:    domain.DueStatusDueSoon,
			expectedDaysUntil: 1,
		},
		{
			name:              "two days ahead with default window is upcoming",
			target:            today.AddDays(2),
			notifyBeforeDays:  nil,
			expectedStatus:    domain.DueStatusUpcoming,
			expectedDaysUntil: 2,
		},
		{
			name:              "window of 3 and 3 days ahead is due soon",
			target:            today.AddDays(3),
			notifyBeforeDays:  intPtr(3),
			expectedStatus:    domain.DueStatusDueSoon,
			expectedDaysUntil: 3,
		},
		{
			name:              "window of 3 and 4 days ahead is upcoming",
			target:            today.AddDays(4),
			notifyBeforeDays:  intPtr(3),
			expectedStatus:    domain.DueStatusUpcoming,
			expectedDaysUntil: 4,
		},
		{
			name:              "zero window never yields due soon",
			target:            today.AddDays(1),
			notifyBeforeDays:  intPtr(0),
			expectedStatus:    domain.DueStatusUpcoming,
			expectedDaysUntil: 1,
		},
		{
			name:              "zero window still reports due today",
			target:            today,
			notifyBeforeDays:  intPtr(0),
			expectedStatus:    domain.DueStatusDueToday,
			expectedDaysUntil: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := domain.ClassifyDue(tt.target, tt.notifyBeforeDays, today)

			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, result.Status)
			assert.Equal(t, tt.expectedDaysUntil, result.DaysUntil)
		})
	}
}

func TestClassifyDueEndToEndExample(t *testing.T) {
	result, err := domain.ClassifyDueString("2024-06-03", intPtr(2), "2024-06-01")

	require.NoError(t, err)
	assert.Equal(t, domain.DueStatusDueSoon, result.Status)
	assert.Equal(t, 2, result.DaysUntil)
	assert.True(t, result.NeedsAttention())
}

func TestClassifyDueError(t *testing.T) {
	today := domain.MustCalendarDate(2024, time.June, 1)

	tests := []struct {
		name             string
		target           domain.CalendarDate
		notifyBeforeDays *int
		today            domain.CalendarDate
	}{
		{
			name:   "missing target date",
			target: domain.CalendarDate{},
			today:  today,
		},
		{
			name:   "missing today",
			target: today,
			today:  domain.CalendarDate{},
		},
		{
			name:             "negative window",
			target:           today,
			notifyBeforeDays: intPtr(-1),
			today:            today,
		},
		{
			name:             "window too large",
			target:           today,
			notifyBeforeDays: intPtr(domain.MaxNotifyBeforeDays + 1),
			today:            today,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.ClassifyDue(tt.target, tt.notifyBeforeDays, tt.today)

			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestClassifyDueStringError(t *testing.T) {
	tests := []struct {
		name   string
		target string
		today  string
	}{
		{
			name:   "unparseable target",
			target: "2024-13-01",
			today:  "2024-06-01",
		},
		{
			name:   "empty target",
			target: "",
			today:  "2024-06-01",
		},
		{
			name:   "unparseable today",
			target: "2024-06-01",
			today:  "yesterday",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.ClassifyDueString(tt.target, nil, tt.today)

			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestClassifyDueIsDeterministic(t *testing.T) {
	today := domain.MustCalendarDate(2024, time.June, 1)
	target := domain.MustCalendarDate(2024, time.June, 10)

	first, err := domain.ClassifyDue(target, intPtr(14), today)
	require.NoError(t, err)

	second, err := domain.ClassifyDue(target, intPtr(14), today)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
