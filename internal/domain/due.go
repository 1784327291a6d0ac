package domain

import "fmt"

type DueStatus string

const (
	DueStatusOverdue  DueStatus = "overdue"
	DueStatusDueToday DueStatus = "due_today"
	DueStatusDueSoon  DueStatus = "due_soon"
	DueStatusUpcoming DueStatus = "upcoming"
)

const (
	DefaultNotifyBeforeDays = 1
	MaxNotifyBeforeDays     = 365
)

type DueClassification struct {
	Status    DueStatus
	DaysUntil int
}

// NeedsAttention reports whether the reminder should surface as a notification.
func (c DueClassification) NeedsAttention() bool {
	return c.Status != DueStatusUpcoming
}

// ClassifyDue buckets targetDate relative to today.
// A nil notifyBeforeDays falls back to DefaultNotifyBeforeDays.
func ClassifyDue(targetDate CalendarDate, notifyBeforeDays *int, today CalendarDate) (DueClassification, error) {
	if targetDate.IsZero() {
		return DueClassification{}, fmt.Errorf("target date: %w", ErrMissingDate)
	}

	if today.IsZero() {
		return DueClassification{}, fmt.Errorf("today: %w", ErrMissingDate)
	}

	window := DefaultNotifyBeforeDays
	if notifyBeforeDays != nil {
		if err := ValidateNotifyBeforeDays(*notifyBeforeDays); err != nil {
			return DueClassification{}, err
		}

		window = *notifyBeforeDays
	}

	daysUntil := today.DaysUntil(targetDate)

	var status DueStatus

	switch {
	case daysUntil < 0:
		status = DueStatusOverdue
	case daysUntil == 0:
		status = DueStatusDueToday
	case daysUntil <= window:
		status = DueStatusDueSoon
	default:
		status = DueStatusUpcoming
	}

	return DueClassification{Status: status, DaysUntil: daysUntil}, nil
}

// ClassifyDueString parses both dates before classifying.
func ClassifyDueString(targetDate string, notifyBeforeDays *int, today string) (DueClassification, error) {
	target, err := ParseCalendarDate(targetDate)
	if err != nil {
		return DueClassification{}, fmt.Errorf("target date: %w", err)
	}

	t, err := ParseCalendarDate(today)
	if err != nil {
		return DueClassification{}, fmt.Errorf("today: %w", err)
	}

	return ClassifyDue(target, notifyBeforeDays, t)
}

func ValidateNotifyBeforeDays(days int) error {
	if days < 0 || days > MaxNotifyBeforeDays {
		return ErrInvalidNotifyBeforeDays
	}

	return nil
}
