package domain

import "fmt"

type ReminderStatus string

const (
	ReminderStatusPending   ReminderStatus = "pending"
	ReminderStatusCompleted ReminderStatus = "completed"
	ReminderStatusDismissed ReminderStatus = "dismissed"
)

func NewReminderStatus(s string) (ReminderStatus, error) {
	switch ReminderStatus(s) {
	case ReminderStatusPending, ReminderStatusCompleted, ReminderStatusDismissed:
		return ReminderStatus(s), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidReminderStatus, s)
	}
}
