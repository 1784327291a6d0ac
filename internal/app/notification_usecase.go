package app

import "context"

//go:generate mockgen -source=notification_usecase.go -destination=notification_usecase_mock.go -package=app

type ListDueNotificationsInput struct {
	UserID string
	Today  string
}

type DispatchDueNotificationsInput struct {
	// Today defaults to the server calendar when empty.
	Today string
}

type NotificationFailure struct {
	ReminderID string
	Reason     string
}

type DueNotificationsOutput struct {
	Today     string
	Reminders []ReminderOutput
	Count     int32
	Failures  []NotificationFailure
}

type DispatchOutput struct {
	Today   string
	Scanned int
	Due     int
	// AlreadyNotified counts due reminders skipped because they were
	// delivered earlier.
	AlreadyNotified int
	Published       int
	Pushed          int
	Failures        []NotificationFailure
}

type NotificationUseCase interface {
	ListDueNotifications(ctx context.Context, input ListDueNotificationsInput) (DueNotificationsOutput, error)
	DispatchDueNotifications(ctx context.Context, input DispatchDueNotificationsInput) (DispatchOutput, error)
}
