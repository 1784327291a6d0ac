package app

import "context"

type ReminderUseCase interface {
	CreateReminder(ctx context.Context, input CreateReminderInput) (ReminderOutput, error)
	GetReminder(ctx context.Context, input GetReminderInput) (ReminderOutput, error)
	ListReminders(ctx context.Context, input ListRemindersInput) (RemindersOutput, error)
	UpdateReminder(ctx context.Context, input UpdateReminderInput) (ReminderOutput, error)
	CompleteReminder(ctx context.Context, input ReminderTransitionInput) (ReminderOutput, error)
	DismissReminder(ctx context.Context, input ReminderTransitionInput) (ReminderOutput, error)
	DeleteReminder(ctx context.Context, input DeleteReminderInput) error
}
