package domain

import (
	"context"
)

//go:generate mockgen -source=repository.go -destination=repository_mock.go -package=domain

type ReminderFilter struct {
	Status *ReminderStatus
	CarID  *CarID
}

// UnreadableReminder is a stored row that could not be turned into a Reminder.
type UnreadableReminder struct {
	ID  string
	Err error
}

// PendingReminders lists rows that cannot be read instead of failing the
// whole sweep on them.
type PendingReminders struct {
	Reminders  []*Reminder
	Unreadable []UnreadableReminder
}

type ReminderRepository interface {
	Save(ctx context.Context, reminder *Reminder) error
	FindByID(ctx context.Context, id ReminderID) (*Reminder, error)
	FindByUserID(ctx context.Context, userID UserID, filter ReminderFilter) ([]*Reminder, error)
	// FindPendingUntil returns pending reminders of all users with a target date on or before until.
	FindPendingUntil(ctx context.Context, until CalendarDate) (PendingReminders, error)
	Update(ctx context.Context, reminder *Reminder) error
	Delete(ctx context.Context, id ReminderID) error
}

type CarRepository interface {
	Save(ctx context.Context, car *Car) error
	FindByID(ctx context.Context, id CarID) (*Car, error)
	FindByUserID(ctx context.Context, userID UserID) ([]*Car, error)
	Update(ctx context.Context, car *Car) error
	// Delete also removes the car's maintenance records and reminders.
	Delete(ctx context.Context, id CarID) error
}

type MaintenanceRecordRepository interface {
	Save(ctx context.Context, record *MaintenanceRecord) error
	FindByID(ctx context.Context, id MaintenanceRecordID) (*MaintenanceRecord, error)
	FindByUserID(ctx context.Context, userID UserID, carID *CarID) ([]*MaintenanceRecord, error)
	Update(ctx context.Context, record *MaintenanceRecord) error
	Delete(ctx context.Context, id MaintenanceRecordID) error
}

type ServiceLocationRepository interface {
	Save(ctx context.Context, location *ServiceLocation) error
	FindWithinBounds(ctx context.Context, bounds BoundingBox) ([]*ServiceLocation, error)
}
