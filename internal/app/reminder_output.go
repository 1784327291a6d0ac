package app

import (
	"log/slog"
	"time"

	"github.com/KasumiMercury/primind-car-care/internal/domain"
)

type DeviceOutput struct {
	DeviceID  string
	PushToken string
}

// DueOutput is recomputed on every read and never stored.
type DueOutput struct {
	Status    string
	DaysUntil int
}

type ReminderOutput struct {
	ID               string
	UserID           string
	CarID            *string
	Title            string
	Description      string
	TargetDate       string
	TimeOfDay        string
	Category         string
	Status           string
	NotifyBeforeDays *int
	Devices          []DeviceOutput
	Due              *DueOutput
	// DueError is set instead of Due when the stored reminder cannot be
	// classified.
	DueError         string
	LastNotifiedOn   *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type RemindersOutput struct {
	Today     string
	Reminders []ReminderOutput
	Count     int32
}

// FromReminder converts the entity and attaches its classification for today.
func FromReminder(reminder *domain.Reminder, today domain.CalendarDate) ReminderOutput {
	devices := make([]DeviceOutput, 0, reminder.Devices().Count())
	for _, d := range reminder.Devices().ToSlice() {
		devices = append(devices, DeviceOutput{
			DeviceID:  d.DeviceID(),
			PushToken: d.PushToken(),
		})
	}

	var carID *string
	if id := reminder.CarID(); id != nil {
		s := id.String()
		carID = &s
	}

	output := ReminderOutput{
		ID:               reminder.ID().String(),
		UserID:           reminder.UserID().String(),
		CarID:            carID,
		Title:            reminder.Title(),
		Description:      reminder.Description(),
		TargetDate:       reminder.TargetDate().String(),
		TimeOfDay:        reminder.TimeOfDay().String(),
		Category:         string(reminder.Category()),
		Status:           string(reminder.Status()),
		NotifyBeforeDays: reminder.NotifyBeforeDays(),
		Devices:          devices,
		CreatedAt:        reminder.CreatedAt(),
		UpdatedAt:        reminder.UpdatedAt(),
	}

	if d := reminder.LastNotifiedOn(); d != nil {
		s := d.String()
		output.LastNotifiedOn = &s
	}

	classification, err := reminder.Classify(today)
	if err != nil {
		slog.Warn("reminder could not be classified",
			"reminder_id", output.ID,
			"error", err,
		)

		output.DueError = err.Error()

		return output
	}

	output.Due = fromClassification(classification)

	return output
}

func FromReminders(reminders []*domain.Reminder, today domain.CalendarDate) RemindersOutput {
	outputs := make([]ReminderOutput, 0, len(reminders))
	for _, r := range reminders {
		outputs = append(outputs, FromReminder(r, today))
	}

	return RemindersOutput{
		Today:     today.String(),
		Reminders: outputs,
		Count:     int32(len(outputs)), //nolint:gosec
	}
}

func fromClassification(c domain.DueClassification) *DueOutput {
	return &DueOutput{
		Status:    string(c.Status),
		DaysUntil: c.DaysUntil,
	}
}
