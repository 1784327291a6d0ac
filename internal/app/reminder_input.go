package app

import (
	"fmt"

	"github.com/KasumiMercury/primind-car-care/internal/domain"
)

type DeviceInput struct {
	DeviceID  string
	PushToken string
}

type ReminderInput struct {
	CarID            *string
	Title            string
	Description      string
	TargetDate       string
	TimeOfDay        string
	Category         string
	NotifyBeforeDays *int
	Devices          []DeviceInput
}

type CreateReminderInput struct {
	UserID   string
	Reminder ReminderInput
	Today    string
}

type GetReminderInput struct {
	UserID string
	ID     string
	Today  string
}

type ListRemindersInput struct {
	UserID string
	Status *string
	CarID  *string
	Today  string
}

type UpdateReminderInput struct {
	UserID   string
	ID       string
	Reminder ReminderInput
	Today    string
}

// ReminderTransitionInput drives complete and dismiss.
type ReminderTransitionInput struct {
	UserID string
	ID     string
	Today  string
}

type DeleteReminderInput struct {
	UserID string
	ID     string
}

func (in ReminderInput) toDetails() (domain.ReminderDetails, error) {
	var carID *domain.CarID

	if in.CarID != nil && *in.CarID != "" {
		id, err := domain.CarIDFromString(*in.CarID)
		if err != nil {
			return domain.ReminderDetails{}, NewValidationError("car_id", err.Error())
		}

		carID = &id
	}

	targetDate, err := domain.ParseCalendarDate(in.TargetDate)
	if err != nil {
		return domain.ReminderDetails{}, NewValidationError("target_date", err.Error())
	}

	timeOfDay, err := domain.ParseTimeOfDay(in.TimeOfDay)
	if err != nil {
		return domain.ReminderDetails{}, NewValidationError("time_of_day", err.Error())
	}

	category, err := domain.NewReminderCategory(in.Category)
	if err != nil {
		return domain.ReminderDetails{}, NewValidationError("category", err.Error())
	}

	devices := make([]domain.Device, 0, len(in.Devices))
	for i, d := range in.Devices {
		device, err := domain.NewDevice(d.DeviceID, d.PushToken)
		if err != nil {
			return domain.ReminderDetails{}, NewValidationError(
				fmt.Sprintf("devices[%d]", i), err.Error(),
			)
		}

		devices = append(devices, device)
	}

	deviceCollection, err := domain.NewDevices(devices)
	if err != nil {
		return domain.ReminderDetails{}, NewValidationError("devices", err.Error())
	}

	return domain.ReminderDetails{
		CarID:            carID,
		Title:            in.Title,
		Description:      in.Description,
		TargetDate:       targetDate,
		TimeOfDay:        timeOfDay,
		Category:         category,
		NotifyBeforeDays: in.NotifyBeforeDays,
		Devices:          deviceCollection,
	}, nil
}
