package handler

import (
	"time"

	"github.com/KasumiMercury/primind-car-care/internal/app"
)

type DueResponse struct {
	Status    string `json:"status"`
	DaysUntil int    `json:"days_until"`
}

type DeviceResponse struct {
	DeviceID  string `json:"device_id"`
	PushToken string `json:"push_token"`
}

type ReminderResponse struct {
	ID               string           `json:"id"`
	CarID            *string          `json:"car_id,omitempty"`
	Title            string           `json:"title"`
	Description      string           `json:"description,omitempty"`
	TargetDate       string           `json:"target_date"`
	TimeOfDay        string           `json:"time_of_day,omitempty"`
	Category         string           `json:"category"`
	Status           string           `json:"status"`
	NotifyBeforeDays *int             `json:"notify_before_days,omitempty"`
	Devices          []DeviceResponse `json:"devices"`
	Due              *DueResponse     `json:"due,omitempty"`
	DueError         string           `json:"due_error,omitempty"`
	LastNotifiedOn   *string          `json:"last_notified_on,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

type RemindersResponse struct {
	Today     string             `json:"today"`
	Reminders []ReminderResponse `json:"reminders"`
	Count     int32              `json:"count"`
}

type NotificationFailureResponse struct {
	ReminderID string `json:"reminder_id"`
	Reason     string `json:"reason"`
}

type NotificationsResponse struct {
	Today     string                        `json:"today"`
	Reminders []ReminderResponse            `json:"reminders"`
	Count     int32                         `json:"count"`
	Failures  []NotificationFailureResponse `json:"failures"`
}

func FromReminderDTO(output app.ReminderOutput) ReminderResponse {
	devices := make([]DeviceResponse, 0, len(output.Devices))
	for _, d := range output.Devices {
		devices = append(devices, DeviceResponse{
			DeviceID:  d.DeviceID,
			PushToken: d.PushToken,
		})
	}

	var due *DueResponse
	if output.Due != nil {
		due = &DueResponse{
			Status:    output.Due.Status,
			DaysUntil: output.Due.DaysUntil,
		}
	}

	return ReminderResponse{
		ID:               output.ID,
		CarID:            output.CarID,
		Title:            output.Title,
		Description:      output.Description,
		TargetDate:       output.TargetDate,
		TimeOfDay:        output.TimeOfDay,
		Category:         output.Category,
		Status:           output.Status,
		NotifyBeforeDays: output.NotifyBeforeDays,
		Devices:          devices,
		Due:              due,
		DueError:         output.DueError,
		LastNotifiedOn:   output.LastNotifiedOn,
		CreatedAt:        output.CreatedAt,
		UpdatedAt:        output.UpdatedAt,
	}
}

func fromReminderDTOList(outputs []app.ReminderOutput) []ReminderResponse {
	reminders := make([]ReminderResponse, 0, len(outputs))
	for _, r := range outputs {
		reminders = append(reminders, FromReminderDTO(r))
	}

	return reminders
}

func FromReminderDTOs(output app.RemindersOutput) RemindersResponse {
	return RemindersResponse{
		Today:     output.Today,
		Reminders: fromReminderDTOList(output.Reminders),
		Count:     output.Count,
	}
}

func FromDueNotificationsDTO(output app.DueNotificationsOutput) NotificationsResponse {
	failures := make([]NotificationFailureResponse, 0, len(output.Failures))
	for _, f := range output.Failures {
		failures = append(failures, NotificationFailureResponse{
			ReminderID: f.ReminderID,
			Reason:     f.Reason,
		})
	}

	return NotificationsResponse{
		Today:     output.Today,
		Reminders: fromReminderDTOList(output.Reminders),
		Count:     output.Count,
		Failures:  failures,
	}
}
