package handler

import "github.com/KasumiMercury/primind-car-care/internal/app"

type ReminderRequest struct {
	CarID            *string         `json:"car_id" binding:"omitempty,uuid"`
	Title            string          `json:"title" binding:"required,max=200"`
	Description      string          `json:"description"`
	TargetDate       string          `json:"target_date" binding:"required"`
	TimeOfDay        string          `json:"time_of_day"`
	Category         string          `json:"category"`
	NotifyBeforeDays *int            `json:"notify_before_days" binding:"omitempty,min=0"`
	Devices          []DeviceRequest `json:"devices" binding:"omitempty,dive"`
}

type DeviceRequest struct {
	DeviceID  string `json:"device_id" binding:"required"`
	PushToken string `json:"push_token" binding:"required"`
}

// TodayQuery lets the client classify against its own calendar date.
type TodayQuery struct {
	Today string `form:"today"`
}

type ListRemindersRequest struct {
	Status string `form:"status" binding:"omitempty,oneof=pending completed dismissed"`
	CarID  string `form:"car_id" binding:"omitempty,uuid"`
	Today  string `form:"today"`
}

func (r ReminderRequest) toInput() app.ReminderInput {
	devices := make([]app.DeviceInput, 0, len(r.Devices))
	for _, d := range r.Devices {
		devices = append(devices, app.DeviceInput{
			DeviceID:  d.DeviceID,
			PushToken: d.PushToken,
		})
	}

	return app.ReminderInput{
		CarID:            r.CarID,
		Title:            r.Title,
		Description:      r.Description,
		TargetDate:       r.TargetDate,
		TimeOfDay:        r.TimeOfDay,
		Category:         r.Category,
		NotifyBeforeDays: r.NotifyBeforeDays,
		Devices:          devices,
	}
}
