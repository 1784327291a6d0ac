package handler

import "github.com/KasumiMercury/primind-car-care/internal/app"

type MaintenanceRecordRequest struct {
	CarID          string   `json:"car_id" binding:"required,uuid"`
	ServiceType    string   `json:"service_type"`
	Description    string   `json:"description"`
	ServiceDate    string   `json:"service_date" binding:"required"`
	Mileage        *int     `json:"mileage" binding:"omitempty,min=0"`
	Cost           *float64 `json:"cost" binding:"omitempty,min=0"`
	NextDueDate    *string  `json:"next_due_date"`
	NextDueMileage *int     `json:"next_due_mileage" binding:"omitempty,min=0"`
	Notes          string   `json:"notes"`
}

type ListMaintenanceRecordsRequest struct {
	CarID string `form:"car_id" binding:"omitempty,uuid"`
}

func (r MaintenanceRecordRequest) toInput() app.MaintenanceRecordInput {
	return app.MaintenanceRecordInput{
		CarID:          r.CarID,
		ServiceType:    r.ServiceType,
		Description:    r.Description,
		ServiceDate:    r.ServiceDate,
		Mileage:        r.Mileage,
		Cost:           r.Cost,
		NextDueDate:    r.NextDueDate,
		NextDueMileage: r.NextDueMileage,
		Notes:          r.Notes,
	}
}
