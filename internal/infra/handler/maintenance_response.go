package handler

import (
	"time"

	"github.com/KasumiMercury/primind-car-care/internal/app"
)

type MaintenanceRecordResponse struct {
	ID             string    `json:"id"`
	CarID          string    `json:"car_id"`
	ServiceType    string    `json:"service_type"`
	Description    string    `json:"description,omitempty"`
	ServiceDate    string    `json:"service_date"`
	Mileage        *int      `json:"mileage,omitempty"`
	Cost           *float64  `json:"cost,omitempty"`
	NextDueDate    *string   `json:"next_due_date,omitempty"`
	NextDueMileage *int      `json:"next_due_mileage,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type MaintenanceRecordsResponse struct {
	Records   []MaintenanceRecordResponse `json:"records"`
	Count     int32                       `json:"count"`
	TotalCost float64                     `json:"total_cost"`
}

func FromMaintenanceRecordDTO(output app.MaintenanceRecordOutput) MaintenanceRecordResponse {
	return MaintenanceRecordResponse{
		ID:             output.ID,
		CarID:          output.CarID,
		ServiceType:    output.ServiceType,
		Description:    output.Description,
		ServiceDate:    output.ServiceDate,
		Mileage:        output.Mileage,
		Cost:           output.Cost,
		NextDueDate:    output.NextDueDate,
		NextDueMileage: output.NextDueMileage,
		Notes:          output.Notes,
		CreatedAt:      output.CreatedAt,
		UpdatedAt:      output.UpdatedAt,
	}
}

func FromMaintenanceRecordDTOs(output app.MaintenanceRecordsOutput) MaintenanceRecordsResponse {
	records := make([]MaintenanceRecordResponse, 0, len(output.Records))
	for _, r := range output.Records {
		records = append(records, FromMaintenanceRecordDTO(r))
	}

	return MaintenanceRecordsResponse{
		Records:   records,
		Count:     output.Count,
		TotalCost: output.TotalCost,
	}
}
