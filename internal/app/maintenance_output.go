package app

import (
	"time"

	"github.com/KasumiMercury/primind-car-care/internal/domain"
)

type MaintenanceRecordOutput struct {
	ID             string
	UserID         string
	CarID          string
	ServiceType    string
	Description    string
	ServiceDate    string
	Mileage        *int
	Cost           *float64
	NextDueDate    *string
	NextDueMileage *int
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type MaintenanceRecordsOutput struct {
	Records   []MaintenanceRecordOutput
	Count     int32
	TotalCost float64
}

func FromMaintenanceRecord(record *domain.MaintenanceRecord) MaintenanceRecordOutput {
	details := record.Details()

	var nextDue *string
	if details.NextDueDate != nil {
		s := details.NextDueDate.String()
		nextDue = &s
	}

	return MaintenanceRecordOutput{
		ID:             record.ID().String(),
		UserID:         record.UserID().String(),
		CarID:          details.CarID.String(),
		ServiceType:    string(details.ServiceType),
		Description:    details.Description,
		ServiceDate:    details.ServiceDate.String(),
		Mileage:        details.Mileage,
		Cost:           details.Cost,
		NextDueDate:    nextDue,
		NextDueMileage: details.NextDueMileage,
		Notes:          details.Notes,
		CreatedAt:      record.CreatedAt(),
		UpdatedAt:      record.UpdatedAt(),
	}
}

func FromMaintenanceRecords(records []*domain.MaintenanceRecord) MaintenanceRecordsOutput {
	outputs := make([]MaintenanceRecordOutput, 0, len(records))
	total := 0.0

	for _, r := range records {
		outputs = append(outputs, FromMaintenanceRecord(r))
		total += r.CostOrZero()
	}

	return MaintenanceRecordsOutput{
		Records:   outputs,
		Count:     int32(len(outputs)), //nolint:gosec
		TotalCost: total,
	}
}
