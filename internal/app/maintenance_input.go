package app

import "github.com/KasumiMercury/primind-car-care/internal/domain"

type MaintenanceRecordInput struct {
	CarID          string
	ServiceType    string
	Description    string
	ServiceDate    string
	Mileage        *int
	Cost           *float64
	NextDueDate    *string
	NextDueMileage *int
	Notes          string
}

type CreateMaintenanceRecordInput struct {
	UserID string
	Record MaintenanceRecordInput
}

type GetMaintenanceRecordInput struct {
	UserID string
	ID     string
}

type ListMaintenanceRecordsInput struct {
	UserID string
	// CarID narrows the listing to one car when set.
	CarID *string
}

type UpdateMaintenanceRecordInput struct {
	UserID string
	ID     string
	Record MaintenanceRecordInput
}

type DeleteMaintenanceRecordInput struct {
	UserID string
	ID     string
}

func (in MaintenanceRecordInput) toDetails() (domain.MaintenanceDetails, error) {
	carID, err := domain.CarIDFromString(in.CarID)
	if err != nil {
		return domain.MaintenanceDetails{}, NewValidationError("car_id", err.Error())
	}

	serviceType, err := domain.NewServiceType(in.ServiceType)
	if err != nil {
		return domain.MaintenanceDetails{}, NewValidationError("service_type", err.Error())
	}

	serviceDate, err := domain.ParseCalendarDate(in.ServiceDate)
	if err != nil {
		return domain.MaintenanceDetails{}, NewValidationError("service_date", err.Error())
	}

	var nextDue *domain.CalendarDate
	if in.NextDueDate != nil && *in.NextDueDate != "" {
		d, err := domain.ParseCalendarDate(*in.NextDueDate)
		if err != nil {
			return domain.MaintenanceDetails{}, NewValidationError("next_due_date", err.Error())
		}

		nextDue = &d
	}

	return domain.MaintenanceDetails{
		CarID:          carID,
		ServiceType:    serviceType,
		Description:    in.Description,
		ServiceDate:    serviceDate,
		Mileage:        in.Mileage,
		Cost:           in.Cost,
		NextDueDate:    nextDue,
		NextDueMileage: in.NextDueMileage,
		Notes:          in.Notes,
	}, nil
}
