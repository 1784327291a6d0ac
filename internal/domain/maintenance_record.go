package domain

import (
	"errors"
	"strings"
	"time"
)

type ServiceType string

const (
	ServiceTypeOilChange    ServiceType = "oil_change"
	ServiceTypeTireRotation ServiceType = "tire_rotation"
	ServiceTypeBrakes       ServiceType = "brakes"
	ServiceTypeInspection   ServiceType = "inspection"
	ServiceTypeBattery      ServiceType = "battery"
	ServiceTypeRepair       ServiceType = "repair"
	ServiceTypeOther        ServiceType = "other"
)

var (
	ErrInvalidServiceType   = errors.New("invalid service type")
	ErrMissingCar           = errors.New("car is required")
	ErrNegativeCost         = errors.New("cost cannot be negative")
	ErrNextDueBeforeService = errors.New("next due date cannot be before the service date")
)

func NewServiceType(s string) (ServiceType, error) {
	switch ServiceType(s) {
	case "":
		return ServiceTypeOther, nil
	case ServiceTypeOilChange, ServiceTypeTireRotation, ServiceTypeBrakes, ServiceTypeInspection,
		ServiceTypeBattery, ServiceTypeRepair, ServiceTypeOther:
		return ServiceType(s), nil
	default:
		return "", ErrInvalidServiceType
	}
}

type MaintenanceDetails struct {
	CarID          CarID
	ServiceType    ServiceType
	Description    string
	ServiceDate    CalendarDate
	Mileage        *int
	Cost           *float64
	NextDueDate    *CalendarDate
	NextDueMileage *int
	Notes          string
}

func (d MaintenanceDetails) normalize() (MaintenanceDetails, error) {
	if d.CarID.IsZero() {
		return MaintenanceDetails{}, ErrMissingCar
	}

	if d.ServiceType == "" {
		d.ServiceType = ServiceTypeOther
	}

	if d.ServiceDate.IsZero() {
		return MaintenanceDetails{}, ErrMissingDate
	}

	if d.Mileage != nil && *d.Mileage < 0 {
		return MaintenanceDetails{}, ErrNegativeMileage
	}

	if d.NextDueMileage != nil && *d.NextDueMileage < 0 {
		return MaintenanceDetails{}, ErrNegativeMileage
	}

	if d.Cost != nil && *d.Cost < 0 {
		return MaintenanceDetails{}, ErrNegativeCost
	}

	if d.NextDueDate != nil {
		if d.NextDueDate.IsZero() {
			d.NextDueDate = nil
		} else if d.NextDueDate.Before(d.ServiceDate) {
			return MaintenanceDetails{}, ErrNextDueBeforeService
		}
	}

	d.Description = strings.TrimSpace(d.Description)
	d.Notes = strings.TrimSpace(d.Notes)

	return d, nil
}

type MaintenanceRecord struct {
	id        MaintenanceRecordID
	userID    UserID
	details   MaintenanceDetails
	createdAt time.Time
	updatedAt time.Time
}

func NewMaintenanceRecord(userID UserID, details MaintenanceDetails) (*MaintenanceRecord, error) {
	normalized, err := details.normalize()
	if err != nil {
		return nil, err
	}

	now := time.Now()

	return &MaintenanceRecord{
		id:        NewMaintenanceRecordID(),
		userID:    userID,
		details:   normalized,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstituteMaintenanceRecord(
	id MaintenanceRecordID,
	userID UserID,
	details MaintenanceDetails,
	createdAt time.Time,
	updatedAt time.Time,
) *MaintenanceRecord {
	return &MaintenanceRecord{
		id:        id,
		userID:    userID,
		details:   details,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (m *MaintenanceRecord) UpdateDetails(details MaintenanceDetails) error {
	normalized, err := details.normalize()
	if err != nil {
		return err
	}

	m.details = normalized
	m.updatedAt = time.Now()

	return nil
}

// CostOrZero treats an absent cost as zero.
func (m *MaintenanceRecord) CostOrZero() float64 {
	if m.details.Cost == nil {
		return 0
	}

	return *m.details.Cost
}

// IsDueWithin reports whether the next due date falls in [from, from+days].
func (m *MaintenanceRecord) IsDueWithin(from CalendarDate, days int) bool {
	if m.details.NextDueDate == nil || m.details.NextDueDate.IsZero() {
		return false
	}

	until := from.AddDays(days)
	due := *m.details.NextDueDate

	return !due.Before(from) && !due.After(until)
}

func (m *MaintenanceRecord) BelongsTo(userID UserID) bool {
	return m.userID.Equals(userID)
}

func (m *MaintenanceRecord) ID() MaintenanceRecordID {
	return m.id
}

func (m *MaintenanceRecord) UserID() UserID {
	return m.userID
}

func (m *MaintenanceRecord) CarID() CarID {
	return m.details.CarID
}

func (m *MaintenanceRecord) Details() MaintenanceDetails {
	return m.details
}

func (m *MaintenanceRecord) CreatedAt() time.Time {
	return m.createdAt
}

func (m *MaintenanceRecord) UpdatedAt() time.Time {
	return m.updatedAt
}
