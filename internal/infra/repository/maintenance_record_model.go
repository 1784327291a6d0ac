package repository

import (
	"time"

	"github.com/KasumiMercury/primind-car-care/internal/domain"
)

type MaintenanceRecordModel struct {
	ID             string     `gorm:"column:id;type:uuid;primaryKey"`
	UserID         string     `gorm:"column:user_id;type:varchar(128);not null;index:idx_maintenance_records_user_id"`
	CarID          string     `gorm:"column:car_id;type:uuid;not null;index:idx_maintenance_records_car_id"`
	ServiceType    string     `gorm:"column:service_type;type:varchar(32);not null"`
	Description    string     `gorm:"column:description;type:text;not null;default:''"`
	ServiceDate    time.Time  `gorm:"column:service_date;type:date;not null"`
	Mileage        *int       `gorm:"column:mileage;type:integer"`
	Cost           *float64   `gorm:"column:cost;type:numeric(12,2)"`
	NextDueDate    *time.Time `gorm:"column:next_due_date;type:date;index:idx_maintenance_records_next_due_date"`
	NextDueMileage *int       `gorm:"column:next_due_mileage;type:integer"`
	Notes          string     `gorm:"column:notes;type:text;not null;default:''"`
	CreatedAt      time.Time  `gorm:"column:created_at;type:timestamptz;not null"`
	UpdatedAt      time.Time  `gorm:"column:updated_at;type:timestamptz;not null"`
}

func (MaintenanceRecordModel) TableName() string {
	return "maintenance_records"
}

func (m *MaintenanceRecordModel) ToEntity() (*domain.MaintenanceRecord, error) {
	recordID, err := domain.MaintenanceRecordIDFromString(m.ID)
	if err != nil {
		return nil, err
	}

	userID, err := domain.UserIDFromString(m.UserID)
	if err != nil {
		return nil, err
	}

	carID, err := domain.CarIDFromString(m.CarID)
	if err != nil {
		return nil, err
	}

	serviceType, err := domain.NewServiceType(m.ServiceType)
	if err != nil {
		return nil, err
	}

	return domain.ReconstituteMaintenanceRecord(
		recordID,
		userID,
		domain.MaintenanceDetails{
			CarID:          carID,
			ServiceType:    serviceType,
			Description:    m.Description,
			ServiceDate:    calendarDateOf(m.ServiceDate),
			Mileage:        m.Mileage,
			Cost:           m.Cost,
			NextDueDate:    nullableCalendarDateOf(m.NextDueDate),
			NextDueMileage: m.NextDueMileage,
			Notes:          m.Notes,
		},
		m.CreatedAt,
		m.UpdatedAt,
	), nil
}

func MaintenanceRecordFromEntity(e *domain.MaintenanceRecord) *MaintenanceRecordModel {
	details := e.Details()

	return &MaintenanceRecordModel{
		ID:             e.ID().String(),
		UserID:         e.UserID().String(),
		CarID:          e.CarID().String(),
		ServiceType:    string(details.ServiceType),
		Description:    details.Description,
		ServiceDate:    dateColumn(details.ServiceDate),
		Mileage:        details.Mileage,
		Cost:           details.Cost,
		NextDueDate:    nullableDateColumn(details.NextDueDate),
		NextDueMileage: details.NextDueMileage,
		Notes:          details.Notes,
		CreatedAt:      e.CreatedAt(),
		UpdatedAt:      e.UpdatedAt(),
	}
}
