package repository

import (
	"time"

	"github.com/KasumiMercury/primind-car-care/internal/domain"
)

type CarModel struct {
	ID           string    `gorm:"column:id;type:uuid;primaryKey"`
	UserID       string    `gorm:"column:user_id;type:varchar(128);not null;index:idx_cars_user_id"`
	Make         string    `gorm:"column:make;type:varchar(100);not null"`
	Model        string    `gorm:"column:model;type:varchar(100);not null"`
	Year         int       `gorm:"column:year;type:integer;not null"`
	LicensePlate string    `gorm:"column:license_plate;type:varchar(32);not null;default:''"`
	VIN          string    `gorm:"column:vin;type:varchar(17);not null;default:''"`
	Mileage      *int      `gorm:"column:mileage;type:integer"`
	CreatedAt    time.Time `gorm:"column:created_at;type:timestamptz;not null"`
	UpdatedAt    time.Time `gorm:"column:updated_at;type:timestamptz;not null"`
}

func (CarModel) TableName() string {
	return "cars"
}

func (m *CarModel) ToEntity() (*domain.Car, error) {
	carID, err := domain.CarIDFromString(m.ID)
	if err != nil {
		return nil, err
	}

	userID, err := domain.UserIDFromString(m.UserID)
	if err != nil {
		return nil, err
	}

	return domain.ReconstituteCar(
		carID,
		userID,
		domain.CarDetails{
			Make:         m.Make,
			Model:        m.Model,
			Year:         m.Year,
			LicensePlate: m.LicensePlate,
			VIN:          m.VIN,
			Mileage:      m.Mileage,
		},
		m.CreatedAt,
		m.UpdatedAt,
	), nil
}

func CarFromEntity(e *domain.Car) *CarModel {
	details := e.Details()

	return &CarModel{
		ID:           e.ID().String(),
		UserID:       e.UserID().String(),
		Make:         details.Make,
		Model:        details.Model,
		Year:         details.Year,
		LicensePlate: details.LicensePlate,
		VIN:          details.VIN,
		Mileage:      details.Mileage,
		CreatedAt:    e.CreatedAt(),
		UpdatedAt:    e.UpdatedAt(),
	}
}
