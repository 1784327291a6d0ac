package repository

import (
	"time"

	"github.com/KasumiMercury/primind-car-care/internal/domain"
)

type ServiceLocationModel struct {
	ID        string    `gorm:"column:id;type:uuid;primaryKey"`
	Name      string    `gorm:"column:name;type:varchar(200);not null"`
	Address   string    `gorm:"column:address;type:text;not null;default:''"`
	Category  string    `gorm:"column:category;type:varchar(32);not null"`
	Latitude  float64   `gorm:"column:latitude;type:double precision;not null;index:idx_service_locations_lat_lon,priority:1"`
	Longitude float64   `gorm:"column:longitude;type:double precision;not null;index:idx_service_locations_lat_lon,priority:2"`
	Phone     string    `gorm:"column:phone;type:varchar(32);not null;default:''"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null"`
}

func (ServiceLocationModel) TableName() string {
	return "service_locations"
}

func (m *ServiceLocationModel) ToEntity() (*domain.ServiceLocation, error) {
	locationID, err := domain.ServiceLocationIDFromString(m.ID)
	if err != nil {
		return nil, err
	}

	category, err := domain.NewLocationCategory(m.Category)
	if err != nil {
		return nil, err
	}

	coordinates, err := domain.NewCoordinates(m.Latitude, m.Longitude)
	if err != nil {
		return nil, err
	}

	return domain.ReconstituteServiceLocation(
		locationID,
		m.Name,
		m.Address,
		category,
		coordinates,
		m.Phone,
		m.CreatedAt,
	), nil
}

func ServiceLocationFromEntity(e *domain.ServiceLocation) *ServiceLocationModel {
	return &ServiceLocationModel{
		ID:        e.ID().String(),
		Name:      e.Name(),
		Address:   e.Address(),
		Category:  string(e.Category()),
		Latitude:  e.Coordinates().Latitude(),
		Longitude: e.Coordinates().Longitude(),
		Phone:     e.Phone(),
		CreatedAt: e.CreatedAt(),
	}
}
