package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type LocationCategory string

const (
	LocationCategoryServiceCenter LocationCategory = "service_center"
	LocationCategoryOilChange     LocationCategory = "oil_change"
	LocationCategoryTireShop      LocationCategory = "tire_shop"
	LocationCategoryCarWash       LocationCategory = "car_wash"
	LocationCategoryGasStation    LocationCategory = "gas_station"
)

var (
	ErrEmptyLocationName       = errors.New("location name cannot be empty")
	ErrInvalidLocationCategory = errors.New("invalid location category")
)

func NewLocationCategory(s string) (LocationCategory, error) {
	switch LocationCategory(s) {
	case "":
		return LocationCategoryServiceCenter, nil
	case LocationCategoryServiceCenter, LocationCategoryOilChange, LocationCategoryTireShop,
		LocationCategoryCarWash, LocationCategoryGasStation:
		return LocationCategory(s), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidLocationCategory, s)
	}
}

type ServiceLocation struct {
	id          ServiceLocationID
	name        string
	address     string
	category    LocationCategory
	coordinates Coordinates
	phone       string
	createdAt   time.Time
}

func NewServiceLocation(name, address string, category LocationCategory, coordinates Coordinates, phone string) (*ServiceLocation, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyLocationName
	}

	return &ServiceLocation{
		id:          NewServiceLocationID(),
		name:        name,
		address:     strings.TrimSpace(address),
		category:    category,
		coordinates: coordinates,
		phone:       strings.TrimSpace(phone),
		createdAt:   time.Now(),
	}, nil
}

func ReconstituteServiceLocation(
	id ServiceLocationID,
	name string,
	address string,
	category LocationCategory,
	coordinates Coordinates,
	phone string,
	createdAt time.Time,
) *ServiceLocation {
	return &ServiceLocation{
		id:          id,
		name:        name,
		address:     address,
		category:    category,
		coordinates: coordinates,
		phone:       phone,
		createdAt:   createdAt,
	}
}

func (l *ServiceLocation) ID() ServiceLocationID {
	return l.id
}

func (l *ServiceLocation) Name() string {
	return l.name
}

func (l *ServiceLocation) Address() string {
	return l.address
}

func (l *ServiceLocation) Category() LocationCategory {
	return l.category
}

func (l *ServiceLocation) Coordinates() Coordinates {
	return l.coordinates
}

func (l *ServiceLocation) Phone() string {
	return l.phone
}

func (l *ServiceLocation) CreatedAt() time.Time {
	return l.createdAt
}
