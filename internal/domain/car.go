package domain

import (
	"errors"
	"strings"
	"time"
)

const (
	minCarYear   = 1886
	maxVINLength = 17
)

var (
	ErrEmptyCarMake    = errors.New("car make cannot be empty")
	ErrEmptyCarModel   = errors.New("car model cannot be empty")
	ErrInvalidCarYear  = errors.New("car year is out of range")
	ErrInvalidVIN      = errors.New("VIN must be 17 characters")
	ErrNegativeMileage = errors.New("mileage cannot be negative")
)

type CarDetails struct {
	Make         string
	Model        string
	Year         int
	LicensePlate string
	VIN          string
	Mileage      *int
}

func (d CarDetails) normalize(now time.Time) (CarDetails, error) {
	d.Make = strings.TrimSpace(d.Make)
	if d.Make == "" {
		return CarDetails{}, ErrEmptyCarMake
	}

	d.Model = strings.TrimSpace(d.Model)
	if d.Model == "" {
		return CarDetails{}, ErrEmptyCarModel
	}

	// next model year is sold before the calendar year starts
	if d.Year < minCarYear || d.Year > now.Year()+1 {
		return CarDetails{}, ErrInvalidCarYear
	}

	d.LicensePlate = strings.ToUpper(strings.TrimSpace(d.LicensePlate))

	d.VIN = strings.ToUpper(strings.TrimSpace(d.VIN))
	if d.VIN != "" && len(d.VIN) != maxVINLength {
		return CarDetails{}, ErrInvalidVIN
	}

	if d.Mileage != nil && *d.Mileage < 0 {
		return CarDetails{}, ErrNegativeMileage
	}

	return d, nil
}

type Car struct {
	id        CarID
	userID    UserID
	details   CarDetails
	createdAt time.Time
	updatedAt time.Time
}

func NewCar(userID UserID, details CarDetails) (*Car, error) {
	now := time.Now()

	normalized, err := details.normalize(now)
	if err != nil {
		return nil, err
	}

	return &Car{
		id:        NewCarID(),
		userID:    userID,
		details:   normalized,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstituteCar(id CarID, userID UserID, details CarDetails, createdAt, updatedAt time.Time) *Car {
	return &Car{
		id:        id,
		userID:    userID,
		details:   details,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (c *Car) UpdateDetails(details CarDetails) error {
	now := time.Now()

	normalized, err := details.normalize(now)
	if err != nil {
		return err
	}

	c.details = normalized
	c.updatedAt = now

	return nil
}

func (c *Car) BelongsTo(userID UserID) bool {
	return c.userID.Equals(userID)
}

func (c *Car) ID() CarID {
	return c.id
}

func (c *Car) UserID() UserID {
	return c.userID
}

func (c *Car) Details() CarDetails {
	return c.details
}

func (c *Car) DisplayName() string {
	return strings.TrimSpace(c.details.Make + " " + c.details.Model)
}

func (c *Car) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Car) UpdatedAt() time.Time {
	return c.updatedAt
}
