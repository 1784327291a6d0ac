package app

import (
	"time"

	"github.com/KasumiMercury/primind-car-care/internal/domain"
)

type CarOutput struct {
	ID           string
	UserID       string
	Make         string
	Model        string
	Year         int
	LicensePlate string
	VIN          string
	Mileage      *int
	DisplayName  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type CarsOutput struct {
	Cars  []CarOutput
	Count int32
}

func FromCar(car *domain.Car) CarOutput {
	details := car.Details()

	return CarOutput{
		ID:           car.ID().String(),
		UserID:       car.UserID().String(),
		Make:         details.Make,
		Model:        details.Model,
		Year:         details.Year,
		LicensePlate: details.LicensePlate,
		VIN:          details.VIN,
		Mileage:      details.Mileage,
		DisplayName:  car.DisplayName(),
		CreatedAt:    car.CreatedAt(),
		UpdatedAt:    car.UpdatedAt(),
	}
}

func FromCars(cars []*domain.Car) CarsOutput {
	outputs := make([]CarOutput, 0, len(cars))
	for _, c := range cars {
		outputs = append(outputs, FromCar(c))
	}

	return CarsOutput{
		Cars:  outputs,
		Count: int32(len(outputs)), //nolint:gosec
	}
}
