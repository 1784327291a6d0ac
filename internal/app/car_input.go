package app

import "github.com/KasumiMercury/primind-car-care/internal/domain"

type CarInput struct {
	Make         string
	Model        string
	Year         int
	LicensePlate string
	VIN          string
	Mileage      *int
}

type CreateCarInput struct {
	UserID string
	Car    CarInput
}

type GetCarInput struct {
	UserID string
	ID     string
}

type ListCarsInput struct {
	UserID string
}

type UpdateCarInput struct {
	UserID string
	ID     string
	Car    CarInput
}

type DeleteCarInput struct {
	UserID string
	ID     string
}

func (in CarInput) toDetails() domain.CarDetails {
	return domain.CarDetails{
		Make:         in.Make,
		Model:        in.Model,
		Year:         in.Year,
		LicensePlate: in.LicensePlate,
		VIN:          in.VIN,
		Mileage:      in.Mileage,
	}
}
