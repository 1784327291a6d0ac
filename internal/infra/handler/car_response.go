package handler

import (
	"time"

	"github.com/KasumiMercury/primind-car-care/internal/app"
)

type CarResponse struct {
	ID           string    `json:"id"`
	Make         string    `json:"make"`
	Model        string    `json:"model"`
	Year         int       `json:"year"`
	LicensePlate string    `json:"license_plate,omitempty"`
	VIN          string    `json:"vin,omitempty"`
	Mileage      *int      `json:"mileage,omitempty"`
	DisplayName  string    `json:"display_name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CarsResponse struct {
	Cars  []CarResponse `json:"cars"`
	Count int32         `json:"count"`
}

func FromCarDTO(output app.CarOutput) CarResponse {
	return CarResponse{
		ID:           output.ID,
		Make:         output.Make,
		Model:        output.Model,
		Year:         output.Year,
		LicensePlate: output.LicensePlate,
		VIN:          output.VIN,
		Mileage:      output.Mileage,
		DisplayName:  output.DisplayName,
		CreatedAt:    output.CreatedAt,
		UpdatedAt:    output.UpdatedAt,
	}
}

func FromCarDTOs(output app.CarsOutput) CarsResponse {
	cars := make([]CarResponse, 0, len(output.Cars))
	for _, c := range output.Cars {
		cars = append(cars, FromCarDTO(c))
	}

	return CarsResponse{
		Cars:  cars,
		Count: output.Count,
	}
}
