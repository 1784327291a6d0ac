package handler

import "github.com/KasumiMercury/primind-car-care/internal/app"

type CarRequest struct {
	Make         string `json:"make" binding:"required"`
	Model        string `json:"model" binding:"required"`
	Year         int    `json:"year" binding:"required"`
	LicensePlate string `json:"license_plate"`
	VIN          string `json:"vin"`
	Mileage      *int   `json:"mileage" binding:"omitempty,min=0"`
}

func (r CarRequest) toInput() app.CarInput {
	return app.CarInput{
		Make:         r.Make,
		Model:        r.Model,
		Year:         r.Year,
		LicensePlate: r.LicensePlate,
		VIN:          r.VIN,
		Mileage:      r.Mileage,
	}
}
