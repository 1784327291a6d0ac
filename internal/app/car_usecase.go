package app

import "context"

type CarUseCase interface {
	CreateCar(ctx context.Context, input CreateCarInput) (CarOutput, error)
	GetCar(ctx context.Context, input GetCarInput) (CarOutput, error)
	ListCars(ctx context.Context, input ListCarsInput) (CarsOutput, error)
	UpdateCar(ctx context.Context, input UpdateCarInput) (CarOutput, error)
	DeleteCar(ctx context.Context, input DeleteCarInput) error
}
