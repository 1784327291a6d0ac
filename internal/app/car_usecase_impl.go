package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/KasumiMercury/primind-car-care/internal/domain"
)

type carUseCaseImpl struct {
	repo domain.CarRepository
}

func NewCarUseCase(repo domain.CarRepository) CarUseCase {
	return &carUseCaseImpl{
		repo: repo,
	}
}

func (uc *carUseCaseImpl) CreateCar(ctx context.Context, input CreateCarInput) (CarOutput, error) {
	slog.DebugContext(ctx, "creating car",
		"user_id", input.UserID,
	)

	userID, err := parseUserID(input.UserID)
	if err != nil {
		return CarOutput{}, err
	}

	car, err := domain.NewCar(userID, input.Car.toDetails())
	if err != nil {
		return CarOutput{}, newDomainValidationError(err, "car")
	}

	if err := uc.repo.Save(ctx, car); err != nil {
		slog.ErrorContext(ctx, "failed to save car",
			"error", err,
			"car_id", car.ID().String(),
		)

		return CarOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.DebugContext(ctx, "car created",
		"car_id", car.ID().String(),
	)

	return FromCar(car), nil
}

func (uc *carUseCaseImpl) GetCar(ctx context.Context, input GetCarInput) (CarOutput, error) {
	userID, carID, err := parseCarRef(input.UserID, input.ID)
	if err != nil {
		return CarOutput{}, err
	}

	car, err := loadOwnedCar(ctx, uc.repo, userID, carID)
	if err != nil {
		return CarOutput{}, err
	}

	return FromCar(car), nil
}

func (uc *carUseCaseImpl) ListCars(ctx context.Context, input ListCarsInput) (CarsOutput, error) {
	userID, err := parseUserID(input.UserID)
	if err != nil {
		return CarsOutput{}, err
	}

	cars, err := uc.repo.FindByUserID(ctx, userID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list cars",
			"error", err,
			"user_id", input.UserID,
		)

		return CarsOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	return FromCars(cars), nil
}

func (uc *carUseCaseImpl) UpdateCar(ctx context.Context, input UpdateCarInput) (CarOutput, error) {
	slog.DebugContext(ctx, "updating car",
		"car_id", input.ID,
	)

	userID, carID, err := parseCarRef(input.UserID, input.ID)
	if err != nil {
		return CarOutput{}, err
	}

	car, err := loadOwnedCar(ctx, uc.repo, userID, carID)
	if err != nil {
		return CarOutput{}, err
	}

	if err := car.UpdateDetails(input.Car.toDetails()); err != nil {
		return CarOutput{}, newDomainValidationError(err, "car")
	}

	if err := uc.repo.Update(ctx, car); err != nil {
		if errors.Is(err, domain.ErrCarNotFound) {
			return CarOutput{}, fmt.Errorf("%w: %v", ErrNotFound, err)
		}

		slog.ErrorContext(ctx, "failed to update car",
			"error", err,
			"car_id", input.ID,
		)

		return CarOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	return FromCar(car), nil
}

func (uc *carUseCaseImpl) DeleteCar(ctx context.Context, input DeleteCarInput) error {
	slog.DebugContext(ctx, "deleting car",
		"car_id", input.ID,
	)

	userID, carID, err := parseCarRef(input.UserID, input.ID)
	if err != nil {
		return err
	}

	if _, err := loadOwnedCar(ctx, uc.repo, userID, carID); err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, carID); err != nil {
		if errors.Is(err, domain.ErrCarNotFound) {
			return fmt.Errorf("%w: %v", ErrNotFound, err)
		}

		slog.ErrorContext(ctx, "failed to delete car",
			"error", err,
			"car_id", input.ID,
		)

		return fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.InfoContext(ctx, "car deleted with its records and reminders",
		"car_id", input.ID,
	)

	return nil
}

func parseCarRef(rawUserID, rawCarID string) (domain.UserID, domain.CarID, error) {
	userID, err := parseUserID(rawUserID)
	if err != nil {
		return domain.UserID{}, domain.CarID{}, err
	}

	carID, err := domain.CarIDFromString(rawCarID)
	if err != nil {
		return domain.UserID{}, domain.CarID{}, NewValidationError("id", err.Error())
	}

	return userID, carID, nil
}
