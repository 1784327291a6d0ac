package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/KasumiMercury/primind-car-care/internal/domain"
)

func parseUserID(s string) (domain.UserID, error) {
	userID, err := domain.UserIDFromString(s)
	if err != nil {
		return domain.UserID{}, NewValidationError("user_id", err.Error())
	}

	return userID, nil
}

// loadOwnedCar reports a car owned by someone else as not found.
func loadOwnedCar(ctx context.Context, repo domain.CarRepository, userID domain.UserID, id domain.CarID) (*domain.Car, error) {
	car, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrCarNotFound) {
			return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
		}

		slog.ErrorContext(ctx, "failed to find car",
			"error", err,
			"car_id", id.String(),
		)

		return nil, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	if !car.BelongsTo(userID) {
		slog.WarnContext(ctx, "car requested by non-owner",
			"car_id", id.String(),
			"user_id", userID.String(),
		)

		return nil, fmt.Errorf("%w: %v", ErrNotFound, domain.ErrCarNotFound)
	}

	return car, nil
}

// requireOwnedCar validates a car referenced from a request body.
func requireOwnedCar(ctx context.Context, repo domain.CarRepository, userID domain.UserID, id domain.CarID) error {
	_, err := loadOwnedCar(ctx, repo, userID, id)
	if errors.Is(err, ErrNotFound) {
		return NewValidationError("car_id", domain.ErrCarNotFound.Error())
	}

	return err
}
