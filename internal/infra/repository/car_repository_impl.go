package repository

import (
	"context"
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"github.com/KasumiMercury/primind-car-care/internal/domain"
)

type carRepositoryImpl struct {
	db *gorm.DB
}

func NewCarRepository(db *gorm.DB) domain.CarRepository {
	return &carRepositoryImpl{
		db: db,
	}
}

func (r *carRepositoryImpl) Save(ctx context.Context, car *domain.Car) error {
	slog.DebugContext(ctx, "saving car to database",
		"car_id", car.ID().String(),
	)

	m := CarFromEntity(car)

	result := r.db.WithContext(ctx).Create(m)
	if result.Error != nil {
		slog.ErrorContext(ctx, "failed to save car to database",
			"car_id", car.ID().String(),
			"error", result.Error,
		)

		return result.Error
	}

	return nil
}

func (r *carRepositoryImpl) FindByID(ctx context.Context, id domain.CarID) (*domain.Car, error) {
	slog.DebugContext(ctx, "finding car by ID",
		"car_id", id.String(),
	)

	var m CarModel

	result := r.db.WithContext(ctx).Where("id = ?", id.String()).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			slog.DebugContext(ctx, "car not found",
				"car_id", id.String(),
			)

			return nil, domain.ErrCarNotFound
		}

		slog.ErrorContext(ctx, "failed to find car by ID",
			"car_id", id.String(),
			"error", result.Error,
		)

		return nil, result.Error
	}

	return m.ToEntity()
}

func (r *carRepositoryImpl) FindByUserID(ctx context.Context, userID domain.UserID) ([]*domain.Car, error) {
	slog.DebugContext(ctx, "finding cars by user ID",
		"user_id", userID.String(),
	)

	var models []CarModel

	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID.String()).
		Order("created_at ASC").
		Find(&models)
	if result.Error != nil {
		slog.ErrorContext(ctx, "failed to find cars by user ID",
			"user_id", userID.String(),
			"error", result.Error,
		)

		return nil, result.Error
	}

	cars := make([]*domain.Car, 0, len(models))
	for _, m := range models {
		car, err := m.ToEntity()
		if err != nil {
			slog.ErrorContext(ctx, "failed to convert model to entity",
				"car_id", m.ID,
				"error", err,
			)

			return nil, err
		}

		cars = append(cars, car)
	}

	slog.DebugContext(ctx, "cars found by user ID",
		"user_id", userID.String(),
		"count", len(cars),
	)

	return cars, nil
}

func (r *carRepositoryImpl) Update(ctx context.Context, car *domain.Car) error {
	slog.DebugContext(ctx, "updating car in database",
		"car_id", car.ID().String(),
	)

	m := CarFromEntity(car)

	// Select("*") so cleared optional columns are written as well
	result := r.db.WithContext(ctx).
		Model(&CarModel{}).
		Where("id = ?", m.ID).
		Select("*").
		Omit("id", "user_id", "created_at").
		Updates(m)
	if result.Error != nil {
		slog.ErrorContext(ctx, "failed to update car in database",
			"car_id", car.ID().String(),
			"error", result.Error,
		)

		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrCarNotFound
	}

	return nil
}

// Delete removes the car together with its maintenance records and reminders.
func (r *carRepositoryImpl) Delete(ctx context.Context, id domain.CarID) error {
	slog.DebugContext(ctx, "deleting car from database",
		"car_id", id.String(),
	)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		records := tx.Where("car_id = ?", id.String()).Delete(&MaintenanceRecordModel{})
		if records.Error != nil {
			return records.Error
		}

		reminders := tx.Where("car_id = ?", id.String()).Delete(&ReminderModel{})
		if reminders.Error != nil {
			return reminders.Error
		}

		result := tx.Where("id = ?", id.String()).Delete(&CarModel{})
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return domain.ErrCarNotFound
		}

		slog.DebugContext(ctx, "car deleted from database",
			"car_id", id.String(),
			"maintenance_records", records.RowsAffected,
			"reminders", reminders.RowsAffected,
		)

		return nil
	})
	if err != nil && !errors.Is(err, domain.ErrCarNotFound) {
		slog.ErrorContext(ctx, "failed to delete car from database",
			"car_id", id.String(),
			"error", err,
		)
	}

	return err
}
