package repository

import (
	"context"
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"github.com/KasumiMercury/primind-car-care/internal/domain"
)

type maintenanceRecordRepositoryImpl struct {
	db *gorm.DB
}

func NewMaintenanceRecordRepository(db *gorm.DB) domain.MaintenanceRecordRepository {
	return &maintenanceRecordRepositoryImpl{
		db: db,
	}
}

func (r *maintenanceRecordRepositoryImpl) Save(ctx context.Context, record *domain.MaintenanceRecord) error {
	slog.DebugContext(ctx, "saving maintenance record to database",
		"record_id", record.ID().String(),
		"car_id", record.CarID().String(),
	)

	result := r.db.WithContext(ctx).Create(MaintenanceRecordFromEntity(record))
	if result.Error != nil {
		slog.ErrorContext(ctx, "failed to save maintenance record to database",
			"record_id", record.ID().String(),
			"error", result.Error,
		)

		return result.Error
	}

	return nil
}

func (r *maintenanceRecordRepositoryImpl) FindByID(ctx context.Context, id domain.MaintenanceRecordID) (*domain.MaintenanceRecord, error) {
	var m MaintenanceRecordModel

	result := r.db.WithContext(ctx).Where("id = ?", id.String()).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			slog.DebugContext(ctx, "maintenance record not found",
				"record_id", id.String(),
			)

			return nil, domain.ErrMaintenanceRecordNotFound
		}

		slog.ErrorContext(ctx, "failed to find maintenance record by ID",
			"record_id", id.String(),
			"error", result.Error,
		)

		return nil, result.Error
	}

	return m.ToEntity()
}

// FindByUserID lists the user's records, newest service date first. A non-nil
// carID narrows the result to one car.
func (r *maintenanceRecordRepositoryImpl) FindByUserID(
	ctx context.Context,
	userID domain.UserID,
	carID *domain.CarID,
) ([]*domain.MaintenanceRecord, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID.String())
	if carID != nil {
		query = query.Where("car_id = ?", carID.String())
	}

	var models []MaintenanceRecordModel

	result := query.Order("service_date DESC").Order("created_at DESC").Find(&models)
	if result.Error != nil {
		slog.ErrorContext(ctx, "failed to find maintenance records by user ID",
			"user_id", userID.String(),
			"error", result.Error,
		)

		return nil, result.Error
	}

	records := make([]*domain.MaintenanceRecord, 0, len(models))
	for _, m := range models {
		record, err := m.ToEntity()
		if err != nil {
			slog.ErrorContext(ctx, "failed to convert model to entity",
				"record_id", m.ID,
				"error", err,
			)

			return nil, err
		}

		records = append(records, record)
	}

	slog.DebugContext(ctx, "maintenance records found by user ID",
		"user_id", userID.String(),
		"count", len(records),
	)

	return records, nil
}

func (r *maintenanceRecordRepositoryImpl) Update(ctx context.Context, record *domain.MaintenanceRecord) error {
	m := MaintenanceRecordFromEntity(record)

	result := r.db.WithContext(ctx).
		Model(&MaintenanceRecordModel{}).
		Where("id = ?", m.ID).
		Select("*").
		Omit("id", "user_id", "created_at").
		Updates(m)
	if result.Error != nil {
		slog.ErrorContext(ctx, "failed to update maintenance record in database",
			"record_id", record.ID().String(),
			"error", result.Error,
		)

		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrMaintenanceRecordNotFound
	}

	return nil
}

func (r *maintenanceRecordRepositoryImpl) Delete(ctx context.Context, id domain.MaintenanceRecordID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id.String()).Delete(&MaintenanceRecordModel{})
	if result.Error != nil {
		slog.ErrorContext(ctx, "failed to delete maintenance record from database",
			"record_id", id.String(),
			"error", result.Error,
		)

		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrMaintenanceRecordNotFound
	}

	slog.DebugContext(ctx, "maintenance record deleted from database",
		"record_id", id.String(),
	)

	return nil
}
