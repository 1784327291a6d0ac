package repository

import (
	"context"
	"log/slog"

	"gorm.io/gorm"
)

// Models lists every table owned by the service, in migration order.
func Models() []any {
	return []any{
		&CarModel{},
		&MaintenanceRecordModel{},
		&ReminderModel{},
		&ServiceLocationModel{},
	}
}

func AutoMigrate(ctx context.Context, db *gorm.DB) error {
	slog.InfoContext(ctx, "running database migrations",
		"tables", len(Models()),
	)

	if err := db.WithContext(ctx).AutoMigrate(Models()...); err != nil {
		slog.ErrorContext(ctx, "database migration failed",
			"error", err,
		)

		return err
	}

	return nil
}
