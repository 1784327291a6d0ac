package repository

import (
	"context"
	"log/slog"

	"gorm.io/gorm"

	"github.com/KasumiMercury/primind-car-care/internal/domain"
)

type serviceLocationRepositoryImpl struct {
	db *gorm.DB
}

func NewServiceLocationRepository(db *gorm.DB) domain.ServiceLocationRepository {
	return &serviceLocationRepositoryImpl{
		db: db,
	}
}

func (r *serviceLocationRepositoryImpl) Save(ctx context.Context, location *domain.ServiceLocation) error {
	result := r.db.WithContext(ctx).Create(ServiceLocationFromEntity(location))
	if result.Error != nil {
		slog.ErrorContext(ctx, "failed to save service location to database",
			"location_id", location.ID().String(),
			"error", result.Error,
		)

		return result.Error
	}

	slog.DebugContext(ctx, "service location saved to database",
		"location_id", location.ID().String(),
	)

	return nil
}

// FindWithinBounds is a coarse prefilter; exact distances are computed by the caller.
func (r *serviceLocationRepositoryImpl) FindWithinBounds(ctx context.Context, bounds domain.BoundingBox) ([]*domain.ServiceLocation, error) {
	slog.DebugContext(ctx, "finding service locations within bounds",
		"min_lat", bounds.MinLatitude,
		"max_lat", bounds.MaxLatitude,
		"min_lon", bounds.MinLongitude,
		"max_lon", bounds.MaxLongitude,
	)

	var models []ServiceLocationModel

	result := r.db.WithContext(ctx).
		Where("latitude BETWEEN ? AND ?", bounds.MinLatitude, bounds.MaxLatitude).
		Where("longitude BETWEEN ? AND ?", bounds.MinLongitude, bounds.MaxLongitude).
		Find(&models)
	if result.Error != nil {
		slog.ErrorContext(ctx, "failed to find service locations within bounds",
			"error", result.Error,
		)

		return nil, result.Error
	}

	locations := make([]*domain.ServiceLocation, 0, len(models))
	for _, m := range models {
		location, err := m.ToEntity()
		if err != nil {
			slog.ErrorContext(ctx, "failed to convert model to entity",
				"location_id", m.ID,
				"error", err,
			)

			return nil, err
		}

		locations = append(locations, location)
	}

	return locations, nil
}
