package app

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/KasumiMercury/primind-car-care/internal/domain"
)

type locationUseCaseImpl struct {
	repo domain.ServiceLocationRepository
}

func NewLocationUseCase(repo domain.ServiceLocationRepository) LocationUseCase {
	return &locationUseCaseImpl{
		repo: repo,
	}
}

func (uc *locationUseCaseImpl) RegisterLocation(ctx context.Context, input RegisterLocationInput) (LocationOutput, error) {
	coordinates, err := domain.NewCoordinates(input.Latitude, input.Longitude)
	if err != nil {
		return LocationOutput{}, NewValidationError("coordinates", err.Error())
	}

	category, err := domain.NewLocationCategory(input.Category)
	if err != nil {
		return LocationOutput{}, NewValidationError("category", err.Error())
	}

	location, err := domain.NewServiceLocation(input.Name, input.Address, category, coordinates, input.Phone)
	if err != nil {
		return LocationOutput{}, newDomainValidationError(err, "location")
	}

	if err := uc.repo.Save(ctx, location); err != nil {
		slog.ErrorContext(ctx, "failed to save service location",
			"error", err,
			"location_id", location.ID().String(),
		)

		return LocationOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.DebugContext(ctx, "service location registered",
		"location_id", location.ID().String(),
	)

	return FromServiceLocation(location), nil
}

// FindNearby prefilters by bounding box in storage and ranks by great-circle
// distance.
func (uc *locationUseCaseImpl) FindNearby(ctx context.Context, input FindNearbyInput) (NearbyLocationsOutput, error) {
	origin, err := domain.NewCoordinates(input.Latitude, input.Longitude)
	if err != nil {
		return NearbyLocationsOutput{}, NewValidationError("coordinates", err.Error())
	}

	radius := input.RadiusKm
	switch {
	case math.IsNaN(radius) || math.IsInf(radius, 0):
		return NearbyLocationsOutput{}, NewValidationError("radius_km", "must be a finite number")
	case radius < 0:
		return NearbyLocationsOutput{}, NewValidationError("radius_km", "must not be negative")
	case radius == 0:
		radius = DefaultNearbyRadiusKm
	}

	limit := input.Limit
	switch {
	case limit < 0 || limit > MaxNearbyLimit:
		return NearbyLocationsOutput{}, NewValidationError("limit", fmt.Sprintf("must be between 1 and %d", MaxNearbyLimit))
	case limit == 0:
		limit = DefaultNearbyLimit
	}

	candidates, err := uc.repo.FindWithinBounds(ctx, domain.BoundingBoxAround(origin, radius))
	if err != nil {
		slog.ErrorContext(ctx, "failed to find service locations",
			"error", err,
			"radius_km", radius,
		)

		return NearbyLocationsOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	ranked := domain.RankByDistance(candidates, origin, radius, limit)

	outputs := make([]NearbyLocationOutput, 0, len(ranked))
	for _, r := range ranked {
		outputs = append(outputs, NearbyLocationOutput{
			Location:   FromServiceLocation(r.Location),
			DistanceKm: r.DistanceKm,
		})
	}

	slog.DebugContext(ctx, "nearby service locations ranked",
		"candidates", len(candidates),
		"returned", len(outputs),
	)

	return NearbyLocationsOutput{
		Locations: outputs,
		Count:     int32(len(outputs)), //nolint:gosec
		RadiusKm:  radius,
	}, nil
}

func FromServiceLocation(l *domain.ServiceLocation) LocationOutput {
	return LocationOutput{
		ID:        l.ID().String(),
		Name:      l.Name(),
		Address:   l.Address(),
		Category:  string(l.Category()),
		Latitude:  l.Coordinates().Latitude(),
		Longitude: l.Coordinates().Longitude(),
		Phone:     l.Phone(),
		CreatedAt: l.CreatedAt(),
	}
}
