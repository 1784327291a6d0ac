package app

import (
	"context"
	"time"
)

const (
	DefaultNearbyRadiusKm = 25.0
	DefaultNearbyLimit    = 20
	MaxNearbyLimit        = 100
)

type RegisterLocationInput struct {
	Name      string
	Address   string
	Category  string
	Latitude  float64
	Longitude float64
	Phone     string
}

// FindNearbyInput uses defaults for a zero radius or limit.
type FindNearbyInput struct {
	Latitude  float64
	Longitude float64
	RadiusKm  float64
	Limit     int
}

type LocationOutput struct {
	ID        string
	Name      string
	Address   string
	Category  string
	Latitude  float64
	Longitude float64
	Phone     string
	CreatedAt time.Time
}

type NearbyLocationOutput struct {
	Location   LocationOutput
	DistanceKm float64
}

type NearbyLocationsOutput struct {
	Locations []NearbyLocationOutput
	Count     int32
	RadiusKm  float64
}

type LocationUseCase interface {
	RegisterLocation(ctx context.Context, input RegisterLocationInput) (LocationOutput, error)
	FindNearby(ctx context.Context, input FindNearbyInput) (NearbyLocationsOutput, error)
}
