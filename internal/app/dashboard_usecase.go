package app

import "context"

type GetDashboardInput struct {
	UserID string
	Today  string
}

type DashboardOutput struct {
	Today                   string
	TotalCars               int
	TotalMaintenanceRecords int
	TotalCost               float64
	UpcomingWithin30Days    int
	// Partial is set when at least one source failed and its totals read zero.
	Partial     bool
	Unavailable []string
}

type DashboardUseCase interface {
	GetDashboard(ctx context.Context, input GetDashboardInput) (DashboardOutput, error)
}
