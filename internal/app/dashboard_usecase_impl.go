package app

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KasumiMercury/primind-car-care/internal/domain"
)

type dashboardUseCaseImpl struct {
	carRepo    domain.CarRepository
	recordRepo domain.MaintenanceRecordRepository
	calendar   *Calendar
}

func NewDashboardUseCase(
	carRepo domain.CarRepository,
	recordRepo domain.MaintenanceRecordRepository,
	calendar *Calendar,
) DashboardUseCase {
	return &dashboardUseCaseImpl{
		carRepo:    carRepo,
		recordRepo: recordRepo,
		calendar:   calendar,
	}
}

// GetDashboard is best effort: a source that fails to load is reported as
// unavailable instead of failing the request.
func (uc *dashboardUseCaseImpl) GetDashboard(ctx context.Context, input GetDashboardInput) (DashboardOutput, error) {
	userID, err := parseUserID(input.UserID)
	if err != nil {
		return DashboardOutput{}, err
	}

	today, err := uc.calendar.Resolve(input.Today)
	if err != nil {
		return DashboardOutput{}, err
	}

	var (
		cars    domain.SourceResult[*domain.Car]
		records domain.SourceResult[*domain.MaintenanceRecord]
		wg      sync.WaitGroup
	)

	wg.Go(func() {
		items, err := uc.carRepo.FindByUserID(ctx, userID)
		if err != nil {
			slog.WarnContext(ctx, "dashboard source unavailable",
				"source", string(domain.DashboardSourceCars),
				"error", err,
			)

			cars = domain.Failed[*domain.Car](err)

			return
		}

		cars = domain.Loaded(items)
	})

	wg.Go(func() {
		items, err := uc.recordRepo.FindByUserID(ctx, userID, nil)
		if err != nil {
			slog.WarnContext(ctx, "dashboard source unavailable",
				"source", string(domain.DashboardSourceMaintenanceRecords),
				"error", err,
			)

			records = domain.Failed[*domain.MaintenanceRecord](err)

			return
		}

		records = domain.Loaded(items)
	})

	wg.Wait()

	summary := domain.AggregateDashboard(cars, records, today)

	unavailable := make([]string, 0, len(summary.Unavailable))
	for _, s := range summary.Unavailable {
		unavailable = append(unavailable, string(s))
	}

	return DashboardOutput{
		Today:                   today.String(),
		TotalCars:               summary.TotalCars,
		TotalMaintenanceRecords: summary.TotalMaintenanceRecords,
		TotalCost:               summary.TotalCost,
		UpcomingWithin30Days:    summary.UpcomingWithin30Days,
		Partial:                 summary.IsPartial(),
		Unavailable:             unavailable,
	}, nil
}
