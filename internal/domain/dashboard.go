package domain

// UpcomingWindowDays is the dashboard look-ahead for next due dates.
const UpcomingWindowDays = 30

type DashboardSource string

const (
	DashboardSourceCars               DashboardSource = "cars"
	DashboardSourceMaintenanceRecords DashboardSource = "maintenance_records"
)

// SourceResult carries one independently loaded input of the dashboard.
type SourceResult[T any] struct {
	Items []T
	Err   error
}

func Loaded[T any](items []T) SourceResult[T] {
	return SourceResult[T]{Items: items}
}

func Failed[T any](err error) SourceResult[T] {
	return SourceResult[T]{Err: err}
}

func (r SourceResult[T]) OK() bool {
	return r.Err == nil
}

type DashboardSummary struct {
	TotalCars               int
	TotalMaintenanceRecords int
	TotalCost               float64
	UpcomingWithin30Days    int
	// Unavailable lists sources whose totals are zero because they failed to load.
	Unavailable []DashboardSource
}

func (s DashboardSummary) IsPartial() bool {
	return len(s.Unavailable) > 0
}

// AggregateDashboard never fails: a failed source contributes zero.
func AggregateDashboard(
	cars SourceResult[*Car],
	records SourceResult[*MaintenanceRecord],
	today CalendarDate,
) DashboardSummary {
	summary := DashboardSummary{
		Unavailable: []DashboardSource{},
	}

	if cars.OK() {
		summary.TotalCars = len(cars.Items)
	} else {
		summary.Unavailable = append(summary.Unavailable, DashboardSourceCars)
	}

	if !records.OK() {
		summary.Unavailable = append(summary.Unavailable, DashboardSourceMaintenanceRecords)

		return summary
	}

	summary.TotalMaintenanceRecords = len(records.Items)

	for _, r := range records.Items {
		summary.TotalCost += r.CostOrZero()

		if !today.IsZero() && r.IsDueWithin(today, UpcomingWindowDays) {
			summary.UpcomingWithin30Days++
		}
	}

	return summary
}
