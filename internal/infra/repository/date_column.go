package repository

import (
	"time"

	"github.com/KasumiMercury/primind-car-care/internal/domain"
)

// Calendar dates are stored in PostgreSQL "date" columns, which the driver
// hands back as midnight UTC.

func dateColumn(d domain.CalendarDate) time.Time {
	return d.Time()
}

func nullableDateColumn(d *domain.CalendarDate) *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}

	t := d.Time()

	return &t
}

func calendarDateOf(t time.Time) domain.CalendarDate {
	return domain.CalendarDateOf(t.UTC())
}

func nullableCalendarDateOf(t *time.Time) *domain.CalendarDate {
	if t == nil {
		return nil
	}

	d := calendarDateOf(*t)

	return &d
}
