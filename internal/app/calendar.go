package app

import (
	"time"

	"github.com/KasumiMercury/primind-car-care/internal/domain"
)

// Calendar resolves "today" for due classification. Clients send their own
// calendar date; the server clock in the configured zone is the fallback.
type Calendar struct {
	location *time.Location
	now      func() time.Time
}

func NewCalendar(location *time.Location) *Calendar {
	if location == nil {
		location = time.UTC
	}

	return &Calendar{
		location: location,
		now:      time.Now,
	}
}

// NewFixedCalendar always reports the given date as today.
func NewFixedCalendar(today domain.CalendarDate) *Calendar {
	return &Calendar{
		location: time.UTC,
		now:      func() time.Time { return today.Time() },
	}
}

func (c *Calendar) Location() *time.Location {
	return c.location
}

func (c *Calendar) Today() domain.CalendarDate {
	return domain.CalendarDateOf(c.now().In(c.location))
}

// Resolve parses a client supplied YYYY-MM-DD date, or returns Today when empty.
func (c *Calendar) Resolve(today string) (domain.CalendarDate, error) {
	if today == "" {
		return c.Today(), nil
	}

	d, err := domain.ParseCalendarDate(today)
	if err != nil {
		return domain.CalendarDate{}, NewValidationError("today", err.Error())
	}

	return d, nil
}
