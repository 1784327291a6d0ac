package domain

import (
	"time"
)

const CalendarDateLayout = "2006-01-02"

const hoursPerDay = 24

// CalendarDate is a date without time of day or time zone.
// The zero value means "no date".
type CalendarDate struct {
	year  int
	month time.Month
	day   int
}

func NewCalendarDate(year int, month time.Month, day int) (CalendarDate, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return CalendarDate{}, ErrInvalidDate
	}

	return CalendarDate{year: year, month: month, day: day}, nil
}

func MustCalendarDate(year int, month time.Month, day int) CalendarDate {
	d, err := NewCalendarDate(year, month, day)
	if err != nil {
		panic(err)
	}

	return d
}

func ParseCalendarDate(s string) (CalendarDate, error) {
	if s == "" {
		return CalendarDate{}, ErrMissingDate
	}

	t, err := time.Parse(CalendarDateLayout, s)
	if err != nil {
		return CalendarDate{}, ErrInvalidDate
	}

	return CalendarDateOf(t), nil
}

// CalendarDateOf takes the calendar fields of t in t's own location.
func CalendarDateOf(t time.Time) CalendarDate {
	return CalendarDate{year: t.Year(), month: t.Month(), day: t.Day()}
}

// Time returns midnight UTC of the date.
func (d CalendarDate) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// DaysUntil returns other - d in whole days.
func (d CalendarDate) DaysUntil(other CalendarDate) int {
	return int(other.Time().Sub(d.Time()).Hours() / hoursPerDay)
}

func (d CalendarDate) AddDays(n int) CalendarDate {
	return CalendarDateOf(d.Time().AddDate(0, 0, n))
}

func (d CalendarDate) Before(other CalendarDate) bool {
	return d.Time().Before(other.Time())
}

func (d CalendarDate) After(other CalendarDate) bool {
	return d.Time().After(other.Time())
}

func (d CalendarDate) Equals(other CalendarDate) bool {
	return d == other
}

func (d CalendarDate) IsZero() bool {
	return d == CalendarDate{}
}

func (d CalendarDate) String() string {
	if d.IsZero() {
		return ""
	}

	return d.Time().Format(CalendarDateLayout)
}
