package domain

import "time"

const timeOfDayLayout = "15:04"

// TimeOfDay is an optional "HH:MM" wall clock time. It is informational only
// and never takes part in due classification.
type TimeOfDay struct {
	value string
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if s == "" {
		return TimeOfDay{}, nil
	}

	t, err := time.Parse(timeOfDayLayout, s)
	if err != nil {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}

	return TimeOfDay{value: t.Format(timeOfDayLayout)}, nil
}

func (t TimeOfDay) String() string {
	return t.value
}

func (t TimeOfDay) IsZero() bool {
	return t.value == ""
}
