package domain

import (
	"github.com/google/uuid"
)

type ReminderID struct {
	value uuid.UUID
}

func NewReminderID() ReminderID {
	return ReminderID{value: uuid.Must(uuid.NewV7())}
}

func ReminderIDFromString(s string) (ReminderID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return ReminderID{}, ErrInvalidReminderID
	}

	return ReminderID{value: id}, nil
}

func ReminderIDFromUUID(id uuid.UUID) ReminderID {
	return ReminderID{value: id}
}

func (i ReminderID) String() string {
	return i.value.String()
}

func (i ReminderID) UUID() uuid.UUID {
	return i.value
}

func (i ReminderID) IsZero() bool {
	return i.value == uuid.Nil
}

func (i ReminderID) Equals(other ReminderID) bool {
	return i.value == other.value
}
