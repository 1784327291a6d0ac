package domain

import (
	"github.com/google/uuid"
)

type CarID struct {
	value uuid.UUID
}

func NewCarID() CarID {
	return CarID{value: uuid.Must(uuid.NewV7())}
}

func CarIDFromString(s string) (CarID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return CarID{}, ErrInvalidCarID
	}

	return CarID{value: id}, nil
}

func CarIDFromUUID(id uuid.UUID) CarID {
	return CarID{value: id}
}

func (i CarID) String() string {
	return i.value.String()
}

func (i CarID) UUID() uuid.UUID {
	return i.value
}

func (i CarID) IsZero() bool {
	return i.value == uuid.Nil
}

func (i CarID) Equals(other CarID) bool {
	return i.value == other.value
}
