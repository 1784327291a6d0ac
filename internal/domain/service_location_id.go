package domain

import (
	"github.com/google/uuid"
)

type ServiceLocationID struct {
	value uuid.UUID
}

func NewServiceLocationID() ServiceLocationID {
	return ServiceLocationID{value: uuid.Must(uuid.NewV7())}
}

func ServiceLocationIDFromString(s string) (ServiceLocationID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return ServiceLocationID{}, ErrInvalidServiceLocationID
	}

	return ServiceLocationID{value: id}, nil
}

func ServiceLocationIDFromUUID(id uuid.UUID) ServiceLocationID {
	return ServiceLocationID{value: id}
}

func (i ServiceLocationID) String() string {
	return i.value.String()
}

func (i ServiceLocationID) UUID() uuid.UUID {
	return i.value
}

func (i ServiceLocationID) IsZero() bool {
	return i.value == uuid.Nil
}

func (i ServiceLocationID) Equals(other ServiceLocationID) bool {
	return i.value == other.value
}
