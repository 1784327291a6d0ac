package domain

import (
	"github.com/google/uuid"
)

type MaintenanceRecordID struct {
	value uuid.UUID
}

func NewMaintenanceRecordID() MaintenanceRecordID {
	return MaintenanceRecordID{value: uuid.Must(uuid.NewV7())}
}

func MaintenanceRecordIDFromString(s string) (MaintenanceRecordID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return MaintenanceRecordID{}, ErrInvalidMaintenanceRecordID
	}

	return MaintenanceRecordID{value: id}, nil
}

func MaintenanceRecordIDFromUUID(id uuid.UUID) MaintenanceRecordID {
	return MaintenanceRecordID{value: id}
}

func (i MaintenanceRecordID) String() string {
	return i.value.String()
}

func (i MaintenanceRecordID) UUID() uuid.UUID {
	return i.value
}

func (i MaintenanceRecordID) IsZero() bool {
	return i.value == uuid.Nil
}

func (i MaintenanceRecordID) Equals(other MaintenanceRecordID) bool {
	return i.value == other.value
}
