package app

import (
	"errors"
	"fmt"

	"github.com/KasumiMercury/primind-car-care/internal/domain"
)

var (
	ErrValidation    = errors.New("validation error")
	ErrNotFound      = errors.New("resource not found")
	ErrInternalError = errors.New("internal error")
)

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

func IsValidationError(err error) bool {
	var validationErr *ValidationError

	return errors.As(err, &validationErr)
}

var domainErrorFields = []struct {
	err   error
	field string
}{
	{domain.ErrInvalidUserID, "user_id"},
	{domain.ErrEmptyCarMake, "make"},
	{domain.ErrEmptyCarModel, "model"},
	{domain.ErrInvalidCarYear, "year"},
	{domain.ErrInvalidVIN, "vin"},
	{domain.ErrMissingCar, "car_id"},
	{domain.ErrInvalidServiceType, "service_type"},
	{domain.ErrNegativeCost, "cost"},
	{domain.ErrNextDueBeforeService, "next_due_date"},
	{domain.ErrInvalidTitle, "title"},
	{domain.ErrInvalidReminderCategory, "category"},
	{domain.ErrInvalidReminderStatus, "status"},
	{domain.ErrReminderNotPending, "status"},
	{domain.ErrInvalidNotifyBeforeDays, "notify_before_days"},
	{domain.ErrInvalidTimeOfDay, "time_of_day"},
	{domain.ErrInvalidCoordinates, "coordinates"},
	{domain.ErrEmptyLocationName, "name"},
	{domain.ErrInvalidLocationCategory, "category"},
	{domain.ErrEmptyDeviceID, "devices"},
	{domain.ErrEmptyPushToken, "devices"},
	{domain.ErrDuplicateDevice, "devices"},
}

// newDomainValidationError maps a domain validation failure to the request
// field it concerns. Unknown errors are reported against fallback.
func newDomainValidationError(err error, fallback string) *ValidationError {
	for _, f := range domainErrorFields {
		if errors.Is(err, f.err) {
			return NewValidationError(f.field, err.Error())
		}
	}

	return NewValidationError(fallback, err.Error())
}
