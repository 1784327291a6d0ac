package domain

import (
	"errors"
	"fmt"
)

var ErrInvalidInput = errors.New("invalid input")

var (
	ErrReminderNotFound          = errors.New("reminder not found")
	ErrCarNotFound               = errors.New("car not found")
	ErrMaintenanceRecordNotFound = errors.New("maintenance record not found")

	ErrInvalidDate             = fmt.Errorf("%w: date must be a calendar date in YYYY-MM-DD format", ErrInvalidInput)
	ErrMissingDate             = fmt.Errorf("%w: date is required", ErrInvalidInput)
	ErrInvalidNotifyBeforeDays = fmt.Errorf("%w: notify before days must be between 0 and %d", ErrInvalidInput, MaxNotifyBeforeDays)
	ErrInvalidTimeOfDay        = fmt.Errorf("%w: time of day must be in HH:MM format", ErrInvalidInput)
	ErrInvalidCoordinates      = fmt.Errorf("%w: coordinates out of range", ErrInvalidInput)

	ErrInvalidTitle            = errors.New("title must be between 1 and 200 characters")
	ErrInvalidReminderCategory = errors.New("invalid reminder category")
	ErrInvalidReminderStatus   = errors.New("invalid reminder status")
	ErrReminderNotPending      = errors.New("reminder is not pending")
	ErrAlreadyCompleted        = errors.New("reminder is already completed")
	ErrAlreadyDismissed        = errors.New("reminder is already dismissed")

	ErrInvalidReminderID          = errors.New("invalid reminder ID")
	ErrInvalidCarID               = errors.New("invalid car ID")
	ErrInvalidMaintenanceRecordID = errors.New("invalid maintenance record ID")
	ErrInvalidServiceLocationID   = errors.New("invalid service location ID")
)
