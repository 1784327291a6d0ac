package app_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KasumiMercury/primind-car-care/internal/app"
)

func TestNewValidationErrorSuccess(t *testing.T) {
	tests := []struct {
		name            string
		field           string
		message         string
		expectedError   string
		expectedField   string
		expectedMessage string
	}{
		{
			name:            "target_date validation error",
			field:           "target_date",
			message:         "date is required",
			expectedError:   "validation error: target_date - date is required",
			expectedField:   "target_date",
			expectedMessage: "date is required",
		},
		{
			name:            "devices validation error with index",
			field:           "devices[0]",
			message:         "device ID cannot be empty",
			expectedError:   "validation error: devices[0] - device ID cannot be empty",
			expectedField:   "devices[0]",
			expectedMessage: "device ID cannot be empty",
		},
		{
			name:            "car_id validation error",
			field:           "car_id",
			message:         "invalid car ID",
			expectedError:   "validation error: car_id - invalid car ID",
			expectedField:   "car_id",
			expectedMessage: "invalid car ID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := app.NewValidationError(tt.field, tt.message)

			assert.Equal(t, tt.expectedField, err.Field)
			assert.Equal(t, tt.expectedMessage, err.Message)
			assert.Equal(t, tt.expectedError, err.Error())
		})
	}
}

func TestIsValidationErrorSuccess(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "is ValidationError",
			err:      app.NewValidationError("field", "message"),
			expected: true,
		},
		{
			name:     "wrapped ValidationError",
			err:      fmt.Errorf("wrapped: %w", app.NewValidationError("field", "message")),
			expected: true,
		},
		{
			name:     "not ValidationError - generic error",
			err:      errors.New("generic error"),
			expected: false,
		},
		{
			name:     "not ValidationError - nil",
			err:      nil,
			expected: false,
		},
		{
			name:     "not ValidationError - not found",
			err:      fmt.Errorf("%w: %v", app.ErrNotFound, errors.New("car not found")),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := app.IsValidationError(tt.err)

			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestValidationErrorIsErrValidation(t *testing.T) {
	err := fmt.Errorf("outer: %w", app.NewValidationError("field", "message"))

	assert.ErrorIs(t, err, app.ErrValidation)
	assert.NotErrorIs(t, err, app.ErrNotFound)

	var validationErr *app.ValidationError
	assert.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "field", validationErr.Field)
}
