package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KasumiMercury/primind-car-care/internal/domain"
)

func TestUserIDFromStringSuccess(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "firebase style uid",
			input:    "Xb3kLq9Zr2Mw8TnPc1VdAe7Yh4Jf",
			expected: "Xb3kLq9Zr2Mw8TnPc1VdAe7Yh4Jf",
		},
		{
			name:     "uuid",
			input:    "0191c7f0-7c3d-7000-8000-000000000001",
			expected: "0191c7f0-7c3d-7000-8000-000000000001",
		},
		{
			name:     "surrounding whitespace is trimmed",
			input:    "  user-1 ",
			expected: "user-1",
		},
		{
			name:     "max length",
			input:    strings.Repeat("a", 128),
			expected: strings.Repeat("a", 128),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := domain.UserIDFromString(tt.input)

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, id.String())
			assert.False(t, id.IsZero())
		})
	}
}

func TestUserIDFromStringError(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "empty string",
			input: "",
		},
		{
			name:  "only whitespace",
			input: "   ",
		},
		{
			name:  "inner space",
			input: "user 1",
		},
		{
			name:  "control character",
			input: "user\x001",
		},
		{
			name:  "too long",
			input: strings.Repeat("a", 129),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.UserIDFromString(tt.input)

			assert.ErrorIs(t, err, domain.ErrInvalidUserID)
		})
	}
}

func TestUserIDEqualsSuccess(t *testing.T) {
	a, _ := domain.UserIDFromString("user-a")
	a2, _ := domain.UserIDFromString("user-a")
	b, _ := domain.UserIDFromString("user-b")

	assert.True(t, a.Equals(a2))
	assert.False(t, a.Equals(b))
	assert.True(t, domain.UserID{}.IsZero())
}
