package domain

import (
	"errors"
	"strings"
	"unicode"
)

// UserID is the subject issued by the managed auth provider.
type UserID struct {
	value string
}

const maxUserIDLength = 128

var ErrInvalidUserID = errors.New("invalid user ID: must be 1-128 printable characters without spaces")

func UserIDFromString(s string) (UserID, error) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > maxUserIDLength {
		return UserID{}, ErrInvalidUserID
	}

	for _, r := range s {
		if unicode.IsSpace(r) || !unicode.IsPrint(r) {
			return UserID{}, ErrInvalidUserID
		}
	}

	return UserID{value: s}, nil
}

func (u UserID) String() string {
	return u.value
}

func (u UserID) IsZero() bool {
	return u.value == ""
}

func (u UserID) Equals(other UserID) bool {
	return u.value == other.value
}
