package push

import (
	"context"
	"errors"
)

//go:generate mockgen -source=sender.go -destination=sender_mock.go -package=push

var ErrNoTokens = errors.New("no push tokens")

type Notification struct {
	Title string
	Body  string
	Data  map[string]string
}

type SendResult struct {
	SuccessCount int
	FailureCount int
	// InvalidTokens were rejected by the provider as unregistered.
	InvalidTokens []string
}

type Sender interface {
	Send(ctx context.Context, tokens []string, notification Notification) (SendResult, error)
}
