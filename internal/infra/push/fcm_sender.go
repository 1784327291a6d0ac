package push

import (
	"context"
	"fmt"
	"log/slog"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// maxBatchSize is the FCM limit for SendEach.
const maxBatchSize = 500

const androidChannelID = "car_care_reminders"

type FCMSender struct {
	client *messaging.Client
}

type FCMSenderConfig struct {
	CredentialsPath string
	ProjectID       string
}

func NewFCMSender(ctx context.Context, cfg FCMSenderConfig) (*FCMSender, error) {
	var firebaseCfg *firebase.Config
	if cfg.ProjectID != "" {
		firebaseCfg = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	fbApp, err := firebase.NewApp(ctx, firebaseCfg, option.WithCredentialsFile(cfg.CredentialsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := fbApp.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Messaging client: %w", err)
	}

	return &FCMSender{client: client}, nil
}

func (s *FCMSender) Send(ctx context.Context, tokens []string, notification Notification) (SendResult, error) {
	if len(tokens) == 0 {
		return SendResult{}, ErrNoTokens
	}

	var result SendResult

	for start := 0; start < len(tokens); start += maxBatchSize {
		end := min(start+maxBatchSize, len(tokens))
		batch := tokens[start:end]

		resp, err := s.client.SendEach(ctx, BuildMessages(batch, notification))
		if err != nil {
			slog.ErrorContext(ctx, "failed to send push batch",
				"error", err,
				"batch_size", len(batch),
			)

			return result, fmt.Errorf("failed to send push batch: %w", err)
		}

		result.SuccessCount += resp.SuccessCount
		result.FailureCount += resp.FailureCount

		for i, r := range resp.Responses {
			if r.Success {
				continue
			}

			if messaging.IsUnregistered(r.Error) {
				result.InvalidTokens = append(result.InvalidTokens, batch[i])
			}

			slog.WarnContext(ctx, "push delivery failed",
				"error", r.Error,
			)
		}
	}

	slog.DebugContext(ctx, "push sent",
		"success_count", result.SuccessCount,
		"failure_count", result.FailureCount,
	)

	return result, nil
}

// BuildMessages creates one FCM message per token.
func BuildMessages(tokens []string, notification Notification) []*messaging.Message {
	messages := make([]*messaging.Message, 0, len(tokens))

	for _, token := range tokens {
		messages = append(messages, &messaging.Message{
			Token: token,
			Notification: &messaging.Notification{
				Title: notification.Title,
				Body:  notification.Body,
			},
			Data: notification.Data,
			Android: &messaging.AndroidConfig{
				Priority: "high",
				Notification: &messaging.AndroidNotification{
					ChannelID:    androidChannelID,
					DefaultSound: true,
				},
			},
			APNS: &messaging.APNSConfig{
				Payload: &messaging.APNSPayload{
					Aps: &messaging.Aps{Sound: "default"},
				},
			},
		})
	}

	return messages
}
