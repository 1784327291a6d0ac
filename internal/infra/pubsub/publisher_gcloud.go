//go:build gcloud

package pubsub

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-googlecloud/pkg/googlecloud"
	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/KasumiMercury/primind-car-care/internal/observability/tracing"
)

type GCloudPublisher struct {
	publisher message.Publisher
	logger    watermill.LoggerAdapter
}

type GCloudPublisherConfig struct {
	ProjectID string
}

func NewGCloudPublisher(_ context.Context, cfg GCloudPublisherConfig) (*GCloudPublisher, error) {
	logger := watermill.NewSlogLogger(slog.Default())

	publisher, err := googlecloud.NewPublisher(
		googlecloud.PublisherConfig{
			ProjectID: cfg.ProjectID,
		},
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Google Cloud publisher: %w", err)
	}

	return &GCloudPublisher{
		publisher: publisher,
		logger:    logger,
	}, nil
}

func (p *GCloudPublisher) PublishReminderDue(ctx context.Context, event ReminderDueEvent) error {
	msg, err := NewReminderDueMessage(event)
	if err != nil {
		return err
	}

	msg.SetContext(ctx)
	tracing.InjectToMap(ctx, msg.Metadata)

	if err := p.publisher.Publish(TopicReminderDue, msg); err != nil {
		slog.ErrorContext(ctx, "failed to publish reminder due event",
			slog.String("reminder_id", event.ReminderID),
			slog.String("error", err.Error()),
		)

		return fmt.Errorf("failed to publish event: %w", err)
	}

	slog.DebugContext(ctx, "published reminder due event",
		slog.String("reminder_id", event.ReminderID),
		slog.String("message_id", msg.UUID),
	)

	return nil
}

func (p *GCloudPublisher) Close() error {
	return p.publisher.Close()
}
