package pubsub

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

const (
	TopicReminderDue     = "reminder.due"
	EventTypeReminderDue = "reminder.due"
)

// ReminderDueEvent is published once per reminder that needs attention on a
// dispatch run.
type ReminderDueEvent struct {
	ReminderID   string    `json:"reminder_id"`
	UserID       string    `json:"user_id"`
	CarID        string    `json:"car_id,omitempty"`
	Title        string    `json:"title"`
	Category     string    `json:"category"`
	TargetDate   string    `json:"target_date"`
	TimeOfDay    string    `json:"time_of_day,omitempty"`
	DueStatus    string    `json:"due_status"`
	DaysUntil    int       `json:"days_until"`
	DeviceCount  int       `json:"device_count"`
	DispatchDate string    `json:"dispatch_date"`
	PublishedAt  time.Time `json:"published_at"`
}

// NewReminderDueMessage encodes the event as a JSON watermill message with
// routing metadata.
func NewReminderDueMessage(event ReminderDueEvent) (*message.Message, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_type", EventTypeReminderDue)
	msg.Metadata.Set("reminder_id", event.ReminderID)
	msg.Metadata.Set("user_id", event.UserID)
	msg.Metadata.Set("due_status", event.DueStatus)

	return msg, nil
}
