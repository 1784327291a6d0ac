package app

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"time"

	"github.com/KasumiMercury/primind-car-care/internal/domain"
	"github.com/KasumiMercury/primind-car-care/internal/infra/pubsub"
	"github.com/KasumiMercury/primind-car-care/internal/infra/push"
)

type notificationUseCaseImpl struct {
	repo      domain.ReminderRepository
	publisher pubsub.Publisher
	sender    push.Sender
	calendar  *Calendar
}

// NewNotificationUseCase accepts a nil publisher or sender; the matching
// delivery channel is then skipped.
func NewNotificationUseCase(
	repo domain.ReminderRepository,
	publisher pubsub.Publisher,
	sender push.Sender,
	calendar *Calendar,
) NotificationUseCase {
	return &notificationUseCaseImpl{
		repo:      repo,
		publisher: publisher,
		sender:    sender,
		calendar:  calendar,
	}
}

type dueReminder struct {
	reminder       *domain.Reminder
	classification domain.DueClassification
}

func (uc *notificationUseCaseImpl) ListDueNotifications(ctx context.Context, input ListDueNotificationsInput) (DueNotificationsOutput, error) {
	userID, err := parseUserID(input.UserID)
	if err != nil {
		return DueNotificationsOutput{}, err
	}

	today, err := uc.calendar.Resolve(input.Today)
	if err != nil {
		return DueNotificationsOutput{}, err
	}

	pending := domain.ReminderStatusPending

	reminders, err := uc.repo.FindByUserID(ctx, userID, domain.ReminderFilter{Status: &pending})
	if err != nil {
		slog.ErrorContext(ctx, "failed to load pending reminders",
			"error", err,
			"user_id", input.UserID,
		)

		return DueNotificationsOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	due, failures := selectDue(ctx, reminders, today)

	outputs := make([]ReminderOutput, 0, len(due))
	for _, d := range due {
		output := FromReminder(d.reminder, today)
		output.Due = fromClassification(d.classification)
		outputs = append(outputs, output)
	}

	return DueNotificationsOutput{
		Today:     today.String(),
		Reminders: outputs,
		Count:     int32(len(outputs)), //nolint:gosec
		Failures:  failures,
	}, nil
}

func (uc *notificationUseCaseImpl) DispatchDueNotifications(ctx context.Context, input DispatchDueNotificationsInput) (DispatchOutput, error) {
	today, err := uc.calendar.Resolve(input.Today)
	if err != nil {
		return DispatchOutput{}, err
	}

	slog.InfoContext(ctx, "dispatching due notifications",
		"today", today.String(),
	)

	pending, err := uc.repo.FindPendingUntil(ctx, today.AddDays(domain.MaxNotifyBeforeDays))
	if err != nil {
		slog.ErrorContext(ctx, "failed to load pending reminders for dispatch",
			"error", err,
			"today", today.String(),
		)

		return DispatchOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	output := DispatchOutput{
		Today:    today.String(),
		Scanned:  len(pending.Reminders) + len(pending.Unreadable),
		Failures: make([]NotificationFailure, 0, len(pending.Unreadable)),
	}

	for _, u := range pending.Unreadable {
		output.Failures = append(output.Failures, NotificationFailure{ReminderID: u.ID, Reason: u.Err.Error()})
	}

	due, failures := selectDue(ctx, pending.Reminders, today)
	output.Due = len(due)
	output.Failures = append(output.Failures, failures...)

	for _, d := range due {
		if !d.reminder.ShouldNotify(d.classification, today) {
			output.AlreadyNotified++

			continue
		}

		output.Failures = append(output.Failures, uc.deliver(ctx, d, today, &output)...)
	}

	slog.InfoContext(ctx, "due notifications dispatched",
		"today", output.Today,
		"scanned", output.Scanned,
		"due", output.Due,
		"already_notified", output.AlreadyNotified,
		"published", output.Published,
		"pushed", output.Pushed,
		"failures", len(output.Failures),
	)

	return output, nil
}

// deliver publishes and pushes one due reminder. The reminder is marked
// notified only when every configured channel succeeded. Unregistered push
// tokens are pruned.
func (uc *notificationUseCaseImpl) deliver(
	ctx context.Context,
	d dueReminder,
	today domain.CalendarDate,
	output *DispatchOutput,
) []NotificationFailure {
	id := d.reminder.ID().String()
	failures := make([]NotificationFailure, 0)
	delivered := false

	if uc.publisher != nil {
		if err := uc.publisher.PublishReminderDue(ctx, newReminderDueEvent(d, today)); err != nil {
			slog.ErrorContext(ctx, "failed to publish reminder due event",
				"reminder_id", id,
				"error", err,
			)

			failures = append(failures, NotificationFailure{ReminderID: id, Reason: err.Error()})
		} else {
			output.Published++
			delivered = true
		}
	}

	changed := false

	if uc.sender != nil && d.reminder.Devices().Count() > 0 {
		result, err := uc.sender.Send(ctx, d.reminder.Devices().PushTokens(), newDueNotification(d))
		if err != nil {
			slog.ErrorContext(ctx, "failed to push reminder",
				"reminder_id", id,
				"error", err,
			)

			failures = append(failures, NotificationFailure{ReminderID: id, Reason: err.Error()})
		} else {
			if result.SuccessCount > 0 {
				output.Pushed++
				delivered = true
			}

			if removed := d.reminder.RemoveDevicesByToken(result.InvalidTokens); removed > 0 {
				slog.InfoContext(ctx, "removed unregistered devices from reminder",
					"reminder_id", id,
					"removed", removed,
				)

				changed = true
			}
		}
	}

	if delivered && len(failures) == 0 {
		d.reminder.MarkNotified(today)
		changed = true
	}

	if !changed {
		return failures
	}

	if err := uc.repo.Update(ctx, d.reminder); err != nil {
		slog.ErrorContext(ctx, "failed to record notification state",
			"reminder_id", id,
			"error", err,
		)

		failures = append(failures, NotificationFailure{ReminderID: id, Reason: err.Error()})
	}

	return failures
}

// selectDue classifies reminders and keeps the ones needing attention, most
// urgent first. Reminders that cannot be classified are reported, not dropped.
func selectDue(ctx context.Context, reminders []*domain.Reminder, today domain.CalendarDate) ([]dueReminder, []NotificationFailure) {
	due := make([]dueReminder, 0, len(reminders))
	failures := make([]NotificationFailure, 0)

	for _, r := range reminders {
		if !r.IsPending() {
			continue
		}

		classification, err := r.Classify(today)
		if err != nil {
			slog.WarnContext(ctx, "skipping reminder that cannot be classified",
				"reminder_id", r.ID().String(),
				"error", err,
			)

			failures = append(failures, NotificationFailure{ReminderID: r.ID().String(), Reason: err.Error()})

			continue
		}

		if classification.NeedsAttention() {
			due = append(due, dueReminder{reminder: r, classification: classification})
		}
	}

	sort.SliceStable(due, func(i, j int) bool {
		if due[i].classification.DaysUntil != due[j].classification.DaysUntil {
			return due[i].classification.DaysUntil < due[j].classification.DaysUntil
		}

		return due[i].reminder.Title() < due[j].reminder.Title()
	})

	return due, failures
}

func newReminderDueEvent(d dueReminder, today domain.CalendarDate) pubsub.ReminderDueEvent {
	event := pubsub.ReminderDueEvent{
		ReminderID:   d.reminder.ID().String(),
		UserID:       d.reminder.UserID().String(),
		Title:        d.reminder.Title(),
		Category:     string(d.reminder.Category()),
		TargetDate:   d.reminder.TargetDate().String(),
		TimeOfDay:    d.reminder.TimeOfDay().String(),
		DueStatus:    string(d.classification.Status),
		DaysUntil:    d.classification.DaysUntil,
		DeviceCount:  d.reminder.Devices().Count(),
		DispatchDate: today.String(),
		PublishedAt:  time.Now().UTC(),
	}

	if carID := d.reminder.CarID(); carID != nil {
		event.CarID = carID.String()
	}

	return event
}

func newDueNotification(d dueReminder) push.Notification {
	return push.Notification{
		Title: d.reminder.Title(),
		Body:  DueMessage(d.classification),
		Data: map[string]string{
			"reminder_id": d.reminder.ID().String(),
			"due_status":  string(d.classification.Status),
			"days_until":  strconv.Itoa(d.classification.DaysUntil),
			"target_date": d.reminder.TargetDate().String(),
		},
	}
}

// DueMessage renders a classification as a short human readable line.
func DueMessage(c domain.DueClassification) string {
	switch c.Status {
	case domain.DueStatusOverdue:
		if c.DaysUntil == -1 {
			return "Overdue by 1 day"
		}

		return fmt.Sprintf("Overdue by %d days", -c.DaysUntil)
	case domain.DueStatusDueToday:
		return "Due today"
	case domain.DueStatusDueSoon, domain.DueStatusUpcoming:
		if c.DaysUntil == 1 {
			return "Due tomorrow"
		}

		return fmt.Sprintf("Due in %d days", c.DaysUntil)
	default:
		return ""
	}
}
