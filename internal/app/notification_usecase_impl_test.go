package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KasumiMercury/primind-car-care/internal/app"
	"github.com/KasumiMercury/primind-car-care/internal/domain"
	"github.com/KasumiMercury/primind-car-care/internal/infra/pubsub"
	"github.com/KasumiMercury/primind-car-care/internal/infra/push"
)

// malformedReminder bypasses validation the way a corrupted row would.
func malformedReminder(t *testing.T) *domain.Reminder {
	t.Helper()

	return domain.ReconstituteReminder(
		domain.NewReminderID(),
		mustUserID(t, ownerID),
		domain.ReminderDetails{
			Title:            "Broken",
			TargetDate:       testToday,
			NotifyBeforeDays: intPtr(-4),
		},
		domain.ReminderStatusPending,
		nil,
		time.Now(),
		time.Now(),
	)
}

func pendingOf(reminders ...*domain.Reminder) domain.PendingReminders {
	return domain.PendingReminders{Reminders: reminders}
}

func TestListDueNotificationsSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := domain.NewMockReminderRepository(ctrl)

	overdue := newTestReminder(t, ownerID, "Registration", testToday.AddDays(-2), nil, 0)
	today := newTestReminder(t, ownerID, "Wash", testToday, nil, 0)
	soon := newTestReminder(t, ownerID, "Oil", testToday.AddDays(3), intPtr(5), 0)
	later := newTestReminder(t, ownerID, "Tires", testToday.AddDays(40), nil, 0)
	broken := malformedReminder(t)

	repo.EXPECT().
		FindByUserID(gomock.Any(), mustUserID(t, ownerID), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.UserID, filter domain.ReminderFilter) ([]*domain.Reminder, error) {
			require.NotNil(t, filter.Status)
			assert.Equal(t, domain.ReminderStatusPending, *filter.Status)

			return []*domain.Reminder{later, soon, broken, today, overdue}, nil
		})

	output, err := app.NewNotificationUseCase(repo, nil, nil, fixedCalendar()).ListDueNotifications(
		context.Background(),
		app.ListDueNotificationsInput{UserID: ownerID},
	)

	require.NoError(t, err)
	require.Equal(t, int32(3), output.Count)
	assert.Equal(t, "Registration", output.Reminders[0].Title)
	assert.Equal(t, "overdue", output.Reminders[0].Due.Status)
	assert.Equal(t, "Wash", output.Reminders[1].Title)
	assert.Equal(t, "due_today", output.Reminders[1].Due.Status)
	assert.Equal(t, "Oil", output.Reminders[2].Title)
	assert.Equal(t, "due_soon", output.Reminders[2].Due.Status)

	require.Len(t, output.Failures, 1)
	assert.Equal(t, broken.ID().String(), output.Failures[0].ReminderID)
}

func TestDispatchDueNotificationsSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := domain.NewMockReminderRepository(ctrl)
	publisher := pubsub.NewMockPublisher(ctrl)
	sender := push.NewMockSender(ctrl)

	withDevices := newTestReminder(t, ownerID, "Oil", testToday.AddDays(1), nil, 2)
	withoutDevices := newTestReminder(t, ownerID, "Wash", testToday.AddDays(-1), nil, 0)
	notDue := newTestReminder(t, ownerID, "Tires", testToday.AddDays(20), nil, 1)

	repo.EXPECT().
		FindPendingUntil(gomock.Any(), testToday.AddDays(domain.MaxNotifyBeforeDays)).
		Return(pendingOf(withDevices, withoutDevices, notDue), nil)

	published := make([]pubsub.ReminderDueEvent, 0)
	publisher.EXPECT().
		PublishReminderDue(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event pubsub.ReminderDueEvent) error {
			published = append(published, event)

			return nil
		}).
		Times(2)

	sender.EXPECT().
		Send(gomock.Any(), []string{"token-a", "token-b"}, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ []string, n push.Notification) (push.SendResult, error) {
			assert.Equal(t, "Oil", n.Title)
			assert.Equal(t, "Due tomorrow", n.Body)
			assert.Equal(t, withDevices.ID().String(), n.Data["reminder_id"])

			return push.SendResult{SuccessCount: 2}, nil
		})

	notified := make([]string, 0)
	repo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *domain.Reminder) error {
			require.NotNil(t, r.LastNotifiedOn())
			assert.Equal(t, testToday, *r.LastNotifiedOn())
			notified = append(notified, r.Title())

			return nil
		}).
		Times(2)

	output, err := app.NewNotificationUseCase(repo, publisher, sender, fixedCalendar()).DispatchDueNotifications(
		context.Background(),
		app.DispatchDueNotificationsInput{},
	)

	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", output.Today)
	assert.Equal(t, 3, output.Scanned)
	assert.Equal(t, 2, output.Due)
	assert.Equal(t, 2, output.Published)
	assert.Equal(t, 1, output.Pushed)
	assert.Empty(t, output.Failures)

	require.Len(t, published, 2)
	assert.Equal(t, "Wash", published[0].Title)
	assert.Equal(t, "overdue", published[0].DueStatus)
	assert.Equal(t, -1, published[0].DaysUntil)
	assert.Equal(t, "due_soon", published[1].DueStatus)
	assert.Equal(t, 2, published[1].DeviceCount)
	assert.Equal(t, "2024-06-01", published[1].DispatchDate)

	assert.ElementsMatch(t, []string{"Oil", "Wash"}, notified)
}

func TestDispatchDueNotificationsReportsFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := domain.NewMockReminderRepository(ctrl)
	publisher := pubsub.NewMockPublisher(ctrl)
	sender := push.NewMockSender(ctrl)

	due := newTestReminder(t, ownerID, "Oil", testToday, nil, 1)
	broken := malformedReminder(t)

	repo.EXPECT().FindPendingUntil(gomock.Any(), gomock.Any()).Return(domain.PendingReminders{
		Reminders:  []*domain.Reminder{due, broken},
		Unreadable: []domain.UnreadableReminder{{ID: "row-1", Err: errors.New("invalid status")}},
	}, nil)
	publisher.EXPECT().PublishReminderDue(gomock.Any(), gomock.Any()).Return(errors.New("nats: no responders"))
	sender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(push.SendResult{}, errors.New("quota exceeded"))

	output, err := app.NewNotificationUseCase(repo, publisher, sender, fixedCalendar()).DispatchDueNotifications(
		context.Background(),
		app.DispatchDueNotificationsInput{Today: "2024-06-01"},
	)

	require.NoError(t, err)
	assert.Equal(t, 3, output.Scanned)
	assert.Equal(t, 1, output.Due)
	assert.Equal(t, 0, output.Published)
	assert.Equal(t, 0, output.Pushed)
	require.Len(t, output.Failures, 4)
	assert.Equal(t, "row-1", output.Failures[0].ReminderID)
	assert.Equal(t, "invalid status", output.Failures[0].Reason)
	assert.Equal(t, broken.ID().String(), output.Failures[1].ReminderID)
	assert.Equal(t, due.ID().String(), output.Failures[2].ReminderID)
	assert.Equal(t, due.ID().String(), output.Failures[3].ReminderID)
	assert.Nil(t, due.LastNotifiedOn())
}

func TestDispatchDueNotificationsSkipsAlreadyNotified(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := domain.NewMockReminderRepository(ctrl)
	publisher := pubsub.NewMockPublisher(ctrl)
	sender := push.NewMockSender(ctrl)

	overdue := newTestReminder(t, ownerID, "Registration", testToday.AddDays(-3), nil, 1)
	overdue.MarkNotified(testToday.AddDays(-2))

	soon := newTestReminder(t, ownerID, "Oil", testToday.AddDays(1), nil, 1)
	soon.MarkNotified(testToday)

	repo.EXPECT().FindPendingUntil(gomock.Any(), gomock.Any()).Return(pendingOf(overdue, soon), nil)

	output, err := app.NewNotificationUseCase(repo, publisher, sender, fixedCalendar()).DispatchDueNotifications(
		context.Background(),
		app.DispatchDueNotificationsInput{},
	)

	require.NoError(t, err)
	assert.Equal(t, 2, output.Due)
	assert.Equal(t, 2, output.AlreadyNotified)
	assert.Equal(t, 0, output.Published)
	assert.Equal(t, 0, output.Pushed)
	assert.Empty(t, output.Failures)
}

func TestDispatchDueNotificationsPrunesUnregisteredTokens(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := domain.NewMockReminderRepository(ctrl)
	sender := push.NewMockSender(ctrl)

	reminder := newTestReminder(t, ownerID, "Oil", testToday, nil, 2)

	repo.EXPECT().FindPendingUntil(gomock.Any(), gomock.Any()).Return(pendingOf(reminder), nil)
	sender.EXPECT().
		Send(gomock.Any(), []string{"token-a", "token-b"}, gomock.Any()).
		Return(push.SendResult{SuccessCount: 1, FailureCount: 1, InvalidTokens: []string{"token-a"}}, nil)
	repo.EXPECT().
		Update(gomock.Any(), reminder).
		DoAndReturn(func(_ context.Context, r *domain.Reminder) error {
			assert.Equal(t, []string{"token-b"}, r.Devices().PushTokens())
			assert.NotNil(t, r.LastNotifiedOn())

			return nil
		})

	output, err := app.NewNotificationUseCase(repo, nil, sender, fixedCalendar()).DispatchDueNotifications(
		context.Background(),
		app.DispatchDueNotificationsInput{},
	)

	require.NoError(t, err)
	assert.Equal(t, 1, output.Pushed)
	assert.Empty(t, output.Failures)
}

func TestDispatchDueNotificationsReportsStateUpdateFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := domain.NewMockReminderRepository(ctrl)
	publisher := pubsub.NewMockPublisher(ctrl)

	reminder := newTestReminder(t, ownerID, "Oil", testToday, nil, 0)

	repo.EXPECT().FindPendingUntil(gomock.Any(), gomock.Any()).Return(pendingOf(reminder), nil)
	publisher.EXPECT().PublishReminderDue(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().Update(gomock.Any(), reminder).Return(errors.New("connection reset"))

	output, err := app.NewNotificationUseCase(repo, publisher, nil, fixedCalendar()).DispatchDueNotifications(
		context.Background(),
		app.DispatchDueNotificationsInput{},
	)

	require.NoError(t, err)
	assert.Equal(t, 1, output.Published)
	require.Len(t, output.Failures, 1)
	assert.Equal(t, reminder.ID().String(), output.Failures[0].ReminderID)
}

func TestFromReminderReportsClassificationError(t *testing.T) {
	output := app.FromReminder(malformedReminder(t), testToday)

	assert.Nil(t, output.Due)
	assert.NotEmpty(t, output.DueError)
}

func TestDispatchDueNotificationsStorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := domain.NewMockReminderRepository(ctrl)

	repo.EXPECT().FindPendingUntil(gomock.Any(), gomock.Any()).Return(domain.PendingReminders{}, errors.New("connection reset"))

	_, err := app.NewNotificationUseCase(repo, nil, nil, fixedCalendar()).DispatchDueNotifications(
		context.Background(),
		app.DispatchDueNotificationsInput{},
	)

	assert.ErrorIs(t, err, app.ErrInternalError)
}

func TestDueMessage(t *testing.T) {
	tests := []struct {
		name     string
		c        domain.DueClassification
		expected string
	}{
		{name: "overdue one day", c: domain.DueClassification{Status: domain.DueStatusOverdue, DaysUntil: -1}, expected: "Overdue by 1 day"},
		{name: "overdue many days", c: domain.DueClassification{Status: domain.DueStatusOverdue, DaysUntil: -5}, expected: "Overdue by 5 days"},
		{name: "due today", c: domain.DueClassification{Status: domain.DueStatusDueToday}, expected: "Due today"},
		{name: "due tomorrow", c: domain.DueClassification{Status: domain.DueStatusDueSoon, DaysUntil: 1}, expected: "Due tomorrow"},
		{name: "due soon", c: domain.DueClassification{Status: domain.DueStatusDueSoon, DaysUntil: 3}, expected: "Due in 3 days"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, app.DueMessage(tt.c))
		})
	}
}
