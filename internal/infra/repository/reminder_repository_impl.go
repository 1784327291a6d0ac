package repository

import (
	"context"
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"github.com/KasumiMercury/primind-car-care/internal/domain"
)

type reminderRepositoryImpl struct {
	db *gorm.DB
}

func NewReminderRepository(db *gorm.DB) domain.ReminderRepository {
	return &reminderRepositoryImpl{
		db: db,
	}
}

func (r *reminderRepositoryImpl) Save(ctx context.Context, reminder *domain.Reminder) error {
	slog.DebugContext(ctx, "saving reminder to database",
		"reminder_id", reminder.ID().String(),
	)

	result := r.db.WithContext(ctx).Create(ReminderFromEntity(reminder))
	if result.Error != nil {
		slog.ErrorContext(ctx, "failed to save reminder to database",
			"reminder_id", reminder.ID().String(),
			"error", result.Error,
		)

		return result.Error
	}

	return nil
}

func (r *reminderRepositoryImpl) FindByID(ctx context.Context, id domain.ReminderID) (*domain.Reminder, error) {
	var m ReminderModel

	result := r.db.WithContext(ctx).Where("id = ?", id.String()).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			slog.DebugContext(ctx, "reminder not found",
				"reminder_id", id.String(),
			)

			return nil, domain.ErrReminderNotFound
		}

		slog.ErrorContext(ctx, "failed to find reminder by ID",
			"reminder_id", id.String(),
			"error", result.Error,
		)

		return nil, result.Error
	}

	return m.ToEntity()
}

func (r *reminderRepositoryImpl) FindByUserID(
	ctx context.Context,
	userID domain.UserID,
	filter domain.ReminderFilter,
) ([]*domain.Reminder, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID.String())
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}

	if filter.CarID != nil {
		query = query.Where("car_id = ?", filter.CarID.String())
	}

	var models []ReminderModel

	result := query.Order("target_date ASC").Order("created_at ASC").Find(&models)
	if result.Error != nil {
		slog.ErrorContext(ctx, "failed to find reminders by user ID",
			"user_id", userID.String(),
			"error", result.Error,
		)

		return nil, result.Error
	}

	reminders, err := remindersFromModels(ctx, models)
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "reminders found by user ID",
		"user_id", userID.String(),
		"count", len(reminders),
	)

	return reminders, nil
}

func (r *reminderRepositoryImpl) FindPendingUntil(ctx context.Context, until domain.CalendarDate) (domain.PendingReminders, error) {
	slog.DebugContext(ctx, "finding pending reminders",
		"until", until.String(),
	)

	var models []ReminderModel

	result := r.db.WithContext(ctx).
		Where("status = ? AND target_date <= ?", string(domain.ReminderStatusPending), dateColumn(until)).
		Order("target_date ASC").
		Find(&models)
	if result.Error != nil {
		slog.ErrorContext(ctx, "failed to find pending reminders",
			"until", until.String(),
			"error", result.Error,
		)

		return domain.PendingReminders{}, result.Error
	}

	pending := domain.PendingReminders{
		Reminders: make([]*domain.Reminder, 0, len(models)),
	}

	for _, m := range models {
		reminder, err := m.ToEntity()
		if err != nil {
			slog.WarnContext(ctx, "skipping unreadable reminder row",
				"reminder_id", m.ID,
				"error", err,
			)

			pending.Unreadable = append(pending.Unreadable, domain.UnreadableReminder{ID: m.ID, Err: err})

			continue
		}

		pending.Reminders = append(pending.Reminders, reminder)
	}

	slog.DebugContext(ctx, "pending reminders found",
		"until", until.String(),
		"count", len(pending.Reminders),
		"unreadable", len(pending.Unreadable),
	)

	return pending, nil
}

func (r *reminderRepositoryImpl) Update(ctx context.Context, reminder *domain.Reminder) error {
	m := ReminderFromEntity(reminder)

	result := r.db.WithContext(ctx).
		Model(&ReminderModel{}).
		Where("id = ?", m.ID).
		Select("*").
		Omit("id", "user_id", "created_at").
		Updates(m)
	if result.Error != nil {
		slog.ErrorContext(ctx, "failed to update reminder in database",
			"reminder_id", reminder.ID().String(),
			"error", result.Error,
		)

		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrReminderNotFound
	}

	slog.DebugContext(ctx, "reminder updated in database",
		"reminder_id", reminder.ID().String(),
		"status", m.Status,
	)

	return nil
}

func (r *reminderRepositoryImpl) Delete(ctx context.Context, id domain.ReminderID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id.String()).Delete(&ReminderModel{})
	if result.Error != nil {
		slog.ErrorContext(ctx, "failed to delete reminder from database",
			"reminder_id", id.String(),
			"error", result.Error,
		)

		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrReminderNotFound
	}

	return nil
}

func remindersFromModels(ctx context.Context, models []ReminderModel) ([]*domain.Reminder, error) {
	reminders := make([]*domain.Reminder, 0, len(models))
	for _, m := range models {
		reminder, err := m.ToEntity()
		if err != nil {
			slog.ErrorContext(ctx, "failed to convert model to entity",
				"reminder_id", m.ID,
				"error", err,
			)

			return nil, err
		}

		reminders = append(reminders, reminder)
	}

	return reminders, nil
}
