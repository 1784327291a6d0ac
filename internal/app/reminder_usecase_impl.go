package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/KasumiMercury/primind-car-care/internal/domain"
)

type reminderUseCaseImpl struct {
	repo     domain.ReminderRepository
	carRepo  domain.CarRepository
	calendar *Calendar
}

func NewReminderUseCase(repo domain.ReminderRepository, carRepo domain.CarRepository, calendar *Calendar) ReminderUseCase {
	return &reminderUseCaseImpl{
		repo:     repo,
		carRepo:  carRepo,
		calendar: calendar,
	}
}

func (uc *reminderUseCaseImpl) CreateReminder(ctx context.Context, input CreateReminderInput) (ReminderOutput, error) {
	slog.DebugContext(ctx, "creating reminder",
		"user_id", input.UserID,
		"target_date", input.Reminder.TargetDate,
	)

	userID, err := parseUserID(input.UserID)
	if err != nil {
		return ReminderOutput{}, err
	}

	today, err := uc.calendar.Resolve(input.Today)
	if err != nil {
		return ReminderOutput{}, err
	}

	details, err := input.Reminder.toDetails()
	if err != nil {
		return ReminderOutput{}, err
	}

	if err := uc.checkCar(ctx, userID, details.CarID); err != nil {
		return ReminderOutput{}, err
	}

	reminder, err := domain.NewReminder(userID, details)
	if err != nil {
		return ReminderOutput{}, newDomainValidationError(err, "reminder")
	}

	if err := uc.repo.Save(ctx, reminder); err != nil {
		slog.ErrorContext(ctx, "failed to save reminder",
			"error", err,
			"reminder_id", reminder.ID().String(),
		)

		return ReminderOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.DebugContext(ctx, "reminder created",
		"reminder_id", reminder.ID().String(),
	)

	return FromReminder(reminder, today), nil
}

func (uc *reminderUseCaseImpl) GetReminder(ctx context.Context, input GetReminderInput) (ReminderOutput, error) {
	today, err := uc.calendar.Resolve(input.Today)
	if err != nil {
		return ReminderOutput{}, err
	}

	reminder, err := uc.loadOwnedReminder(ctx, input.UserID, input.ID)
	if err != nil {
		return ReminderOutput{}, err
	}

	return FromReminder(reminder, today), nil
}

func (uc *reminderUseCaseImpl) ListReminders(ctx context.Context, input ListRemindersInput) (RemindersOutput, error) {
	userID, err := parseUserID(input.UserID)
	if err != nil {
		return RemindersOutput{}, err
	}

	today, err := uc.calendar.Resolve(input.Today)
	if err != nil {
		return RemindersOutput{}, err
	}

	var filter domain.ReminderFilter

	if input.Status != nil && *input.Status != "" {
		status, err := domain.NewReminderStatus(*input.Status)
		if err != nil {
			return RemindersOutput{}, NewValidationError("status", err.Error())
		}

		filter.Status = &status
	}

	if input.CarID != nil && *input.CarID != "" {
		carID, err := domain.CarIDFromString(*input.CarID)
		if err != nil {
			return RemindersOutput{}, NewValidationError("car_id", err.Error())
		}

		filter.CarID = &carID
	}

	reminders, err := uc.repo.FindByUserID(ctx, userID, filter)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list reminders",
			"error", err,
			"user_id", input.UserID,
		)

		return RemindersOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.DebugContext(ctx, "reminders retrieved",
		"count", len(reminders),
		"today", today.String(),
	)

	return FromReminders(reminders, today), nil
}

func (uc *reminderUseCaseImpl) UpdateReminder(ctx context.Context, input UpdateReminderInput) (ReminderOutput, error) {
	slog.DebugContext(ctx, "updating reminder",
		"reminder_id", input.ID,
	)

	today, err := uc.calendar.Resolve(input.Today)
	if err != nil {
		return ReminderOutput{}, err
	}

	reminder, err := uc.loadOwnedReminder(ctx, input.UserID, input.ID)
	if err != nil {
		return ReminderOutput{}, err
	}

	details, err := input.Reminder.toDetails()
	if err != nil {
		return ReminderOutput{}, err
	}

	if err := uc.checkCar(ctx, reminder.UserID(), details.CarID); err != nil {
		return ReminderOutput{}, err
	}

	if err := reminder.UpdateDetails(details); err != nil {
		return ReminderOutput{}, newDomainValidationError(err, "reminder")
	}

	if err := uc.save(ctx, reminder); err != nil {
		return ReminderOutput{}, err
	}

	return FromReminder(reminder, today), nil
}

func (uc *reminderUseCaseImpl) CompleteReminder(ctx context.Context, input ReminderTransitionInput) (ReminderOutput, error) {
	return uc.transition(ctx, input, (*domain.Reminder).Complete, domain.ErrAlreadyCompleted)
}

func (uc *reminderUseCaseImpl) DismissReminder(ctx context.Context, input ReminderTransitionInput) (ReminderOutput, error) {
	return uc.transition(ctx, input, (*domain.Reminder).Dismiss, domain.ErrAlreadyDismissed)
}

// transition applies a status change. Repeating the same change is a no-op.
func (uc *reminderUseCaseImpl) transition(
	ctx context.Context,
	input ReminderTransitionInput,
	apply func(*domain.Reminder) error,
	alreadyErr error,
) (ReminderOutput, error) {
	today, err := uc.calendar.Resolve(input.Today)
	if err != nil {
		return ReminderOutput{}, err
	}

	reminder, err := uc.loadOwnedReminder(ctx, input.UserID, input.ID)
	if err != nil {
		return ReminderOutput{}, err
	}

	if err := apply(reminder); err != nil {
		if errors.Is(err, alreadyErr) {
			slog.InfoContext(ctx, "reminder already in requested status (idempotency)",
				"reminder_id", input.ID,
				"status", string(reminder.Status()),
			)

			return FromReminder(reminder, today), nil
		}

		return ReminderOutput{}, newDomainValidationError(err, "status")
	}

	if err := uc.save(ctx, reminder); err != nil {
		return ReminderOutput{}, err
	}

	slog.InfoContext(ctx, "reminder status changed",
		"reminder_id", input.ID,
		"status", string(reminder.Status()),
	)

	return FromReminder(reminder, today), nil
}

func (uc *reminderUseCaseImpl) DeleteReminder(ctx context.Context, input DeleteReminderInput) error {
	slog.DebugContext(ctx, "deleting reminder",
		"reminder_id", input.ID,
	)

	reminder, err := uc.loadOwnedReminder(ctx, input.UserID, input.ID)
	if err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, reminder.ID()); err != nil {
		if !errors.Is(err, domain.ErrReminderNotFound) {
			slog.ErrorContext(ctx, "failed to delete reminder",
				"error", err,
				"reminder_id", input.ID,
			)

			return fmt.Errorf("%w: %v", ErrInternalError, err)
		}

		slog.InfoContext(ctx, "reminder not found for deletion (idempotency)",
			"reminder_id", input.ID,
		)
	}

	slog.DebugContext(ctx, "reminder deleted",
		"reminder_id", input.ID,
	)

	return nil
}

func (uc *reminderUseCaseImpl) save(ctx context.Context, reminder *domain.Reminder) error {
	if err := uc.repo.Update(ctx, reminder); err != nil {
		if errors.Is(err, domain.ErrReminderNotFound) {
			return fmt.Errorf("%w: %v", ErrNotFound, err)
		}

		slog.ErrorContext(ctx, "failed to update reminder",
			"error", err,
			"reminder_id", reminder.ID().String(),
		)

		return fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	return nil
}

func (uc *reminderUseCaseImpl) checkCar(ctx context.Context, userID domain.UserID, carID *domain.CarID) error {
	if carID == nil {
		return nil
	}

	return requireOwnedCar(ctx, uc.carRepo, userID, *carID)
}

func (uc *reminderUseCaseImpl) loadOwnedReminder(ctx context.Context, rawUserID, rawID string) (*domain.Reminder, error) {
	userID, err := parseUserID(rawUserID)
	if err != nil {
		return nil, err
	}

	id, err := domain.ReminderIDFromString(rawID)
	if err != nil {
		return nil, NewValidationError("id", err.Error())
	}

	reminder, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrReminderNotFound) {
			return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
		}

		slog.ErrorContext(ctx, "failed to find reminder",
			"error", err,
			"reminder_id", rawID,
		)

		return nil, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	if !reminder.BelongsTo(userID) {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, domain.ErrReminderNotFound)
	}

	return reminder, nil
}
