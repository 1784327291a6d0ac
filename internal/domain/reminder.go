package domain

import (
	"strings"
	"time"
)

const maxTitleLength = 200

// ReminderDetails holds the user-editable fields of a reminder.
type ReminderDetails struct {
	CarID            *CarID
	Title            string
	Description      string
	TargetDate       CalendarDate
	TimeOfDay        TimeOfDay
	Category         ReminderCategory
	NotifyBeforeDays *int
	Devices          Devices
}

func (d ReminderDetails) normalize() (ReminderDetails, error) {
	d.Title = strings.TrimSpace(d.Title)
	if d.Title == "" || len(d.Title) > maxTitleLength {
		return ReminderDetails{}, ErrInvalidTitle
	}

	d.Description = strings.TrimSpace(d.Description)

	if d.TargetDate.IsZero() {
		return ReminderDetails{}, ErrMissingDate
	}

	if d.NotifyBeforeDays != nil {
		if err := ValidateNotifyBeforeDays(*d.NotifyBeforeDays); err != nil {
			return ReminderDetails{}, err
		}

		days := *d.NotifyBeforeDays
		d.NotifyBeforeDays = &days
	}

	if d.Category == "" {
		d.Category = ReminderCategoryOther
	}

	return d, nil
}

type Reminder struct {
	id             ReminderID
	userID         UserID
	details        ReminderDetails
	status         ReminderStatus
	lastNotifiedOn *CalendarDate
	createdAt      time.Time
	updatedAt      time.Time
}

func NewReminder(userID UserID, details ReminderDetails) (*Reminder, error) {
	normalized, err := details.normalize()
	if err != nil {
		return nil, err
	}

	now := time.Now()

	return &Reminder{
		id:        NewReminderID(),
		userID:    userID,
		details:   normalized,
		status:    ReminderStatusPending,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstituteReminder(
	id ReminderID,
	userID UserID,
	details ReminderDetails,
	status ReminderStatus,
	lastNotifiedOn *CalendarDate,
	createdAt time.Time,
	updatedAt time.Time,
) *Reminder {
	return &Reminder{
		id:             id,
		userID:         userID,
		details:        details,
		status:         status,
		lastNotifiedOn: lastNotifiedOn,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (r *Reminder) UpdateDetails(details ReminderDetails) error {
	normalized, err := details.normalize()
	if err != nil {
		return err
	}

	if !normalized.TargetDate.Equals(r.details.TargetDate) {
		r.lastNotifiedOn = nil
	}

	r.details = normalized
	r.updatedAt = time.Now()

	return nil
}

func (r *Reminder) Complete() error {
	switch r.status {
	case ReminderStatusCompleted:
		return ErrAlreadyCompleted
	case ReminderStatusPending:
		r.status = ReminderStatusCompleted
		r.updatedAt = time.Now()

		return nil
	default:
		return ErrReminderNotPending
	}
}

func (r *Reminder) Dismiss() error {
	switch r.status {
	case ReminderStatusDismissed:
		return ErrAlreadyDismissed
	case ReminderStatusPending:
		r.status = ReminderStatusDismissed
		r.updatedAt = time.Now()

		return nil
	default:
		return ErrReminderNotPending
	}
}

// Classify is recomputed on every call and never stored.
func (r *Reminder) Classify(today CalendarDate) (DueClassification, error) {
	return ClassifyDue(r.details.TargetDate, r.details.NotifyBeforeDays, today)
}

// ShouldNotify reports whether a dispatch run on today should deliver c.
// Delivery happens at most once per day, and an overdue reminder is
// announced once after its target date has passed.
func (r *Reminder) ShouldNotify(c DueClassification, today CalendarDate) bool {
	if !c.NeedsAttention() {
		return false
	}

	if r.lastNotifiedOn == nil {
		return true
	}

	if !r.lastNotifiedOn.Before(today) {
		return false
	}

	if c.Status == DueStatusOverdue {
		return !r.lastNotifiedOn.After(r.details.TargetDate)
	}

	return true
}

func (r *Reminder) MarkNotified(today CalendarDate) {
	r.lastNotifiedOn = &today
}

// RemoveDevicesByToken drops devices whose push token the provider no longer
// accepts and returns how many were removed.
func (r *Reminder) RemoveDevicesByToken(tokens []string) int {
	remaining := r.details.Devices.WithoutPushTokens(tokens)
	removed := r.details.Devices.Count() - remaining.Count()

	if removed > 0 {
		r.details.Devices = remaining
		r.updatedAt = time.Now()
	}

	return removed
}

func (r *Reminder) IsPending() bool {
	return r.status == ReminderStatusPending
}

func (r *Reminder) BelongsTo(userID UserID) bool {
	return r.userID.Equals(userID)
}

func (r *Reminder) ID() ReminderID {
	return r.id
}

func (r *Reminder) UserID() UserID {
	return r.userID
}

func (r *Reminder) CarID() *CarID {
	return r.details.CarID
}

func (r *Reminder) Title() string {
	return r.details.Title
}

func (r *Reminder) Description() string {
	return r.details.Description
}

func (r *Reminder) TargetDate() CalendarDate {
	return r.details.TargetDate
}

func (r *Reminder) TimeOfDay() TimeOfDay {
	return r.details.TimeOfDay
}

func (r *Reminder) Category() ReminderCategory {
	return r.details.Category
}

func (r *Reminder) NotifyBeforeDays() *int {
	return r.details.NotifyBeforeDays
}

func (r *Reminder) Devices() Devices {
	return r.details.Devices
}

func (r *Reminder) Status() ReminderStatus {
	return r.status
}

func (r *Reminder) LastNotifiedOn() *CalendarDate {
	return r.lastNotifiedOn
}

func (r *Reminder) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Reminder) UpdatedAt() time.Time {
	return r.updatedAt
}
