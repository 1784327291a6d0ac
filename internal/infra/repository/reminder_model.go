package repository

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/KasumiMercury/primind-car-care/internal/domain"
)

type DeviceJSON struct {
	DeviceID  string `json:"device_id"`
	PushToken string `json:"push_token"`
}

type DevicesJSONB []DeviceJSON

func (d *DevicesJSONB) Scan(value interface{}) error {
	if value == nil {
		*d = nil

		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, d)
	case string:
		return json.Unmarshal([]byte(v), d)
	default:
		return errors.New("failed to scan DevicesJSONB: expected []byte or string")
	}
}

func (d DevicesJSONB) Value() (driver.Value, error) {
	if d == nil {
		return []byte("[]"), nil
	}

	return json.Marshal(d)
}

type ReminderModel struct {
	ID               string       `gorm:"column:id;type:uuid;primaryKey"`
	UserID           string       `gorm:"column:user_id;type:varchar(128);not null;index:idx_reminders_user_id"`
	CarID            *string      `gorm:"column:car_id;type:uuid;index:idx_reminders_car_id"`
	Title            string       `gorm:"column:title;type:varchar(200);not null"`
	Description      string       `gorm:"column:description;type:text;not null;default:''"`
	TargetDate       time.Time    `gorm:"column:target_date;type:date;not null;index:idx_reminders_status_target_date,priority:2"`
	TimeOfDay        string       `gorm:"column:time_of_day;type:varchar(5);not null;default:''"`
	Category         string       `gorm:"column:category;type:varchar(32);not null"`
	Status           string       `gorm:"column:status;type:varchar(16);not null;index:idx_reminders_status_target_date,priority:1"`
	NotifyBeforeDays *int         `gorm:"column:notify_before_days;type:integer"`
	Devices          DevicesJSONB `gorm:"column:devices;type:jsonb;not null"`
	LastNotifiedOn   *time.Time   `gorm:"column:last_notified_on;type:date"`
	CreatedAt        time.Time    `gorm:"column:created_at;type:timestamptz;not null"`
	UpdatedAt        time.Time    `gorm:"column:updated_at;type:timestamptz;not null"`
}

func (ReminderModel) TableName() string {
	return "reminders"
}

func (m *ReminderModel) ToEntity() (*domain.Reminder, error) {
	reminderID, err := domain.ReminderIDFromString(m.ID)
	if err != nil {
		return nil, err
	}

	userID, err := domain.UserIDFromString(m.UserID)
	if err != nil {
		return nil, err
	}

	var carID *domain.CarID
	if m.CarID != nil {
		id, err := domain.CarIDFromString(*m.CarID)
		if err != nil {
			return nil, err
		}

		carID = &id
	}

	timeOfDay, err := domain.ParseTimeOfDay(m.TimeOfDay)
	if err != nil {
		return nil, err
	}

	category, err := domain.NewReminderCategory(m.Category)
	if err != nil {
		return nil, err
	}

	status, err := domain.NewReminderStatus(m.Status)
	if err != nil {
		return nil, err
	}

	devices := make([]domain.Device, 0, len(m.Devices))
	for _, d := range m.Devices {
		device, err := domain.NewDevice(d.DeviceID, d.PushToken)
		if err != nil {
			return nil, err
		}

		devices = append(devices, device)
	}

	deviceCollection, err := domain.NewDevices(devices)
	if err != nil {
		return nil, err
	}

	// the notify window is passed through unvalidated so that a bad stored
	// value surfaces at classification time
	return domain.ReconstituteReminder(
		reminderID,
		userID,
		domain.ReminderDetails{
			CarID:            carID,
			Title:            m.Title,
			Description:      m.Description,
			TargetDate:       calendarDateOf(m.TargetDate),
			TimeOfDay:        timeOfDay,
			Category:         category,
			NotifyBeforeDays: m.NotifyBeforeDays,
			Devices:          deviceCollection,
		},
		status,
		nullableCalendarDateOf(m.LastNotifiedOn),
		m.CreatedAt,
		m.UpdatedAt,
	), nil
}

func ReminderFromEntity(e *domain.Reminder) *ReminderModel {
	devices := make(DevicesJSONB, 0, e.Devices().Count())
	for _, d := range e.Devices().ToSlice() {
		devices = append(devices, DeviceJSON{
			DeviceID:  d.DeviceID(),
			PushToken: d.PushToken(),
		})
	}

	var carID *string
	if id := e.CarID(); id != nil {
		s := id.String()
		carID = &s
	}

	return &ReminderModel{
		ID:               e.ID().String(),
		UserID:           e.UserID().String(),
		CarID:            carID,
		Title:            e.Title(),
		Description:      e.Description(),
		TargetDate:       dateColumn(e.TargetDate()),
		TimeOfDay:        e.TimeOfDay().String(),
		Category:         string(e.Category()),
		Status:           string(e.Status()),
		NotifyBeforeDays: e.NotifyBeforeDays(),
		Devices:          devices,
		LastNotifiedOn:   nullableDateColumn(e.LastNotifiedOn()),
		CreatedAt:        e.CreatedAt(),
		UpdatedAt:        e.UpdatedAt(),
	}
}
