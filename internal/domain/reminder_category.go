package domain

import "fmt"

type ReminderCategory string

const (
	ReminderCategoryMaintenance  ReminderCategory = "maintenance"
	ReminderCategoryOilChange    ReminderCategory = "oil_change"
	ReminderCategoryInspection   ReminderCategory = "inspection"
	ReminderCategoryInsurance    ReminderCategory = "insurance"
	ReminderCategoryRegistration ReminderCategory = "registration"
	ReminderCategoryTires        ReminderCategory = "tires"
	ReminderCategoryOther        ReminderCategory = "other"
)

// NewReminderCategory defaults an empty value to ReminderCategoryOther.
func NewReminderCategory(c string) (ReminderCategory, error) {
	switch ReminderCategory(c) {
	case "":
		return ReminderCategoryOther, nil
	case ReminderCategoryMaintenance, ReminderCategoryOilChange, ReminderCategoryInspection,
		ReminderCategoryInsurance, ReminderCategoryRegistration, ReminderCategoryTires,
		ReminderCategoryOther:
		return ReminderCategory(c), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidReminderCategory, c)
	}
}
