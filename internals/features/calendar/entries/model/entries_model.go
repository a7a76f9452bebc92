package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Quick one-off calendar rows (shop pickups, vendor deliveries, order
// reminders) that aren't tied to a tracked material's status.
const (
	EntryTypePickup        = "pickup"
	EntryTypeDelivery      = "delivery"
	EntryTypeOrderReminder = "order_reminder"
)

type CalendarEntryModel struct {
	EntryID    uuid.UUID  `gorm:"column:entry_id;type:uuid;default:gen_random_uuid();primaryKey" json:"entry_id"`
	EntryJobID *uuid.UUID `gorm:"column:entry_job_id;type:uuid;index:idx_calendar_entries_job_id" json:"entry_job_id"`

	EntryTitle       string    `gorm:"column:entry_title;type:varchar(255);not null" json:"entry_title"`
	EntryDescription string    `gorm:"column:entry_description;type:text"            json:"entry_description"`
	EntryType        string    `gorm:"column:entry_type;type:varchar(20);not null"   json:"entry_type"`
	EntryDate        time.Time `gorm:"column:entry_date;type:date;not null;index:idx_calendar_entries_date" json:"entry_date"`

	EntryCreatedAt time.Time      `gorm:"column:entry_created_at;type:timestamptz;autoCreateTime" json:"entry_created_at"`
	EntryUpdatedAt time.Time      `gorm:"column:entry_updated_at;type:timestamptz;autoUpdateTime" json:"entry_updated_at"`
	EntryDeletedAt gorm.DeletedAt `gorm:"column:entry_deleted_at;type:timestamptz;index"          json:"entry_deleted_at,omitempty"`
}

func (CalendarEntryModel) TableName() string {
	return "calendar_entries"
}

func ValidEntryType(s string) bool {
	switch s {
	case EntryTypePickup, EntryTypeDelivery, EntryTypeOrderReminder:
		return true
	}
	return false
}
