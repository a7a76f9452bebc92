package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TimeEntryModel struct {
	EntryID     uuid.UUID `gorm:"column:time_entry_id;type:uuid;default:gen_random_uuid();primaryKey" json:"time_entry_id"`
	EntryUserID uuid.UUID `gorm:"column:time_entry_user_id;type:uuid;not null;index"                  json:"time_entry_user_id"`
	EntryJobID  uuid.UUID `gorm:"column:time_entry_job_id;type:uuid;not null;index"                   json:"time_entry_job_id"`

	EntryWorkDate    time.Time `gorm:"column:time_entry_work_date;type:date;not null;index" json:"time_entry_work_date"`
	EntryHours       float64   `gorm:"column:time_entry_hours;type:numeric(4,2);not null"   json:"time_entry_hours"`
	EntryDescription string    `gorm:"column:time_entry_description;type:text"              json:"time_entry_description"`

	EntryCreatedAt time.Time      `gorm:"column:time_entry_created_at;type:timestamptz;autoCreateTime" json:"time_entry_created_at"`
	EntryUpdatedAt time.Time      `gorm:"column:time_entry_updated_at;type:timestamptz;autoUpdateTime" json:"time_entry_updated_at"`
	EntryDeletedAt gorm.DeletedAt `gorm:"column:time_entry_deleted_at;type:timestamptz;index"          json:"time_entry_deleted_at,omitempty"`
}

func (TimeEntryModel) TableName() string {
	return "time_entries"
}
