package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CalendarEventModel struct {
	EventID    uuid.UUID  `gorm:"column:event_id;type:uuid;default:gen_random_uuid();primaryKey" json:"event_id"`
	EventJobID *uuid.UUID `gorm:"column:event_job_id;type:uuid;index:idx_calendar_events_job_id" json:"event_job_id"`

	EventTitle       string `gorm:"column:event_title;type:varchar(255);not null" json:"event_title"`
	EventDescription string `gorm:"column:event_description;type:text"            json:"event_description"`
	EventType        string `gorm:"column:event_type;type:varchar(30);not null;default:'task_deadline'" json:"event_type"`

	EventDate time.Time `gorm:"column:event_date;type:date;not null;index:idx_calendar_events_date" json:"event_date"`

	// Optional time-of-day window; both empty for all-day events.
	EventAllDay    bool   `gorm:"column:event_all_day;not null;default:true"   json:"event_all_day"`
	EventStartTime string `gorm:"column:event_start_time;type:varchar(5)"      json:"event_start_time"`
	EventEndTime   string `gorm:"column:event_end_time;type:varchar(5)"        json:"event_end_time"`

	EventCompletedAt *time.Time `gorm:"column:event_completed_at;type:timestamptz" json:"event_completed_at"`
	EventCompletedBy *uuid.UUID `gorm:"column:event_completed_by;type:uuid"        json:"event_completed_by"`

	EventCreatedBy uuid.UUID `gorm:"column:event_created_by;type:uuid" json:"event_created_by"`

	EventCreatedAt time.Time      `gorm:"column:event_created_at;type:timestamptz;autoCreateTime" json:"event_created_at"`
	EventUpdatedAt time.Time      `gorm:"column:event_updated_at;type:timestamptz;autoUpdateTime" json:"event_updated_at"`
	EventDeletedAt gorm.DeletedAt `gorm:"column:event_deleted_at;type:timestamptz;index"          json:"event_deleted_at,omitempty"`
}

func (CalendarEventModel) TableName() string {
	return "calendar_events"
}
