package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CompletedTaskModel struct {
	TaskID        uuid.UUID `gorm:"column:task_id;type:uuid;default:gen_random_uuid();primaryKey" json:"task_id"`
	TaskJobID     uuid.UUID `gorm:"column:task_job_id;type:uuid;not null;index:idx_completed_tasks_job_id" json:"task_job_id"`
	TaskComponent string    `gorm:"column:task_component;type:varchar(255);not null" json:"task_component"`
	TaskNotes     string    `gorm:"column:task_notes;type:text"                      json:"task_notes"`

	TaskCompletedDate time.Time `gorm:"column:task_completed_date;type:date;not null" json:"task_completed_date"`

	TaskCreatedAt time.Time      `gorm:"column:task_created_at;type:timestamptz;autoCreateTime" json:"task_created_at"`
	TaskUpdatedAt time.Time      `gorm:"column:task_updated_at;type:timestamptz;autoUpdateTime" json:"task_updated_at"`
	TaskDeletedAt gorm.DeletedAt `gorm:"column:task_deleted_at;type:timestamptz;index"          json:"task_deleted_at,omitempty"`
}

func (CompletedTaskModel) TableName() string {
	return "completed_tasks"
}
