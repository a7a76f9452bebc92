package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ScheduleStatusScheduled = "scheduled"
	ScheduleStatusConfirmed = "confirmed"
	ScheduleStatusCompleted = "completed"
	ScheduleStatusCancelled = "cancelled"
)

type ScheduleModel struct {
	ScheduleID              uuid.UUID `gorm:"column:schedule_id;type:uuid;default:gen_random_uuid();primaryKey" json:"schedule_id"`
	ScheduleJobID           uuid.UUID `gorm:"column:schedule_job_id;type:uuid;not null;index:idx_schedules_job_id" json:"schedule_job_id"`
	ScheduleSubcontractorID uuid.UUID `gorm:"column:schedule_subcontractor_id;type:uuid;not null;index:idx_schedules_subcontractor_id" json:"schedule_subcontractor_id"`

	ScheduleStartDate time.Time  `gorm:"column:schedule_start_date;type:date;not null" json:"schedule_start_date"`
	// NULL end date means a single-day booking.
	ScheduleEndDate   *time.Time `gorm:"column:schedule_end_date;type:date"            json:"schedule_end_date"`

	ScheduleWorkDescription string `gorm:"column:schedule_work_description;type:text" json:"schedule_work_description"`
	ScheduleStatus          string `gorm:"column:schedule_status;type:varchar(20);not null;default:'scheduled'" json:"schedule_status"`

	ScheduleCreatedAt time.Time      `gorm:"column:schedule_created_at;type:timestamptz;autoCreateTime" json:"schedule_created_at"`
	ScheduleUpdatedAt time.Time      `gorm:"column:schedule_updated_at;type:timestamptz;autoUpdateTime" json:"schedule_updated_at"`
	ScheduleDeletedAt gorm.DeletedAt `gorm:"column:schedule_deleted_at;type:timestamptz;index"          json:"schedule_deleted_at,omitempty"`
}

func (ScheduleModel) TableName() string {
	return "subcontractor_schedules"
}

func ValidScheduleStatus(s string) bool {
	switch s {
	case ScheduleStatusScheduled, ScheduleStatusConfirmed, ScheduleStatusCompleted, ScheduleStatusCancelled:
		return true
	}
	return false
}
