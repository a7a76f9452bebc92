package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	JobStatusActive    = "active"
	JobStatusOnHold    = "on_hold"
	JobStatusCompleted = "completed"
	JobStatusCancelled = "cancelled"
)

type JobModel struct {
	JobID         uuid.UUID `gorm:"column:job_id;type:uuid;default:gen_random_uuid();primaryKey" json:"job_id"`
	JobName       string    `gorm:"column:job_name;type:varchar(255);not null"                   json:"job_name"`
	JobClientName string    `gorm:"column:job_client_name;type:varchar(255)"                     json:"job_client_name"`
	JobAddress    string    `gorm:"column:job_address;type:text"                                 json:"job_address"`
	JobStatus     string    `gorm:"column:job_status;type:varchar(20);not null;default:'active';index:idx_jobs_status" json:"job_status"`

	// Internal jobs (shop time, yard work) stay off the calendar and reports.
	JobIsInternal bool `gorm:"column:job_is_internal;not null;default:false" json:"job_is_internal"`

	JobCreatedAt time.Time      `gorm:"column:job_created_at;type:timestamptz;autoCreateTime" json:"job_created_at"`
	JobUpdatedAt time.Time      `gorm:"column:job_updated_at;type:timestamptz;autoUpdateTime" json:"job_updated_at"`
	JobDeletedAt gorm.DeletedAt `gorm:"column:job_deleted_at;type:timestamptz;index"          json:"job_deleted_at,omitempty"`
}

func (JobModel) TableName() string {
	return "jobs"
}

func ValidJobStatus(s string) bool {
	switch s {
	case JobStatusActive, JobStatusOnHold, JobStatusCompleted, JobStatusCancelled:
		return true
	}
	return false
}
