package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type SubcontractorModel struct {
	SubcontractorID    uuid.UUID `gorm:"column:subcontractor_id;type:uuid;default:gen_random_uuid();primaryKey" json:"subcontractor_id"`
	SubcontractorName  string    `gorm:"column:subcontractor_name;type:varchar(255);not null" json:"subcontractor_name"`
	SubcontractorPhone string    `gorm:"column:subcontractor_phone;type:varchar(50)"          json:"subcontractor_phone"`
	SubcontractorEmail string    `gorm:"column:subcontractor_email;type:varchar(255)"         json:"subcontractor_email"`

	// Trades as a Postgres text[] ("electrical", "plumbing", ...).
	SubcontractorTrades pq.StringArray `gorm:"column:subcontractor_trades;type:text[]" json:"subcontractor_trades"`

	SubcontractorCreatedAt time.Time      `gorm:"column:subcontractor_created_at;type:timestamptz;autoCreateTime" json:"subcontractor_created_at"`
	SubcontractorUpdatedAt time.Time      `gorm:"column:subcontractor_updated_at;type:timestamptz;autoUpdateTime" json:"subcontractor_updated_at"`
	SubcontractorDeletedAt gorm.DeletedAt `gorm:"column:subcontractor_deleted_at;type:timestamptz;index"          json:"subcontractor_deleted_at,omitempty"`
}

func (SubcontractorModel) TableName() string {
	return "subcontractors"
}
