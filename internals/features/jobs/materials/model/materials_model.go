package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status sequence in the normal workflow:
// not_ordered → ordered → at_shop → pulled → installed
const (
	MaterialStatusNotOrdered = "not_ordered"
	MaterialStatusOrdered    = "ordered"
	MaterialStatusAtShop     = "at_shop"
	MaterialStatusPulled     = "pulled"
	MaterialStatusInstalled  = "installed"
)

type MaterialModel struct {
	MaterialID     uuid.UUID `gorm:"column:material_id;type:uuid;default:gen_random_uuid();primaryKey" json:"material_id"`
	MaterialJobID  uuid.UUID `gorm:"column:material_job_id;type:uuid;not null;index:idx_materials_job_id" json:"material_job_id"`
	MaterialName   string    `gorm:"column:material_name;type:varchar(255);not null" json:"material_name"`
	MaterialVendor string    `gorm:"column:material_vendor;type:varchar(255)"        json:"material_vendor"`
	MaterialQty    string    `gorm:"column:material_qty;type:varchar(100)"           json:"material_qty"`
	MaterialStatus string    `gorm:"column:material_status;type:varchar(20);not null;default:'not_ordered'" json:"material_status"`
	MaterialNotes  string    `gorm:"column:material_notes;type:text"                 json:"material_notes"`

	// Deadline dates. Each one only drives a calendar event while the
	// material is still in the matching status (see the aggregator).
	MaterialOrderByDate  *time.Time `gorm:"column:material_order_by_date;type:date"  json:"material_order_by_date"`
	MaterialDeliveryDate *time.Time `gorm:"column:material_delivery_date;type:date"  json:"material_delivery_date"`
	MaterialPullByDate   *time.Time `gorm:"column:material_pull_by_date;type:date"   json:"material_pull_by_date"`

	MaterialCreatedAt time.Time      `gorm:"column:material_created_at;type:timestamptz;autoCreateTime" json:"material_created_at"`
	MaterialUpdatedAt time.Time      `gorm:"column:material_updated_at;type:timestamptz;autoUpdateTime" json:"material_updated_at"`
	MaterialDeletedAt gorm.DeletedAt `gorm:"column:material_deleted_at;type:timestamptz;index"          json:"material_deleted_at,omitempty"`
}

func (MaterialModel) TableName() string {
	return "materials"
}

func ValidMaterialStatus(s string) bool {
	switch s {
	case MaterialStatusNotOrdered, MaterialStatusOrdered, MaterialStatusAtShop,
		MaterialStatusPulled, MaterialStatusInstalled:
		return true
	}
	return false
}
