package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	VehicleStatusAvailable = "available"
	VehicleStatusOnSite    = "on_site"
	VehicleStatusInShop    = "in_shop"
	VehicleStatusRetired   = "retired"
)

type VehicleModel struct {
	VehicleID    uuid.UUID `gorm:"column:vehicle_id;type:uuid;default:gen_random_uuid();primaryKey" json:"vehicle_id"`
	VehicleName  string    `gorm:"column:vehicle_name;type:varchar(100);not null"                   json:"vehicle_name"`
	VehiclePlate string    `gorm:"column:vehicle_plate;type:varchar(20)"                            json:"vehicle_plate"`
	VehicleMake  string    `gorm:"column:vehicle_make;type:varchar(50)"                             json:"vehicle_make"`
	VehicleModel string    `gorm:"column:vehicle_model;type:varchar(50)"                            json:"vehicle_model"`
	VehicleYear  int       `gorm:"column:vehicle_year"                                              json:"vehicle_year"`

	VehicleStatus string     `gorm:"column:vehicle_status;type:varchar(20);not null;default:'available'" json:"vehicle_status"`
	VehicleJobID  *uuid.UUID `gorm:"column:vehicle_job_id;type:uuid;index"                               json:"vehicle_job_id"`

	// Array of {date, odometer, description, cost} objects, append-only.
	VehicleServiceRecords datatypes.JSON `gorm:"column:vehicle_service_records;type:jsonb" json:"vehicle_service_records"`

	VehicleCreatedAt time.Time      `gorm:"column:vehicle_created_at;type:timestamptz;autoCreateTime" json:"vehicle_created_at"`
	VehicleUpdatedAt time.Time      `gorm:"column:vehicle_updated_at;type:timestamptz;autoUpdateTime" json:"vehicle_updated_at"`
	VehicleDeletedAt gorm.DeletedAt `gorm:"column:vehicle_deleted_at;type:timestamptz;index"          json:"vehicle_deleted_at,omitempty"`
}

func (VehicleModel) TableName() string {
	return "vehicles"
}

func ValidVehicleStatus(s string) bool {
	switch s {
	case VehicleStatusAvailable, VehicleStatusOnSite, VehicleStatusInShop, VehicleStatusRetired:
		return true
	}
	return false
}
