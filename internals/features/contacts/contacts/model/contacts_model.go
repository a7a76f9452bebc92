package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ContactCategoryVendor    = "vendor"
	ContactCategoryClient    = "client"
	ContactCategorySupplier  = "supplier"
	ContactCategoryInspector = "inspector"
	ContactCategoryOther     = "other"
)

type ContactModel struct {
	ContactID      uuid.UUID `gorm:"column:contact_id;type:uuid;default:gen_random_uuid();primaryKey" json:"contact_id"`
	ContactName    string    `gorm:"column:contact_name;type:varchar(255);not null"                   json:"contact_name"`
	ContactCompany string    `gorm:"column:contact_company;type:varchar(255)"                         json:"contact_company"`
	ContactPhone   string    `gorm:"column:contact_phone;type:varchar(30)"                            json:"contact_phone"`
	ContactEmail   string    `gorm:"column:contact_email;type:varchar(255)"                           json:"contact_email"`

	ContactCategory string `gorm:"column:contact_category;type:varchar(20);not null;default:'other';index" json:"contact_category"`
	ContactNotes    string `gorm:"column:contact_notes;type:text"                                          json:"contact_notes"`

	ContactCreatedAt time.Time      `gorm:"column:contact_created_at;type:timestamptz;autoCreateTime" json:"contact_created_at"`
	ContactUpdatedAt time.Time      `gorm:"column:contact_updated_at;type:timestamptz;autoUpdateTime" json:"contact_updated_at"`
	ContactDeletedAt gorm.DeletedAt `gorm:"column:contact_deleted_at;type:timestamptz;index"          json:"contact_deleted_at,omitempty"`
}

func (ContactModel) TableName() string {
	return "contacts"
}

func ValidContactCategory(s string) bool {
	switch s {
	case ContactCategoryVendor, ContactCategoryClient, ContactCategorySupplier,
		ContactCategoryInspector, ContactCategoryOther:
		return true
	}
	return false
}
