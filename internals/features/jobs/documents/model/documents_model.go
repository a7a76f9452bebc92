package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type DocumentModel struct {
	DocumentID    uuid.UUID `gorm:"column:document_id;type:uuid;default:gen_random_uuid();primaryKey" json:"document_id"`
	DocumentJobID uuid.UUID `gorm:"column:document_job_id;type:uuid;not null;index:idx_documents_job_id" json:"document_job_id"`

	DocumentFilename    string `gorm:"column:document_filename;type:varchar(512);not null" json:"document_filename"`
	DocumentContentType string `gorm:"column:document_content_type;type:varchar(100)"      json:"document_content_type"`
	DocumentSizeBytes   int64  `gorm:"column:document_size_bytes;not null;default:0"       json:"document_size_bytes"`

	// Free-form tags like ["before","plumbing"] stored as JSONB.
	DocumentTags datatypes.JSON `gorm:"column:document_tags;type:jsonb" json:"document_tags"`

	DocumentUploadedBy uuid.UUID `gorm:"column:document_uploaded_by;type:uuid" json:"document_uploaded_by"`

	DocumentCreatedAt time.Time      `gorm:"column:document_created_at;type:timestamptz;autoCreateTime" json:"document_created_at"`
	DocumentDeletedAt gorm.DeletedAt `gorm:"column:document_deleted_at;type:timestamptz;index"          json:"document_deleted_at,omitempty"`
}

func (DocumentModel) TableName() string {
	return "job_documents"
}
