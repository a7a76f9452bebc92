package dto

import (
	"buildops_backend/internals/features/jobs/documents/model"

	"github.com/google/uuid"
)

type DocumentResponse struct {
	DocumentID          uuid.UUID `json:"document_id"`
	DocumentJobID       uuid.UUID `json:"document_job_id"`
	DocumentFilename    string    `json:"document_filename"`
	DocumentContentType string    `json:"document_content_type"`
	DocumentSizeBytes   int64     `json:"document_size_bytes"`
	DocumentTags        any       `json:"document_tags,omitempty"`
	DocumentCreatedAt   string    `json:"document_created_at"`
}

func ToDocumentResponse(m *model.DocumentModel) *DocumentResponse {
	var tags any
	if len(m.DocumentTags) > 0 {
		tags = m.DocumentTags
	}
	return &DocumentResponse{
		DocumentID:          m.DocumentID,
		DocumentJobID:       m.DocumentJobID,
		DocumentFilename:    m.DocumentFilename,
		DocumentContentType: m.DocumentContentType,
		DocumentSizeBytes:   m.DocumentSizeBytes,
		DocumentTags:        tags,
		DocumentCreatedAt:   m.DocumentCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToDocumentResponseList(models []model.DocumentModel) []DocumentResponse {
	result := make([]DocumentResponse, 0, len(models))
	for _, m := range models {
		result = append(result, *ToDocumentResponse(&m))
	}
	return result
}
