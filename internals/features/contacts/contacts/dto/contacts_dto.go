package dto

import (
	"buildops_backend/internals/features/contacts/contacts/model"

	"github.com/google/uuid"
)

// 🔹 Request to create a contact
type ContactRequest struct {
	ContactName     string `json:"contact_name" validate:"required,max=255"`
	ContactCompany  string `json:"contact_company" validate:"max=255"`
	ContactPhone    string `json:"contact_phone" validate:"max=30"`
	ContactEmail    string `json:"contact_email" validate:"omitempty,email"`
	ContactCategory string `json:"contact_category" validate:"required"`
	ContactNotes    string `json:"contact_notes"`
}

// 🔹 Partial update (PATCH)
type ContactUpdateRequest struct {
	ContactName     *string `json:"contact_name"`
	ContactCompany  *string `json:"contact_company"`
	ContactPhone    *string `json:"contact_phone"`
	ContactEmail    *string `json:"contact_email"`
	ContactCategory *string `json:"contact_category"`
	ContactNotes    *string `json:"contact_notes"`
}

// 🔹 Response shape
type ContactResponse struct {
	ContactID       uuid.UUID `json:"contact_id"`
	ContactName     string    `json:"contact_name"`
	ContactCompany  string    `json:"contact_company"`
	ContactPhone    string    `json:"contact_phone"`
	ContactEmail    string    `json:"contact_email"`
	ContactCategory string    `json:"contact_category"`
	ContactNotes    string    `json:"contact_notes"`
	ContactCreatedAt string   `json:"contact_created_at"`
}

func (r *ContactRequest) ToModel() *model.ContactModel {
	return &model.ContactModel{
		ContactName:     r.ContactName,
		ContactCompany:  r.ContactCompany,
		ContactPhone:    r.ContactPhone,
		ContactEmail:    r.ContactEmail,
		ContactCategory: r.ContactCategory,
		ContactNotes:    r.ContactNotes,
	}
}

func ToContactResponse(m *model.ContactModel) *ContactResponse {
	return &ContactResponse{
		ContactID:        m.ContactID,
		ContactName:      m.ContactName,
		ContactCompany:   m.ContactCompany,
		ContactPhone:     m.ContactPhone,
		ContactEmail:     m.ContactEmail,
		ContactCategory:  m.ContactCategory,
		ContactNotes:     m.ContactNotes,
		ContactCreatedAt: m.ContactCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToContactResponseList(models []model.ContactModel) []ContactResponse {
	result := make([]ContactResponse, 0, len(models))
	for _, m := range models {
		result = append(result, *ToContactResponse(&m))
	}
	return result
}
