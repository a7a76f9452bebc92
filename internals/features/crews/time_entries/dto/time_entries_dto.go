package dto

import (
	"buildops_backend/internals/features/crews/time_entries/model"
	helper "buildops_backend/internals/helpers"

	"github.com/google/uuid"
)

// 🔹 Request to log hours
type TimeEntryRequest struct {
	EntryJobID       uuid.UUID `json:"time_entry_job_id" validate:"required"`
	EntryWorkDate    string    `json:"time_entry_work_date" validate:"required"`
	EntryHours       float64   `json:"time_entry_hours" validate:"required,gt=0,max=24"`
	EntryDescription string    `json:"time_entry_description" validate:"max=1000"`
}

// 🔹 Partial update (PATCH)
type TimeEntryUpdateRequest struct {
	EntryJobID       *uuid.UUID `json:"time_entry_job_id"`
	EntryWorkDate    *string    `json:"time_entry_work_date"`
	EntryHours       *float64   `json:"time_entry_hours"`
	EntryDescription *string    `json:"time_entry_description"`
}

// 🔹 Response shape
type TimeEntryResponse struct {
	EntryID          uuid.UUID `json:"time_entry_id"`
	EntryUserID      uuid.UUID `json:"time_entry_user_id"`
	EntryJobID       uuid.UUID `json:"time_entry_job_id"`
	EntryWorkDate    string    `json:"time_entry_work_date"`
	EntryHours       float64   `json:"time_entry_hours"`
	EntryDescription string    `json:"time_entry_description"`
	EntryCreatedAt   string    `json:"time_entry_created_at"`
}

func ToTimeEntryResponse(m *model.TimeEntryModel) *TimeEntryResponse {
	return &TimeEntryResponse{
		EntryID:          m.EntryID,
		EntryUserID:      m.EntryUserID,
		EntryJobID:       m.EntryJobID,
		EntryWorkDate:    helper.FormatLocalDate(m.EntryWorkDate),
		EntryHours:       m.EntryHours,
		EntryDescription: m.EntryDescription,
		EntryCreatedAt:   m.EntryCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToTimeEntryResponseList(models []model.TimeEntryModel) []TimeEntryResponse {
	result := make([]TimeEntryResponse, 0, len(models))
	for _, m := range models {
		result = append(result, *ToTimeEntryResponse(&m))
	}
	return result
}
