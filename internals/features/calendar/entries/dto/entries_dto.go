package dto

import (
	"buildops_backend/internals/features/calendar/entries/model"
	helper "buildops_backend/internals/helpers"

	"github.com/google/uuid"
)

type CalendarEntryRequest struct {
	EntryJobID       *uuid.UUID `json:"entry_job_id"`
	EntryTitle       string     `json:"entry_title" validate:"required,max=255"`
	EntryDescription string     `json:"entry_description"`
	EntryType        string     `json:"entry_type" validate:"required"`
	EntryDate        string     `json:"entry_date" validate:"required"`
}

type CalendarEntryUpdateRequest struct {
	EntryTitle       *string `json:"entry_title"`
	EntryDescription *string `json:"entry_description"`
	EntryType        *string `json:"entry_type"`
	EntryDate        *string `json:"entry_date"`
}

type CalendarEntryResponse struct {
	EntryID          uuid.UUID  `json:"entry_id"`
	EntryJobID       *uuid.UUID `json:"entry_job_id,omitempty"`
	EntryTitle       string     `json:"entry_title"`
	EntryDescription string     `json:"entry_description"`
	EntryType        string     `json:"entry_type"`
	EntryDate        string     `json:"entry_date"`
	EntryCreatedAt   string     `json:"entry_created_at"`
}

func (r *CalendarEntryRequest) ToModel() (*model.CalendarEntryModel, error) {
	date, err := helper.ParseLocalDate(r.EntryDate)
	if err != nil {
		return nil, err
	}
	return &model.CalendarEntryModel{
		EntryJobID:       r.EntryJobID,
		EntryTitle:       r.EntryTitle,
		EntryDescription: r.EntryDescription,
		EntryType:        r.EntryType,
		EntryDate:        date,
	}, nil
}

func ToCalendarEntryResponse(m *model.CalendarEntryModel) *CalendarEntryResponse {
	return &CalendarEntryResponse{
		EntryID:          m.EntryID,
		EntryJobID:       m.EntryJobID,
		EntryTitle:       m.EntryTitle,
		EntryDescription: m.EntryDescription,
		EntryType:        m.EntryType,
		EntryDate:        helper.FormatLocalDate(m.EntryDate),
		EntryCreatedAt:   m.EntryCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToCalendarEntryResponseList(models []model.CalendarEntryModel) []CalendarEntryResponse {
	result := make([]CalendarEntryResponse, 0, len(models))
	for _, m := range models {
		result = append(result, *ToCalendarEntryResponse(&m))
	}
	return result
}
