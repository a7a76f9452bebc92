package dto

import (
	"buildops_backend/internals/features/calendar/events/model"
	helper "buildops_backend/internals/helpers"

	"github.com/google/uuid"
)

type CalendarEventRequest struct {
	EventJobID       *uuid.UUID `json:"event_job_id"`
	EventTitle       string     `json:"event_title" validate:"required,max=255"`
	EventDescription string     `json:"event_description"`
	EventType        string     `json:"event_type" validate:"max=30"`
	EventDate        string     `json:"event_date" validate:"required"`
	EventAllDay      *bool      `json:"event_all_day"`
	EventStartTime   string     `json:"event_start_time" validate:"omitempty,len=5"`
	EventEndTime     string     `json:"event_end_time" validate:"omitempty,len=5"`
}

type CalendarEventUpdateRequest struct {
	EventJobID       *uuid.UUID `json:"event_job_id"`
	EventTitle       *string    `json:"event_title"`
	EventDescription *string    `json:"event_description"`
	EventType        *string    `json:"event_type"`
	EventDate        *string    `json:"event_date"`
	EventAllDay      *bool      `json:"event_all_day"`
	EventStartTime   *string    `json:"event_start_time"`
	EventEndTime     *string    `json:"event_end_time"`
}

type CalendarEventResponse struct {
	EventID          uuid.UUID  `json:"event_id"`
	EventJobID       *uuid.UUID `json:"event_job_id,omitempty"`
	EventTitle       string     `json:"event_title"`
	EventDescription string     `json:"event_description"`
	EventType        string     `json:"event_type"`
	EventDate        string     `json:"event_date"`
	EventAllDay      bool       `json:"event_all_day"`
	EventStartTime   string     `json:"event_start_time,omitempty"`
	EventEndTime     string     `json:"event_end_time,omitempty"`
	EventCompletedAt string     `json:"event_completed_at,omitempty"`
	EventCompletedBy *uuid.UUID `json:"event_completed_by,omitempty"`
	EventCreatedAt   string     `json:"event_created_at"`
}

func (r *CalendarEventRequest) ToModel(createdBy uuid.UUID) (*model.CalendarEventModel, error) {
	date, err := helper.ParseLocalDate(r.EventDate)
	if err != nil {
		return nil, err
	}
	eventType := r.EventType
	if eventType == "" {
		eventType = "task_deadline"
	}
	allDay := true
	if r.EventAllDay != nil {
		allDay = *r.EventAllDay
	}
	if r.EventStartTime != "" {
		allDay = false
	}
	return &model.CalendarEventModel{
		EventJobID:       r.EventJobID,
		EventTitle:       r.EventTitle,
		EventDescription: r.EventDescription,
		EventType:        eventType,
		EventDate:        date,
		EventAllDay:      allDay,
		EventStartTime:   r.EventStartTime,
		EventEndTime:     r.EventEndTime,
		EventCreatedBy:   createdBy,
	}, nil
}

func ToCalendarEventResponse(m *model.CalendarEventModel) *CalendarEventResponse {
	completedAt := ""
	if m.EventCompletedAt != nil {
		completedAt = m.EventCompletedAt.Format("2006-01-02 15:04:05")
	}
	return &CalendarEventResponse{
		EventID:          m.EventID,
		EventJobID:       m.EventJobID,
		EventTitle:       m.EventTitle,
		EventDescription: m.EventDescription,
		EventType:        m.EventType,
		EventDate:        helper.FormatLocalDate(m.EventDate),
		EventAllDay:      m.EventAllDay,
		EventStartTime:   m.EventStartTime,
		EventEndTime:     m.EventEndTime,
		EventCompletedAt: completedAt,
		EventCompletedBy: m.EventCompletedBy,
		EventCreatedAt:   m.EventCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToCalendarEventResponseList(models []model.CalendarEventModel) []CalendarEventResponse {
	result := make([]CalendarEventResponse, 0, len(models))
	for _, m := range models {
		result = append(result, *ToCalendarEventResponse(&m))
	}
	return result
}
