package dto

import (
	"time"

	"buildops_backend/internals/features/subcontractors/schedules/model"
	helper "buildops_backend/internals/helpers"

	"github.com/google/uuid"
)

type ScheduleRequest struct {
	ScheduleJobID           uuid.UUID `json:"schedule_job_id" validate:"required"`
	ScheduleSubcontractorID uuid.UUID `json:"schedule_subcontractor_id" validate:"required"`
	ScheduleStartDate       string    `json:"schedule_start_date" validate:"required"`
	ScheduleEndDate         string    `json:"schedule_end_date"`
	ScheduleWorkDescription string    `json:"schedule_work_description"`
}

type ScheduleUpdateRequest struct {
	ScheduleStartDate       *string `json:"schedule_start_date"`
	ScheduleEndDate         *string `json:"schedule_end_date"`
	ScheduleWorkDescription *string `json:"schedule_work_description"`
	ScheduleStatus          *string `json:"schedule_status"`
}

type ScheduleResponse struct {
	ScheduleID              uuid.UUID `json:"schedule_id"`
	ScheduleJobID           uuid.UUID `json:"schedule_job_id"`
	ScheduleSubcontractorID uuid.UUID `json:"schedule_subcontractor_id"`
	ScheduleStartDate       string    `json:"schedule_start_date"`
	ScheduleEndDate         string    `json:"schedule_end_date,omitempty"`
	ScheduleWorkDescription string    `json:"schedule_work_description"`
	ScheduleStatus          string    `json:"schedule_status"`
	ScheduleCreatedAt       string    `json:"schedule_created_at"`
}

func (r *ScheduleRequest) ToModel() (*model.ScheduleModel, error) {
	start, err := helper.ParseLocalDate(r.ScheduleStartDate)
	if err != nil {
		return nil, err
	}
	var end *time.Time
	if r.ScheduleEndDate != "" {
		e, err := helper.ParseLocalDate(r.ScheduleEndDate)
		if err != nil {
			return nil, err
		}
		end = &e
	}
	return &model.ScheduleModel{
		ScheduleJobID:           r.ScheduleJobID,
		ScheduleSubcontractorID: r.ScheduleSubcontractorID,
		ScheduleStartDate:       start,
		ScheduleEndDate:         end,
		ScheduleWorkDescription: r.ScheduleWorkDescription,
		ScheduleStatus:          model.ScheduleStatusScheduled,
	}, nil
}

// ParseOptionalEnd: "" clears the end date (back to a single-day booking).
func ParseOptionalEnd(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	e, err := helper.ParseLocalDate(s)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func ToScheduleResponse(m *model.ScheduleModel) *ScheduleResponse {
	end := ""
	if m.ScheduleEndDate != nil {
		end = helper.FormatLocalDate(*m.ScheduleEndDate)
	}
	return &ScheduleResponse{
		ScheduleID:              m.ScheduleID,
		ScheduleJobID:           m.ScheduleJobID,
		ScheduleSubcontractorID: m.ScheduleSubcontractorID,
		ScheduleStartDate:       helper.FormatLocalDate(m.ScheduleStartDate),
		ScheduleEndDate:         end,
		ScheduleWorkDescription: m.ScheduleWorkDescription,
		ScheduleStatus:          m.ScheduleStatus,
		ScheduleCreatedAt:       m.ScheduleCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToScheduleResponseList(models []model.ScheduleModel) []ScheduleResponse {
	result := make([]ScheduleResponse, 0, len(models))
	for _, m := range models {
		result = append(result, *ToScheduleResponse(&m))
	}
	return result
}
