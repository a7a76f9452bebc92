package dto

import (
	"buildops_backend/internals/features/jobs/completed_tasks/model"
	helper "buildops_backend/internals/helpers"

	"github.com/google/uuid"
)

// 🔹 Request to log a completed component
type CompletedTaskRequest struct {
	TaskJobID         uuid.UUID `json:"task_job_id" validate:"required"`
	TaskComponent     string    `json:"task_component" validate:"required,max=255"`
	TaskCompletedDate string    `json:"task_completed_date" validate:"required"`
	TaskNotes         string    `json:"task_notes"`
}

type CompletedTaskUpdateRequest struct {
	TaskComponent     *string `json:"task_component"`
	TaskCompletedDate *string `json:"task_completed_date"`
	TaskNotes         *string `json:"task_notes"`
}

type CompletedTaskResponse struct {
	TaskID            uuid.UUID `json:"task_id"`
	TaskJobID         uuid.UUID `json:"task_job_id"`
	TaskComponent     string    `json:"task_component"`
	TaskCompletedDate string    `json:"task_completed_date"`
	TaskNotes         string    `json:"task_notes"`
	TaskCreatedAt     string    `json:"task_created_at"`
}

func (r *CompletedTaskRequest) ToModel() (*model.CompletedTaskModel, error) {
	completed, err := helper.ParseLocalDate(r.TaskCompletedDate)
	if err != nil {
		return nil, err
	}
	return &model.CompletedTaskModel{
		TaskJobID:         r.TaskJobID,
		TaskComponent:     r.TaskComponent,
		TaskCompletedDate: completed,
		TaskNotes:         r.TaskNotes,
	}, nil
}

func ToCompletedTaskResponse(m *model.CompletedTaskModel) *CompletedTaskResponse {
	return &CompletedTaskResponse{
		TaskID:            m.TaskID,
		TaskJobID:         m.TaskJobID,
		TaskComponent:     m.TaskComponent,
		TaskCompletedDate: helper.FormatLocalDate(m.TaskCompletedDate),
		TaskNotes:         m.TaskNotes,
		TaskCreatedAt:     m.TaskCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToCompletedTaskResponseList(models []model.CompletedTaskModel) []CompletedTaskResponse {
	result := make([]CompletedTaskResponse, 0, len(models))
	for _, m := range models {
		result = append(result, *ToCompletedTaskResponse(&m))
	}
	return result
}
