package dto

import (
	"buildops_backend/internals/features/jobs/jobs/model"

	"github.com/google/uuid"
)

// 🔹 Request to create a job
type JobRequest struct {
	JobName       string `json:"job_name" validate:"required,max=255"`
	JobClientName string `json:"job_client_name" validate:"max=255"`
	JobAddress    string `json:"job_address"`
	JobIsInternal bool   `json:"job_is_internal"`
}

// 🔹 Partial update (PATCH)
type JobUpdateRequest struct {
	JobName       *string `json:"job_name"`
	JobClientName *string `json:"job_client_name"`
	JobAddress    *string `json:"job_address"`
	JobStatus     *string `json:"job_status"`
	JobIsInternal *bool   `json:"job_is_internal"`
}

// 🔹 Response shape
type JobResponse struct {
	JobID         uuid.UUID `json:"job_id"`
	JobName       string    `json:"job_name"`
	JobClientName string    `json:"job_client_name"`
	JobAddress    string    `json:"job_address"`
	JobStatus     string    `json:"job_status"`
	JobIsInternal bool      `json:"job_is_internal"`
	JobCreatedAt  string    `json:"job_created_at"`
}

func (r *JobRequest) ToModel() *model.JobModel {
	return &model.JobModel{
		JobName:       r.JobName,
		JobClientName: r.JobClientName,
		JobAddress:    r.JobAddress,
		JobStatus:     model.JobStatusActive,
		JobIsInternal: r.JobIsInternal,
	}
}

func ToJobResponse(m *model.JobModel) *JobResponse {
	return &JobResponse{
		JobID:         m.JobID,
		JobName:       m.JobName,
		JobClientName: m.JobClientName,
		JobAddress:    m.JobAddress,
		JobStatus:     m.JobStatus,
		JobIsInternal: m.JobIsInternal,
		JobCreatedAt:  m.JobCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToJobResponseList(models []model.JobModel) []JobResponse {
	result := make([]JobResponse, 0, len(models))
	for _, m := range models {
		result = append(result, *ToJobResponse(&m))
	}
	return result
}
