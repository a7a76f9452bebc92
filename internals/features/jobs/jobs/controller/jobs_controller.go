package controller

import (
	"log"

	"buildops_backend/internals/features/jobs/jobs/dto"
	"buildops_backend/internals/features/jobs/jobs/model"
	helper "buildops_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type JobController struct {
	DB *gorm.DB
}

func NewJobController(db *gorm.DB) *JobController {
	return &JobController{DB: db}
}

// 🟢 POST /api/a/jobs
func (ctrl *JobController) CreateJob(c *fiber.Ctx) error {
	var req dto.JobRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[ERROR] Body parser failed: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrors := helper.ValidateStruct(&req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	newJob := req.ToModel()
	if err := ctrl.DB.Create(newJob).Error; err != nil {
		log.Printf("[ERROR] Create job failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save job")
	}

	return helper.JsonCreated(c, "Job created", dto.ToJobResponse(newJob))
}

// 🟢 GET /api/u/jobs/:id
func (ctrl *JobController) GetJobByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Job ID is required")
	}

	var job model.JobModel
	if err := ctrl.DB.Where("job_id = ?", id).First(&job).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Job not found")
	}

	return helper.JsonOK(c, "Job found", dto.ToJobResponse(&job))
}

// 🟢 GET /api/u/jobs?status=active&internal=false  + pagination
func (ctrl *JobController) GetJobs(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := ctrl.DB.Model(&model.JobModel{})
	if status := c.Query("status"); status != "" {
		if !model.ValidJobStatus(status) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Unknown job status")
		}
		q = q.Where("job_status = ?", status)
	}
	if internal := c.Query("internal"); internal != "" {
		q = q.Where("job_is_internal = ?", internal == "true")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] Count jobs: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count jobs")
	}

	var jobs []model.JobModel
	if err := q.
		Order("job_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&jobs).Error; err != nil {
		log.Printf("[ERROR] List jobs: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list jobs")
	}

	return helper.JsonList(c, "Jobs", dto.ToJobResponseList(jobs),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🟡 PATCH /api/a/jobs/:id
func (ctrl *JobController) UpdateJob(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Job ID is required")
	}

	var job model.JobModel
	if err := ctrl.DB.Where("job_id = ?", id).First(&job).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Job not found")
	}

	var req dto.JobUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	updates := map[string]interface{}{}
	if req.JobName != nil {
		updates["job_name"] = *req.JobName
	}
	if req.JobClientName != nil {
		updates["job_client_name"] = *req.JobClientName
	}
	if req.JobAddress != nil {
		updates["job_address"] = *req.JobAddress
	}
	if req.JobStatus != nil {
		if !model.ValidJobStatus(*req.JobStatus) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Unknown job status")
		}
		updates["job_status"] = *req.JobStatus
	}
	if req.JobIsInternal != nil {
		updates["job_is_internal"] = *req.JobIsInternal
	}

	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	if err := ctrl.DB.Model(&job).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update job")
	}
	if err := ctrl.DB.Where("job_id = ?", id).First(&job).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload job")
	}

	return helper.JsonUpdated(c, "Job updated", dto.ToJobResponse(&job))
}

// 🔴 DELETE /api/a/jobs/:id  (soft delete)
func (ctrl *JobController) DeleteJob(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Job ID is required")
	}

	res := ctrl.DB.Where("job_id = ?", id).Delete(&model.JobModel{})
	if res.Error != nil {
		log.Printf("[ERROR] Delete job: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete job")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Job not found")
	}

	return helper.JsonDeleted(c, "Job deleted", fiber.Map{"job_id": id})
}
