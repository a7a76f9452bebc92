package controller

import (
	"log"

	"buildops_backend/internals/features/subcontractors/schedules/dto"
	"buildops_backend/internals/features/subcontractors/schedules/model"
	helper "buildops_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ScheduleController struct {
	DB *gorm.DB
}

func NewScheduleController(db *gorm.DB) *ScheduleController {
	return &ScheduleController{DB: db}
}

// 🟢 POST /api/u/schedules
func (ctrl *ScheduleController) CreateSchedule(c *fiber.Ctx) error {
	var req dto.ScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[ERROR] Body parser failed: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrors := helper.ValidateStruct(&req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	newSchedule, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if newSchedule.ScheduleEndDate != nil && newSchedule.ScheduleEndDate.Before(newSchedule.ScheduleStartDate) {
		return helper.JsonError(c, fiber.StatusBadRequest, "End date is before start date")
	}

	// Precheck both FKs
	var cnt int64
	if err := ctrl.DB.Table("subcontractors").
		Where("subcontractor_id = ? AND subcontractor_deleted_at IS NULL", req.ScheduleSubcontractorID).
		Count(&cnt).Error; err != nil || cnt == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Subcontractor not found")
	}
	if err := ctrl.DB.Table("jobs").
		Where("job_id = ? AND job_deleted_at IS NULL", req.ScheduleJobID).
		Count(&cnt).Error; err != nil || cnt == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Job not found")
	}

	if err := ctrl.DB.Create(newSchedule).Error; err != nil {
		log.Printf("[ERROR] Create schedule failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save schedule")
	}

	return helper.JsonCreated(c, "Schedule created", dto.ToScheduleResponse(newSchedule))
}

// 🟢 GET /api/u/schedules/by-job/:jobId  + pagination
func (ctrl *ScheduleController) GetSchedulesByJob(c *fiber.Ctx) error {
	jobID := c.Params("jobId")
	if jobID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Job ID is required")
	}
	paging := helper.ResolvePaging(c, 25, 200)

	q := ctrl.DB.Model(&model.ScheduleModel{}).Where("schedule_job_id = ?", jobID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count schedules")
	}

	var schedules []model.ScheduleModel
	if err := q.
		Order("schedule_start_date ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&schedules).Error; err != nil {
		log.Printf("[ERROR] List schedules: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list schedules")
	}

	return helper.JsonList(c, "Schedules", dto.ToScheduleResponseList(schedules),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🟡 PATCH /api/u/schedules/:id
func (ctrl *ScheduleController) UpdateSchedule(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Schedule ID is required")
	}

	var schedule model.ScheduleModel
	if err := ctrl.DB.Where("schedule_id = ?", id).First(&schedule).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Schedule not found")
	}

	var req dto.ScheduleUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	updates := map[string]interface{}{}
	if req.ScheduleStartDate != nil {
		start, err := helper.ParseLocalDate(*req.ScheduleStartDate)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		updates["schedule_start_date"] = start
	}
	if req.ScheduleEndDate != nil {
		end, err := dto.ParseOptionalEnd(*req.ScheduleEndDate)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		updates["schedule_end_date"] = end
	}
	if req.ScheduleWorkDescription != nil {
		updates["schedule_work_description"] = *req.ScheduleWorkDescription
	}
	if req.ScheduleStatus != nil {
		if !model.ValidScheduleStatus(*req.ScheduleStatus) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Unknown schedule status")
		}
		updates["schedule_status"] = *req.ScheduleStatus
	}

	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	if err := ctrl.DB.Model(&schedule).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update schedule")
	}
	if err := ctrl.DB.Where("schedule_id = ?", id).First(&schedule).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload schedule")
	}

	return helper.JsonUpdated(c, "Schedule updated", dto.ToScheduleResponse(&schedule))
}

// 🔴 DELETE /api/u/schedules/:id
func (ctrl *ScheduleController) DeleteSchedule(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Schedule ID is required")
	}

	res := ctrl.DB.Where("schedule_id = ?", id).Delete(&model.ScheduleModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete schedule")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Schedule not found")
	}

	return helper.JsonDeleted(c, "Schedule deleted", fiber.Map{"schedule_id": id})
}
