package controller

import (
	"log"

	"buildops_backend/internals/features/jobs/completed_tasks/dto"
	"buildops_backend/internals/features/jobs/completed_tasks/model"
	helper "buildops_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CompletedTaskController struct {
	DB *gorm.DB
}

func NewCompletedTaskController(db *gorm.DB) *CompletedTaskController {
	return &CompletedTaskController{DB: db}
}

// 🟢 POST /api/u/completed-tasks
func (ctrl *CompletedTaskController) CreateCompletedTask(c *fiber.Ctx) error {
	var req dto.CompletedTaskRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[ERROR] Body parser failed: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrors := helper.ValidateStruct(&req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	newTask, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctrl.DB.Create(newTask).Error; err != nil {
		log.Printf("[ERROR] Create completed task failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save completed task")
	}

	return helper.JsonCreated(c, "Completed task logged", dto.ToCompletedTaskResponse(newTask))
}

// 🟢 GET /api/u/completed-tasks/by-job/:jobId  + pagination
func (ctrl *CompletedTaskController) GetCompletedTasksByJob(c *fiber.Ctx) error {
	jobID := c.Params("jobId")
	if jobID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Job ID is required")
	}
	paging := helper.ResolvePaging(c, 25, 200)

	q := ctrl.DB.Model(&model.CompletedTaskModel{}).Where("task_job_id = ?", jobID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count completed tasks")
	}

	var tasks []model.CompletedTaskModel
	if err := q.
		Order("task_completed_date DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&tasks).Error; err != nil {
		log.Printf("[ERROR] List completed tasks: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list completed tasks")
	}

	return helper.JsonList(c, "Completed tasks", dto.ToCompletedTaskResponseList(tasks),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🟡 PATCH /api/u/completed-tasks/:id
func (ctrl *CompletedTaskController) UpdateCompletedTask(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Task ID is required")
	}

	var task model.CompletedTaskModel
	if err := ctrl.DB.Where("task_id = ?", id).First(&task).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Completed task not found")
	}

	var req dto.CompletedTaskUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	updates := map[string]interface{}{}
	if req.TaskComponent != nil {
		updates["task_component"] = *req.TaskComponent
	}
	if req.TaskNotes != nil {
		updates["task_notes"] = *req.TaskNotes
	}
	if req.TaskCompletedDate != nil {
		completed, err := helper.ParseLocalDate(*req.TaskCompletedDate)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		updates["task_completed_date"] = completed
	}

	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	if err := ctrl.DB.Model(&task).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update completed task")
	}
	if err := ctrl.DB.Where("task_id = ?", id).First(&task).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload completed task")
	}

	return helper.JsonUpdated(c, "Completed task updated", dto.ToCompletedTaskResponse(&task))
}

// 🔴 DELETE /api/u/completed-tasks/:id
func (ctrl *CompletedTaskController) DeleteCompletedTask(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Task ID is required")
	}

	res := ctrl.DB.Where("task_id = ?", id).Delete(&model.CompletedTaskModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete completed task")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Completed task not found")
	}

	return helper.JsonDeleted(c, "Completed task deleted", fiber.Map{"task_id": id})
}
