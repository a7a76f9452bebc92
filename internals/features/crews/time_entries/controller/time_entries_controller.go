package controller

import (
	"log"
	"time"

	"buildops_backend/internals/features/crews/time_entries/dto"
	"buildops_backend/internals/features/crews/time_entries/model"
	"buildops_backend/internals/features/crews/time_entries/service"
	jobModel "buildops_backend/internals/features/jobs/jobs/model"
	helper "buildops_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type TimeEntryController struct {
	DB *gorm.DB
}

func NewTimeEntryController(db *gorm.DB) *TimeEntryController {
	return &TimeEntryController{DB: db}
}

// 🟢 POST /api/u/time-entries  (logs hours for the caller)
func (ctrl *TimeEntryController) CreateTimeEntry(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.TimeEntryRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[ERROR] Body parser failed: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrors := helper.ValidateStruct(&req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	workDate, err := helper.ParseLocalDate(req.EntryWorkDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid work date (want YYYY-MM-DD)")
	}

	var count int64
	ctrl.DB.Model(&jobModel.JobModel{}).Where("job_id = ?", req.EntryJobID).Count(&count)
	if count == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Job not found")
	}

	entry := model.TimeEntryModel{
		EntryUserID:      userID,
		EntryJobID:       req.EntryJobID,
		EntryWorkDate:    workDate,
		EntryHours:       req.EntryHours,
		EntryDescription: req.EntryDescription,
	}
	if err := ctrl.DB.Create(&entry).Error; err != nil {
		log.Printf("[ERROR] Create time entry failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save time entry")
	}

	return helper.JsonCreated(c, "Time entry created", dto.ToTimeEntryResponse(&entry))
}

// 🟢 GET /api/u/time-entries?job_id=&from=&to=  + pagination
func (ctrl *TimeEntryController) GetTimeEntries(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	paging := helper.ResolvePaging(c, 50, 200)

	q := ctrl.DB.Model(&model.TimeEntryModel{}).Where("time_entry_user_id = ?", userID)
	if jobID := c.Query("job_id"); jobID != "" {
		q = q.Where("time_entry_job_id = ?", jobID)
	}
	if from := c.Query("from"); from != "" {
		d, err := helper.ParseLocalDate(from)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid from date")
		}
		q = q.Where("time_entry_work_date >= ?", d)
	}
	if to := c.Query("to"); to != "" {
		d, err := helper.ParseLocalDate(to)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid to date")
		}
		q = q.Where("time_entry_work_date <= ?", d)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] Count time entries: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count time entries")
	}

	var entries []model.TimeEntryModel
	if err := q.
		Order("time_entry_work_date DESC, time_entry_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&entries).Error; err != nil {
		log.Printf("[ERROR] List time entries: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list time entries")
	}

	return helper.JsonList(c, "Time entries", dto.ToTimeEntryResponseList(entries),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🟢 GET /api/u/time-entries/weekly?week_of=2025-06-11
// Totals the caller's week (Monday start) by job and by day.
func (ctrl *TimeEntryController) GetWeeklySummary(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	anchor := time.Now()
	if weekOf := c.Query("week_of"); weekOf != "" {
		d, err := helper.ParseLocalDate(weekOf)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid week_of date (want YYYY-MM-DD)")
		}
		anchor = d
	}
	weekStart := service.WeekStart(anchor)
	weekEnd := weekStart.AddDate(0, 0, 6)

	var rows []struct {
		JobID    string    `gorm:"column:job_id"`
		JobName  string    `gorm:"column:job_name"`
		WorkDate time.Time `gorm:"column:work_date"`
		Hours    float64   `gorm:"column:hours"`
	}
	err = ctrl.DB.Table("time_entries").
		Select(`time_entries.time_entry_job_id AS job_id,
			jobs.job_name,
			time_entries.time_entry_work_date AS work_date,
			time_entries.time_entry_hours     AS hours`).
		Joins("JOIN jobs ON jobs.job_id = time_entries.time_entry_job_id").
		Where("time_entries.time_entry_deleted_at IS NULL").
		Where("time_entries.time_entry_user_id = ?", userID).
		Where("time_entries.time_entry_work_date BETWEEN ? AND ?", weekStart, weekEnd).
		Scan(&rows).Error
	if err != nil {
		log.Printf("[ERROR] Weekly summary query: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build weekly summary")
	}

	entries := make([]service.SummaryEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, service.SummaryEntry{
			JobID:    r.JobID,
			JobName:  r.JobName,
			WorkDate: r.WorkDate,
			Hours:    r.Hours,
		})
	}

	return helper.JsonOK(c, "Weekly summary", service.Summarize(weekStart, entries))
}

// 🟡 PATCH /api/u/time-entries/:id  (own entries only)
func (ctrl *TimeEntryController) UpdateTimeEntry(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Time entry ID is required")
	}

	var entry model.TimeEntryModel
	if err := ctrl.DB.
		Where("time_entry_id = ? AND time_entry_user_id = ?", id, userID).
		First(&entry).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Time entry not found")
	}

	var req dto.TimeEntryUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	updates := map[string]interface{}{}
	if req.EntryJobID != nil {
		var count int64
		ctrl.DB.Model(&jobModel.JobModel{}).Where("job_id = ?", *req.EntryJobID).Count(&count)
		if count == 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Job not found")
		}
		updates["time_entry_job_id"] = *req.EntryJobID
	}
	if req.EntryWorkDate != nil {
		d, err := helper.ParseLocalDate(*req.EntryWorkDate)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid work date (want YYYY-MM-DD)")
		}
		updates["time_entry_work_date"] = d
	}
	if req.EntryHours != nil {
		if *req.EntryHours <= 0 || *req.EntryHours > 24 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Hours must be between 0 and 24")
		}
		updates["time_entry_hours"] = *req.EntryHours
	}
	if req.EntryDescription != nil {
		updates["time_entry_description"] = *req.EntryDescription
	}

	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	if err := ctrl.DB.Model(&entry).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update time entry")
	}
	if err := ctrl.DB.Where("time_entry_id = ?", id).First(&entry).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload time entry")
	}

	return helper.JsonUpdated(c, "Time entry updated", dto.ToTimeEntryResponse(&entry))
}

// 🔴 DELETE /api/u/time-entries/:id  (own entries only, soft delete)
func (ctrl *TimeEntryController) DeleteTimeEntry(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Time entry ID is required")
	}

	res := ctrl.DB.
		Where("time_entry_id = ? AND time_entry_user_id = ?", id, userID).
		Delete(&model.TimeEntryModel{})
	if res.Error != nil {
		log.Printf("[ERROR] Delete time entry: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete time entry")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Time entry not found")
	}

	return helper.JsonDeleted(c, "Time entry deleted", fiber.Map{"time_entry_id": id})
}
