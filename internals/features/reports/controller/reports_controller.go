package controller

import (
	"bytes"
	"fmt"
	"log"

	jobModel "buildops_backend/internals/features/jobs/jobs/model"
	matModel "buildops_backend/internals/features/jobs/materials/model"
	"buildops_backend/internals/features/reports/service"
	helper "buildops_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

func sendCSV(c *fiber.Ctx, filename string, body []byte) error {
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(body)
}

// 🟢 GET /api/u/reports/materials/:job_id?group_by=vendor
func (ctrl *ReportController) ExportMaterials(c *fiber.Ctx) error {
	jobID := c.Params("job_id")
	if jobID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Job ID is required")
	}

	var job jobModel.JobModel
	if err := ctrl.DB.Where("job_id = ?", jobID).First(&job).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Job not found")
	}

	var materials []matModel.MaterialModel
	if err := ctrl.DB.
		Where("material_job_id = ?", jobID).
		Order("material_vendor ASC, material_name ASC").
		Find(&materials).Error; err != nil {
		log.Printf("[ERROR] Load materials for export: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load materials")
	}

	var buf bytes.Buffer
	groupByVendor := c.Query("group_by") == "vendor"
	if err := service.WriteMaterialsCSV(&buf, job.JobName, materials, groupByVendor); err != nil {
		log.Printf("[ERROR] Write materials csv: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build export")
	}

	return sendCSV(c, fmt.Sprintf("materials-%s.csv", jobID), buf.Bytes())
}

// 🟢 GET /api/u/reports/time-entries?from=2025-06-01&to=2025-06-30&job_id=
func (ctrl *ReportController) ExportTimeEntries(c *fiber.Ctx) error {
	fromStr := c.Query("from")
	toStr := c.Query("to")
	from, err := helper.ParseLocalDate(fromStr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid from date (want YYYY-MM-DD)")
	}
	to, err := helper.ParseLocalDate(toStr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid to date (want YYYY-MM-DD)")
	}
	if to.Before(from) {
		return helper.JsonError(c, fiber.StatusBadRequest, "to must not be before from")
	}

	q := ctrl.DB.Table("time_entries").
		Select(`users.user_name,
			jobs.job_name,
			time_entries.time_entry_work_date   AS work_date,
			time_entries.time_entry_hours       AS hours,
			time_entries.time_entry_description AS description`).
		Joins("JOIN users ON users.user_id = time_entries.time_entry_user_id").
		Joins("JOIN jobs ON jobs.job_id = time_entries.time_entry_job_id").
		Where("time_entries.time_entry_deleted_at IS NULL").
		Where("time_entries.time_entry_work_date BETWEEN ? AND ?", from, to).
		Order("time_entries.time_entry_work_date ASC, users.user_name ASC")
	if jobID := c.Query("job_id"); jobID != "" {
		q = q.Where("time_entries.time_entry_job_id = ?", jobID)
	}

	var rows []service.TimeEntryExportRow
	if err := q.Scan(&rows).Error; err != nil {
		log.Printf("[ERROR] Load time entries for export: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load time entries")
	}

	var buf bytes.Buffer
	if err := service.WriteTimeEntriesCSV(&buf, fromStr, toStr, rows); err != nil {
		log.Printf("[ERROR] Write time entries csv: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build export")
	}

	return sendCSV(c, fmt.Sprintf("time-entries-%s-%s.csv", fromStr, toStr), buf.Bytes())
}
