package controller

import (
	"log"

	"buildops_backend/internals/features/jobs/materials/dto"
	"buildops_backend/internals/features/jobs/materials/model"
	helper "buildops_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type MaterialController struct {
	DB *gorm.DB
}

func NewMaterialController(db *gorm.DB) *MaterialController {
	return &MaterialController{DB: db}
}

// 🟢 POST /api/u/materials
func (ctrl *MaterialController) CreateMaterial(c *fiber.Ctx) error {
	var req dto.MaterialRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[ERROR] Body parser failed: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrors := helper.ValidateStruct(&req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	newMaterial, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// Precheck FK so a bad job id is a 404 instead of a 500
	var cnt int64
	if err := ctrl.DB.Table("jobs").
		Where("job_id = ? AND job_deleted_at IS NULL", req.MaterialJobID).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check job")
	}
	if cnt == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Job not found")
	}

	if err := ctrl.DB.Create(newMaterial).Error; err != nil {
		log.Printf("[ERROR] Create material failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save material")
	}

	return helper.JsonCreated(c, "Material created", dto.ToMaterialResponse(newMaterial))
}

// 🟢 GET /api/u/materials/:id
func (ctrl *MaterialController) GetMaterialByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Material ID is required")
	}

	var m model.MaterialModel
	if err := ctrl.DB.Where("material_id = ?", id).First(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Material not found")
	}

	return helper.JsonOK(c, "Material found", dto.ToMaterialResponse(&m))
}

// 🟢 GET /api/u/materials/by-job/:jobId?status=  + pagination
func (ctrl *MaterialController) GetMaterialsByJob(c *fiber.Ctx) error {
	jobID := c.Params("jobId")
	if jobID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Job ID is required")
	}
	paging := helper.ResolvePaging(c, 25, 200)

	q := ctrl.DB.Model(&model.MaterialModel{}).Where("material_job_id = ?", jobID)
	if status := c.Query("status"); status != "" {
		if !model.ValidMaterialStatus(status) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Unknown material status")
		}
		q = q.Where("material_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] Count materials: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count materials")
	}

	var materials []model.MaterialModel
	if err := q.
		Order("material_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&materials).Error; err != nil {
		log.Printf("[ERROR] List materials: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list materials")
	}

	return helper.JsonList(c, "Materials", dto.ToMaterialResponseList(materials),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🟡 PATCH /api/u/materials/:id
func (ctrl *MaterialController) UpdateMaterial(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Material ID is required")
	}

	var m model.MaterialModel
	if err := ctrl.DB.Where("material_id = ?", id).First(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Material not found")
	}

	var req dto.MaterialUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	updates := map[string]interface{}{}
	if req.MaterialName != nil {
		updates["material_name"] = *req.MaterialName
	}
	if req.MaterialVendor != nil {
		updates["material_vendor"] = *req.MaterialVendor
	}
	if req.MaterialQty != nil {
		updates["material_qty"] = *req.MaterialQty
	}
	if req.MaterialNotes != nil {
		updates["material_notes"] = *req.MaterialNotes
	}
	for col, val := range map[string]*string{
		"material_order_by_date": req.MaterialOrderByDate,
		"material_delivery_date": req.MaterialDeliveryDate,
		"material_pull_by_date":  req.MaterialPullByDate,
	} {
		if val == nil {
			continue
		}
		parsed, err := dto.ParseDate(*val)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		updates[col] = parsed // nil clears the date
	}

	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	if err := ctrl.DB.Model(&m).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update material")
	}
	if err := ctrl.DB.Where("material_id = ?", id).First(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload material")
	}

	return helper.JsonUpdated(c, "Material updated", dto.ToMaterialResponse(&m))
}

// 🟡 PATCH /api/u/materials/:id/status
func (ctrl *MaterialController) UpdateMaterialStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Material ID is required")
	}

	var req dto.MaterialStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if !model.ValidMaterialStatus(req.MaterialStatus) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Unknown material status")
	}

	var m model.MaterialModel
	if err := ctrl.DB.Where("material_id = ?", id).First(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Material not found")
	}

	if err := ctrl.DB.Model(&m).Update("material_status", req.MaterialStatus).Error; err != nil {
		log.Printf("[ERROR] Update material status: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update status")
	}
	m.MaterialStatus = req.MaterialStatus

	return helper.JsonUpdated(c, "Material status updated", dto.ToMaterialResponse(&m))
}

// 🔴 DELETE /api/u/materials/:id  (soft delete)
func (ctrl *MaterialController) DeleteMaterial(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Material ID is required")
	}

	res := ctrl.DB.Where("material_id = ?", id).Delete(&model.MaterialModel{})
	if res.Error != nil {
		log.Printf("[ERROR] Delete material: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete material")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Material not found")
	}

	return helper.JsonDeleted(c, "Material deleted", fiber.Map{"material_id": id})
}
