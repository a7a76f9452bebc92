package controller

import (
	"log"

	"buildops_backend/internals/features/subcontractors/subcontractors/dto"
	"buildops_backend/internals/features/subcontractors/subcontractors/model"
	helper "buildops_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type SubcontractorController struct {
	DB *gorm.DB
}

func NewSubcontractorController(db *gorm.DB) *SubcontractorController {
	return &SubcontractorController{DB: db}
}

// 🟢 POST /api/u/subcontractors
func (ctrl *SubcontractorController) CreateSubcontractor(c *fiber.Ctx) error {
	var req dto.SubcontractorRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[ERROR] Body parser failed: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrors := helper.ValidateStruct(&req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	newSub := req.ToModel()
	if err := ctrl.DB.Create(newSub).Error; err != nil {
		log.Printf("[ERROR] Create subcontractor failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save subcontractor")
	}

	return helper.JsonCreated(c, "Subcontractor created", dto.ToSubcontractorResponse(newSub))
}

// 🟢 GET /api/u/subcontractors?trade=electrical  + pagination
func (ctrl *SubcontractorController) GetSubcontractors(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := ctrl.DB.Model(&model.SubcontractorModel{})
	if trade := c.Query("trade"); trade != "" {
		q = q.Where("? = ANY(subcontractor_trades)", trade)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count subcontractors")
	}

	var subs []model.SubcontractorModel
	if err := q.
		Order("subcontractor_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&subs).Error; err != nil {
		log.Printf("[ERROR] List subcontractors: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list subcontractors")
	}

	return helper.JsonList(c, "Subcontractors", dto.ToSubcontractorResponseList(subs),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🟢 GET /api/u/subcontractors/:id
func (ctrl *SubcontractorController) GetSubcontractorByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Subcontractor ID is required")
	}

	var sub model.SubcontractorModel
	if err := ctrl.DB.Where("subcontractor_id = ?", id).First(&sub).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Subcontractor not found")
	}

	return helper.JsonOK(c, "Subcontractor found", dto.ToSubcontractorResponse(&sub))
}

// 🟡 PATCH /api/u/subcontractors/:id
func (ctrl *SubcontractorController) UpdateSubcontractor(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Subcontractor ID is required")
	}

	var sub model.SubcontractorModel
	if err := ctrl.DB.Where("subcontractor_id = ?", id).First(&sub).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Subcontractor not found")
	}

	var req dto.SubcontractorUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	updates := map[string]interface{}{}
	if req.SubcontractorName != nil {
		updates["subcontractor_name"] = *req.SubcontractorName
	}
	if req.SubcontractorPhone != nil {
		updates["subcontractor_phone"] = *req.SubcontractorPhone
	}
	if req.SubcontractorEmail != nil {
		updates["subcontractor_email"] = *req.SubcontractorEmail
	}
	if req.SubcontractorTrades != nil {
		updates["subcontractor_trades"] = pq.StringArray(*req.SubcontractorTrades)
	}

	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	if err := ctrl.DB.Model(&sub).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update subcontractor")
	}
	if err := ctrl.DB.Where("subcontractor_id = ?", id).First(&sub).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload subcontractor")
	}

	return helper.JsonUpdated(c, "Subcontractor updated", dto.ToSubcontractorResponse(&sub))
}

// 🔴 DELETE /api/a/subcontractors/:id
func (ctrl *SubcontractorController) DeleteSubcontractor(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Subcontractor ID is required")
	}

	res := ctrl.DB.Where("subcontractor_id = ?", id).Delete(&model.SubcontractorModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete subcontractor")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Subcontractor not found")
	}

	return helper.JsonDeleted(c, "Subcontractor deleted", fiber.Map{"subcontractor_id": id})
}
