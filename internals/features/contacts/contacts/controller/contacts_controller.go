package controller

import (
	"log"

	"buildops_backend/internals/features/contacts/contacts/dto"
	"buildops_backend/internals/features/contacts/contacts/model"
	helper "buildops_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ContactController struct {
	DB *gorm.DB
}

func NewContactController(db *gorm.DB) *ContactController {
	return &ContactController{DB: db}
}

// 🟢 POST /api/u/contacts
func (ctrl *ContactController) CreateContact(c *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[ERROR] Body parser failed: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrors := helper.ValidateStruct(&req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}
	if !model.ValidContactCategory(req.ContactCategory) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Unknown contact category")
	}

	newContact := req.ToModel()
	if err := ctrl.DB.Create(newContact).Error; err != nil {
		log.Printf("[ERROR] Create contact failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save contact")
	}

	return helper.JsonCreated(c, "Contact created", dto.ToContactResponse(newContact))
}

// 🟢 GET /api/u/contacts/:id
func (ctrl *ContactController) GetContactByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Contact ID is required")
	}

	var contact model.ContactModel
	if err := ctrl.DB.Where("contact_id = ?", id).First(&contact).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Contact not found")
	}

	return helper.JsonOK(c, "Contact found", dto.ToContactResponse(&contact))
}

// 🟢 GET /api/u/contacts?category=vendor&q=plumb  + pagination
func (ctrl *ContactController) GetContacts(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := ctrl.DB.Model(&model.ContactModel{})
	if category := c.Query("category"); category != "" {
		if !model.ValidContactCategory(category) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Unknown contact category")
		}
		q = q.Where("contact_category = ?", category)
	}
	if search := c.Query("q"); search != "" {
		like := "%" + search + "%"
		q = q.Where("contact_name ILIKE ? OR contact_company ILIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] Count contacts: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count contacts")
	}

	var contacts []model.ContactModel
	if err := q.
		Order("contact_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&contacts).Error; err != nil {
		log.Printf("[ERROR] List contacts: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list contacts")
	}

	return helper.JsonList(c, "Contacts", dto.ToContactResponseList(contacts),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🟡 PATCH /api/u/contacts/:id
func (ctrl *ContactController) UpdateContact(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Contact ID is required")
	}

	var contact model.ContactModel
	if err := ctrl.DB.Where("contact_id = ?", id).First(&contact).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Contact not found")
	}

	var req dto.ContactUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	updates := map[string]interface{}{}
	if req.ContactName != nil {
		updates["contact_name"] = *req.ContactName
	}
	if req.ContactCompany != nil {
		updates["contact_company"] = *req.ContactCompany
	}
	if req.ContactPhone != nil {
		updates["contact_phone"] = *req.ContactPhone
	}
	if req.ContactEmail != nil {
		updates["contact_email"] = *req.ContactEmail
	}
	if req.ContactCategory != nil {
		if !model.ValidContactCategory(*req.ContactCategory) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Unknown contact category")
		}
		updates["contact_category"] = *req.ContactCategory
	}
	if req.ContactNotes != nil {
		updates["contact_notes"] = *req.ContactNotes
	}

	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	if err := ctrl.DB.Model(&contact).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update contact")
	}
	if err := ctrl.DB.Where("contact_id = ?", id).First(&contact).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload contact")
	}

	return helper.JsonUpdated(c, "Contact updated", dto.ToContactResponse(&contact))
}

// 🔴 DELETE /api/a/contacts/:id  (soft delete)
func (ctrl *ContactController) DeleteContact(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Contact ID is required")
	}

	res := ctrl.DB.Where("contact_id = ?", id).Delete(&model.ContactModel{})
	if res.Error != nil {
		log.Printf("[ERROR] Delete contact: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete contact")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Contact not found")
	}

	return helper.JsonDeleted(c, "Contact deleted", fiber.Map{"contact_id": id})
}
