package controller

import (
	"log"

	"buildops_backend/internals/features/calendar/entries/dto"
	"buildops_backend/internals/features/calendar/entries/model"
	helper "buildops_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CalendarEntryController struct {
	DB *gorm.DB
}

func NewCalendarEntryController(db *gorm.DB) *CalendarEntryController {
	return &CalendarEntryController{DB: db}
}

// 🟢 POST /api/u/calendar-entries
func (ctrl *CalendarEntryController) CreateEntry(c *fiber.Ctx) error {
	var req dto.CalendarEntryRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[ERROR] Body parser failed: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrors := helper.ValidateStruct(&req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}
	if !model.ValidEntryType(req.EntryType) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Unknown entry type")
	}

	newEntry, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctrl.DB.Create(newEntry).Error; err != nil {
		log.Printf("[ERROR] Create calendar entry failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save entry")
	}

	return helper.JsonCreated(c, "Entry created", dto.ToCalendarEntryResponse(newEntry))
}

// 🟢 GET /api/u/calendar-entries?from=&to=
func (ctrl *CalendarEntryController) GetEntries(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.CalendarEntryModel{})
	if from := c.Query("from"); from != "" {
		d, err := helper.ParseLocalDate(from)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		q = q.Where("entry_date >= ?", d)
	}
	if to := c.Query("to"); to != "" {
		d, err := helper.ParseLocalDate(to)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		q = q.Where("entry_date <= ?", d)
	}

	var entries []model.CalendarEntryModel
	if err := q.Order("entry_date ASC").Find(&entries).Error; err != nil {
		log.Printf("[ERROR] List calendar entries: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list entries")
	}

	return helper.JsonOK(c, "Entries", dto.ToCalendarEntryResponseList(entries))
}

// 🟡 PATCH /api/u/calendar-entries/:id
func (ctrl *CalendarEntryController) UpdateEntry(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Entry ID is required")
	}

	var entry model.CalendarEntryModel
	if err := ctrl.DB.Where("entry_id = ?", id).First(&entry).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Entry not found")
	}

	var req dto.CalendarEntryUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	updates := map[string]interface{}{}
	if req.EntryTitle != nil {
		updates["entry_title"] = *req.EntryTitle
	}
	if req.EntryDescription != nil {
		updates["entry_description"] = *req.EntryDescription
	}
	if req.EntryType != nil {
		if !model.ValidEntryType(*req.EntryType) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Unknown entry type")
		}
		updates["entry_type"] = *req.EntryType
	}
	if req.EntryDate != nil {
		d, err := helper.ParseLocalDate(*req.EntryDate)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		updates["entry_date"] = d
	}

	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	if err := ctrl.DB.Model(&entry).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update entry")
	}
	if err := ctrl.DB.Where("entry_id = ?", id).First(&entry).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload entry")
	}

	return helper.JsonUpdated(c, "Entry updated", dto.ToCalendarEntryResponse(&entry))
}

// 🔴 DELETE /api/u/calendar-entries/:id
func (ctrl *CalendarEntryController) DeleteEntry(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Entry ID is required")
	}

	res := ctrl.DB.Where("entry_id = ?", id).Delete(&model.CalendarEntryModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete entry")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Entry not found")
	}

	return helper.JsonDeleted(c, "Entry deleted", fiber.Map{"entry_id": id})
}
