package controller

import (
	"log"
	"time"

	"buildops_backend/internals/features/calendar/events/dto"
	"buildops_backend/internals/features/calendar/events/model"
	helper "buildops_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CalendarEventController struct {
	DB *gorm.DB
}

func NewCalendarEventController(db *gorm.DB) *CalendarEventController {
	return &CalendarEventController{DB: db}
}

// 🟢 POST /api/u/calendar-events
func (ctrl *CalendarEventController) CreateEvent(c *fiber.Ctx) error {
	var req dto.CalendarEventRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[ERROR] Body parser failed: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrors := helper.ValidateStruct(&req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	newEvent, err := req.ToModel(userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctrl.DB.Create(newEvent).Error; err != nil {
		log.Printf("[ERROR] Create calendar event failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save event")
	}

	return helper.JsonCreated(c, "Event created", dto.ToCalendarEventResponse(newEvent))
}

// 🟢 GET /api/u/calendar-events?from=YYYY-MM-DD&to=YYYY-MM-DD
func (ctrl *CalendarEventController) GetEvents(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.CalendarEventModel{})
	if from := c.Query("from"); from != "" {
		d, err := helper.ParseLocalDate(from)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		q = q.Where("event_date >= ?", d)
	}
	if to := c.Query("to"); to != "" {
		d, err := helper.ParseLocalDate(to)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		q = q.Where("event_date <= ?", d)
	}

	var events []model.CalendarEventModel
	if err := q.Order("event_date ASC").Find(&events).Error; err != nil {
		log.Printf("[ERROR] List calendar events: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list events")
	}

	return helper.JsonOK(c, "Events", dto.ToCalendarEventResponseList(events))
}

// 🟡 PATCH /api/u/calendar-events/:id
func (ctrl *CalendarEventController) UpdateEvent(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Event ID is required")
	}

	var ev model.CalendarEventModel
	if err := ctrl.DB.Where("event_id = ?", id).First(&ev).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
	}

	var req dto.CalendarEventUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	updates := map[string]interface{}{}
	if req.EventJobID != nil {
		updates["event_job_id"] = *req.EventJobID
	}
	if req.EventTitle != nil {
		updates["event_title"] = *req.EventTitle
	}
	if req.EventDescription != nil {
		updates["event_description"] = *req.EventDescription
	}
	if req.EventType != nil {
		updates["event_type"] = *req.EventType
	}
	if req.EventDate != nil {
		d, err := helper.ParseLocalDate(*req.EventDate)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		updates["event_date"] = d
	}
	if req.EventAllDay != nil {
		updates["event_all_day"] = *req.EventAllDay
	}
	if req.EventStartTime != nil {
		updates["event_start_time"] = *req.EventStartTime
	}
	if req.EventEndTime != nil {
		updates["event_end_time"] = *req.EventEndTime
	}

	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	if err := ctrl.DB.Model(&ev).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update event")
	}
	if err := ctrl.DB.Where("event_id = ?", id).First(&ev).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload event")
	}

	return helper.JsonUpdated(c, "Event updated", dto.ToCalendarEventResponse(&ev))
}

// 🟡 PATCH /api/u/calendar-events/:id/complete  (toggle completion)
func (ctrl *CalendarEventController) ToggleComplete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Event ID is required")
	}

	var ev model.CalendarEventModel
	if err := ctrl.DB.Where("event_id = ?", id).First(&ev).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
	}

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	updates := map[string]interface{}{}
	if ev.EventCompletedAt == nil {
		now := time.Now()
		updates["event_completed_at"] = now
		updates["event_completed_by"] = userID
	} else {
		updates["event_completed_at"] = nil
		updates["event_completed_by"] = nil
	}

	if err := ctrl.DB.Model(&ev).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update event")
	}
	if err := ctrl.DB.Where("event_id = ?", id).First(&ev).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload event")
	}

	return helper.JsonUpdated(c, "Event completion updated", dto.ToCalendarEventResponse(&ev))
}

// 🔴 DELETE /api/u/calendar-events/:id
func (ctrl *CalendarEventController) DeleteEvent(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Event ID is required")
	}

	res := ctrl.DB.Where("event_id = ?", id).Delete(&model.CalendarEventModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete event")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
	}

	return helper.JsonDeleted(c, "Event deleted", fiber.Map{"event_id": id})
}
