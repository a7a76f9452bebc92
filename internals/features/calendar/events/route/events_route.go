package route

import (
	"buildops_backend/internals/features/calendar/events/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func CalendarEventUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCalendarEventController(db)
	events := r.Group("/calendar-events")
	events.Post("/", ctrl.CreateEvent)
	events.Get("/", ctrl.GetEvents)
	events.Patch("/:id/complete", ctrl.ToggleComplete)
	events.Patch("/:id", ctrl.UpdateEvent)
	events.Delete("/:id", ctrl.DeleteEvent)
}
