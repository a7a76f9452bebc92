package route

import (
	"buildops_backend/internals/features/calendar/entries/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func CalendarEntryUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCalendarEntryController(db)
	entries := r.Group("/calendar-entries")
	entries.Post("/", ctrl.CreateEntry)
	entries.Get("/", ctrl.GetEntries)
	entries.Patch("/:id", ctrl.UpdateEntry)
	entries.Delete("/:id", ctrl.DeleteEntry)
}
