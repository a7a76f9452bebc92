package route

import (
	"buildops_backend/internals/features/crews/time_entries/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Staff routes (each user manages their own entries)
func TimeEntryUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTimeEntryController(db)
	entries := r.Group("/time-entries")
	entries.Get("/", ctrl.GetTimeEntries)
	entries.Get("/weekly", ctrl.GetWeeklySummary)
	entries.Post("/", ctrl.CreateTimeEntry)
	entries.Patch("/:id", ctrl.UpdateTimeEntry)
	entries.Delete("/:id", ctrl.DeleteTimeEntry)
}
