package route

import (
	"buildops_backend/internals/features/subcontractors/schedules/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ScheduleUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewScheduleController(db)
	schedules := r.Group("/schedules")
	schedules.Post("/", ctrl.CreateSchedule)
	schedules.Get("/by-job/:jobId", ctrl.GetSchedulesByJob)
	schedules.Patch("/:id", ctrl.UpdateSchedule)
	schedules.Delete("/:id", ctrl.DeleteSchedule)
}
