package route

import (
	"buildops_backend/internals/features/jobs/jobs/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Staff routes (read only)
func JobUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewJobController(db)
	jobs := r.Group("/jobs")
	jobs.Get("/", ctrl.GetJobs)
	jobs.Get("/:id", ctrl.GetJobByID)
}

// Admin routes (mutations)
func JobAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewJobController(db)
	jobs := r.Group("/jobs")
	jobs.Post("/", ctrl.CreateJob)
	jobs.Patch("/:id", ctrl.UpdateJob)
	jobs.Delete("/:id", ctrl.DeleteJob)
}
