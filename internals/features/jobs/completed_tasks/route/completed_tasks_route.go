package route

import (
	"buildops_backend/internals/features/jobs/completed_tasks/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func CompletedTaskUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCompletedTaskController(db)
	tasks := r.Group("/completed-tasks")
	tasks.Post("/", ctrl.CreateCompletedTask)
	tasks.Get("/by-job/:jobId", ctrl.GetCompletedTasksByJob)
	tasks.Patch("/:id", ctrl.UpdateCompletedTask)
	tasks.Delete("/:id", ctrl.DeleteCompletedTask)
}
