package route

import (
	"buildops_backend/internals/features/subcontractors/subcontractors/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SubcontractorUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSubcontractorController(db)
	subs := r.Group("/subcontractors")
	subs.Post("/", ctrl.CreateSubcontractor)
	subs.Get("/", ctrl.GetSubcontractors)
	subs.Get("/:id", ctrl.GetSubcontractorByID)
	subs.Patch("/:id", ctrl.UpdateSubcontractor)
}

func SubcontractorAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSubcontractorController(db)
	subs := r.Group("/subcontractors")
	subs.Delete("/:id", ctrl.DeleteSubcontractor)
}
