package route

import (
	"buildops_backend/internals/features/jobs/materials/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Staff routes: field crew creates, updates and transitions materials.
func MaterialUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewMaterialController(db)
	materials := r.Group("/materials")
	materials.Post("/", ctrl.CreateMaterial)
	materials.Get("/by-job/:jobId", ctrl.GetMaterialsByJob)
	materials.Get("/:id", ctrl.GetMaterialByID)
	materials.Patch("/:id/status", ctrl.UpdateMaterialStatus)
	materials.Patch("/:id", ctrl.UpdateMaterial)
	materials.Delete("/:id", ctrl.DeleteMaterial)
}
