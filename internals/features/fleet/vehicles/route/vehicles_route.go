package route

import (
	"buildops_backend/internals/features/fleet/vehicles/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Staff routes
func VehicleUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewVehicleController(db)
	vehicles := r.Group("/vehicles")
	vehicles.Get("/", ctrl.GetVehicles)
	vehicles.Get("/:id", ctrl.GetVehicleByID)
	vehicles.Post("/", ctrl.CreateVehicle)
	vehicles.Patch("/:id", ctrl.UpdateVehicle)
	vehicles.Post("/:id/service", ctrl.AddServiceRecord)
}

// Admin routes
func VehicleAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewVehicleController(db)
	vehicles := r.Group("/vehicles")
	vehicles.Delete("/:id", ctrl.DeleteVehicle)
}
