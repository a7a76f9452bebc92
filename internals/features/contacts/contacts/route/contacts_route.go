package route

import (
	"buildops_backend/internals/features/contacts/contacts/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Staff routes
func ContactUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewContactController(db)
	contacts := r.Group("/contacts")
	contacts.Get("/", ctrl.GetContacts)
	contacts.Get("/:id", ctrl.GetContactByID)
	contacts.Post("/", ctrl.CreateContact)
	contacts.Patch("/:id", ctrl.UpdateContact)
}

// Admin routes
func ContactAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewContactController(db)
	contacts := r.Group("/contacts")
	contacts.Delete("/:id", ctrl.DeleteContact)
}
