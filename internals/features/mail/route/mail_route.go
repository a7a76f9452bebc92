package route

import (
	"buildops_backend/internals/features/mail/controller"
	"buildops_backend/internals/features/mail/service"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Admin routes
func MailAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewMailController(db, service.NewMailerFromEnv())
	mail := r.Group("/mail")
	mail.Post("/digest", ctrl.SendDigest)
}
