package route

import (
	"buildops_backend/internals/features/users/auth/controller"
	"buildops_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Public routes (login only, stricter limiter)
func AuthPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)
	auth := r.Group("/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
}

// Staff routes (profile)
func AuthUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)
	auth := r.Group("/auth")
	auth.Post("/logout", ctrl.Logout)
	auth.Get("/me", ctrl.Me)
	auth.Patch("/me", ctrl.UpdateMe)
}

// Admin routes (account management)
func AuthAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)
	r.Post("/auth/register", ctrl.Register)
	users := r.Group("/users")
	users.Get("/", ctrl.GetUsers)
	users.Patch("/:id/active", ctrl.SetUserActive)
}
