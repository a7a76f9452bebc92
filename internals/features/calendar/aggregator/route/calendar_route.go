package route

import (
	"buildops_backend/internals/features/calendar/aggregator/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func CalendarUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCalendarController(db)
	calendar := r.Group("/calendar")
	calendar.Get("/events", ctrl.GetEvents)
	calendar.Get("/month", ctrl.GetMonth)
	calendar.Get("/agenda", ctrl.GetAgenda)
}
