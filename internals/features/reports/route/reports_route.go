package route

import (
	"buildops_backend/internals/features/reports/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Staff routes
func ReportUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewReportController(db)
	reports := r.Group("/reports")
	reports.Get("/materials/:job_id", ctrl.ExportMaterials)
	reports.Get("/time-entries", ctrl.ExportTimeEntries)
}
