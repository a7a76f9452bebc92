package route

import (
	"buildops_backend/internals/features/jobs/documents/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func DocumentUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDocumentController(db)
	docs := r.Group("/documents")
	docs.Post("/by-job/:jobId", ctrl.UploadDocument)
	docs.Get("/by-job/:jobId", ctrl.GetDocumentsByJob)
	docs.Get("/:id/file", ctrl.DownloadDocument)
	docs.Delete("/:id", ctrl.DeleteDocument)
}
