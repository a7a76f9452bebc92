package controller

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"buildops_backend/internals/configs"
	"buildops_backend/internals/features/jobs/documents/dto"
	"buildops_backend/internals/features/jobs/documents/model"
	helper "buildops_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type DocumentController struct {
	DB *gorm.DB
}

func NewDocumentController(db *gorm.DB) *DocumentController {
	return &DocumentController{DB: db}
}

func isImageUpload(contentType string) bool {
	switch strings.ToLower(contentType) {
	case "image/jpeg", "image/png":
		return true
	}
	return false
}

// 🟢 POST /api/u/documents/by-job/:jobId  (multipart: file, tags)
// Phone photos are re-encoded to webp before hitting disk.
func (ctrl *DocumentController) UploadDocument(c *fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("jobId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid job ID")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "file is required")
	}

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	contentType := fileHeader.Header.Get("Content-Type")
	filename := helper.GenerateUniqueFilename(jobID.String(), fileHeader.Filename)
	var size int64

	destDir := filepath.Join(configs.UploadsDir, jobID.String())
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		log.Printf("[ERROR] mkdir uploads: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to store file")
	}

	if isImageUpload(contentType) {
		data, err := helper.ConvertImageToWebP(fileHeader)
		if err != nil {
			log.Printf("[ERROR] webp convert: %v", err)
			return helper.JsonError(c, fiber.StatusBadRequest, "Could not process image")
		}
		filename = strings.TrimSuffix(filename, filepath.Ext(filename)) + ".webp"
		contentType = "image/webp"
		size = int64(len(data))
		if err := os.WriteFile(filepath.Join(configs.UploadsDir, filename), data, 0o644); err != nil {
			log.Printf("[ERROR] write upload: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to store file")
		}
	} else {
		size = fileHeader.Size
		if err := c.SaveFile(fileHeader, filepath.Join(configs.UploadsDir, filename)); err != nil {
			log.Printf("[ERROR] save upload: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to store file")
		}
	}

	doc := &model.DocumentModel{
		DocumentJobID:       jobID,
		DocumentFilename:    filename,
		DocumentContentType: contentType,
		DocumentSizeBytes:   size,
		DocumentUploadedBy:  userID,
	}
	if tags := strings.TrimSpace(c.FormValue("tags")); tags != "" {
		doc.DocumentTags = datatypes.JSON([]byte(tags))
	}

	if err := ctrl.DB.Create(doc).Error; err != nil {
		log.Printf("[ERROR] Create document row: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save document")
	}

	return helper.JsonCreated(c, "Document uploaded", dto.ToDocumentResponse(doc))
}

// 🟢 GET /api/u/documents/by-job/:jobId  + pagination
func (ctrl *DocumentController) GetDocumentsByJob(c *fiber.Ctx) error {
	jobID := c.Params("jobId")
	if jobID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Job ID is required")
	}
	paging := helper.ResolvePaging(c, 25, 200)

	q := ctrl.DB.Model(&model.DocumentModel{}).Where("document_job_id = ?", jobID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count documents")
	}

	var docs []model.DocumentModel
	if err := q.
		Order("document_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&docs).Error; err != nil {
		log.Printf("[ERROR] List documents: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list documents")
	}

	return helper.JsonList(c, "Documents", dto.ToDocumentResponseList(docs),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🟢 GET /api/u/documents/:id/file  (streams the stored file)
func (ctrl *DocumentController) DownloadDocument(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Document ID is required")
	}

	var doc model.DocumentModel
	if err := ctrl.DB.Where("document_id = ?", id).First(&doc).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Document not found")
	}

	path := filepath.Join(configs.UploadsDir, doc.DocumentFilename)
	if _, err := os.Stat(path); err != nil {
		log.Printf("[ERROR] Document file missing on disk: %s", path)
		return helper.JsonError(c, fiber.StatusNotFound, "File missing from storage")
	}
	c.Set(fiber.HeaderContentType, doc.DocumentContentType)
	return c.SendFile(path)
}

// 🔴 DELETE /api/u/documents/:id  (row soft-deleted, file kept on disk)
func (ctrl *DocumentController) DeleteDocument(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Document ID is required")
	}

	res := ctrl.DB.Where("document_id = ?", id).Delete(&model.DocumentModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete document")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Document not found")
	}

	return helper.JsonDeleted(c, "Document deleted", fiber.Map{"document_id": id})
}
