package controller

import (
	"log"
	"time"

	"buildops_backend/internals/features/fleet/vehicles/dto"
	"buildops_backend/internals/features/fleet/vehicles/model"
	jobModel "buildops_backend/internals/features/jobs/jobs/model"
	helper "buildops_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type VehicleController struct {
	DB *gorm.DB
}

func NewVehicleController(db *gorm.DB) *VehicleController {
	return &VehicleController{DB: db}
}

// 🟢 POST /api/u/vehicles
func (ctrl *VehicleController) CreateVehicle(c *fiber.Ctx) error {
	var req dto.VehicleRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[ERROR] Body parser failed: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrors := helper.ValidateStruct(&req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	if req.VehicleJobID != nil {
		var count int64
		ctrl.DB.Model(&jobModel.JobModel{}).Where("job_id = ?", *req.VehicleJobID).Count(&count)
		if count == 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Job not found")
		}
	}

	newVehicle := req.ToModel()
	if err := ctrl.DB.Create(newVehicle).Error; err != nil {
		log.Printf("[ERROR] Create vehicle failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save vehicle")
	}

	return helper.JsonCreated(c, "Vehicle created", dto.ToVehicleResponse(newVehicle))
}

// 🟢 GET /api/u/vehicles/:id
func (ctrl *VehicleController) GetVehicleByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Vehicle ID is required")
	}

	var vehicle model.VehicleModel
	if err := ctrl.DB.Where("vehicle_id = ?", id).First(&vehicle).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Vehicle not found")
	}

	return helper.JsonOK(c, "Vehicle found", dto.ToVehicleResponse(&vehicle))
}

// 🟢 GET /api/u/vehicles?status=available  + pagination
func (ctrl *VehicleController) GetVehicles(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := ctrl.DB.Model(&model.VehicleModel{})
	if status := c.Query("status"); status != "" {
		if !model.ValidVehicleStatus(status) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Unknown vehicle status")
		}
		q = q.Where("vehicle_status = ?", status)
	}
	if jobID := c.Query("job_id"); jobID != "" {
		q = q.Where("vehicle_job_id = ?", jobID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] Count vehicles: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count vehicles")
	}

	var vehicles []model.VehicleModel
	if err := q.
		Order("vehicle_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&vehicles).Error; err != nil {
		log.Printf("[ERROR] List vehicles: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list vehicles")
	}

	return helper.JsonList(c, "Vehicles", dto.ToVehicleResponseList(vehicles),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🟡 PATCH /api/u/vehicles/:id
func (ctrl *VehicleController) UpdateVehicle(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Vehicle ID is required")
	}

	var vehicle model.VehicleModel
	if err := ctrl.DB.Where("vehicle_id = ?", id).First(&vehicle).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Vehicle not found")
	}

	var req dto.VehicleUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	updates := map[string]interface{}{}
	if req.VehicleName != nil {
		updates["vehicle_name"] = *req.VehicleName
	}
	if req.VehiclePlate != nil {
		updates["vehicle_plate"] = *req.VehiclePlate
	}
	if req.VehicleMake != nil {
		updates["vehicle_make"] = *req.VehicleMake
	}
	if req.VehicleModel != nil {
		updates["vehicle_model"] = *req.VehicleModel
	}
	if req.VehicleYear != nil {
		updates["vehicle_year"] = *req.VehicleYear
	}
	if req.VehicleStatus != nil {
		if !model.ValidVehicleStatus(*req.VehicleStatus) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Unknown vehicle status")
		}
		updates["vehicle_status"] = *req.VehicleStatus
	}
	if req.VehicleJobID != nil {
		var count int64
		ctrl.DB.Model(&jobModel.JobModel{}).Where("job_id = ?", *req.VehicleJobID).Count(&count)
		if count == 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Job not found")
		}
		updates["vehicle_job_id"] = *req.VehicleJobID
	}

	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	if err := ctrl.DB.Model(&vehicle).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update vehicle")
	}
	if err := ctrl.DB.Where("vehicle_id = ?", id).First(&vehicle).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload vehicle")
	}

	return helper.JsonUpdated(c, "Vehicle updated", dto.ToVehicleResponse(&vehicle))
}

// 🟢 POST /api/u/vehicles/:id/service  (append one maintenance entry)
func (ctrl *VehicleController) AddServiceRecord(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Vehicle ID is required")
	}

	var vehicle model.VehicleModel
	if err := ctrl.DB.Where("vehicle_id = ?", id).First(&vehicle).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Vehicle not found")
	}

	var req dto.ServiceRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrors := helper.ValidateStruct(&req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}
	if _, err := helper.ParseLocalDate(req.ServiceDate); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid service date (want YYYY-MM-DD)")
	}

	updated, err := dto.AppendServiceRecord(vehicle.VehicleServiceRecords, req, time.Now())
	if err != nil {
		log.Printf("[ERROR] Encode service records: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save service record")
	}

	if err := ctrl.DB.Model(&vehicle).
		Update("vehicle_service_records", updated).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save service record")
	}
	vehicle.VehicleServiceRecords = updated

	return helper.JsonCreated(c, "Service record added", dto.ToVehicleResponse(&vehicle))
}

// 🔴 DELETE /api/a/vehicles/:id  (soft delete)
func (ctrl *VehicleController) DeleteVehicle(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Vehicle ID is required")
	}

	res := ctrl.DB.Where("vehicle_id = ?", id).Delete(&model.VehicleModel{})
	if res.Error != nil {
		log.Printf("[ERROR] Delete vehicle: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete vehicle")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Vehicle not found")
	}

	return helper.JsonDeleted(c, "Vehicle deleted", fiber.Map{"vehicle_id": id})
}
