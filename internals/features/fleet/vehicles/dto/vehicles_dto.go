package dto

import (
	"encoding/json"
	"time"

	"buildops_backend/internals/features/fleet/vehicles/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// 🔹 Request to register a vehicle
type VehicleRequest struct {
	VehicleName  string     `json:"vehicle_name" validate:"required,max=100"`
	VehiclePlate string     `json:"vehicle_plate" validate:"max=20"`
	VehicleMake  string     `json:"vehicle_make" validate:"max=50"`
	VehicleModel string     `json:"vehicle_model" validate:"max=50"`
	VehicleYear  int        `json:"vehicle_year" validate:"omitempty,min=1950,max=2100"`
	VehicleJobID *uuid.UUID `json:"vehicle_job_id"`
}

// 🔹 Partial update (PATCH)
type VehicleUpdateRequest struct {
	VehicleName   *string    `json:"vehicle_name"`
	VehiclePlate  *string    `json:"vehicle_plate"`
	VehicleMake   *string    `json:"vehicle_make"`
	VehicleModel  *string    `json:"vehicle_model"`
	VehicleYear   *int       `json:"vehicle_year"`
	VehicleStatus *string    `json:"vehicle_status"`
	VehicleJobID  *uuid.UUID `json:"vehicle_job_id"`
}

// 🔹 One maintenance entry to append
type ServiceRecordRequest struct {
	ServiceDate string  `json:"service_date" validate:"required"`
	Odometer    int     `json:"odometer" validate:"omitempty,min=0"`
	Description string  `json:"description" validate:"required,max=500"`
	Cost        float64 `json:"cost" validate:"omitempty,min=0"`
}

type ServiceRecord struct {
	ServiceDate string  `json:"service_date"`
	Odometer    int     `json:"odometer,omitempty"`
	Description string  `json:"description"`
	Cost        float64 `json:"cost,omitempty"`
	LoggedAt    string  `json:"logged_at"`
}

// 🔹 Response shape
type VehicleResponse struct {
	VehicleID             uuid.UUID       `json:"vehicle_id"`
	VehicleName           string          `json:"vehicle_name"`
	VehiclePlate          string          `json:"vehicle_plate"`
	VehicleMake           string          `json:"vehicle_make"`
	VehicleModel          string          `json:"vehicle_model"`
	VehicleYear           int             `json:"vehicle_year"`
	VehicleStatus         string          `json:"vehicle_status"`
	VehicleJobID          *uuid.UUID      `json:"vehicle_job_id"`
	VehicleServiceRecords []ServiceRecord `json:"vehicle_service_records"`
	VehicleCreatedAt      string          `json:"vehicle_created_at"`
}

func (r *VehicleRequest) ToModel() *model.VehicleModel {
	return &model.VehicleModel{
		VehicleName:           r.VehicleName,
		VehiclePlate:          r.VehiclePlate,
		VehicleMake:           r.VehicleMake,
		VehicleModel:          r.VehicleModel,
		VehicleYear:           r.VehicleYear,
		VehicleStatus:         model.VehicleStatusAvailable,
		VehicleJobID:          r.VehicleJobID,
		VehicleServiceRecords: datatypes.JSON([]byte("[]")),
	}
}

// DecodeServiceRecords tolerates a null column by returning an empty slice.
func DecodeServiceRecords(raw datatypes.JSON) []ServiceRecord {
	records := make([]ServiceRecord, 0)
	if len(raw) == 0 {
		return records
	}
	if err := json.Unmarshal(raw, &records); err != nil {
		return make([]ServiceRecord, 0)
	}
	return records
}

// AppendServiceRecord re-encodes the column with the new entry at the end.
func AppendServiceRecord(raw datatypes.JSON, req ServiceRecordRequest, now time.Time) (datatypes.JSON, error) {
	records := DecodeServiceRecords(raw)
	records = append(records, ServiceRecord{
		ServiceDate: req.ServiceDate,
		Odometer:    req.Odometer,
		Description: req.Description,
		Cost:        req.Cost,
		LoggedAt:    now.Format(time.RFC3339),
	})
	encoded, err := json.Marshal(records)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(encoded), nil
}

func ToVehicleResponse(m *model.VehicleModel) *VehicleResponse {
	return &VehicleResponse{
		VehicleID:             m.VehicleID,
		VehicleName:           m.VehicleName,
		VehiclePlate:          m.VehiclePlate,
		VehicleMake:           m.VehicleMake,
		VehicleModel:          m.VehicleModel,
		VehicleYear:           m.VehicleYear,
		VehicleStatus:         m.VehicleStatus,
		VehicleJobID:          m.VehicleJobID,
		VehicleServiceRecords: DecodeServiceRecords(m.VehicleServiceRecords),
		VehicleCreatedAt:      m.VehicleCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToVehicleResponseList(models []model.VehicleModel) []VehicleResponse {
	result := make([]VehicleResponse, 0, len(models))
	for _, m := range models {
		result = append(result, *ToVehicleResponse(&m))
	}
	return result
}
