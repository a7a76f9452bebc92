package dto

import (
	"time"

	"buildops_backend/internals/features/jobs/materials/model"
	helper "buildops_backend/internals/helpers"

	"github.com/google/uuid"
)

// 🔹 Create request. Dates come in as YYYY-MM-DD strings.
type MaterialRequest struct {
	MaterialJobID  uuid.UUID `json:"material_job_id" validate:"required"`
	MaterialName   string    `json:"material_name" validate:"required,max=255"`
	MaterialVendor string    `json:"material_vendor" validate:"max=255"`
	MaterialQty    string    `json:"material_qty" validate:"max=100"`
	MaterialNotes  string    `json:"material_notes"`

	MaterialOrderByDate  string `json:"material_order_by_date"`
	MaterialDeliveryDate string `json:"material_delivery_date"`
	MaterialPullByDate   string `json:"material_pull_by_date"`
}

// 🔹 Partial update (PATCH). Empty-string date clears the field.
type MaterialUpdateRequest struct {
	MaterialName   *string `json:"material_name"`
	MaterialVendor *string `json:"material_vendor"`
	MaterialQty    *string `json:"material_qty"`
	MaterialNotes  *string `json:"material_notes"`

	MaterialOrderByDate  *string `json:"material_order_by_date"`
	MaterialDeliveryDate *string `json:"material_delivery_date"`
	MaterialPullByDate   *string `json:"material_pull_by_date"`
}

// 🔹 Status transition (PATCH /status)
type MaterialStatusRequest struct {
	MaterialStatus string `json:"material_status" validate:"required"`
}

type MaterialResponse struct {
	MaterialID     uuid.UUID `json:"material_id"`
	MaterialJobID  uuid.UUID `json:"material_job_id"`
	MaterialName   string    `json:"material_name"`
	MaterialVendor string    `json:"material_vendor"`
	MaterialQty    string    `json:"material_qty"`
	MaterialStatus string    `json:"material_status"`
	MaterialNotes  string    `json:"material_notes"`

	MaterialOrderByDate  string `json:"material_order_by_date,omitempty"`
	MaterialDeliveryDate string `json:"material_delivery_date,omitempty"`
	MaterialPullByDate   string `json:"material_pull_by_date,omitempty"`

	MaterialCreatedAt string `json:"material_created_at"`
}

// ParseDate turns a YYYY-MM-DD request string into *time.Time.
// "" → nil (field absent/cleared).
func ParseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := helper.ParseLocalDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *MaterialRequest) ToModel() (*model.MaterialModel, error) {
	orderBy, err := ParseDate(r.MaterialOrderByDate)
	if err != nil {
		return nil, err
	}
	delivery, err := ParseDate(r.MaterialDeliveryDate)
	if err != nil {
		return nil, err
	}
	pullBy, err := ParseDate(r.MaterialPullByDate)
	if err != nil {
		return nil, err
	}

	return &model.MaterialModel{
		MaterialJobID:        r.MaterialJobID,
		MaterialName:         r.MaterialName,
		MaterialVendor:       r.MaterialVendor,
		MaterialQty:          r.MaterialQty,
		MaterialStatus:       model.MaterialStatusNotOrdered,
		MaterialNotes:        r.MaterialNotes,
		MaterialOrderByDate:  orderBy,
		MaterialDeliveryDate: delivery,
		MaterialPullByDate:   pullBy,
	}, nil
}

func formatDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return helper.FormatLocalDate(*t)
}

func ToMaterialResponse(m *model.MaterialModel) *MaterialResponse {
	return &MaterialResponse{
		MaterialID:           m.MaterialID,
		MaterialJobID:        m.MaterialJobID,
		MaterialName:         m.MaterialName,
		MaterialVendor:       m.MaterialVendor,
		MaterialQty:          m.MaterialQty,
		MaterialStatus:       m.MaterialStatus,
		MaterialNotes:        m.MaterialNotes,
		MaterialOrderByDate:  formatDatePtr(m.MaterialOrderByDate),
		MaterialDeliveryDate: formatDatePtr(m.MaterialDeliveryDate),
		MaterialPullByDate:   formatDatePtr(m.MaterialPullByDate),
		MaterialCreatedAt:    m.MaterialCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToMaterialResponseList(models []model.MaterialModel) []MaterialResponse {
	result := make([]MaterialResponse, 0, len(models))
	for _, m := range models {
		result = append(result, *ToMaterialResponse(&m))
	}
	return result
}
