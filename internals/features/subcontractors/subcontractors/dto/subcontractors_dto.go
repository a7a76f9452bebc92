package dto

import (
	"buildops_backend/internals/features/subcontractors/subcontractors/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type SubcontractorRequest struct {
	SubcontractorName   string   `json:"subcontractor_name" validate:"required,max=255"`
	SubcontractorPhone  string   `json:"subcontractor_phone" validate:"max=50"`
	SubcontractorEmail  string   `json:"subcontractor_email" validate:"omitempty,email"`
	SubcontractorTrades []string `json:"subcontractor_trades"`
}

type SubcontractorUpdateRequest struct {
	SubcontractorName   *string   `json:"subcontractor_name"`
	SubcontractorPhone  *string   `json:"subcontractor_phone"`
	SubcontractorEmail  *string   `json:"subcontractor_email"`
	SubcontractorTrades *[]string `json:"subcontractor_trades"`
}

type SubcontractorResponse struct {
	SubcontractorID     uuid.UUID `json:"subcontractor_id"`
	SubcontractorName   string    `json:"subcontractor_name"`
	SubcontractorPhone  string    `json:"subcontractor_phone"`
	SubcontractorEmail  string    `json:"subcontractor_email"`
	SubcontractorTrades []string  `json:"subcontractor_trades"`
	SubcontractorCreatedAt string `json:"subcontractor_created_at"`
}

func (r *SubcontractorRequest) ToModel() *model.SubcontractorModel {
	return &model.SubcontractorModel{
		SubcontractorName:   r.SubcontractorName,
		SubcontractorPhone:  r.SubcontractorPhone,
		SubcontractorEmail:  r.SubcontractorEmail,
		SubcontractorTrades: pq.StringArray(r.SubcontractorTrades),
	}
}

func ToSubcontractorResponse(m *model.SubcontractorModel) *SubcontractorResponse {
	trades := []string(m.SubcontractorTrades)
	if trades == nil {
		trades = []string{}
	}
	return &SubcontractorResponse{
		SubcontractorID:        m.SubcontractorID,
		SubcontractorName:      m.SubcontractorName,
		SubcontractorPhone:     m.SubcontractorPhone,
		SubcontractorEmail:     m.SubcontractorEmail,
		SubcontractorTrades:    trades,
		SubcontractorCreatedAt: m.SubcontractorCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToSubcontractorResponseList(models []model.SubcontractorModel) []SubcontractorResponse {
	result := make([]SubcontractorResponse, 0, len(models))
	for _, m := range models {
		result = append(result, *ToSubcontractorResponse(&m))
	}
	return result
}
