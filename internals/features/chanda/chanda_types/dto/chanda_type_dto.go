package dto

import (
	"time"

	"github.com/google/uuid"

	"jamaatku_backend/internals/features/chanda/chanda_types/model"
)

type CreateChandaTypeRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description"`
	CharityEnd  string `json:"charity_end"` // format: 2006-01-02
}

type UpdateChandaTypeRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	CharityEnd  *string `json:"charity_end,omitempty"`
}

type ChandaTypeResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	CharityEnd  *time.Time `json:"charity_end,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func ToChandaTypeResponse(m *model.ChandaTypeModel) ChandaTypeResponse {
	return ChandaTypeResponse{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		CharityEnd:  m.CharityEnd,
		CreatedAt:   m.CreatedAt,
	}
}

func ToChandaTypeResponseList(models []model.ChandaTypeModel) []ChandaTypeResponse {
	out := make([]ChandaTypeResponse, 0, len(models))
	for i := range models {
		out = append(out, ToChandaTypeResponse(&models[i]))
	}
	return out
}
