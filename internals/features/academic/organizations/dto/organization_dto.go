// file: internals/features/academic/organizations/dto/organization_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "kuliahku_backend/internals/features/academic/organizations/model"
)

/* ========== REQUEST ========== */

type OrganizationCreateDTO struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Position    *string `json:"position" validate:"omitempty,max=100"`
	Description *string `json:"description"`
}

func (p *OrganizationCreateDTO) Normalize() {
	p.Name = strings.TrimSpace(p.Name)
}

func (p OrganizationCreateDTO) ToModel(userID uuid.UUID) model.OrganizationModel {
	return model.OrganizationModel{
		OrganizationUserID:      userID,
		OrganizationName:        p.Name,
		OrganizationPosition:    p.Position,
		OrganizationDescription: p.Description,
	}
}

// Update memakai semantik replace penuh (mengikuti form lama):
// name wajib, position/description boleh dikosongkan.
type OrganizationUpdateDTO struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Position    *string `json:"position" validate:"omitempty,max=100"`
	Description *string `json:"description"`
}

func (p *OrganizationUpdateDTO) Normalize() {
	p.Name = strings.TrimSpace(p.Name)
}

/* ========== RESPONSE ========== */

type OrganizationResponse struct {
	OrganizationID uuid.UUID `json:"organization_id"`
	Name           string    `json:"name"`
	Position       *string   `json:"position,omitempty"`
	Description    *string   `json:"description,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func FromModel(m model.OrganizationModel) OrganizationResponse {
	return OrganizationResponse{
		OrganizationID: m.OrganizationID,
		Name:           m.OrganizationName,
		Position:       m.OrganizationPosition,
		Description:    m.OrganizationDescription,
		CreatedAt:      m.OrganizationCreatedAt,
	}
}

func FromModels(ms []model.OrganizationModel) []OrganizationResponse {
	out := make([]OrganizationResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromModel(m))
	}
	return out
}
