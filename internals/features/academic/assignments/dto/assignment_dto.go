// file: internals/features/academic/assignments/dto/assignment_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	model "kuliahku_backend/internals/features/academic/assignments/model"
)

const deadlineLayout = "2006-01-02"

/* ========== REQUEST ========== */

type AssignmentCreateDTO struct {
	Name        string  `json:"name" validate:"required,max=150"`
	Deadline    string  `json:"deadline" validate:"required"`
	Description *string `json:"description"`
}

func (p *AssignmentCreateDTO) Normalize() {
	p.Name = strings.TrimSpace(p.Name)
	p.Deadline = strings.TrimSpace(p.Deadline)
}

// ToModel: status & type selalu dipaksa dari server, bukan dari input form.
func (p AssignmentCreateDTO) ToModel(userID uuid.UUID) (model.AssignmentModel, error) {
	deadline, err := time.Parse(deadlineLayout, p.Deadline)
	if err != nil {
		return model.AssignmentModel{}, fiber.NewError(fiber.StatusUnprocessableEntity, "Format deadline harus YYYY-MM-DD")
	}
	return model.AssignmentModel{
		AssignmentUserID:      userID,
		AssignmentName:        p.Name,
		AssignmentDeadline:    deadline,
		AssignmentStatus:      model.StatusPending,
		AssignmentType:        model.TypeAkademik,
		AssignmentDescription: p.Description,
	}, nil
}

// AssignmentUpdateDTO: partial update — hanya field non-nil yang diterapkan.
type AssignmentUpdateDTO struct {
	Name        *string `json:"name" validate:"omitempty,max=150"`
	Deadline    *string `json:"deadline"`
	Status      *string `json:"status" validate:"omitempty,oneof=pending in-progress completed"`
	Description *string `json:"description"`
}

// Apply menerapkan field terisi ke entitas; mengembalikan map kolom→nilai
// untuk Updates (menghindari zero-value skip milik struct update GORM).
func (p AssignmentUpdateDTO) Apply() (map[string]any, error) {
	updates := map[string]any{}
	if p.Name != nil {
		n := strings.TrimSpace(*p.Name)
		if n == "" {
			return nil, fiber.NewError(fiber.StatusUnprocessableEntity, "Nama tugas tidak boleh kosong")
		}
		updates["assignment_name"] = n
	}
	if p.Deadline != nil {
		deadline, err := time.Parse(deadlineLayout, strings.TrimSpace(*p.Deadline))
		if err != nil {
			return nil, fiber.NewError(fiber.StatusUnprocessableEntity, "Format deadline harus YYYY-MM-DD")
		}
		updates["assignment_deadline"] = deadline
	}
	if p.Status != nil {
		if !model.ValidStatus(*p.Status) {
			return nil, fiber.NewError(fiber.StatusUnprocessableEntity, "Status tidak dikenal")
		}
		updates["assignment_status"] = *p.Status
	}
	if p.Description != nil {
		d := strings.TrimSpace(*p.Description)
		if d == "" {
			updates["assignment_description"] = nil
		} else {
			updates["assignment_description"] = d
		}
	}
	return updates, nil
}

/* ========== RESPONSE ========== */

type AssignmentResponse struct {
	AssignmentID uuid.UUID `json:"assignment_id"`
	Name         string    `json:"name"`
	Deadline     string    `json:"deadline"`
	Status       string    `json:"status"`
	Type         string    `json:"type"`
	Description  *string   `json:"description,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromModel(m model.AssignmentModel) AssignmentResponse {
	return AssignmentResponse{
		AssignmentID: m.AssignmentID,
		Name:         m.AssignmentName,
		Deadline:     m.AssignmentDeadline.Format(deadlineLayout),
		Status:       m.AssignmentStatus,
		Type:         m.AssignmentType,
		Description:  m.AssignmentDescription,
		CreatedAt:    m.AssignmentCreatedAt,
	}
}

func FromModels(ms []model.AssignmentModel) []AssignmentResponse {
	out := make([]AssignmentResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromModel(m))
	}
	return out
}
