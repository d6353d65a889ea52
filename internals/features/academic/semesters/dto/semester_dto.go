// file: internals/features/academic/semesters/dto/semester_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "kuliahku_backend/internals/features/academic/semesters/model"
)

/* ========== REQUEST ========== */

type SemesterCreateDTO struct {
	Number int `json:"number" validate:"required,min=1,max=12"`
}

func (p SemesterCreateDTO) ToModel(userID uuid.UUID) model.SemesterModel {
	return model.SemesterModel{
		SemesterUserID: userID,
		SemesterNumber: p.Number,
	}
}

type SemesterUpdateDTO struct {
	Number int `json:"number" validate:"required,min=1,max=12"`
}

/* ========== RESPONSE ========== */

type SemesterResponse struct {
	SemesterID uuid.UUID `json:"semester_id"`
	Number     int       `json:"number"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromModel(m model.SemesterModel) SemesterResponse {
	return SemesterResponse{
		SemesterID: m.SemesterID,
		Number:     m.SemesterNumber,
		CreatedAt:  m.SemesterCreatedAt,
	}
}

func FromModels(ms []model.SemesterModel) []SemesterResponse {
	out := make([]SemesterResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromModel(m))
	}
	return out
}
