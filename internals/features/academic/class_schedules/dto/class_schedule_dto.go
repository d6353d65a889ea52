// file: internals/features/academic/class_schedules/dto/class_schedule_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	model "kuliahku_backend/internals/features/academic/class_schedules/model"
	helper "kuliahku_backend/internals/helpers"
	"kuliahku_backend/internals/helpers/dbtime"
)

/* ========== REQUEST ========== */

// Form lama mengirim satu field "time" gabungan ("08:00-10:00");
// klien baru boleh langsung mengirim start_time/end_time terpisah.
type ClassScheduleCreateDTO struct {
	Name       string    `json:"name" validate:"required,max=100"`
	Day        string    `json:"day" validate:"required,max=20"`
	Time       string    `json:"time"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
	Lecturer   string    `json:"lecturer" validate:"required,max=100"`
	Room       *string   `json:"room" validate:"omitempty,max=50"`
	Credits    *int      `json:"credits" validate:"omitempty,min=0,max=6"`
	SemesterID uuid.UUID `json:"semester_id" validate:"required"`
}

func (p *ClassScheduleCreateDTO) Normalize() {
	p.Name = strings.TrimSpace(p.Name)
	p.Day = strings.TrimSpace(p.Day)
	p.Lecturer = strings.TrimSpace(p.Lecturer)
}

// ResolveTimes menghasilkan jam mulai/selesai dari field compound atau terpisah.
func (p ClassScheduleCreateDTO) ResolveTimes() (start dbtime.Tod, end *dbtime.Tod, err error) {
	startStr := strings.TrimSpace(p.StartTime)
	endStr := strings.TrimSpace(p.EndTime)
	if startStr == "" {
		startStr, endStr, err = helper.ParseTimeRange(p.Time)
		if err != nil {
			return start, nil, err
		}
	}

	start, err = dbtime.Parse(startStr)
	if err != nil {
		return start, nil, fiber.NewError(fiber.StatusUnprocessableEntity, "Format jam mulai harus HH:MM")
	}
	if endStr != "" {
		e, err := dbtime.Parse(endStr)
		if err != nil {
			return start, nil, fiber.NewError(fiber.StatusUnprocessableEntity, "Format jam selesai harus HH:MM")
		}
		end = &e
	}
	return start, end, nil
}

func (p ClassScheduleCreateDTO) ToModel(userID uuid.UUID, start dbtime.Tod, end *dbtime.Tod) model.ClassScheduleModel {
	return model.ClassScheduleModel{
		ClassScheduleUserID:     userID,
		ClassScheduleSemesterID: p.SemesterID,
		ClassScheduleName:       p.Name,
		ClassScheduleDay:        p.Day,
		ClassScheduleStart:      start,
		ClassScheduleEnd:        end,
		ClassScheduleLecturer:   p.Lecturer,
		ClassScheduleRoom:       p.Room,
		ClassScheduleCredits:    p.Credits,
	}
}

// Update memakai semantik replace penuh, sama seperti form lama.
type ClassScheduleUpdateDTO = ClassScheduleCreateDTO

/* ========== RESPONSE ========== */

type ClassScheduleResponse struct {
	ClassScheduleID uuid.UUID `json:"class_schedule_id"`
	SemesterID      uuid.UUID `json:"semester_id"`
	Name            string    `json:"name"`
	Day             string    `json:"day"`
	StartTime       string    `json:"start_time"`
	EndTime         *string   `json:"end_time,omitempty"`
	Lecturer        string    `json:"lecturer"`
	Room            *string   `json:"room,omitempty"`
	Credits         *int      `json:"credits,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

func FromModel(m model.ClassScheduleModel) ClassScheduleResponse {
	resp := ClassScheduleResponse{
		ClassScheduleID: m.ClassScheduleID,
		SemesterID:      m.ClassScheduleSemesterID,
		Name:            m.ClassScheduleName,
		Day:             m.ClassScheduleDay,
		StartTime:       m.ClassScheduleStart.String(),
		Lecturer:        m.ClassScheduleLecturer,
		Room:            m.ClassScheduleRoom,
		Credits:         m.ClassScheduleCredits,
		CreatedAt:       m.ClassScheduleCreatedAt,
	}
	if m.ClassScheduleEnd != nil {
		s := m.ClassScheduleEnd.String()
		resp.EndTime = &s
	}
	return resp
}

func FromModels(ms []model.ClassScheduleModel) []ClassScheduleResponse {
	out := make([]ClassScheduleResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromModel(m))
	}
	return out
}
