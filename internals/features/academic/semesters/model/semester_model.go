// file: internals/features/academic/semesters/model/semester_model.go
package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SemesterModel: bucket angka semester (1–12) milik satu user.
// Unik per (user, nomor); hanya jadwal kuliah yang dipartisi per semester.
type SemesterModel struct {
	SemesterID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:semester_id" json:"semester_id"`
	SemesterUserID uuid.UUID `gorm:"type:uuid;not null;column:semester_user_id;uniqueIndex:uq_semester_user_number,priority:1" json:"semester_user_id"`
	SemesterNumber int       `gorm:"type:integer;not null;column:semester_number;uniqueIndex:uq_semester_user_number,priority:2" json:"semester_number"`

	SemesterCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:semester_created_at" json:"semester_created_at"`
	SemesterUpdatedAt time.Time `gorm:"type:timestamptz;not null;autoUpdateTime;column:semester_updated_at" json:"semester_updated_at"`
}

func (SemesterModel) TableName() string { return "semesters" }

// BeforeSave meniru CHECK constraint: nomor semester 1..12.
func (m *SemesterModel) BeforeSave(tx *gorm.DB) error {
	if m.SemesterNumber < 1 || m.SemesterNumber > 12 {
		return errors.New("semester_number harus di antara 1 dan 12")
	}
	return nil
}
