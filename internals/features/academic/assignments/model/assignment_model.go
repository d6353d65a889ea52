// file: internals/features/academic/assignments/model/assignment_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Status tugas: siklus tiga nilai.
const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

// Tipe default tugas yang dibuat dari form.
const TypeAkademik = "akademik"

// NextStatus memutar status satu langkah:
// pending → in-progress → completed → pending.
// Nilai tak dikenal dipetakan balik ke pending.
func NextStatus(current string) string {
	switch current {
	case StatusPending:
		return StatusInProgress
	case StatusInProgress:
		return StatusCompleted
	default:
		return StatusPending
	}
}

// ValidStatus: hanya tiga nilai enumerasi yang sah tersimpan.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// AssignmentModel: tugas milik user, global (tidak dipartisi per semester).
type AssignmentModel struct {
	AssignmentID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:assignment_id" json:"assignment_id"`
	AssignmentUserID uuid.UUID `gorm:"type:uuid;not null;index;column:assignment_user_id" json:"assignment_user_id"`

	AssignmentName        string         `gorm:"type:varchar(150);not null;column:assignment_name" json:"assignment_name"`
	AssignmentDeadline    time.Time      `gorm:"type:date;not null;column:assignment_deadline" json:"assignment_deadline"`
	AssignmentStatus      string         `gorm:"type:varchar(20);not null;default:'pending';column:assignment_status" json:"assignment_status"`
	AssignmentType        string         `gorm:"type:varchar(30);not null;default:'akademik';column:assignment_type" json:"assignment_type"`
	AssignmentDescription *string        `gorm:"type:text;column:assignment_description" json:"assignment_description,omitempty"`
	AssignmentEmbedding   datatypes.JSON `gorm:"type:jsonb;column:assignment_embedding" json:"-"`

	AssignmentCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:assignment_created_at" json:"assignment_created_at"`
	AssignmentUpdatedAt time.Time `gorm:"type:timestamptz;not null;autoUpdateTime;column:assignment_updated_at" json:"assignment_updated_at"`
}

func (AssignmentModel) TableName() string { return "assignments" }

func (m *AssignmentModel) BeforeSave(tx *gorm.DB) error {
	m.AssignmentName = strings.TrimSpace(m.AssignmentName)
	if m.AssignmentStatus == "" {
		m.AssignmentStatus = StatusPending
	}
	if m.AssignmentType == "" {
		m.AssignmentType = TypeAkademik
	}
	if m.AssignmentDescription != nil {
		d := strings.TrimSpace(*m.AssignmentDescription)
		if d == "" {
			m.AssignmentDescription = nil
		} else {
			m.AssignmentDescription = &d
		}
	}
	return nil
}
