// file: internals/features/academic/class_schedules/model/class_schedule_model.go
package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"kuliahku_backend/internals/helpers/dbtime"
)

// ClassScheduleModel: satu slot jadwal kuliah milik user, terikat ke satu semester.
type ClassScheduleModel struct {
	ClassScheduleID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:class_schedule_id" json:"class_schedule_id"`
	ClassScheduleUserID     uuid.UUID `gorm:"type:uuid;not null;index;column:class_schedule_user_id" json:"class_schedule_user_id"`
	ClassScheduleSemesterID uuid.UUID `gorm:"type:uuid;not null;index;column:class_schedule_semester_id" json:"class_schedule_semester_id"`

	ClassScheduleName     string      `gorm:"type:varchar(100);not null;column:class_schedule_name" json:"class_schedule_name"`
	ClassScheduleDay      string      `gorm:"type:varchar(20);not null;column:class_schedule_day" json:"class_schedule_day"`
	ClassScheduleStart    dbtime.Tod  `gorm:"type:time;not null;column:class_schedule_start_time" json:"class_schedule_start_time"`
	ClassScheduleEnd      *dbtime.Tod `gorm:"type:time;column:class_schedule_end_time" json:"class_schedule_end_time,omitempty"`
	ClassScheduleLecturer string      `gorm:"type:varchar(100);not null;column:class_schedule_lecturer" json:"class_schedule_lecturer"`
	ClassScheduleRoom     *string     `gorm:"type:varchar(50);column:class_schedule_room" json:"class_schedule_room,omitempty"`
	ClassScheduleCredits  *int        `gorm:"type:integer;column:class_schedule_credits" json:"class_schedule_credits,omitempty"`

	// Ditulis oleh indexer service AI (retrieval semantik), bukan oleh backend ini.
	ClassScheduleEmbedding datatypes.JSON `gorm:"type:jsonb;column:class_schedule_embedding" json:"-"`

	ClassScheduleCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:class_schedule_created_at" json:"class_schedule_created_at"`
	ClassScheduleUpdatedAt time.Time `gorm:"type:timestamptz;not null;autoUpdateTime;column:class_schedule_updated_at" json:"class_schedule_updated_at"`
}

func (ClassScheduleModel) TableName() string { return "class_schedules" }

func (m *ClassScheduleModel) BeforeSave(tx *gorm.DB) error {
	m.ClassScheduleName = strings.TrimSpace(m.ClassScheduleName)
	m.ClassScheduleDay = strings.TrimSpace(m.ClassScheduleDay)
	m.ClassScheduleLecturer = strings.TrimSpace(m.ClassScheduleLecturer)

	if m.ClassScheduleRoom != nil {
		r := strings.TrimSpace(*m.ClassScheduleRoom)
		if r == "" {
			m.ClassScheduleRoom = nil
		} else {
			m.ClassScheduleRoom = &r
		}
	}

	// Mirror CHECK: credits 0..6 kalau diisi
	if m.ClassScheduleCredits != nil {
		if *m.ClassScheduleCredits < 0 || *m.ClassScheduleCredits > 6 {
			return errors.New("class_schedule_credits harus 0..6")
		}
	}
	return nil
}
