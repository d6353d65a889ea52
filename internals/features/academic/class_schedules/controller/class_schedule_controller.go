// file: internals/features/academic/class_schedules/controller/class_schedule_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "kuliahku_backend/internals/features/academic/class_schedules/dto"
	model "kuliahku_backend/internals/features/academic/class_schedules/model"
	semesterModel "kuliahku_backend/internals/features/academic/semesters/model"
	helper "kuliahku_backend/internals/helpers"
)

type ClassScheduleController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewClassScheduleController(db *gorm.DB, v *validator.Validate) *ClassScheduleController {
	if v == nil {
		v = validator.New()
	}
	return &ClassScheduleController{DB: db, Validator: v}
}

/* ============================================
   CREATE
   POST /schedule/store-class
============================================ */

func (ctl *ClassScheduleController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var p dto.ClassScheduleCreateDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	p.Normalize()
	if err := ctl.Validator.Struct(&p); err != nil {
		return helper.ValidationError(c, err)
	}

	start, end, err := p.ResolveTimes()
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	// semester_id harus merujuk semester MILIK user, bukan sekadar exists
	if err := ctl.ensureOwnedSemester(userID, p.SemesterID); err != nil {
		return helper.FromFiberError(c, err)
	}

	ent := p.ToModel(userID, start, end)
	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan jadwal")
	}
	return helper.JsonCreated(c, "Berhasil menambah jadwal kuliah", dto.FromModel(ent))
}

/* ============================================
   UPDATE (replace penuh, seperti form lama)
   PATCH /schedule/update-class/:id
============================================ */

func (ctl *ClassScheduleController) Update(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	ent, err := ctl.findOwned(userID, id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var p dto.ClassScheduleUpdateDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	p.Normalize()
	if err := ctl.Validator.Struct(&p); err != nil {
		return helper.ValidationError(c, err)
	}

	start, end, err := p.ResolveTimes()
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := ctl.ensureOwnedSemester(userID, p.SemesterID); err != nil {
		return helper.FromFiberError(c, err)
	}

	ent.ClassScheduleName = p.Name
	ent.ClassScheduleDay = p.Day
	ent.ClassScheduleStart = start
	ent.ClassScheduleEnd = end
	ent.ClassScheduleLecturer = p.Lecturer
	ent.ClassScheduleRoom = p.Room
	ent.ClassScheduleCredits = p.Credits
	ent.ClassScheduleSemesterID = p.SemesterID

	if err := ctl.DB.Save(ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui jadwal")
	}
	return helper.JsonUpdated(c, "Berhasil memperbarui jadwal kuliah", dto.FromModel(*ent))
}

/* ============================================
   DELETE
   DELETE /schedule/destroy-class/:id
============================================ */

func (ctl *ClassScheduleController) Delete(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	ent, err := ctl.findOwned(userID, id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := ctl.DB.Delete(ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus jadwal")
	}
	return helper.JsonDeleted(c, "Berhasil menghapus jadwal kuliah", dto.FromModel(*ent))
}

/* ============================================
   internal
============================================ */

func (ctl *ClassScheduleController) findOwned(userID, id uuid.UUID) (*model.ClassScheduleModel, error) {
	var ent model.ClassScheduleModel
	if err := ctl.DB.Where("class_schedule_id = ?", id).First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Jadwal tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil jadwal")
	}
	if ent.ClassScheduleUserID != userID {
		return nil, fiber.NewError(fiber.StatusForbidden, "Anda tidak berhak mengakses data ini")
	}
	return &ent, nil
}

// ensureOwnedSemester menolak semester_id lintas-pemilik (422, bukan 403:
// referensi salah adalah kesalahan input, bukan akses ke baris jadwal).
func (ctl *ClassScheduleController) ensureOwnedSemester(userID, semesterID uuid.UUID) error {
	var cnt int64
	if err := ctl.DB.Model(&semesterModel.SemesterModel{}).
		Where("semester_id = ? AND semester_user_id = ?", semesterID, userID).
		Count(&cnt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa semester")
	}
	if cnt == 0 {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Semester tidak ditemukan untuk akun ini")
	}
	return nil
}
