// file: internals/features/academic/semesters/controller/semester_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	scheduleModel "kuliahku_backend/internals/features/academic/class_schedules/model"
	dto "kuliahku_backend/internals/features/academic/semesters/dto"
	model "kuliahku_backend/internals/features/academic/semesters/model"
	helper "kuliahku_backend/internals/helpers"
)

type SemesterController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewSemesterController(db *gorm.DB, v *validator.Validate) *SemesterController {
	if v == nil {
		v = validator.New()
	}
	return &SemesterController{DB: db, Validator: v}
}

/* ============================================
   CREATE
   POST /schedule/store-semester
============================================ */

func (ctl *SemesterController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var p dto.SemesterCreateDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&p); err != nil {
		return helper.ValidationError(c, err)
	}

	// Nomor semester unik per user
	var cnt int64
	if err := ctl.DB.Model(&model.SemesterModel{}).
		Where("semester_user_id = ? AND semester_number = ?", userID, p.Number).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa nomor semester")
	}
	if cnt > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Semester dengan nomor tersebut sudah ada")
	}

	ent := p.ToModel(userID)
	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat semester")
	}
	return helper.JsonCreated(c, "Berhasil menambah semester", dto.FromModel(ent))
}

/* ============================================
   UPDATE
   PATCH /schedule/update-semester/:id
============================================ */

func (ctl *SemesterController) Update(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	ent, err := ctl.findOwned(c, userID, id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var p dto.SemesterUpdateDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&p); err != nil {
		return helper.ValidationError(c, err)
	}

	// Unik per user, kecuali baris ini sendiri
	var cnt int64
	if err := ctl.DB.Model(&model.SemesterModel{}).
		Where("semester_user_id = ? AND semester_number = ? AND semester_id <> ?", userID, p.Number, ent.SemesterID).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa nomor semester")
	}
	if cnt > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Semester dengan nomor tersebut sudah ada")
	}

	ent.SemesterNumber = p.Number
	if err := ctl.DB.Save(ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui semester")
	}
	return helper.JsonUpdated(c, "Berhasil memperbarui semester", dto.FromModel(*ent))
}

/* ============================================
   DELETE — ditolak selama masih punya jadwal
   DELETE /schedule/destroy-semester/:id
============================================ */

func (ctl *SemesterController) Delete(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	ent, err := ctl.findOwned(c, userID, id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	// Cek dependensi SEBELUM statement delete (integrity conflict, bukan cascade)
	var cnt int64
	if err := ctl.DB.Model(&scheduleModel.ClassScheduleModel{}).
		Where("class_schedule_semester_id = ?", ent.SemesterID).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa jadwal semester")
	}
	if cnt > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Semester tidak dapat dihapus karena masih memiliki jadwal")
	}

	if err := ctl.DB.Delete(ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus semester")
	}
	return helper.JsonDeleted(c, "Berhasil menghapus semester", dto.FromModel(*ent))
}

/* ============================================
   internal
============================================ */

// findOwned mengambil semester milik user; baris milik user lain
// dibalas 403 polos tanpa membocorkan pemilik sebenarnya.
func (ctl *SemesterController) findOwned(c *fiber.Ctx, userID, id uuid.UUID) (*model.SemesterModel, error) {
	var ent model.SemesterModel
	if err := ctl.DB.Where("semester_id = ?", id).First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Semester tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil semester")
	}
	if ent.SemesterUserID != userID {
		return nil, fiber.NewError(fiber.StatusForbidden, "Anda tidak berhak mengakses data ini")
	}
	return &ent, nil
}
