// file: internals/features/academic/assignments/controller/assignment_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "kuliahku_backend/internals/features/academic/assignments/dto"
	model "kuliahku_backend/internals/features/academic/assignments/model"
	helper "kuliahku_backend/internals/helpers"
)

type AssignmentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAssignmentController(db *gorm.DB, v *validator.Validate) *AssignmentController {
	if v == nil {
		v = validator.New()
	}
	return &AssignmentController{DB: db, Validator: v}
}

/* ============================================
   CREATE — status pending & type akademik dipaksa server
   POST /schedule/store-assignment
============================================ */

func (ctl *AssignmentController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var p dto.AssignmentCreateDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	p.Normalize()
	if err := ctl.Validator.Struct(&p); err != nil {
		return helper.ValidationError(c, err)
	}

	ent, err := p.ToModel(userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan tugas")
	}
	return helper.JsonCreated(c, "Berhasil menambah tugas", dto.FromModel(ent))
}

/* ============================================
   UPDATE (partial) — status eksplisit tetap dibatasi enumerasi
   PATCH /schedule/update-assignment/:id
============================================ */

func (ctl *AssignmentController) Update(c *fiber.Ctx) error {
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

	var p dto.AssignmentUpdateDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&p); err != nil {
		return helper.ValidationError(c, err)
	}

	updates, err := p.Apply()
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if len(updates) == 0 {
		return helper.JsonUpdated(c, "Tidak ada perubahan", dto.FromModel(*ent))
	}

	if err := ctl.DB.Model(ent).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui tugas")
	}
	// ambil ulang nilai terbaru untuk response
	if err := ctl.DB.Where("assignment_id = ?", ent.AssignmentID).First(ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil tugas")
	}
	return helper.JsonUpdated(c, "Berhasil memperbarui tugas", dto.FromModel(*ent))
}

/* ============================================
   TOGGLE — operasi tanpa payload, memutar siklus status
   PATCH /schedule/toggle-assignment/:id
============================================ */

func (ctl *AssignmentController) Toggle(c *fiber.Ctx) error {
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

	ent.AssignmentStatus = model.NextStatus(ent.AssignmentStatus)
	if err := ctl.DB.Model(ent).
		Update("assignment_status", ent.AssignmentStatus).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui status tugas")
	}
	return helper.JsonUpdated(c, "Status tugas diperbarui", dto.FromModel(*ent))
}

/* ============================================
   DELETE
   DELETE /schedule/destroy-assignment/:id
============================================ */

func (ctl *AssignmentController) Delete(c *fiber.Ctx) error {
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
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus tugas")
	}
	return helper.JsonDeleted(c, "Berhasil menghapus tugas", dto.FromModel(*ent))
}

/* ============================================
   internal
============================================ */

func (ctl *AssignmentController) findOwned(userID, id uuid.UUID) (*model.AssignmentModel, error) {
	var ent model.AssignmentModel
	if err := ctl.DB.Where("assignment_id = ?", id).First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Tugas tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil tugas")
	}
	if ent.AssignmentUserID != userID {
		return nil, fiber.NewError(fiber.StatusForbidden, "Anda tidak berhak mengakses data ini")
	}
	return &ent, nil
}
