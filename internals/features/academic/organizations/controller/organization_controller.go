// file: internals/features/academic/organizations/controller/organization_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "kuliahku_backend/internals/features/academic/organizations/dto"
	model "kuliahku_backend/internals/features/academic/organizations/model"
	helper "kuliahku_backend/internals/helpers"
)

type OrganizationController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewOrganizationController(db *gorm.DB, v *validator.Validate) *OrganizationController {
	if v == nil {
		v = validator.New()
	}
	return &OrganizationController{DB: db, Validator: v}
}

/* ============================================
   CREATE
   POST /schedule/store-organization
============================================ */

func (ctl *OrganizationController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var p dto.OrganizationCreateDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	p.Normalize()
	if err := ctl.Validator.Struct(&p); err != nil {
		return helper.ValidationError(c, err)
	}

	ent := p.ToModel(userID)
	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan organisasi")
	}
	return helper.JsonCreated(c, "Berhasil menambah organisasi", dto.FromModel(ent))
}

/* ============================================
   UPDATE (replace penuh)
   PATCH /schedule/update-organization/:id
============================================ */

func (ctl *OrganizationController) Update(c *fiber.Ctx) error {
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

	var p dto.OrganizationUpdateDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	p.Normalize()
	if err := ctl.Validator.Struct(&p); err != nil {
		return helper.ValidationError(c, err)
	}

	ent.OrganizationName = p.Name
	ent.OrganizationPosition = p.Position
	ent.OrganizationDescription = p.Description

	if err := ctl.DB.Save(ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui organisasi")
	}
	return helper.JsonUpdated(c, "Berhasil memperbarui organisasi", dto.FromModel(*ent))
}

/* ============================================
   DELETE
   DELETE /schedule/destroy-organization/:id
============================================ */

func (ctl *OrganizationController) Delete(c *fiber.Ctx) error {
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
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus organisasi")
	}
	return helper.JsonDeleted(c, "Berhasil menghapus organisasi", dto.FromModel(*ent))
}

/* ============================================
   internal
============================================ */

func (ctl *OrganizationController) findOwned(userID, id uuid.UUID) (*model.OrganizationModel, error) {
	var ent model.OrganizationModel
	if err := ctl.DB.Where("organization_id = ?", id).First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Organisasi tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil organisasi")
	}
	if ent.OrganizationUserID != userID {
		return nil, fiber.NewError(fiber.StatusForbidden, "Anda tidak berhak mengakses data ini")
	}
	return &ent, nil
}
