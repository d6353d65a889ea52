// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	authDTO "kuliahku_backend/internals/features/users/auth/dto"
	authService "kuliahku_backend/internals/features/users/auth/service"
	userModel "kuliahku_backend/internals/features/users/user/model"
	helper "kuliahku_backend/internals/helpers"

	assignmentModel "kuliahku_backend/internals/features/academic/assignments/model"
	scheduleModel "kuliahku_backend/internals/features/academic/class_schedules/model"
	organizationModel "kuliahku_backend/internals/features/academic/organizations/model"
	semesterModel "kuliahku_backend/internals/features/academic/semesters/model"
)

type AuthController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAuthController(db *gorm.DB, v *validator.Validate) *AuthController {
	if v == nil {
		v = validator.New()
	}
	return &AuthController{DB: db, Validator: v}
}

/* ============================================
   REGISTER
   POST /api/auth/register
============================================ */

func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var p authDTO.RegisterRequest
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	p.Normalize()
	if err := ctl.Validator.Struct(&p); err != nil {
		return helper.ValidationError(c, err)
	}

	// Email harus unik
	var cnt int64
	if err := ctl.DB.Model(&userModel.UserModel{}).
		Where("user_email = ?", p.Email).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa email")
	}
	if cnt > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(p.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	u := userModel.UserModel{
		UserName:     p.UserName,
		UserEmail:    p.Email,
		UserPassword: string(hashed),
		UserIsActive: true,
	}
	if err := ctl.DB.Create(&u).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat akun")
	}

	log.Printf("✅ Register: user baru %s", u.UserEmail)
	return helper.JsonCreated(c, "Pendaftaran berhasil", authDTO.FromUserModel(u))
}

/* ============================================
   LOGIN
   POST /api/auth/login
============================================ */

func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var p authDTO.LoginRequest
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	p.Normalize()
	if err := ctl.Validator.Struct(&p); err != nil {
		return helper.ValidationError(c, err)
	}

	var u userModel.UserModel
	if err := ctl.DB.Where("user_email = ?", p.Email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// pesan sengaja sama dengan password salah
			return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}
	if !u.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.UserPassword), []byte(p.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	access, err := authService.IssueAccessToken(u)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	refresh, err := authService.IssueRefreshToken(u.UserID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	authService.SetRefreshCookie(c, refresh)

	return helper.JsonOK(c, "Login berhasil", authDTO.LoginResponse{
		AccessToken: access,
		ExpiresIn:   int64(authService.AccessTTL.Seconds()),
		User:        authDTO.FromUserModel(u),
	})
}

/* ============================================
   REFRESH TOKEN
   POST /api/auth/refresh-token
============================================ */

func (ctl *AuthController) RefreshToken(c *fiber.Ctx) error {
	refreshCookie := strings.TrimSpace(c.Cookies("refresh_token"))
	if refreshCookie == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak ada")
	}

	userID, err := authService.ParseRefreshToken(refreshCookie)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var u userModel.UserModel
	if err := ctl.DB.Where("user_id = ?", userID).First(&u).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak ditemukan")
	}
	if !u.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun dinonaktifkan")
	}

	// ROTATE: terbitkan pasangan token baru
	access, err := authService.IssueAccessToken(u)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	refresh, err := authService.IssueRefreshToken(u.UserID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	authService.SetRefreshCookie(c, refresh)

	return helper.JsonOK(c, "Token diperbarui", authDTO.LoginResponse{
		AccessToken: access,
		ExpiresIn:   int64(authService.AccessTTL.Seconds()),
		User:        authDTO.FromUserModel(u),
	})
}

/* ============================================
   LOGOUT
   POST /api/auth/logout
============================================ */

func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	authService.ClearRefreshCookie(c)
	return helper.JsonOK(c, "Logout berhasil", nil)
}

/* ============================================
   ME
   GET /api/auth/me
============================================ */

func (ctl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var u userModel.UserModel
	if err := ctl.DB.Where("user_id = ?", userID).First(&u).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}
	return helper.JsonOK(c, "", authDTO.FromUserModel(u))
}

/* ============================================
   DELETE ACCOUNT (cascade eksplisit, 1 transaksi)
   DELETE /api/auth/me
============================================ */

func (ctl *AuthController) DeleteMe(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("class_schedule_user_id = ?", userID).
			Delete(&scheduleModel.ClassScheduleModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("assignment_user_id = ?", userID).
			Delete(&assignmentModel.AssignmentModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("organization_user_id = ?", userID).
			Delete(&organizationModel.OrganizationModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("semester_user_id = ?", userID).
			Delete(&semesterModel.SemesterModel{}).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", userID).Delete(&userModel.UserModel{}).Error
	})
	if err != nil {
		log.Printf("[ERROR] cascade delete user %s: %v", userID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus akun")
	}

	authService.ClearRefreshCookie(c)
	return helper.JsonDeleted(c, "Akun beserta seluruh data berhasil dihapus", nil)
}
