// file: internals/features/academic/dashboard/controller/dashboard_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assignmentDTO "kuliahku_backend/internals/features/academic/assignments/dto"
	assignmentModel "kuliahku_backend/internals/features/academic/assignments/model"
	scheduleDTO "kuliahku_backend/internals/features/academic/class_schedules/dto"
	scheduleModel "kuliahku_backend/internals/features/academic/class_schedules/model"
	organizationDTO "kuliahku_backend/internals/features/academic/organizations/dto"
	organizationModel "kuliahku_backend/internals/features/academic/organizations/model"
	semesterDTO "kuliahku_backend/internals/features/academic/semesters/dto"
	semesterModel "kuliahku_backend/internals/features/academic/semesters/model"
	helper "kuliahku_backend/internals/helpers"
)

const selectedSemesterCookie = "selected_semester"

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// DashboardResponse: satu payload agregat untuk halaman jadwal.
// Jadwal kuliah dipartisi per semester aktif; tugas & organisasi global.
type DashboardResponse struct {
	Semesters       []semesterDTO.SemesterResponse         `json:"semesters"`
	CurrentSemester *semesterDTO.SemesterResponse          `json:"current_semester"`
	ClassSchedules  []scheduleDTO.ClassScheduleResponse    `json:"class_schedules"`
	Assignments     []assignmentDTO.AssignmentResponse     `json:"assignments"`
	Organizations   []organizationDTO.OrganizationResponse `json:"organizations"`
}

/* ============================================
   INDEX
   GET /schedule  (alias GET /dashboard)
============================================ */

func (ctl *DashboardController) Index(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	// semua semester user, urut pembuatan (fallback resolver bergantung urutan ini)
	var semesters []semesterModel.SemesterModel
	if err := ctl.DB.
		Where("semester_user_id = ?", userID).
		Order("semester_created_at ASC, semester_id ASC").
		Find(&semesters).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar semester")
	}

	current := ResolveSelectedSemester(c.Query("semester"), c.Cookies(selectedSemesterCookie), semesters)

	// simpan pilihan ke cookie: query baru menimpa,
	// fallback juga disimpan supaya request berikutnya konsisten
	if current != nil {
		c.Cookie(&fiber.Cookie{
			Name:     selectedSemesterCookie,
			Value:    current.SemesterID.String(),
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
	}

	resp := DashboardResponse{
		Semesters:      semesterDTO.FromModels(semesters),
		ClassSchedules: []scheduleDTO.ClassScheduleResponse{},
	}

	if current != nil {
		cur := semesterDTO.FromModel(*current)
		resp.CurrentSemester = &cur

		var schedules []scheduleModel.ClassScheduleModel
		if err := ctl.DB.
			Where("class_schedule_user_id = ? AND class_schedule_semester_id = ?", userID, current.SemesterID).
			Order("class_schedule_day ASC, class_schedule_start_time ASC").
			Find(&schedules).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jadwal kuliah")
		}
		resp.ClassSchedules = scheduleDTO.FromModels(schedules)
	}

	var assignments []assignmentModel.AssignmentModel
	if err := ctl.DB.
		Where("assignment_user_id = ?", userID).
		Order("assignment_deadline ASC").
		Find(&assignments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar tugas")
	}
	resp.Assignments = assignmentDTO.FromModels(assignments)

	var organizations []organizationModel.OrganizationModel
	if err := ctl.DB.
		Where("organization_user_id = ?", userID).
		Order("organization_created_at ASC").
		Find(&organizations).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar organisasi")
	}
	resp.Organizations = organizationDTO.FromModels(organizations)

	return helper.JsonOK(c, "", resp)
}
