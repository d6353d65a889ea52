//go:build integration

// Test integrasi HTTP end-to-end terhadap Postgres sungguhan.
// Jalankan dengan:
//
//	TEST_DATABASE_DSN="host=localhost user=postgres ..." go test -tags integration ./internals/route/
package routes_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"kuliahku_backend/internals/configs"
	assignmentModel "kuliahku_backend/internals/features/academic/assignments/model"
	scheduleModel "kuliahku_backend/internals/features/academic/class_schedules/model"
	organizationModel "kuliahku_backend/internals/features/academic/organizations/model"
	semesterModel "kuliahku_backend/internals/features/academic/semesters/model"
	authService "kuliahku_backend/internals/features/users/auth/service"
	userModel "kuliahku_backend/internals/features/users/user/model"
	routes "kuliahku_backend/internals/route"
)

var (
	app   *fiber.App
	db    *gorm.DB
	aiSrv *httptest.Server
)

func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		fmt.Println("TEST_DATABASE_DSN kosong, test integrasi dilewati")
		os.Exit(0)
	}

	configs.JWTSecret = "integration-test-secret"
	configs.JWTRefreshSecret = "integration-test-refresh"

	// upstream AI palsu: selalu balas pong
	aiSrv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"reply":"pong"}`))
	}))
	configs.AIServiceURL = aiSrv.URL

	var err error
	db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("koneksi DB test gagal: %v", err)
	}
	if err := db.AutoMigrate(
		&userModel.UserModel{},
		&semesterModel.SemesterModel{},
		&scheduleModel.ClassScheduleModel{},
		&assignmentModel.AssignmentModel{},
		&organizationModel.OrganizationModel{},
	); err != nil {
		log.Fatalf("migrasi gagal: %v", err)
	}

	app = fiber.New(fiber.Config{
		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,
	})
	routes.SetupRoutes(app, db)

	code := m.Run()
	aiSrv.Close()
	os.Exit(code)
}

/* ============================================
   helpers
============================================ */

func seedUser(t *testing.T) (userModel.UserModel, string) {
	t.Helper()
	u := userModel.UserModel{
		UserID:       uuid.New(),
		UserName:     "Tester",
		UserEmail:    fmt.Sprintf("tester-%s@example.com", uuid.NewString()[:8]),
		UserPassword: "$2a$10$bukan.hash.sungguhan.untuk.login",
		UserIsActive: true,
	}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	t.Cleanup(func() {
		db.Where("class_schedule_user_id = ?", u.UserID).Delete(&scheduleModel.ClassScheduleModel{})
		db.Where("assignment_user_id = ?", u.UserID).Delete(&assignmentModel.AssignmentModel{})
		db.Where("organization_user_id = ?", u.UserID).Delete(&organizationModel.OrganizationModel{})
		db.Where("semester_user_id = ?", u.UserID).Delete(&semesterModel.SemesterModel{})
		db.Where("user_id = ?", u.UserID).Delete(&userModel.UserModel{})
	})

	tok, err := authService.IssueAccessToken(u)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return u, tok
}

func doJSON(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()
	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, 15000)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

// envelope standar {success, message, data}
func decodeData(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var env struct {
		Success bool           `json:"success"`
		Message string         `json:"message"`
		Data    map[string]any `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return env.Data
}

func wantStatus(t *testing.T, resp *http.Response, want int) {
	t.Helper()
	if resp.StatusCode != want {
		raw, _ := io.ReadAll(resp.Body)
		t.Fatalf("status = %d, want %d; body: %s", resp.StatusCode, want, raw)
	}
}

/* ============================================
   auth: alur lengkap register → login → refresh
============================================ */

func TestRegisterLoginRefreshEndToEnd(t *testing.T) {
	email := fmt.Sprintf("alur-%s@example.com", uuid.NewString()[:8])
	t.Cleanup(func() {
		db.Where("user_email = ?", email).Delete(&userModel.UserModel{})
	})

	resp := doJSON(t, fiber.MethodPost, "/api/auth/register", "", fiber.Map{
		"user_name": "Mahasiswa Baru",
		"email":     email,
		"password":  "rahasia-banget",
	})
	wantStatus(t, resp, fiber.StatusCreated)

	// password salah → 401 dengan pesan generik
	resp = doJSON(t, fiber.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    email,
		"password": "salah-total",
	})
	wantStatus(t, resp, fiber.StatusUnauthorized)

	resp = doJSON(t, fiber.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    email,
		"password": "rahasia-banget",
	})
	wantStatus(t, resp, fiber.StatusOK)

	var refreshCookie string
	for _, sc := range resp.Header.Values("Set-Cookie") {
		if strings.HasPrefix(sc, "refresh_token=") {
			refreshCookie = sc
		}
	}
	if refreshCookie == "" {
		t.Fatal("cookie refresh_token tidak di-set saat login")
	}
	access := decodeData(t, resp)["access_token"].(string)

	resp = doJSON(t, fiber.MethodGet, "/api/auth/me", access, nil)
	wantStatus(t, resp, fiber.StatusOK)

	// rotasi: cookie lama menghasilkan pasangan token baru yang langsung berlaku
	req := httptest.NewRequest(fiber.MethodPost, "/api/auth/refresh-token", nil)
	req.Header.Set("Cookie", refreshCookie)
	raw, err := app.Test(req, 15000)
	if err != nil {
		t.Fatalf("POST /api/auth/refresh-token: %v", err)
	}
	wantStatus(t, raw, fiber.StatusOK)
	newAccess := decodeData(t, raw)["access_token"].(string)

	resp = doJSON(t, fiber.MethodGet, "/api/auth/me", newAccess, nil)
	wantStatus(t, resp, fiber.StatusOK)
	if got := decodeData(t, resp)["email"]; got != email {
		t.Errorf("profil me = %v, want %s", got, email)
	}
}

/* ============================================
   semester
============================================ */

func TestSemesterLifecycleDanKonflik(t *testing.T) {
	_, tok := seedUser(t)

	resp := doJSON(t, fiber.MethodPost, "/schedule/store-semester", tok, fiber.Map{"number": 1})
	wantStatus(t, resp, fiber.StatusCreated)
	semID := decodeData(t, resp)["semester_id"].(string)

	// nomor sama untuk user yang sama → konflik
	resp = doJSON(t, fiber.MethodPost, "/schedule/store-semester", tok, fiber.Map{"number": 1})
	wantStatus(t, resp, fiber.StatusConflict)

	resp = doJSON(t, fiber.MethodPatch, "/schedule/update-semester/"+semID, tok, fiber.Map{"number": 2})
	wantStatus(t, resp, fiber.StatusOK)

	// isi satu jadwal, lalu coba hapus semester → harus ditolak
	resp = doJSON(t, fiber.MethodPost, "/schedule/store-class", tok, fiber.Map{
		"name":        "Struktur Data",
		"day":         "Senin",
		"time":        "08:00-10:00",
		"lecturer":    "Bu Sari",
		"semester_id": semID,
	})
	wantStatus(t, resp, fiber.StatusCreated)
	classID := decodeData(t, resp)["class_schedule_id"].(string)

	resp = doJSON(t, fiber.MethodDelete, "/schedule/destroy-semester/"+semID, tok, nil)
	wantStatus(t, resp, fiber.StatusConflict)

	// kosongkan jadwal dulu, baru semester boleh dihapus
	resp = doJSON(t, fiber.MethodDelete, "/schedule/destroy-class/"+classID, tok, nil)
	wantStatus(t, resp, fiber.StatusOK)

	resp = doJSON(t, fiber.MethodDelete, "/schedule/destroy-semester/"+semID, tok, nil)
	wantStatus(t, resp, fiber.StatusOK)
}

func TestNomorSemesterSamaAntarUserBoleh(t *testing.T) {
	_, tokA := seedUser(t)
	_, tokB := seedUser(t)

	resp := doJSON(t, fiber.MethodPost, "/schedule/store-semester", tokA, fiber.Map{"number": 3})
	wantStatus(t, resp, fiber.StatusCreated)

	resp = doJSON(t, fiber.MethodPost, "/schedule/store-semester", tokB, fiber.Map{"number": 3})
	wantStatus(t, resp, fiber.StatusCreated)
}

/* ============================================
   ownership guard
============================================ */

func TestUpdateMilikUserLainDitolak(t *testing.T) {
	userA, tokA := seedUser(t)
	_, tokB := seedUser(t)

	resp := doJSON(t, fiber.MethodPost, "/schedule/store-assignment", tokA, fiber.Map{
		"name":     "Laporan Praktikum",
		"deadline": "2026-09-15",
	})
	wantStatus(t, resp, fiber.StatusCreated)
	asgID := decodeData(t, resp)["assignment_id"].(string)

	resp = doJSON(t, fiber.MethodPatch, "/schedule/update-assignment/"+asgID, tokB, fiber.Map{
		"name": "dibajak",
	})
	wantStatus(t, resp, fiber.StatusForbidden)

	// baris tidak boleh berubah
	var ent assignmentModel.AssignmentModel
	if err := db.Where("assignment_id = ?", asgID).First(&ent).Error; err != nil {
		t.Fatalf("ambil tugas: %v", err)
	}
	if ent.AssignmentName != "Laporan Praktikum" {
		t.Errorf("nama berubah jadi %q setelah akses ditolak", ent.AssignmentName)
	}
	if ent.AssignmentUserID != userA.UserID {
		t.Errorf("pemilik berubah")
	}
}

func TestReferensiSemesterUserLainDitolak(t *testing.T) {
	_, tokA := seedUser(t)
	_, tokB := seedUser(t)

	resp := doJSON(t, fiber.MethodPost, "/schedule/store-semester", tokA, fiber.Map{"number": 5})
	wantStatus(t, resp, fiber.StatusCreated)
	semA := decodeData(t, resp)["semester_id"].(string)

	// user B menunjuk semester milik A → validasi gagal, bukan 403
	resp = doJSON(t, fiber.MethodPost, "/schedule/store-class", tokB, fiber.Map{
		"name":        "Kalkulus",
		"day":         "Selasa",
		"time":        "10:00-12:00",
		"lecturer":    "Pak Budi",
		"semester_id": semA,
	})
	wantStatus(t, resp, fiber.StatusUnprocessableEntity)
}

/* ============================================
   tugas: siklus status
============================================ */

func TestToggleStatusTugasBerputar(t *testing.T) {
	_, tok := seedUser(t)

	resp := doJSON(t, fiber.MethodPost, "/schedule/store-assignment", tok, fiber.Map{
		"name":     "Tugas Besar",
		"deadline": "2026-10-01",
	})
	wantStatus(t, resp, fiber.StatusCreated)
	data := decodeData(t, resp)
	asgID := data["assignment_id"].(string)
	if data["status"] != "pending" {
		t.Fatalf("status awal = %v, want pending", data["status"])
	}

	want := []string{"in-progress", "completed", "pending"}
	for i, w := range want {
		resp = doJSON(t, fiber.MethodPatch, "/schedule/toggle-assignment/"+asgID, tok, nil)
		wantStatus(t, resp, fiber.StatusOK)
		if got := decodeData(t, resp)["status"]; got != w {
			t.Fatalf("toggle ke-%d: status = %v, want %s", i+1, got, w)
		}
	}
}

/* ============================================
   dashboard: resolusi semester aktif
============================================ */

func TestDashboardMemilihSemesterDariQueryDanCookie(t *testing.T) {
	_, tok := seedUser(t)

	resp := doJSON(t, fiber.MethodPost, "/schedule/store-semester", tok, fiber.Map{"number": 1})
	wantStatus(t, resp, fiber.StatusCreated)
	first := decodeData(t, resp)["semester_id"].(string)

	resp = doJSON(t, fiber.MethodPost, "/schedule/store-semester", tok, fiber.Map{"number": 2})
	wantStatus(t, resp, fiber.StatusCreated)
	second := decodeData(t, resp)["semester_id"].(string)

	// tanpa query & cookie: jatuh ke semester pertama dibuat
	resp = doJSON(t, fiber.MethodGet, "/schedule/", tok, nil)
	wantStatus(t, resp, fiber.StatusOK)
	cur := decodeData(t, resp)["current_semester"].(map[string]any)
	if cur["semester_id"] != first {
		t.Fatalf("fallback = %v, want %s", cur["semester_id"], first)
	}

	// query memilih semester kedua dan harus tersimpan di cookie
	req := httptest.NewRequest(fiber.MethodGet, "/schedule/?semester="+second, nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	raw, err := app.Test(req, 15000)
	if err != nil {
		t.Fatalf("GET /schedule: %v", err)
	}
	wantStatus(t, raw, fiber.StatusOK)
	cur = decodeData(t, raw)["current_semester"].(map[string]any)
	if cur["semester_id"] != second {
		t.Fatalf("query pilih %v, want %s", cur["semester_id"], second)
	}

	var cookie string
	for _, sc := range raw.Header.Values("Set-Cookie") {
		if bytes.HasPrefix([]byte(sc), []byte("selected_semester=")) {
			cookie = sc
		}
	}
	if cookie == "" {
		t.Fatal("cookie selected_semester tidak di-set")
	}

	// request berikutnya tanpa query: cookie yang menentukan
	req = httptest.NewRequest(fiber.MethodGet, "/schedule/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	req.Header.Set("Cookie", cookie)
	raw, err = app.Test(req, 15000)
	if err != nil {
		t.Fatalf("GET /schedule (cookie): %v", err)
	}
	wantStatus(t, raw, fiber.StatusOK)
	cur = decodeData(t, raw)["current_semester"].(map[string]any)
	if cur["semester_id"] != second {
		t.Fatalf("cookie pilih %v, want %s", cur["semester_id"], second)
	}
}

/* ============================================
   hapus akun: semua data ikut terhapus
============================================ */

func TestHapusAkunMembersihkanSemuaData(t *testing.T) {
	u, tok := seedUser(t)

	resp := doJSON(t, fiber.MethodPost, "/schedule/store-semester", tok, fiber.Map{"number": 7})
	wantStatus(t, resp, fiber.StatusCreated)
	semID := decodeData(t, resp)["semester_id"].(string)

	resp = doJSON(t, fiber.MethodPost, "/schedule/store-class", tok, fiber.Map{
		"name":        "Jaringan Komputer",
		"day":         "Rabu",
		"time":        "13:00-15:00",
		"lecturer":    "Pak Dimas",
		"semester_id": semID,
	})
	wantStatus(t, resp, fiber.StatusCreated)

	resp = doJSON(t, fiber.MethodPost, "/schedule/store-assignment", tok, fiber.Map{
		"name":     "Quiz 1",
		"deadline": "2026-09-20",
	})
	wantStatus(t, resp, fiber.StatusCreated)

	resp = doJSON(t, fiber.MethodPost, "/schedule/store-organization", tok, fiber.Map{
		"name": "Himpunan Mahasiswa Informatika",
	})
	wantStatus(t, resp, fiber.StatusCreated)

	resp = doJSON(t, fiber.MethodDelete, "/api/auth/me", tok, nil)
	wantStatus(t, resp, fiber.StatusOK)

	var cnt int64
	db.Model(&userModel.UserModel{}).Where("user_id = ?", u.UserID).Count(&cnt)
	if cnt != 0 {
		t.Error("user masih ada setelah hapus akun")
	}
	for name, q := range map[string]*gorm.DB{
		"semesters":       db.Model(&semesterModel.SemesterModel{}).Where("semester_user_id = ?", u.UserID),
		"class_schedules": db.Model(&scheduleModel.ClassScheduleModel{}).Where("class_schedule_user_id = ?", u.UserID),
		"assignments":     db.Model(&assignmentModel.AssignmentModel{}).Where("assignment_user_id = ?", u.UserID),
		"organizations":   db.Model(&organizationModel.OrganizationModel{}).Where("organization_user_id = ?", u.UserID),
	} {
		var n int64
		q.Count(&n)
		if n != 0 {
			t.Errorf("%s masih menyisakan %d baris", name, n)
		}
	}
}

/* ============================================
   chat proxy
============================================ */

func TestChatProxyMeneruskanBalasanUpstream(t *testing.T) {
	_, tok := seedUser(t)

	resp := doJSON(t, fiber.MethodPost, "/chat/send", tok, fiber.Map{"message": "halo"})
	wantStatus(t, resp, fiber.StatusOK)
	raw, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if string(raw) != `{"reply":"pong"}` {
		t.Errorf("body relay = %s", raw)
	}
}

func TestChatButuhLogin(t *testing.T) {
	resp := doJSON(t, fiber.MethodPost, "/chat/send", "", fiber.Map{"message": "halo"})
	wantStatus(t, resp, fiber.StatusUnauthorized)
}
