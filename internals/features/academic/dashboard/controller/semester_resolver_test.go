package controller

import (
	"testing"
	"time"

	"github.com/google/uuid"

	semesterModel "kuliahku_backend/internals/features/academic/semesters/model"
)

// bikin daftar semester terurut created_at ASC dengan nomor acak
func buildSemesters(numbers ...int) []semesterModel.SemesterModel {
	base := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	out := make([]semesterModel.SemesterModel, 0, len(numbers))
	for i, n := range numbers {
		out = append(out, semesterModel.SemesterModel{
			SemesterID:        uuid.New(),
			SemesterUserID:    uuid.New(),
			SemesterNumber:    n,
			SemesterCreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}
	return out
}

func TestResolveSelectedSemester_FallbackKeSemesterPertamaDibuat(t *testing.T) {
	// nomor [3,1,5] urut pembuatan: fallback = yang PERTAMA DIBUAT (nomor 3),
	// bukan nomor terkecil
	owned := buildSemesters(3, 1, 5)
	got := ResolveSelectedSemester("", "", owned)
	if got == nil {
		t.Fatal("expected semester, got nil")
	}
	if got.SemesterNumber != 3 {
		t.Errorf("fallback memilih nomor %d, want 3 (first-created)", got.SemesterNumber)
	}
}

func TestResolveSelectedSemester_QueryMenangAtasCookie(t *testing.T) {
	owned := buildSemesters(1, 2, 3)
	query := owned[2].SemesterID.String()
	cookie := owned[1].SemesterID.String()
	got := ResolveSelectedSemester(query, cookie, owned)
	if got == nil || got.SemesterID != owned[2].SemesterID {
		t.Errorf("query param harus menang atas cookie")
	}
}

func TestResolveSelectedSemester_CookieDipakaiTanpaQuery(t *testing.T) {
	owned := buildSemesters(1, 2)
	cookie := owned[1].SemesterID.String()
	got := ResolveSelectedSemester("", cookie, owned)
	if got == nil || got.SemesterID != owned[1].SemesterID {
		t.Errorf("cookie harus dipakai saat query kosong")
	}
}

func TestResolveSelectedSemester_NilaiAsingJatuhKeFallback(t *testing.T) {
	owned := buildSemesters(1, 2)
	cases := []struct {
		query, cookie string
	}{
		{"bukan-uuid", ""},
		{uuid.NewString(), ""},          // uuid valid tapi bukan milik user
		{"", uuid.NewString()},          // cookie basi
		{"bukan-uuid", uuid.NewString()},
	}
	for _, tc := range cases {
		got := ResolveSelectedSemester(tc.query, tc.cookie, owned)
		if got == nil || got.SemesterID != owned[0].SemesterID {
			t.Errorf("(%q,%q): harus jatuh ke first-created", tc.query, tc.cookie)
		}
	}
}

func TestResolveSelectedSemester_TanpaSemester(t *testing.T) {
	if got := ResolveSelectedSemester(uuid.NewString(), uuid.NewString(), nil); got != nil {
		t.Errorf("user tanpa semester harus menghasilkan nil, got %+v", got)
	}
}
