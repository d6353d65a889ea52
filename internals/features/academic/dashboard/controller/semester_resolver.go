// file: internals/features/academic/dashboard/controller/semester_resolver.go
package controller

import (
	"strings"

	"github.com/google/uuid"

	semesterModel "kuliahku_backend/internals/features/academic/semesters/model"
)

// ResolveSelectedSemester menentukan semester aktif dari tiga sumber,
// urutan prioritas: (1) query param request ini, (2) cookie sesi,
// (3) semester yang PERTAMA DIBUAT (urutan created_at, bukan nomor terkecil).
//
// Nilai query/cookie yang bukan UUID atau tidak merujuk semester milik user
// dianggap tidak ada dan jatuh ke fallback berikutnya. Fungsi murni supaya
// gampang dites tanpa DB; owned harus sudah terurut created_at ASC.
func ResolveSelectedSemester(queryVal, cookieVal string, owned []semesterModel.SemesterModel) *semesterModel.SemesterModel {
	if len(owned) == 0 {
		return nil
	}

	if s := pickOwned(queryVal, owned); s != nil {
		return s
	}
	if s := pickOwned(cookieVal, owned); s != nil {
		return s
	}
	return &owned[0]
}

func pickOwned(raw string, owned []semesterModel.SemesterModel) *semesterModel.SemesterModel {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	for i := range owned {
		if owned[i].SemesterID == id {
			return &owned[i]
		}
	}
	return nil
}
