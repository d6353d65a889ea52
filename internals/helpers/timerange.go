// file: internals/helpers/timerange.go
package helper

import (
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var hhmmRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// ParseTimeRange memecah string gabungan "HH:MM-HH:MM" (input form jadwal)
// menjadi jam mulai & jam selesai. Split di tanda '-' PERTAMA.
// Bagian akhir boleh kosong: jam selesai dianggap tidak diisi (bukan error).
func ParseTimeRange(s string) (start, end string, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", "", fiber.NewError(fiber.StatusUnprocessableEntity, "Jam kuliah wajib diisi")
	}

	start = s
	if i := strings.Index(s, "-"); i >= 0 {
		start = strings.TrimSpace(s[:i])
		end = strings.TrimSpace(s[i+1:])
	}

	if !hhmmRe.MatchString(start) {
		return "", "", fiber.NewError(fiber.StatusUnprocessableEntity, "Format jam mulai harus HH:MM")
	}
	if end != "" && !hhmmRe.MatchString(end) {
		return "", "", fiber.NewError(fiber.StatusUnprocessableEntity, "Format jam selesai harus HH:MM")
	}
	return start, end, nil
}
