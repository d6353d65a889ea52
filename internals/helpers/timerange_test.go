package helper

import "testing"

func TestParseTimeRange(t *testing.T) {
	cases := []struct {
		in        string
		wantStart string
		wantEnd   string
		wantErr   bool
	}{
		{"08:00-10:00", "08:00", "10:00", false},
		{" 08:00 - 10:00 ", "08:00", "10:00", false},
		// jam selesai boleh kosong (perilaku form lama dipertahankan)
		{"08:00", "08:00", "", false},
		{"08:00-", "08:00", "", false},
		{"", "", "", true},
		{"8:00-10:00", "", "", true},
		{"08:00-25:00", "", "", true},
		{"pagi-siang", "", "", true},
	}

	for _, tc := range cases {
		start, end, err := ParseTimeRange(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseTimeRange(%q): expected error, got start=%q end=%q", tc.in, start, end)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTimeRange(%q): unexpected error: %v", tc.in, err)
			continue
		}
		if start != tc.wantStart || end != tc.wantEnd {
			t.Errorf("ParseTimeRange(%q) = (%q,%q), want (%q,%q)", tc.in, start, end, tc.wantStart, tc.wantEnd)
		}
	}
}
