package model

import "testing"

func TestNextStatusCycle(t *testing.T) {
	cases := []struct {
		current string
		want    string
	}{
		{StatusPending, StatusInProgress},
		{StatusInProgress, StatusCompleted},
		{StatusCompleted, StatusPending},
		// nilai liar jatuh ke pending
		{"done", StatusPending},
		{"", StatusPending},
		{"PENDING", StatusPending},
	}
	for _, tc := range cases {
		if got := NextStatus(tc.current); got != tc.want {
			t.Errorf("NextStatus(%q) = %q, want %q", tc.current, got, tc.want)
		}
	}
}

func TestNextStatusIsTotalOverCycle(t *testing.T) {
	// tiga kali toggle dari state manapun harus kembali ke state semula
	for _, start := range []string{StatusPending, StatusInProgress, StatusCompleted} {
		s := start
		for i := 0; i < 3; i++ {
			s = NextStatus(s)
			if !ValidStatus(s) {
				t.Fatalf("NextStatus keluar dari enumerasi: %q", s)
			}
		}
		if s != start {
			t.Errorf("3x NextStatus dari %q berakhir di %q", start, s)
		}
	}
}

func TestValidStatus(t *testing.T) {
	for _, ok := range []string{StatusPending, StatusInProgress, StatusCompleted} {
		if !ValidStatus(ok) {
			t.Errorf("ValidStatus(%q) = false", ok)
		}
	}
	for _, bad := range []string{"done", "", "selesai", "in progress"} {
		if ValidStatus(bad) {
			t.Errorf("ValidStatus(%q) = true", bad)
		}
	}
}
