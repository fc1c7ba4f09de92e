package leave

import (
	"testing"
	"time"
)

func TestDaysInclusive(t *testing.T) {
	day := func(s string) time.Time {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			t.Fatalf("bad date %q: %v", s, err)
		}
		return d
	}

	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"single day", "2026-01-10", "2026-01-10", 1},
		{"three days", "2026-01-10", "2026-01-12", 3},
		{"across month boundary", "2026-01-30", "2026-02-02", 4},
		{"full week", "2026-03-02", "2026-03-08", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DaysInclusive(day(tt.start), day(tt.end))
			if got != tt.want {
				t.Errorf("DaysInclusive(%s, %s) = %d, want %d", tt.start, tt.end, got, tt.want)
			}
		})
	}
}
