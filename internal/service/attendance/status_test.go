package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hris-system/hris-backend-go/internal/domain/attendance"
)

func at(hour, min, sec int) time.Time {
	return time.Date(2026, 3, 16, hour, min, sec, 0, time.Local)
}

func TestResolveClockInStatus(t *testing.T) {
	tests := []struct {
		name       string
		clockIn    time.Time
		maxClockIn string
		want       attendance.Status
	}{
		{"well before cutoff", at(8, 15, 0), "09:00:00", attendance.StatusPresent},
		{"exactly at cutoff", at(9, 0, 0), "09:00:00", attendance.StatusPresent},
		{"one second late", at(9, 0, 1), "09:00:00", attendance.StatusLate},
		{"hours late", at(13, 30, 0), "09:00:00", attendance.StatusLate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveClockInStatus(tt.clockIn, tt.maxClockIn))
		})
	}
}

func TestIsEarlyLeave(t *testing.T) {
	tests := []struct {
		name        string
		clockOut    time.Time
		minClockOut string
		want        bool
	}{
		{"before minimum", at(16, 59, 59), "17:00:00", true},
		{"exactly at minimum", at(17, 0, 0), "17:00:00", false},
		{"after minimum", at(18, 30, 0), "17:00:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsEarlyLeave(tt.clockOut, tt.minClockOut))
		})
	}
}
