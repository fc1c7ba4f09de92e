package attendance

import (
	"time"

	"github.com/hris-system/hris-backend-go/internal/domain/attendance"
)

const timeOfDayLayout = "15:04:05"

// ResolveClockInStatus compares the clock-in time of day against the
// configured cutoff. At or before the cutoff is present, after is late.
func ResolveClockInStatus(clockIn time.Time, maxClockIn string) attendance.Status {
	if clockIn.Format(timeOfDayLayout) > maxClockIn {
		return attendance.StatusLate
	}
	return attendance.StatusPresent
}

// IsEarlyLeave reports whether a clock-out happened before the configured
// minimum clock-out time.
func IsEarlyLeave(clockOut time.Time, minClockOut string) bool {
	return clockOut.Format(timeOfDayLayout) < minClockOut
}
