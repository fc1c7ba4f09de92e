package attendance

import "time"

// ConfigStatus marks geofence config versions. Superseded configs are
// retired, never deleted, so attendance history stays attributable.
type ConfigStatus string

const (
	ConfigStatusActive  ConfigStatus = "active"
	ConfigStatusRetired ConfigStatus = "retired"
)

// Config is the office geofence and cutoff configuration. At most one row is
// active at any time; activating a new config retires all others inside one
// transaction.
type Config struct {
	ID              string
	MaxClockIn      string // "15:04:05", latest on-time clock-in
	MinClockOut     string // earliest clock-out that is not an early leave
	OfficeLatitude  float64
	OfficeLongitude float64
	RadiusMeters    int
	Status          ConfigStatus
	CreatedAt       time.Time
}

// DefaultConfig is used until an administrator saves a geofence config.
func DefaultConfig() Config {
	return Config{
		MaxClockIn:      "09:00:00",
		MinClockOut:     "17:00:00",
		OfficeLatitude:  -6.2,
		OfficeLongitude: 106.816666,
		RadiusMeters:    100,
		Status:          ConfigStatusActive,
	}
}

type Status string

const (
	StatusPresent Status = "present"
	StatusLate    Status = "late"
	StatusAbsent  Status = "absent"
	StatusPermit  Status = "permit"
	StatusOnLeave Status = "on_leave"
)

// Attendance is one employee's record for one calendar date. Created on the
// first clock-in of the day, completed on clock-out.
type Attendance struct {
	ID                string
	UserID            string
	Date              time.Time
	ClockIn           *time.Time
	ClockInLatitude   *float64
	ClockInLongitude  *float64
	ClockOut          *time.Time
	ClockOutLatitude  *float64
	ClockOutLongitude *float64
	Status            Status
	EarlyLeave        bool
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// Joined fields
	UserName     *string
	DivisionName *string
}
