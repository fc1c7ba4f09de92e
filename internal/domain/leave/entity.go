package leave

import "time"

// DefaultAnnualQuotaDays applies when a division has no leave config for the
// requested year.
const DefaultAnnualQuotaDays = 12

type ConfigStatus string

const (
	ConfigStatusActive  ConfigStatus = "active"
	ConfigStatusRetired ConfigStatus = "retired"
)

// Config is a division's annual leave quota for one year.
type Config struct {
	ID              string
	DivisionID      string
	AnnualQuotaDays int
	Year            int
	Status          ConfigStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined fields
	DivisionName *string
}

type RequestType string

const (
	TypeAnnual RequestType = "annual"
	TypePermit RequestType = "permit"
	TypeSick   RequestType = "sick"
)

func IsValidRequestType(t string) bool {
	switch RequestType(t) {
	case TypeAnnual, TypePermit, TypeSick:
		return true
	}
	return false
}

type RequestStatus string

const (
	StatusPending  RequestStatus = "pending"
	StatusApproved RequestStatus = "approved"
	StatusRejected RequestStatus = "rejected"
)

// Request is a leave request. Pending requests transition once, to approved
// or rejected; both are terminal.
type Request struct {
	ID          string
	UserID      string
	Type        RequestType
	StartDate   time.Time
	EndDate     time.Time
	TotalDays   int
	Reason      string
	Status      RequestStatus
	ProcessedBy *string
	ProcessedAt *time.Time
	ProcessNote *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields
	UserName     *string
	DivisionName *string
}

// DaysInclusive counts calendar days in [start, end], both ends included.
func DaysInclusive(start, end time.Time) int {
	start = start.Truncate(24 * time.Hour)
	end = end.Truncate(24 * time.Hour)
	return int(end.Sub(start).Hours()/24) + 1
}

// Balance is derived on demand, never stored: quota minus approved annual
// leave days for the year.
type Balance struct {
	UserID          string
	Year            int
	AnnualQuotaDays int
	UsedDays        int
	RemainingDays   int
}
