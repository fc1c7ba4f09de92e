package division

import "time"

type Status string

const (
	StatusActive  Status = "active"
	StatusRetired Status = "retired"
)

type Division struct {
	ID        string
	Name      string
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	EmployeeCount *int
}
