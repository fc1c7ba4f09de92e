package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleHR       Role = "hr"
	RoleFinance  Role = "finance"
	RoleEmployee Role = "employee"
)

func IsValidRole(r string) bool {
	switch Role(r) {
	case RoleAdmin, RoleHR, RoleFinance, RoleEmployee:
		return true
	}
	return false
}

type Status string

const (
	StatusActive  Status = "active"
	StatusRetired Status = "retired"
)

type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	Role         Role
	DivisionID   *string
	BankName     *string
	BankAccount  *string
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined fields
	DivisionName *string
}
