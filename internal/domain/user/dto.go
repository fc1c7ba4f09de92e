package user

import (
	"context"

	"github.com/hris-system/hris-backend-go/internal/pkg/validator"
)

type CreateUserRequest struct {
	Email       string  `json:"email"`
	Name        string  `json:"name"`
	Password    string  `json:"password"`
	Role        string  `json:"role"`
	DivisionID  *string `json:"division_id,omitempty"`
	BankName    *string `json:"bank_name,omitempty"`
	BankAccount *string `json:"bank_account,omitempty"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "must be at least 8 characters"})
	}
	if !IsValidRole(r.Role) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "must be one of admin, hr, finance, employee"})
	}
	if r.BankAccount != nil && !validator.IsNumeric(*r.BankAccount) {
		errs = append(errs, validator.ValidationError{Field: "bank_account", Message: "must contain digits only"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateUserRequest struct {
	ID          string  `json:"-"`
	Name        *string `json:"name,omitempty"`
	Role        *string `json:"role,omitempty"`
	DivisionID  *string `json:"division_id,omitempty"`
	BankName    *string `json:"bank_name,omitempty"`
	BankAccount *string `json:"bank_account,omitempty"`
	Status      *string `json:"status,omitempty"`
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must not be empty"})
	}
	if r.Role != nil && !IsValidRole(*r.Role) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "must be one of admin, hr, finance, employee"})
	}
	if r.BankAccount != nil && !validator.IsNumeric(*r.BankAccount) {
		errs = append(errs, validator.ValidationError{Field: "bank_account", Message: "must contain digits only"})
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{string(StatusActive), string(StatusRetired)}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be 'active' or 'retired'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UserResponse struct {
	ID           string  `json:"id"`
	Email        string  `json:"email"`
	Name         string  `json:"name"`
	Role         string  `json:"role"`
	DivisionID   *string `json:"division_id,omitempty"`
	DivisionName *string `json:"division_name,omitempty"`
	Status       string  `json:"status"`
}

type UserService interface {
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	List(ctx context.Context) ([]UserResponse, error)
	// Update changes profile, role, division, bank details, or status.
	// Setting status to retired soft-deletes the account.
	Update(ctx context.Context, req UpdateUserRequest) (UserResponse, error)
}
