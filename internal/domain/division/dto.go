package division

import (
	"context"

	"github.com/hris-system/hris-backend-go/internal/pkg/validator"
)

type UpsertDivisionRequest struct {
	Name string `json:"name"`
}

func (r *UpsertDivisionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DivisionResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Status        string `json:"status"`
	EmployeeCount *int   `json:"employee_count,omitempty"`
}

type DivisionService interface {
	Create(ctx context.Context, req UpsertDivisionRequest) (DivisionResponse, error)
	List(ctx context.Context) ([]DivisionResponse, error)
	Rename(ctx context.Context, id string, req UpsertDivisionRequest) (DivisionResponse, error)
	// Retire soft-deletes the division; members keep their history.
	Retire(ctx context.Context, id string) error
}
