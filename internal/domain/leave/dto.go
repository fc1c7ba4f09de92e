package leave

import (
	"context"

	"github.com/hris-system/hris-backend-go/internal/pkg/validator"
)

type CreateRequestRequest struct {
	Type      string `json:"type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

func (r *CreateRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if !IsValidRequestType(r.Type) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be one of annual, permit, sick"})
	}
	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a date in YYYY-MM-DD format"})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a date in YYYY-MM-DD format"})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ProcessRequestRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"` // approved or rejected
	Note   string `json:"note,omitempty"`
}

func (r *ProcessRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != string(StatusApproved) && r.Status != string(StatusRejected) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be 'approved' or 'rejected'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpsertConfigRequest struct {
	DivisionID      string `json:"division_id"`
	AnnualQuotaDays int    `json:"annual_quota_days"`
	Year            int    `json:"year"`
}

func (r *UpsertConfigRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.DivisionID) {
		errs = append(errs, validator.ValidationError{Field: "division_id", Message: "is required"})
	}
	if r.AnnualQuotaDays < 0 {
		errs = append(errs, validator.ValidationError{Field: "annual_quota_days", Message: "must be non-negative"})
	}
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be a valid year"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ConfigResponse struct {
	ID              string  `json:"id"`
	DivisionID      string  `json:"division_id"`
	DivisionName    *string `json:"division_name,omitempty"`
	AnnualQuotaDays int     `json:"annual_quota_days"`
	Year            int     `json:"year"`
}

type RequestResponse struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	UserName     *string `json:"user_name,omitempty"`
	DivisionName *string `json:"division_name,omitempty"`
	Type         string  `json:"type"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	TotalDays    int     `json:"total_days"`
	Reason       string  `json:"reason"`
	Status       string  `json:"status"`
	ProcessedAt  *string `json:"processed_at,omitempty"`
	ProcessNote  *string `json:"process_note,omitempty"`
	// OverQuota is set on approval responses when the approval pushed the
	// employee's balance below zero.
	OverQuota bool `json:"over_quota,omitempty"`
}

type BalanceResponse struct {
	Year            int `json:"year"`
	AnnualQuotaDays int `json:"annual_quota_days"`
	UsedDays        int `json:"used_days"`
	RemainingDays   int `json:"remaining_days"`
}

type ConfigService interface {
	ListByYear(ctx context.Context, year int) ([]ConfigResponse, error)
	Upsert(ctx context.Context, req UpsertConfigRequest) (ConfigResponse, error)
}

type LeaveService interface {
	CreateRequest(ctx context.Context, req CreateRequestRequest) (RequestResponse, error)
	GetMyBalance(ctx context.Context, year int) (BalanceResponse, error)
	GetMyHistory(ctx context.Context) ([]RequestResponse, error)
	ListAll(ctx context.Context) ([]RequestResponse, error)
	// Process approves or rejects a pending request. Approval that pushes
	// the balance negative is permitted but flagged in the response.
	Process(ctx context.Context, req ProcessRequestRequest) (RequestResponse, error)
}
