package payroll

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/hris-system/hris-backend-go/internal/pkg/validator"
)

// ========== DEDUCTION RULE DTOs ==========

type CreateRuleRequest struct {
	Name        string          `json:"name"`
	Kind        string          `json:"kind"` // "fixed" or "percentage"
	Value       decimal.Decimal `json:"value"`
	Description *string         `json:"description,omitempty"`
}

func (r *CreateRuleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !IsValidRuleKind(r.Kind) {
		errs = append(errs, validator.ValidationError{Field: "kind", Message: "must be 'fixed' or 'percentage'"})
	}
	if r.Value.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "value", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateRuleRequest struct {
	ID          string           `json:"-"`
	Name        *string          `json:"name,omitempty"`
	Kind        *string          `json:"kind,omitempty"`
	Value       *decimal.Decimal `json:"value,omitempty"`
	Description *string          `json:"description,omitempty"`
}

func (r *UpdateRuleRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must not be empty"})
	}
	if r.Kind != nil && !IsValidRuleKind(*r.Kind) {
		errs = append(errs, validator.ValidationError{Field: "kind", Message: "must be 'fixed' or 'percentage'"})
	}
	if r.Value != nil && r.Value.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "value", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RuleResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Kind        string          `json:"kind"`
	Value       decimal.Decimal `json:"value"`
	Description *string         `json:"description,omitempty"`
	Status      string          `json:"status"`
}

// ========== SALARY CONFIG DTOs ==========

type UpsertSalaryConfigRequest struct {
	DivisionID    string          `json:"division_id"`
	BaseSalary    decimal.Decimal `json:"base_salary"`
	EffectiveDate string          `json:"effective_date,omitempty"` // defaults to today
}

func (r *UpsertSalaryConfigRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.DivisionID) {
		errs = append(errs, validator.ValidationError{Field: "division_id", Message: "is required"})
	}
	if r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be non-negative"})
	}
	if r.EffectiveDate != "" {
		if _, ok := validator.IsValidDate(r.EffectiveDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "effective_date", Message: "must be a date in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SalaryConfigResponse struct {
	ID            string          `json:"id,omitempty"`
	DivisionID    string          `json:"division_id"`
	DivisionName  *string         `json:"division_name,omitempty"`
	BaseSalary    decimal.Decimal `json:"base_salary"`
	EffectiveDate string          `json:"effective_date,omitempty"`
}

// ========== PAYROLL RECORD DTOs ==========

type PeriodRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *PeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be a valid year"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordResponse struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id"`
	UserName        *string         `json:"user_name,omitempty"`
	DivisionName    *string         `json:"division_name,omitempty"`
	Month           int             `json:"month"`
	Year            int             `json:"year"`
	BaseSalary      decimal.Decimal `json:"base_salary"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetPay          decimal.Decimal `json:"net_pay"`
	Status          string          `json:"status"`
	BankName        *string         `json:"bank_name,omitempty"`
	BankAccount     *string         `json:"bank_account,omitempty"`
	PaidAt          *string         `json:"paid_at,omitempty"`
	// MissingSalaryConfig flags a draft generated for a division without a
	// base salary entry. A data-quality gap, not an error.
	MissingSalaryConfig bool `json:"missing_salary_config,omitempty"`
}

type SummaryResponse struct {
	Month         int               `json:"month"`
	Year          int               `json:"year"`
	EmployeeCount int               `json:"employee_count"`
	TotalNetPay   decimal.Decimal   `json:"total_net_pay"`
	Divisions     []DivisionSummary `json:"divisions"`
}

// ========== SERVICE INTERFACES ==========

type RuleService interface {
	Create(ctx context.Context, req CreateRuleRequest) (RuleResponse, error)
	List(ctx context.Context) ([]RuleResponse, error)
	Update(ctx context.Context, req UpdateRuleRequest) (RuleResponse, error)
	Retire(ctx context.Context, id string) error
}

type SalaryConfigService interface {
	// List returns an entry for every active division, zero-filled when no
	// config exists yet.
	List(ctx context.Context) ([]SalaryConfigResponse, error)
	Upsert(ctx context.Context, req UpsertSalaryConfigRequest) (SalaryConfigResponse, error)
}

type PayrollService interface {
	// GenerateDraft builds the period's draft records, replacing previous
	// drafts. Fails with ErrPeriodLocked when the period has submitted or
	// paid records.
	GenerateDraft(ctx context.Context, req PeriodRequest) ([]RecordResponse, error)
	ListDraft(ctx context.Context, month, year int) ([]RecordResponse, error)
	SubmitToFinance(ctx context.Context, req PeriodRequest) (int, error)
	ListPendingPayments(ctx context.Context) ([]RecordResponse, error)
	MarkPaid(ctx context.Context, id string) (RecordResponse, error)
	ListPaymentHistory(ctx context.Context) ([]RecordResponse, error)
	Summary(ctx context.Context, month, year int) (SummaryResponse, error)

	// ListMyPayslips returns the calling employee's paid records, newest
	// period first.
	ListMyPayslips(ctx context.Context, limit int) ([]RecordResponse, error)
	// GetMyPayslip returns one of the calling employee's records by id.
	GetMyPayslip(ctx context.Context, id string) (RecordResponse, error)
}
