package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// RuleKind enum
type RuleKind string

const (
	RuleKindFixed      RuleKind = "fixed"
	RuleKindPercentage RuleKind = "percentage"
)

func IsValidRuleKind(k string) bool {
	return RuleKind(k) == RuleKindFixed || RuleKind(k) == RuleKindPercentage
}

type RuleStatus string

const (
	RuleStatusActive  RuleStatus = "active"
	RuleStatusRetired RuleStatus = "retired"
)

// DeductionRule is applied flat to every employee in a payroll run. Rules are
// retired, never deleted, because historical payroll rows reference them.
type DeductionRule struct {
	ID          string
	Name        string
	Kind        RuleKind
	Value       decimal.Decimal // amount for fixed, percent for percentage
	Description *string
	Status      RuleStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ConfigStatus string

const (
	ConfigStatusActive  ConfigStatus = "active"
	ConfigStatusRetired ConfigStatus = "retired"
)

// SalaryConfig is a division's base salary. One active row per division; the
// latest effective date wins.
type SalaryConfig struct {
	ID            string
	DivisionID    string
	BaseSalary    decimal.Decimal
	EffectiveDate time.Time
	Status        ConfigStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined fields
	DivisionName *string
}

// RecordStatus enum
type RecordStatus string

const (
	RecordStatusDraft         RecordStatus = "draft"
	RecordStatusSentToFinance RecordStatus = "sent_to_finance"
	RecordStatusPaid          RecordStatus = "paid"
)

// Record is one employee's payroll result for one period. Drafts may be
// regenerated freely; once sent to finance the row is locked for HR, and once
// paid it is immutable.
type Record struct {
	ID              string
	UserID          string
	Month           int
	Year            int
	BaseSalary      decimal.Decimal
	TotalDeductions decimal.Decimal
	NetPay          decimal.Decimal
	Status          RecordStatus
	SentToFinanceAt *time.Time
	PaidAt          *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined fields
	UserName     *string
	DivisionName *string
	BankName     *string
	BankAccount  *string
}

// RuleContribution is one rule's share of a deduction total.
type RuleContribution struct {
	RuleID   string
	RuleName string
	Kind     RuleKind
	Amount   decimal.Decimal
}

// DeductionResult is the outcome of applying the active rule set to a base
// salary. TotalDeduction is capped at the base salary so net pay never goes
// negative; Breakdown keeps the raw per-rule amounts.
type DeductionResult struct {
	TotalDeduction decimal.Decimal
	NetPay         decimal.Decimal
	Breakdown      []RuleContribution
}

// DivisionSummary aggregates net pay per division for a period.
type DivisionSummary struct {
	DivisionID    string
	DivisionName  string
	EmployeeCount int
	TotalNetPay   decimal.Decimal
}
