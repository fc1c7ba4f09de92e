package payroll

import "context"

type RuleRepository interface {
	Create(ctx context.Context, rule DeductionRule) (DeductionRule, error)
	GetByID(ctx context.Context, id string) (DeductionRule, error)
	// ListActive returns rules that participate in payroll runs.
	ListActive(ctx context.Context) ([]DeductionRule, error)
	List(ctx context.Context) ([]DeductionRule, error)
	Update(ctx context.Context, rule DeductionRule) error
	// Retire soft-deletes a rule; historical payroll rows keep referencing it.
	Retire(ctx context.Context, id string) error
}

type SalaryConfigRepository interface {
	// ListActive returns one active config per division with division names.
	ListActive(ctx context.Context) ([]SalaryConfig, error)
	// Upsert retires the division's previous active config and inserts the
	// new one in a single transaction.
	Upsert(ctx context.Context, cfg SalaryConfig) (SalaryConfig, error)
}

type RecordRepository interface {
	GetByID(ctx context.Context, id string) (Record, error)

	// ListByPeriod returns records for a period with user and division
	// names, optionally filtered by status ("" means all).
	ListByPeriod(ctx context.Context, month, year int, status RecordStatus) ([]Record, error)

	// ListByStatus returns records in a status across periods, used by the
	// finance payment queue and history.
	ListByStatus(ctx context.Context, status RecordStatus) ([]Record, error)

	// ListPaidByUser returns one employee's paid records, newest period
	// first.
	ListPaidByUser(ctx context.Context, userID string, limit int) ([]Record, error)

	// CountNonDraft counts records for the period that are past draft. The
	// period's rows are locked, so inside a transaction the count stays
	// valid until commit.
	CountNonDraft(ctx context.Context, month, year int) (int, error)

	// DeleteDrafts and Create are called with a transaction-carrying context
	// during draft regeneration so a concurrent reader never sees a torn
	// period.
	DeleteDrafts(ctx context.Context, month, year int) error
	Create(ctx context.Context, rec Record) (Record, error)

	// SubmitDrafts transitions every draft row for the period to
	// sent_to_finance and returns how many rows moved.
	SubmitDrafts(ctx context.Context, month, year int) (int, error)

	// MarkPaid transitions one sent_to_finance row to paid. Returns
	// ErrInvalidTransition when the row is in any other status.
	MarkPaid(ctx context.Context, id string) (Record, error)

	// SummarizeByDivision aggregates net pay totals per division for a
	// period, recomputed on every read.
	SummarizeByDivision(ctx context.Context, month, year int) ([]DivisionSummary, error)
}
