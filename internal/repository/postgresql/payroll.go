package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hris-system/hris-backend-go/internal/domain/payroll"
	"github.com/hris-system/hris-backend-go/internal/pkg/database"
)

type payrollRecordRepository struct {
	db *database.DB
}

func NewPayrollRecordRepository(db *database.DB) payroll.RecordRepository {
	return &payrollRecordRepository{db: db}
}

const recordSelect = `
	SELECT pr.id, pr.user_id, pr.month, pr.year, pr.base_salary,
	       pr.total_deductions, pr.net_pay, pr.status,
	       pr.sent_to_finance_at, pr.paid_at, pr.created_at, pr.updated_at,
	       u.name, d.name, u.bank_name, u.bank_account
	FROM payroll_records pr
	JOIN users u ON u.id = pr.user_id
	LEFT JOIN divisions d ON d.id = u.division_id
`

func (r *payrollRecordRepository) GetByID(ctx context.Context, id string) (payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := recordSelect + ` WHERE pr.id = $1`

	rec, err := scanRecord(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Record{}, payroll.ErrRecordNotFound
		}
		return payroll.Record{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return rec, nil
}

func (r *payrollRecordRepository) ListByPeriod(ctx context.Context, month, year int, status payroll.RecordStatus) ([]payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := recordSelect + ` WHERE pr.month = $1 AND pr.year = $2`
	args := []any{month, year}
	if status != "" {
		query += ` AND pr.status = $3`
		args = append(args, status)
	}
	query += ` ORDER BY d.name ASC NULLS LAST, u.name ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

func (r *payrollRecordRepository) ListByStatus(ctx context.Context, status payroll.RecordStatus) ([]payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := recordSelect + ` WHERE pr.status = $1 ORDER BY pr.year DESC, pr.month DESC, u.name ASC`

	rows, err := q.Query(ctx, query, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

func (r *payrollRecordRepository) ListPaidByUser(ctx context.Context, userID string, limit int) ([]payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := recordSelect + `
		WHERE pr.user_id = $1 AND pr.status = 'paid'
		ORDER BY pr.year DESC, pr.month DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list paid payroll records: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

func (r *payrollRecordRepository) CountNonDraft(ctx context.Context, month, year int) (int, error) {
	q := GetQuerier(ctx, r.db)

	// FOR UPDATE holds the period's rows, so a submit racing with draft
	// regeneration waits for whichever transaction got there first.
	query := `
		SELECT COUNT(*) FROM (
			SELECT status FROM payroll_records
			WHERE month = $1 AND year = $2
			FOR UPDATE
		) period
		WHERE period.status <> 'draft'
	`

	var count int
	if err := q.QueryRow(ctx, query, month, year).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count payroll records: %w", err)
	}

	return count, nil
}

func (r *payrollRecordRepository) DeleteDrafts(ctx context.Context, month, year int) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM payroll_records WHERE month = $1 AND year = $2 AND status = 'draft'`

	if _, err := q.Exec(ctx, query, month, year); err != nil {
		return fmt.Errorf("failed to delete draft payroll records: %w", err)
	}

	return nil
}

func (r *payrollRecordRepository) Create(ctx context.Context, rec payroll.Record) (payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_records (user_id, month, year, base_salary, total_deductions, net_pay, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.UserID, rec.Month, rec.Year, rec.BaseSalary, rec.TotalDeductions, rec.NetPay, rec.Status,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return payroll.Record{}, fmt.Errorf("failed to create payroll record: %w", err)
	}

	return rec, nil
}

func (r *payrollRecordRepository) SubmitDrafts(ctx context.Context, month, year int) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_records
		SET status = 'sent_to_finance', sent_to_finance_at = NOW(), updated_at = NOW()
		WHERE month = $1 AND year = $2 AND status = 'draft'
	`

	tag, err := q.Exec(ctx, query, month, year)
	if err != nil {
		return 0, fmt.Errorf("failed to submit payroll drafts: %w", err)
	}

	return int(tag.RowsAffected()), nil
}

func (r *payrollRecordRepository) MarkPaid(ctx context.Context, id string) (payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_records
		SET status = 'paid', paid_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND status = 'sent_to_finance'
	`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return payroll.Record{}, fmt.Errorf("failed to mark payroll record paid: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// Distinguish a missing row from a row in the wrong status.
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return payroll.Record{}, getErr
		}
		return payroll.Record{}, payroll.ErrInvalidTransition
	}

	return r.GetByID(ctx, id)
}

func (r *payrollRecordRepository) SummarizeByDivision(ctx context.Context, month, year int) ([]payroll.DivisionSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT d.id, d.name, COUNT(pr.id), COALESCE(SUM(pr.net_pay), 0)
		FROM payroll_records pr
		JOIN users u ON u.id = pr.user_id
		JOIN divisions d ON d.id = u.division_id
		WHERE pr.month = $1 AND pr.year = $2
		GROUP BY d.id, d.name
		ORDER BY d.name ASC
	`

	rows, err := q.Query(ctx, query, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize payroll: %w", err)
	}
	defer rows.Close()

	var summaries []payroll.DivisionSummary
	for rows.Next() {
		var s payroll.DivisionSummary
		if err := rows.Scan(&s.DivisionID, &s.DivisionName, &s.EmployeeCount, &s.TotalNetPay); err != nil {
			return nil, fmt.Errorf("failed to scan payroll summary: %w", err)
		}
		summaries = append(summaries, s)
	}

	return summaries, rows.Err()
}

func scanRecord(row pgx.Row) (payroll.Record, error) {
	var rec payroll.Record
	err := row.Scan(
		&rec.ID, &rec.UserID, &rec.Month, &rec.Year, &rec.BaseSalary,
		&rec.TotalDeductions, &rec.NetPay, &rec.Status,
		&rec.SentToFinanceAt, &rec.PaidAt, &rec.CreatedAt, &rec.UpdatedAt,
		&rec.UserName, &rec.DivisionName, &rec.BankName, &rec.BankAccount,
	)
	return rec, err
}

func scanRecords(rows pgx.Rows) ([]payroll.Record, error) {
	var records []payroll.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
