package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hris-system/hris-backend-go/internal/domain/payroll"
	"github.com/hris-system/hris-backend-go/internal/pkg/database"
)

type deductionRuleRepository struct {
	db *database.DB
}

func NewDeductionRuleRepository(db *database.DB) payroll.RuleRepository {
	return &deductionRuleRepository{db: db}
}

const ruleColumns = `id, name, kind, value, description, status, created_at, updated_at`

func (r *deductionRuleRepository) Create(ctx context.Context, rule payroll.DeductionRule) (payroll.DeductionRule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO deduction_rules (name, kind, value, description, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rule.Name, rule.Kind, rule.Value, rule.Description, rule.Status,
	).Scan(&rule.ID, &rule.CreatedAt, &rule.UpdatedAt)
	if err != nil {
		return payroll.DeductionRule{}, fmt.Errorf("failed to create deduction rule: %w", err)
	}

	return rule, nil
}

func (r *deductionRuleRepository) GetByID(ctx context.Context, id string) (payroll.DeductionRule, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + ruleColumns + ` FROM deduction_rules WHERE id = $1`

	var rule payroll.DeductionRule
	err := q.QueryRow(ctx, query, id).Scan(
		&rule.ID, &rule.Name, &rule.Kind, &rule.Value, &rule.Description,
		&rule.Status, &rule.CreatedAt, &rule.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.DeductionRule{}, payroll.ErrRuleNotFound
		}
		return payroll.DeductionRule{}, fmt.Errorf("failed to get deduction rule: %w", err)
	}

	return rule, nil
}

func (r *deductionRuleRepository) ListActive(ctx context.Context) ([]payroll.DeductionRule, error) {
	return r.list(ctx, `SELECT `+ruleColumns+` FROM deduction_rules WHERE status = 'active' ORDER BY name ASC`)
}

func (r *deductionRuleRepository) List(ctx context.Context) ([]payroll.DeductionRule, error) {
	return r.list(ctx, `SELECT `+ruleColumns+` FROM deduction_rules ORDER BY status ASC, name ASC`)
}

func (r *deductionRuleRepository) list(ctx context.Context, query string) ([]payroll.DeductionRule, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list deduction rules: %w", err)
	}
	defer rows.Close()

	var rules []payroll.DeductionRule
	for rows.Next() {
		var rule payroll.DeductionRule
		if err := rows.Scan(
			&rule.ID, &rule.Name, &rule.Kind, &rule.Value, &rule.Description,
			&rule.Status, &rule.CreatedAt, &rule.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan deduction rule: %w", err)
		}
		rules = append(rules, rule)
	}

	return rules, rows.Err()
}

func (r *deductionRuleRepository) Update(ctx context.Context, rule payroll.DeductionRule) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE deduction_rules
		SET name = $2, kind = $3, value = $4, description = $5, updated_at = NOW()
		WHERE id = $1 AND status = 'active'
	`

	tag, err := q.Exec(ctx, query, rule.ID, rule.Name, rule.Kind, rule.Value, rule.Description)
	if err != nil {
		return fmt.Errorf("failed to update deduction rule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrRuleNotFound
	}

	return nil
}

func (r *deductionRuleRepository) Retire(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE deduction_rules SET status = 'retired', updated_at = NOW() WHERE id = $1 AND status = 'active'`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to retire deduction rule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrRuleNotFound
	}

	return nil
}
