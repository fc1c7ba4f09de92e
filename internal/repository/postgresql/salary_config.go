package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hris-system/hris-backend-go/internal/domain/payroll"
	"github.com/hris-system/hris-backend-go/internal/pkg/database"
)

type salaryConfigRepository struct {
	db *database.DB
}

func NewSalaryConfigRepository(db *database.DB) payroll.SalaryConfigRepository {
	return &salaryConfigRepository{db: db}
}

func (r *salaryConfigRepository) ListActive(ctx context.Context) ([]payroll.SalaryConfig, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT sc.id, sc.division_id, sc.base_salary, sc.effective_date, sc.status,
		       sc.created_at, sc.updated_at, d.name
		FROM salary_configs sc
		JOIN divisions d ON d.id = sc.division_id
		WHERE sc.status = 'active'
		ORDER BY d.name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary configs: %w", err)
	}
	defer rows.Close()

	var configs []payroll.SalaryConfig
	for rows.Next() {
		var cfg payroll.SalaryConfig
		if err := rows.Scan(
			&cfg.ID, &cfg.DivisionID, &cfg.BaseSalary, &cfg.EffectiveDate, &cfg.Status,
			&cfg.CreatedAt, &cfg.UpdatedAt, &cfg.DivisionName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan salary config: %w", err)
		}
		configs = append(configs, cfg)
	}

	return configs, rows.Err()
}

// Upsert retires the division's current active config and inserts the new one
// in a single transaction, so exactly one active config exists per division.
func (r *salaryConfigRepository) Upsert(ctx context.Context, cfg payroll.SalaryConfig) (payroll.SalaryConfig, error) {
	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		retire := `
			UPDATE salary_configs
			SET status = 'retired', updated_at = NOW()
			WHERE division_id = $1 AND status = 'active'
		`
		if _, err := tx.Exec(ctx, retire, cfg.DivisionID); err != nil {
			return fmt.Errorf("failed to retire previous salary config: %w", err)
		}

		insert := `
			INSERT INTO salary_configs (division_id, base_salary, effective_date, status)
			VALUES ($1, $2, $3, 'active')
			RETURNING id, status, created_at, updated_at
		`
		err := tx.QueryRow(ctx, insert, cfg.DivisionID, cfg.BaseSalary, cfg.EffectiveDate).
			Scan(&cfg.ID, &cfg.Status, &cfg.CreatedAt, &cfg.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert salary config: %w", err)
		}

		return nil
	})
	if err != nil {
		return payroll.SalaryConfig{}, err
	}

	return cfg, nil
}
