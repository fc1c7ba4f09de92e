package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hris-system/hris-backend-go/internal/domain/leave"
	"github.com/hris-system/hris-backend-go/internal/pkg/database"
)

type leaveConfigRepository struct {
	db *database.DB
}

func NewLeaveConfigRepository(db *database.DB) leave.ConfigRepository {
	return &leaveConfigRepository{db: db}
}

func (r *leaveConfigRepository) GetByDivisionAndYear(ctx context.Context, divisionID string, year int) (leave.Config, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, division_id, annual_quota_days, year, status, created_at, updated_at
		FROM leave_configs
		WHERE division_id = $1 AND year = $2 AND status = 'active'
		ORDER BY created_at DESC
		LIMIT 1
	`

	var cfg leave.Config
	err := q.QueryRow(ctx, query, divisionID, year).Scan(
		&cfg.ID, &cfg.DivisionID, &cfg.AnnualQuotaDays, &cfg.Year,
		&cfg.Status, &cfg.CreatedAt, &cfg.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Config{}, leave.ErrConfigNotFound
		}
		return leave.Config{}, fmt.Errorf("failed to get leave config: %w", err)
	}

	return cfg, nil
}

func (r *leaveConfigRepository) ListByYear(ctx context.Context, year int) ([]leave.Config, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lc.id, lc.division_id, lc.annual_quota_days, lc.year, lc.status,
		       lc.created_at, lc.updated_at, d.name
		FROM leave_configs lc
		JOIN divisions d ON lc.division_id = d.id
		WHERE lc.year = $1 AND lc.status = 'active' AND d.status = 'active'
		ORDER BY d.name ASC
	`

	rows, err := q.Query(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave configs: %w", err)
	}
	defer rows.Close()

	var configs []leave.Config
	for rows.Next() {
		var cfg leave.Config
		if err := rows.Scan(
			&cfg.ID, &cfg.DivisionID, &cfg.AnnualQuotaDays, &cfg.Year,
			&cfg.Status, &cfg.CreatedAt, &cfg.UpdatedAt, &cfg.DivisionName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave config: %w", err)
		}
		configs = append(configs, cfg)
	}

	return configs, rows.Err()
}

func (r *leaveConfigRepository) Upsert(ctx context.Context, cfg leave.Config) (leave.Config, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_configs (division_id, annual_quota_days, year, status)
		VALUES ($1, $2, $3, 'active')
		ON CONFLICT (division_id, year) WHERE status = 'active'
		DO UPDATE SET annual_quota_days = EXCLUDED.annual_quota_days, updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, cfg.DivisionID, cfg.AnnualQuotaDays, cfg.Year).
		Scan(&cfg.ID, &cfg.CreatedAt, &cfg.UpdatedAt)
	if err != nil {
		return leave.Config{}, fmt.Errorf("failed to upsert leave config: %w", err)
	}

	cfg.Status = leave.ConfigStatusActive
	return cfg, nil
}
