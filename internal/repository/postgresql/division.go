package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/hris-system/hris-backend-go/internal/domain/division"
	"github.com/hris-system/hris-backend-go/internal/pkg/database"
)

type divisionRepository struct {
	db *database.DB
}

func NewDivisionRepository(db *database.DB) division.DivisionRepository {
	return &divisionRepository{db: db}
}

func (r *divisionRepository) Create(ctx context.Context, d division.Division) (division.Division, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO divisions (name, status)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, d.Name, d.Status).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return division.Division{}, division.ErrDivisionNameExists
		}
		return division.Division{}, fmt.Errorf("failed to create division: %w", err)
	}

	return d, nil
}

func (r *divisionRepository) GetByID(ctx context.Context, id string) (division.Division, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, status, created_at, updated_at FROM divisions WHERE id = $1`

	var d division.Division
	err := q.QueryRow(ctx, query, id).Scan(&d.ID, &d.Name, &d.Status, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return division.Division{}, division.ErrDivisionNotFound
		}
		return division.Division{}, fmt.Errorf("failed to get division: %w", err)
	}

	return d, nil
}

func (r *divisionRepository) GetByName(ctx context.Context, name string) (division.Division, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, status, created_at, updated_at FROM divisions WHERE name = $1`

	var d division.Division
	err := q.QueryRow(ctx, query, name).Scan(&d.ID, &d.Name, &d.Status, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return division.Division{}, division.ErrDivisionNotFound
		}
		return division.Division{}, fmt.Errorf("failed to get division by name: %w", err)
	}

	return d, nil
}

func (r *divisionRepository) ListActive(ctx context.Context) ([]division.Division, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT d.id, d.name, d.status, d.created_at, d.updated_at,
		       COUNT(u.id) FILTER (WHERE u.status = 'active')
		FROM divisions d
		LEFT JOIN users u ON u.division_id = d.id
		WHERE d.status = 'active'
		GROUP BY d.id
		ORDER BY d.name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list divisions: %w", err)
	}
	defer rows.Close()

	var divisions []division.Division
	for rows.Next() {
		var d division.Division
		var count int
		if err := rows.Scan(&d.ID, &d.Name, &d.Status, &d.CreatedAt, &d.UpdatedAt, &count); err != nil {
			return nil, fmt.Errorf("failed to scan division: %w", err)
		}
		d.EmployeeCount = &count
		divisions = append(divisions, d)
	}

	return divisions, rows.Err()
}

func (r *divisionRepository) Update(ctx context.Context, d division.Division) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE divisions SET name = $2, status = $3, updated_at = NOW() WHERE id = $1`

	tag, err := q.Exec(ctx, query, d.ID, d.Name, d.Status)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return division.ErrDivisionNameExists
		}
		return fmt.Errorf("failed to update division: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return division.ErrDivisionNotFound
	}

	return nil
}

func (r *divisionRepository) Retire(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE divisions SET status = 'retired', updated_at = NOW() WHERE id = $1 AND status = 'active'`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to retire division: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return division.ErrDivisionNotFound
	}

	return nil
}
