package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hris-system/hris-backend-go/internal/domain/attendance"
	"github.com/hris-system/hris-backend-go/internal/pkg/database"
)

type attendanceConfigRepository struct {
	db *database.DB
}

func NewAttendanceConfigRepository(db *database.DB) attendance.ConfigRepository {
	return &attendanceConfigRepository{db: db}
}

const attendanceConfigColumns = `id, max_clock_in, min_clock_out, office_latitude, office_longitude, radius_meters, status, created_at`

func (r *attendanceConfigRepository) GetActive(ctx context.Context) (attendance.Config, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceConfigColumns + `
		FROM attendance_configs
		WHERE status = 'active'
		ORDER BY created_at DESC
		LIMIT 1
	`

	var cfg attendance.Config
	err := q.QueryRow(ctx, query).Scan(
		&cfg.ID, &cfg.MaxClockIn, &cfg.MinClockOut,
		&cfg.OfficeLatitude, &cfg.OfficeLongitude, &cfg.RadiusMeters,
		&cfg.Status, &cfg.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Config{}, attendance.ErrNoActiveConfig
		}
		return attendance.Config{}, fmt.Errorf("failed to get active attendance config: %w", err)
	}

	return cfg, nil
}

// Activate retires every active config and inserts the new one atomically.
// Without the transaction two racing activations could leave zero or two
// active rows.
func (r *attendanceConfigRepository) Activate(ctx context.Context, cfg attendance.Config) (attendance.Config, error) {
	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `UPDATE attendance_configs SET status = 'retired' WHERE status = 'active'`); err != nil {
			return fmt.Errorf("failed to retire previous configs: %w", err)
		}

		query := `
			INSERT INTO attendance_configs
				(max_clock_in, min_clock_out, office_latitude, office_longitude, radius_meters, status)
			VALUES ($1, $2, $3, $4, $5, 'active')
			RETURNING id, created_at
		`
		if err := tx.QueryRow(ctx, query,
			cfg.MaxClockIn, cfg.MinClockOut, cfg.OfficeLatitude, cfg.OfficeLongitude, cfg.RadiusMeters,
		).Scan(&cfg.ID, &cfg.CreatedAt); err != nil {
			return fmt.Errorf("failed to insert attendance config: %w", err)
		}
		return nil
	})
	if err != nil {
		return attendance.Config{}, err
	}

	cfg.Status = attendance.ConfigStatusActive
	return cfg, nil
}

func (r *attendanceConfigRepository) History(ctx context.Context, limit int) ([]attendance.Config, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceConfigColumns + `
		FROM attendance_configs
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance config history: %w", err)
	}
	defer rows.Close()

	var configs []attendance.Config
	for rows.Next() {
		var cfg attendance.Config
		if err := rows.Scan(
			&cfg.ID, &cfg.MaxClockIn, &cfg.MinClockOut,
			&cfg.OfficeLatitude, &cfg.OfficeLongitude, &cfg.RadiusMeters,
			&cfg.Status, &cfg.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance config: %w", err)
		}
		configs = append(configs, cfg)
	}

	return configs, rows.Err()
}
