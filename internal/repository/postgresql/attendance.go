package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/hris-system/hris-backend-go/internal/domain/attendance"
	"github.com/hris-system/hris-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	id, user_id, date, clock_in, clock_in_latitude, clock_in_longitude,
	clock_out, clock_out_latitude, clock_out_longitude,
	status, early_leave, created_at, updated_at
`

func (r *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (
			user_id, date, clock_in, clock_in_latitude, clock_in_longitude, status, early_leave
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.UserID, att.Date, att.ClockIn, att.ClockInLatitude, att.ClockInLongitude,
		att.Status, att.EarlyLeave,
	).Scan(&att.ID, &att.CreatedAt, &att.UpdatedAt)

	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return att, nil
}

func (r *attendanceRepository) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE user_id = $1 AND date = $2
		LIMIT 1
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, userID, date).Scan(
		&att.ID, &att.UserID, &att.Date,
		&att.ClockIn, &att.ClockInLatitude, &att.ClockInLongitude,
		&att.ClockOut, &att.ClockOutLatitude, &att.ClockOutLongitude,
		&att.Status, &att.EarlyLeave, &att.CreatedAt, &att.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by user and date: %w", err)
	}

	return &att, nil
}

func (r *attendanceRepository) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET clock_in = $2, clock_in_latitude = $3, clock_in_longitude = $4,
		    clock_out = $5, clock_out_latitude = $6, clock_out_longitude = $7,
		    status = $8, early_leave = $9, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		att.ID,
		att.ClockIn, att.ClockInLatitude, att.ClockInLongitude,
		att.ClockOut, att.ClockOutLatitude, att.ClockOutLongitude,
		att.Status, att.EarlyLeave,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

func (r *attendanceRepository) ListByUser(ctx context.Context, userID string, limit int) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE user_id = $1
		ORDER BY date DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances by user: %w", err)
	}
	defer rows.Close()

	return scanAttendances(rows, false)
}

// ListByDate starts from active employees, not from attendance rows, so an
// employee who never clocked in still appears with status absent.
func (r *attendanceRepository) ListByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(a.id::text, ''), u.id, COALESCE(a.date, $1::date),
		       a.clock_in, a.clock_in_latitude, a.clock_in_longitude,
		       a.clock_out, a.clock_out_latitude, a.clock_out_longitude,
		       COALESCE(a.status, 'absent'), COALESCE(a.early_leave, FALSE),
		       COALESCE(a.created_at, NOW()), COALESCE(a.updated_at, NOW()),
		       u.name, d.name
		FROM users u
		LEFT JOIN divisions d ON u.division_id = d.id
		LEFT JOIN attendances a ON a.user_id = u.id AND a.date = $1::date
		WHERE u.status = 'active' AND u.role = 'employee'
		ORDER BY u.name ASC
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances by date: %w", err)
	}
	defer rows.Close()

	return scanAttendances(rows, true)
}

func scanAttendances(rows pgx.Rows, withNames bool) ([]attendance.Attendance, error) {
	var atts []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		dest := []interface{}{
			&att.ID, &att.UserID, &att.Date,
			&att.ClockIn, &att.ClockInLatitude, &att.ClockInLongitude,
			&att.ClockOut, &att.ClockOutLatitude, &att.ClockOutLongitude,
			&att.Status, &att.EarlyLeave, &att.CreatedAt, &att.UpdatedAt,
		}
		if withNames {
			dest = append(dest, &att.UserName, &att.DivisionName)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		atts = append(atts, att)
	}

	return atts, rows.Err()
}
