package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/hris-system/hris-backend-go/internal/domain/leave"
	"github.com/hris-system/hris-backend-go/internal/pkg/database"
)

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.RequestRepository {
	return &leaveRequestRepository{db: db}
}

const leaveRequestColumns = `
	id, user_id, type, start_date, end_date, total_days, reason, status,
	processed_by, processed_at, process_note, created_at, updated_at
`

func (r *leaveRequestRepository) Create(ctx context.Context, req leave.Request) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (user_id, type, start_date, end_date, total_days, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.UserID, req.Type, req.StartDate, req.EndDate, req.TotalDays, req.Reason, req.Status,
	).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return req, nil
}

func (r *leaveRequestRepository) GetByID(ctx context.Context, id string) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveRequestColumns + ` FROM leave_requests WHERE id = $1`

	var req leave.Request
	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.UserID, &req.Type, &req.StartDate, &req.EndDate,
		&req.TotalDays, &req.Reason, &req.Status,
		&req.ProcessedBy, &req.ProcessedAt, &req.ProcessNote,
		&req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Request{}, leave.ErrRequestNotFound
		}
		return leave.Request{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	return req, nil
}

func (r *leaveRequestRepository) ListByUser(ctx context.Context, userID string) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests by user: %w", err)
	}
	defer rows.Close()

	var requests []leave.Request
	for rows.Next() {
		var req leave.Request
		if err := rows.Scan(
			&req.ID, &req.UserID, &req.Type, &req.StartDate, &req.EndDate,
			&req.TotalDays, &req.Reason, &req.Status,
			&req.ProcessedBy, &req.ProcessedAt, &req.ProcessNote,
			&req.CreatedAt, &req.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

func (r *leaveRequestRepository) ListAll(ctx context.Context) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	// Pending requests first, then newest first: the HR approval queue.
	query := `
		SELECT lr.id, lr.user_id, lr.type, lr.start_date, lr.end_date,
		       lr.total_days, lr.reason, lr.status,
		       lr.processed_by, lr.processed_at, lr.process_note,
		       lr.created_at, lr.updated_at,
		       u.name, d.name
		FROM leave_requests lr
		JOIN users u ON lr.user_id = u.id
		LEFT JOIN divisions d ON u.division_id = d.id
		ORDER BY
			CASE WHEN lr.status = 'pending' THEN 0 ELSE 1 END,
			lr.created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.Request
	for rows.Next() {
		var req leave.Request
		if err := rows.Scan(
			&req.ID, &req.UserID, &req.Type, &req.StartDate, &req.EndDate,
			&req.TotalDays, &req.Reason, &req.Status,
			&req.ProcessedBy, &req.ProcessedAt, &req.ProcessNote,
			&req.CreatedAt, &req.UpdatedAt,
			&req.UserName, &req.DivisionName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

func (r *leaveRequestRepository) Update(ctx context.Context, req leave.Request) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $2, processed_by = $3, processed_at = $4, process_note = $5, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, req.ID, req.Status, req.ProcessedBy, req.ProcessedAt, req.ProcessNote)
	if err != nil {
		return fmt.Errorf("failed to update leave request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrRequestNotFound
	}

	return nil
}

func (r *leaveRequestRepository) HasOverlap(ctx context.Context, userID string, start, end time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1
			FROM leave_requests
			WHERE user_id = $1
			  AND status IN ('pending', 'approved')
			  AND start_date <= $3
			  AND end_date >= $2
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, userID, start, end).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check overlapping leave requests: %w", err)
	}

	return exists, nil
}

func (r *leaveRequestRepository) SumApprovedAnnualDays(ctx context.Context, userID string, year int) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(total_days), 0)
		FROM leave_requests
		WHERE user_id = $1
		  AND type = 'annual'
		  AND status = 'approved'
		  AND EXTRACT(YEAR FROM start_date) = $2
	`

	var total int
	if err := q.QueryRow(ctx, query, userID, year).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum approved leave days: %w", err)
	}

	return total, nil
}
