package leave

import (
	"context"
	"time"
)

type ConfigRepository interface {
	// GetByDivisionAndYear returns the active quota config for a division
	// and year.
	GetByDivisionAndYear(ctx context.Context, divisionID string, year int) (Config, error)

	// ListByYear returns all active configs for a year with division names.
	ListByYear(ctx context.Context, year int) ([]Config, error)

	// Upsert updates the quota for (division, year) or inserts a new active
	// row when none exists.
	Upsert(ctx context.Context, cfg Config) (Config, error)
}

type RequestRepository interface {
	Create(ctx context.Context, req Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)
	ListByUser(ctx context.Context, userID string) ([]Request, error)
	// ListAll returns all requests with user and division names, pending
	// first, for the HR queue.
	ListAll(ctx context.Context) ([]Request, error)
	Update(ctx context.Context, req Request) error

	// HasOverlap reports whether the user already has a pending or approved
	// request intersecting [start, end].
	HasOverlap(ctx context.Context, userID string, start, end time.Time) (bool, error)

	// SumApprovedAnnualDays sums TotalDays of approved annual requests whose
	// start date falls in year.
	SumApprovedAnnualDays(ctx context.Context, userID string, year int) (int, error)
}
