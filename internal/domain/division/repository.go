package division

import "context"

type DivisionRepository interface {
	Create(ctx context.Context, d Division) (Division, error)
	GetByID(ctx context.Context, id string) (Division, error)
	GetByName(ctx context.Context, name string) (Division, error)
	// ListActive returns active divisions with their active employee count.
	ListActive(ctx context.Context) ([]Division, error)
	Update(ctx context.Context, d Division) error
	// Retire soft-deletes a division, preserving payroll and leave history.
	Retire(ctx context.Context, id string) error
}
