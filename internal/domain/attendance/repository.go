package attendance

import (
	"context"
	"time"
)

// ConfigRepository manages geofence config versions.
type ConfigRepository interface {
	// GetActive returns the single active config.
	GetActive(ctx context.Context) (Config, error)

	// Activate inserts cfg as the new active config after retiring every
	// other active row. Both steps run in one transaction so concurrent
	// activations cannot leave zero or two active rows.
	Activate(ctx context.Context, cfg Config) (Config, error)

	// History lists config versions, newest first.
	History(ctx context.Context, limit int) ([]Config, error)
}

type AttendanceRepository interface {
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// GetByUserAndDate retrieves the record for one employee on one calendar
	// date. Used to prevent double clock-in.
	GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*Attendance, error)

	Update(ctx context.Context, att Attendance) error

	// ListByUser retrieves an employee's own history, newest first.
	ListByUser(ctx context.Context, userID string, limit int) ([]Attendance, error)

	// ListByDate returns one entry per active employee for a date, with user
	// and division names. Employees without a record that day come back with
	// status absent. Feeds the HR monitoring view.
	ListByDate(ctx context.Context, date time.Time) ([]Attendance, error)
}
