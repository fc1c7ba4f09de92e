package user

import "context"

type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	// ListActive returns active users joined with their division name.
	ListActive(ctx context.Context) ([]User, error)
	// ListActiveByDivision returns active users in a division.
	ListActiveByDivision(ctx context.Context, divisionID string) ([]User, error)
	Update(ctx context.Context, u User) error
}
