package user

import (
	"context"
	"time"
)

type UserRepository interface {
	Create(ctx context.Context, newUser User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context, filter ListUsersFilter) ([]User, error)
	// ListByReportsTo returns the direct reports of a manager, one level only.
	ListByReportsTo(ctx context.Context, managerID string) ([]User, error)
	Update(ctx context.Context, id string, req UpdateUserRequest) error
	// SetActive flips the soft-delete flag; user rows are never removed.
	SetActive(ctx context.Context, id string, active bool) error
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
}
