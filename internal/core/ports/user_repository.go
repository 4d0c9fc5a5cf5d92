package ports

import (
	"context"

	"github.com/resumebuilderpro/resume-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create stores a new user. Returns domain.ErrUserExists when the
	// email is already taken.
	Create(ctx context.Context, user *domain.User) error
	// FindByEmail returns the user keyed by email, or domain.ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Update rewrites an existing user's primary record.
	Update(ctx context.Context, user *domain.User) error
}
