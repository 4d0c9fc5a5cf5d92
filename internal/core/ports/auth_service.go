package ports

import (
	"context"

	"github.com/resumebuilderpro/resume-api/internal/core/domain"
)

// AuthService defines the account use cases: signup, login, and profile
// access for an already-authenticated subject.
type AuthService interface {
	// Register creates an account and signs the new user in.
	Register(ctx context.Context, fullName, email, password string) (*domain.User, string, error)
	// Login verifies credentials and issues a session token. An unknown
	// email and a wrong password both fail with
	// domain.ErrInvalidCredentials; the caller cannot tell them apart.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Profile returns the account for the token subject.
	Profile(ctx context.Context, email string) (*domain.User, error)
	// UpdateProfile changes the display name of the token subject.
	UpdateProfile(ctx context.Context, email, fullName string) (*domain.User, error)
}
