package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/resumebuilderpro/resume-api/internal/core/domain"
	"github.com/resumebuilderpro/resume-api/internal/core/ports"
)

// AuthService implements signup, login, and profile access.
type AuthService struct {
	users    ports.UserRepository
	hasher   ports.CredentialHasher
	tokens   ports.TokenService
	tokenTTL time.Duration
	logger   zerolog.Logger
}

func NewAuthService(users ports.UserRepository, hasher ports.CredentialHasher, tokens ports.TokenService, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 30 * time.Minute
	}
	return &AuthService{users: users, hasher: hasher, tokens: tokens, tokenTTL: tokenTTL, logger: logger}
}

// Register creates an account and immediately signs the new user in.
func (s *AuthService) Register(ctx context.Context, fullName, email, password string) (*domain.User, string, error) {
	if fullName == "" || email == "" || password == "" {
		return nil, "", domain.ErrInvalidCredentials
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		FullName:     fullName,
		PasswordHash: digest,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(user.Email, s.tokenTTL)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user registered")
	return user, token, nil
}

// Login verifies credentials and issues a session token. An unknown email
// and a wrong password surface the same error so callers cannot probe
// which emails are registered.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.logger.Warn().Str("user_id", user.ID).Msg("failed login attempt")
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Email, s.tokenTTL)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// Profile returns the account behind an authenticated subject.
func (s *AuthService) Profile(ctx context.Context, email string) (*domain.User, error) {
	return s.users.FindByEmail(ctx, email)
}

// UpdateProfile changes the display name. The email is the primary key and
// cannot be changed here.
func (s *AuthService) UpdateProfile(ctx context.Context, email, fullName string) (*domain.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if fullName != "" {
		user.FullName = fullName
	}
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
