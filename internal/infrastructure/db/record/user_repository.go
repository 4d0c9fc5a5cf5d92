// Package record implements the entity repositories on top of the generic
// record store: users keyed by email, resumes keyed by generated id, with
// set indexes for reverse lookup.
package record

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/resumebuilderpro/resume-api/internal/core/domain"
	"github.com/resumebuilderpro/resume-api/internal/core/ports"
)

const (
	userKeyPrefix = "user:"
	usersIndexKey = "users:index"
)

func userKey(email string) string { return userKeyPrefix + email }

// storedUser is the persisted wire format of a user record. Timestamps are
// ISO-8601 UTC strings for interchange.
type storedUser struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	FullName     string `json:"full_name"`
	SecretDigest string `json:"secret_digest"`
	CreatedAt    string `json:"created_at"`
}

// UserRepository persists users in the record store. The email-derived key
// is what enforces email uniqueness.
type UserRepository struct {
	store ports.RecordStore
}

func NewUserRepository(store ports.RecordStore) *UserRepository {
	return &UserRepository{store: store}
}

// Create stores a new user under its email key and adds the email to the
// global user index. The write and the index update are two independent
// store calls with no rollback.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	_, err := r.store.Get(ctx, userKey(user.Email))
	if err == nil {
		return domain.ErrUserExists
	}
	if !errors.Is(err, domain.ErrRecordNotFound) {
		return err
	}

	value, err := marshalUser(user)
	if err != nil {
		return err
	}
	if err := r.store.Put(ctx, userKey(user.Email), value); err != nil {
		return err
	}
	return r.store.IndexAdd(ctx, usersIndexKey, user.Email)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	value, err := r.store.Get(ctx, userKey(email))
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return unmarshalUser(value)
}

// Update rewrites the primary record. The email cannot change, so index
// membership is untouched.
func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	value, err := marshalUser(user)
	if err != nil {
		return err
	}
	return r.store.Put(ctx, userKey(user.Email), value)
}

// Emails returns the global user index snapshot.
func (r *UserRepository) Emails(ctx context.Context) ([]string, error) {
	return r.store.IndexMembers(ctx, usersIndexKey)
}

func marshalUser(user *domain.User) ([]byte, error) {
	return json.Marshal(storedUser{
		ID:           user.ID,
		Email:        user.Email,
		FullName:     user.FullName,
		SecretDigest: user.PasswordHash,
		CreatedAt:    user.CreatedAt.UTC().Format(time.RFC3339Nano),
	})
}

func unmarshalUser(value []byte) (*domain.User, error) {
	var su storedUser
	if err := json.Unmarshal(value, &su); err != nil {
		return nil, fmt.Errorf("decode user record: %w", err)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, su.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("decode user record: %w", err)
	}
	return &domain.User{
		ID:           su.ID,
		Email:        su.Email,
		FullName:     su.FullName,
		PasswordHash: su.SecretDigest,
		CreatedAt:    createdAt,
	}, nil
}
