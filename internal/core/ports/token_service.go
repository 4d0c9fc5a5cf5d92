package ports

import "time"

// TokenService issues and validates self-contained session tokens. No
// server-side state is kept, so validation is pure computation and a token
// cannot be revoked before its natural expiry.
type TokenService interface {
	// Issue returns a signed token asserting subject until now + ttl.
	Issue(subject string, ttl time.Duration) (string, error)
	// Validate returns the subject carried by token. Fails with
	// domain.ErrTokenExpired past expiry and domain.ErrTokenInvalid for
	// anything else that does not verify.
	Validate(token string) (string, error)
}
