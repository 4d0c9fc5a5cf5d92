package domain

import "errors"

// ErrStoreUnavailable signals that the persistence backend cannot be
// reached. Callers must not assume partial success for the failed call.
var ErrStoreUnavailable = errors.New("store unavailable")

// ErrRecordNotFound is the store-level absence signal. Repositories
// translate it into entity-specific not-found errors.
var ErrRecordNotFound = errors.New("record not found")
