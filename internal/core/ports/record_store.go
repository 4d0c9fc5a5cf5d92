package ports

import "context"

// RecordStore is the generic keyed storage the whole persistence layer is
// built on: opaque string keys mapping to serialized values, plus named
// index sets for reverse lookup.
//
// There is no cross-key atomicity. A logical "create and index" is two
// physical writes with no rollback; repositories tolerate the resulting
// transient dangling-index states instead of preventing them.
type RecordStore interface {
	// Put upserts value under key, overwriting unconditionally.
	Put(ctx context.Context, key string, value []byte) error
	// Get returns the value stored under key, or domain.ErrRecordNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Delete removes key and reports whether something was removed.
	Delete(ctx context.Context, key string) (bool, error)

	// IndexAdd adds member to the named index set.
	IndexAdd(ctx context.Context, indexKey, member string) error
	// IndexRemove removes member from the named index set.
	IndexRemove(ctx context.Context, indexKey, member string) error
	// IndexMembers returns an unordered membership snapshot.
	IndexMembers(ctx context.Context, indexKey string) ([]string, error)
}
