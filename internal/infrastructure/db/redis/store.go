package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/resumebuilderpro/resume-api/internal/core/domain"
)

const opTimeout = 3 * time.Second

// Store implements ports.RecordStore on top of a Redis client. Plain keys
// hold serialized records (SET/GET/DEL); index sets use SADD/SREM/SMEMBERS.
//
// Redis guarantees per-key atomicity only. Multi-key sequences run by the
// repositories (write record + touch index) are two independent commands
// and can interleave with concurrent readers.
type Store struct {
	client *redis.Client
}

// NewStore wraps an already-connected Redis client.
func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return storeErr("set", key, err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	value, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, storeErr("get", key, err)
	}
	return value, nil
}

func (s *Store) Delete(ctx context.Context, key string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	removed, err := s.client.Del(ctx, key).Result()
	if err != nil {
		return false, storeErr("del", key, err)
	}
	return removed > 0, nil
}

func (s *Store) IndexAdd(ctx context.Context, indexKey, member string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if err := s.client.SAdd(ctx, indexKey, member).Err(); err != nil {
		return storeErr("sadd", indexKey, err)
	}
	return nil
}

func (s *Store) IndexRemove(ctx context.Context, indexKey, member string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if err := s.client.SRem(ctx, indexKey, member).Err(); err != nil {
		return storeErr("srem", indexKey, err)
	}
	return nil
}

func (s *Store) IndexMembers(ctx context.Context, indexKey string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	members, err := s.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, storeErr("smembers", indexKey, err)
	}
	return members, nil
}

// storeErr classifies every transport failure as ErrStoreUnavailable while
// keeping the underlying cause in the chain.
func storeErr(op, key string, err error) error {
	return fmt.Errorf("redis %s %q: %w: %w", op, key, domain.ErrStoreUnavailable, err)
}
