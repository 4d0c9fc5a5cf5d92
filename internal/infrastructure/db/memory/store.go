// Package memory provides an in-memory ports.RecordStore used as a test
// double for the Redis-backed store.
package memory

import (
	"context"
	"sync"

	"github.com/resumebuilderpro/resume-api/internal/core/domain"
)

// Store is a mutex-guarded map implementation of ports.RecordStore.
type Store struct {
	mu      sync.RWMutex
	records map[string][]byte
	indexes map[string]map[string]struct{}

	// Unavailable makes every operation fail with ErrStoreUnavailable,
	// simulating an unreachable backend.
	Unavailable bool
}

func NewStore() *Store {
	return &Store{
		records: make(map[string][]byte),
		indexes: make(map[string]map[string]struct{}),
	}
}

func (s *Store) Put(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Unavailable {
		return domain.ErrStoreUnavailable
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	s.records[key] = cp
	return nil
}

func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.Unavailable {
		return nil, domain.ErrStoreUnavailable
	}
	value, ok := s.records[key]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	return cp, nil
}

func (s *Store) Delete(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Unavailable {
		return false, domain.ErrStoreUnavailable
	}
	if _, ok := s.records[key]; !ok {
		return false, nil
	}
	delete(s.records, key)
	return true, nil
}

func (s *Store) IndexAdd(_ context.Context, indexKey, member string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Unavailable {
		return domain.ErrStoreUnavailable
	}
	set, ok := s.indexes[indexKey]
	if !ok {
		set = make(map[string]struct{})
		s.indexes[indexKey] = set
	}
	set[member] = struct{}{}
	return nil
}

func (s *Store) IndexRemove(_ context.Context, indexKey, member string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Unavailable {
		return domain.ErrStoreUnavailable
	}
	delete(s.indexes[indexKey], member)
	return nil
}

func (s *Store) IndexMembers(_ context.Context, indexKey string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.Unavailable {
		return nil, domain.ErrStoreUnavailable
	}
	members := make([]string, 0, len(s.indexes[indexKey]))
	for member := range s.indexes[indexKey] {
		members = append(members, member)
	}
	return members, nil
}
