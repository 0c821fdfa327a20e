package activity

import (
	"context"
	"slices"
	"sync"

	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
)

// MemoryStore is an in-process Store. It keeps entries in append order and is
// safe for concurrent use.
type MemoryStore struct {
	mu      sync.RWMutex
	entries []domain.ActivityLogEntry
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Append(_ context.Context, entry domain.ActivityLogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	return nil
}

// Entries returns a copy of all entries in append order.
func (s *MemoryStore) Entries() []domain.ActivityLogEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.entries)
}

// Len returns the number of stored entries.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// List returns entries matching filter, newest first.
func (s *MemoryStore) List(_ context.Context, filter domain.ActivityFilter) ([]domain.ActivityLogEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.ActivityLogEntry
	for i := len(s.entries) - 1; i >= 0; i-- {
		e := s.entries[i]
		if filter.EntityType != nil && e.EntityType != *filter.EntityType {
			continue
		}
		if filter.EntityID != nil && e.EntityID != *filter.EntityID {
			continue
		}
		if filter.PerformedByID != nil && e.PerformedByID != *filter.PerformedByID {
			continue
		}
		out = append(out, e)
	}

	if filter.Offset > 0 {
		if filter.Offset >= len(out) {
			return []domain.ActivityLogEntry{}, nil
		}
		out = out[filter.Offset:]
	}
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	if out == nil {
		out = []domain.ActivityLogEntry{}
	}
	return out, nil
}
