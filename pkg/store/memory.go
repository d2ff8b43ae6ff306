package store

import (
	"context"
	"sync"
)

// MemoryStore keeps saved reports in a map. It is the default backend
// for serve mode and is safe for concurrent handlers.
type MemoryStore struct {
	mu      sync.RWMutex
	reports map[string]SavedReport
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{reports: make(map[string]SavedReport)}
}

// Put saves a report.
func (s *MemoryStore) Put(ctx context.Context, rep SavedReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports[rep.ID] = rep
	return nil
}

// Get fetches a report by id.
func (s *MemoryStore) Get(ctx context.Context, id string) (SavedReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rep, ok := s.reports[id]
	if !ok {
		return SavedReport{}, errNotFound(id)
	}
	return rep, nil
}

// Close does nothing for the in-memory store.
func (s *MemoryStore) Close(ctx context.Context) error { return nil }

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
