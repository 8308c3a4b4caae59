package store

import (
	"context"
	"sync"

	"github.com/dunamismax/imgconvert/internal/domain"
)

type MemoryEntryStore struct {
	mu      sync.RWMutex
	entries []domain.LogEntry
}

func NewMemoryEntryStore() *MemoryEntryStore {
	return &MemoryEntryStore{}
}

func (s *MemoryEntryStore) Append(_ context.Context, entry domain.LogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	return nil
}

// Entries returns a copy of everything appended so far, oldest first.
func (s *MemoryEntryStore) Entries() []domain.LogEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.LogEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *MemoryEntryStore) Close() error {
	return nil
}
