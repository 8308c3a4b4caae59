package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/dunamismax/imgconvert/internal/domain"
)

// FileEntryStore appends one text line per entry. The file is never truncated.
type FileEntryStore struct {
	mu   sync.Mutex
	path string
	f    *os.File
}

func OpenFileEntryStore(path string) (*FileEntryStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("log path is required")
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	return &FileEntryStore{path: path, f: f}, nil
}

func (s *FileEntryStore) Path() string {
	return s.path
}

func (s *FileEntryStore) Append(_ context.Context, entry domain.LogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.f == nil {
		return fmt.Errorf("append to %s: store is closed", s.path)
	}
	if _, err := s.f.WriteString(entry.Line() + "\n"); err != nil {
		return fmt.Errorf("append to %s: %w", s.path, err)
	}
	return nil
}

func (s *FileEntryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.f == nil {
		return nil
	}
	err := s.f.Close()
	s.f = nil
	return err
}
