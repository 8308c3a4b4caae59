package store

import (
	"context"

	"github.com/dunamismax/imgconvert/internal/domain"
)

// EntryStore is an append-only sink for conversion log entries.
type EntryStore interface {
	Append(ctx context.Context, entry domain.LogEntry) error
	Close() error
}
