package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dunamismax/imgconvert/internal/domain"
	_ "github.com/lib/pq"
)

const entrySchemaSQL = `
CREATE TABLE IF NOT EXISTS conversion_log (
	id BIGSERIAL PRIMARY KEY,
	logged_at TIMESTAMPTZ NOT NULL,
	level TEXT NOT NULL,
	message TEXT NOT NULL
);
`

// PostgresEntryStore mirrors log entries into an insert-only table.
type PostgresEntryStore struct {
	db *sql.DB
}

func NewPostgresEntryStore(ctx context.Context, dsn string) (*PostgresEntryStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres connection: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	store := &PostgresEntryStore{db: db}
	if err := store.EnsureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

func (s *PostgresEntryStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, entrySchemaSQL); err != nil {
		return fmt.Errorf("ensure conversion_log schema: %w", err)
	}
	return nil
}

func (s *PostgresEntryStore) Append(ctx context.Context, entry domain.LogEntry) error {
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO conversion_log (logged_at, level, message)
		 VALUES ($1, $2, $3)`,
		entry.Timestamp.UTC(),
		entry.Level,
		entry.Message,
	)
	if err != nil {
		return fmt.Errorf("insert log entry: %w", err)
	}
	return nil
}

func (s *PostgresEntryStore) Close() error {
	return s.db.Close()
}
