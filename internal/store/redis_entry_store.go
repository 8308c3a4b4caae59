package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dunamismax/imgconvert/internal/domain"
	"github.com/redis/go-redis/v9"
)

const DefaultRedisStream = "imgconvert:log"

// RedisStreamEntryStore mirrors log entries into a Redis stream with XADD.
// The stream is never trimmed.
type RedisStreamEntryStore struct {
	client redis.UniversalClient
	stream string
}

func NewRedisStreamEntryStore(client redis.UniversalClient, stream string) (*RedisStreamEntryStore, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	if strings.TrimSpace(stream) == "" {
		stream = DefaultRedisStream
	}
	return &RedisStreamEntryStore{client: client, stream: stream}, nil
}

func (s *RedisStreamEntryStore) Append(ctx context.Context, entry domain.LogEntry) error {
	err := s.client.XAdd(ctx, &redis.XAddArgs{
		Stream: s.stream,
		Values: map[string]any{
			"logged_at": entry.Timestamp.UTC().Format(time.RFC3339Nano),
			"level":     entry.Level,
			"message":   entry.Message,
		},
	}).Err()
	if err != nil {
		return fmt.Errorf("xadd %s: %w", s.stream, err)
	}
	return nil
}

func (s *RedisStreamEntryStore) Close() error {
	return s.client.Close()
}
