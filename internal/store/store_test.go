package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dunamismax/imgconvert/internal/domain"
	"github.com/redis/go-redis/v9"
)

func TestFileEntryStoreAppendsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conversion.log")
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.Local)

	first, err := OpenFileEntryStore(path)
	if err != nil {
		t.Fatalf("open log: %v", err)
	}
	if err := first.Append(context.Background(), domain.LogEntry{Timestamp: ts, Level: domain.LevelInfo, Message: "first"}); err != nil {
		t.Fatalf("append first: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("close log: %v", err)
	}

	second, err := OpenFileEntryStore(path)
	if err != nil {
		t.Fatalf("reopen log: %v", err)
	}
	defer second.Close()
	if err := second.Append(context.Background(), domain.LogEntry{Timestamp: ts, Level: domain.LevelError, Message: "second"}); err != nil {
		t.Fatalf("append second: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), data)
	}
	if lines[0] != "2024-01-02 03:04:05,000 INFO:first" {
		t.Fatalf("unexpected first line %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], " ERROR:second") {
		t.Fatalf("unexpected second line %q", lines[1])
	}
}

func TestFileEntryStoreRejectsAppendAfterClose(t *testing.T) {
	s, err := OpenFileEntryStore(filepath.Join(t.TempDir(), "conversion.log"))
	if err != nil {
		t.Fatalf("open log: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close log: %v", err)
	}
	if err := s.Append(context.Background(), domain.LogEntry{Level: domain.LevelInfo}); err == nil {
		t.Fatal("expected append on closed store to fail")
	}
}

func TestOpenFileEntryStoreRequiresPath(t *testing.T) {
	if _, err := OpenFileEntryStore(" "); err == nil {
		t.Fatal("expected error for empty log path")
	}
}

func TestMemoryEntryStoreReturnsCopy(t *testing.T) {
	s := NewMemoryEntryStore()
	_ = s.Append(context.Background(), domain.LogEntry{Level: domain.LevelInfo, Message: "a"})

	entries := s.Entries()
	entries[0].Message = "mutated"

	if got := s.Entries()[0].Message; got != "a" {
		t.Fatalf("expected stored entry to be unchanged, got %q", got)
	}
}

func TestRedisStreamEntryStoreReportsUnreachableServer(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	s, err := NewRedisStreamEntryStore(client, "")
	if err != nil {
		t.Fatalf("new redis store: %v", err)
	}
	defer s.Close()

	err = s.Append(context.Background(), domain.LogEntry{Timestamp: time.Now(), Level: domain.LevelInfo, Message: "x"})
	if err == nil {
		t.Fatal("expected xadd against closed port to fail")
	}
	if !strings.Contains(err.Error(), DefaultRedisStream) {
		t.Fatalf("expected error to name the stream, got %v", err)
	}
}

func TestNewRedisStreamEntryStoreRequiresClient(t *testing.T) {
	if _, err := NewRedisStreamEntryStore(nil, "s"); err == nil {
		t.Fatal("expected error for nil client")
	}
}
