package logging

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/dunamismax/imgconvert/internal/domain"
	"github.com/dunamismax/imgconvert/internal/store"
)

func TestRecordCapturesTimestampAndLevel(t *testing.T) {
	primary := store.NewMemoryEntryStore()
	lg := New(nil, primary)
	fixed := time.Date(2024, 5, 6, 7, 8, 9, 0, time.Local)
	lg.now = func() time.Time { return fixed }

	if err := lg.Infof(context.Background(), "Selected file: %s", "/tmp/photo.jpg"); err != nil {
		t.Fatalf("infof: %v", err)
	}

	entries := primary.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Level != domain.LevelInfo {
		t.Fatalf("expected INFO, got %s", entries[0].Level)
	}
	if !entries[0].Timestamp.Equal(fixed) {
		t.Fatalf("expected timestamp %v, got %v", fixed, entries[0].Timestamp)
	}
	if entries[0].Message != "Selected file: /tmp/photo.jpg" {
		t.Fatalf("unexpected message %q", entries[0].Message)
	}
}

func TestErrorfAppendsTrace(t *testing.T) {
	primary := store.NewMemoryEntryStore()
	lg := New(nil, primary)

	root := errors.New("image: unknown format")
	cause := fmt.Errorf("transcode stage: %w", fmt.Errorf("decode source image: %w", root))

	if err := lg.Errorf(context.Background(), cause, "Conversion failed: %v", cause); err != nil {
		t.Fatalf("errorf: %v", err)
	}

	entries := primary.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	msg := entries[0].Message
	if entries[0].Level != domain.LevelError {
		t.Fatalf("expected ERROR, got %s", entries[0].Level)
	}
	if !strings.HasPrefix(msg, "Conversion failed: transcode stage:") {
		t.Fatalf("unexpected message head %q", msg)
	}
	if strings.Count(msg, "\n") != 4 {
		t.Fatalf("expected trace header plus 3 layers, got %q", msg)
	}
	if !strings.HasSuffix(msg, "*errors.errorString: image: unknown format") {
		t.Fatalf("expected innermost layer last, got %q", msg)
	}
}

func TestMirrorFailureDoesNotFailRecord(t *testing.T) {
	var diag bytes.Buffer
	primary := store.NewMemoryEntryStore()
	lg := New(log.New(&diag, "", 0), primary, failingStore{})

	if err := lg.Infof(context.Background(), "hello"); err != nil {
		t.Fatalf("expected mirror failure to be swallowed, got %v", err)
	}
	if len(primary.Entries()) != 1 {
		t.Fatal("expected primary store to receive the entry")
	}
	if !strings.Contains(diag.String(), "log mirror append failed") {
		t.Fatalf("expected diagnostics about mirror failure, got %q", diag.String())
	}
}

func TestPrimaryFailureIsReturned(t *testing.T) {
	lg := New(nil, failingStore{})
	if err := lg.Infof(context.Background(), "hello"); err == nil {
		t.Fatal("expected primary store failure to be returned")
	}
}

func TestRecordWritesLogFileLine(t *testing.T) {
	path := t.TempDir() + "/conversion.log"
	primary, err := store.OpenFileEntryStore(path)
	if err != nil {
		t.Fatalf("open log: %v", err)
	}
	lg := New(nil, primary)

	if err := lg.Infof(context.Background(), "File converted and saved as %s", "/tmp/a_converted.png"); err != nil {
		t.Fatalf("infof: %v", err)
	}
	if err := lg.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), " INFO:File converted and saved as /tmp/a_converted.png\n") {
		t.Fatalf("unexpected log content %q", data)
	}
}

func TestTraceOfNilIsEmpty(t *testing.T) {
	if got := Trace(nil); got != "" {
		t.Fatalf("expected empty trace, got %q", got)
	}
}

type failingStore struct{}

func (failingStore) Append(context.Context, domain.LogEntry) error {
	return errors.New("disk full")
}

func (failingStore) Close() error { return nil }
