package logging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/dunamismax/imgconvert/internal/domain"
	"github.com/dunamismax/imgconvert/internal/store"
)

// Logger appends timestamped entries to the primary store and every mirror.
type Logger struct {
	mu      sync.Mutex
	primary store.EntryStore
	mirrors []store.EntryStore
	diag    *log.Logger
	now     func() time.Time
}

func New(diag *log.Logger, primary store.EntryStore, mirrors ...store.EntryStore) *Logger {
	if diag == nil {
		diag = log.New(io.Discard, "", 0)
	}
	return &Logger{
		primary: primary,
		mirrors: mirrors,
		diag:    diag,
		now:     time.Now,
	}
}

// Record writes one entry. Mirror failures are reported on the diagnostics
// logger only; a primary store failure is returned.
func (lg *Logger) Record(ctx context.Context, level, message string) error {
	lg.mu.Lock()
	defer lg.mu.Unlock()

	entry := domain.LogEntry{
		Timestamp: lg.now(),
		Level:     level,
		Message:   message,
	}

	for _, mirror := range lg.mirrors {
		if err := mirror.Append(ctx, entry); err != nil {
			lg.diag.Printf("log mirror append failed level=%s err=%v", level, err)
		}
	}

	if lg.primary == nil {
		return errors.New("log store is not configured")
	}
	if err := lg.primary.Append(ctx, entry); err != nil {
		return fmt.Errorf("record %s entry: %w", level, err)
	}
	return nil
}

func (lg *Logger) Infof(ctx context.Context, format string, args ...any) error {
	return lg.Record(ctx, domain.LevelInfo, fmt.Sprintf(format, args...))
}

// Errorf records message followed by the diagnostic trace of cause.
func (lg *Logger) Errorf(ctx context.Context, cause error, format string, args ...any) error {
	message := fmt.Sprintf(format, args...)
	if trace := Trace(cause); trace != "" {
		message += "\n" + trace
	}
	return lg.Record(ctx, domain.LevelError, message)
}

func (lg *Logger) Close() error {
	var errs []error
	for _, mirror := range lg.mirrors {
		if err := mirror.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if lg.primary != nil {
		if err := lg.primary.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Trace lists every layer of an error chain, outermost first.
func Trace(err error) string {
	if err == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("Trace (outermost first):")
	writeTrace(&b, err, 1)
	return b.String()
}

func writeTrace(b *strings.Builder, err error, depth int) {
	for err != nil {
		fmt.Fprintf(b, "\n%s%T: %s", strings.Repeat("  ", depth), err, err.Error())

		if joined, ok := err.(interface{ Unwrap() []error }); ok {
			for _, inner := range joined.Unwrap() {
				writeTrace(b, inner, depth+1)
			}
			return
		}
		err = errors.Unwrap(err)
	}
}
