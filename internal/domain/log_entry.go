package domain

import (
	"fmt"
	"time"
)

const (
	LevelInfo  = "INFO"
	LevelError = "ERROR"
)

const timestampLayout = "2006-01-02 15:04:05,000"

type LogEntry struct {
	Timestamp time.Time
	Level     string
	Message   string
}

// Line renders the entry as "<timestamp> <LEVEL>:<message>".
func (e LogEntry) Line() string {
	return fmt.Sprintf("%s %s:%s", e.Timestamp.Local().Format(timestampLayout), e.Level, e.Message)
}
