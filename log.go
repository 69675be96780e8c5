package style

import (
	"fmt"
	"time"
)

// LogEntry is one warning or diagnostic message recorded by the engine -
// a malformed rule skipped during add_style_sheet, a selector that hit
// ErrCapacity, an unknown property name, and so on.
type LogEntry struct {
	Time    time.Time
	Level   string
	Source  string
	Message string
}

func (le *LogEntry) String() string {
	return fmt.Sprintf("[%s] %s (%s): %s", le.Time.Format(time.RFC3339), le.Level, le.Source, le.Message)
}

// Log is a fixed-capacity ring buffer of LogEntry, oldest entries
// evicted first once full. The engine keeps one as its warning sink for
// non-fatal problems encountered while loading a stylesheet (§6: errors
// on a single rule are collected, not raised, so one bad rule doesn't
// abort the whole sheet).
type Log struct {
	entries []LogEntry
	size    int
	start   int
	count   int
}

// NewLog creates a log holding at most size entries.
func NewLog(size int) *Log {
	return &Log{
		entries: make([]LogEntry, size),
		size:    size,
	}
}

// Add appends a formatted entry, evicting the oldest one if the buffer
// is full.
func (l *Log) Add(source, level, message string, params ...any) {
	index := (l.start + l.count) % l.size
	l.entries[index] = LogEntry{
		Time:    time.Now(),
		Level:   level,
		Source:  source,
		Message: fmt.Sprintf(message, params...),
	}

	if l.count < l.size {
		l.count++
	} else {
		l.start = (l.start + 1) % l.size
	}
}

// Warnf adds an entry at "WARN" level - the level add_style_sheet logs
// skipped rules under.
func (l *Log) Warnf(source, message string, params ...any) {
	l.Add(source, "WARN", message, params...)
}

// Length returns the number of entries currently held.
func (l *Log) Length() int {
	return l.count
}

// Iter streams the log's entries oldest-first.
func (l *Log) Iter() <-chan LogEntry {
	ch := make(chan LogEntry)

	go func() {
		defer close(ch)
		for i := range l.count {
			ch <- l.entries[(l.start+i)%l.size]
		}
	}()

	return ch
}
