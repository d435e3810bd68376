package logger

import (
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DefaultPath is where the window log goes when the config does not say otherwise.
const DefaultPath = "logs/window.txt"

const stampLayout = "2006-01-02 15:04:05"

// Logger keeps stamped lines in memory and appends each one to a file on disk.
// An empty path keeps lines in memory only.
type Logger struct {
	mu    sync.Mutex
	path  string
	lines []string
	now   func() time.Time
}

// New returns a Logger writing to path and makes sure its directory exists.
func New(path string) *Logger {
	if path != "" {
		_ = os.MkdirAll(filepath.Dir(path), 0755)
	}
	return &Logger{path: path, lines: make([]string, 0), now: time.Now}
}

// Log records line prefixed with [timestamp]. Disk errors are dropped; the
// in-memory copy is always kept.
func (l *Logger) Log(line string) {
	stamped := "[" + l.now().Format(stampLayout) + "] " + line

	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, stamped)

	if l.path == "" {
		return
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// Lines returns a copy of all stored lines.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}
