package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DefaultPath is the log file used when no path is configured, relative to the working directory.
const DefaultPath = "logs/cube.txt"

// Logger keeps every line it is given in memory and appends it to a file on disk.
// When Echo is set, lines are also written there (stderr on the desktop, the console in the browser).
type Logger struct {
	mu    sync.Mutex
	path  string
	echo  io.Writer
	lines []string
	now   func() time.Time
}

// New returns a Logger writing to path and creates its directory. An empty path keeps lines in memory only.
// Failing to create the directory is not an error; file writes are simply skipped later.
func New(path string, echo io.Writer) *Logger {
	if path != "" {
		_ = os.MkdirAll(filepath.Dir(path), 0755)
	}
	return &Logger{path: path, echo: echo, lines: make([]string, 0), now: time.Now}
}

// Log stamps line with the local time and records it.
func (l *Logger) Log(line string) {
	stamped := "[" + l.now().Format("2006-01-02 15:04:05") + "] " + line

	l.mu.Lock()
	l.lines = append(l.lines, stamped)
	echo := l.echo
	path := l.path
	l.mu.Unlock()

	if echo != nil {
		_, _ = io.WriteString(echo, stamped+"\n")
	}
	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// Logf formats according to format and logs the result.
func (l *Logger) Logf(format string, args ...any) {
	l.Log(fmt.Sprintf(format, args...))
}

// Lines returns a copy of all stored lines.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}
