package gateway

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// FileLogger appends timestamped diagnostic lines to a dated log file. It
// satisfies the usecase Logger contract: writes are fire-and-forget and
// write failures stay invisible to the core.
type FileLogger struct {
	file *os.File
}

// NewFileLogger creates dir if needed and opens today's log file inside it,
// named <YYYY-MM-DD>-<name>. The file is opened in append mode so restarts
// within the same day keep extending the same log.
func NewFileLogger(dir, name string) (*FileLogger, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, fmt.Sprintf("%s-%s", time.Now().Format(time.DateOnly), name))
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return &FileLogger{file: file}, nil
}

// Info records an informational line.
func (l *FileLogger) Info(message string) {
	l.write("INFO", message)
}

// Error records an error line.
func (l *FileLogger) Error(message string) {
	l.write("ERROR", message)
}

func (l *FileLogger) write(level, message string) {
	// Ignoring the write result is deliberate: the logging contract has no
	// failure channel back to the caller.
	fmt.Fprintf(l.file, "[%s] [%s] %s\n", time.Now().Format(time.RFC3339), level, message)
}

// Close releases the underlying file handle.
func (l *FileLogger) Close() error {
	return l.file.Close()
}

// Path reports the file the logger is writing to.
func (l *FileLogger) Path() string {
	return l.file.Name()
}
