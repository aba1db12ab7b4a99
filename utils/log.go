package utils

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// LogTimeFormat is the timestamp layout of the log file lines.
const LogTimeFormat = "2006-01-02 15:04:05"

// NewLogger creates a timestamped logger writing to w at the given level.
func NewLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      LogTimeFormat,
		Level:           level,
	})
}

// OpenLog opens path for appending, creating it when missing.
// Previous content is always preserved.
func OpenLog(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
}
