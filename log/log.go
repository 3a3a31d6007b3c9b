package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// The TUI owns stdout, so loggers write to a file in the temp dir.
var (
	InfoLog    *log.Logger
	WarningLog *log.Logger
	ErrorLog   *log.Logger

	logFile *os.File
	once    sync.Once
)

// Initialize sets up the package loggers. headless selects a separate log
// file so a background render doesn't interleave with an interactive run.
func Initialize(headless bool) {
	once.Do(func() {
		name := "shapestudio.log"
		if headless {
			name = "shapestudio-headless.log"
		}

		f, err := os.OpenFile(
			filepath.Join(os.TempDir(), name),
			os.O_CREATE|os.O_APPEND|os.O_WRONLY,
			0o644,
		)
		var out io.Writer = f
		if err != nil {
			// Fall back to discarding; a broken log file must not take
			// the app down.
			out = io.Discard
		} else {
			logFile = f
		}

		flags := log.LstdFlags | log.Lshortfile
		InfoLog = log.New(out, "INFO: ", flags)
		WarningLog = log.New(out, "WARN: ", flags)
		ErrorLog = log.New(out, "ERROR: ", flags)
	})
}

// Close flushes and closes the log file.
func Close() {
	if logFile != nil {
		_ = logFile.Close()
	}
}

// Path returns the location of the active log file, for the debug command.
func Path() string {
	if logFile == nil {
		return ""
	}
	return logFile.Name()
}

// Every rate-limits repeated log lines in tight loops.
type Every struct {
	interval time.Duration
	last     time.Time
}

func NewEvery(interval time.Duration) *Every {
	return &Every{interval: interval}
}

// ShouldLog reports whether enough time has passed since the last
// positive answer.
func (e *Every) ShouldLog() bool {
	now := time.Now()
	if now.Sub(e.last) >= e.interval {
		e.last = now
		return true
	}
	return false
}

// Since is a convenience for timing log lines.
func Since(t time.Time) string {
	return fmt.Sprintf("%.2fms", float64(time.Since(t).Microseconds())/1000)
}
