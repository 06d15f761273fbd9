package reporting

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Sink receives one fully rendered report or alert message. Sinks for
// unconfigured outputs are silent no-ops, which keeps the measurement
// loop free of output branching.
type Sink interface {
	Write(message string) error
}

// clearScreen is the ANSI erase-display + cursor-home sequence.
const clearScreen = "\x1b[2J\x1b[H"

// ConsoleSink writes reports to a terminal, clearing the previous
// report first. A disabled ConsoleSink drops everything.
type ConsoleSink struct {
	out     io.Writer
	enabled bool
	clear   bool
}

// NewConsoleSink creates a console sink writing to out. When enabled
// is false, Write is a no-op. When clear is true, every write starts
// by clearing the screen.
func NewConsoleSink(out io.Writer, enabled, clear bool) *ConsoleSink {
	return &ConsoleSink{out: out, enabled: enabled, clear: clear}
}

// Enabled reports whether writes will produce output.
func (s *ConsoleSink) Enabled() bool { return s.enabled }

func (s *ConsoleSink) Write(message string) error {
	if !s.enabled {
		return nil
	}
	if s.clear {
		if _, err := fmt.Fprint(s.out, clearScreen); err != nil {
			return fmt.Errorf("failed to clear screen: %w", err)
		}
	}
	if _, err := fmt.Fprintln(s.out, message); err != nil {
		return fmt.Errorf("failed to write console report: %w", err)
	}
	return nil
}

// FileSink appends timestamped alert entries to a log file. The file
// is opened, written, and closed within each Write, so no handle is
// held between cycles. An empty path disables the sink entirely.
type FileSink struct {
	path string
	now  func() time.Time
}

// NewFileSink creates a file sink for the given path. An empty path
// yields a sink whose Write does nothing and touches no file.
func NewFileSink(path string) *FileSink {
	return &FileSink{path: path, now: time.Now}
}

// Write appends one entry: every line of the message prefixed with the
// current timestamp and a separator, followed by one timestamped blank
// line to keep entries readable.
func (s *FileSink) Write(message string) error {
	if s.path == "" {
		return nil
	}

	prefix := Timestamp(s.now()) + " | "
	var b strings.Builder
	for _, line := range strings.Split(message+"\n", "\n") {
		b.WriteString(prefix)
		b.WriteString(line)
		b.WriteByte('\n')
	}

	file, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", s.path, err)
	}
	defer file.Close()

	if _, err := file.WriteString(b.String()); err != nil {
		return fmt.Errorf("failed to append to log file %s: %w", s.path, err)
	}
	return nil
}
