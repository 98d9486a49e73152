package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// SetupFile points the standard logrus logger at path as JSON records.
// An empty path discards all output so the terminal UI stays clean.
// The returned closer must be closed on exit.
func SetupFile(path, level string) (io.Closer, error) {
	if err := setLevel(level); err != nil {
		return nil, err
	}

	if strings.TrimSpace(path) == "" {
		log.SetOutput(io.Discard)
		return nopCloser{}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetFormatter(&log.JSONFormatter{})
	log.SetOutput(f)
	return f, nil
}

// SetupStderr sends text records to stderr. Used by the MCP binaries; the
// stdio transport owns stdout.
func SetupStderr(level string) error {
	if err := setLevel(level); err != nil {
		return err
	}
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetOutput(os.Stderr)
	return nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func setLevel(level string) error {
	if strings.TrimSpace(level) == "" {
		level = "info"
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	log.SetLevel(lvl)
	return nil
}
