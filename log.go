package tme

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
)

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, errors.Errorf("unknown log level %q", s)
}

// OpenLog creates the logger described by cfg. The returned closer must be
// called when the engine shuts down.
func OpenLog(cfg Config) (*slog.Logger, io.Closer, error) {
	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	var w io.WriteCloser
	switch cfg.LogFile {
	case "-":
		w = nopCloser{os.Stderr}
	case "":
		w = nopCloser{io.Discard}
	default:
		f, err := os.Create(cfg.LogFile)
		if err != nil {
			return nil, nil, errors.Wrap(err, "open log file")
		}
		w = f
	}

	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(h), w, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
