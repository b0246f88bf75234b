package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"
	"strings"
)

// New builds the process logger: JSON records decorated with the probe-cycle
// ID and constant program attributes.
func New(w io.Writer, level slog.Level) *slog.Logger {
	handler := NewCycleHandler(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))

	return slog.New(handler).With(NewProgramAttr())
}

func NewProgramAttr() slog.Attr {
	buildInfo, _ := debug.ReadBuildInfo()
	hostname, _ := os.Hostname()

	return slog.Group("program",
		slog.Int("pid", os.Getpid()),
		slog.String("machine", hostname),
		slog.String("version", buildInfo.Main.Version),
	)
}

func Error(err error) slog.Attr {
	return slog.Any("error", err)
}

// Level resolves the effective log level. The -v/-V shorthands take
// precedence over an explicit level, matching the historical CLI contract
// (quiet by default, -v for routine ticks, -V for every device call).
func Level(levelStr string, verbose, veryVerbose bool) (slog.Level, error) {
	if veryVerbose {
		return slog.LevelDebug, nil
	}

	if verbose {
		return slog.LevelInfo, nil
	}

	return ParseLevel(levelStr)
}

func ParseLevel(levelStr string) (slog.Level, error) {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.Level(-1), fmt.Errorf("invalid log level: %s", levelStr)
	}
}
