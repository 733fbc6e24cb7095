package interpreter

import (
	"io"
	"log/slog"
	"os"
)

// DebugEnv enables debug logging in NewDebugLogger when set to any value
const DebugEnv = "LINDENMAKER_DEBUG"

// NewDebugLogger creates a compact text logger on w. Debug records are kept
// when debug is true or DebugEnv is set; otherwise only info and above.
func NewDebugLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug || os.Getenv(DebugEnv) != "" {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Remove timestamp for cleaner output
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			if a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}
