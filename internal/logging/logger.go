// Package logging builds the application logger. Algorithm packages
// stay silent; only the run controller, the server and the CLI log.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// New creates a configured application logger.
// It writes to Stderr so stdout stays free for rendered frames.
// It standardizes common keys (e.g., "error" -> "err").
func New(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Err standardizes error attributes under the "err" key.
func Err(err error) slog.Attr {
	return slog.Any("err", err)
}

// RunID tags records with the session identifier.
func RunID(id string) slog.Attr {
	return slog.String("run_id", id)
}

// Algo tags records with the algorithm name.
func Algo(name string) slog.Attr {
	return slog.String("algo", name)
}

// Speed tags records with the pacing level.
func Speed(level int) slog.Attr {
	return slog.Int("speed", level)
}
