package logger

import (
	"io"
	"log/slog"
)

// NewTestHandler discards all output; used by helpers.TestCtx.
func NewTestHandler(slog.Level) slog.Handler {
	return slog.NewTextHandler(io.Discard, nil)
}
