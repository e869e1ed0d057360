package logger

import (
	"log/slog"
	"os"
)

// NewCloudRunHandler returns a handler emitting one JSON object per line in
// the shape Cloud Logging expects: the slog level becomes the `severity`
// field and the record message is emitted under `message`. Cloud Run reads
// all severities from stdout.
func NewCloudRunHandler(level slog.Level) slog.Handler {
	return slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			switch a.Key {
			case slog.LevelKey:
				lvl, _ := a.Value.Any().(slog.Level)
				return slog.String("severity", severity(lvl))
			case slog.MessageKey:
				a.Key = "message"
			}
			return a
		},
	})
}

func severity(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "ERROR"
	case level >= slog.LevelWarn:
		return "WARNING"
	case level >= slog.LevelInfo:
		return "INFO"
	default:
		return "DEBUG"
	}
}
