package helpers

import (
	"context"
	"log/slog"

	"github.com/RyanCwynar/byldr-finance-backend/pkg/logger"
)

// TestCtx returns a context carrying a silent test logger.
func TestCtx() context.Context {
	log := slog.New(logger.NewTestHandler(slog.LevelInfo))
	return logger.ToContext(context.Background(), log)
}
