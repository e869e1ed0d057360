package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/RyanCwynar/byldr-finance-backend/internal/bootstrap"
	"github.com/RyanCwynar/byldr-finance-backend/internal/config"
	"github.com/RyanCwynar/byldr-finance-backend/internal/services"
	"github.com/RyanCwynar/byldr-finance-backend/internal/store"
	"github.com/RyanCwynar/byldr-finance-backend/pkg/logger"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	// stores
	ustore := store.NewUserStore(bs.Firestore)
	astore := store.NewAssetStore(bs.Firestore)
	dstore := store.NewDebtStore(bs.Firestore)
	mstore := store.NewMetricStore(bs.Firestore)

	// services
	mserv := services.NewMetricService(mstore, astore, dstore)
	runner := services.NewSnapshotRunner(ustore, mserv)

	ctx := logger.ToContext(context.Background(), bs.Log)

	c := cron.New()
	_, err = c.AddFunc(cfg.SnapshotSchedule, func() {
		if err := runner.RunAll(ctx, time.Now()); err != nil {
			bs.Log.Error("snapshot sweep had failures", "error", err)
		}
	})
	exitOnError("invalid snapshot schedule", err, bs.Log)

	bs.Log.Info("snapshot scheduler started", "schedule", cfg.SnapshotSchedule)
	c.Start()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	bs.Log.Info("snapshot scheduler stopping")
	<-c.Stop().Done()
}
