package services

import (
	"context"
	"time"

	"github.com/RyanCwynar/byldr-finance-backend/internal/models"
	"github.com/RyanCwynar/byldr-finance-backend/pkg/logger"
)

type snapshotUserStore interface {
	ListUIDs(ctx context.Context) ([]string, error)
}

type snapshotMetricService interface {
	Snapshot(ctx context.Context, uid string, now time.Time) (*models.DailyMetric, error)
}

// snapshotRunner records one net-worth point per user; the cron service
// invokes it on a schedule.
type snapshotRunner struct {
	users   snapshotUserStore
	metrics snapshotMetricService
}

func NewSnapshotRunner(users snapshotUserStore, metrics snapshotMetricService) *snapshotRunner {
	return &snapshotRunner{users: users, metrics: metrics}
}

// RunAll snapshots every user. A failure for one user is logged and does not
// stop the rest of the batch; the first error is reported after the sweep.
func (r *snapshotRunner) RunAll(ctx context.Context, now time.Time) error {
	log := logger.FromContext(ctx)

	uids, err := r.users.ListUIDs(ctx)
	if err != nil {
		return err
	}

	var firstErr error
	for _, uid := range uids {
		if _, err := r.metrics.Snapshot(ctx, uid, now); err != nil {
			log.Error("snapshot failed", "uid", uid, "error", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	log.Info("snapshot sweep finished", "users", len(uids))
	return firstErr
}
