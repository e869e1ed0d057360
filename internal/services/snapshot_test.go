package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/RyanCwynar/byldr-finance-backend/internal/models"
	"github.com/RyanCwynar/byldr-finance-backend/pkg/helpers"
)

type fakeSnapshotUserStore struct {
	uids []string
	err  error
}

func (f *fakeSnapshotUserStore) ListUIDs(_ context.Context) ([]string, error) {
	return f.uids, f.err
}

type fakeSnapshotMetricService struct {
	failFor map[string]error
	calls   []string
}

func (f *fakeSnapshotMetricService) Snapshot(_ context.Context, uid string, _ time.Time) (*models.DailyMetric, error) {
	f.calls = append(f.calls, uid)
	if err, ok := f.failFor[uid]; ok {
		return nil, err
	}
	return &models.DailyMetric{MetricID: "m-" + uid}, nil
}

func TestRunAll_SnapshotsEveryUser(t *testing.T) {
	users := &fakeSnapshotUserStore{uids: []string{"u1", "u2", "u3"}}
	metrics := &fakeSnapshotMetricService{}
	runner := NewSnapshotRunner(users, metrics)

	if err := runner.RunAll(helpers.TestCtx(), time.Now()); err != nil {
		t.Fatalf("RunAll error: %v", err)
	}
	if len(metrics.calls) != 3 {
		t.Fatalf("expected 3 snapshots, got %d", len(metrics.calls))
	}
}

func TestRunAll_FailureDoesNotStopSweep(t *testing.T) {
	failure := errors.New("firestore unavailable")
	users := &fakeSnapshotUserStore{uids: []string{"u1", "u2", "u3"}}
	metrics := &fakeSnapshotMetricService{failFor: map[string]error{"u2": failure}}
	runner := NewSnapshotRunner(users, metrics)

	err := runner.RunAll(helpers.TestCtx(), time.Now())
	if !errors.Is(err, failure) {
		t.Fatalf("expected the sweep error to surface, got %v", err)
	}
	if len(metrics.calls) != 3 {
		t.Fatalf("expected all 3 users attempted, got %d", len(metrics.calls))
	}
}

func TestRunAll_UserListError(t *testing.T) {
	users := &fakeSnapshotUserStore{err: errors.New("firestore unavailable")}
	runner := NewSnapshotRunner(users, &fakeSnapshotMetricService{})

	if err := runner.RunAll(helpers.TestCtx(), time.Now()); err == nil {
		t.Fatal("expected error")
	}
}
