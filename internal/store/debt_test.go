package store

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/RyanCwynar/byldr-finance-backend/internal/errs"
	"github.com/RyanCwynar/byldr-finance-backend/internal/models"
)

func TestDebtStoreWithEmulator(t *testing.T) {
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}

	ctx := context.Background()
	client, err := firestore.NewClient(ctx, "test-project")
	if err != nil {
		t.Fatalf("firestore client error: %v", err)
	}
	defer client.Close()

	store := NewDebtStore(client)
	uid := "user"

	d := &models.Debt{DebtID: "d1", Name: "Car loan", Value: 8000}
	if err := store.Create(ctx, uid, d); err != nil {
		t.Fatalf("create error: %v", err)
	}

	got, err := store.Get(ctx, uid, "d1")
	if err != nil {
		t.Fatalf("get error: %v", err)
	}
	if got.Name != "Car loan" || got.Value != 8000 {
		t.Fatalf("debt mismatch: %+v", got)
	}

	_, err = store.Get(ctx, uid, "missing")
	var nferr *errs.NotFoundError
	if !errors.As(err, &nferr) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}

	// History points come back in timestamp order regardless of insert order.
	base := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	points := []*models.DebtHistoryPoint{
		{PointID: "p2", Timestamp: base.AddDate(0, 0, 7), Value: 7900},
		{PointID: "p1", Timestamp: base, Value: 8000},
	}
	for _, p := range points {
		if err := store.CreateHistoryPoint(ctx, uid, "d1", p); err != nil {
			t.Fatalf("create history point error: %v", err)
		}
	}

	history, err := store.ListHistory(ctx, uid, "d1")
	if err != nil {
		t.Fatalf("list history error: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 points, got %d", len(history))
	}
	if history[0].PointID != "p1" || history[1].PointID != "p2" {
		t.Fatalf("history out of order: %+v", history)
	}

	if err := store.DeleteHistoryPoint(ctx, uid, "d1", "p1"); err != nil {
		t.Fatalf("delete history point error: %v", err)
	}

	// Deleting the debt cascades to the remaining history points.
	if err := store.Delete(ctx, uid, "d1"); err != nil {
		t.Fatalf("delete error: %v", err)
	}
	history, err = store.ListHistory(ctx, uid, "d1")
	if err != nil {
		t.Fatalf("list history after delete error: %v", err)
	}
	if len(history) != 0 {
		t.Fatalf("expected empty history after delete, got %d", len(history))
	}
}
