package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/RyanCwynar/byldr-finance-backend/internal/dto"
	"github.com/RyanCwynar/byldr-finance-backend/internal/models"
	"github.com/RyanCwynar/byldr-finance-backend/pkg/helpers"
)

type fakeForecastMetricStore struct {
	latest *models.DailyMetric
	err    error
}

func (f *fakeForecastMetricStore) Latest(_ context.Context, _ string) (*models.DailyMetric, error) {
	return f.latest, f.err
}

func TestGetForecast_NoSnapshot(t *testing.T) {
	svc := NewForecastService(&fakeForecastMetricStore{}, &fakeRecurringStore{}, &fakeOneTimeStore{})

	got, err := svc.GetForecast(context.Background(), "uid1", dto.ForecastArgs{})
	if err != nil {
		t.Fatalf("GetForecast error: %v", err)
	}
	if got.HasData {
		t.Fatal("expected HasData=false with no snapshot")
	}
	if got.Baseline != nil || got.Projection != nil {
		t.Fatal("expected empty payload with no snapshot")
	}
}

func TestGetForecast_UsesRecurringTotals(t *testing.T) {
	baseline := &models.DailyMetric{
		MetricID: "m1",
		Date:     time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		NetWorth: 1000,
		Assets:   1500,
		Debts:    500,
	}
	rstore := &fakeRecurringStore{
		items: []models.RecurringTransaction{
			{Name: "Salary", Amount: 3000, Type: dto.TypeIncome, Frequency: dto.FrequencyMonthly},
			{Name: "Rent", Amount: 1000, Type: dto.TypeExpense, Frequency: dto.FrequencyMonthly},
		},
	}
	svc := NewForecastService(&fakeForecastMetricStore{latest: baseline}, rstore, &fakeOneTimeStore{})

	got, err := svc.GetForecast(context.Background(), "uid1", dto.ForecastArgs{})
	if err != nil {
		t.Fatalf("GetForecast error: %v", err)
	}
	if !got.HasData {
		t.Fatal("expected HasData=true")
	}
	if got.Baseline != baseline {
		t.Fatal("expected baseline to be the latest snapshot")
	}
	if len(got.Projection) != 12 {
		t.Fatalf("projection length mismatch: got %d", len(got.Projection))
	}
	// +2000/month on a 1000 start
	if got.Projection[0].NetWorth != 3000 {
		t.Fatalf("first point mismatch: got %v", got.Projection[0].NetWorth)
	}
	if got.Projection[11].NetWorth != 25000 {
		t.Fatalf("last point mismatch: got %v", got.Projection[11].NetWorth)
	}
}

func TestGetForecast_SlidersAddToRecurring(t *testing.T) {
	baseline := &models.DailyMetric{NetWorth: 0, Date: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)}
	rstore := &fakeRecurringStore{
		items: []models.RecurringTransaction{
			{Name: "Salary", Amount: 3000, Type: dto.TypeIncome, Frequency: dto.FrequencyMonthly},
		},
	}
	svc := NewForecastService(&fakeForecastMetricStore{latest: baseline}, rstore, &fakeOneTimeStore{})

	got, err := svc.GetForecast(context.Background(), "uid1", dto.ForecastArgs{Income: 500, Cost: 200})
	if err != nil {
		t.Fatalf("GetForecast error: %v", err)
	}
	// net = 3000 + 500 - 200
	if got.Projection[0].NetWorth != 3300 {
		t.Fatalf("first point mismatch: got %v", got.Projection[0].NetWorth)
	}
}

func TestGetForecast_SimulationDefaultsOmittedTargets(t *testing.T) {
	baseline := &models.DailyMetric{
		NetWorth: 1000,
		Assets:   1500,
		Debts:    500,
		Date:     time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	svc := NewForecastService(&fakeForecastMetricStore{latest: baseline}, &fakeRecurringStore{}, &fakeOneTimeStore{})

	got, err := svc.GetForecast(context.Background(), "uid1", dto.ForecastArgs{
		SimAssets: helpers.Ptr(2700.0),
	})
	if err != nil {
		t.Fatalf("GetForecast error: %v", err)
	}
	last := got.Projection[len(got.Projection)-1]
	if last.Assets != 2700 {
		t.Fatalf("assets target mismatch: got %v", last.Assets)
	}
	// Omitted debt target holds the starting value.
	if last.Debts != 500 {
		t.Fatalf("debts should hold at start: got %v", last.Debts)
	}
}

func TestGetForecast_StoreError(t *testing.T) {
	svc := NewForecastService(&fakeForecastMetricStore{err: errors.New("firestore unavailable")}, &fakeRecurringStore{}, &fakeOneTimeStore{})

	_, err := svc.GetForecast(context.Background(), "uid1", dto.ForecastArgs{})
	if err == nil {
		t.Fatal("expected error")
	}
}
