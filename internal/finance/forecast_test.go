package finance

import (
	"reflect"
	"testing"
	"time"

	"github.com/RyanCwynar/byldr-finance-backend/internal/models"
)

func baselineMetric() *models.DailyMetric {
	return &models.DailyMetric{
		MetricID: "m1",
		Date:     time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC),
		NetWorth: 1000,
		Assets:   1500,
		Debts:    500,
		Prices:   map[string]float64{"ETH": 2000},
	}
}

func TestProjectNoBaseline(t *testing.T) {
	if got := Project(nil, CashFlow{}, ProjectOptions{}); len(got) != 0 {
		t.Fatalf("expected empty projection, got %d points", len(got))
	}
}

func TestProjectCashFlowOnly(t *testing.T) {
	flow := CashFlow{
		SliderIncome:    50,
		RecurringIncome: 150,
		SliderCost:      25,
		RecurringCost:   75,
	}
	// net = (50+150) - (25+75) = 100

	points := Project(baselineMetric(), flow, ProjectOptions{})
	if len(points) != 12 {
		t.Fatalf("points length: got %d, want 12", len(points))
	}

	wantFirst := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
	for i, p := range points {
		if !p.IsProjected {
			t.Fatalf("point %d not marked projected", i)
		}
		if !p.Date.Equal(wantFirst.AddDate(0, i, 0)) {
			t.Fatalf("point %d date: got %v, want %v", i, p.Date, wantFirst.AddDate(0, i, 0))
		}
		wantNetWorth := 1000 + 100*float64(i+1)
		if p.NetWorth != wantNetWorth {
			t.Fatalf("point %d netWorth: got %v, want %v", i, p.NetWorth, wantNetWorth)
		}
		// Assets and debts hold flat without a simulation target.
		if p.Assets != 1500 || p.Debts != 500 {
			t.Fatalf("point %d assets/debts moved: %v/%v", i, p.Assets, p.Debts)
		}
		if p.Prices["ETH"] != 2000 {
			t.Fatalf("point %d lost baseline prices: %v", i, p.Prices)
		}
	}
}

func TestProjectSimulationBlendsWithCashFlow(t *testing.T) {
	flow := CashFlow{RecurringIncome: 50}
	sim := &SimulationTarget{NetWorth: 2200, Assets: 2700, Debts: 200}

	points := Project(baselineMetric(), flow, ProjectOptions{Simulation: sim})
	if len(points) != 12 {
		t.Fatalf("points length: got %d, want 12", len(points))
	}

	// Net worth delta (2200-1000)/12 = 100 plus cash flow 50 per month.
	if points[0].NetWorth != 1150 {
		t.Fatalf("first netWorth: got %v, want 1150", points[0].NetWorth)
	}
	if points[11].NetWorth != 2800 {
		t.Fatalf("last netWorth: got %v, want 2800", points[11].NetWorth)
	}
	// Assets and debts follow the simulation delta only; cash flow does not
	// move them.
	if points[11].Assets != 2700 {
		t.Fatalf("last assets: got %v, want 2700", points[11].Assets)
	}
	if points[11].Debts != 200 {
		t.Fatalf("last debts: got %v, want 200", points[11].Debts)
	}
}

func TestProjectSimulatedDebtNeverGrows(t *testing.T) {
	sim := &SimulationTarget{NetWorth: 1000, Assets: 1500, Debts: 900}

	points := Project(baselineMetric(), CashFlow{}, ProjectOptions{Simulation: sim})
	for i, p := range points {
		if p.Debts != 500 {
			t.Fatalf("point %d debts: got %v, want flat 500", i, p.Debts)
		}
	}
}

func TestProjectCurrentSnapshotOverride(t *testing.T) {
	current := &Snapshot{NetWorth: 5000, Assets: 6000, Debts: 1000}

	points := Project(baselineMetric(), CashFlow{RecurringIncome: 10}, ProjectOptions{Current: current})
	if points[0].NetWorth != 5010 {
		t.Fatalf("first netWorth: got %v, want 5010", points[0].NetWorth)
	}
	if points[0].Assets != 6000 || points[0].Debts != 1000 {
		t.Fatalf("override not applied: %v/%v", points[0].Assets, points[0].Debts)
	}
}

func TestProjectIsIdempotent(t *testing.T) {
	flow := CashFlow{SliderIncome: 123.45, RecurringCost: 67.89}
	sim := &SimulationTarget{NetWorth: 1234, Assets: 2345, Debts: 100}

	first := Project(baselineMetric(), flow, ProjectOptions{Simulation: sim})
	second := Project(baselineMetric(), flow, ProjectOptions{Simulation: sim})
	if !reflect.DeepEqual(first, second) {
		t.Fatal("identical inputs produced different projections")
	}
}

func TestProjectDoesNotShareBaselinePrices(t *testing.T) {
	last := baselineMetric()
	points := Project(last, CashFlow{}, ProjectOptions{})

	last.Prices["ETH"] = 1
	if points[0].Prices["ETH"] != 2000 {
		t.Fatal("projection shares the baseline's price map")
	}
}
