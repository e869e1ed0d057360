package finance

import (
	"math"
	"time"

	"github.com/RyanCwynar/byldr-finance-backend/internal/models"
)

const forecastMonths = 12

// CashFlow holds monthly income and cost in two layers: the stored
// recurring totals and the caller's slider adjustments. The layers are
// additive; a slider value supplements the recurring totals rather than
// replacing them.
type CashFlow struct {
	SliderIncome    float64
	SliderCost      float64
	RecurringIncome float64
	RecurringCost   float64
}

// Net is the combined monthly cash flow.
func (f CashFlow) Net() float64 {
	return (f.SliderIncome + f.RecurringIncome) - (f.SliderCost + f.RecurringCost)
}

// Snapshot is a net-worth baseline override, used when the caller has
// fresher values than the last persisted metric.
type Snapshot struct {
	NetWorth float64
	Assets   float64
	Debts    float64
}

// SimulationTarget is a hypothetical revaluation of the portfolio twelve
// months out.
type SimulationTarget struct {
	NetWorth float64
	Assets   float64
	Debts    float64
}

type ProjectOptions struct {
	Current    *Snapshot
	Simulation *SimulationTarget
}

// Project produces twelve monthly forecast points starting the first day of
// the month after the last metric's date. Without a simulation target, net
// worth moves by the net cash flow each month while assets and debts hold
// flat. With one, the per-month revaluation delta is blended additively into
// net worth on top of cash flow, and assets and debts follow the revaluation
// alone. Simulated debt is clamped so it can shrink but never grow: debt
// growth must come from actual borrowing, not price swings.
//
// A nil last metric means no baseline exists and yields an empty slice. The
// baseline point itself is not included; callers prepend real history for
// chart continuity.
func Project(last *models.DailyMetric, flow CashFlow, opts ProjectOptions) []models.DailyMetric {
	if last == nil {
		return nil
	}

	start := Snapshot{NetWorth: last.NetWorth, Assets: last.Assets, Debts: last.Debts}
	if opts.Current != nil {
		start = *opts.Current
	}

	var deltaNetWorth, deltaAssets, deltaDebts float64
	if opts.Simulation != nil {
		target := *opts.Simulation
		deltaNetWorth = (target.NetWorth - start.NetWorth) / forecastMonths
		deltaAssets = (target.Assets - start.Assets) / forecastMonths
		deltaDebts = (math.Min(start.Debts, target.Debts) - start.Debts) / forecastMonths
	}

	net := flow.Net()
	first := firstOfNextMonth(last.Date)
	prices := copyPrices(last.Prices)

	points := make([]models.DailyMetric, 0, forecastMonths)
	for i := 0; i < forecastMonths; i++ {
		months := float64(i + 1)
		p := models.DailyMetric{
			Date:        first.AddDate(0, i, 0),
			Prices:      prices,
			IsProjected: true,
		}
		if opts.Simulation != nil {
			p.NetWorth = start.NetWorth + deltaNetWorth*months + net*months
			p.Assets = start.Assets + deltaAssets*months
			p.Debts = start.Debts + deltaDebts*months
		} else {
			p.NetWorth = start.NetWorth + net*months
			p.Assets = start.Assets
			p.Debts = start.Debts
		}
		points = append(points, p)
	}
	return points
}

func firstOfNextMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, 1, 0)
}

func copyPrices(prices map[string]float64) map[string]float64 {
	if prices == nil {
		return nil
	}
	out := make(map[string]float64, len(prices))
	for k, v := range prices {
		out[k] = v
	}
	return out
}
