package dto

import (
	"github.com/RyanCwynar/byldr-finance-backend/internal/models"
)

// ForecastArgs carries the caller's slider adjustments, optional current
// snapshot override, and optional simulation targets. Slider income/cost are
// additive with the stored recurring totals, not replacements.
type ForecastArgs struct {
	Income float64
	Cost   float64

	CurrentNetWorth *float64
	CurrentAssets   *float64
	CurrentDebts    *float64

	SimNetWorth *float64
	SimAssets   *float64
	SimDebts    *float64
}

func (a ForecastArgs) HasSimulation() bool {
	return a.SimNetWorth != nil || a.SimAssets != nil || a.SimDebts != nil
}

type ForecastResult struct {
	HasData    bool                 `json:"hasData"`
	Baseline   *models.DailyMetric  `json:"baseline,omitempty"`
	Projection []models.DailyMetric `json:"projection,omitempty"`
}
