package finance

import (
	"sort"
	"time"

	"github.com/RyanCwynar/byldr-finance-backend/internal/dto"
	"github.com/RyanCwynar/byldr-finance-backend/internal/models"
)

const (
	weekWindow  = 7 * 24 * time.Hour
	monthWindow = 30 * 24 * time.Hour
)

// ChangeRates fits an ordinary least-squares line over the trailing week and
// month of a debt's value history and scales each slope to a per-window
// rate. Regressing over the whole window rather than its two endpoints keeps
// one noisy entry from dominating the rate. A window with fewer than two
// points or a zero time span yields a nil rate; fewer than two points
// overall yields both rates nil. The input is not mutated.
func ChangeRates(history []models.DebtHistoryPoint) dto.DebtChangeRates {
	if len(history) < 2 {
		return dto.DebtChangeRates{}
	}

	points := make([]models.DebtHistoryPoint, len(history))
	copy(points, history)
	sort.Slice(points, func(i, j int) bool {
		return points[i].Timestamp.Before(points[j].Timestamp)
	})
	latest := points[len(points)-1]

	return dto.DebtChangeRates{
		WeeklyChange:  windowRate(points, latest.Timestamp, weekWindow),
		MonthlyChange: windowRate(points, latest.Timestamp, monthWindow),
	}
}

// windowRate regresses value against unix-ms timestamps for the points
// inside [latest-window, latest] and returns slope scaled to the window
// length, i.e. change per week or per month.
func windowRate(points []models.DebtHistoryPoint, latest time.Time, window time.Duration) *float64 {
	cutoff := latest.Add(-window)

	var xs, ys []float64
	for _, p := range points {
		if p.Timestamp.Before(cutoff) {
			continue
		}
		xs = append(xs, float64(p.Timestamp.UnixMilli()))
		ys = append(ys, p.Value)
	}
	if len(xs) < 2 || xs[len(xs)-1] == xs[0] {
		return nil
	}

	slope, ok := regressionSlope(xs, ys)
	if !ok {
		return nil
	}
	rate := slope * float64(window.Milliseconds())
	return &rate
}

// regressionSlope returns the OLS slope of y over x. Sums are centered on
// the means because unix-ms x values are large enough to lose precision in
// the raw-moment form.
func regressionSlope(xs, ys []float64) (float64, bool) {
	n := float64(len(xs))
	var meanX, meanY float64
	for i := range xs {
		meanX += xs[i]
		meanY += ys[i]
	}
	meanX /= n
	meanY /= n

	var num, denom float64
	for i := range xs {
		dx := xs[i] - meanX
		num += dx * (ys[i] - meanY)
		denom += dx * dx
	}
	if denom == 0 {
		return 0, false
	}
	return num / denom, true
}
