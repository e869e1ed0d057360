package models

import (
	"time"
)

// DailyMetric is one point of a user's net-worth series. Real points are
// written by the snapshot job; points with IsProjected set are synthesized
// by the forecast projector and never persisted.
type DailyMetric struct {
	MetricID    string             `firestore:"metricId" json:"metricId,omitempty"`
	Date        time.Time          `firestore:"date" json:"date"`
	NetWorth    float64            `firestore:"netWorth" json:"netWorth"`
	Assets      float64            `firestore:"assets" json:"assets"`
	Debts       float64            `firestore:"debts" json:"debts"`
	Prices      map[string]float64 `firestore:"prices" json:"prices,omitempty"`
	IsProjected bool               `firestore:"isProjected" json:"isProjected,omitempty"`
}
