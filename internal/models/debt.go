package models

import (
	"time"
)

type Debt struct {
	DebtID    string    `firestore:"debtId" json:"debtId"`
	Name      string    `firestore:"name" json:"name"`
	Value     float64   `firestore:"value" json:"value"`
	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt" json:"updatedAt"`
}

// DebtHistoryPoint is one entry of a debt's value history. The series is
// append-only except for explicit edits and deletes of a point.
type DebtHistoryPoint struct {
	PointID   string    `firestore:"pointId" json:"pointId"`
	Timestamp time.Time `firestore:"timestamp" json:"timestamp"`
	Value     float64   `firestore:"value" json:"value"`
}
