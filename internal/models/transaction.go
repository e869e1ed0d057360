package models

import (
	"time"
)

// RecurringTransaction is a repeating cash flow. Exactly one schedule shape
// is meaningful per frequency: daysOfMonth for monthly, daysOfWeek for
// weekly, month+day for quarterly and yearly. The monthly-equivalent amount
// is always recomputed, never persisted.
type RecurringTransaction struct {
	TransactionID string    `firestore:"transactionId" json:"transactionId"`
	Name          string    `firestore:"name" json:"name"`
	Amount        float64   `firestore:"amount" json:"amount"` // per occurrence, base currency
	Type          string    `firestore:"type" json:"type"`     // "income" or "expense"
	Frequency     string    `firestore:"frequency" json:"frequency"`
	DaysOfMonth   []int     `firestore:"daysOfMonth" json:"daysOfMonth,omitempty"` // 1-31
	DaysOfWeek    []int     `firestore:"daysOfWeek" json:"daysOfWeek,omitempty"`   // 0-6, Sunday = 0
	Month         int       `firestore:"month" json:"month,omitempty"`             // 1-12
	Day           int       `firestore:"day" json:"day,omitempty"`                 // 1-31
	Tags          []string  `firestore:"tags" json:"tags,omitempty"`
	CreatedAt     time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `firestore:"updatedAt" json:"updatedAt"`
}

// OneTimeTransaction is a single past or future cash event. Hidden
// transactions are kept but excluded from totals and breakdowns.
type OneTimeTransaction struct {
	TransactionID string    `firestore:"transactionId" json:"transactionId"`
	Name          string    `firestore:"name" json:"name"`
	Amount        float64   `firestore:"amount" json:"amount"`
	Type          string    `firestore:"type" json:"type"` // "income" or "expense"
	Date          time.Time `firestore:"date" json:"date"`
	Tags          []string  `firestore:"tags" json:"tags,omitempty"`
	Hidden        bool      `firestore:"hidden" json:"hidden,omitempty"`
	CreatedAt     time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `firestore:"updatedAt" json:"updatedAt"`
}
