package dto

// Transaction type constants
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// Frequency constants
const (
	FrequencyMonthly   = "monthly"
	FrequencyWeekly    = "weekly"
	FrequencyQuarterly = "quarterly"
	FrequencyYearly    = "yearly"
)

type CreateRecurringTransactionRequest struct {
	Name        string   `json:"name"`
	Amount      float64  `json:"amount"`
	Type        string   `json:"type"`
	Frequency   string   `json:"frequency"`
	DaysOfMonth []int    `json:"daysOfMonth,omitempty"`
	DaysOfWeek  []int    `json:"daysOfWeek,omitempty"`
	Month       int      `json:"month,omitempty"`
	Day         int      `json:"day,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

type UpdateRecurringTransactionRequest = CreateRecurringTransactionRequest

type CreateOneTimeTransactionRequest struct {
	Name   string   `json:"name"`
	Amount float64  `json:"amount"`
	Type   string   `json:"type"`
	Date   int64    `json:"date"` // unix-ms
	Tags   []string `json:"tags,omitempty"`
	Hidden bool     `json:"hidden,omitempty"`
}

type UpdateOneTimeTransactionRequest = CreateOneTimeTransactionRequest

type SetHiddenRequest struct {
	Hidden bool `json:"hidden"`
}

// MonthlySummaryResult reports the combined monthly-equivalent income and
// cost across recurring and visible one-time transactions.
type MonthlySummaryResult struct {
	MonthlyIncome float64 `json:"monthlyIncome"`
	MonthlyCost   float64 `json:"monthlyCost"`
}

// CostBreakdownItem is one bucket of a cost breakdown. Label is a
// transaction name, a tag, or "Other" depending on the grouping.
type CostBreakdownItem struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

type CostBreakdownResult struct {
	Items []CostBreakdownItem `json:"items"`
}
