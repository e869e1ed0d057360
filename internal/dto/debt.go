package dto

type CreateDebtRequest struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type UpdateDebtRequest = CreateDebtRequest

type CreateDebtHistoryPointRequest struct {
	Timestamp int64   `json:"timestamp"` // unix-ms
	Value     float64 `json:"value"`
}

type UpdateDebtHistoryPointRequest = CreateDebtHistoryPointRequest

// DebtChangeRates holds regression-based average rates of change over the
// trailing week and month windows. A nil rate means the window had too
// little data. A negative rate means the debt is shrinking.
type DebtChangeRates struct {
	WeeklyChange  *float64 `json:"weeklyChange"`
	MonthlyChange *float64 `json:"monthlyChange"`
}
