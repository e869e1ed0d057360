// Package finance holds the pure computation core: schedule normalization,
// cost aggregation, debt trend estimation and net-worth forecasting. Nothing
// here performs I/O or reads the clock; reference time is always an input.
package finance

import (
	"github.com/RyanCwynar/byldr-finance-backend/internal/dto"
	"github.com/RyanCwynar/byldr-finance-backend/internal/models"
)

const weeksPerMonth = 52.0 / 12.0

// MonthlyAmount converts a recurring transaction's schedule into its
// monthly-equivalent amount. Amount is charged per occurrence: a monthly
// transaction paid on the 1st and 15th costs twice its amount each month.
// An empty schedule counts as a single occurrence. Unrecognized frequencies
// yield 0 rather than an error.
func MonthlyAmount(t models.RecurringTransaction) float64 {
	switch t.Frequency {
	case dto.FrequencyMonthly:
		return t.Amount * float64(occurrences(t.DaysOfMonth))
	case dto.FrequencyWeekly:
		return t.Amount * float64(occurrences(t.DaysOfWeek)) * weeksPerMonth
	case dto.FrequencyQuarterly:
		return t.Amount / 3
	case dto.FrequencyYearly:
		return t.Amount / 12
	}
	return 0
}

// MonthlyOneTimeAmount spreads a one-time amount evenly across 12 months so
// a single cash event contributes a comparable monthly burden alongside
// recurring transactions. Date-blind: future-dated events are amortized the
// same as past ones.
func MonthlyOneTimeAmount(amount float64) float64 {
	return amount / 12
}

// MonthlyTotals sums monthly-equivalent income and cost across recurring and
// visible one-time transactions.
func MonthlyTotals(recurring []models.RecurringTransaction, oneTime []models.OneTimeTransaction) (income, cost float64) {
	for _, t := range recurring {
		switch t.Type {
		case dto.TypeIncome:
			income += MonthlyAmount(t)
		case dto.TypeExpense:
			cost += MonthlyAmount(t)
		}
	}
	for _, t := range oneTime {
		if t.Hidden {
			continue
		}
		switch t.Type {
		case dto.TypeIncome:
			income += MonthlyOneTimeAmount(t.Amount)
		case dto.TypeExpense:
			cost += MonthlyOneTimeAmount(t.Amount)
		}
	}
	return income, cost
}

func occurrences(days []int) int {
	if len(days) < 1 {
		return 1
	}
	return len(days)
}
