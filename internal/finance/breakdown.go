package finance

import (
	"sort"

	"github.com/RyanCwynar/byldr-finance-backend/internal/dto"
	"github.com/RyanCwynar/byldr-finance-backend/internal/models"
)

// OtherBucket collects untagged and long-tail expenses in TaggedCostBreakdown.
const OtherBucket = "Other"

// longTailThreshold is the share of the grand total below which a tag bucket
// is merged into OtherBucket.
const longTailThreshold = 0.01

// accumulator sums amounts by label preserving first-occurrence order.
type accumulator struct {
	order   []string
	amounts map[string]float64
}

func newAccumulator() *accumulator {
	return &accumulator{amounts: map[string]float64{}}
}

func (a *accumulator) add(label string, amount float64) {
	if _, ok := a.amounts[label]; !ok {
		a.order = append(a.order, label)
	}
	a.amounts[label] += amount
}

func (a *accumulator) items() []dto.CostBreakdownItem {
	out := make([]dto.CostBreakdownItem, 0, len(a.order))
	for _, label := range a.order {
		out = append(out, dto.CostBreakdownItem{Label: label, Amount: a.amounts[label]})
	}
	return out
}

// MonthlyCostBreakdown sums monthly-equivalent expense amounts by transaction
// name. Names match exactly and case-sensitively; output order is the
// insertion order of each name's first occurrence. Income and hidden
// one-time transactions are excluded.
func MonthlyCostBreakdown(recurring []models.RecurringTransaction, oneTime []models.OneTimeTransaction) []dto.CostBreakdownItem {
	acc := newAccumulator()
	eachExpense(recurring, oneTime, func(name string, _ []string, amount float64) {
		acc.add(name, amount)
	})
	return acc.items()
}

// MonthlyCostBreakdownByTags groups expenses under the first priority tag
// present in the item's tags, iterating priorityTags in caller order. Items
// with no matching priority tag fall back to their own name, so each item
// contributes to exactly one label.
func MonthlyCostBreakdownByTags(recurring []models.RecurringTransaction, oneTime []models.OneTimeTransaction, priorityTags []string) []dto.CostBreakdownItem {
	acc := newAccumulator()
	eachExpense(recurring, oneTime, func(name string, tags []string, amount float64) {
		acc.add(resolveLabel(name, tags, priorityTags), amount)
	})
	return acc.items()
}

// TaggedCostBreakdown groups expenses by every tag they carry, so a
// multi-tagged expense counts fully toward each of its tags. Untagged items
// land in OtherBucket, any tag bucket below 1% of the grand total merges
// into OtherBucket, and the result is sorted descending by amount.
func TaggedCostBreakdown(recurring []models.RecurringTransaction, oneTime []models.OneTimeTransaction) []dto.CostBreakdownItem {
	byTag := newAccumulator()
	var total float64
	eachExpense(recurring, oneTime, func(_ string, tags []string, amount float64) {
		total += amount
		if len(tags) == 0 {
			byTag.add(OtherBucket, amount)
			return
		}
		for _, tag := range tags {
			byTag.add(tag, amount)
		}
	})

	threshold := total * longTailThreshold
	merged := newAccumulator()
	for _, item := range byTag.items() {
		if item.Label != OtherBucket && item.Amount < threshold {
			merged.add(OtherBucket, item.Amount)
			continue
		}
		merged.add(item.Label, item.Amount)
	}

	items := merged.items()
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Amount > items[j].Amount
	})
	return items
}

func resolveLabel(name string, tags, priorityTags []string) string {
	for _, priority := range priorityTags {
		for _, tag := range tags {
			if tag == priority {
				return priority
			}
		}
	}
	return name
}

// eachExpense visits every expense-type item with its monthly-equivalent
// amount, skipping hidden one-time transactions.
func eachExpense(recurring []models.RecurringTransaction, oneTime []models.OneTimeTransaction, visit func(name string, tags []string, amount float64)) {
	for _, t := range recurring {
		if t.Type != dto.TypeExpense {
			continue
		}
		visit(t.Name, t.Tags, MonthlyAmount(t))
	}
	for _, t := range oneTime {
		if t.Type != dto.TypeExpense || t.Hidden {
			continue
		}
		visit(t.Name, t.Tags, MonthlyOneTimeAmount(t.Amount))
	}
}
