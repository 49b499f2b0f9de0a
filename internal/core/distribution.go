package core

import "github.com/shopspring/decimal"

// Slice is one segment of a category distribution, ready for a pie chart.
type Slice struct {
	Label string          `json:"label"`
	Value decimal.Decimal `json:"value"`
}

// DistributeByCategory groups expense records by their resolved label and
// sums amounts per group, in first-seen label order. Grouping is by display
// name, not category ID, so two categories sharing a name merge into one
// slice. Empty input yields a single synthetic "No expenses" slice so a
// consuming chart never renders an undefined state.
func DistributeByCategory(records []Record) []Slice {
	sums := make(map[string]decimal.Decimal)
	order := make([]string, 0)
	for _, r := range records {
		if r.Kind != KindExpense {
			continue
		}
		if _, seen := sums[r.Label]; !seen {
			order = append(order, r.Label)
		}
		sums[r.Label] = sums[r.Label].Add(r.Amount)
	}
	if len(order) == 0 {
		return []Slice{{Label: LabelNoExpenses, Value: decimal.NewFromInt(1)}}
	}
	out := make([]Slice, 0, len(order))
	for _, label := range order {
		out = append(out, Slice{Label: label, Value: sums[label]})
	}
	return out
}
