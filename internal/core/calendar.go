package core

import "github.com/shopspring/decimal"

// DayCell holds per-day totals for a calendar heatmap. A nil side means the
// day has no records of that kind; zero values are never materialized.
type DayCell struct {
	Expense *decimal.Decimal `json:"expense,omitempty"`
	Income  *decimal.Decimal `json:"income,omitempty"`
}

// CalendarDataset maps a date-only key ("2006-01-02") to that day's totals.
type CalendarDataset map[string]DayCell

// ProjectCalendar buckets records by calendar day, summing same-day same-kind
// amounts. The merge rule is additive on key collision; a later record never
// overwrites an earlier one. Days with no records are simply absent.
func ProjectCalendar(records []Record) CalendarDataset {
	out := make(CalendarDataset, len(records))
	for _, r := range records {
		day := DayKey(r.Timestamp)
		cell := out[day]
		switch r.Kind {
		case KindExpense:
			cell.Expense = addCell(cell.Expense, r.Amount)
		case KindIncome:
			cell.Income = addCell(cell.Income, r.Amount)
		default:
			continue
		}
		out[day] = cell
	}
	return out
}

func addCell(cur *decimal.Decimal, amount decimal.Decimal) *decimal.Decimal {
	if amount.IsNegative() {
		amount = decimal.Zero
	}
	if cur == nil {
		return &amount
	}
	sum := cur.Add(amount)
	return &sum
}
