package core

import "github.com/shopspring/decimal"

// Totals are the scalar summaries for a reporting period. Balance is income
// minus expense; an empty input yields all zeros.
type Totals struct {
	TotalExpense decimal.Decimal `json:"totalExpense"`
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	Balance      decimal.Decimal `json:"balance"`
}

// Aggregate sums a filtered record set split by kind. No rounding is applied;
// display-layer formatting is the consumer's concern.
func Aggregate(records []Record) Totals {
	expense := decimal.Zero
	income := decimal.Zero
	for _, r := range records {
		switch r.Kind {
		case KindExpense:
			expense = expense.Add(r.Amount)
		case KindIncome:
			income = income.Add(r.Amount)
		}
	}
	return Totals{
		TotalExpense: expense,
		TotalIncome:  income,
		Balance:      income.Sub(expense),
	}
}
