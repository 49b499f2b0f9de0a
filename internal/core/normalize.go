package core

// NormalizeExpense coerces a raw expense into canonical form. A missing
// category reference resolves to the "Uncategorized" label; an unparseable
// date yields Valid=false instead of an error.
func NormalizeExpense(raw RawExpense) Record {
	label := LabelUncategorized
	if raw.Category != nil && raw.Category.Name != "" {
		label = raw.Category.Name
	}
	ts, ok := ParseTimestamp(raw.Date)
	return Record{
		ID:        raw.ID,
		Kind:      KindExpense,
		Timestamp: ts,
		Amount:    raw.Amount.Decimal,
		Label:     label,
		Comment:   raw.Comment,
		Valid:     ok,
	}
}

// NormalizeIncome coerces a raw income into canonical form. A missing source
// reference resolves to the "Unknown" label.
func NormalizeIncome(raw RawIncome) Record {
	label := LabelUnknownSource
	if raw.Source != nil && raw.Source.Name != "" {
		label = raw.Source.Name
	}
	ts, ok := ParseTimestamp(raw.Date)
	return Record{
		ID:        raw.ID,
		Kind:      KindIncome,
		Timestamp: ts,
		Amount:    raw.Amount.Decimal,
		Label:     label,
		Valid:     ok,
	}
}

// NormalizeExpenses normalizes a whole collection, preserving order.
func NormalizeExpenses(raws []RawExpense) []Record {
	out := make([]Record, len(raws))
	for i, r := range raws {
		out[i] = NormalizeExpense(r)
	}
	return out
}

// NormalizeIncomes normalizes a whole collection, preserving order.
func NormalizeIncomes(raws []RawIncome) []Record {
	out := make([]Record, len(raws))
	for i, r := range raws {
		out[i] = NormalizeIncome(r)
	}
	return out
}
