package core

import (
	"bytes"
	"time"

	"github.com/shopspring/decimal"
)

const (
	KindExpense Kind = "expense"
	KindIncome  Kind = "income"

	// Fallback labels for records whose category or source reference is absent.
	LabelUncategorized = "Uncategorized"
	LabelUnknownSource = "Unknown"

	// Synthetic slice emitted when a distribution has no real data.
	LabelNoExpenses = "No expenses"
)

type (
	// Kind tags a record as an expense or an income. Sign is always derived
	// from the kind; amounts themselves stay non-negative magnitudes.
	Kind string

	// TagRef is a reference to a category or income source as stored by the
	// record store. It may be nil on a raw record.
	TagRef struct {
		ID   string `json:"_id"`
		Name string `json:"name"`
	}

	// Category is a flat, user-defined expense tag.
	Category struct {
		ID   string `json:"_id"`
		Name string `json:"name"`
	}

	// IncomeSource is a flat, user-defined income tag.
	IncomeSource struct {
		ID   string `json:"_id"`
		Name string `json:"name"`
	}

	// RawExpense is an expense record exactly as the record store hands it
	// out: ISO-8601 date string, possibly missing amount, nullable category.
	RawExpense struct {
		ID       string  `json:"_id"`
		Date     string  `json:"date"`
		Amount   Amount  `json:"amount"`
		Comment  string  `json:"comment,omitempty"`
		Category *TagRef `json:"category"`
	}

	// RawIncome is an income record as the record store hands it out.
	RawIncome struct {
		ID     string  `json:"_id"`
		Date   string  `json:"date"`
		Amount Amount  `json:"amount"`
		Source *TagRef `json:"source"`
	}

	// Record is the canonical, normalized form shared by every projection.
	// Valid is false when the raw date failed to parse; such records are
	// excluded from period-bounded views instead of failing the pipeline.
	Record struct {
		ID        string          `json:"_id"`
		Kind      Kind            `json:"kind"`
		Timestamp time.Time       `json:"date"`
		Amount    decimal.Decimal `json:"amount"`
		Label     string          `json:"label"`
		Comment   string          `json:"comment,omitempty"`
		Valid     bool            `json:"-"`
	}
)

// Amount is a non-negative decimal magnitude with lenient decoding: a
// missing, null, or non-numeric value decodes as zero rather than erroring,
// so one malformed record can never fail a whole snapshot decode.
type Amount struct {
	decimal.Decimal
}

func NewAmount(d decimal.Decimal) Amount { return Amount{Decimal: d} }

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		a.Decimal = decimal.Zero
		return nil
	}
	s := string(bytes.Trim(data, `"`))
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		a.Decimal = decimal.Zero
		return nil
	}
	a.Decimal = d
	return nil
}

// timestampLayouts are tried in order when parsing raw dates. The record
// store emits RFC 3339, but hand-entered and imported records show up with
// date-only and minute-precision variants.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseTimestamp parses an ISO-8601 date string. The second return value is
// false when no layout matches; callers treat such records as invalid rather
// than propagating an error.
func ParseTimestamp(s string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DayKey is the date-only key used by calendar projections.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
