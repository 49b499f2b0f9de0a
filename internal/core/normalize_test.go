package core

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func amt(s string) Amount { return NewAmount(dec(s)) }

func TestNormalizeExpense(t *testing.T) {
	cases := []struct {
		name      string
		raw       RawExpense
		wantLabel string
		wantValid bool
	}{
		{
			name:      "category present",
			raw:       RawExpense{ID: "1", Date: "2024-03-05", Amount: amt("100"), Category: &TagRef{ID: "c1", Name: "Food"}},
			wantLabel: "Food",
			wantValid: true,
		},
		{
			name:      "nil category falls back to Uncategorized",
			raw:       RawExpense{ID: "2", Date: "2024-03-05", Amount: amt("50")},
			wantLabel: LabelUncategorized,
			wantValid: true,
		},
		{
			name:      "empty category name falls back to Uncategorized",
			raw:       RawExpense{ID: "3", Date: "2024-03-05", Amount: amt("50"), Category: &TagRef{ID: "c2"}},
			wantLabel: LabelUncategorized,
			wantValid: true,
		},
		{
			name:      "unparseable date tags record invalid",
			raw:       RawExpense{ID: "4", Date: "yesterday", Amount: amt("50")},
			wantLabel: LabelUncategorized,
			wantValid: false,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := NormalizeExpense(tc.raw)
			if rec.Kind != KindExpense {
				t.Errorf("kind = %q, want %q", rec.Kind, KindExpense)
			}
			if rec.Label != tc.wantLabel {
				t.Errorf("label = %q, want %q", rec.Label, tc.wantLabel)
			}
			if rec.Valid != tc.wantValid {
				t.Errorf("valid = %v, want %v", rec.Valid, tc.wantValid)
			}
		})
	}
}

func TestNormalizeIncomeSourceFallback(t *testing.T) {
	rec := NormalizeIncome(RawIncome{ID: "1", Date: "2024-03-05T09:00", Amount: amt("200")})
	if rec.Label != LabelUnknownSource {
		t.Fatalf("label = %q, want %q", rec.Label, LabelUnknownSource)
	}
	if !rec.Valid {
		t.Fatal("expected valid record")
	}
	rec = NormalizeIncome(RawIncome{ID: "2", Date: "2024-03-05", Amount: amt("200"), Source: &TagRef{Name: "Salary"}})
	if rec.Label != "Salary" {
		t.Fatalf("label = %q, want Salary", rec.Label)
	}
}

func TestAmountLenientDecoding(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`{"amount": 30.5}`, "30.5"},
		{`{"amount": "12.25"}`, "12.25"},
		{`{"amount": null}`, "0"},
		{`{}`, "0"},
		{`{"amount": "abc"}`, "0"},
		{`{"amount": -5}`, "0"}, // sign is derived from kind, never stored
	}
	for _, tc := range cases {
		var raw RawExpense
		if err := json.Unmarshal([]byte(tc.in), &raw); err != nil {
			t.Fatalf("unmarshal %s: %v", tc.in, err)
		}
		if !raw.Amount.Equal(dec(tc.want)) {
			t.Errorf("%s: amount = %s, want %s", tc.in, raw.Amount, tc.want)
		}
	}
}

func TestParseTimestampLayouts(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"2024-03-05", true},
		{"2024-03-05T10:00", true},
		{"2024-03-05T10:00:30", true},
		{"2024-03-05T10:00:30Z", true},
		{"2024-03-05T10:00:30+02:00", true},
		{"", false},
		{"05/03/2024", false},
	}
	for _, tc := range cases {
		if _, ok := ParseTimestamp(tc.in); ok != tc.ok {
			t.Errorf("ParseTimestamp(%q) ok = %v, want %v", tc.in, ok, tc.ok)
		}
	}
}
