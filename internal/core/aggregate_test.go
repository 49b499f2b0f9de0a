package core

import (
	"testing"
	"time"
)

func TestAggregate(t *testing.T) {
	ts := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	records := []Record{
		{Kind: KindExpense, Amount: dec("100"), Timestamp: ts, Valid: true},
		{Kind: KindExpense, Amount: dec("30.5"), Timestamp: ts, Valid: true},
		{Kind: KindIncome, Amount: dec("200"), Timestamp: ts, Valid: true},
	}
	got := Aggregate(records)
	if !got.TotalExpense.Equal(dec("130.5")) {
		t.Errorf("totalExpense = %s, want 130.5", got.TotalExpense)
	}
	if !got.TotalIncome.Equal(dec("200")) {
		t.Errorf("totalIncome = %s, want 200", got.TotalIncome)
	}
	if !got.Balance.Equal(dec("69.5")) {
		t.Errorf("balance = %s, want 69.5", got.Balance)
	}
}

func TestAggregateEmptyInputIsAllZeros(t *testing.T) {
	got := Aggregate(nil)
	for name, v := range map[string]bool{
		"totalExpense": got.TotalExpense.IsZero(),
		"totalIncome":  got.TotalIncome.IsZero(),
		"balance":      got.Balance.IsZero(),
	} {
		if !v {
			t.Errorf("%s not zero for empty input", name)
		}
	}
}

func TestAggregateNegativeBalance(t *testing.T) {
	got := Aggregate([]Record{{Kind: KindExpense, Amount: dec("100")}})
	if !got.Balance.Equal(dec("-100")) {
		t.Fatalf("balance = %s, want -100", got.Balance)
	}
}
