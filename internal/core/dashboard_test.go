package core

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"
)

var march2024 = time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

func TestBuildDashboardSingleExpense(t *testing.T) {
	snap := Snapshot{
		Expenses: []RawExpense{
			{ID: "1", Date: "2024-03-05", Amount: amt("100"), Category: &TagRef{Name: "Food"}},
		},
	}
	d := BuildDashboard(snap, march2024)

	if !d.Totals.TotalExpense.Equal(dec("100")) {
		t.Errorf("totalExpense = %s, want 100", d.Totals.TotalExpense)
	}
	if !d.Totals.TotalIncome.IsZero() {
		t.Errorf("totalIncome = %s, want 0", d.Totals.TotalIncome)
	}
	if !d.Totals.Balance.Equal(dec("-100")) {
		t.Errorf("balance = %s, want -100", d.Totals.Balance)
	}
	if len(d.Categories) != 1 || d.Categories[0].Label != "Food" || !d.Categories[0].Value.Equal(dec("100")) {
		t.Errorf("categories = %+v, want [{Food 100}]", d.Categories)
	}
}

func TestBuildDashboardEmptySnapshot(t *testing.T) {
	d := BuildDashboard(Snapshot{}, march2024)

	if !d.Totals.TotalExpense.IsZero() || !d.Totals.TotalIncome.IsZero() || !d.Totals.Balance.IsZero() {
		t.Errorf("totals = %+v, want all zeros", d.Totals)
	}
	if len(d.Calendar) != 0 {
		t.Errorf("calendar has %d buckets, want none", len(d.Calendar))
	}
	if len(d.Categories) != 1 || d.Categories[0].Label != LabelNoExpenses {
		t.Errorf("categories = %+v, want synthetic placeholder", d.Categories)
	}
	if len(d.Recent) != 0 {
		t.Errorf("recent has %d entries, want none", len(d.Recent))
	}
}

func TestBuildDashboardCalendarCombinesKinds(t *testing.T) {
	snap := Snapshot{
		Expenses: []RawExpense{{ID: "e", Date: "2024-03-05T10:00", Amount: amt("50")}},
		Incomes:  []RawIncome{{ID: "i", Date: "2024-03-05T09:00", Amount: amt("200")}},
	}
	d := BuildDashboard(snap, march2024)
	cell, ok := d.Calendar["2024-03-05"]
	if !ok {
		t.Fatal("missing 2024-03-05 bucket")
	}
	if cell.Expense == nil || !cell.Expense.Equal(dec("50")) {
		t.Errorf("expense = %v, want 50", cell.Expense)
	}
	if cell.Income == nil || !cell.Income.Equal(dec("200")) {
		t.Errorf("income = %v, want 200", cell.Income)
	}
}

func TestBuildDashboardExcludesOtherMonths(t *testing.T) {
	snap := Snapshot{
		Expenses: []RawExpense{
			{ID: "in", Date: "2024-03-05", Amount: amt("10")},
			{ID: "out", Date: "2024-04-01", Amount: amt("999")},
			{ID: "bad", Date: "not-a-date", Amount: amt("999")},
		},
	}
	d := BuildDashboard(snap, march2024)
	if !d.Totals.TotalExpense.Equal(dec("10")) {
		t.Fatalf("totalExpense = %s, want 10", d.Totals.TotalExpense)
	}
	if len(d.Recent) != 1 || d.Recent[0].ID != "in" {
		t.Fatalf("recent = %+v, want only the in-month record", d.Recent)
	}
}

func TestBuildDashboardIdempotent(t *testing.T) {
	snap := Snapshot{
		Expenses: []RawExpense{
			{ID: "1", Date: "2024-03-05", Amount: amt("100"), Category: &TagRef{Name: "Food"}},
			{ID: "2", Date: "2024-03-07", Amount: amt("42.1")},
		},
		Incomes: []RawIncome{
			{ID: "3", Date: "2024-03-05", Amount: amt("300"), Source: &TagRef{Name: "Salary"}},
		},
	}
	first, err := json.Marshal(BuildDashboard(snap, march2024))
	if err != nil {
		t.Fatal(err)
	}
	second, err := json.Marshal(BuildDashboard(snap, march2024))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("two runs over the same snapshot produced different output")
	}
}

func TestBuildDashboardOptions(t *testing.T) {
	snap := Snapshot{
		Expenses: []RawExpense{
			{ID: "1", Date: "2024-03-05", Amount: amt("10")},
			{ID: "2", Date: "2024-03-06", Amount: amt("10")},
			{ID: "3", Date: "2024-03-07", Amount: amt("10")},
		},
	}
	d := BuildDashboard(snap, march2024, WithFeedLimit(2))
	if len(d.Recent) != 2 {
		t.Fatalf("recent = %d entries, want 2", len(d.Recent))
	}

	p := Between(
		time.Date(2024, time.March, 6, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.March, 7, 0, 0, 0, 0, time.UTC),
	)
	d = BuildDashboard(snap, march2024, WithPeriod(p))
	if !d.Totals.TotalExpense.Equal(dec("10")) {
		t.Fatalf("explicit period totalExpense = %s, want 10", d.Totals.TotalExpense)
	}
}
