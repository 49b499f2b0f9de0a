package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"kosht/internal/core"
	"kosht/internal/store"
)

func TestExpenseCRUD(t *testing.T) {
	s := New()
	ctx := context.Background()

	created, err := s.CreateExpense(ctx, core.RawExpense{
		Date:   "2024-03-05",
		Amount: core.NewAmount(decimal.NewFromInt(10)),
	})
	if err != nil {
		t.Fatal(err)
	}
	if created.ID == "" {
		t.Error("store did not assign an id")
	}

	listed, _ := s.ListExpenses(ctx)
	if len(listed) != 1 {
		t.Fatalf("listed %d expenses, want 1", len(listed))
	}

	if err := s.DeleteExpense(ctx, created.ID); err != nil {
		t.Fatal(err)
	}
	if err := s.DeleteExpense(ctx, created.ID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("second delete returned %v, want ErrNotFound", err)
	}
}

func TestListReturnsCopy(t *testing.T) {
	s := New()
	ctx := context.Background()
	s.CreateExpense(ctx, core.RawExpense{Date: "2024-03-05"})

	listed, _ := s.ListExpenses(ctx)
	listed[0].Comment = "mutated"

	again, _ := s.ListExpenses(ctx)
	if again[0].Comment == "mutated" {
		t.Error("caller mutation leaked into the store")
	}
}

func TestFindCategoryByNameIsCaseInsensitive(t *testing.T) {
	s := NewSeeded([]string{"Food"}, nil)
	ctx := context.Background()

	found, err := s.FindCategoryByName(ctx, "FOOD")
	if err != nil {
		t.Fatal(err)
	}
	if found.Name != "Food" {
		t.Errorf("found %q, want Food", found.Name)
	}

	if _, err := s.FindCategoryByName(ctx, "Travel"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestHasExpenseMatchesDateAmountComment(t *testing.T) {
	s := New()
	ctx := context.Background()
	s.CreateExpense(ctx, core.RawExpense{
		Date:    "2024-03-05T00:00:00Z",
		Amount:  core.NewAmount(decimal.NewFromFloat(30.5)),
		Comment: "coffee",
	})

	date := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	amount := decimal.NewFromFloat(30.5)

	if ok, _ := s.HasExpense(ctx, date, amount, "coffee"); !ok {
		t.Error("exact match not found")
	}
	if ok, _ := s.HasExpense(ctx, date, amount, "tea"); ok {
		t.Error("different comment matched")
	}
	if ok, _ := s.HasExpense(ctx, date.AddDate(0, 0, 1), amount, "coffee"); ok {
		t.Error("different date matched")
	}
}
