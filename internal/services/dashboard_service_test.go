package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"kosht/internal/core"
	"kosht/internal/store/memory"
)

var march = time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

func seedStore(t *testing.T) *memory.Store {
	t.Helper()
	s := memory.New()
	ctx := context.Background()
	cat, err := s.CreateCategory(ctx, "Food")
	if err != nil {
		t.Fatal(err)
	}
	_, err = s.CreateExpense(ctx, core.RawExpense{
		Date:     "2024-03-05",
		Amount:   core.NewAmount(decimal.NewFromInt(100)),
		Category: &core.TagRef{ID: cat.ID, Name: cat.Name},
	})
	if err != nil {
		t.Fatal(err)
	}
	_, err = s.CreateIncome(ctx, core.RawIncome{
		Date:   "2024-03-10",
		Amount: core.NewAmount(decimal.NewFromInt(250)),
	})
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestDashboardServiceJoinsBothCollections(t *testing.T) {
	s := seedStore(t)
	svc := NewDashboardService(s, s, 0)

	d, err := svc.Dashboard(context.Background(), march)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !d.Totals.TotalExpense.Equal(decimal.NewFromInt(100)) {
		t.Errorf("totalExpense = %s, want 100", d.Totals.TotalExpense)
	}
	if !d.Totals.TotalIncome.Equal(decimal.NewFromInt(250)) {
		t.Errorf("totalIncome = %s, want 250", d.Totals.TotalIncome)
	}
	if !d.Totals.Balance.Equal(decimal.NewFromInt(150)) {
		t.Errorf("balance = %s, want 150", d.Totals.Balance)
	}
	if len(d.Recent) != 2 {
		t.Errorf("recent = %d entries, want 2", len(d.Recent))
	}
}

type failingLister struct{}

func (failingLister) ListExpenses(context.Context) ([]core.RawExpense, error) {
	return nil, errors.New("store unavailable")
}

func TestDashboardServiceDegradesToEmptyOnFetchFailure(t *testing.T) {
	s := seedStore(t)
	svc := NewDashboardService(failingLister{}, s, 0)

	d, err := svc.Dashboard(context.Background(), march)
	if err == nil {
		t.Fatal("expected fetch error to surface")
	}
	// The dashboard is still a well-formed zero state, never a crash.
	if !d.Totals.TotalExpense.IsZero() || !d.Totals.TotalIncome.IsZero() {
		t.Errorf("totals = %+v, want zeros", d.Totals)
	}
	if len(d.Categories) != 1 || d.Categories[0].Label != core.LabelNoExpenses {
		t.Errorf("categories = %+v, want synthetic placeholder", d.Categories)
	}
}

func TestDashboardServiceFeedLimit(t *testing.T) {
	s := memory.New()
	ctx := context.Background()
	for i := 0; i < 10; i++ {
		_, err := s.CreateExpense(ctx, core.RawExpense{
			Date:   "2024-03-05",
			Amount: core.NewAmount(decimal.NewFromInt(1)),
		})
		if err != nil {
			t.Fatal(err)
		}
	}
	svc := NewDashboardService(s, s, 3)
	d, err := svc.Dashboard(ctx, march)
	if err != nil {
		t.Fatal(err)
	}
	if len(d.Recent) != 3 {
		t.Fatalf("recent = %d entries, want 3", len(d.Recent))
	}
}
