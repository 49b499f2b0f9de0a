// Package services orchestrates the record store and the aggregation
// pipeline. The pipeline itself stays pure; everything that touches I/O or a
// clock lives here or further out.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"kosht/internal/core"
	"kosht/internal/store"
)

// DashboardService fetches the two record collections and runs the pipeline
// over the joined snapshot.
type DashboardService struct {
	expenses  store.ExpenseLister
	incomes   store.IncomeLister
	feedLimit int
}

func NewDashboardService(expenses store.ExpenseLister, incomes store.IncomeLister, feedLimit int) *DashboardService {
	if feedLimit <= 0 {
		feedLimit = core.DefaultFeedLimit
	}
	return &DashboardService{
		expenses:  expenses,
		incomes:   incomes,
		feedLimit: feedLimit,
	}
}

// Snapshot fetches both collections concurrently and joins them before
// returning. Aggregation must never start until both fetches complete, or a
// balance could mix a fresh expense set with stale incomes.
func (s *DashboardService) Snapshot(ctx context.Context) (core.Snapshot, error) {
	var snap core.Snapshot

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		expenses, err := s.expenses.ListExpenses(gctx)
		if err != nil {
			return fmt.Errorf("list expenses: %w", err)
		}
		snap.Expenses = expenses
		return nil
	})
	g.Go(func() error {
		incomes, err := s.incomes.ListIncomes(gctx)
		if err != nil {
			return fmt.Errorf("list incomes: %w", err)
		}
		snap.Incomes = incomes
		return nil
	})
	if err := g.Wait(); err != nil {
		return core.Snapshot{}, err
	}
	return snap, nil
}

// Dashboard builds the views for the month containing ref. On a fetch
// failure it degrades to an empty snapshot so the caller still gets a
// well-formed zero-state dashboard alongside the error.
func (s *DashboardService) Dashboard(ctx context.Context, ref time.Time) (core.Dashboard, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		slog.WarnContext(ctx, "Snapshot fetch failed, serving empty dashboard", "error", err)
		return core.BuildDashboard(core.Snapshot{}, ref, core.WithFeedLimit(s.feedLimit)), err
	}
	return core.BuildDashboard(snap, ref, core.WithFeedLimit(s.feedLimit)), nil
}
