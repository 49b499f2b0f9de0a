// Package store defines the record-store boundary: the ports every backend
// implements. The aggregation pipeline never talks to a backend directly; it
// consumes read-all snapshots fetched through these interfaces.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"kosht/internal/core"
)

var ErrNotFound = errors.New("record not found")

type (
	// ExpenseLister provides the read-all snapshot of expense records.
	ExpenseLister interface {
		ListExpenses(ctx context.Context) ([]core.RawExpense, error)
	}

	// IncomeLister provides the read-all snapshot of income records.
	IncomeLister interface {
		ListIncomes(ctx context.Context) ([]core.RawIncome, error)
	}

	// ExpenseStore owns the expense record lifecycle. The store assigns IDs.
	ExpenseStore interface {
		ExpenseLister
		CreateExpense(ctx context.Context, e core.RawExpense) (core.RawExpense, error)
		DeleteExpense(ctx context.Context, id string) error
	}

	// IncomeStore owns the income record lifecycle.
	IncomeStore interface {
		IncomeLister
		CreateIncome(ctx context.Context, in core.RawIncome) (core.RawIncome, error)
		DeleteIncome(ctx context.Context, id string) error
	}

	// CategoryStore owns expense categories. FindCategoryByName matches
	// case-insensitively and returns ErrNotFound when absent.
	CategoryStore interface {
		ListCategories(ctx context.Context) ([]core.Category, error)
		CreateCategory(ctx context.Context, name string) (core.Category, error)
		DeleteCategory(ctx context.Context, id string) error
		FindCategoryByName(ctx context.Context, name string) (core.Category, error)
	}

	// SourceStore owns income sources.
	SourceStore interface {
		ListSources(ctx context.Context) ([]core.IncomeSource, error)
		CreateSource(ctx context.Context, name string) (core.IncomeSource, error)
		DeleteSource(ctx context.Context, id string) error
		FindSourceByName(ctx context.Context, name string) (core.IncomeSource, error)
	}

	// DuplicateChecker answers the importer's dedup questions.
	DuplicateChecker interface {
		HasExpense(ctx context.Context, date time.Time, amount decimal.Decimal, comment string) (bool, error)
		HasIncome(ctx context.Context, date time.Time, amount decimal.Decimal) (bool, error)
	}

	// Store is the full record-store surface a backend provides.
	Store interface {
		ExpenseStore
		IncomeStore
		CategoryStore
		SourceStore
		DuplicateChecker
	}
)
