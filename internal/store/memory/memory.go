// Package memory is an in-process record store used as the default dev
// backend and as the test double for services and handlers.
package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"kosht/internal/core"
	"kosht/internal/store"
)

type Store struct {
	mu       sync.Mutex
	expenses []core.RawExpense
	incomes  []core.RawIncome
	cats     []core.Category
	sources  []core.IncomeSource
}

var _ store.Store = (*Store)(nil)

func New() *Store { return &Store{} }

// NewSeeded returns a store pre-populated with categories and sources.
func NewSeeded(categories, sources []string) *Store {
	s := New()
	ctx := context.Background()
	for _, name := range categories {
		s.CreateCategory(ctx, name)
	}
	for _, name := range sources {
		s.CreateSource(ctx, name)
	}
	return s
}

func (s *Store) ListExpenses(_ context.Context) ([]core.RawExpense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.RawExpense(nil), s.expenses...), nil
}

func (s *Store) CreateExpense(_ context.Context, e core.RawExpense) (core.RawExpense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID = uuid.NewString()
	s.expenses = append(s.expenses, e)
	return e, nil
}

func (s *Store) DeleteExpense(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.expenses {
		if e.ID == id {
			s.expenses = append(s.expenses[:i], s.expenses[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *Store) ListIncomes(_ context.Context) ([]core.RawIncome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.RawIncome(nil), s.incomes...), nil
}

func (s *Store) CreateIncome(_ context.Context, in core.RawIncome) (core.RawIncome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	in.ID = uuid.NewString()
	s.incomes = append(s.incomes, in)
	return in, nil
}

func (s *Store) DeleteIncome(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, in := range s.incomes {
		if in.ID == id {
			s.incomes = append(s.incomes[:i], s.incomes[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *Store) ListCategories(_ context.Context) ([]core.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Category(nil), s.cats...), nil
}

func (s *Store) CreateCategory(_ context.Context, name string) (core.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := core.Category{ID: uuid.NewString(), Name: strings.TrimSpace(name)}
	s.cats = append(s.cats, c)
	return c, nil
}

func (s *Store) DeleteCategory(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.cats {
		if c.ID == id {
			s.cats = append(s.cats[:i], s.cats[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *Store) FindCategoryByName(_ context.Context, name string) (core.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.cats {
		if strings.EqualFold(c.Name, name) {
			return c, nil
		}
	}
	return core.Category{}, store.ErrNotFound
}

func (s *Store) ListSources(_ context.Context) ([]core.IncomeSource, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.IncomeSource(nil), s.sources...), nil
}

func (s *Store) CreateSource(_ context.Context, name string) (core.IncomeSource, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	src := core.IncomeSource{ID: uuid.NewString(), Name: strings.TrimSpace(name)}
	s.sources = append(s.sources, src)
	return src, nil
}

func (s *Store) DeleteSource(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, src := range s.sources {
		if src.ID == id {
			s.sources = append(s.sources[:i], s.sources[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *Store) FindSourceByName(_ context.Context, name string) (core.IncomeSource, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, src := range s.sources {
		if strings.EqualFold(src.Name, name) {
			return src, nil
		}
	}
	return core.IncomeSource{}, store.ErrNotFound
}

func (s *Store) HasExpense(_ context.Context, date time.Time, amount decimal.Decimal, comment string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.expenses {
		ts, ok := core.ParseTimestamp(e.Date)
		if !ok {
			continue
		}
		if ts.Equal(date) && e.Amount.Equal(amount) && e.Comment == comment {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) HasIncome(_ context.Context, date time.Time, amount decimal.Decimal) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, in := range s.incomes {
		ts, ok := core.ParseTimestamp(in.Date)
		if !ok {
			continue
		}
		if ts.Equal(date) && in.Amount.Equal(amount) {
			return true, nil
		}
	}
	return false, nil
}
