// Package sqlite is the persistent record-store backend. Dates are stored as
// the ISO-8601 strings the pipeline consumes, amounts as decimal strings, so
// no precision is lost round-tripping through the database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"kosht/internal/core"
	"kosht/internal/store"
)

type Repository struct {
	db *sql.DB
}

var _ store.Store = (*Repository)(nil)

func NewRepository(dbPath string) (*Repository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

func (r *Repository) ListExpenses(ctx context.Context) ([]core.RawExpense, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, date, amount, comment, category_id, category_name
		 FROM expenses ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	out := []core.RawExpense{}
	for rows.Next() {
		var (
			e       core.RawExpense
			amount  string
			catID   sql.NullString
			catName sql.NullString
		)
		if err := rows.Scan(&e.ID, &e.Date, &amount, &e.Comment, &catID, &catName); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		e.Amount = parseStoredAmount(amount)
		if catID.Valid || catName.Valid {
			e.Category = &core.TagRef{ID: catID.String, Name: catName.String}
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *Repository) CreateExpense(ctx context.Context, e core.RawExpense) (core.RawExpense, error) {
	e.ID = uuid.NewString()
	var catID, catName sql.NullString
	if e.Category != nil {
		catID = sql.NullString{String: e.Category.ID, Valid: true}
		catName = sql.NullString{String: e.Category.Name, Valid: true}
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO expenses (id, date, amount, comment, category_id, category_name)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID, e.Date, e.Amount.String(), e.Comment, catID, catName)
	if err != nil {
		return core.RawExpense{}, fmt.Errorf("create expense: %w", err)
	}

	slog.InfoContext(ctx, "Expense saved",
		"id", e.ID,
		"amount", e.Amount.String(),
		"date", e.Date)

	return e, nil
}

func (r *Repository) DeleteExpense(ctx context.Context, id string) error {
	return r.deleteByID(ctx, "expenses", id)
}

func (r *Repository) ListIncomes(ctx context.Context) ([]core.RawIncome, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, date, amount, source_id, source_name
		 FROM incomes ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list incomes: %w", err)
	}
	defer rows.Close()

	out := []core.RawIncome{}
	for rows.Next() {
		var (
			in      core.RawIncome
			amount  string
			srcID   sql.NullString
			srcName sql.NullString
		)
		if err := rows.Scan(&in.ID, &in.Date, &amount, &srcID, &srcName); err != nil {
			return nil, fmt.Errorf("scan income: %w", err)
		}
		in.Amount = parseStoredAmount(amount)
		if srcID.Valid || srcName.Valid {
			in.Source = &core.TagRef{ID: srcID.String, Name: srcName.String}
		}
		out = append(out, in)
	}
	return out, rows.Err()
}

func (r *Repository) CreateIncome(ctx context.Context, in core.RawIncome) (core.RawIncome, error) {
	in.ID = uuid.NewString()
	var srcID, srcName sql.NullString
	if in.Source != nil {
		srcID = sql.NullString{String: in.Source.ID, Valid: true}
		srcName = sql.NullString{String: in.Source.Name, Valid: true}
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO incomes (id, date, amount, source_id, source_name)
		 VALUES (?, ?, ?, ?, ?)`,
		in.ID, in.Date, in.Amount.String(), srcID, srcName)
	if err != nil {
		return core.RawIncome{}, fmt.Errorf("create income: %w", err)
	}

	slog.InfoContext(ctx, "Income saved",
		"id", in.ID,
		"amount", in.Amount.String(),
		"date", in.Date)

	return in, nil
}

func (r *Repository) DeleteIncome(ctx context.Context, id string) error {
	return r.deleteByID(ctx, "incomes", id)
}

func (r *Repository) ListCategories(ctx context.Context) ([]core.Category, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	out := []core.Category{}
	for rows.Next() {
		var c core.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *Repository) CreateCategory(ctx context.Context, name string) (core.Category, error) {
	c := core.Category{ID: uuid.NewString(), Name: strings.TrimSpace(name)}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO categories (id, name) VALUES (?, ?)`, c.ID, c.Name)
	if err != nil {
		return core.Category{}, fmt.Errorf("create category: %w", err)
	}
	return c, nil
}

func (r *Repository) DeleteCategory(ctx context.Context, id string) error {
	return r.deleteByID(ctx, "categories", id)
}

func (r *Repository) FindCategoryByName(ctx context.Context, name string) (core.Category, error) {
	var c core.Category
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name FROM categories WHERE name = ? COLLATE NOCASE LIMIT 1`, name).
		Scan(&c.ID, &c.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Category{}, store.ErrNotFound
	}
	if err != nil {
		return core.Category{}, fmt.Errorf("find category %q: %w", name, err)
	}
	return c, nil
}

func (r *Repository) ListSources(ctx context.Context) ([]core.IncomeSource, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM income_sources ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list income sources: %w", err)
	}
	defer rows.Close()

	out := []core.IncomeSource{}
	for rows.Next() {
		var s core.IncomeSource
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, fmt.Errorf("scan income source: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *Repository) CreateSource(ctx context.Context, name string) (core.IncomeSource, error) {
	s := core.IncomeSource{ID: uuid.NewString(), Name: strings.TrimSpace(name)}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO income_sources (id, name) VALUES (?, ?)`, s.ID, s.Name)
	if err != nil {
		return core.IncomeSource{}, fmt.Errorf("create income source: %w", err)
	}
	return s, nil
}

func (r *Repository) DeleteSource(ctx context.Context, id string) error {
	return r.deleteByID(ctx, "income_sources", id)
}

func (r *Repository) FindSourceByName(ctx context.Context, name string) (core.IncomeSource, error) {
	var s core.IncomeSource
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name FROM income_sources WHERE name = ? COLLATE NOCASE LIMIT 1`, name).
		Scan(&s.ID, &s.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return core.IncomeSource{}, store.ErrNotFound
	}
	if err != nil {
		return core.IncomeSource{}, fmt.Errorf("find income source %q: %w", name, err)
	}
	return s, nil
}

func (r *Repository) HasExpense(ctx context.Context, date time.Time, amount decimal.Decimal, comment string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM expenses WHERE date = ? AND amount = ? AND comment = ?`,
		date.Format(time.RFC3339), amount.String(), comment).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("check duplicate expense: %w", err)
	}
	return n > 0, nil
}

func (r *Repository) HasIncome(ctx context.Context, date time.Time, amount decimal.Decimal) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM incomes WHERE date = ? AND amount = ?`,
		date.Format(time.RFC3339), amount.String()).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("check duplicate income: %w", err)
	}
	return n > 0, nil
}

func (r *Repository) deleteByID(ctx context.Context, table, id string) error {
	res, err := r.db.ExecContext(ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, table), id)
	if err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// parseStoredAmount converts the persisted decimal string back into a lenient
// Amount. A corrupt value degrades to zero, matching the normalizer contract.
func parseStoredAmount(s string) core.Amount {
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return core.NewAmount(decimal.Zero)
	}
	return core.NewAmount(d)
}
