// Package importer pulls bank statements into the record store: debits
// become expenses categorized by MCC, credits become incomes, duplicates and
// internal transfers are skipped.
package importer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"kosht/internal/core"
	"kosht/internal/store"
)

const (
	sourceSalary  = "Salary"
	sourcePresent = "Present"
)

// defaultTransferKeywords mark statement descriptions that are moves between
// the user's own accounts, not real spending.
var defaultTransferKeywords = []string{
	"Переказ між власними",
	"own account transfer",
}

// Target is the slice of the record store the importer writes to.
type Target interface {
	CreateExpense(ctx context.Context, e core.RawExpense) (core.RawExpense, error)
	CreateIncome(ctx context.Context, in core.RawIncome) (core.RawIncome, error)
	FindCategoryByName(ctx context.Context, name string) (core.Category, error)
	CreateCategory(ctx context.Context, name string) (core.Category, error)
	FindSourceByName(ctx context.Context, name string) (core.IncomeSource, error)
	CreateSource(ctx context.Context, name string) (core.IncomeSource, error)
	HasExpense(ctx context.Context, date time.Time, amount decimal.Decimal, comment string) (bool, error)
	HasIncome(ctx context.Context, date time.Time, amount decimal.Decimal) (bool, error)
}

// Report summarizes one import run.
type Report struct {
	InsertedExpenses int `json:"inserted_expenses"`
	InsertedIncomes  int `json:"inserted_incomes"`
	SkippedDupes     int `json:"skipped_duplicates"`
	SkippedTransfers int `json:"skipped_transfers"`
	TotalReceived    int `json:"total_received"`
}

type Importer struct {
	client StatementClient
	target Target

	// SalaryCounterparty marks credits from this counterparty as salary;
	// everything else lands under the "Present" source.
	SalaryCounterparty string
	TransferKeywords   []string
}

func New(client StatementClient, target Target) *Importer {
	return &Importer{
		client:           client,
		target:           target,
		TransferKeywords: defaultTransferKeywords,
	}
}

// Run imports the last days of statements ending at now.
func (i *Importer) Run(ctx context.Context, days int, now time.Time) (Report, error) {
	if days < 1 {
		days = 1
	}
	from := now.AddDate(0, 0, -days)

	transactions, err := i.client.Statements(ctx, from, now)
	if err != nil {
		return Report{}, fmt.Errorf("fetch statements: %w", err)
	}

	report := Report{TotalReceived: len(transactions)}
	for _, tx := range transactions {
		if err := i.importOne(ctx, tx, &report); err != nil {
			return report, err
		}
	}

	slog.InfoContext(ctx, "Statement import finished",
		"received", report.TotalReceived,
		"expenses", report.InsertedExpenses,
		"incomes", report.InsertedIncomes,
		"duplicates", report.SkippedDupes,
		"transfers", report.SkippedTransfers)

	return report, nil
}

func (i *Importer) importOne(ctx context.Context, tx StatementTransaction, report *Report) error {
	date := time.Unix(tx.Time, 0).UTC()
	amount := decimal.New(tx.Amount, -2) // minor units to decimal

	if amount.IsNegative() {
		return i.importExpense(ctx, tx, date, amount.Abs(), report)
	}
	return i.importIncome(ctx, tx, date, amount, report)
}

func (i *Importer) importExpense(ctx context.Context, tx StatementTransaction, date time.Time, amount decimal.Decimal, report *Report) error {
	if i.isInternalTransfer(tx.Description) {
		report.SkippedTransfers++
		return nil
	}

	dup, err := i.target.HasExpense(ctx, date, amount, tx.Description)
	if err != nil {
		return fmt.Errorf("check duplicate expense: %w", err)
	}
	if dup {
		report.SkippedDupes++
		return nil
	}

	cat, err := i.ensureCategory(ctx, CategoryFromMCC(tx.MCC))
	if err != nil {
		return err
	}

	_, err = i.target.CreateExpense(ctx, core.RawExpense{
		Date:     date.Format(time.RFC3339),
		Amount:   core.NewAmount(amount),
		Comment:  tx.Description,
		Category: &core.TagRef{ID: cat.ID, Name: cat.Name},
	})
	if err != nil {
		return fmt.Errorf("create imported expense: %w", err)
	}
	report.InsertedExpenses++
	return nil
}

func (i *Importer) importIncome(ctx context.Context, tx StatementTransaction, date time.Time, amount decimal.Decimal, report *Report) error {
	dup, err := i.target.HasIncome(ctx, date, amount)
	if err != nil {
		return fmt.Errorf("check duplicate income: %w", err)
	}
	if dup {
		report.SkippedDupes++
		return nil
	}

	name := sourcePresent
	if i.SalaryCounterparty != "" && tx.CounterName == i.SalaryCounterparty {
		name = sourceSalary
	}
	src, err := i.ensureSource(ctx, name)
	if err != nil {
		return err
	}

	_, err = i.target.CreateIncome(ctx, core.RawIncome{
		Date:   date.Format(time.RFC3339),
		Amount: core.NewAmount(amount),
		Source: &core.TagRef{ID: src.ID, Name: src.Name},
	})
	if err != nil {
		return fmt.Errorf("create imported income: %w", err)
	}
	report.InsertedIncomes++
	return nil
}

func (i *Importer) ensureCategory(ctx context.Context, name string) (core.Category, error) {
	cat, err := i.target.FindCategoryByName(ctx, name)
	if errors.Is(err, store.ErrNotFound) {
		cat, err = i.target.CreateCategory(ctx, name)
		if err != nil {
			return core.Category{}, fmt.Errorf("create category %q: %w", name, err)
		}
		slog.InfoContext(ctx, "Created category from MCC", "name", name)
		return cat, nil
	}
	if err != nil {
		return core.Category{}, fmt.Errorf("find category %q: %w", name, err)
	}
	return cat, nil
}

func (i *Importer) ensureSource(ctx context.Context, name string) (core.IncomeSource, error) {
	src, err := i.target.FindSourceByName(ctx, name)
	if errors.Is(err, store.ErrNotFound) {
		src, err = i.target.CreateSource(ctx, name)
		if err != nil {
			return core.IncomeSource{}, fmt.Errorf("create income source %q: %w", name, err)
		}
		return src, nil
	}
	if err != nil {
		return core.IncomeSource{}, fmt.Errorf("find income source %q: %w", name, err)
	}
	return src, nil
}

func (i *Importer) isInternalTransfer(description string) bool {
	for _, kw := range i.TransferKeywords {
		if kw != "" && strings.Contains(strings.ToLower(description), strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
