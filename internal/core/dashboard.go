// Package core implements the transaction aggregation pipeline: a pure
// transformation from two raw record collections plus a reference date to the
// dashboard views (totals, calendar heatmap, category distribution, recent
// feed). Nothing here reads the clock, performs I/O, or holds state between
// calls; every view is recomputed in full from the snapshot it is given.
package core

import "time"

// Snapshot is a point-in-time copy of the two record-store collections. The
// caller owns fetching; a fetch failure must surface here as an empty slice,
// never as nil semantics the pipeline has to guess about (an empty snapshot
// simply produces empty views).
type Snapshot struct {
	Expenses []RawExpense
	Incomes  []RawIncome
}

// Dashboard bundles the four derived views for one reporting period.
type Dashboard struct {
	Period     Period          `json:"period"`
	Totals     Totals          `json:"totals"`
	Calendar   CalendarDataset `json:"calendar"`
	Categories []Slice         `json:"categories"`
	Recent     []Record        `json:"recent"`
}

// Option tweaks dashboard construction.
type Option func(*options)

type options struct {
	feedLimit int
	period    *Period
}

// WithFeedLimit overrides the recent-feed truncation size.
func WithFeedLimit(n int) Option {
	return func(o *options) { o.feedLimit = n }
}

// WithPeriod replaces the default calendar-month window with an explicit
// [from, to) range.
func WithPeriod(p Period) Option {
	return func(o *options) { o.period = &p }
}

// BuildDashboard runs the full pipeline over a snapshot. ref selects the
// reporting period (its calendar month unless WithPeriod is given) and is
// always an explicit parameter so results are reproducible for fixed inputs.
// Invoking it twice on the same snapshot and ref yields identical views.
func BuildDashboard(snap Snapshot, ref time.Time, opts ...Option) Dashboard {
	o := options{feedLimit: DefaultFeedLimit}
	for _, opt := range opts {
		opt(&o)
	}
	period := Month(ref)
	if o.period != nil {
		period = *o.period
	}

	expenses := FilterPeriod(NormalizeExpenses(snap.Expenses), period)
	incomes := FilterPeriod(NormalizeIncomes(snap.Incomes), period)

	combined := make([]Record, 0, len(expenses)+len(incomes))
	combined = append(combined, expenses...)
	combined = append(combined, incomes...)

	return Dashboard{
		Period:     period,
		Totals:     Aggregate(combined),
		Calendar:   ProjectCalendar(combined),
		Categories: DistributeByCategory(expenses),
		Recent:     BuildFeed(expenses, incomes, o.feedLimit),
	}
}
