package core

import "time"

// Period is a half-open [From, To) reporting window.
type Period struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// Month returns the calendar month containing ref as a half-open period.
// The upper bound is the first instant of the next month, so last-day
// arithmetic is exact for 28/29/30/31-day months.
func Month(ref time.Time) Period {
	y, m, _ := ref.Date()
	from := time.Date(y, m, 1, 0, 0, 0, 0, ref.Location())
	return Period{From: from, To: from.AddDate(0, 1, 0)}
}

// Between builds an explicit [from, to) period.
func Between(from, to time.Time) Period {
	return Period{From: from, To: to}
}

// Contains reports whether t falls inside the window.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.From) && t.Before(p.To)
}

// LastDay returns the final day of the window, for consumers that need an
// inclusive day range (e.g. calendar heatmaps).
func (p Period) LastDay() time.Time {
	return p.To.AddDate(0, 0, -1)
}

// FilterPeriod selects the records whose timestamp falls inside p, keeping
// input order. Records with unparseable dates are excluded here and never
// reach the downstream projections.
func FilterPeriod(records []Record, p Period) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if !r.Valid {
			continue
		}
		if p.Contains(r.Timestamp) {
			out = append(out, r)
		}
	}
	return out
}
