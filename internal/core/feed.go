package core

import "sort"

// DefaultFeedLimit matches the recent-activity list size of the dashboard.
const DefaultFeedLimit = 6

// BuildFeed merges expense and income records into one recency-sorted feed,
// truncated to at most limit entries. Expenses keep their encounter order
// ahead of incomes before sorting, and the sort is stable, so two records
// with identical timestamps never swap across runs. A record carrying an
// unparseable timestamp sorts after every valid one instead of being dropped.
func BuildFeed(expenses, incomes []Record, limit int) []Record {
	if limit <= 0 {
		limit = DefaultFeedLimit
	}
	merged := make([]Record, 0, len(expenses)+len(incomes))
	merged = append(merged, expenses...)
	merged = append(merged, incomes...)

	sort.SliceStable(merged, func(i, j int) bool {
		a, b := merged[i], merged[j]
		if a.Valid != b.Valid {
			return a.Valid
		}
		return a.Timestamp.After(b.Timestamp)
	})

	if len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}
