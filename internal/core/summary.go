package core

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// PeriodSummary is one time bucket with its row count and exact total.
type PeriodSummary struct {
	Period string
	Count  int
	Total  decimal.Decimal
}

// CategorySummary aggregates matching records for one category.
type CategorySummary struct {
	Category string
	Count    int
	Total    decimal.Decimal
}

// SummarizeByPeriod groups expenses into week or month buckets keyed by the
// UTC start of the period, sums amounts with exact decimal arithmetic rounded
// to two digits, and returns buckets most recent first, truncated to limit
// (limit <= 0 keeps all).
func SummarizeByPeriod(expenses []Expense, period Period, limit int) ([]PeriodSummary, error) {
	if !period.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPeriod, period)
	}

	type bucket struct {
		count int
		total decimal.Decimal
	}
	buckets := make(map[time.Time]*bucket)
	for _, e := range expenses {
		start := TruncateToPeriod(e.CreatedAt, period)
		b, ok := buckets[start]
		if !ok {
			b = &bucket{}
			buckets[start] = b
		}
		b.count++
		b.total = b.total.Add(e.Amount)
	}

	starts := make([]time.Time, 0, len(buckets))
	for start := range buckets {
		starts = append(starts, start)
	}
	sort.Slice(starts, func(i, j int) bool { return starts[i].After(starts[j]) })
	if limit > 0 && len(starts) > limit {
		starts = starts[:limit]
	}

	out := make([]PeriodSummary, len(starts))
	for i, start := range starts {
		b := buckets[start]
		out[i] = PeriodSummary{
			Period: periodLabel(start, period),
			Count:  b.count,
			Total:  b.total.Round(2),
		}
	}
	return out, nil
}

// SummarizeByCategory groups expenses by category, ordered by total
// descending with ties broken by category name ascending so the output is
// deterministic, truncated to limit (limit <= 0 keeps all).
func SummarizeByCategory(expenses []Expense, limit int) []CategorySummary {
	totals := make(map[string]*CategorySummary)
	for _, e := range expenses {
		s, ok := totals[e.Category]
		if !ok {
			s = &CategorySummary{Category: e.Category}
			totals[e.Category] = s
		}
		s.Count++
		s.Total = s.Total.Add(e.Amount)
	}

	out := make([]CategorySummary, 0, len(totals))
	for _, s := range totals {
		s.Total = s.Total.Round(2)
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Total.Cmp(out[j].Total); c != 0 {
			return c > 0
		}
		return out[i].Category < out[j].Category
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// TruncateToPeriod returns the UTC start instant of the period containing t.
// Weeks start on Monday.
func TruncateToPeriod(t time.Time, period Period) time.Time {
	t = t.UTC()
	if period == Monthly {
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	}
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	monday := (int(t.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -monday)
}

func periodLabel(start time.Time, period Period) string {
	if period == Monthly {
		return start.Format("2006-01")
	}
	return start.Format("2006-01-02")
}
