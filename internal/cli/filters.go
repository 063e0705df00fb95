package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"expensetracker/internal/core"
)

// filterFlags holds the shared --since/--until/--category/--limit flags used
// by list, category-report and export.
type filterFlags struct {
	since    string
	until    string
	category string
	limit    int
}

func (f filterFlags) build() (core.Filter, error) {
	filter := core.Filter{Category: f.category, Limit: f.limit}
	var err error
	if filter.Since, err = parseOptionalDate(f.since); err != nil {
		return core.Filter{}, fmt.Errorf("--since: %w", err)
	}
	if filter.Until, err = parseOptionalDate(f.until); err != nil {
		return core.Filter{}, fmt.Errorf("--until: %w", err)
	}
	return filter, nil
}

func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := core.ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func printExpenses(w io.Writer, rows []core.Expense) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tAMOUNT\tCATEGORY\tDESCRIPTION\tCREATED AT")
	for _, e := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			e.ID, core.FormatAmount(e.Amount), e.Category, e.Description, core.FormatDate(e.CreatedAt))
	}
	tw.Flush()
	fmt.Fprintf(w, "\nTotal rows: %d\n", len(rows))
}

func printPeriodSummaries(w io.Writer, rows []core.PeriodSummary) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PERIOD\tCOUNT\tTOTAL")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", r.Period, r.Count, core.FormatAmount(r.Total))
	}
	tw.Flush()
}

func printCategorySummaries(w io.Writer, rows []core.CategorySummary) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tCOUNT\tTOTAL")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", r.Category, r.Count, core.FormatAmount(r.Total))
	}
	tw.Flush()
}
