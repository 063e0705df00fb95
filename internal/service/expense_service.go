// Package service orchestrates record operations: validation at the insert
// boundary, filtered queries, and the aggregation reports.
package service

import (
	"context"
	"fmt"
	"time"

	"expensetracker/internal/core"
	"expensetracker/internal/storage"
)

type ExpenseService struct {
	store     storage.Store
	validator core.Validator
}

func New(store storage.Store, limits core.Limits) *ExpenseService {
	return &ExpenseService{
		store:     store,
		validator: core.Validator{Limits: limits},
	}
}

// Add validates and persists a new expense, returning the assigned id.
func (s *ExpenseService) Add(ctx context.Context, e core.Expense) (int64, error) {
	e, err := s.validator.Normalize(e)
	if err != nil {
		return 0, err
	}
	id, err := s.store.Insert(ctx, e)
	if err != nil {
		return 0, fmt.Errorf("add expense: %w", err)
	}
	return id, nil
}

// List returns records matching f, newest first.
func (s *ExpenseService) List(ctx context.Context, f core.Filter) ([]core.Expense, error) {
	rows, err := s.store.Scan(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return rows, nil
}

// SummaryByPeriod aggregates every stored record into week or month buckets,
// most recent first, truncated to limit buckets.
func (s *ExpenseService) SummaryByPeriod(ctx context.Context, period core.Period, limit int) ([]core.PeriodSummary, error) {
	if !period.Valid() {
		return nil, fmt.Errorf("%w: %q", core.ErrInvalidPeriod, period)
	}
	rows, err := s.store.Scan(ctx, core.Filter{})
	if err != nil {
		return nil, fmt.Errorf("summary by period: %w", err)
	}
	return core.SummarizeByPeriod(rows, period, limit)
}

// CategoryReport aggregates records in the optional [since, until] range by
// category, ordered by total descending.
func (s *ExpenseService) CategoryReport(ctx context.Context, since, until *time.Time, limit int) ([]core.CategorySummary, error) {
	rows, err := s.store.Scan(ctx, core.Filter{Since: since, Until: until})
	if err != nil {
		return nil, fmt.Errorf("category report: %w", err)
	}
	return core.SummarizeByCategory(rows, limit), nil
}
