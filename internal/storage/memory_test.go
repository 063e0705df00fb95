package storage

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"expensetracker/internal/core"
)

func seed(t *testing.T, s *MemoryStore) {
	t.Helper()
	rows := []core.Expense{
		{Amount: decimal.RequireFromString("10.00"), Category: "Food", CreatedAt: time.Date(2023, 6, 1, 9, 0, 0, 0, time.UTC)},
		{Amount: decimal.RequireFromString("20.00"), Category: "Food", CreatedAt: time.Date(2023, 6, 2, 9, 0, 0, 0, time.UTC)},
		{Amount: decimal.RequireFromString("5.00"), Category: "Transport", CreatedAt: time.Date(2023, 6, 3, 9, 0, 0, 0, time.UTC)},
	}
	for _, e := range rows {
		if _, err := s.Insert(context.Background(), e); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}
}

func TestMemoryStoreInsertAssignsIDs(t *testing.T) {
	s := NewMemoryStore()
	id1, err := s.Insert(context.Background(), core.Expense{Amount: decimal.RequireFromString("1.00"), Category: "A"})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	id2, err := s.Insert(context.Background(), core.Expense{Amount: decimal.RequireFromString("2.00"), Category: "B"})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if id1 != 1 || id2 != 2 {
		t.Fatalf("expected monotonic ids 1,2; got %d,%d", id1, id2)
	}
}

func TestMemoryStoreInsertDefaultsCreatedAt(t *testing.T) {
	s := NewMemoryStore()
	if _, err := s.Insert(context.Background(), core.Expense{Amount: decimal.RequireFromString("1.00"), Category: "A"}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	rows, err := s.Scan(context.Background(), core.Filter{})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if rows[0].CreatedAt.IsZero() {
		t.Fatal("created_at not defaulted")
	}
}

func TestMemoryStoreScanOrdersNewestFirst(t *testing.T) {
	s := NewMemoryStore()
	seed(t, s)

	rows, err := s.Scan(context.Background(), core.Filter{})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	for i := 1; i < len(rows); i++ {
		if rows[i].CreatedAt.After(rows[i-1].CreatedAt) {
			t.Fatalf("rows not newest-first: %v before %v", rows[i-1].CreatedAt, rows[i].CreatedAt)
		}
	}
}

func TestMemoryStoreScanFilters(t *testing.T) {
	s := NewMemoryStore()
	seed(t, s)

	rows, err := s.Scan(context.Background(), core.Filter{Category: "Food"})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 Food rows, got %d", len(rows))
	}

	since := time.Date(2023, 6, 2, 0, 0, 0, 0, time.UTC)
	rows, err = s.Scan(context.Background(), core.Filter{Since: &since})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows since June 2, got %d", len(rows))
	}

	rows, err = s.Scan(context.Background(), core.Filter{Limit: 1})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(rows) != 1 || rows[0].Category != "Transport" {
		t.Fatalf("limit 1 must keep the newest row, got %+v", rows)
	}
}

func TestMemoryStoreScanInvertedRangeIsEmpty(t *testing.T) {
	s := NewMemoryStore()
	seed(t, s)

	since := time.Date(2023, 6, 10, 0, 0, 0, 0, time.UTC)
	until := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	rows, err := s.Scan(context.Background(), core.Filter{Since: &since, Until: &until})
	if err != nil {
		t.Fatalf("scan must not error on inverted range: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected empty result, got %d rows", len(rows))
	}
}
