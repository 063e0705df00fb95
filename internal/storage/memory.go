package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"expensetracker/internal/core"
)

// MemoryStore is an in-process Store. It backs the tests and the "memory"
// backend for trying the CLI without a database; nothing persists across
// invocations.
type MemoryStore struct {
	mu     sync.Mutex
	nextID int64
	items  []core.Expense
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Insert(_ context.Context, e core.Expense) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC().Truncate(time.Second)
	}
	s.nextID++
	e.ID = s.nextID
	s.items = append(s.items, e)
	return e.ID, nil
}

func (s *MemoryStore) Scan(_ context.Context, f core.Filter) ([]core.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []core.Expense
	for _, e := range s.items {
		if f.Matches(e) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

// InitSchema is a no-op; the memory backend has no schema.
func (s *MemoryStore) InitSchema(context.Context, bool) error {
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
