// Package storage provides the persistent record store boundary and its
// backends. All backends expose the same append-only contract: insert assigns
// the next identifier, records are never updated or deleted, and scans return
// newest-first.
package storage

import (
	"context"
	"errors"

	"expensetracker/internal/core"
)

// ErrUnavailable wraps connection and transport failures. It is fatal for the
// whole invocation; callers do not retry, since insert is not idempotent.
var ErrUnavailable = errors.New("store unavailable")

// Store is the record store consumed by the query and aggregation engines.
type Store interface {
	// Insert persists a new record atomically and returns the assigned id.
	// A zero CreatedAt is defaulted to the current time.
	Insert(ctx context.Context, e core.Expense) (int64, error)

	// Scan returns all records matching f, ordered by created_at descending,
	// bounded by f.Limit when positive.
	Scan(ctx context.Context, f core.Filter) ([]core.Expense, error)

	Close() error
}

// SchemaInitializer is implemented by backends that manage their own schema.
type SchemaInitializer interface {
	// InitSchema creates the expenses relation if missing. With force it
	// drops and recreates it.
	InitSchema(ctx context.Context, force bool) error
}
