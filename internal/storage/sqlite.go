package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"expensetracker/internal/core"
)

// SQLiteStore is a file-backed Store. Amounts cross the boundary as
// fixed two-digit decimal text and created_at as RFC 3339 UTC text, so the
// lexicographic ordering SQLite applies matches chronological order and no
// value ever passes through a float.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("%w: open sqlite database: %v", ErrUnavailable, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: ping database: %v", ErrUnavailable, err)
	}

	return &SQLiteStore{db: db, dbPath: dbPath}, nil
}

func (s *SQLiteStore) Insert(ctx context.Context, e core.Expense) (int64, error) {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC().Truncate(time.Second)
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO expenses (amount, category, description, created_at) VALUES (?, ?, ?, ?)`,
		core.FormatAmount(e.Amount), e.Category, nullable(e.Description), core.FormatDate(e.CreatedAt))
	if err != nil {
		return 0, fmt.Errorf("insert expense: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert expense id: %w", err)
	}

	slog.InfoContext(ctx, "Expense saved", "id", id, "category", e.Category, "amount", core.FormatAmount(e.Amount))
	return id, nil
}

func (s *SQLiteStore) Scan(ctx context.Context, f core.Filter) ([]core.Expense, error) {
	query := `SELECT id, amount, category, COALESCE(description, ''), created_at FROM expenses`
	var (
		clauses []string
		args    []any
	)
	if f.Since != nil {
		clauses = append(clauses, "created_at >= ?")
		args = append(args, core.FormatDate(*f.Since))
	}
	if f.Until != nil {
		clauses = append(clauses, "created_at <= ?")
		args = append(args, core.FormatDate(*f.Until))
	}
	if f.Category != "" {
		clauses = append(clauses, "category = ?")
		args = append(args, f.Category)
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY created_at DESC, id DESC"
	if f.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, f.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query expenses: %w", err)
	}
	defer rows.Close()

	var out []core.Expense
	for rows.Next() {
		var (
			e       core.Expense
			amount  string
			created string
		)
		if err := rows.Scan(&e.ID, &amount, &e.Category, &e.Description, &created); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		if e.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("stored amount %q: %w", amount, err)
		}
		if e.CreatedAt, err = time.Parse(time.RFC3339, created); err != nil {
			return nil, fmt.Errorf("stored created_at %q: %w", created, err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
