package storage

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"expensetracker/internal/core"
)

// PostgresStore is a Store over a single pgx connection. The numeric column
// is read and written as text so amounts map to exact decimals at the
// boundary instead of driver-chosen float types.
type PostgresStore struct {
	conn *pgx.Conn
	dsn  string
}

func NewPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: connect: %v", ErrUnavailable, err)
	}
	return &PostgresStore{conn: conn, dsn: dsn}, nil
}

func (s *PostgresStore) Insert(ctx context.Context, e core.Expense) (int64, error) {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC().Truncate(time.Second)
	}

	var description *string
	if e.Description != "" {
		description = &e.Description
	}

	var id int64
	err := s.conn.QueryRow(ctx,
		`INSERT INTO expenses (amount, category, description, created_at)
		 VALUES ($1::numeric, $2, $3, $4)
		 RETURNING id`,
		core.FormatAmount(e.Amount), e.Category, description, e.CreatedAt).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert expense: %w", err)
	}

	slog.InfoContext(ctx, "Expense saved", "id", id, "category", e.Category, "amount", core.FormatAmount(e.Amount))
	return id, nil
}

func (s *PostgresStore) Scan(ctx context.Context, f core.Filter) ([]core.Expense, error) {
	query := `SELECT id, amount::text, category, COALESCE(description, ''), created_at FROM expenses`
	var (
		clauses []string
		args    []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if f.Since != nil {
		clauses = append(clauses, "created_at >= "+arg(*f.Since))
	}
	if f.Until != nil {
		clauses = append(clauses, "created_at <= "+arg(*f.Until))
	}
	if f.Category != "" {
		clauses = append(clauses, "category = "+arg(f.Category))
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY created_at DESC, id DESC"
	if f.Limit > 0 {
		query += " LIMIT " + arg(f.Limit)
	}

	rows, err := s.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query expenses: %w", err)
	}
	defer rows.Close()

	var out []core.Expense
	for rows.Next() {
		var (
			e      core.Expense
			amount string
		)
		if err := rows.Scan(&e.ID, &amount, &e.Category, &e.Description, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		if e.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("stored amount %q: %w", amount, err)
		}
		e.CreatedAt = e.CreatedAt.UTC()
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *PostgresStore) Close() error {
	if s.conn != nil {
		return s.conn.Close(context.Background())
	}
	return nil
}
