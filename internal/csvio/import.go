package csvio

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"expensetracker/internal/core"
	"expensetracker/internal/log"
)

// RecordAdder persists one record after validation. *service.ExpenseService
// satisfies it.
type RecordAdder interface {
	Add(ctx context.Context, e core.Expense) (int64, error)
}

// Importer reads CSV rows into the store with a partial-success contract:
// each row is handled independently, malformed rows are logged and skipped,
// and earlier inserts are never rolled back.
type Importer struct {
	adder  RecordAdder
	logger *log.Logger
}

func NewImporter(adder RecordAdder, logger *log.Logger) *Importer {
	return &Importer{
		adder:  adder,
		logger: logger.WithComponent(log.ComponentInterchange),
	}
}

// positional is the headerless column layout.
var positional = map[string]int{"amount": 0, "category": 1, "description": 2, "created_at": 3}

// Import reads rows from r and returns the count of successfully imported
// rows, not the total rows read. With hasHeader the column order is taken
// from the header row and an id column, if present, is ignored.
func (im *Importer) Import(ctx context.Context, r io.Reader, hasHeader bool) (int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	columns := positional
	row := 0
	if hasHeader {
		header, err := cr.Read()
		if err != nil {
			return 0, fmt.Errorf("read header: %w", err)
		}
		row++
		if columns, err = columnsFromHeader(header); err != nil {
			return 0, err
		}
	}

	imported := 0
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		row++
		if err != nil {
			im.logger.Warn("Skipping malformed row", log.FieldRow, row, log.FieldError, err)
			continue
		}
		e, err := parseRow(record, columns)
		if err == nil {
			_, err = im.adder.Add(ctx, e)
		}
		if err != nil {
			im.logger.Warn("Skipping row", log.FieldRow, row, log.FieldError, err)
			continue
		}
		imported++
	}

	im.logger.Info("Import finished", log.FieldCount, imported)
	return imported, nil
}

func columnsFromHeader(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"amount", "category"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("header is missing required column %q", required)
		}
	}
	return columns, nil
}

func parseRow(record []string, columns map[string]int) (core.Expense, error) {
	field := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	amount, err := core.ParseAmount(field("amount"))
	if err != nil {
		return core.Expense{}, err
	}

	e := core.Expense{
		Amount:      amount,
		Category:    field("category"),
		Description: field("description"),
	}
	if raw := field("created_at"); raw != "" {
		if e.CreatedAt, err = core.ParseDate(raw); err != nil {
			return core.Expense{}, err
		}
	}
	return e, nil
}
