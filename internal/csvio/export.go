// Package csvio is the interchange layer: it serializes query results to CSV
// and re-imports such files row by row, tolerating and reporting per-row
// failures.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"expensetracker/internal/core"
)

// Header is the exported column layout. Import accepts the same layout, plus
// a headerless positional variant without the id column.
var Header = []string{"id", "amount", "category", "description", "created_at"}

// Export writes a header row followed by one row per record. Timestamps are
// serialized as RFC 3339 UTC and amounts with two fractional digits, the
// forms the import path parses back losslessly.
func Export(w io.Writer, expenses []core.Expense) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, e := range expenses {
		row := []string{
			strconv.FormatInt(e.ID, 10),
			core.FormatAmount(e.Amount),
			e.Category,
			e.Description,
			core.FormatDate(e.CreatedAt),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
