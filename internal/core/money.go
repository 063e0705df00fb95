// Package core holds the domain model, the amount/date parser and the
// aggregation engine. Amounts are exact decimals throughout; binary floating
// point never touches a currency value.
package core

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses an exact decimal currency value. Values that do not
// parse, or that are zero or negative, fail with ErrInvalidAmount.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if d.Sign() <= 0 {
		return decimal.Zero, fmt.Errorf("%w: %q must be positive", ErrInvalidAmount, s)
	}
	return d, nil
}

// FormatAmount renders d with exactly two fractional digits, the form used on
// every output surface (tables, CSV, the database text boundary).
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}
