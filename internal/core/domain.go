package core

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	Weekly  Period = "week"
	Monthly Period = "month"
)

type (
	// Period is a time bucket kind accepted by the aggregation engine.
	Period string

	// Expense is a single recorded transaction. Records are immutable after
	// insert: the store assigns ID and nothing updates or deletes a row.
	Expense struct {
		ID          int64
		Amount      decimal.Decimal
		Category    string
		Description string
		CreatedAt   time.Time
	}

	// Filter narrows a store scan. Nil/empty fields are ignored; Since and
	// Until are inclusive bounds on CreatedAt. Limit <= 0 means unbounded.
	Filter struct {
		Since    *time.Time
		Until    *time.Time
		Category string
		Limit    int
	}

	// Limits bounds the free-text fields of a record. Values come from
	// configuration; use DefaultLimits when none are configured.
	Limits struct {
		MaxCategoryLen    int
		MaxDescriptionLen int
	}

	// Validator applies the record invariants at the insert boundary.
	Validator struct {
		Limits Limits
	}
)

var (
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidPeriod   = errors.New("invalid period")
)

// DefaultLimits returns the bounds used when configuration does not override
// them.
func DefaultLimits() Limits {
	return Limits{MaxCategoryLen: 120, MaxDescriptionLen: 200}
}

// Valid reports whether p is a recognized bucket kind.
func (p Period) Valid() bool {
	switch p {
	case Weekly, Monthly:
		return true
	default:
		return false
	}
}

// Matches reports whether e satisfies every set constraint of f. Constraints
// are independent: a Since later than Until simply matches nothing.
func (f Filter) Matches(e Expense) bool {
	if f.Since != nil && e.CreatedAt.Before(*f.Since) {
		return false
	}
	if f.Until != nil && e.CreatedAt.After(*f.Until) {
		return false
	}
	if f.Category != "" && e.Category != f.Category {
		return false
	}
	return true
}

// Normalize validates e against the configured bounds and returns the record
// as it will be persisted: amount strictly positive and rounded to cents,
// category trimmed and
// required, description trimmed and truncated to its bound, CreatedAt
// defaulted to now and normalized to second precision in UTC so that a CSV
// export reproduces it exactly.
func (v Validator) Normalize(e Expense) (Expense, error) {
	// Persist at cent precision everywhere so every backend stores the same
	// value the formatters render. Rounding happens before the sign check so
	// sub-cent amounts fail validation instead of persisting as zero.
	e.Amount = e.Amount.Round(2)
	if e.Amount.Sign() <= 0 {
		return Expense{}, ErrInvalidAmount
	}
	e.Category = strings.TrimSpace(e.Category)
	if e.Category == "" {
		return Expense{}, ErrInvalidCategory
	}
	if max := v.Limits.MaxCategoryLen; max > 0 && len([]rune(e.Category)) > max {
		return Expense{}, ErrInvalidCategory
	}
	e.Description = strings.TrimSpace(e.Description)
	if max := v.Limits.MaxDescriptionLen; max > 0 {
		if r := []rune(e.Description); len(r) > max {
			e.Description = string(r[:max])
		}
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	e.CreatedAt = e.CreatedAt.UTC().Truncate(time.Second)
	return e, nil
}
