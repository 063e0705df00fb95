package core

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// dateLayouts is the accepted cascade, in priority order. Layouts without a
// zone are interpreted as UTC. The permissiveness is deliberate: dates arrive
// from manual entry and from CSV files exported by other tools, and callers
// should not have to pre-normalize them.
var dateLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate parses a timezone-aware instant from one of the accepted layouts,
// falling back to a Unix timestamp (seconds since epoch, fractional allowed).
// The result is normalized to UTC. Unrecognized input fails with
// ErrInvalidDate.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidDate
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	if ts, err := strconv.ParseFloat(s, 64); err == nil && timestampInRange(ts) {
		sec, frac := math.Modf(ts)
		return time.Unix(int64(sec), int64(frac*float64(time.Second))).UTC(), nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// maxUnixSeconds is 9999-12-31T23:59:59Z. Timestamps past year 9999 cannot
// come from a real ledger and would not survive the RFC 3339 interchange
// format anyway.
const maxUnixSeconds = 253402300799

// timestampInRange rejects the float values ParseFloat accepts but that do
// not denote a usable instant: NaN, infinities, and magnitudes that overflow
// the supported epoch range.
func timestampInRange(ts float64) bool {
	if math.IsNaN(ts) || math.IsInf(ts, 0) {
		return false
	}
	return math.Abs(ts) <= maxUnixSeconds
}

// FormatDate renders t in the fixed interchange format: RFC 3339 in UTC.
// ParseDate accepts this form, which is what makes CSV round trips stable.
func FormatDate(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
