package core

import (
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		in  string
		out time.Time
		ok  bool
	}{
		{"2023-06-01T12:00:00+02:00", time.Date(2023, 6, 1, 10, 0, 0, 0, time.UTC), true},
		{"2023-06-01T12:00:00Z", time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC), true},
		{"2023-06-01T12:00:00", time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC), true},
		{"2023-06-01 12:00:00", time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC), true},
		{"2023-06-01", time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC), true},
		{"1685620800", time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC), true}, // unix seconds
		{"253402300799", time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC), true},
		{"junk", time.Time{}, false},
		{"2023-13-01", time.Time{}, false},
		{"", time.Time{}, false},
		{"NaN", time.Time{}, false},
		{"+Inf", time.Time{}, false},
		{"-Inf", time.Time{}, false},
		{"1e300", time.Time{}, false},
		{"-1e300", time.Time{}, false},
		{"253402300800", time.Time{}, false}, // just past 9999-12-31T23:59:59Z
	}
	for _, tc := range cases {
		got, err := ParseDate(tc.in)
		if tc.ok {
			if err != nil {
				t.Fatalf("%q expected ok, got %v", tc.in, err)
			}
			if !got.Equal(tc.out) {
				t.Fatalf("%q expected %v, got %v", tc.in, tc.out, got)
			}
			if got.Location() != time.UTC {
				t.Fatalf("%q expected UTC result, got %v", tc.in, got.Location())
			}
		} else {
			if !errors.Is(err, ErrInvalidDate) {
				t.Fatalf("%q expected ErrInvalidDate, got %v", tc.in, err)
			}
		}
	}
}

func TestFormatDateRoundTrip(t *testing.T) {
	in := time.Date(2023, 6, 1, 12, 30, 45, 0, time.UTC)
	s := FormatDate(in)
	if s != "2023-06-01T12:30:45Z" {
		t.Fatalf("unexpected interchange format: %s", s)
	}
	back, err := ParseDate(s)
	if err != nil {
		t.Fatalf("re-parse failed: %v", err)
	}
	if !back.Equal(in) {
		t.Fatalf("round trip lost the instant: %v != %v", back, in)
	}
}
