package core

import (
	"errors"
	"testing"
	"time"
)

func TestParseTimestamp(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
		ok   bool
	}{
		{"2023-10-12 20:15:00", time.Date(2023, 10, 12, 20, 15, 0, 0, time.UTC), true},
		{"2023-10-12T20:15:00", time.Date(2023, 10, 12, 20, 15, 0, 0, time.UTC), true},
		{"2023-10-12 20:15", time.Date(2023, 10, 12, 20, 15, 0, 0, time.UTC), true}, // seconds default to 0
		{"2023-10-12T20:15", time.Date(2023, 10, 12, 20, 15, 0, 0, time.UTC), true},
		{"2023-10-12", time.Time{}, false},
		{"12/10/2023 20:15", time.Time{}, false},
		{"2023-13-01 00:00:00", time.Time{}, false},
		{"", time.Time{}, false},
	}
	for _, tc := range cases {
		got, err := ParseTimestamp(tc.in)
		if tc.ok {
			if err != nil || !got.Equal(tc.want) {
				t.Fatalf("%q expected %v, got %v (err=%v)", tc.in, tc.want, got, err)
			}
		} else {
			if err == nil {
				t.Fatalf("%q expected error", tc.in)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("%q expected *ParseError, got %T", tc.in, err)
			}
		}
	}
}

func TestFormatTimestampRoundTrip(t *testing.T) {
	got, err := ParseTimestamp("2023-02-28T10:10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s := FormatTimestamp(got); s != "2023-02-28 10:10:00" {
		t.Fatalf("expected canonical layout, got %q", s)
	}
}

func TestWithinRangeInclusiveBounds(t *testing.T) {
	start := time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 7, 31, 23, 59, 59, 0, time.UTC)

	cases := []struct {
		d    time.Time
		want bool
	}{
		{start, true}, // boundary instants count as inside
		{end, true},
		{start.Add(time.Second), true},
		{start.Add(-time.Second), false},
		{end.Add(time.Second), false},
	}
	for i, tc := range cases {
		if got := withinRange(tc.d, start, end); got != tc.want {
			t.Fatalf("case %d: withinRange(%v) = %v, want %v", i, tc.d, got, tc.want)
		}
	}
}
