// Package core implements the savings calculation engine: timestamp
// normalization, round-up ceilings, period adjustment rules, aggregation,
// validation and investment projections.
//
// The package is a pure computation library: no I/O, no shared state.
// Concurrent calls are safe because every operation works only on its inputs.
package core

import (
	"fmt"
	"time"
)

// TimestampLayout is the canonical format consumed and produced by the engine.
const TimestampLayout = "2006-01-02 15:04:05"

// timestampLayouts are the accepted input shapes: T or space separator,
// seconds optional (default 0). Instants are naive, no zone handling.
var timestampLayouts = []string{
	TimestampLayout,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
}

// ParseError reports a timestamp string that matches no accepted format.
// It aborts the whole batch operation that encountered it.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("timestamp %q matches no accepted format", e.Input)
}

// ParseTimestamp normalizes a timestamp string into a comparable instant.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &ParseError{Input: s}
}

// FormatTimestamp renders an instant in the canonical layout.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// withinRange reports whether d lies in [start, end]. Both endpoints are
// inclusive everywhere in the engine.
func withinRange(d, start, end time.Time) bool {
	return !d.Before(start) && !d.After(end)
}
