// Package normalize holds the pure field normalizers applied to raw
// portal values. Every function is total: unparsable input degrades to
// nil, nothing here ever returns an error.
package normalize

import (
	"strconv"
	"strings"
	"time"
)

// Markers the portal uses for "no grade" (absent, not graded, n/a).
var noValueMarkers = map[string]struct{}{
	"abs":  {},
	"ab":   {},
	"nn":   {},
	"n.n":  {},
	"na":   {},
	"n/a":  {},
	"null": {},
	"-":    {},
}

// SafeFloat parses a raw portal scalar into a float. Whitespace is
// stripped and a comma decimal separator is accepted. The empty string,
// the portal's absence markers (case-insensitive) and anything else
// unparsable all yield nil.
func SafeFloat(raw string) *float64 {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	if s == "" {
		return nil
	}
	if _, marked := noValueMarkers[strings.ToLower(s)]; marked {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

// FormatDate renders a date or datetime as YYYY-MM-DD. Nil input yields
// nil.
func FormatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}

// FormatClock renders the time-of-day part as HH:MM.
func FormatClock(t time.Time) string {
	return t.Format("15:04")
}

// StringOrNil maps an empty string to nil, used for optional text
// fields like rooms and comments.
func StringOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
