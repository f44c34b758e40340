// Package amount normalizes heterogeneous textual amount representations
// into canonical float values.
package amount

import (
	"strconv"
	"strings"
)

// currency markers stripped before parsing, longest first so "PLN" does
// not leave " zł" fragments behind.
var currencyMarkers = []string{" PLN", " zł", "PLN", "zł"}

// Normalize converts a raw sheet cell or CSV field into a float amount.
// Numeric input passes through; nil and empty text yield 0; anything
// textual has currency markers, spaces (including non-breaking spaces)
// and the decimal comma normalized away before parsing. Unparseable
// input yields 0 rather than an error: malformed source data must never
// abort ingestion of an otherwise valid batch.
func Normalize(raw any) float64 {
	switch v := raw.(type) {
	case nil:
		return 0
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		return NormalizeString(v)
	default:
		return 0
	}
}

// NormalizeString is the textual half of Normalize.
func NormalizeString(s string) float64 {
	if strings.TrimSpace(s) == "" {
		return 0
	}

	for _, marker := range currencyMarkers {
		s = strings.ReplaceAll(s, marker, "")
	}

	// Banks pad thousands with regular or non-breaking spaces.
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "\u00a0", "")

	s = strings.ReplaceAll(s, ",", ".")

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
