package model

import (
	"fmt"
	"strings"
	"time"
)

// DateFormat is the textual date form persisted on the sheet.
const DateFormat = "2006-01-02"

// dateLayouts lists the forms seen across the sheet and the bank
// exports, day-first variants last so ISO dates win.
var dateLayouts = []string{
	DateFormat,
	"2006-01-02 15:04:05",
	"02.01.2006",
	"02-01-2006",
	"02/01/2006",
}

// ParseDate parses a date cell from the sheet or a bank export.
// Time-of-day, if present, is discarded.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
