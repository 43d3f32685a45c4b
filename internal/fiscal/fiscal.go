// Package fiscal selects fiscal years and scopes entries to them. A fiscal
// year is a calendar year, January through December.
package fiscal

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/cleared-dev/aoiro/internal/model"
)

// Supported year range; anything outside is treated as malformed input.
const (
	MinYear = 1900
	MaxYear = 9999
)

// Selector resolves fiscal years from untrusted strings.
type Selector struct {
	Now    func() time.Time
	Logger *slog.Logger
}

// DefaultSelector uses the wall clock and the default logger.
func DefaultSelector() Selector {
	return Selector{Now: time.Now, Logger: slog.Default()}
}

// Year parses "2024", "2024-03-15" or an RFC 3339 timestamp. Malformed or
// out-of-range input falls back to the current year with a warning.
func (s Selector) Year(value string) int {
	if y, ok := parseYear(value); ok {
		return y
	}
	current := s.now().Year()
	s.logger().Warn("invalid fiscal year, using current year",
		"value", value,
		"fallback", current,
	)
	return current
}

func (s Selector) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

func (s Selector) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}

func parseYear(value string) (int, bool) {
	value = strings.TrimSpace(value)
	var year int
	switch {
	case len(value) == 4:
		y, err := strconv.Atoi(value)
		if err != nil {
			return 0, false
		}
		year = y
	default:
		t, err := time.Parse("2006-01-02", value)
		if err != nil {
			t, err = time.Parse(time.RFC3339, value)
			if err != nil {
				return 0, false
			}
		}
		year = t.Year()
	}
	if year < MinYear || year > MaxYear {
		return 0, false
	}
	return year, true
}

// Start returns January 1 of the year in UTC.
func Start(year int) time.Time {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
}

// End returns December 31 of the year in UTC.
func End(year int) time.Time {
	return time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
}

// Entries returns the entries dated within the year, preserving order.
func Entries(entries []model.JournalEntry, year int) []model.JournalEntry {
	var out []model.JournalEntry
	for _, e := range entries {
		if e.InYear(year) {
			out = append(out, e)
		}
	}
	return out
}

// Lines flattens the lines of the entries dated within the year.
func Lines(entries []model.JournalEntry, year int) []model.JournalLine {
	var out []model.JournalLine
	for _, e := range entries {
		if e.InYear(year) {
			out = append(out, e.Lines...)
		}
	}
	return out
}
