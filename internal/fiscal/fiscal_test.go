package fiscal

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/aoiro/internal/model"
)

func testSelector(buf *bytes.Buffer) Selector {
	return Selector{
		Now:    func() time.Time { return time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC) },
		Logger: slog.New(slog.NewTextHandler(buf, nil)),
	}
}

func TestYear(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"2024", 2024},
		{" 2023 ", 2023},
		{"2024-03-15", 2024},
		{"2022-12-31T23:00:00+09:00", 2022},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		assert.Equal(t, tt.want, testSelector(&buf).Year(tt.input), "Year(%q)", tt.input)
		assert.Empty(t, buf.String(), "no warning for %q", tt.input)
	}
}

func TestYear_FallbackWarns(t *testing.T) {
	for _, input := range []string{"", "abcd", "24", "2024-02-30", "0999", "1899-01-01", "next year"} {
		var buf bytes.Buffer
		assert.Equal(t, 2026, testSelector(&buf).Year(input), "Year(%q)", input)
		assert.Contains(t, buf.String(), "level=WARN")
		assert.Contains(t, buf.String(), "fallback=2026")
	}
}

func TestYear_ZeroSelector(t *testing.T) {
	var s Selector
	assert.Equal(t, 2024, s.Year("2024"))
	assert.Equal(t, time.Now().Year(), s.Year("bogus"))
}

func TestStartEnd(t *testing.T) {
	assert.Equal(t, "2024-01-01", Start(2024).Format("2006-01-02"))
	assert.Equal(t, "2024-12-31", End(2024).Format("2006-01-02"))
}

func TestEntriesAndLines(t *testing.T) {
	mk := func(y int, code string) model.JournalEntry {
		return model.JournalEntry{
			Date:  time.Date(y, 6, 1, 0, 0, 0, 0, time.UTC),
			Lines: []model.JournalLine{{AccountCode: code}},
		}
	}
	entries := []model.JournalEntry{mk(2023, "a"), mk(2024, "b"), mk(2025, "c"), mk(2024, "d")}

	got := Entries(entries, 2024)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].Lines[0].AccountCode)
	assert.Equal(t, "d", got[1].Lines[0].AccountCode)

	lines := Lines(entries, 2025)
	require.Len(t, lines, 1)
	assert.Equal(t, "c", lines[0].AccountCode)

	assert.Empty(t, Entries(entries, 2000))
}
