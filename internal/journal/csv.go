package journal

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/cleared-dev/aoiro/internal/id"
	"github.com/cleared-dev/aoiro/internal/model"
)

// Header is the CSV header for journal.csv. Each row is one line; the
// entry-level columns repeat on every line of the entry.
const Header = "line_id,date,side,account_code,amount,tax_category,memo,vendor,description,evidence_status,evidence,apportion,original_amount,ratio,created_at,updated_at"

const (
	numFields       = 16
	dateFormat      = "2006-01-02"
	colLineID       = 0
	colDate         = 1
	colSide         = 2
	colAccount      = 3
	colAmount       = 4
	colTax          = 5
	colMemo         = 6
	colVendor       = 7
	colDesc         = 8
	colEvStatus     = 9
	colEvidence     = 10
	colApportion    = 11
	colOriginal     = 12
	colRatio        = 13
	colCreatedAt    = 14
	colUpdatedAt    = 15
	timestampFormat = time.RFC3339
)

// lineRow is one parsed journal.csv record.
type lineRow struct {
	entry model.JournalEntry // header fields only, Lines empty
	line  model.JournalLine
}

// ReadEntries reads all entries from a journal.csv reader. Rows are grouped
// into entries by the line id prefix, preserving file order.
func ReadEntries(r io.Reader) ([]model.JournalEntry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading journal CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var entries []model.JournalEntry
	index := make(map[string]int)
	for i, rec := range records[1:] {
		rw, err := unmarshalRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		g := id.EntryGroup(rw.line.ID)
		pos, seen := index[g]
		if !seen {
			rw.entry.ID = g
			index[g] = len(entries)
			entries = append(entries, rw.entry)
			pos = len(entries) - 1
		}
		entries[pos].Lines = append(entries[pos].Lines, rw.line)
	}
	return entries, nil
}

// WriteEntries writes entries to a journal.csv writer (including header).
func WriteEntries(w io.Writer, entries []model.JournalEntry) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	return writeRows(cw, entries)
}

// AppendEntries appends entries to an existing journal.csv writer (no header).
func AppendEntries(w io.Writer, entries []model.JournalEntry) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()
	return writeRows(cw, entries)
}

func writeRows(cw *csv.Writer, entries []model.JournalEntry) error {
	for _, e := range entries {
		for _, l := range e.Lines {
			if err := cw.Write(MarshalLine(e, l)); err != nil {
				return fmt.Errorf("writing line %s: %w", l.ID, err)
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalLine converts a line and its entry header to a CSV row.
func MarshalLine(e model.JournalEntry, l model.JournalLine) []string {
	row := make([]string, numFields)
	row[colLineID] = l.ID
	row[colDate] = e.Date.Format(dateFormat)
	row[colSide] = string(l.Side)
	row[colAccount] = l.AccountCode
	row[colAmount] = strconv.FormatInt(l.Amount, 10)
	row[colTax] = string(l.TaxCategory)
	row[colMemo] = l.Memo
	row[colVendor] = e.Vendor
	row[colDesc] = e.Description
	row[colEvStatus] = string(e.EvidenceStatus)
	row[colEvidence] = marshalEvidence(e.Evidence)

	row[colApportion] = string(l.Apportionment.Kind())
	if original, ratio, ok := l.Apportionment.Split(); ok {
		row[colOriginal] = strconv.FormatInt(original, 10)
		row[colRatio] = strconv.Itoa(ratio)
	}

	if !e.CreatedAt.IsZero() {
		row[colCreatedAt] = e.CreatedAt.UTC().Format(timestampFormat)
	}
	if !e.UpdatedAt.IsZero() {
		row[colUpdatedAt] = e.UpdatedAt.UTC().Format(timestampFormat)
	}
	return row
}

func unmarshalRow(record []string) (lineRow, error) {
	if len(record) != numFields {
		return lineRow{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := time.Parse(dateFormat, record[colDate])
	if err != nil {
		return lineRow{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	side := model.Side(record[colSide])
	if side != model.SideDebit && side != model.SideCredit {
		return lineRow{}, fmt.Errorf("invalid side %q", record[colSide])
	}

	amount, err := strconv.ParseInt(record[colAmount], 10, 64)
	if err != nil {
		return lineRow{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	tax := model.TaxCategory(record[colTax])
	if !tax.Valid() {
		return lineRow{}, fmt.Errorf("unknown tax category %q", record[colTax])
	}

	evidence, err := unmarshalEvidence(record[colEvidence])
	if err != nil {
		return lineRow{}, err
	}

	apportion, err := unmarshalApportionment(record[colApportion], record[colOriginal], record[colRatio])
	if err != nil {
		return lineRow{}, err
	}

	var created, updated time.Time
	if s := record[colCreatedAt]; s != "" {
		if created, err = time.Parse(timestampFormat, s); err != nil {
			return lineRow{}, fmt.Errorf("parsing created_at %q: %w", s, err)
		}
	}
	if s := record[colUpdatedAt]; s != "" {
		if updated, err = time.Parse(timestampFormat, s); err != nil {
			return lineRow{}, fmt.Errorf("parsing updated_at %q: %w", s, err)
		}
	}

	return lineRow{
		entry: model.JournalEntry{
			Date:           date,
			Vendor:         record[colVendor],
			Description:    record[colDesc],
			EvidenceStatus: model.EvidenceStatus(record[colEvStatus]),
			Evidence:       evidence,
			CreatedAt:      created,
			UpdatedAt:      updated,
		},
		line: model.JournalLine{
			ID:            record[colLineID],
			Side:          side,
			AccountCode:   record[colAccount],
			Amount:        amount,
			TaxCategory:   tax,
			Memo:          record[colMemo],
			Apportionment: apportion,
		},
	}, nil
}

func unmarshalApportionment(kind, original, ratio string) (model.Apportionment, error) {
	switch model.ApportionmentKind(kind) {
	case model.ApportionNone:
		return model.Apportionment{}, nil
	case model.ApportionGenerated:
		return model.GeneratedCounterpart(), nil
	case model.ApportionApplied:
		orig, err := strconv.ParseInt(original, 10, 64)
		if err != nil {
			return model.Apportionment{}, fmt.Errorf("parsing original_amount %q: %w", original, err)
		}
		r, err := strconv.Atoi(ratio)
		if err != nil {
			return model.Apportionment{}, fmt.Errorf("parsing ratio %q: %w", ratio, err)
		}
		return model.AppliedSplit(orig, r), nil
	}
	return model.Apportionment{}, fmt.Errorf("unknown apportion tag %q", kind)
}

// marshalEvidence packs evidence into one column as a nested CSV record of
// id,file_name pairs so any file name survives a round trip.
func marshalEvidence(ev []model.Evidence) string {
	if len(ev) == 0 {
		return ""
	}
	fields := make([]string, 0, 2*len(ev))
	for _, e := range ev {
		fields = append(fields, e.ID, e.FileName)
	}
	var b strings.Builder
	w := csv.NewWriter(&b)
	_ = w.Write(fields) // strings.Builder never fails
	w.Flush()
	return strings.TrimSuffix(b.String(), "\n")
}

func unmarshalEvidence(s string) ([]model.Evidence, error) {
	if s == "" {
		return nil, nil
	}
	r := csv.NewReader(strings.NewReader(s))
	r.FieldsPerRecord = -1
	fields, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("parsing evidence %q: %w", s, err)
	}
	if len(fields)%2 != 0 {
		return nil, fmt.Errorf("parsing evidence %q: odd field count %d", s, len(fields))
	}
	ev := make([]model.Evidence, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		ev = append(ev, model.Evidence{ID: fields[i], FileName: fields[i+1]})
	}
	return ev, nil
}
