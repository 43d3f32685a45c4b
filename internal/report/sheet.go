package report

import (
	"encoding/csv"
	"io"
)

// Sheet writes the sectioned CSV layout shared by every export: a bracketed
// title line, the section rows, then a blank line.
type Sheet struct {
	w *csv.Writer
}

// NewSheet returns a Sheet writing to w. Call Close to flush.
func NewSheet(w io.Writer) *Sheet {
	return &Sheet{w: csv.NewWriter(w)}
}

// Title writes a bracketed section heading.
func (s *Sheet) Title(title string) {
	s.Row("【" + title + "】")
}

// Row writes raw fields.
func (s *Sheet) Row(fields ...string) {
	_ = s.w.Write(fields) // error is sticky, surfaced by Close
}

// Blank writes an empty line.
func (s *Sheet) Blank() {
	s.Row("")
}

// Item writes a `code,name,amount` line.
func (s *Sheet) Item(code, name string, amount int64) {
	s.Row(code, name, FormatAmount(amount))
}

// Subtotal writes a `,label,amount...` line.
func (s *Sheet) Subtotal(label string, amounts ...int64) {
	fields := []string{"", label}
	for _, a := range amounts {
		fields = append(fields, FormatAmount(a))
	}
	s.Row(fields...)
}

// Section writes a titled statement section and its total.
func (s *Sheet) Section(sec Section) {
	s.Title(sec.Label)
	for _, it := range sec.Items {
		s.Item(it.Code, it.Name, it.Amount)
	}
	s.Subtotal(sec.Label+"合計", sec.Total)
	s.Blank()
}

// Close flushes buffered rows and returns the first write error.
func (s *Sheet) Close() error {
	s.w.Flush()
	return s.w.Error()
}
