package journal

import (
	"github.com/cleared-dev/aoiro/internal/accounts"
	"github.com/cleared-dev/aoiro/internal/id"
	"github.com/cleared-dev/aoiro/internal/model"
)

// Shares splits amount into business and personal parts. The personal part
// absorbs the truncation remainder so the two always sum to amount.
func Shares(amount int64, ratio int) (business, personal int64) {
	business = amount * int64(ratio) / 100
	return business, amount - business
}

// Apportion splits the debit line at index into a business share, kept in
// place, and a personal share posted to the owner-draw account on a new line
// inserted right after it. The draw line is emitted even when it is zero so a
// later amount edit can be redistributed with Recalculate.
//
// A non-debit target, an out-of-range index or ratio, or a line that is
// already part of a split leaves lines unchanged and returns 0 splits.
// The input slice is never modified.
func Apportion(lines []model.JournalLine, index, ratio int) ([]model.JournalLine, int) {
	if index < 0 || index >= len(lines) || ratio < 0 || ratio > 100 {
		return lines, 0
	}
	target := lines[index]
	if target.Side != model.SideDebit || target.Apportionment.Kind() != model.ApportionNone {
		return lines, 0
	}

	business, personal := Shares(target.Amount, ratio)

	out := make([]model.JournalLine, 0, len(lines)+1)
	out = append(out, lines[:index]...)

	target.Apportionment = model.AppliedSplit(target.Amount, ratio)
	target.Amount = business
	out = append(out, target, model.JournalLine{
		ID:            id.NewGenerated(),
		Side:          model.SideDebit,
		AccountCode:   accounts.CodeOwnerDraw,
		Amount:        personal,
		TaxCategory:   model.TaxNotApplied,
		Memo:          target.Memo,
		Apportionment: model.GeneratedCounterpart(),
	})
	out = append(out, lines[index+1:]...)
	return out, 1
}

// Recalculate redistributes a new original amount over the applied line at
// index and its generated counterpart, keeping the recorded ratio. It reports
// false and returns lines unchanged when index is not an applied split.
func Recalculate(lines []model.JournalLine, index int, original int64) ([]model.JournalLine, bool) {
	if index < 0 || index >= len(lines) {
		return lines, false
	}
	_, ratio, ok := lines[index].Apportionment.Split()
	if !ok {
		return lines, false
	}
	business, personal := Shares(original, ratio)

	out := append([]model.JournalLine(nil), lines...)
	out[index].Amount = business
	out[index].Apportionment = model.AppliedSplit(original, ratio)
	if next := index + 1; next < len(out) && out[next].Apportionment.Kind() == model.ApportionGenerated {
		out[next].Amount = personal
	}
	return out, true
}

// RemoveApportionment reverses Apportion: generated draw lines are dropped and
// every applied line gets its original amount back with the tag cleared.
// Untagged lines pass through unchanged.
func RemoveApportionment(lines []model.JournalLine) []model.JournalLine {
	out := make([]model.JournalLine, 0, len(lines))
	for _, l := range lines {
		switch l.Apportionment.Kind() {
		case model.ApportionGenerated:
			continue
		case model.ApportionApplied:
			original, _, _ := l.Apportionment.Split()
			l.Amount = original
			l.Apportionment = model.Apportionment{}
		}
		out = append(out, l)
	}
	return out
}

// TemplateLines returns an entry's lines prepared for a brand-new entry. Ids
// and apportionment tags are stripped; amounts and accounts are kept as posted.
func TemplateLines(entry model.JournalEntry) []model.JournalLine {
	lines := make([]model.JournalLine, len(entry.Lines))
	for i, l := range entry.Lines {
		lines[i] = l.AsTemplate()
	}
	return lines
}
