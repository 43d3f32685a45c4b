package model

import "time"

// Side is the debit or credit side of a journal line.
type Side string

const (
	SideDebit  Side = "debit"
	SideCredit Side = "credit"
)

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == SideDebit {
		return SideCredit
	}
	return SideDebit
}

// EvidenceStatus records how a transaction's evidence is kept.
type EvidenceStatus string

const (
	EvidenceNone    EvidenceStatus = "none"
	EvidencePaper   EvidenceStatus = "paper"
	EvidenceDigital EvidenceStatus = "digital"
)

// ApportionmentKind tags the origin of a line's amount.
type ApportionmentKind string

const (
	ApportionNone      ApportionmentKind = ""
	ApportionApplied   ApportionmentKind = "applied"
	ApportionGenerated ApportionmentKind = "generated"
)

// Apportionment is the business-ratio split tag carried by a line. The zero
// value means the line was never split. Construct the other states with
// AppliedSplit and GeneratedCounterpart so that an applied line always has its
// original amount and a generated line never has one.
type Apportionment struct {
	kind     ApportionmentKind
	original int64
	ratio    int
}

// AppliedSplit tags a line whose amount was reduced in place to its business share.
func AppliedSplit(originalAmount int64, ratio int) Apportionment {
	return Apportionment{kind: ApportionApplied, original: originalAmount, ratio: ratio}
}

// GeneratedCounterpart tags the owner-draw line inserted by a split.
func GeneratedCounterpart() Apportionment {
	return Apportionment{kind: ApportionGenerated}
}

// Kind returns the tag.
func (a Apportionment) Kind() ApportionmentKind { return a.kind }

// Split returns the original amount and ratio of an applied split.
func (a Apportionment) Split() (originalAmount int64, ratio int, ok bool) {
	if a.kind != ApportionApplied {
		return 0, 0, false
	}
	return a.original, a.ratio, true
}

// JournalLine is one debit or credit row of a journal entry.
type JournalLine struct {
	ID            string
	Side          Side
	AccountCode   string
	Amount        int64 // yen, non-negative
	TaxCategory   TaxCategory
	Memo          string
	Apportionment Apportionment
}

// AsTemplate returns a copy suitable for seeding a brand-new entry.
func (l JournalLine) AsTemplate() JournalLine {
	l.ID = ""
	l.Apportionment = Apportionment{}
	return l
}

// Evidence is a reference to an attached receipt or invoice file.
type Evidence struct {
	ID       string
	FileName string
}

// JournalEntry is a dated, balanced set of lines.
type JournalEntry struct {
	ID             string
	Date           time.Time
	Lines          []JournalLine
	Vendor         string // display name, not a vendor id
	Description    string
	EvidenceStatus EvidenceStatus
	Evidence       []Evidence
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// InYear reports whether the entry date falls in the calendar year.
func (e JournalEntry) InYear(year int) bool {
	return e.Date.Year() == year
}

// Touches reports whether any line posts to code.
func (e JournalEntry) Touches(code string) bool {
	for _, l := range e.Lines {
		if l.AccountCode == code {
			return true
		}
	}
	return false
}
