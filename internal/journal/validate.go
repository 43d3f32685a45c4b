package journal

import (
	"errors"
	"fmt"

	"github.com/cleared-dev/aoiro/internal/model"
)

// ErrUnbalanced is returned by save paths when a validation Result is not valid.
var ErrUnbalanced = errors.New("journal entry is not balanced")

// Result is the outcome of validating a candidate entry's lines.
type Result struct {
	IsValid          bool
	DebitTotal       int64
	CreditTotal      int64
	HasEmptyAccounts bool
	HasNonPositive   bool
}

// Err converts an invalid result into an error wrapping ErrUnbalanced.
func (r Result) Err() error {
	if r.IsValid {
		return nil
	}
	switch {
	case r.HasEmptyAccounts:
		return fmt.Errorf("%w: line without account", ErrUnbalanced)
	case r.HasNonPositive:
		return fmt.Errorf("%w: line amount must be greater than zero", ErrUnbalanced)
	case r.DebitTotal != r.CreditTotal:
		return fmt.Errorf("%w: debits (%d) != credits (%d)", ErrUnbalanced, r.DebitTotal, r.CreditTotal)
	}
	return fmt.Errorf("%w: fewer than two lines", ErrUnbalanced)
}

// Validate checks the double-entry invariant of a line set: debit and credit
// totals agree, every amount is positive and every line names an account.
// It never fails; callers decide whether to block a save.
func Validate(lines []model.JournalLine) Result {
	var r Result
	for _, l := range lines {
		switch l.Side {
		case model.SideDebit:
			r.DebitTotal += l.Amount
		case model.SideCredit:
			r.CreditTotal += l.Amount
		}
		if l.Amount <= 0 {
			r.HasNonPositive = true
		}
		if l.AccountCode == "" {
			r.HasEmptyAccounts = true
		}
	}
	r.IsValid = len(lines) >= 2 &&
		r.DebitTotal == r.CreditTotal &&
		!r.HasNonPositive &&
		!r.HasEmptyAccounts
	return r
}
