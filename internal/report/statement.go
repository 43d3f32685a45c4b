package report

import (
	"sort"

	"github.com/cleared-dev/aoiro/internal/model"
)

// LineItem is one account line of a statement section.
type LineItem struct {
	Code   string
	Name   string
	Amount int64
}

// Section is a titled list of line items with their total.
type Section struct {
	Label string
	Items []LineItem
	Total int64
}

func (s *Section) add(acct model.Account, amount int64) {
	s.Items = append(s.Items, LineItem{Code: acct.Code, Name: acct.Name, Amount: amount})
	s.Total += amount
}

// codeSet is a fixed whitelist of account codes.
type codeSet map[string]bool

func newCodeSet(codes ...string) codeSet {
	s := make(codeSet, len(codes))
	for _, c := range codes {
		s[c] = true
	}
	return s
}

// sortedCodes returns the keys of balances in code order so statements are
// built deterministically.
func sortedCodes(balances map[string]int64) []string {
	codes := make([]string, 0, len(balances))
	for c := range balances {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}
