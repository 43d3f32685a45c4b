package accounts

import (
	"errors"
	"fmt"

	"github.com/cleared-dev/aoiro/internal/model"
)

// ErrCodeRangeExhausted is returned when all 100 user codes of a type are taken.
var ErrCodeRangeExhausted = errors.New("account code range exhausted")

// maxSeq is the last sequence number in a (type, provenance) block.
const maxSeq = 99

// NextCode returns the lowest unused user code (X100..X199) for the type.
func NextCode(t model.AccountType, existing []model.Account) (string, error) {
	if !t.Valid() {
		return "", fmt.Errorf("unknown account type %q", t)
	}
	used := make(map[string]bool, len(existing))
	for _, a := range existing {
		used[a.Code] = true
	}
	for seq := 0; seq <= maxSeq; seq++ {
		code := model.FormatCode(t, model.ProvenanceUser, seq)
		if !used[code] {
			return code, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrCodeRangeExhausted, t)
}
