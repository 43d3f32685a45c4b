package report

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// NegativeSign prefixes negative amounts in exports.
const NegativeSign = "△"

// FormatAmount renders yen with comma grouping. Negative values carry the
// △ prefix instead of a minus sign; zero is "0".
func FormatAmount(n int64) string {
	p := message.NewPrinter(language.Japanese)
	if n < 0 {
		return NegativeSign + p.Sprintf("%d", -n)
	}
	return p.Sprintf("%d", n)
}
