// Package decfmt parses human-entered decimal amounts.
//
// Quotation tables are typed by hand in either German or English locale
// conventions, so both "." and "," occur as decimal separator, optionally
// combined with thousands separators ("1.234,50", "1,234.50").
package decfmt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrAmount indicates a value that cannot be read as a decimal amount.
var ErrAmount = errors.New("decfmt: unparseable amount")

// ParseAmount parses a decimal amount tolerating both "." and "," as decimal
// separator and optional thousands separators.
//
// Disambiguation convention: when both separators appear, the right-most one
// is the decimal separator and the other is a thousands separator. A
// separator that appears only once is always the decimal separator, so
// "1.234" means 1.234 (never 1234); a separator repeated within the value
// ("1.234.500") can only be a thousands separator.
func ParseAmount(s string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(s)
	if cleaned == "" {
		return decimal.Decimal{}, fmt.Errorf("%w: empty value", ErrAmount)
	}

	// Non-breaking and regular spaces are common thousands separators too.
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	cleaned = strings.ReplaceAll(cleaned, " ", "")

	dots := strings.Count(cleaned, ".")
	commas := strings.Count(cleaned, ",")

	switch {
	case dots > 0 && commas > 0:
		if strings.LastIndex(cleaned, ".") > strings.LastIndex(cleaned, ",") {
			cleaned = normalize(cleaned, ",", dots)
		} else {
			cleaned = normalize(cleaned, ".", commas)
		}
	case commas > 1:
		cleaned = strings.ReplaceAll(cleaned, ",", "")
	case commas == 1:
		cleaned = strings.Replace(cleaned, ",", ".", 1)
	case dots > 1:
		cleaned = strings.ReplaceAll(cleaned, ".", "")
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrAmount, s)
	}
	return d, nil
}

// normalize removes the thousands separator and, when the decimal separator
// occurs more than once, rejects the value by leaving it unparseable.
func normalize(s, thousands string, decimalCount int) string {
	s = strings.ReplaceAll(s, thousands, "")
	if decimalCount > 1 {
		// Two decimal separators cannot be valid; keep them so the final
		// NewFromString call fails with a parse error.
		return s
	}
	if thousands == "." {
		return strings.Replace(s, ",", ".", 1)
	}
	return s
}
