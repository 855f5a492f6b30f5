package md2quote

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// PrefixMaxLen caps the {PREFIX} token derived from the company name.
const PrefixMaxLen = 3

// NumberResult is the outcome of ComputeNumber: the formatted quotation
// number plus the counter state the caller must persist before the number
// is considered issued (see ProfileStore.ApplyNumber).
type NumberResult struct {
	Number    string
	Counter   int
	PeriodKey string
}

// ComputeNumber generates the next quotation number for the profile as of
// the given date.
//
// The format string may contain the placeholders {YYYY} {YY} {MM} {DD}
// {PREFIX} {N} {NN} {NNN} {NNNN}. The period key derives from the finest
// time placeholder present: month placeholders give "YYYY-MM", year-only
// formats give "YYYY", and a format without time placeholders never resets.
// When the stored last period differs from the derived key the counter
// restarts at 1, otherwise it increments.
//
// ComputeNumber is pure: it never mutates the profile, so repeated preview
// calls do not advance the counter. It is not safe to run concurrently
// against the same profile without external serialization of the
// read-compute-persist sequence; two racing calls would propose the same
// number.
func ComputeNumber(p Profile, asOf time.Time) (NumberResult, error) {
	cfg := p.QuotationNumber
	if !cfg.Enabled {
		return NumberResult{}, ErrNumberingDisabled
	}

	format := cfg.Format
	if format == "" {
		format = DefaultProfile().QuotationNumber.Format
	}

	periodKey := derivePeriodKey(format, asOf)

	counter := cfg.Counter + 1
	if periodKey != cfg.LastPeriod {
		counter = 1
	}

	replacer := strings.NewReplacer(
		"{YYYY}", asOf.Format("2006"),
		"{YY}", asOf.Format("06"),
		"{MM}", asOf.Format("01"),
		"{DD}", asOf.Format("02"),
		"{PREFIX}", companyPrefix(p.Company.Name),
		// Counters wider than the padding render at full width.
		"{NNNN}", fmt.Sprintf("%04d", counter),
		"{NNN}", fmt.Sprintf("%03d", counter),
		"{NN}", fmt.Sprintf("%02d", counter),
		"{N}", fmt.Sprintf("%d", counter),
	)

	return NumberResult{
		Number:    replacer.Replace(format),
		Counter:   counter,
		PeriodKey: periodKey,
	}, nil
}

// derivePeriodKey maps the time placeholders in a format to the counter
// reset granularity. {DD} without {MM} is folded into month granularity.
func derivePeriodKey(format string, asOf time.Time) string {
	switch {
	case strings.Contains(format, "{MM}") || strings.Contains(format, "{DD}"):
		return asOf.Format("2006-01")
	case strings.Contains(format, "{YYYY}") || strings.Contains(format, "{YY}"):
		return asOf.Format("2006")
	default:
		return ""
	}
}

// companyPrefix derives the {PREFIX} token: the first letter of each
// whitespace-separated word of the company name, uppercased, capped at
// PrefixMaxLen characters.
func companyPrefix(name string) string {
	var initials []rune
	for _, word := range strings.Fields(name) {
		if len(initials) >= PrefixMaxLen {
			break
		}
		r, _ := utf8.DecodeRuneInString(word)
		initials = append(initials, unicode.ToUpper(r))
	}
	return string(initials)
}
