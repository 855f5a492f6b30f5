// Package dateutil parses and formats quotation dates.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDate indicates a value that cannot be read as a calendar date.
var ErrInvalidDate = errors.New("dateutil: invalid date")

// ErrInvalidDateFormat indicates an invalid display format string.
var ErrInvalidDateFormat = errors.New("dateutil: invalid date format")

// MaxFormatLength limits display format string length to prevent abuse.
const MaxFormatLength = 50

// dateLayouts are the accepted input layouts for quotation dates, tried in
// order: ISO, German dotted, and slash-separated.
var dateLayouts = []string{
	"2006-01-02",
	"02.01.2006",
	"02/01/2006",
}

// ParseDate parses a quotation date in one of the accepted layouts.
func ParseDate(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrInvalidDate)
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q (expected YYYY-MM-DD, DD.MM.YYYY, or DD/MM/YYYY)", ErrInvalidDate, value)
}

// displayTokens maps user-friendly tokens to Go time format components.
// Ordered by length descending for greedy matching.
var displayTokens = []struct {
	token string
	goFmt string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// languageFormats are the default display formats per layout language.
var languageFormats = map[string]string{
	"de": "DD.MM.YYYY",
	"en": "YYYY-MM-DD",
}

// FormatForLanguage renders t in the conventional format of the given
// layout language. Unknown languages fall back to ISO.
func FormatForLanguage(t time.Time, language string) string {
	format, ok := languageFormats[strings.ToLower(language)]
	if !ok {
		format = languageFormats["en"]
	}
	goFmt, err := ToGoLayout(format)
	if err != nil {
		// Built-in formats always parse; this only guards future edits.
		return t.Format("2006-01-02")
	}
	return t.Format(goFmt)
}

// ToGoLayout converts a user-friendly format string (YYYY, MM, DD tokens,
// literal text preserved) to Go's time layout.
func ToGoLayout(format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxFormatLength)
	}

	var result strings.Builder
	result.Grow(len(format) + 10)

	i := 0
	for i < len(format) {
		matched := false
		for _, t := range displayTokens {
			if strings.HasPrefix(format[i:], t.token) {
				result.WriteString(t.goFmt)
				i += len(t.token)
				matched = true
				break
			}
		}
		if !matched {
			result.WriteByte(format[i])
			i++
		}
	}

	return result.String(), nil
}
