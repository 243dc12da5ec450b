// Package patterns holds the regular-expression recognizers for statement
// dates, currency amounts and reference numbers. Everything here is pure
// and stateless; both page parsers share these recognizers.
package patterns

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Leading date patterns, anchored at line start and tried in this fixed
// order. The 2-digit-year forms require a non-digit boundary so they do
// not swallow the first half of a 4-digit year.
var leadingDatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(\d{1,2}/\d{1,2}/\d{2})(?:[^0-9]|$)`),
	regexp.MustCompile(`^(\d{1,2}/\d{1,2}/\d{4})`),
	regexp.MustCompile(`^(\d{1,2}-\d{1,2}-\d{2})(?:[^0-9]|$)`),
	regexp.MustCompile(`^(\d{1,2}-\d{1,2}-\d{4})`),
}

// looseDateRe finds date-shaped substrings anywhere in a line; used by the
// fallback parser. The 4-digit-year alternative comes first because Go's
// alternation is leftmost-first.
var looseDateRe = regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{4}|\d{1,2}/\d{1,2}/\d{2}`)

// amountRe matches grouped-thousands decimal numbers with exactly two
// fraction digits, the shape statement amounts take.
var amountRe = regexp.MustCompile(`\d{1,3}(?:,\d{3})*\.\d{2}|\d+\.\d{2}`)

// refRe matches cheque/reference numbers: a run of 8+ uppercase
// alphanumerics or 10+ digits.
var refRe = regexp.MustCompile(`[A-Z0-9]{8,}|[0-9]{10,}`)

var (
	spaceRe        = regexp.MustCompile(`\s+`)
	leadingJunkRe  = regexp.MustCompile(`^\W+`)
	trailingJunkRe = regexp.MustCompile(`\W+$`)
)

// MatchLeadingDate returns the date substring at the start of the line,
// if any. Patterns are tried in fixed order; first match wins.
func MatchLeadingDate(line string) (string, bool) {
	for _, re := range leadingDatePatterns {
		if m := re.FindStringSubmatch(line); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// FindDates returns every date-shaped substring in the line, in order.
func FindDates(line string) []string {
	return looseDateRe.FindAllString(line, -1)
}

// FindAmounts returns every amount-shaped token in the text as decimals,
// in the order they occur.
func FindAmounts(text string) []decimal.Decimal {
	raw := amountRe.FindAllString(text, -1)
	amounts := make([]decimal.Decimal, 0, len(raw))
	for _, s := range raw {
		d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", ""))
		if err != nil {
			continue
		}
		amounts = append(amounts, d)
	}
	return amounts
}

// FindReference returns the first reference-number-shaped token in the
// text, or the empty string.
func FindReference(text string) string {
	return refRe.FindString(text)
}

// CleanNarration strips the matched date and all amount tokens from a
// line, collapses internal whitespace, and trims any leading or trailing
// non-word characters. The caller substitutes the placeholder when the
// result is empty.
func CleanNarration(line, date string) string {
	narration := strings.Replace(line, date, "", 1)
	narration = amountRe.ReplaceAllString(narration, "")
	narration = strings.TrimSpace(narration)
	narration = spaceRe.ReplaceAllString(narration, " ")
	narration = leadingJunkRe.ReplaceAllString(narration, "")
	narration = trailingJunkRe.ReplaceAllString(narration, "")
	return narration
}
