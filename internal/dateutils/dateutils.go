// Package dateutils provides the date parsing used for monthly bucketing.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// CommonFormats lists the layouts tried when parsing a statement date.
// Day-first layouts come first: the page-oriented date recognizers are
// day/month ordered, so ambiguous dates resolve day-first.
var CommonFormats = []string{
	"02/01/2006",
	"2/1/2006",
	"02/01/06",
	"2/1/06",
	"02-01-2006",
	"2-1-2006",
	"02-01-06",
	"2-1-06",
	"2006-01-02",
	"02.01.2006",
	"01/02/2006",
	"2-Jan-2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

var spaceRe = regexp.MustCompile(`\s+`)

// ParseDate attempts to parse a date string using the common formats.
func ParseDate(dateStr string) (time.Time, error) {
	dateStr = CleanDateString(dateStr)

	for _, format := range CommonFormats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// MonthLabel formats a date as the human-readable month key used by the
// monthly breakdown, e.g. "February 2024".
func MonthLabel(date time.Time) string {
	return date.Format("January 2006")
}

// CleanDateString trims and collapses whitespace in a date string.
func CleanDateString(dateStr string) string {
	dateStr = strings.TrimSpace(dateStr)
	return spaceRe.ReplaceAllString(dateStr, " ")
}
