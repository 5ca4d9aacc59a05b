package ingest

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const layoutDayMonthYear = "02-01-2006"

// Accepted layouts, tried in order; first match wins. English month
// abbreviations only.
var dateLayouts = []string{
	"2006-01-02",
	layoutDayMonthYear,
	"02-Jan-2006",
	// Two-digit years follow Go's pivot: 69-99 resolve to 19xx. Roster
	// joining dates are always in the past, so 19xx is the useful reading.
	"02-Jan-06",
	"02/01/2006",
}

// DateFormatError reports a string that matched none of the accepted date
// layouts. Input is the original, uncleaned value for diagnostics.
type DateFormatError struct {
	Input string
}

func (e *DateFormatError) Error() string {
	return fmt.Sprintf("Text '%s' could not be parsed as a supported date format", e.Input)
}

var (
	dateWhitespace = regexp.MustCompile(`\s+`)
	dateNoise      = regexp.MustCompile(`[^0-9A-Za-z-]`)
)

// ParseLenientDate parses a normalized, non-empty string into a local
// calendar date. Layouts are tried against the value as given, then against
// a cleaned variant with punctuation rewritten to dashes. The two-pass
// approach keeps already-valid ISO dates untouched.
func ParseLenientDate(value string) (time.Time, error) {
	if parsed, ok := parseWithLayouts(value); ok {
		return parsed, nil
	}

	cleaned := strings.ReplaceAll(value, ".", "-")
	cleaned = dateWhitespace.ReplaceAllString(cleaned, "-")
	cleaned = dateNoise.ReplaceAllString(cleaned, "-")
	if parsed, ok := parseWithLayouts(cleaned); ok {
		return parsed, nil
	}

	return time.Time{}, &DateFormatError{Input: value}
}

func parseWithLayouts(value string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if parsed, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}
