// Package textnorm normalizes text pulled out of spreadsheet cells.
// Roster exports routinely carry non-breaking spaces, zero-width spaces,
// and BOM characters pasted in from other tools.
package textnorm

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

var invisibleSpaces = strings.NewReplacer(
	"\u00A0", " ", // non-breaking space
	"\u200B", " ", // zero-width space
	"\uFEFF", " ", // byte-order mark
)

// NormalizeSpace replaces invisible spacing characters with a plain space,
// collapses whitespace runs, and trims. The result is "" for blank input.
// Normalizing an already-normalized string returns it unchanged.
func NormalizeSpace(value string) string {
	cleaned := invisibleSpaces.Replace(value)
	cleaned = whitespaceRun.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}

// CompactKey lowercases a header label and strips everything except
// letters and digits, producing the key used for column matching.
func CompactKey(value string) string {
	lowered := strings.ToLower(NormalizeSpace(value))
	var builder strings.Builder
	builder.Grow(len(lowered))
	for _, r := range lowered {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			builder.WriteRune(r)
		}
	}
	return builder.String()
}
