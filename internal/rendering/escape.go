// Package rendering renders classified feedback records into CSV reports.
package rendering

import "strings"

// SanitizeFeedbackText makes free text safe to embed as a single CSV cell:
// line breaks become spaces, double quotes are doubled, surrounding
// whitespace is trimmed and the result is wrapped in double quotes.
func SanitizeFeedbackText(text string) string {
	var result strings.Builder
	result.Grow(len(text) + 2)

	for _, r := range text {
		switch r {
		case '\n', '\r':
			result.WriteByte(' ')
		case '"':
			result.WriteString(`""`)
		default:
			result.WriteRune(r)
		}
	}

	return `"` + strings.TrimSpace(result.String()) + `"`
}
