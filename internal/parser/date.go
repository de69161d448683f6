package parser

import (
	"regexp"
	"time"

	"expenso/internal/domain"
)

var isoDateRe = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)

// ExtractDate returns the first ISO-form date substring in text, or now's
// date when none is present. Relative dates ("yesterday") are deliberately
// left to the remote fallback.
func ExtractDate(text string, now time.Time) string {
	if m := isoDateRe.FindString(text); m != "" {
		return m
	}
	return now.Format(domain.DateLayout)
}
