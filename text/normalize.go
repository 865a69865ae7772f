package text

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	// Runs of horizontal whitespace (anything but newline).
	horizontalRuns = regexp.MustCompile(`[^\S\n]+`)

	// Three or more newlines, possibly interspersed with spaces.
	newlineRuns = regexp.MustCompile(`(?:\n ?){3,}`)
)

// Normalize cleans up reconstructed text: composes combining
// characters (NFC), collapses runs of horizontal whitespace to a
// single space, collapses three or more newline groups down to exactly
// two newlines, and trims leading and trailing whitespace.
//
// Normalize is idempotent: applying it to already-normalized text is
// a no-op.
func Normalize(s string) string {
	s = norm.NFC.String(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = horizontalRuns.ReplaceAllString(s, " ")
	s = newlineRuns.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
