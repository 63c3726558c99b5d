// Package textnorm holds the text normalization shared by the classifier,
// extractor, and validator. All three must normalize identically so that
// matching is format-tolerant and character offsets never matter.
package textnorm

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Normalize collapses runs of whitespace to a single space and trims
// leading and trailing whitespace.
func Normalize(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}

// StripSeparators lowercases s and removes separator characters. Used to
// compare filename hints against document type names.
func StripSeparators(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch r {
		case '-', '_', ' ', '.':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
