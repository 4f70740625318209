package app

import (
	"strings"
	"unicode/utf8"
)

const maxTracedQueryLength = 512

// formatDBQueryForTrace flattens a query onto one line, drops "--" comments
// and caps the result on a rune boundary.
func formatDBQueryForTrace(query string) string {
	lines := strings.Split(query, "\n")
	for i, line := range lines {
		if code, _, found := strings.Cut(line, "--"); found {
			lines[i] = code
		}
	}

	normalized := strings.Join(strings.Fields(strings.Join(lines, " ")), " ")
	if len(normalized) <= maxTracedQueryLength {
		return normalized
	}

	cut := maxTracedQueryLength
	for cut > 0 && !utf8.RuneStart(normalized[cut]) {
		cut--
	}
	return normalized[:cut] + "..."
}
