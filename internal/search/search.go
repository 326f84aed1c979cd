package search

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// New returns the Searcher for the requested matching mode.
func New(caseSensitive bool) Searcher {
	if caseSensitive {
		return SearchFunc(CaseSensitive)
	}
	return SearchFunc(CaseInsensitive)
}

// CaseSensitive returns every line of content that contains query byte for byte.
// The returned strings share memory with content and keep their original order.
func CaseSensitive(query, content string) []string {
	var matches []string
	for _, line := range lines(content) {
		if strings.Contains(line, query) {
			matches = append(matches, line)
		}
	}
	return matches
}

// CaseInsensitive returns every line of content that contains query once both
// are lowercased. Lines are returned as they appear in content.
func CaseInsensitive(query, content string) []string {
	lower := cases.Lower(language.Und)
	lowerQuery := lower.String(query)

	var matches []string
	for _, line := range lines(content) {
		if strings.Contains(lower.String(line), lowerQuery) {
			matches = append(matches, line)
		}
	}
	return matches
}

// lines splits content on "\n" and drops a trailing "\r" from each line.
// A final newline does not yield an empty last line.
func lines(content string) []string {
	var out []string
	for content != "" {
		line, rest, _ := strings.Cut(content, "\n")
		out = append(out, strings.TrimSuffix(line, "\r"))
		content = rest
	}
	return out
}
