package search

// Searcher describes the behaviour required from a line matcher.
type Searcher interface {
	Search(query, content string) []string
}

// SearchFunc adapts a plain function to the Searcher interface.
type SearchFunc func(query, content string) []string

// Search calls f(query, content).
func (f SearchFunc) Search(query, content string) []string {
	return f(query, content)
}
