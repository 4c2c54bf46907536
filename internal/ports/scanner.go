package ports

// TextScanner reports which dictionary strings occur in a text, with byte
// offsets. The concrete implementation compiles the dictionary into an
// Aho-Corasick automaton, so one pass over the text finds every occurrence
// regardless of dictionary size.
type TextScanner interface {
	// Build compiles the matcher from the dictionary's strings. It must be
	// called before Scan and again whenever the dictionary changes.
	Build(words []string)

	// Scan returns every occurrence of a dictionary string in text, in
	// ascending position order.
	Scan(text string) []TextMatch
}

// TextMatch is one occurrence of a dictionary string.
type TextMatch struct {
	Word  string // the dictionary string found
	Start int    // byte offset, inclusive
	End   int    // byte offset, exclusive
}
