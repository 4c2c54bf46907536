// Package ahocorasick implements ports.TextScanner using multi-pattern
// string matching. It wraps the petar-dambovaliev/aho-corasick library: one
// pass over the text finds every dictionary string in O(n + m + z).
package ahocorasick

import (
	aho "github.com/petar-dambovaliev/aho-corasick"

	"github.com/corey/dawgset/internal/ports"
)

// Scanner compiles a dictionary's strings into an Aho-Corasick automaton and
// reports their occurrences in a text with byte offsets.
type Scanner struct {
	automaton aho.AhoCorasick
	words     []string
	built     bool
}

// Build compiles the automaton from the dictionary's strings. Empty strings
// are skipped; they would match at every offset.
func (s *Scanner) Build(words []string) {
	s.words = make([]string, 0, len(words))
	for _, w := range words {
		if w != "" {
			s.words = append(s.words, w)
		}
	}
	builder := aho.NewAhoCorasickBuilder(aho.Opts{
		DFA: true,
	})
	s.automaton = builder.Build(s.words)
	s.built = true
}

// Scan returns every occurrence of a dictionary string in text, in ascending
// position order, overlaps included.
func (s *Scanner) Scan(text string) []ports.TextMatch {
	if !s.built || len(s.words) == 0 {
		return nil
	}
	iter := s.automaton.IterOverlapping(text)
	var matches []ports.TextMatch
	for next := iter.Next(); next != nil; next = iter.Next() {
		m := *next
		matches = append(matches, ports.TextMatch{
			Word:  s.words[m.Pattern()],
			Start: m.Start(),
			End:   m.End(),
		})
	}
	return matches
}

// WordCount returns the number of strings compiled into the automaton.
func (s *Scanner) WordCount() int {
	return len(s.words)
}
