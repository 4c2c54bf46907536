package dawg

import "unicode/utf16"

// letter is a single transition label: one UTF-16 code unit.
type letter = uint16

// encode converts a string to the code unit sequence the automaton stores.
func encode(s string) []letter {
	return utf16.Encode([]rune(s))
}

// decode converts a stored code unit sequence back to a string.
func decode(w []letter) string {
	return string(utf16.Decode(w))
}

// compareLetters orders two code unit sequences lexicographically.
func compareLetters(a, b []letter) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// hasPrefixLetters reports whether w begins with prefix.
func hasPrefixLetters(w, prefix []letter) bool {
	if len(w) < len(prefix) {
		return false
	}
	for i := range prefix {
		if w[i] != prefix[i] {
			return false
		}
	}
	return true
}

// containsLetters reports whether sub occurs contiguously in w.
// The empty sequence occurs in everything.
func containsLetters(w, sub []letter) bool {
	if len(sub) == 0 {
		return true
	}
	for i := 0; i+len(sub) <= len(w); i++ {
		match := true
		for j := range sub {
			if w[i+j] != sub[j] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
