// Package dawgmap layers string-keyed map semantics over a dawg set. A
// key-value pair is stored as a single string, key and value joined by the
// reserved separator code unit 0x0000, which therefore must not occur in
// either. Map keeps at most one value per key; MultiMap keeps a set of
// values per key and hands out live value views.
package dawgmap

import (
	"errors"
	"iter"
	"strings"

	"github.com/corey/dawgset/dawg"
)

// Separator joins the key and value parts of a stored entry.
const Separator = '\x00'

// sepString and keyProbe are the navigation probes from the entry encoding:
// every entry of key k sorts at or after k+sepString, and every entry of a
// larger key sorts at or after k+keyProbe.
const (
	sepString = string(Separator)
	keyProbe  = string(Separator + 1)
)

// ErrSeparator rejects keys or values containing the reserved separator.
var ErrSeparator = errors.New("dawgmap: string contains the reserved separator")

// StringSet is the set contract the facades consume; both dawg.Set and
// dawg.CompactSet satisfy it.
type StringSet interface {
	Contains(s string) bool
	Size() int
	All() iter.Seq[string]
	StartingWith(prefix string) iter.Seq[string]
	EndingWith(suffix string) iter.Seq[string]
	First() (string, bool)
	Last() (string, bool)
	Lower(s string) (string, bool)
	Floor(s string) (string, bool)
	Ceiling(s string) (string, bool)
	Higher(s string) (string, bool)
}

// MutableStringSet extends StringSet with the operations a writable backing
// provides.
type MutableStringSet interface {
	StringSet
	Add(s string) bool
	Remove(s string) bool
}

func checkNoSeparator(s string) error {
	if strings.ContainsRune(s, Separator) {
		return ErrSeparator
	}
	return nil
}

// mutable returns the writable view of the backing set, or ErrNotSupported.
func mutable(s StringSet) (MutableStringSet, error) {
	if m, ok := s.(MutableStringSet); ok {
		return m, nil
	}
	return nil, dawg.ErrNotSupported
}

func join(key, value string) string {
	return key + sepString + value
}

// splitEntry separates a stored entry into key and value.
func splitEntry(entry string) (string, string, bool) {
	return strings.Cut(entry, sepString)
}

func keyPart(entry string, ok bool) (string, bool) {
	if !ok {
		return "", false
	}
	k, _, found := splitEntry(entry)
	if !found {
		return "", false
	}
	return k, true
}

// firstValue returns the value of the first entry for key, if any.
func firstValue(set StringSet, key string) (string, bool) {
	for entry := range set.StartingWith(key + sepString) {
		return entry[len(key)+1:], true
	}
	return "", false
}
