package dawgmap

import (
	"iter"

	"github.com/corey/dawgset/dawg"
)

// Map is a navigable string-to-string map with one value per key.
type Map struct {
	set StringSet
}

// NewMap creates an empty map over a fresh mutable set.
func NewMap() *Map {
	return &Map{set: dawg.New()}
}

// WrapMap layers map semantics over an existing set, which is expected to
// hold only separator-joined entries. A compact backing yields a read-only
// map.
func WrapMap(set StringSet) *Map {
	return &Map{set: set}
}

// Set returns the backing set.
func (m *Map) Set() StringSet { return m.set }

// Size returns the number of entries.
func (m *Map) Size() int { return m.set.Size() }

// IsEmpty reports whether the map has no entries.
func (m *Map) IsEmpty() bool { return m.set.Size() == 0 }

// ContainsKey reports whether key has a value.
func (m *Map) ContainsKey(key string) bool {
	_, ok := firstValue(m.set, key)
	return ok
}

// ContainsValue reports whether any key maps to value.
func (m *Map) ContainsValue(value string) bool {
	for range m.set.EndingWith(sepString + value) {
		return true
	}
	return false
}

// Get returns the value stored for key.
func (m *Map) Get(key string) (string, bool) {
	return firstValue(m.set, key)
}

// Put stores value under key, replacing and returning any previous value.
// Keys and values containing the separator are rejected.
func (m *Map) Put(key, value string) (prev string, replaced bool, err error) {
	if err := checkNoSeparator(key); err != nil {
		return "", false, err
	}
	if err := checkNoSeparator(value); err != nil {
		return "", false, err
	}
	set, err := mutable(m.set)
	if err != nil {
		return "", false, err
	}
	prev, replaced = firstValue(m.set, key)
	if replaced && prev == value {
		return prev, true, nil
	}
	set.Add(join(key, value))
	if replaced {
		set.Remove(join(key, prev))
	}
	return prev, replaced, nil
}

// Delete removes key's entry, returning the removed value.
func (m *Map) Delete(key string) (string, bool, error) {
	if err := checkNoSeparator(key); err != nil {
		return "", false, err
	}
	set, err := mutable(m.set)
	if err != nil {
		return "", false, err
	}
	value, ok := firstValue(m.set, key)
	if !ok {
		return "", false, nil
	}
	set.Remove(join(key, value))
	return value, true, nil
}

// Keys iterates the keys in ascending order.
func (m *Map) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		for entry := range m.set.All() {
			if k, _, ok := splitEntry(entry); ok && !yield(k) {
				return
			}
		}
	}
}

// Entries iterates the key-value pairs in ascending key order.
func (m *Map) Entries() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for entry := range m.set.All() {
			if k, v, ok := splitEntry(entry); ok && !yield(k, v) {
				return
			}
		}
	}
}

// FirstKey returns the smallest key.
func (m *Map) FirstKey() (string, bool) {
	return keyPart(m.set.First())
}

// LastKey returns the largest key.
func (m *Map) LastKey() (string, bool) {
	return keyPart(m.set.Last())
}

// LowerKey returns the largest key strictly less than key.
func (m *Map) LowerKey(key string) (string, bool) {
	return keyPart(m.set.Lower(key + sepString))
}

// FloorKey returns the largest key less than or equal to key.
func (m *Map) FloorKey(key string) (string, bool) {
	return keyPart(m.set.Lower(key + keyProbe))
}

// CeilingKey returns the smallest key greater than or equal to key.
func (m *Map) CeilingKey(key string) (string, bool) {
	return keyPart(m.set.Ceiling(key + sepString))
}

// HigherKey returns the smallest key strictly greater than key.
func (m *Map) HigherKey(key string) (string, bool) {
	return keyPart(m.set.Ceiling(key + keyProbe))
}
