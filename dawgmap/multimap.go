package dawgmap

import (
	"iter"

	"github.com/corey/dawgset/dawg"
)

// MultiMap is a navigable string map holding a set of values per key.
type MultiMap struct {
	set StringSet
}

// NewMultiMap creates an empty multi-valued map over a fresh mutable set.
func NewMultiMap() *MultiMap {
	return &MultiMap{set: dawg.New()}
}

// WrapMultiMap layers multi-map semantics over an existing set of
// separator-joined entries.
func WrapMultiMap(set StringSet) *MultiMap {
	return &MultiMap{set: set}
}

// Set returns the backing set.
func (m *MultiMap) Set() StringSet { return m.set }

// Size returns the total number of stored key-value pairs.
func (m *MultiMap) Size() int { return m.set.Size() }

// IsEmpty reports whether no pairs are stored.
func (m *MultiMap) IsEmpty() bool { return m.set.Size() == 0 }

// ContainsKey reports whether key has at least one value.
func (m *MultiMap) ContainsKey(key string) bool {
	_, ok := firstValue(m.set, key)
	return ok
}

// Contains reports whether the exact key-value pair is stored.
func (m *MultiMap) Contains(key, value string) bool {
	return m.set.Contains(join(key, value))
}

// Put stores a value under key and reports whether the pair is new.
func (m *MultiMap) Put(key, value string) (bool, error) {
	if err := checkNoSeparator(key); err != nil {
		return false, err
	}
	if err := checkNoSeparator(value); err != nil {
		return false, err
	}
	set, err := mutable(m.set)
	if err != nil {
		return false, err
	}
	return set.Add(join(key, value)), nil
}

// PutAll stores every value under key and reports whether anything changed.
func (m *MultiMap) PutAll(key string, values iter.Seq[string]) (bool, error) {
	if err := checkNoSeparator(key); err != nil {
		return false, err
	}
	set, err := mutable(m.set)
	if err != nil {
		return false, err
	}
	changed := false
	for v := range values {
		if err := checkNoSeparator(v); err != nil {
			return changed, err
		}
		if set.Add(join(key, v)) {
			changed = true
		}
	}
	return changed, nil
}

// Remove deletes one key-value pair and reports whether it was present.
func (m *MultiMap) Remove(key, value string) (bool, error) {
	set, err := mutable(m.set)
	if err != nil {
		return false, err
	}
	return set.Remove(join(key, value)), nil
}

// DeleteKey removes every value stored under key, returning the removed
// values.
func (m *MultiMap) DeleteKey(key string) ([]string, error) {
	set, err := mutable(m.set)
	if err != nil {
		return nil, err
	}
	var removed []string
	for v := range m.Get(key).All() {
		removed = append(removed, v)
	}
	for _, v := range removed {
		set.Remove(join(key, v))
	}
	return removed, nil
}

// Get returns the live set of values stored under key. The view reflects
// later mutations of the map.
func (m *MultiMap) Get(key string) *ValueSet {
	return &ValueSet{m: m, key: key}
}

// Keys iterates the distinct keys in ascending order.
func (m *MultiMap) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		prev := ""
		seen := false
		for entry := range m.set.All() {
			k, _, ok := splitEntry(entry)
			if !ok || (seen && k == prev) {
				continue
			}
			if !yield(k) {
				return
			}
			prev, seen = k, true
		}
	}
}

// Entries iterates every stored pair in ascending (key, value) order.
func (m *MultiMap) Entries() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for entry := range m.set.All() {
			if k, v, ok := splitEntry(entry); ok && !yield(k, v) {
				return
			}
		}
	}
}

// FirstKey returns the smallest key.
func (m *MultiMap) FirstKey() (string, bool) { return keyPart(m.set.First()) }

// LastKey returns the largest key.
func (m *MultiMap) LastKey() (string, bool) { return keyPart(m.set.Last()) }

// LowerKey returns the largest key strictly less than key.
func (m *MultiMap) LowerKey(key string) (string, bool) {
	return keyPart(m.set.Lower(key + sepString))
}

// FloorKey returns the largest key less than or equal to key.
func (m *MultiMap) FloorKey(key string) (string, bool) {
	return keyPart(m.set.Lower(key + keyProbe))
}

// CeilingKey returns the smallest key greater than or equal to key.
func (m *MultiMap) CeilingKey(key string) (string, bool) {
	return keyPart(m.set.Ceiling(key + sepString))
}

// HigherKey returns the smallest key strictly greater than key.
func (m *MultiMap) HigherKey(key string) (string, bool) {
	return keyPart(m.set.Ceiling(key + keyProbe))
}

// ValueSet is a live projection of the values stored under one key.
type ValueSet struct {
	m   *MultiMap
	key string
}

// All iterates the values in ascending order.
func (v *ValueSet) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		prefix := v.key + sepString
		for entry := range v.m.set.StartingWith(prefix) {
			if !yield(entry[len(prefix):]) {
				return
			}
		}
	}
}

// Size counts the values currently stored under the key.
func (v *ValueSet) Size() int {
	n := 0
	for range v.All() {
		n++
	}
	return n
}

// IsEmpty reports whether the key currently has no values.
func (v *ValueSet) IsEmpty() bool {
	for range v.All() {
		return false
	}
	return true
}

// Contains reports whether value is stored under the key.
func (v *ValueSet) Contains(value string) bool {
	return v.m.set.Contains(join(v.key, value))
}

// Add stores a value under the key through the view.
func (v *ValueSet) Add(value string) (bool, error) {
	return v.m.Put(v.key, value)
}

// Remove deletes a value from the key through the view.
func (v *ValueSet) Remove(value string) (bool, error) {
	return v.m.Remove(v.key, value)
}
