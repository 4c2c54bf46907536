package dawg

import (
	"iter"
	"strings"
)

// backing is what a sub-view needs from the automaton it projects.
type backing interface {
	automaton
	Contains(s string) bool
}

// --- shared derivations ---------------------------------------------------

func allStrings(a automaton, desc bool) iter.Seq[string] {
	return enumerate(a, query{desc: desc})
}

func startingWith(a automaton, prefix string) iter.Seq[string] {
	return enumerate(a, query{prefix: encode(prefix)})
}

func endingWith(a automaton, suffix string) iter.Seq[string] {
	return enumerate(a, query{suffix: encode(suffix)})
}

func containing(a automaton, sub string) iter.Seq[string] {
	return enumerate(a, query{sub: encode(sub)})
}

func lowerThan(a automaton, s string, incl bool) (string, bool) {
	return firstOf(a, query{desc: true, to: encode(s), hasTo: true, inclTo: incl})
}

func higherThan(a automaton, s string, incl bool) (string, bool) {
	return firstOf(a, query{from: encode(s), hasFrom: true, inclFrom: incl})
}

// --- Set ------------------------------------------------------------------

// All iterates the stored strings in ascending lexicographic order.
func (d *Set) All() iter.Seq[string] { return allStrings(d, false) }

// Descending iterates the stored strings in descending lexicographic order.
func (d *Set) Descending() iter.Seq[string] { return allStrings(d, true) }

// StartingWith iterates the stored strings beginning with prefix, ascending.
func (d *Set) StartingWith(prefix string) iter.Seq[string] { return startingWith(d, prefix) }

// EndingWith iterates the stored strings ending with suffix. When the
// incoming index is enabled the traversal runs backward from the accept
// nodes; the order of results is then unspecified.
func (d *Set) EndingWith(suffix string) iter.Seq[string] { return endingWith(d, suffix) }

// Containing iterates the stored strings that contain sub, ascending.
func (d *Set) Containing(sub string) iter.Seq[string] { return containing(d, sub) }

// Find iterates the stored strings admitted by every filter of q.
func (d *Set) Find(q Query) iter.Seq[string] { return enumerate(d, compileQuery(q)) }

// First returns the smallest stored string.
func (d *Set) First() (string, bool) { return firstOf(d, query{}) }

// Last returns the largest stored string.
func (d *Set) Last() (string, bool) { return firstOf(d, query{desc: true}) }

// Lower returns the largest stored string strictly less than s.
func (d *Set) Lower(s string) (string, bool) { return lowerThan(d, s, false) }

// Floor returns the largest stored string less than or equal to s.
func (d *Set) Floor(s string) (string, bool) { return lowerThan(d, s, true) }

// Ceiling returns the smallest stored string greater than or equal to s.
func (d *Set) Ceiling(s string) (string, bool) { return higherThan(d, s, true) }

// Higher returns the smallest stored string strictly greater than s.
func (d *Set) Higher(s string) (string, bool) { return higherThan(d, s, false) }

// PollFirst removes and returns the smallest stored string.
func (d *Set) PollFirst() (string, bool) {
	s, ok := d.First()
	if ok {
		d.Remove(s)
	}
	return s, ok
}

// PollLast removes and returns the largest stored string.
func (d *Set) PollLast() (string, bool) {
	s, ok := d.Last()
	if ok {
		d.Remove(s)
	}
	return s, ok
}

// SubSet returns a live view of the strings between from and to.
func (d *Set) SubSet(from string, inclFrom bool, to string, inclTo bool) (*SubSet, error) {
	return newRangeSubSet(d, from, inclFrom, to, inclTo)
}

// HeadSet returns a live view of the strings up to to.
func (d *Set) HeadSet(to string, incl bool) *SubSet {
	return newSubSet(d, "", false, nil, false, &to, incl)
}

// TailSet returns a live view of the strings from from on.
func (d *Set) TailSet(from string, incl bool) *SubSet {
	return newSubSet(d, "", false, &from, incl, nil, false)
}

// PrefixSet returns a live view of the strings beginning with prefix.
func (d *Set) PrefixSet(prefix string) *SubSet {
	return newSubSet(d, prefix, false, nil, false, nil, false)
}

// DescendingSet returns a live reversed view of the whole set.
func (d *Set) DescendingSet() *SubSet {
	return newSubSet(d, "", true, nil, false, nil, false)
}

// --- CompactSet -----------------------------------------------------------

// All iterates the stored strings in ascending lexicographic order.
func (c *CompactSet) All() iter.Seq[string] { return allStrings(c, false) }

// Descending iterates the stored strings in descending lexicographic order.
func (c *CompactSet) Descending() iter.Seq[string] { return allStrings(c, true) }

// StartingWith iterates the stored strings beginning with prefix, ascending.
func (c *CompactSet) StartingWith(prefix string) iter.Seq[string] { return startingWith(c, prefix) }

// EndingWith iterates the stored strings ending with suffix, ascending.
func (c *CompactSet) EndingWith(suffix string) iter.Seq[string] { return endingWith(c, suffix) }

// Containing iterates the stored strings that contain sub, ascending.
func (c *CompactSet) Containing(sub string) iter.Seq[string] { return containing(c, sub) }

// Find iterates the stored strings admitted by every filter of q.
func (c *CompactSet) Find(q Query) iter.Seq[string] { return enumerate(c, compileQuery(q)) }

// First returns the smallest stored string.
func (c *CompactSet) First() (string, bool) { return firstOf(c, query{}) }

// Last returns the largest stored string.
func (c *CompactSet) Last() (string, bool) { return firstOf(c, query{desc: true}) }

// Lower returns the largest stored string strictly less than s.
func (c *CompactSet) Lower(s string) (string, bool) { return lowerThan(c, s, false) }

// Floor returns the largest stored string less than or equal to s.
func (c *CompactSet) Floor(s string) (string, bool) { return lowerThan(c, s, true) }

// Ceiling returns the smallest stored string greater than or equal to s.
func (c *CompactSet) Ceiling(s string) (string, bool) { return higherThan(c, s, true) }

// Higher returns the smallest stored string strictly greater than s.
func (c *CompactSet) Higher(s string) (string, bool) { return higherThan(c, s, false) }

// SubSet returns a live view of the strings between from and to.
func (c *CompactSet) SubSet(from string, inclFrom bool, to string, inclTo bool) (*SubSet, error) {
	return newRangeSubSet(c, from, inclFrom, to, inclTo)
}

// HeadSet returns a live view of the strings up to to.
func (c *CompactSet) HeadSet(to string, incl bool) *SubSet {
	return newSubSet(c, "", false, nil, false, &to, incl)
}

// TailSet returns a live view of the strings from from on.
func (c *CompactSet) TailSet(from string, incl bool) *SubSet {
	return newSubSet(c, "", false, &from, incl, nil, false)
}

// PrefixSet returns a live view of the strings beginning with prefix.
func (c *CompactSet) PrefixSet(prefix string) *SubSet {
	return newSubSet(c, prefix, false, nil, false, nil, false)
}

// DescendingSet returns a live reversed view of the whole set.
func (c *CompactSet) DescendingSet() *SubSet {
	return newSubSet(c, "", true, nil, false, nil, false)
}

// --- SubSet ---------------------------------------------------------------

// SubSet is a live, range-restricted view over a backing automaton. It holds
// no data of its own: every read delegates to the backing set, so mutations
// of a backing Set are visible through the view immediately.
type SubSet struct {
	set    backing
	prefix string
	desc   bool

	from, to         string
	hasFrom, hasTo   bool
	inclFrom, inclTo bool
}

func newSubSet(b backing, prefix string, desc bool, from *string, inclFrom bool, to *string, inclTo bool) *SubSet {
	v := &SubSet{set: b, prefix: prefix, desc: desc, inclFrom: inclFrom, inclTo: inclTo}
	if from != nil {
		// An inclusive empty lower bound admits everything.
		if !(inclFrom && *from == "") {
			v.from, v.hasFrom = *from, true
		}
	}
	if to != nil {
		v.to, v.hasTo = *to, true
	}
	return v
}

func newRangeSubSet(b backing, from string, inclFrom bool, to string, inclTo bool) (*SubSet, error) {
	if strings.Compare(from, to) > 0 {
		return nil, ErrOutOfRange
	}
	return newSubSet(b, "", false, &from, inclFrom, &to, inclTo), nil
}

func (v *SubSet) rangeQuery(desc bool) query {
	q := query{prefix: encode(v.prefix), desc: desc}
	if v.hasFrom {
		q.from, q.hasFrom, q.inclFrom = encode(v.from), true, v.inclFrom
	}
	if v.hasTo {
		q.to, q.hasTo, q.inclTo = encode(v.to), true, v.inclTo
	}
	return q
}

// All iterates the view in its own order.
func (v *SubSet) All() iter.Seq[string] {
	return enumerate(v.set, v.rangeQuery(v.desc))
}

// Descending iterates the view in the opposite of its own order.
func (v *SubSet) Descending() iter.Seq[string] {
	return enumerate(v.set, v.rangeQuery(!v.desc))
}

// Size counts the strings currently admitted by the view.
func (v *SubSet) Size() int {
	n := 0
	for range v.All() {
		n++
	}
	return n
}

// IsEmpty reports whether the view currently admits no strings.
func (v *SubSet) IsEmpty() bool {
	for range v.All() {
		return false
	}
	return true
}

// Contains reports whether s lies in range and is stored.
func (v *SubSet) Contains(s string) bool {
	return v.inRange(s, true) && v.set.Contains(s)
}

// Add inserts s through the view. Strings outside the view's range are
// rejected with ErrOutOfRange; views over a compact set reject all mutation.
func (v *SubSet) Add(s string) (bool, error) {
	if !v.inRange(s, true) {
		return false, ErrOutOfRange
	}
	m, ok := v.set.(*Set)
	if !ok {
		return false, ErrNotSupported
	}
	return m.Add(s), nil
}

// Remove deletes s through the view; strings outside the range are ignored.
func (v *SubSet) Remove(s string) (bool, error) {
	if !v.inRange(s, true) {
		return false, nil
	}
	m, ok := v.set.(*Set)
	if !ok {
		return false, ErrNotSupported
	}
	return m.Remove(s), nil
}

// absLower resolves floor/lower against the view's own bounds.
func (v *SubSet) absLower(s string, incl bool) (string, bool) {
	q := v.rangeQuery(true)
	cmp := -1
	if v.hasTo {
		cmp = strings.Compare(s, v.to)
	}
	if cmp <= 0 {
		q.to, q.hasTo = encode(s), true
		if cmp < 0 {
			q.inclTo = incl
		} else {
			q.inclTo = incl && v.inclTo
		}
	}
	return firstOf(v.set, q)
}

// absHigher resolves ceiling/higher against the view's own bounds.
func (v *SubSet) absHigher(s string, incl bool) (string, bool) {
	q := v.rangeQuery(false)
	cmp := 1
	if v.hasFrom {
		cmp = strings.Compare(s, v.from)
	}
	if cmp >= 0 {
		q.from, q.hasFrom = encode(s), true
		if cmp > 0 {
			q.inclFrom = incl
		} else {
			q.inclFrom = incl && v.inclFrom
		}
	}
	return firstOf(v.set, q)
}

// Lower returns the largest admitted string strictly before s in view order.
func (v *SubSet) Lower(s string) (string, bool) {
	if v.desc {
		return v.absHigher(s, false)
	}
	return v.absLower(s, false)
}

// Floor returns the largest admitted string at or before s in view order.
func (v *SubSet) Floor(s string) (string, bool) {
	if v.desc {
		return v.absHigher(s, true)
	}
	return v.absLower(s, true)
}

// Ceiling returns the smallest admitted string at or after s in view order.
func (v *SubSet) Ceiling(s string) (string, bool) {
	if v.desc {
		return v.absLower(s, true)
	}
	return v.absHigher(s, true)
}

// Higher returns the smallest admitted string strictly after s in view order.
func (v *SubSet) Higher(s string) (string, bool) {
	if v.desc {
		return v.absLower(s, false)
	}
	return v.absHigher(s, false)
}

// First returns the first admitted string in view order.
func (v *SubSet) First() (string, bool) {
	return firstOf(v.set, v.rangeQuery(v.desc))
}

// Last returns the last admitted string in view order.
func (v *SubSet) Last() (string, bool) {
	return firstOf(v.set, v.rangeQuery(!v.desc))
}

// PollFirst removes and returns the first admitted string in view order.
// Views over a compact set cannot poll and report false.
func (v *SubSet) PollFirst() (string, bool) {
	s, ok := v.First()
	if !ok {
		return "", false
	}
	if m, isMutable := v.set.(*Set); isMutable {
		m.Remove(s)
		return s, true
	}
	return "", false
}

// PollLast removes and returns the last admitted string in view order.
func (v *SubSet) PollLast() (string, bool) {
	s, ok := v.Last()
	if !ok {
		return "", false
	}
	if m, isMutable := v.set.(*Set); isMutable {
		m.Remove(s)
		return s, true
	}
	return "", false
}

// DescendingSet returns the same view with the order reversed.
func (v *SubSet) DescendingSet() *SubSet {
	w := *v
	w.desc = !v.desc
	return &w
}

// SubSetView narrows the view to [from, to] subject to the inclusivity
// flags. Bounds outside the current range are rejected with ErrOutOfRange.
func (v *SubSet) SubSetView(from string, inclFrom bool, to string, inclTo bool) (*SubSet, error) {
	if !v.inRange(from, inclFrom) || !v.inRange(to, inclTo) {
		return nil, ErrOutOfRange
	}
	var fromPtr *string
	if !(inclFrom && from == "") {
		fromPtr = &from
	}
	return newSubSet(v.set, v.prefix, v.desc, fromPtr, inclFrom, &to, inclTo), nil
}

// HeadSetView narrows the view to the strings up to to.
func (v *SubSet) HeadSetView(to string, incl bool) (*SubSet, error) {
	if !v.inRange(to, incl) {
		return nil, ErrOutOfRange
	}
	w := *v
	w.to, w.hasTo, w.inclTo = to, true, incl
	return &w, nil
}

// TailSetView narrows the view to the strings from from on.
func (v *SubSet) TailSetView(from string, incl bool) (*SubSet, error) {
	if !v.inRange(from, incl) {
		return nil, ErrOutOfRange
	}
	w := *v
	if incl && from == "" {
		return &w, nil
	}
	w.from, w.hasFrom, w.inclFrom = from, true, incl
	return &w, nil
}

// inRange reports whether s lies inside the view. With strict false the
// bounds' own inclusivity is ignored, which is how candidate bounds for
// narrower views are validated.
func (v *SubSet) inRange(s string, strict bool) bool {
	if !strings.HasPrefix(s, v.prefix) {
		return false
	}
	if v.hasFrom {
		cmp := strings.Compare(s, v.from)
		if cmp < 0 || (strict && cmp == 0 && !v.inclFrom) {
			return false
		}
	}
	if v.hasTo {
		cmp := strings.Compare(s, v.to)
		if cmp > 0 || (strict && cmp == 0 && !v.inclTo) {
			return false
		}
	}
	return true
}
