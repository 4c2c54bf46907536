package dawg

import "iter"

// Bound is one end of a range filter.
type Bound struct {
	Value     string
	Inclusive bool
}

// Query combines every supported enumeration filter. The produced strings are
// exactly the stored strings that begin with Prefix, contain Substring, end
// with Suffix and fall between From and To, in lexicographic order
// (reversed when Descending). The one exception is a query with a Suffix and
// no Prefix over a Set that maintains the incoming index: it runs backward
// from the accept nodes and its order is not lexicographic. Empty filter
// strings admit everything; nil bounds are open.
type Query struct {
	Prefix     string
	Substring  string
	Suffix     string
	From, To   *Bound
	Descending bool
}

// query is the engine-side form of Query.
type query struct {
	prefix, sub, suffix []letter
	from, to            []letter
	hasFrom, hasTo      bool
	inclFrom, inclTo    bool
	desc                bool
}

func compileQuery(q Query) query {
	c := query{
		prefix: encode(q.Prefix),
		sub:    encode(q.Substring),
		suffix: encode(q.Suffix),
		desc:   q.Descending,
	}
	if q.From != nil {
		c.from = encode(q.From.Value)
		c.hasFrom = true
		c.inclFrom = q.From.Inclusive
	}
	if q.To != nil {
		c.to = encode(q.To.Value)
		c.hasTo = true
		c.inclTo = q.To.Inclusive
	}
	return c
}

// stringIterator is the lookahead machine behind every enumeration.
type stringIterator interface {
	next() (string, bool)
}

// enumerate runs a query over an automaton as a lazy sequence.
func enumerate(a automaton, q query) iter.Seq[string] {
	return func(yield func(string) bool) {
		it := newStringIterator(a, q)
		for {
			s, ok := it.next()
			if !ok || !yield(s) {
				return
			}
		}
	}
}

// newStringIterator picks the execution mode: a backward walk over the
// incoming index when only a suffix constrains the traversal and the index is
// available, otherwise the forward prefix-mode traversal.
func newStringIterator(a automaton, q query) stringIterator {
	if len(q.suffix) > 0 && len(q.prefix) == 0 && a.canSearchBackward() {
		return newSuffixIterator(a, q)
	}
	return newPrefixIterator(a, q)
}

func firstOf(a automaton, q query) (string, bool) {
	return newStringIterator(a, q).next()
}

// Iterator steps through an enumeration explicitly, for callers that want
// pull-style traversal instead of a range loop. It holds only the traversal
// stack and a buffer of the automaton's maximum word length.
type Iterator struct {
	impl stringIterator
}

// Next returns the next string, or false once the sequence is exhausted.
// Exhaustion is terminal.
func (it *Iterator) Next() (string, bool) {
	return it.impl.next()
}

// Iterate starts an explicit iteration over the strings admitted by q.
func (d *Set) Iterate(q Query) *Iterator {
	return &Iterator{impl: newStringIterator(d, compileQuery(q))}
}

// Iterate starts an explicit iteration over the strings admitted by q.
func (c *CompactSet) Iterate(q Query) *Iterator {
	return &Iterator{impl: newStringIterator(c, compileQuery(q))}
}

// --- prefix mode ----------------------------------------------------------

const (
	flagCheckFrom uint8 = 1 << iota
	flagCheckTo
	flagCheckSub
)

func encodeFlags(checkFrom, checkTo, checkSub bool) uint8 {
	var f uint8
	if checkFrom {
		f |= flagCheckFrom
	}
	if checkTo {
		f |= flagCheckTo
	}
	if checkSub {
		f |= flagCheckSub
	}
	return f
}

// pframe is one step of the forward traversal. A nil node is an emit marker:
// in descending order an accept node's own string is produced only after all
// longer strings below it, so the string is parked on the stack as a
// childless pseudo-node.
type pframe struct {
	node  automatonNode
	level int
	char  letter
	flags uint8
}

type prefixIterator struct {
	a      automaton
	desc   bool
	prefix []letter

	from, to         []letter
	hasFrom, hasTo   bool
	inclFrom, inclTo bool
	sub              []letter // nil once satisfied for every continuation
	suffix           []letter // nil when absent; checked at acceptance

	buf   []letter
	stack []pframe
}

func newPrefixIterator(a automaton, q query) *prefixIterator {
	it := &prefixIterator{a: a, desc: q.desc, prefix: q.prefix}

	from, hasFrom, inclFrom := q.from, q.hasFrom, q.inclFrom
	to, hasTo, inclTo := q.to, q.hasTo, q.inclTo
	sub := q.sub

	origin := walkFrom(a, a.sourceNode(), q.prefix)

	// An inverted or empty range produces nothing.
	if origin != nil && hasFrom && hasTo {
		cmp := compareLetters(from, to)
		if cmp > 0 || (cmp == 0 && (!inclFrom || !inclTo)) {
			origin = nil
		}
	}
	// Normalize the bounds against the prefix: a bound that the whole
	// subtree trivially satisfies is dropped; a bound the subtree cannot
	// satisfy empties the result.
	if origin != nil && hasFrom {
		cmp := compareLetters(from, q.prefix)
		if cmp < 0 || (cmp == 0 && inclFrom) {
			hasFrom = false
		} else if cmp > 0 && !hasPrefixLetters(from, q.prefix) {
			origin = nil
		}
	}
	if origin != nil && hasTo {
		cmp := compareLetters(to, q.prefix)
		if cmp < 0 || (cmp == 0 && !inclTo) {
			origin = nil
		} else if cmp > 0 && !hasPrefixLetters(to, q.prefix) {
			hasTo = false
		}
	}
	// A substring already present in the fixed prefix or in the required
	// suffix holds for every produced string.
	if origin != nil && len(sub) > 0 {
		if containsLetters(q.prefix, sub) || (len(q.suffix) > 0 && containsLetters(q.suffix, sub)) {
			sub = nil
		}
	}

	if origin != nil {
		it.buf = make([]letter, a.maxWordLength())
		copy(it.buf, q.prefix)
		it.stack = append(it.stack, pframe{node: origin, level: len(q.prefix) - 1, flags: encodeFlags(true, true, true)})
		if hasFrom && (!inclFrom || len(from) > 0) {
			it.from, it.hasFrom, it.inclFrom = from, true, inclFrom
		}
		if hasTo {
			it.to, it.hasTo, it.inclTo = to, true, inclTo
		}
		if len(sub) > 0 {
			it.sub = sub
		}
		if len(q.suffix) > 0 {
			it.suffix = q.suffix
		}
	}
	return it
}

func (it *prefixIterator) next() (string, bool) {
	for {
		if len(it.stack) == 0 {
			return "", false
		}
		f := it.stack[len(it.stack)-1]
		it.stack = it.stack[:len(it.stack)-1]
		level := f.level
		if level >= len(it.prefix) {
			it.buf[level] = f.char
		}
		checkFrom := f.flags&flagCheckFrom != 0
		checkTo := f.flags&flagCheckTo != 0
		checkSub := f.flags&flagCheckSub != 0
		skipCurrent := false
		skipChildren := false

		if it.hasFrom && checkFrom {
			if level >= len(it.prefix) {
				var cmp int
				fromEqualsCurrent := false
				if len(it.from) > level {
					cmp = int(it.from[level]) - int(it.buf[level])
					// Reaching the last letter of the bound means every
					// earlier letter matched; whether the bound itself is
					// admitted depends on inclusivity.
					if cmp == 0 && level+1 == len(it.from) {
						cmp = -1
						fromEqualsCurrent = true
						if !it.inclFrom {
							skipCurrent = true
						}
					}
				} else {
					cmp = -1
				}
				switch {
				case cmp < 0:
					if it.desc {
						if !fromEqualsCurrent {
							checkFrom = false
						}
					} else {
						// Ascending past the bound: everything that follows
						// matches.
						it.hasFrom = false
					}
				case cmp > 0:
					// Descending below the bound: nothing left can match.
					if it.desc {
						it.stack = it.stack[:0]
					}
					continue
				default:
					// The bound extends the current string, which is
					// therefore below it; children may still match.
					skipCurrent = true
				}
			} else {
				// Current string is the prefix itself.
				skipCurrent = true
				if len(it.from) == len(it.prefix) {
					it.hasFrom = false
				}
			}
		}

		var children []arc
		if f.node != nil {
			children = it.a.outgoing(f.node)
		}

		if it.hasTo && checkTo {
			if level >= len(it.prefix) {
				var cmp int
				toEqualsCurrent := false
				if len(it.to) > level {
					cmp = int(it.to[level]) - int(it.buf[level])
					if cmp == 0 && level+1 == len(it.to) {
						if it.inclTo {
							cmp = 1
						} else {
							cmp = -1
						}
						toEqualsCurrent = true
					}
				} else {
					cmp = -1
				}
				switch {
				case cmp > 0:
					if it.desc {
						if !toEqualsCurrent || len(children) == 0 {
							it.hasTo = false
						}
					} else if !toEqualsCurrent {
						checkTo = false
					}
				case cmp < 0:
					// Ascending past the bound: nothing left can match.
					if !it.desc {
						it.stack = it.stack[:0]
					}
					continue
				}
			} else if len(it.to) == len(it.prefix) {
				// to equals the prefix inclusively; only the prefix itself
				// can be produced.
				skipChildren = true
			}
		}

		if it.sub != nil && checkSub {
			ends := level >= len(it.sub)-1
			if ends {
				for i := range it.sub {
					if it.sub[i] != it.buf[level-len(it.sub)+1+i] {
						ends = false
						break
					}
				}
			}
			if ends {
				// Every continuation keeps the match; stop re-checking.
				checkSub = false
			} else {
				skipCurrent = true
			}
		}

		emit := false
		isAccept := f.node == nil || f.node.accepting()
		if isAccept && !skipCurrent {
			if !it.desc || len(children) == 0 {
				emit = true
			} else {
				var ch letter
				if level >= len(it.prefix) {
					ch = it.buf[level]
				}
				it.stack = append(it.stack, pframe{node: nil, level: level, char: ch, flags: encodeFlags(checkFrom, checkTo, checkSub)})
			}
		}
		if emit && it.suffix != nil {
			emit = level >= len(it.suffix)-1
			if emit {
				for i := range it.suffix {
					if it.suffix[i] != it.buf[level-len(it.suffix)+1+i] {
						emit = false
						break
					}
				}
			}
		}

		level++
		if !skipChildren {
			fl := encodeFlags(checkFrom, checkTo, checkSub)
			// For ascending output children go on the stack in reverse
			// label order, so the smallest label is popped first.
			if it.desc {
				for _, c := range children {
					it.stack = append(it.stack, pframe{node: c.target, level: level, char: c.label, flags: fl})
				}
			} else {
				for i := len(children) - 1; i >= 0; i-- {
					it.stack = append(it.stack, pframe{node: children[i].target, level: level, char: children[i].label, flags: fl})
				}
			}
		}
		if emit {
			return decode(it.buf[:level]), true
		}
	}
}

// --- suffix mode ----------------------------------------------------------

// sframe is one step of the backward traversal; level counts the letters of
// the word built so far, growing right to left in the buffer.
type sframe struct {
	node     automatonNode
	level    int
	char     letter
	checkSub bool
}

type suffixIterator struct {
	a      automaton
	desc   bool
	suffix []letter

	sub              []letter
	from, to         []letter
	hasFrom, hasTo   bool
	inclFrom, inclTo bool

	buf   []letter
	stack []sframe
}

func newSuffixIterator(a automaton, q query) *suffixIterator {
	it := &suffixIterator{a: a, desc: q.desc, suffix: q.suffix}

	if q.hasFrom && q.hasTo {
		cmp := compareLetters(q.from, q.to)
		if cmp > 0 || (cmp == 0 && (!q.inclFrom || !q.inclTo)) {
			return it
		}
	}
	origins := a.suffixOrigins(q.suffix)
	if len(origins) == 0 {
		return it
	}
	it.buf = make([]letter, a.maxWordLength())
	copy(it.buf[len(it.buf)-len(q.suffix):], q.suffix)
	for _, n := range origins {
		it.stack = append(it.stack, sframe{node: n, level: len(q.suffix), checkSub: true})
	}
	if len(q.sub) > 0 && !containsLetters(q.suffix, q.sub) {
		it.sub = q.sub
	}
	if q.hasFrom && (!q.inclFrom || len(q.from) > 0) {
		it.from, it.hasFrom, it.inclFrom = q.from, true, q.inclFrom
	}
	if q.hasTo {
		it.to, it.hasTo, it.inclTo = q.to, true, q.inclTo
	}
	return it
}

func (it *suffixIterator) next() (string, bool) {
	for {
		if len(it.stack) == 0 {
			return "", false
		}
		f := it.stack[len(it.stack)-1]
		it.stack = it.stack[:len(it.stack)-1]
		pos := len(it.buf) - f.level
		if f.level > len(it.suffix) {
			it.buf[pos] = f.char
		}
		checkSub := f.checkSub
		skipCurrent := false
		if checkSub && it.sub != nil {
			// The word grows leftward, so every alignment of the substring
			// is eventually its left edge; once matched there it stays
			// contained.
			skipCurrent = f.level < len(it.sub)
			if !skipCurrent {
				for i := range it.sub {
					if it.sub[i] != it.buf[pos+i] {
						skipCurrent = true
						break
					}
				}
				checkSub = skipCurrent
			}
		}

		preds := it.a.incoming(f.node)
		if it.desc {
			for i := len(preds) - 1; i >= 0; i-- {
				for _, p := range preds[i].nodes {
					it.stack = append(it.stack, sframe{node: p, level: f.level + 1, char: preds[i].label, checkSub: checkSub})
				}
			}
		} else {
			for _, pa := range preds {
				for _, p := range pa.nodes {
					it.stack = append(it.stack, sframe{node: p, level: f.level + 1, char: pa.label, checkSub: checkSub})
				}
			}
		}

		// Only the source has no incoming transitions: the word is complete.
		if !skipCurrent && len(preds) == 0 {
			word := it.buf[pos : pos+f.level]
			if it.hasFrom && !admitsFrom(it.from, it.inclFrom, word) {
				continue
			}
			if it.hasTo && !admitsTo(it.to, it.inclTo, word) {
				continue
			}
			return decode(word), true
		}
	}
}

func admitsFrom(from []letter, incl bool, word []letter) bool {
	n := min(len(word), len(from))
	for i := 0; i < n; i++ {
		switch {
		case from[i] < word[i]:
			return true
		case from[i] > word[i]:
			return false
		}
	}
	if len(from) > len(word) || (len(from) == len(word) && !incl) {
		return false
	}
	return true
}

func admitsTo(to []letter, incl bool, word []letter) bool {
	n := min(len(word), len(to))
	for i := 0; i < n; i++ {
		switch {
		case to[i] > word[i]:
			return true
		case to[i] < word[i]:
			return false
		}
	}
	if len(to) < len(word) || (len(to) == len(word) && !incl) {
		return false
	}
	return true
}
