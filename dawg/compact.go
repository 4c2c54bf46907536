package dawg

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math/bits"
	"sort"
)

// acceptBit marks an accepting target in a record's label word; the low 16
// bits of that word hold the transition label.
const acceptBit = 1 << 16

// CompactSet is the read-only representation: the whole automaton in one
// integer array plus the alphabet table. It is structurally immutable after
// construction and safe to share between any number of readers. Derived
// figures (size, node count, maximum length) are computed when the set is
// built or loaded, never lazily.
type CompactSet struct {
	data         []uint32
	letters      []letter
	withIncoming bool

	// Derived, recomputed deterministically on load.
	width     int
	letterPos map[letter]int
	size      int
	nodeCount int
	maxLength int
}

// initDerived rebuilds the record width and the alphabet position index.
func (c *CompactSet) initDerived() {
	c.width = 2 + (len(c.letters)+31)/32
	c.letterPos = make(map[letter]int, len(c.letters))
	for i, l := range c.letters {
		c.letterPos[l] = i
	}
}

// finish computes node count and maximum length from the records. The size
// is counted by enumeration unless the caller (Compress) has set it already.
func (c *CompactSet) finish() {
	c.maxLength = c.computeMaxLength()
	c.nodeCount = c.computeNodeCount()
	if c.size < 0 {
		n := 0
		for range c.All() {
			n++
		}
		c.size = n
	}
}

// --- record access --------------------------------------------------------

func (c *CompactSet) sourceRec() int {
	return len(c.data)/c.width - 1
}

func (c *CompactSet) recLabel(rec int) letter {
	return letter(c.data[rec*c.width] & 0xFFFF)
}

func (c *CompactSet) recAccept(rec int) bool {
	return c.data[rec*c.width]&acceptBit != 0
}

func (c *CompactSet) recBegin(rec int) int {
	return int(c.data[rec*c.width+1])
}

// recArity counts the set bits of the record's transition bitmap, which is
// the length of the target's child block.
func (c *CompactSet) recArity(rec int) int {
	base := rec * c.width
	n := 0
	for i := 2; i < c.width; i++ {
		n += bits.OnesCount32(c.data[base+i])
	}
	return n
}

// recChild binary-searches rec's block for the transition labeled l and
// returns the child record index, or -1.
func (c *CompactSet) recChild(rec int, l letter) int {
	begin := c.recBegin(rec)
	arity := c.recArity(rec)
	i := sort.Search(arity, func(i int) bool { return c.recLabel(begin+i) >= l })
	if i < arity && c.recLabel(begin+i) == l {
		return begin + i
	}
	return -1
}

func (c *CompactSet) walkRec(rec int, word []letter) int {
	for _, l := range word {
		rec = c.recChild(rec, l)
		if rec < 0 {
			return -1
		}
	}
	return rec
}

// --- public surface -------------------------------------------------------

// Contains reports whether s is stored in the set.
func (c *CompactSet) Contains(s string) bool {
	rec := c.walkRec(c.sourceRec(), encode(s))
	return rec >= 0 && c.recAccept(rec)
}

// Size returns the number of stored strings.
func (c *CompactSet) Size() int { return c.size }

// IsEmpty reports whether no strings are stored.
func (c *CompactSet) IsEmpty() bool { return c.size == 0 }

// TransitionCount returns the number of edges in the automaton.
func (c *CompactSet) TransitionCount() int {
	return len(c.data)/c.width - 1
}

// NodeCount returns the number of nodes, including the source.
func (c *CompactSet) NodeCount() int { return c.nodeCount }

// MaxLength returns the length, in code units, of the longest stored string.
func (c *CompactSet) MaxLength() int { return c.maxLength }

// WithIncoming reports whether the originating builder maintained the
// incoming index; restored on Uncompress.
func (c *CompactSet) WithIncoming() bool { return c.withIncoming }

// Alphabet returns the transition labels of the automaton, ascending.
func (c *CompactSet) Alphabet() []rune {
	out := make([]rune, len(c.letters))
	for i, l := range c.letters {
		out[i] = rune(l)
	}
	return out
}

// Uncompress materializes the automaton back into a mutable set by replaying
// its contents in order.
func (c *CompactSet) Uncompress() *Set {
	d := New()
	d.SetWithIncoming(c.withIncoming)
	d.AddAll(c.All())
	return d
}

// Equal reports whether two compact sets carry the same automaton: same
// records, same alphabet, same incoming flag.
func (c *CompactSet) Equal(o *CompactSet) bool {
	if c == o {
		return true
	}
	if o == nil || c.withIncoming != o.withIncoming ||
		len(c.letters) != len(o.letters) || len(c.data) != len(o.data) {
		return false
	}
	for i := range c.letters {
		if c.letters[i] != o.letters[i] {
			return false
		}
	}
	for i := range c.data {
		if c.data[i] != o.data[i] {
			return false
		}
	}
	return true
}

// Hash returns a digest of the automaton consistent with Equal.
func (c *CompactSet) Hash() uint64 {
	h := fnv.New64a()
	var w [4]byte
	if c.withIncoming {
		w[0] = 1
	}
	h.Write(w[:1])
	for _, l := range c.letters {
		binary.LittleEndian.PutUint16(w[:2], l)
		h.Write(w[:2])
	}
	for _, v := range c.data {
		binary.LittleEndian.PutUint32(w[:], v)
		h.Write(w[:])
	}
	return h.Sum64()
}

// --- derived figure computation -------------------------------------------

func (c *CompactSet) computeMaxLength() int {
	depth := make(map[int]int)
	var visit func(rec int) int
	visit = func(rec int) int {
		if d, ok := depth[rec]; ok {
			return d
		}
		depth[rec] = 0 // placeholder; the graph is acyclic
		best := 0
		begin, arity := c.recBegin(rec), c.recArity(rec)
		for i := 0; i < arity; i++ {
			if d := visit(begin+i) + 1; d > best {
				best = d
			}
		}
		depth[rec] = best
		return best
	}
	return visit(c.sourceRec())
}

// computeNodeCount counts distinct transition blocks reachable from the
// source, plus one for the childless accept node they all collapse into.
// An automaton with no transitions has just the source.
func (c *CompactSet) computeNodeCount() int {
	src := c.sourceRec()
	if c.recArity(src) == 0 {
		return 1
	}
	blocks := make(map[int]struct{})
	leaf := false
	var visit func(rec int)
	visit = func(rec int) {
		arity := c.recArity(rec)
		if arity == 0 {
			leaf = true
			return
		}
		begin := c.recBegin(rec)
		if _, ok := blocks[begin]; ok {
			return
		}
		blocks[begin] = struct{}{}
		for i := 0; i < arity; i++ {
			visit(begin + i)
		}
	}
	visit(src)
	n := len(blocks)
	if leaf {
		n++
	}
	return n
}

// --- serialization --------------------------------------------------------

// MarshalBinary encodes the compact set: the incoming flag, the alphabet
// count and code units, then the total number of record words and the words
// themselves, all little-endian.
func (c *CompactSet) MarshalBinary() ([]byte, error) {
	out := make([]byte, 0, 12+2*len(c.letters)+4*len(c.data))
	var flag uint32
	if c.withIncoming {
		flag = 1
	}
	out = binary.LittleEndian.AppendUint32(out, flag)
	out = binary.LittleEndian.AppendUint32(out, uint32(len(c.letters)))
	for _, l := range c.letters {
		out = binary.LittleEndian.AppendUint16(out, l)
	}
	out = binary.LittleEndian.AppendUint32(out, uint32(len(c.data)))
	for _, v := range c.data {
		out = binary.LittleEndian.AppendUint32(out, v)
	}
	return out, nil
}

// UnmarshalBinary decodes a compact set produced by MarshalBinary and
// recomputes every derived field.
func (c *CompactSet) UnmarshalBinary(data []byte) error {
	if len(data) < 12 {
		return fmt.Errorf("compact set: truncated header (%d bytes)", len(data))
	}
	flag := binary.LittleEndian.Uint32(data)
	if flag > 1 {
		return fmt.Errorf("compact set: invalid incoming flag %d", flag)
	}
	letterCount := int(binary.LittleEndian.Uint32(data[4:]))
	off := 8
	if len(data) < off+2*letterCount+4 {
		return fmt.Errorf("compact set: truncated alphabet")
	}
	letters := make([]letter, letterCount)
	for i := range letters {
		letters[i] = binary.LittleEndian.Uint16(data[off:])
		off += 2
	}
	wordCount := int(binary.LittleEndian.Uint32(data[off:]))
	off += 4
	if len(data) != off+4*wordCount {
		return fmt.Errorf("compact set: %d record bytes, want %d", len(data)-off, 4*wordCount)
	}
	words := make([]uint32, wordCount)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(data[off:])
		off += 4
	}

	c.withIncoming = flag == 1
	c.letters = letters
	c.data = words
	c.initDerived()
	if len(c.data) == 0 || len(c.data)%c.width != 0 {
		return fmt.Errorf("compact set: %d words not a multiple of record width %d", len(c.data), c.width)
	}
	records := len(c.data) / c.width
	for rec := 0; rec < records; rec++ {
		if begin, arity := c.recBegin(rec), c.recArity(rec); begin+arity > records-1 {
			return fmt.Errorf("compact set: record %d block [%d,%d) out of range", rec, begin, begin+arity)
		}
	}
	c.size = -1
	c.finish()
	return nil
}

// LoadCompact decodes a compact set from its binary form.
func LoadCompact(data []byte) (*CompactSet, error) {
	c := &CompactSet{}
	if err := c.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return c, nil
}

// --- CompactSet as an automaton -------------------------------------------

// compactNode is a record index wrapped for the search engine.
type compactNode struct {
	set *CompactSet
	rec int
}

func (n compactNode) accepting() bool { return n.set.recAccept(n.rec) }

func (c *CompactSet) sourceNode() automatonNode {
	return compactNode{set: c, rec: c.sourceRec()}
}

func (c *CompactSet) step(an automatonNode, l letter) automatonNode {
	rec := c.recChild(an.(compactNode).rec, l)
	if rec < 0 {
		return nil
	}
	return compactNode{set: c, rec: rec}
}

func (c *CompactSet) outgoing(an automatonNode) []arc {
	rec := an.(compactNode).rec
	arity := c.recArity(rec)
	if arity == 0 {
		return nil
	}
	begin := c.recBegin(rec)
	arcs := make([]arc, arity)
	for i := 0; i < arity; i++ {
		arcs[i] = arc{label: c.recLabel(begin + i), target: compactNode{set: c, rec: begin + i}}
	}
	return arcs
}

func (c *CompactSet) incoming(automatonNode) []inArc { return nil }

func (c *CompactSet) suffixOrigins([]letter) []automatonNode { return nil }

func (c *CompactSet) canSearchBackward() bool { return false }

func (c *CompactSet) maxWordLength() int { return c.maxLength }
