package dawg

// Compress projects the minimal automaton into its flat-array form. The
// builder is left semantically untouched; only the per-node scratch fields
// are used during layout and reset afterwards.
//
// Each record is 2 + ceil(len(alphabet)/32) words: word 0 packs the
// transition label and the target's accept flag, word 1 is the index of the
// target's own transition block, and the remaining words are a bitmap over
// the alphabet marking the target's outgoing labels. Records of one block
// are contiguous and in ascending label order. The final record describes
// the source node itself and doubles as the array's sentinel.
func (d *Set) Compress() *CompactSet {
	letters := d.alphabet()
	c := &CompactSet{
		letters:      letters,
		withIncoming: d.withIn,
	}
	c.initDerived()
	c.data = make([]uint32, (d.transitionCount+1)*c.width)

	d.layoutBlock(c, d.source, 0)
	c.writeRecord(d.transitionCount, 0, d.source)

	// Clear the scratch fields for the next compression.
	seen := make(map[int]struct{})
	var reset func(*node)
	reset = func(n *node) {
		if _, ok := seen[n.id]; ok {
			return
		}
		seen[n.id] = struct{}{}
		n.scratch = -1
		for _, e := range n.edges {
			reset(e.target)
		}
	}
	reset(d.source)

	c.size = d.size
	c.finish()
	return c
}

// layoutBlock reserves n's transition block at next, writes a record per
// child and recurses into children whose block has not been laid out yet.
// Traversal is in ascending label order, so the layout is a function of the
// graph's structure alone.
func (d *Set) layoutBlock(c *CompactSet, n *node, next int) int {
	n.scratch = next
	next += len(n.edges)
	rec := n.scratch
	for _, e := range n.edges {
		c.writeRecord(rec, e.label, e.target)
		if e.target.scratch == -1 {
			next = d.layoutBlock(c, e.target, next)
		}
		c.data[rec*c.width+1] = uint32(e.target.scratch)
		rec++
	}
	return next
}

// writeRecord fills record rec's label word and bitmap for target. The block
// begin word is written by the caller once the target's block is placed.
func (c *CompactSet) writeRecord(rec int, label letter, target *node) {
	base := rec * c.width
	c.data[base] = uint32(label)
	if target.accept {
		c.data[base] |= acceptBit
	}
	for _, e := range target.edges {
		pos := c.letterPos[e.label]
		c.data[base+2+pos/32] |= 1 << (pos % 32)
	}
}
