package dawg

import (
	"iter"
	"sort"
)

// Set is the mutable representation: a minimal deterministic acyclic
// automaton that accepts exactly the strings added to it. Strings may be
// added and removed in any order; the minimality invariant is restored after
// every operation. A Set must not be shared between goroutines while it is
// being written.
type Set struct {
	source   *node
	end      *node // virtual end node; only its incoming index is used
	register map[string]*node
	letters  map[letter]struct{}

	nextID          int
	transitionCount int
	size            int
	maxLength       int // never decreases on removal
	withIn          bool
}

// New creates an empty mutable set.
func New() *Set {
	d := &Set{
		register: make(map[string]*node),
		letters:  make(map[letter]struct{}),
	}
	d.source = d.newNode(false)
	d.end = d.newNode(false)
	return d
}

// FromStrings builds a set from the given strings. Sorted input enables the
// delayed-minimization fast path but any order is valid.
func FromStrings(words ...string) *Set {
	d := New()
	for i, w := range words {
		prev := ""
		if i > 0 {
			prev = words[i-1]
		}
		d.addDelayed(encode(prev), encode(w))
	}
	if len(words) > 0 {
		d.finishDelayed(encode(words[len(words)-1]))
	}
	return d
}

// SetWithIncoming enables the incoming-transition index, which roughly
// doubles the mutable memory footprint and unlocks the backward suffix-search
// mode. It must be called before the first insertion; enabling it on a
// non-empty set panics.
func (d *Set) SetWithIncoming(enabled bool) {
	if enabled == d.withIn {
		return
	}
	if d.transitionCount > 0 || d.source.accept {
		panic("dawg: incoming index must be configured before the first insertion")
	}
	d.withIn = enabled
	if enabled {
		d.source.in = make(map[letter]map[int]*node)
		d.end.in = make(map[letter]map[int]*node)
	} else {
		d.source.in = nil
		d.end.in = nil
	}
}

// WithIncoming reports whether the incoming-transition index is maintained.
func (d *Set) WithIncoming() bool { return d.withIn }

// Size returns the number of stored strings.
func (d *Set) Size() int { return d.size }

// IsEmpty reports whether no strings are stored.
func (d *Set) IsEmpty() bool { return d.size == 0 }

// TransitionCount returns the number of edges in the graph.
func (d *Set) TransitionCount() int { return d.transitionCount }

// MaxLength returns the length, in code units, of the longest string ever
// added. It does not decrease on removal.
func (d *Set) MaxLength() int { return d.maxLength }

// NodeCount returns the number of reachable nodes, including the source.
func (d *Set) NodeCount() int {
	seen := make(map[int]struct{})
	var visit func(*node)
	visit = func(n *node) {
		if _, ok := seen[n.id]; ok {
			return
		}
		seen[n.id] = struct{}{}
		for _, e := range n.edges {
			visit(e.target)
		}
	}
	visit(d.source)
	return len(seen)
}

// Contains reports whether s is stored in the set.
func (d *Set) Contains(s string) bool {
	return d.containsWord(encode(s))
}

func (d *Set) containsWord(word []letter) bool {
	n := d.source.walk(word)
	return n != nil && n.accept
}

// Add inserts s and restores minimality. It reports whether the set changed.
func (d *Set) Add(s string) bool {
	word := encode(s)
	changed := d.addWord(word)
	if len(word) > 0 {
		d.replaceOrRegister(d.source, word)
	}
	return changed
}

// AddAll inserts every string produced by seq and reports whether the set
// changed. When the sequence is sorted, minimization of each string is
// delayed until the next one shows which part of its path can no longer be
// extended.
func (d *Set) AddAll(seq iter.Seq[string]) bool {
	changed := false
	var prev []letter
	any := false
	for s := range seq {
		word := encode(s)
		if d.addDelayed(prev, word) {
			changed = true
		}
		prev = word
		any = true
	}
	if any {
		d.finishDelayed(prev)
	}
	return changed
}

// addDelayed minimizes the part of prev's path that curr no longer extends,
// then inserts curr without minimizing it.
func (d *Set) addDelayed(prev, curr []letter) bool {
	if i := mpsIndex(prev, curr); i >= 0 {
		d.replaceOrRegister(d.source.walk(prev[:i]), prev[i:])
	}
	return d.addWord(curr)
}

// finishDelayed minimizes the path of the last inserted string.
func (d *Set) finishDelayed(last []letter) {
	if len(last) > 0 {
		d.replaceOrRegister(d.source, last)
	}
}

// mpsIndex locates the minimization processing start index: the position in
// prev where prev and curr first differ. The path before that index is still
// being extended by curr and must not be frozen yet. A result of -1 means
// prev is a prefix of curr and nothing can be minimized.
func mpsIndex(prev, curr []letter) int {
	if hasPrefixLetters(curr, prev) {
		return -1
	}
	n := min(len(prev), len(curr))
	i := 0
	for i < n && prev[i] == curr[i] {
		i++
	}
	return i
}

// Remove deletes s and restores minimality. It reports whether the set
// changed. Confluence nodes on the path are cloned first so that no other
// stored string is affected.
func (d *Set) Remove(s string) bool {
	word := encode(s)
	if !d.containsWord(word) {
		return false
	}

	// Give the string a privately owned path before touching it.
	d.splitTransitionPath(d.source, word)
	d.dropRegisterEntries(word)

	endpoint := d.source.walk(word)
	if len(word) == 0 || len(endpoint.edges) > 0 {
		d.setAccept(endpoint, false)
		if len(word) > 0 {
			d.replaceOrRegister(d.source, word)
		}
		d.size--
		return true
	}

	// Leaf endpoint: cut off the tail of the path used by no other string.
	sole := d.solePathLength(word)
	internal := len(word) - 1
	if sole == internal {
		d.detachChain(d.source, word[0])
	} else {
		cut := internal - sole
		parent := d.source.walk(word[:cut])
		d.detachChain(parent, word[cut])
		d.replaceOrRegister(d.source, word[:cut])
	}
	d.size--
	return true
}

// Clear removes all stored strings.
func (d *Set) Clear() {
	withIn := d.withIn
	*d = *New()
	if withIn {
		d.SetWithIncoming(true)
	}
}

// OptimizeLetters rebuilds the alphabet from the labels actually present in
// the graph. Removals leave unused labels behind, which widen the compact
// record; call this before Compress after a batch of removals.
func (d *Set) OptimizeLetters() {
	used := make(map[letter]struct{})
	seen := make(map[int]struct{})
	var visit func(*node)
	visit = func(n *node) {
		if _, ok := seen[n.id]; ok {
			return
		}
		seen[n.id] = struct{}{}
		for _, e := range n.edges {
			used[e.label] = struct{}{}
			visit(e.target)
		}
	}
	visit(d.source)
	d.letters = used
}

// --- node construction and edge bookkeeping -------------------------------

func (d *Set) newNode(accept bool) *node {
	n := &node{id: d.nextID, accept: accept, scratch: -1}
	d.nextID++
	if d.withIn {
		n.in = make(map[letter]map[int]*node)
	}
	return n
}

// linkChild records the child-side bookkeeping for a present edge
// parent -l-> child: the incoming count, the incoming index, the virtual end
// node, and the transition count.
func (d *Set) linkChild(parent *node, l letter, child *node) {
	child.incount++
	d.transitionCount++
	if d.withIn {
		m := child.in[l]
		if m == nil {
			m = make(map[int]*node)
			child.in[l] = m
		}
		m[parent.id] = parent
		if child.accept {
			d.endAdd(l, child)
		}
	}
}

// unlinkChild reverses linkChild for an edge being removed or retargeted.
func (d *Set) unlinkChild(parent *node, l letter, child *node) {
	child.incount--
	d.transitionCount--
	if child.incount < 0 {
		panic("dawg: incoming transition count below zero")
	}
	if d.withIn {
		if m := child.in[l]; m != nil {
			delete(m, parent.id)
			if len(m) == 0 {
				delete(child.in, l)
				if child.accept {
					d.endRemove(l, child)
				}
			}
		}
	}
}

func (d *Set) endAdd(l letter, n *node) {
	m := d.end.in[l]
	if m == nil {
		m = make(map[int]*node)
		d.end.in[l] = m
	}
	m[n.id] = n
}

func (d *Set) endRemove(l letter, n *node) {
	if m := d.end.in[l]; m != nil {
		delete(m, n.id)
		if len(m) == 0 {
			delete(d.end.in, l)
		}
	}
}

// attach creates the edge parent -l-> child, which must not exist yet.
func (d *Set) attach(parent *node, l letter, child *node) {
	d.invalidate(parent)
	parent.setTarget(l, child)
	d.linkChild(parent, l, child)
}

// reassign retargets the existing edge parent -l-> old onto repl.
func (d *Set) reassign(parent *node, l letter, old, repl *node) {
	d.invalidate(parent)
	d.unlinkChild(parent, l, old)
	parent.setTarget(l, repl)
	d.linkChild(parent, l, repl)
}

// setAccept flips a node's accept flag, keeping the end node's incoming index
// in step. It reports whether the flag changed.
func (d *Set) setAccept(n *node, accept bool) bool {
	if n.accept == accept {
		return false
	}
	d.invalidate(n)
	n.accept = accept
	if d.withIn {
		for l := range n.in {
			if accept {
				d.endAdd(l, n)
			} else {
				d.endRemove(l, n)
			}
		}
	}
	return true
}

// copyNode clones a node's accept flag and outgoing set. The copy has no
// incoming edges yet; the caller wires it to a parent.
func (d *Set) copyNode(o *node) *node {
	c := d.newNode(o.accept)
	c.edges = make([]halfEdge, len(o.edges))
	copy(c.edges, o.edges)
	for _, e := range c.edges {
		d.linkChild(c, e.label, e.target)
	}
	return c
}

// cloneOnto clones orig and retargets the edge parent -l-> orig to the clone.
func (d *Set) cloneOnto(orig, parent *node, l letter) *node {
	c := d.copyNode(orig)
	d.reassign(parent, l, orig, c)
	return c
}

// --- addition -------------------------------------------------------------

// addWord inserts word without running minimization; callers follow up with
// replaceOrRegister over the affected path.
func (d *Set) addWord(word []letter) bool {
	if len(word) > d.maxLength {
		d.maxLength = len(word)
	}
	prefix := d.longestPrefix(word)
	suffix := word[len(prefix):]

	idx, conf := d.firstConfluence(d.source, prefix)
	if conf == nil {
		d.dropRegisterEntries(prefix)
	} else {
		// Nodes past the confluence are about to be cloned; the originals
		// keep serving the other strings and stay registered.
		d.dropRegisterEntries(prefix[:idx])
		d.clonePath(conf, prefix[:idx+1], prefix[idx+1:])
	}
	return d.appendSuffix(d.source.walk(prefix), suffix)
}

// longestPrefix returns the longest leading part of word that is already a
// transition path from the source.
func (d *Set) longestPrefix(word []letter) []letter {
	cur := d.source
	for i, l := range word {
		cur = cur.child(l)
		if cur == nil {
			return word[:i]
		}
	}
	return word
}

// firstConfluence locates the first confluence node on the path spelled by
// word from origin. It returns the index of the transition entering it, or a
// nil node when the path has no confluence.
func (d *Set) firstConfluence(origin *node, word []letter) (int, *node) {
	cur := origin
	for i, l := range word {
		cur = cur.child(l)
		if cur == nil {
			return 0, nil
		}
		if cur.incount > 1 {
			return i, cur
		}
	}
	return 0, nil
}

// clonePath copies the transition path rest, starting at the confluence node
// pivot, so the string being added extends a privately owned path. toPivot is
// the path from the source to (and including) the edge entering pivot.
func (d *Set) clonePath(pivot *node, toPivot, rest []letter) {
	lastTarget := pivot.walk(rest)
	var lastClone *node
	var lastLabel letter

	for i := len(rest); i >= 0; i-- {
		var cur, clone *node
		if i > 0 {
			cur = pivot.walk(rest[:i])
			clone = d.copyNode(cur)
		} else {
			cur = pivot
			parent := d.source.walk(toPivot[:len(toPivot)-1])
			clone = d.cloneOnto(pivot, parent, toPivot[len(toPivot)-1])
		}
		if lastClone != nil {
			d.reassign(clone, lastLabel, lastTarget, lastClone)
			lastTarget = cur
		}
		lastClone = clone
		if i > 0 {
			lastLabel = rest[i-1]
		}
	}
}

// appendSuffix grows a fresh accepting chain for suffix out of origin.
func (d *Set) appendSuffix(origin *node, suffix []letter) bool {
	if len(suffix) == 0 {
		if d.setAccept(origin, true) {
			d.size++
			return true
		}
		return false
	}
	cur := origin
	for i, l := range suffix {
		child := d.newNode(i == len(suffix)-1)
		d.attach(cur, l, child)
		d.letters[l] = struct{}{}
		cur = child
	}
	d.size++
	return true
}

// --- minimization ---------------------------------------------------------

// replaceOrRegister re-minimizes the transition path spelled by word from
// origin. Children are processed first; each node is then either replaced by
// its registered equivalent or becomes the representative of its class.
func (d *Set) replaceOrRegister(origin *node, word []letter) {
	l := word[0]
	target := origin.child(l)
	if len(target.edges) > 0 && len(word) > 1 {
		d.replaceOrRegister(target, word[1:])
	}
	sig := d.signature(target)
	equiv, ok := d.register[sig]
	switch {
	case !ok:
		d.register[sig] = target
	case equiv != target:
		// Drop target: release its outgoing edges, then point origin at the
		// canonical node. Deeper levels were already minimized, so only
		// target's own edges remain to unwind.
		for _, e := range target.edges {
			d.unlinkChild(target, e.label, e.target)
		}
		d.reassign(origin, l, target, equiv)
	}
}

// dropRegisterEntries removes the registry entries of every node on the path
// spelled by word, clearing their cached signatures. The walk stops early if
// the path leaves the graph.
func (d *Set) dropRegisterEntries(word []letter) {
	cur := d.source
	for _, l := range word {
		cur = cur.child(l)
		if cur == nil {
			return
		}
		d.invalidate(cur)
	}
}

// --- removal --------------------------------------------------------------

// splitTransitionPath clones every confluence node on word's path so that the
// subsequent removal touches only nodes owned by this string.
func (d *Set) splitTransitionPath(origin *node, word []letter) {
	idx, conf := d.firstConfluence(origin, word)
	if conf == nil {
		return
	}
	parent := origin.walk(word[:idx])
	clone := d.cloneOnto(conf, parent, word[idx])
	d.splitTransitionPath(clone, word[idx+1:])
}

// solePathLength returns the length of the longest tail of word's internal
// path (excluding the endpoint) used by no other string: consecutive
// ancestors with at most one outgoing transition and no accept flag.
func (d *Set) solePathLength(word []letter) int {
	nodes := d.source.pathNodes(word)
	nodes = nodes[:len(nodes)-1] // the endpoint's outgoing edges are outside the path
	count := 0
	for i := len(nodes) - 1; i >= 0; i-- {
		if len(nodes[i].edges) <= 1 && !nodes[i].accept {
			count++
		} else {
			break
		}
	}
	return count
}

// detachChain removes the edge parent -l-> child and releases the linear
// chain hanging off it. The chain is guaranteed single-use by the caller.
func (d *Set) detachChain(parent *node, l letter) {
	child := parent.child(l)
	d.invalidate(parent)
	parent.dropEdge(l)
	d.unlinkChild(parent, l, child)
	cur := child
	for len(cur.edges) > 0 {
		e := cur.edges[0]
		d.unlinkChild(cur, e.label, e.target)
		cur = e.target
	}
}

// --- letters --------------------------------------------------------------

// alphabet returns the distinct transition labels in ascending order.
func (d *Set) alphabet() []letter {
	out := make([]letter, 0, len(d.letters))
	for l := range d.letters {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
