package dawg

import "sort"

// automatonNode is a state of either representation, as seen by the search
// engine.
type automatonNode interface {
	accepting() bool
}

// automaton is the traversal contract the search engine runs over. Both Set
// and CompactSet satisfy it.
type automaton interface {
	sourceNode() automatonNode
	// step follows the transition labeled l, or returns nil.
	step(n automatonNode, l letter) automatonNode
	// outgoing lists a node's transitions in ascending label order.
	outgoing(n automatonNode) []arc
	// incoming lists a node's reverse transitions in ascending label order.
	// Empty unless the representation maintains the incoming index.
	incoming(n automatonNode) []inArc
	// suffixOrigins returns the nodes from which the non-empty suffix leads
	// to an accept node, found by walking the incoming index backward from
	// the end node.
	suffixOrigins(suffix []letter) []automatonNode
	// canSearchBackward reports whether suffixOrigins and incoming work.
	canSearchBackward() bool
	maxWordLength() int
}

type arc struct {
	label  letter
	target automatonNode
}

type inArc struct {
	label letter
	nodes []automatonNode
}

// walkFrom follows word from n, or returns nil when the path leaves the
// graph.
func walkFrom(a automaton, n automatonNode, word []letter) automatonNode {
	for _, l := range word {
		n = a.step(n, l)
		if n == nil {
			return nil
		}
	}
	return n
}

// --- Set as an automaton --------------------------------------------------

func (d *Set) sourceNode() automatonNode { return d.source }

func (d *Set) step(an automatonNode, l letter) automatonNode {
	c := an.(*node).child(l)
	if c == nil {
		return nil
	}
	return c
}

func (d *Set) outgoing(an automatonNode) []arc {
	n := an.(*node)
	if len(n.edges) == 0 {
		return nil
	}
	arcs := make([]arc, len(n.edges))
	for i, e := range n.edges {
		arcs[i] = arc{label: e.label, target: e.target}
	}
	return arcs
}

func (d *Set) incoming(an automatonNode) []inArc {
	n := an.(*node)
	if len(n.in) == 0 {
		return nil
	}
	labels := make([]letter, 0, len(n.in))
	for l := range n.in {
		labels = append(labels, l)
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })
	arcs := make([]inArc, len(labels))
	for i, l := range labels {
		arcs[i] = inArc{label: l, nodes: sortedNodes(n.in[l])}
	}
	return arcs
}

func sortedNodes(m map[int]*node) []automatonNode {
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	out := make([]automatonNode, len(ids))
	for i, id := range ids {
		out[i] = m[id]
	}
	return out
}

func (d *Set) suffixOrigins(suffix []letter) []automatonNode {
	// The end node's incoming index holds, per label, the accept nodes
	// entered by an edge with that label. Walk the suffix backward from
	// there, expanding predecessor sets one letter at a time.
	cur := d.end.in[suffix[len(suffix)-1]]
	for i := len(suffix) - 1; i >= 0 && len(cur) > 0; i-- {
		next := make(map[int]*node)
		for _, n := range cur {
			for id, p := range n.in[suffix[i]] {
				next[id] = p
			}
		}
		cur = next
	}
	if len(cur) == 0 {
		return nil
	}
	return sortedNodes(cur)
}

func (d *Set) canSearchBackward() bool { return d.withIn }

func (d *Set) maxWordLength() int { return d.maxLength }
