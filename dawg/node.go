package dawg

import "sort"

// node is a state of the mutable automaton. Outgoing transitions are kept in
// ascending label order. incount tracks how many edges enter the node; a node
// with incount >= 2 is a confluence node and must be cloned before any
// mutation that should affect only one of the strings running through it.
//
// sig caches the node's structural signature (see register.go); it is cleared
// through Set.invalidate whenever the accept flag or the outgoing set
// changes. scratch records the node's block position during compression and
// is -1 otherwise.
type node struct {
	id      int
	accept  bool
	edges   []halfEdge
	incount int
	in      map[letter]map[int]*node // incoming index; nil unless enabled
	sig     string
	scratch int
}

// halfEdge is an outgoing transition: label plus target.
type halfEdge struct {
	label  letter
	target *node
}

// child returns the target of the transition labeled l, or nil.
func (n *node) child(l letter) *node {
	i := sort.Search(len(n.edges), func(i int) bool { return n.edges[i].label >= l })
	if i < len(n.edges) && n.edges[i].label == l {
		return n.edges[i].target
	}
	return nil
}

// walk follows the transition path spelled by word, or returns nil when the
// path leaves the graph.
func (n *node) walk(word []letter) *node {
	cur := n
	for _, l := range word {
		cur = cur.child(l)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// pathNodes returns the nodes visited after each transition of word,
// excluding the receiver itself. The slice is shorter than word when the path
// leaves the graph.
func (n *node) pathNodes(word []letter) []*node {
	nodes := make([]*node, 0, len(word))
	cur := n
	for _, l := range word {
		cur = cur.child(l)
		if cur == nil {
			break
		}
		nodes = append(nodes, cur)
	}
	return nodes
}

// setTarget inserts or replaces the transition labeled l. The caller is
// responsible for incoming-side bookkeeping and signature invalidation.
func (n *node) setTarget(l letter, target *node) {
	i := sort.Search(len(n.edges), func(i int) bool { return n.edges[i].label >= l })
	if i < len(n.edges) && n.edges[i].label == l {
		n.edges[i].target = target
		return
	}
	n.edges = append(n.edges, halfEdge{})
	copy(n.edges[i+1:], n.edges[i:])
	n.edges[i] = halfEdge{label: l, target: target}
}

// dropEdge removes the transition labeled l from the outgoing set.
func (n *node) dropEdge(l letter) {
	i := sort.Search(len(n.edges), func(i int) bool { return n.edges[i].label >= l })
	if i < len(n.edges) && n.edges[i].label == l {
		n.edges = append(n.edges[:i], n.edges[i+1:]...)
	}
}

// accepting implements automatonNode.
func (n *node) accepting() bool { return n.accept }
