package dawg

import (
	"strconv"
	"strings"
)

// The equivalence registry maps a structural signature to the canonical node
// of that equivalence class. Two nodes are equivalent when they agree on the
// accept flag and, for every label, on the equivalence of the transition
// target. Because nodes are registered in post-order (children first), every
// registered node's children are themselves canonical, so a signature built
// from the accept flag and the (label, child id) pairs identifies the class
// exactly.

// signature returns the node's structural signature, computing and caching it
// on first use. The cache is cleared by invalidate before any mutation.
func (d *Set) signature(n *node) string {
	if n.sig == "" {
		var b strings.Builder
		if n.accept {
			b.WriteByte('!')
		} else {
			b.WriteByte('.')
		}
		for _, e := range n.edges {
			b.WriteString(strconv.Itoa(int(e.label)))
			b.WriteByte(':')
			b.WriteString(strconv.Itoa(e.target.id))
			b.WriteByte(';')
		}
		n.sig = b.String()
	}
	return n.sig
}

// invalidate clears a node's cached signature and, when the node is the
// registered representative of its class, removes the registry entry. Every
// mutation of a node's accept flag or outgoing set goes through here first.
func (d *Set) invalidate(n *node) {
	if n.sig == "" {
		return
	}
	if d.register[n.sig] == n {
		delete(d.register, n.sig)
	}
	n.sig = ""
}

// EquivalenceClassCount returns the number of registered equivalence classes.
// In a fully minimized automaton this equals the node count minus one (the
// source node is never registered).
func (d *Set) EquivalenceClassCount() int {
	return len(d.register)
}
