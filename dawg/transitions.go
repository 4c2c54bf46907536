package dawg

import "iter"

// Transition is one labeled edge of the automaton, as exposed to renderers
// and other external walkers. Node identifiers are stable within one
// representation but carry no meaning across representations.
type Transition struct {
	FromID     int
	ToID       int
	Label      rune
	FromAccept bool
	ToAccept   bool
}

// Transitions iterates every edge reachable from the source, parents before
// children, siblings in ascending label order.
func (d *Set) Transitions() iter.Seq[Transition] {
	return func(yield func(Transition) bool) {
		seen := make(map[int]struct{})
		var visit func(*node) bool
		visit = func(n *node) bool {
			if _, ok := seen[n.id]; ok {
				return true
			}
			seen[n.id] = struct{}{}
			for _, e := range n.edges {
				t := Transition{
					FromID:     n.id,
					ToID:       e.target.id,
					Label:      rune(e.label),
					FromAccept: n.accept,
					ToAccept:   e.target.accept,
				}
				if !yield(t) {
					return false
				}
				if !visit(e.target) {
					return false
				}
			}
			return true
		}
		visit(d.source)
	}
}

// Transitions iterates every edge of the compact automaton. Node identifiers
// are block begin indexes; the childless accept node all leaves collapse
// into is numbered one past the record array.
func (c *CompactSet) Transitions() iter.Seq[Transition] {
	return func(yield func(Transition) bool) {
		leafID := len(c.data) / c.width
		nodeID := func(rec int) int {
			if c.recArity(rec) == 0 {
				return leafID
			}
			return c.recBegin(rec)
		}
		seen := make(map[int]struct{})
		var visit func(rec int) bool
		visit = func(rec int) bool {
			arity := c.recArity(rec)
			if arity == 0 {
				return true
			}
			begin := c.recBegin(rec)
			if _, ok := seen[begin]; ok {
				return true
			}
			seen[begin] = struct{}{}
			for i := 0; i < arity; i++ {
				child := begin + i
				t := Transition{
					FromID:     nodeID(rec),
					ToID:       nodeID(child),
					Label:      rune(c.recLabel(child)),
					FromAccept: c.recAccept(rec),
					ToAccept:   c.recAccept(child),
				}
				if !yield(t) {
					return false
				}
				if !visit(child) {
					return false
				}
			}
			return true
		}
		visit(c.sourceRec())
	}
}
