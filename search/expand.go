package search

import "iter"

// Expand yields the children of node, one per action applicable in its
// state, in the order the problem lists the actions.
//
// The sequence is lazy: Result and ActionCost are called only for the
// children actually consumed, so a caller that stops ranging early skips
// the rest.
func Expand[S comparable, A any](p Problem[S, A], node *Node[S, A]) iter.Seq[*Node[S, A]] {
	return func(yield func(*Node[S, A]) bool) {
		s := node.State
		for _, action := range p.Actions(s) {
			next := p.Result(s, action)
			cost := node.PathCost + p.ActionCost(s, action, next)
			if !yield(NewChildNode(next, node, action, cost)) {
				return
			}
		}
	}
}

// IsCycle reports whether node's state repeats among its k nearest
// ancestors. It only catches cycles of length k or less; tree searches use
// it instead of a reached table.
func IsCycle[S comparable, A any](node *Node[S, A], k int) bool {
	if node == nil {
		return false
	}
	for ancestor, i := node.Parent, 0; ancestor != nil && i < k; ancestor, i = ancestor.Parent, i+1 {
		if ancestor.State == node.State {
			return true
		}
	}
	return false
}
