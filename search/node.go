package search

import "fmt"

// Node is one point in a search tree: a state, the node it was reached
// from, the action that produced it and the accumulated path cost.
//
// Nodes are treated as immutable once built. Several children, the
// frontier and the reached table may all point at the same ancestor, so
// fields must not be modified after construction.
type Node[S comparable, A any] struct {
	// State is the problem state this node represents.
	State S

	// Parent is nil for the root.
	Parent *Node[S, A]

	// Action produced State from Parent.State; zero for the root.
	Action A

	// PathCost is the sum of action costs from the root.
	PathCost float64

	depth int
}

// NewRootNode returns the root of a search tree.
func NewRootNode[S comparable, A any](state S) *Node[S, A] {
	return &Node[S, A]{State: state}
}

// NewChildNode returns the node reached from parent by action.
func NewChildNode[S comparable, A any](state S, parent *Node[S, A], action A, pathCost float64) *Node[S, A] {
	n := &Node[S, A]{
		State:    state,
		Parent:   parent,
		Action:   action,
		PathCost: pathCost,
	}
	if parent != nil {
		n.depth = parent.Depth() + 1
	}
	return n
}

// IsRoot reports whether n has no parent.
func (n *Node[S, A]) IsRoot() bool {
	return n.Parent == nil
}

// Depth returns the number of actions between the root and n.
func (n *Node[S, A]) Depth() int {
	if n.depth > 0 || n.Parent == nil {
		return n.depth
	}
	// built as a literal rather than through NewChildNode
	d := 0
	for cur := n; cur.Parent != nil; cur = cur.Parent {
		d++
	}
	return d
}

// Less orders nodes by path cost only.
func (n *Node[S, A]) Less(other *Node[S, A]) bool {
	return n.PathCost < other.PathCost
}

func (n *Node[S, A]) String() string {
	return fmt.Sprintf("<%v>", n.State)
}
