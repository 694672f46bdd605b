package search

import "slices"

// PathActions returns the actions leading from the root to node. The root
// and a nil node both yield an empty slice.
func PathActions[S comparable, A any](node *Node[S, A]) []A {
	if node == nil {
		return []A{}
	}
	actions := make([]A, 0, node.Depth())
	for cur := node; cur.Parent != nil; cur = cur.Parent {
		actions = append(actions, cur.Action)
	}
	slices.Reverse(actions)
	return actions
}

// PathStates returns the states from the root to node, both included. A
// nil node yields an empty slice.
func PathStates[S comparable, A any](node *Node[S, A]) []S {
	if node == nil {
		return []S{}
	}
	states := make([]S, 0, node.Depth()+1)
	for cur := node; cur != nil; cur = cur.Parent {
		states = append(states, cur.State)
	}
	slices.Reverse(states)
	return states
}
