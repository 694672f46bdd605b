package search

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNode(t *testing.T) {
	root := NewRootNode[string, int]("a")
	assert.True(t, root.IsRoot())
	assert.Zero(t, root.Depth())
	assert.Equal(t, "<a>", root.String())

	b := NewChildNode("b", root, 1, 2.5)
	c := NewChildNode("c", b, 2, 4)
	assert.False(t, c.IsRoot())
	assert.Equal(t, 2, c.Depth())
	assert.True(t, b.Less(c))
	assert.False(t, c.Less(b))

	// nodes built as literals still know their depth
	lit := &Node[string, int]{State: "d", Parent: &Node[string, int]{State: "c", Parent: root}}
	assert.Equal(t, 2, lit.Depth())
}

func TestExpand(t *testing.T) {
	p := diamond().problem()
	root := NewRootNode[string, string]("S")

	var got []*Node[string, string]
	for child := range Expand[string, string](p, root) {
		got = append(got, child)
	}
	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].State)
	assert.Equal(t, "A", got[0].Action)
	assert.Equal(t, 1.0, got[0].PathCost)
	assert.Equal(t, "B", got[1].State)
	assert.Equal(t, 4.0, got[1].PathCost)
	assert.Same(t, root, got[1].Parent)
	assert.Equal(t, 1, got[1].Depth())

	assert.Empty(t, slices.Collect(Expand[string, string](p, NewRootNode[string, string]("G"))))
}

func TestExpandIsLazy(t *testing.T) {
	results := 0
	p := &Funcs[int, int]{
		Start:     0,
		GoalFn:    func(int) bool { return false },
		ActionsFn: func(int) []int { return []int{1, 2, 3, 4} },
		ResultFn: func(s, a int) int {
			results++
			return s + a
		},
	}
	for child := range Expand[int, int](p, NewRootNode[int, int](0)) {
		if child.State == 2 {
			break
		}
	}
	assert.Equal(t, 2, results)
}

func TestIsCycle(t *testing.T) {
	// a -> b -> c -> a -> d
	a := NewRootNode[string, int]("a")
	b := NewChildNode("b", a, 0, 1)
	c := NewChildNode("c", b, 0, 2)
	a2 := NewChildNode("a", c, 0, 3)
	d := NewChildNode("d", a2, 0, 4)

	assert.True(t, IsCycle(a2, 3))
	assert.True(t, IsCycle(a2, DefaultCycleDepth))
	assert.False(t, IsCycle(a2, 2), "the repeat is three ancestors up")
	assert.False(t, IsCycle(a2, 0))
	assert.False(t, IsCycle(d, DefaultCycleDepth))
	assert.False(t, IsCycle(a, DefaultCycleDepth))
	assert.False(t, IsCycle[string, int](nil, DefaultCycleDepth))
}

func TestPaths(t *testing.T) {
	root := NewRootNode[string, string]("S")
	a := NewChildNode("A", root, "go A", 1)
	b := NewChildNode("B", a, "go B", 3)

	if diff := cmp.Diff([]string{"go A", "go B"}, PathActions(b)); diff != "" {
		t.Errorf("PathActions mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"S", "A", "B"}, PathStates(b)); diff != "" {
		t.Errorf("PathStates mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, []string{}, PathActions(root))
	assert.Equal(t, []string{"S"}, PathStates(root))
	assert.Equal(t, []string{}, PathActions[string, string](nil))
	assert.Equal(t, []string{}, PathStates[string, string](nil))
}

func TestFuncsDefaults(t *testing.T) {
	p := &Funcs[int, int]{Start: 3}
	assert.Equal(t, 3, p.Initial())
	assert.Equal(t, 1.0, p.ActionCost(0, 1, 1))
	assert.Zero(t, p.H(NewRootNode[int, int](0)))

	p.CostFn = func(s, a, next int) float64 { return float64(a) * 2 }
	p.HeuristicFn = func(n *Node[int, int]) float64 { return float64(n.State) }
	assert.Equal(t, 6.0, p.ActionCost(0, 3, 3))
	assert.Equal(t, 7.0, p.H(NewRootNode[int, int](7)))
}
