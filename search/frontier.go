package search

import "container/heap"

// Frontier is the container of nodes waiting to be expanded. The three
// implementations differ only in which item Pop returns.
//
// Pop panics on an empty frontier; callers check Len first.
type Frontier[T any] interface {
	Add(item T)
	Pop() T
	Len() int
}

var (
	_ Frontier[int] = (*FIFOQueue[int])(nil)
	_ Frontier[int] = (*LIFOQueue[int])(nil)
	_ Frontier[int] = (*PriorityQueue[int])(nil)
)

// FIFOQueue pops the earliest-added item first (breadth-first order).
type FIFOQueue[T any] struct {
	items []T
	head  int
}

// NewFIFOQueue returns a FIFO queue holding items in order.
func NewFIFOQueue[T any](items ...T) *FIFOQueue[T] {
	q := &FIFOQueue[T]{}
	for _, item := range items {
		q.Add(item)
	}
	return q
}

// Add appends item to the back of the queue.
func (q *FIFOQueue[T]) Add(item T) {
	q.items = append(q.items, item)
}

// Pop removes and returns the front item.
func (q *FIFOQueue[T]) Pop() T {
	if q.Len() == 0 {
		panic("search: Pop from empty FIFOQueue")
	}
	var zero T
	item := q.items[q.head]
	q.items[q.head] = zero
	q.head++

	// reclaim the consumed prefix once it dominates the backing array
	if q.head >= 32 && q.head*2 >= len(q.items) {
		n := copy(q.items, q.items[q.head:])
		clear(q.items[n:])
		q.items = q.items[:n]
		q.head = 0
	}
	return item
}

// Len returns the number of queued items.
func (q *FIFOQueue[T]) Len() int {
	return len(q.items) - q.head
}

// LIFOQueue pops the most recently added item first (depth-first order).
type LIFOQueue[T any] struct {
	items []T
}

// NewLIFOQueue returns a stack holding items; the last one is on top.
func NewLIFOQueue[T any](items ...T) *LIFOQueue[T] {
	return &LIFOQueue[T]{items: append([]T(nil), items...)}
}

// Add pushes item.
func (q *LIFOQueue[T]) Add(item T) {
	q.items = append(q.items, item)
}

// Pop removes and returns the top item.
func (q *LIFOQueue[T]) Pop() T {
	n := len(q.items)
	if n == 0 {
		panic("search: Pop from empty LIFOQueue")
	}
	var zero T
	item := q.items[n-1]
	q.items[n-1] = zero
	q.items = q.items[:n-1]
	return item
}

// Len returns the number of stacked items.
func (q *LIFOQueue[T]) Len() int {
	return len(q.items)
}

// PriorityQueue pops the item with the minimum key first (best-first
// order). The key is computed once, when the item is added.
//
// Items with equal keys are ordered by the optional tie-break, then by
// insertion order, so pops are deterministic.
type PriorityQueue[T any] struct {
	key     func(T) float64
	entries pqEntries[T]
	seq     uint64
}

type pqEntry[T any] struct {
	key  float64
	seq  uint64
	item T
}

// pqEntries implements heap.Interface.
type pqEntries[T any] struct {
	items    []pqEntry[T]
	tieBreak func(a, b T) bool
}

func (h *pqEntries[T]) Len() int { return len(h.items) }

func (h *pqEntries[T]) Less(i, j int) bool {
	a, b := h.items[i], h.items[j]
	if a.key != b.key {
		return a.key < b.key
	}
	if h.tieBreak != nil {
		if h.tieBreak(a.item, b.item) {
			return true
		}
		if h.tieBreak(b.item, a.item) {
			return false
		}
	}
	return a.seq < b.seq
}

func (h *pqEntries[T]) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *pqEntries[T]) Push(x any) { h.items = append(h.items, x.(pqEntry[T])) }

func (h *pqEntries[T]) Pop() any {
	n := len(h.items)
	e := h.items[n-1]
	h.items[n-1] = pqEntry[T]{}
	h.items = h.items[:n-1]
	return e
}

// NewPriorityQueue returns a priority queue ordered by key, seeded with items.
func NewPriorityQueue[T any](key func(T) float64, items ...T) *PriorityQueue[T] {
	q := &PriorityQueue[T]{key: key}
	for _, item := range items {
		q.Add(item)
	}
	return q
}

// SetTieBreak installs less as the ordering between items whose keys are
// equal, ahead of insertion order.
func (q *PriorityQueue[T]) SetTieBreak(less func(a, b T) bool) {
	q.entries.tieBreak = less
	heap.Init(&q.entries)
}

// Add inserts item with priority key(item).
func (q *PriorityQueue[T]) Add(item T) {
	heap.Push(&q.entries, pqEntry[T]{key: q.key(item), seq: q.seq, item: item})
	q.seq++
}

// Pop removes and returns the item with the minimum key.
func (q *PriorityQueue[T]) Pop() T {
	if q.Len() == 0 {
		panic("search: Pop from empty PriorityQueue")
	}
	return heap.Pop(&q.entries).(pqEntry[T]).item
}

// Top returns the item Pop would return, without removing it.
func (q *PriorityQueue[T]) Top() T {
	if q.Len() == 0 {
		panic("search: Top of empty PriorityQueue")
	}
	return q.entries.items[0].item
}

// TopKey returns the key of the item Top would return.
func (q *PriorityQueue[T]) TopKey() float64 {
	if q.Len() == 0 {
		panic("search: TopKey of empty PriorityQueue")
	}
	return q.entries.items[0].key
}

// Len returns the number of queued items.
func (q *PriorityQueue[T]) Len() int {
	return q.entries.Len()
}

// newNodeQueue builds the best-first frontier: ordered by f, ties broken
// by lower path cost.
func newNodeQueue[S comparable, A any](f func(*Node[S, A]) float64, root *Node[S, A]) *PriorityQueue[*Node[S, A]] {
	q := NewPriorityQueue(f)
	q.SetTieBreak(func(a, b *Node[S, A]) bool { return a.Less(b) })
	q.Add(root)
	return q
}
