package pqueue

import (
	"container/heap"
	"errors"
)

// ErrNilComparator is the panic value used when New is given a nil comparator.
var ErrNilComparator = errors.New("pqueue: comparator must not be nil")

// Queue is a min-heap over T ordered by cmp.
// The children of heap slot i live at 2i+1 and 2i+2.
type Queue[T any] struct {
	h items[T]
}

// New returns an empty queue ordered by cmp. It panics if cmp is nil.
func New[T any](cmp func(a, b T) int) *Queue[T] {
	if cmp == nil {
		panic(ErrNilComparator)
	}
	return &Queue[T]{h: items[T]{cmp: cmp}}
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int { return len(q.h.s) }

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool { return len(q.h.s) == 0 }

// Push adds v and sifts it up while it sorts strictly before its parent.
func (q *Queue[T]) Push(v T) {
	heap.Push(&q.h, v)
}

// Peek returns the root without removing it; ok is false when empty.
func (q *Queue[T]) Peek() (v T, ok bool) {
	if len(q.h.s) == 0 {
		return v, false
	}
	return q.h.s[0], true
}

// Pop removes and returns the root; ok is false when empty.
//
// The last element moves to the root and sifts down. At each level the
// right child is chosen only when it is strictly smaller than the left,
// and the swap happens only when that child is strictly smaller.
func (q *Queue[T]) Pop() (v T, ok bool) {
	if len(q.h.s) == 0 {
		return v, false
	}
	return heap.Pop(&q.h).(T), true
}

// items adapts a comparator-ordered slice to heap.Interface.
type items[T any] struct {
	s   []T
	cmp func(a, b T) int
}

func (h items[T]) Len() int           { return len(h.s) }
func (h items[T]) Less(i, j int) bool { return h.cmp(h.s[i], h.s[j]) < 0 }
func (h items[T]) Swap(i, j int)      { h.s[i], h.s[j] = h.s[j], h.s[i] }

// Push is called by heap.Push; x must be a T.
func (h *items[T]) Push(x any) { h.s = append(h.s, x.(T)) }

// Pop is called by heap.Pop and removes the last slot.
func (h *items[T]) Pop() any {
	n := len(h.s) - 1
	v := h.s[n]
	var zero T
	h.s[n] = zero // drop the reference held by the backing array
	h.s = h.s[:n]

	return v
}
