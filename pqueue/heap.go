// Package pqueue provides a binary min-heap ordered by a caller supplied
// comparator. It backs the randomized Prim carver in package generation.
package pqueue

import "github.com/pkg/errors"

// ErrEmptyQueue is returned by Pop when the heap holds no elements
var ErrEmptyQueue = errors.New("pop from empty priority queue")

// LessFunc reports whether a orders strictly before b
type LessFunc[T any] func(a, b T) bool

// Heap is a binary min-heap. Equal elements come out in no particular order.
type Heap[T any] struct {
	items []T
	less  LessFunc[T]
}

// New creates a heap holding the given items
func New[T any](items []T, less LessFunc[T]) *Heap[T] {
	h := &Heap[T]{
		items: make([]T, 0, len(items)),
		less:  less,
	}
	for _, x := range items {
		h.Push(x)
	}
	return h
}

// Len returns the number of queued elements
func (h *Heap[T]) Len() int {
	return len(h.items)
}

// Push adds an element and sifts it up into place
func (h *Heap[T]) Push(x T) {
	h.items = append(h.items, x)
	h.up(len(h.items) - 1)
}

// Peek returns the minimum element without removing it
func (h *Heap[T]) Peek() (T, error) {
	if len(h.items) == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}
	return h.items[0], nil
}

// Pop removes and returns the minimum element. The last element replaces
// the root and is sifted down.
func (h *Heap[T]) Pop() (T, error) {
	var zero T
	n := len(h.items)
	if n == 0 {
		return zero, ErrEmptyQueue
	}

	root := h.items[0]
	last := h.items[n-1]
	h.items[n-1] = zero
	h.items = h.items[:n-1]

	if len(h.items) > 0 {
		h.items[0] = last
		h.down(0)
	}
	return root, nil
}

func (h *Heap[T]) up(i int) {
	x := h.items[i]
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(x, h.items[parent]) {
			break
		}
		h.items[i] = h.items[parent]
		i = parent
	}
	h.items[i] = x
}

// down moves the element at i towards the leaves. The right child is only
// taken when it is strictly smaller than both x and the left child, so ties
// between the children go left.
func (h *Heap[T]) down(i int) {
	x := h.items[i]
	n := len(h.items)
	for {
		left := 2*i + 1
		right := left + 1
		if right < n && h.less(h.items[right], x) && h.less(h.items[right], h.items[left]) {
			h.items[i] = h.items[right]
			i = right
		} else if left < n && h.less(h.items[left], x) {
			h.items[i] = h.items[left]
			i = left
		} else {
			h.items[i] = x
			return
		}
	}
}
