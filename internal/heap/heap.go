// Package heap implements an array-based binary min-heap over opaque
// comparable handles, ported from the demoz ds/minheap primitive. The
// caller supplies a total-ordering comparator; ties keep the older element
// nearer the root since sift operations only swap on a strict ordering.
package heap

import "demozcrypt/demozerr"

// Less reports whether a sorts before b. Equal elements must return false
// so ties keep the existing order.
type Less func(a, b any) bool

// Heap is a fixed-capacity binary min-heap of opaque handles.
type Heap struct {
	array []any
	size  int
	less  Less
}

// New creates a heap with the given fixed capacity and comparator.
func New(capacity int, less Less) *Heap {
	return &Heap{array: make([]any, capacity), less: less}
}

// Len returns the number of elements currently stored.
func (h *Heap) Len() int { return h.size }

func parent(n int) int { return (n - 1) / 2 }
func left(n int) int   { return 2*n + 1 }
func right(n int) int  { return 2*n + 2 }

func (h *Heap) swap(a, b int) { h.array[a], h.array[b] = h.array[b], h.array[a] }

func (h *Heap) siftUp(n int) {
	for n > 0 {
		k := parent(n)
		if !h.less(h.array[n], h.array[k]) {
			break
		}
		h.swap(k, n)
		n = k
	}
}

func (h *Heap) siftDown(n int) {
	for {
		m := n
		l, r := left(n), right(n)
		if l < h.size && h.less(h.array[l], h.array[m]) {
			m = l
		}
		if r < h.size && h.less(h.array[r], h.array[m]) {
			m = r
		}
		if m == n {
			break
		}
		h.swap(n, m)
		n = m
	}
}

// Insert adds a new element and restores heap order.
func (h *Heap) Insert(v any) error {
	if h.size >= len(h.array) {
		return demozerr.New(demozerr.Capacity, "heap.Insert", "heap is full")
	}
	h.array[h.size] = v
	h.siftUp(h.size)
	h.size++
	return nil
}

// Build heapifies the first n elements already placed into the backing
// array directly (bulk load), where n = h.Len().
func (h *Heap) Build() {
	if h.size < 1 {
		return
	}
	for n := parent(h.size - 1); n >= 0; n-- {
		h.siftDown(n)
	}
}

// Backing exposes the heap's backing array for bulk loads ahead of Build;
// callers must set h via SetLen after populating it.
func (h *Heap) Backing() []any { return h.array }

// SetLen declares how many of Backing()'s leading slots are populated,
// ahead of calling Build.
func (h *Heap) SetLen(n int) { h.size = n }

// Search returns the index of v by identity, or -1.
func (h *Heap) Search(v any) int {
	for i := 0; i < h.size; i++ {
		if h.array[i] == v {
			return i
		}
	}
	return -1
}

// SearchFunc returns the index of the first element matching pred, or -1.
func (h *Heap) SearchFunc(pred func(any) bool) int {
	for i := 0; i < h.size; i++ {
		if pred(h.array[i]) {
			return i
		}
	}
	return -1
}

// Erase removes the element at index i, restoring heap order.
func (h *Heap) Erase(i int) error {
	if h.size < 1 || i > h.size-1 {
		return demozerr.New(demozerr.ParamRange, "heap.Erase", "index out of range")
	}

	h.array[i] = h.array[h.size-1]
	h.size--

	k := parent(i)
	if i > 0 && h.less(h.array[i], h.array[k]) {
		h.siftUp(i)
	} else if h.size > 0 {
		h.siftDown(i)
	}

	return nil
}

// Extract removes and returns the minimum element, or nil if empty.
func (h *Heap) Extract() any {
	if h.size < 1 {
		return nil
	}

	v := h.array[0]
	h.array[0] = h.array[h.size-1]
	h.size--

	if h.size > 0 {
		h.siftDown(0)
	}

	return v
}
