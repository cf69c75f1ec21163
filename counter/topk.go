package counter

import (
	"container/heap"

	"golang.org/x/exp/slices"
)

// Entry represents an element-count pair.
type Entry[E comparable] struct {
	Element E
	Count   int
}

// ranked is an entry with its first-seen position, used to break ties.
type ranked[E comparable] struct {
	Entry[E]
	seen int
}

// entries is used to implement a max-heap.
type entries[E comparable] []ranked[E]

var _ heap.Interface = (*entries[int])(nil)

func (e entries[_]) Len() int {
	return len(e)
}

func (e entries[E]) Less(i, j int) bool {
	// yes, the sign is correct
	// see container/heap PriorityQueue example
	if e[i].Count != e[j].Count {
		return e[i].Count > e[j].Count
	}
	return e[i].seen < e[j].seen
}

func (e entries[_]) Swap(i, j int) {
	e[i], e[j] = e[j], e[i]
}

func (e *entries[E]) Push(x any) {
	*e = append(*e, x.(ranked[E]))
}

func (e *entries[E]) Pop() any {
	x := (*e)[len(*e)-1]
	*e = (*e)[:len(*e)-1]
	return x
}

// entriesMin is used to implement a min-heap.
type entriesMin[E comparable] struct {
	entries[E]
}

var _ heap.Interface = (*entriesMin[int])(nil)

func (e entriesMin[_]) Less(i, j int) bool {
	a, b := e.entries[i], e.entries[j]
	if a.Count != b.Count {
		return a.Count < b.Count
	}
	return a.seen < b.seen
}

// heapk creates either a min- or max-heap from the entries of
// the table, then pops off k elements and returns them.
func heapk[E comparable](t *Table[E], k int, max bool) []Entry[E] {
	if k < 0 {
		panic("k is negative")
	}
	if t == nil || k == 0 {
		return []Entry[E]{}
	}
	if k > t.Len() {
		k = t.Len()
	}

	heapslice := make([]ranked[E], 0, t.Len())
	for i, en := range t.Entries() {
		heapslice = append(heapslice, ranked[E]{Entry: en, seen: i})
	}

	var hptr heap.Interface

	if max {
		h := entries[E](heapslice)
		hptr = &h
	} else {
		h := entriesMin[E]{entries: heapslice}
		hptr = &h
	}

	heap.Init(hptr)

	out := make([]Entry[E], k)
	for i := 0; i < k; i++ {
		out[i] = heap.Pop(hptr).(ranked[E]).Entry
	}

	return out
}

// TopK returns the k most-frequent elements from the table in
// descending order of frequency. Elements with the same count are
// returned in the order they were first seen. If k is larger than
// the number of elements, all elements are returned.
func TopK[E comparable](t *Table[E], k int) []Entry[E] {
	return heapk(t, k, true)
}

// BottomK returns the k least-frequent elements from the table in
// ascending order of frequency. Elements with the same count are
// returned in the order they were first seen. If k is larger than
// the number of elements, all elements are returned.
func BottomK[E comparable](t *Table[E], k int) []Entry[E] {
	return heapk(t, k, false)
}

// Sorted returns a copy of entries ordered by less.
// Entries that compare equal keep their relative order.
func Sorted[E comparable](entries []Entry[E], less func(a, b Entry[E]) bool) []Entry[E] {
	out := slices.Clone(entries)
	slices.SortStableFunc(out, less)
	return out
}
