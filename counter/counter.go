// Package counter counts occurrences of elements
// and returns their k most- or least-frequent elements.
// It also provides utility functions for working with counters.
package counter

import (
	"go.lepak.sg/wordfreq/lmap"
	"golang.org/x/exp/maps"
)

// Table counts occurrences of elements and remembers the order
// in which each element was first seen. The zero value is not usable;
// create one with NewTable or Of.
// Table is not safe for concurrent use.
type Table[E comparable] struct {
	lm    *lmap.LinkedMap[E, int]
	total int
}

// NewTable returns an empty Table.
func NewTable[E comparable]() *Table[E] {
	return &Table[E]{
		lm: lmap.New[E, int](),
	}
}

// Of counts every element of the slice in order.
func Of[S ~[]E, E comparable](slice S) *Table[E] {
	t := NewTable[E]()

	for _, v := range slice {
		t.Inc(v)
	}

	return t
}

// Inc adds one occurrence of e.
func (t *Table[E]) Inc(e E) {
	t.Add(e, 1)
}

// Add adds n occurrences of e. An element first seen here is
// placed after all elements already in the table, even if n is 0.
func (t *Table[E]) Add(e E, n int) {
	t.lm.Update(e, func(old int, _ bool) int {
		return old + n
	})
	t.total += n
}

// Count returns the number of occurrences of e.
func (t *Table[E]) Count(e E) int {
	n, _ := t.lm.Get(e)
	return n
}

// Len returns the number of distinct elements.
func (t *Table[E]) Len() int {
	return t.lm.Len()
}

// Total sums up all counts in the table.
func (t *Table[E]) Total() int {
	return t.total
}

// Elements returns the distinct elements in first-seen order.
func (t *Table[E]) Elements() []E {
	return t.lm.Keys()
}

// Entries returns the element-count pairs in first-seen order.
func (t *Table[E]) Entries() []Entry[E] {
	out := make([]Entry[E], 0, t.lm.Len())

	t.lm.ForEach(func(e E, n int) bool {
		out = append(out, Entry[E]{Element: e, Count: n})
		return true
	})

	return out
}

// Map returns the counts as a plain map. The map is a copy.
func (t *Table[E]) Map() map[E]int {
	m := make(map[E]int, t.lm.Len())

	t.lm.ForEach(func(e E, n int) bool {
		m[e] = n
		return true
	})

	return m
}

// Merge returns a new table holding the counts of t followed by
// the counts of other. Neither input is modified.
func (t *Table[E]) Merge(other *Table[E]) *Table[E] {
	sum := &Table[E]{
		lm:    t.lm.Copy(),
		total: t.total,
	}

	if other != nil {
		other.lm.ForEach(func(e E, n int) bool {
			sum.Add(e, n)
			return true
		})
	}

	return sum
}

// Equal reports whether both tables hold the same counts.
// First-seen order is not compared.
func (t *Table[E]) Equal(other *Table[E]) bool {
	if t == nil || other == nil {
		return t == other
	}

	return maps.Equal(t.Map(), other.Map())
}

// Counter counts occurrences of each element of the slice
// and returns a map of elements to their counts.
func Counter[S ~[]E, E comparable](slice S) map[E]int {
	c := make(map[E]int)

	for _, v := range slice {
		c[v]++
	}

	return c
}

// fold makes a copy of a, then folds b into it using the function f.
func fold[E comparable](a, b map[E]int, f func(a, b int) int) map[E]int {
	sum := make(map[E]int, len(a))
	maps.Copy(sum, a)

	for el, cnt := range b {
		sum[el] = f(sum[el], cnt)
	}

	return sum
}

// Add adds counter a and b together and returns a copy.
func Add[E comparable](a, b map[E]int) map[E]int {
	return fold(a, b, func(l, r int) int { return l + r })
}

// Subtract subtracts the counter b from a and returns a copy.
func Subtract[E comparable](a, b map[E]int) map[E]int {
	return fold(a, b, func(l, r int) int { return l - r })
}

// Total sums up all counts in the counter.
func Total[E comparable](ctr map[E]int) int {
	sum := 0

	for _, cnt := range ctr {
		sum += cnt
	}

	return sum
}
