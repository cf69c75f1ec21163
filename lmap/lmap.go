// Package lmap provides a generic linked map: a map that remembers
// the order in which its keys were first inserted.
package lmap

// LinkedMap is a map combined with a doubly linked list. Iteration
// follows first-insertion order; updating an existing key does not
// move it. LinkedMap is not safe for concurrent use.
type LinkedMap[K comparable, V any] struct {
	m map[K]*node[K, V]

	head, tail *node[K, V]
}

type node[K comparable, V any] struct {
	k K
	v V

	prev, next *node[K, V]
}

// New returns a pointer to a new, empty LinkedMap.
func New[K comparable, V any]() *LinkedMap[K, V] {
	return &LinkedMap[K, V]{
		m: make(map[K]*node[K, V]),
	}
}

// Copy returns a copy of the LinkedMap with the same order.
// Pointer-typed values still point to the same memory.
func (l *LinkedMap[K, V]) Copy() *LinkedMap[K, V] {
	lcopy := New[K, V]()

	for n := l.head; n != nil; n = n.next {
		lcopy.Set(n.k, n.v)
	}

	return lcopy
}

func (l *LinkedMap[K, V]) unlink(n *node[K, V]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		if l.head != n {
			panic("node has no previous node but it is not the head")
		}
		l.head = n.next
	}

	if n.next != nil {
		n.next.prev = n.prev
	} else {
		if l.tail != n {
			panic("node has no next node but it is not the tail")
		}
		l.tail = n.prev
	}

	n.prev, n.next = nil, nil
}

func (l *LinkedMap[K, V]) append(n *node[K, V]) {
	if l.tail == nil {
		l.head, l.tail = n, n
		return
	}

	n.prev = l.tail
	l.tail.next = n
	l.tail = n
}

// Get behaves like the map access `v, ok := l[k]`.
func (l *LinkedMap[K, V]) Get(k K) (v V, ok bool) {
	n, ok := l.m[k]
	if !ok {
		return
	}

	return n.v, true
}

// Set behaves like `l[k] = v`. A new key is appended to the tail
// of the list; an existing key keeps its position.
func (l *LinkedMap[K, V]) Set(k K, v V) {
	l.Update(k, func(V, bool) V { return v })
}

// Update sets the value for k to f(old, exists), where old is the
// zero value if k is not in the map. It is the read-modify-write
// form of Set and only looks the key up once.
func (l *LinkedMap[K, V]) Update(k K, f func(old V, exists bool) V) {
	n, exists := l.m[k]
	if exists {
		n.v = f(n.v, true)
		return
	}

	var zero V
	n = &node[K, V]{
		k: k,
		v: f(zero, false),
	}
	l.m[k] = n
	l.append(n)
}

// Delete behaves like `delete(l, k)`.
// If the key was not found, ok will be false.
func (l *LinkedMap[K, _]) Delete(k K) (ok bool) {
	n, ok := l.m[k]
	if !ok {
		return
	}

	l.unlink(n)
	delete(l.m, k)

	return
}

// Len behaves like `len(l)`. This is a constant-time operation.
func (l *LinkedMap[_, _]) Len() int {
	return len(l.m)
}

// Keys returns the keys in insertion order.
func (l *LinkedMap[K, _]) Keys() []K {
	keys := make([]K, 0, len(l.m))

	for n := l.head; n != nil; n = n.next {
		keys = append(keys, n.k)
	}

	return keys
}

// ForEach calls f for every key-value pair in insertion order.
// If f returns false, iteration stops early.
//
// The result of modifying the map while iterating over it is undefined.
func (l *LinkedMap[K, V]) ForEach(f func(k K, v V) bool) {
	for n := l.head; n != nil; n = n.next {
		if !f(n.k, n.v) {
			return
		}
	}
}

// Iterator returns an iterator positioned before the head
// of the LinkedMap. The usual idiom is:
//
//	i := l.Iterator()
//	for i.Next() {
//		k, v := i.Entry()
//		// ...
//	}
func (l *LinkedMap[K, V]) Iterator() Iterator[K, V] {
	return Iterator[K, V]{
		head: l.head,
	}
}

// Iterator is a map iterator object. See LinkedMap.Iterator.
type Iterator[K comparable, V any] struct {
	head, cur *node[K, V]
	done      bool
}

// Next advances the iterator and reports whether Entry may be called.
func (i *Iterator[K, V]) Next() bool {
	if i.done {
		return false
	}

	if i.cur == nil {
		i.cur = i.head
	} else {
		i.cur = i.cur.next
	}

	if i.cur == nil {
		i.done = true
		return false
	}

	return true
}

// Entry returns the current key and value of the iterator.
func (i *Iterator[K, V]) Entry() (k K, v V) {
	return i.cur.k, i.cur.v
}
