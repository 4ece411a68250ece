// Package arena provides a dense, index-addressed store for IR nodes.
//
// Cross-file IR references are (FileID, Pointer[T]) pairs rather than raw
// pointers, so the graph of type references stays free of cycles and is
// safe to share across snapshots: a Pointer is just an integer, valid for
// as long as the Arena that produced it is retained.
package arena

import "fmt"

// Pointer is a dense index into an Arena[T]. The zero value does not refer
// to any element; valid pointers start at 0 once at least one element has
// been pushed, so callers that need an explicit "no pointer" sentinel
// should wrap Pointer in an option type rather than relying on the zero
// value.
type Pointer[T any] int32

// Arena is an append-only, dense store of T. Indices are assigned in
// insertion order and are stable for the lifetime of the Arena; an Arena
// is frozen (never mutated again) once published to a cache entry, so a
// Pointer handed out during lowering stays valid for every later read.
type Arena[T any] struct {
	items []T
}

// Push appends v and returns the Pointer addressing it.
func (a *Arena[T]) Push(v T) Pointer[T] {
	a.items = append(a.items, v)
	return Pointer[T](len(a.items) - 1)
}

// Get returns the element at p. It panics if p is out of range, since an
// out-of-range Pointer means an internal invariant (arena indices are
// dense and stable) has been violated.
func (a *Arena[T]) Get(p Pointer[T]) T {
	if int(p) < 0 || int(p) >= len(a.items) {
		panic(fmt.Sprintf("arena: pointer %d out of range [0, %d)", p, len(a.items)))
	}
	return a.items[p]
}

// Len returns the number of elements pushed.
func (a *Arena[T]) Len() int {
	return len(a.items)
}

// All iterates (Pointer, T) pairs in insertion order.
func (a *Arena[T]) All(yield func(Pointer[T], T) bool) {
	for i, v := range a.items {
		if !yield(Pointer[T](i), v) {
			return
		}
	}
}
