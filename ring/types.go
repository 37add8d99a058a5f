// Package ring provides the core Ring type, its node representation,
// and sentinel error definitions.
package ring

import "errors"

// ErrEmptyRing is returned by accessors that need at least one element.
var ErrEmptyRing = errors.New("ring: empty ring")

// node is a single element of the ring. next always points at the
// successor; in a one-element ring it points back at the node itself.
type node[T any] struct {
	val  T
	next *node[T]
}

// Ring is a circular singly linked list with O(1) access to both ends.
//
// The zero value is an empty ring ready for use.
//
// Structural invariant: either head, tail and size are all zero, or
// exactly size nodes are reachable from head, the walk of size links
// lands back on head, and tail.next == head.
type Ring[T any] struct {
	head *node[T]
	tail *node[T]
	size int
}

// New returns a ring holding vals in the given order.
//
// Time: O(len(vals)). Memory: O(len(vals)).
func New[T any](vals ...T) *Ring[T] {
	r := &Ring[T]{}
	for _, v := range vals {
		r.Append(v)
	}
	return r
}
