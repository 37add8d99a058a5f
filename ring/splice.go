package ring

// Merge splices the entire contents of other in after the receiver's
// tail and empties other. Order is preserved: the receiver's elements
// first, then other's in their original order. Merging a nil ring, an
// empty ring, or the receiver itself is a no-op.
//
// Ownership of other's nodes transfers to the receiver; other is left
// empty and reusable.
//
// Time: O(1).
func (r *Ring[T]) Merge(other *Ring[T]) {
	if other == nil || other.size == 0 || other == r {
		return
	}
	if r.size == 0 {
		// Adopt the donor's circle wholesale.
		r.head = other.head
		r.tail = other.tail
		r.size = other.size
	} else {
		r.tail.next = other.head
		other.tail.next = r.head
		r.tail = other.tail
		r.size += other.size
	}
	other.head, other.tail, other.size = nil, nil, 0

	r.assertInvariant()
	other.assertInvariant()
}
