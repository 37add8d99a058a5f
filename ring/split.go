package ring

// Split cuts the ring into two balanced rings and empties the
// receiver. The first ring receives the front ceil(n/2) elements, the
// second the remaining floor(n/2), both in original order. Splitting
// an empty ring yields two empty rings; a single element goes to the
// first ring.
//
// The midpoint is found with a slow/fast cursor pair: slow advances
// one link while fast advances two, stopping once fast's two-ahead
// link wraps back to the starting head. On even lengths fast halts one
// element short of tail and takes a single extra step.
//
// Ownership of every node transfers to exactly one of the returned
// rings; the receiver is left empty and reusable.
//
// Time: O(n). Memory: O(1) beyond the two ring headers.
func (r *Ring[T]) Split() (*Ring[T], *Ring[T]) {
	first := &Ring[T]{}
	second := &Ring[T]{}

	switch r.size {
	case 0:
		return first, second
	case 1:
		// Sole element keeps its self-link and moves to the first ring.
		first.head = r.head
		first.tail = r.tail
		first.size = 1
		r.head, r.tail, r.size = nil, nil, 0
		r.assertInvariant()
		first.assertInvariant()
		return first, second
	}

	slow, fast := r.head, r.head
	for fast.next != r.head && fast.next.next != r.head {
		slow = slow.next
		fast = fast.next.next
	}
	if fast.next.next == r.head {
		// Even length: fast halted one short of tail.
		fast = fast.next
	}

	// First ring: head .. slow.
	first.head = r.head
	first.tail = slow
	first.size = (r.size + 1) / 2

	// Second ring: slow.next .. fast, where fast is the old tail.
	second.head = slow.next
	second.tail = fast
	second.size = r.size - first.size

	// Close both circles and release the source.
	first.tail.next = first.head
	second.tail.next = second.head
	r.head, r.tail, r.size = nil, nil, 0

	r.assertInvariant()
	first.assertInvariant()
	second.assertInvariant()

	return first, second
}
