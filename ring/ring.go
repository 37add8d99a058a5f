package ring

// Len reports the number of elements currently stored.
//
// Time: O(1).
func (r *Ring[T]) Len() int { return r.size }

// IsEmpty reports whether the ring holds no elements.
//
// Time: O(1).
func (r *Ring[T]) IsEmpty() bool { return r.size == 0 }

// Append inserts v after tail and closes the circle, so the new
// element sits immediately behind head. Appending to an empty ring
// creates a single self-linked element that is both head and tail.
//
// Time: O(1). Memory: O(1).
func (r *Ring[T]) Append(v T) {
	n := &node[T]{val: v}
	if r.head == nil {
		n.next = n
		r.head = n
		r.tail = n
	} else {
		n.next = r.head
		r.tail.next = n
		r.tail = n
	}
	r.size++
	r.assertInvariant()
}

// Front returns a pointer to the head payload, so the caller may
// update it in place. The pointer stays valid until that element is
// removed. Returns ErrEmptyRing on an empty ring.
//
// Time: O(1).
func (r *Ring[T]) Front() (*T, error) {
	if r.head == nil {
		return nil, ErrEmptyRing
	}
	return &r.head.val, nil
}

// PopFront removes the head element and reports whether anything was
// removed. The successor becomes the new head and tail is re-pointed
// at it, keeping the circle closed. PopFront never rotates: after the
// front leaves, the element whose turn comes next is already at head.
//
// Time: O(1).
func (r *Ring[T]) PopFront() bool {
	if r.head == nil {
		return false
	}
	if r.head == r.tail {
		r.head = nil
		r.tail = nil
		r.size = 0
		r.assertInvariant()
		return true
	}
	old := r.head
	r.head = old.next
	r.tail.next = r.head
	old.next = nil
	r.size--
	r.assertInvariant()
	return true
}

// Rotate advances the ring one position: head moves to its successor
// and the previous head becomes tail. Rings with fewer than two
// elements are unchanged.
//
// Time: O(1).
func (r *Ring[T]) Rotate() {
	if r.size < 2 {
		return
	}
	r.tail = r.head
	r.head = r.head.next
	r.assertInvariant()
}

// Clear removes every element, leaving an empty ready-to-use ring.
// Idempotent.
//
// Time: O(1).
func (r *Ring[T]) Clear() {
	r.head = nil
	r.tail = nil
	r.size = 0
	r.assertInvariant()
}
