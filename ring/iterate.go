package ring

import "iter"

// All returns a forward iterator over the ring's values, starting at
// head and yielding exactly Len() values. The sequence is restartable:
// each range over it walks the ring anew from the current head.
// Iteration never changes head, tail, or length.
//
// The yielded values are copies; use Front to mutate the head payload.
//
// Time: O(n) per full pass. Memory: O(1).
func (r *Ring[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		cur := r.head
		for i := 0; i < r.size; i++ {
			if !yield(cur.val) {
				return
			}
			cur = cur.next
		}
	}
}

// Values returns the contents as a new slice in iteration order, head
// first. The slice is independent of the ring.
//
// Time: O(n). Memory: O(n).
func (r *Ring[T]) Values() []T {
	out := make([]T, 0, r.size)
	for v := range r.All() {
		out = append(out, v)
	}
	return out
}
