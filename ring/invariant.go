package ring

import "fmt"

// verify walks the ring and reports the first structural violation:
// an empty ring with leftover pointers, a non-empty ring missing head
// or tail, an open circle (tail.next != head), a tail that is not the
// last element of the walk, or a walk of size links that does not land
// back on head.
//
// Time: O(n).
func (r *Ring[T]) verify() error {
	if r.size == 0 {
		if r.head != nil || r.tail != nil {
			return fmt.Errorf("ring: empty ring holds dangling pointers (head=%p, tail=%p)", r.head, r.tail)
		}
		return nil
	}
	if r.head == nil || r.tail == nil {
		return fmt.Errorf("ring: size=%d with nil head or tail", r.size)
	}
	if r.tail.next != r.head {
		return fmt.Errorf("ring: open circle, tail.next does not reach head")
	}
	cur := r.head
	for i := 0; i < r.size; i++ {
		if cur == nil {
			return fmt.Errorf("ring: nil link after %d of %d steps", i, r.size)
		}
		if i == r.size-1 && cur != r.tail {
			return fmt.Errorf("ring: element %d of %d is not tail", i, r.size)
		}
		cur = cur.next
	}
	if cur != r.head {
		return fmt.Errorf("ring: walking %d links does not return to head", r.size)
	}
	return nil
}

// assertInvariant panics when structural verification is enabled via
// the ringcheck build tag and the ring is corrupt. Called at the end
// of every mutating operation; release builds compile it to a no-op.
func (r *Ring[T]) assertInvariant() {
	if !debugChecks {
		return
	}
	if err := r.verify(); err != nil {
		panic(err)
	}
}
