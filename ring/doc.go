// Package ring implements a generic circular singly linked list with
// O(1) rotation, head access, and splicing.
//
// 🚀 What is a circular ring?
//
//	Every element points at its successor and the last element points
//	back at the first, so advancing the whole structure is two pointer
//	moves instead of a copy. Rings shine wherever turn order wraps
//	around:
//	  • round-robin schedulers & load balancers
//	  • turn-based game loops
//	  • token-passing protocols
//	  • bounded history trails
//
// ✨ Key features:
//   - Ring[T] carries any payload type; the zero value is ready to use
//   - Append, Front, PopFront, Rotate, Merge in O(1)
//   - balanced Split via a slow/fast cursor pair (first half gets the
//     extra element on odd lengths)
//   - All() yields a lazy, restartable, read-only iter.Seq[T]
//   - structural self-verification behind the ringcheck build tag
//
// ⚙️ Usage:
//
//	r := ring.New("A", "B", "C")
//	r.Rotate()                // order is now B, C, A
//	front, _ := r.Front()     // -> "B"
//	left, right := r.Split()  // [B C] and [A]; r is empty
//	left.Merge(right)         // [B C A] again; right is empty
//
// Ownership: Split and Merge transfer elements wholesale. After a
// Split the source ring is empty and both halves own their nodes
// exclusively; after a Merge the donor ring is empty. Every element
// always belongs to exactly one ring.
//
// Concurrency: a Ring is not safe for concurrent use; guard it
// externally or keep it goroutine-local.
//
// Performance:
//
//   - Append / Front / PopFront / Rotate / Merge / Clear: O(1)
//   - Split / All / Values: O(n)
//
// See example_test.go for runnable scenarios.
package ring
