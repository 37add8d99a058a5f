package ring_test

import (
	"testing"

	"github.com/katalvlaran/carousel/ring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSplit_Empty verifies the degenerate case: two empty rings, the
// source untouched (it was already empty).
func TestSplit_Empty(t *testing.T) {
	r := ring.New[int]()

	first, second := r.Split()

	assert.True(t, first.IsEmpty())
	assert.True(t, second.IsEmpty())
	assert.True(t, r.IsEmpty())
	for _, rr := range []*ring.Ring[int]{r, first, second} {
		assert.NoError(t, ring.Verify(rr))
	}
}

// TestSplit_Single verifies a one-element ring hands its sole element
// to the first half.
func TestSplit_Single(t *testing.T) {
	r := ring.New("only")

	first, second := r.Split()

	assert.Equal(t, []string{"only"}, first.Values())
	assert.True(t, second.IsEmpty())
	assert.True(t, r.IsEmpty(), "split must empty the source")
	for _, rr := range []*ring.Ring[string]{r, second} {
		assert.NoError(t, ring.Verify(rr))
	}
	assert.NoError(t, ring.Verify(first))
}

// TestSplit_EvenLength verifies a 4-element ring splits 2/2 in order.
func TestSplit_EvenLength(t *testing.T) {
	r := ring.New(1, 2, 3, 4)

	first, second := r.Split()

	assert.Equal(t, []int{1, 2}, first.Values())
	assert.Equal(t, []int{3, 4}, second.Values())
	assert.True(t, r.IsEmpty())
}

// TestSplit_OddLength verifies a 5-element ring splits 3/2 with the
// front half taking the extra element.
func TestSplit_OddLength(t *testing.T) {
	r := ring.New(1, 2, 3, 4, 5)

	first, second := r.Split()

	assert.Equal(t, []int{1, 2, 3}, first.Values())
	assert.Equal(t, []int{4, 5}, second.Values())
	assert.True(t, r.IsEmpty())
}

// TestSplit_TwoElements covers the smallest ring where both halves are
// non-empty.
func TestSplit_TwoElements(t *testing.T) {
	r := ring.New("x", "y")

	first, second := r.Split()

	assert.Equal(t, []string{"x"}, first.Values())
	assert.Equal(t, []string{"y"}, second.Values())
}

// TestSplit_BalanceAndOrder checks sizes ceil(n/2)/floor(n/2), order
// preservation, source emptying, and the structural invariant for all
// small lengths.
func TestSplit_BalanceAndOrder(t *testing.T) {
	for n := 0; n <= 12; n++ {
		r := ring.New[int]()
		want := make([]int, 0, n)
		for i := 0; i < n; i++ {
			r.Append(i)
			want = append(want, i)
		}

		first, second := r.Split()
		half := (n + 1) / 2

		require.Equal(t, half, first.Len(), "n=%d: first half size", n)
		require.Equal(t, n-half, second.Len(), "n=%d: second half size", n)
		require.Equal(t, want[:half], first.Values(), "n=%d: first half order", n)
		require.Equal(t, want[half:], second.Values(), "n=%d: second half order", n)
		require.True(t, r.IsEmpty(), "n=%d: source must be emptied", n)

		require.NoError(t, ring.Verify(r), "n=%d: source invariant", n)
		require.NoError(t, ring.Verify(first), "n=%d: first invariant", n)
		require.NoError(t, ring.Verify(second), "n=%d: second invariant", n)
	}
}

// TestSplit_HalvesAreIndependent mutates one half and checks the other
// and the source stay untouched, pinning the exclusive node handoff.
func TestSplit_HalvesAreIndependent(t *testing.T) {
	r := ring.New("a", "b", "c", "d")
	first, second := r.Split()

	first.Append("A2")
	first.Rotate()
	require.True(t, second.PopFront())

	assert.Equal(t, []string{"b", "A2", "a"}, first.Values())
	assert.Equal(t, []string{"d"}, second.Values())
	assert.True(t, r.IsEmpty())

	r.Append("fresh")
	assert.Equal(t, []string{"fresh"}, r.Values(), "source must be reusable after split")

	assert.NoError(t, ring.Verify(r))
	assert.NoError(t, ring.Verify(first))
	assert.NoError(t, ring.Verify(second))
}
