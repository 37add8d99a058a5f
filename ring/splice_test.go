package ring_test

import (
	"testing"

	"github.com/katalvlaran/carousel/ring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMerge_AppendsDonorInOrder verifies the receiver keeps its
// elements first and the donor's follow in their original order.
func TestMerge_AppendsDonorInOrder(t *testing.T) {
	a := ring.New(1, 2)
	b := ring.New(3, 4)

	a.Merge(b)

	assert.Equal(t, []int{1, 2, 3, 4}, a.Values())
	assert.Equal(t, 4, a.Len())
	assert.True(t, b.IsEmpty(), "donor must be emptied")
	assert.NoError(t, ring.Verify(a))
	assert.NoError(t, ring.Verify(b))
}

// TestMerge_EmptyDonor verifies merging an empty ring changes nothing.
func TestMerge_EmptyDonor(t *testing.T) {
	a := ring.New("x", "y")
	b := ring.New[string]()

	a.Merge(b)

	assert.Equal(t, []string{"x", "y"}, a.Values())
	assert.True(t, b.IsEmpty())
	assert.NoError(t, ring.Verify(a))
}

// TestMerge_NilDonor verifies a nil donor is a no-op.
func TestMerge_NilDonor(t *testing.T) {
	a := ring.New(1, 2, 3)

	a.Merge(nil)

	assert.Equal(t, []int{1, 2, 3}, a.Values())
	assert.NoError(t, ring.Verify(a))
}

// TestMerge_IntoEmptyReceiver verifies an empty receiver adopts the
// donor's contents wholesale.
func TestMerge_IntoEmptyReceiver(t *testing.T) {
	a := ring.New[string]()
	b := ring.New("p", "q", "r")

	a.Merge(b)

	assert.Equal(t, []string{"p", "q", "r"}, a.Values())
	assert.True(t, b.IsEmpty())
	assert.NoError(t, ring.Verify(a))
	assert.NoError(t, ring.Verify(b))
}

// TestMerge_Self verifies merging a ring into itself is a no-op rather
// than a structural corruption.
func TestMerge_Self(t *testing.T) {
	a := ring.New(1, 2, 3)

	a.Merge(a)

	assert.Equal(t, []int{1, 2, 3}, a.Values())
	assert.Equal(t, 3, a.Len())
	assert.NoError(t, ring.Verify(a))
}

// TestMerge_SeamIsTraversable rotates and pops across the splice point
// to prove the merged circle is fully closed.
func TestMerge_SeamIsTraversable(t *testing.T) {
	a := ring.New("a1", "a2")
	b := ring.New("b1", "b2")
	a.Merge(b)

	// Rotate past the seam: a2 -> b1.
	a.Rotate()
	a.Rotate()
	p, err := a.Front()
	require.NoError(t, err)
	assert.Equal(t, "b1", *p)

	// Keep rotating through the wrap-around back to a1.
	a.Rotate()
	a.Rotate()
	p, err = a.Front()
	require.NoError(t, err)
	assert.Equal(t, "a1", *p, "four rotations over four elements must wrap around")

	// Pop across the seam.
	require.True(t, a.PopFront()) // a1
	require.True(t, a.PopFront()) // a2
	p, err = a.Front()
	require.NoError(t, err)
	assert.Equal(t, "b1", *p)
	assert.NoError(t, ring.Verify(a))
}

// TestMerge_DonorReusable verifies the emptied donor accepts new
// elements afterwards.
func TestMerge_DonorReusable(t *testing.T) {
	a := ring.New(1)
	b := ring.New(2)
	a.Merge(b)

	b.Append(99)
	assert.Equal(t, []int{99}, b.Values())
	assert.Equal(t, []int{1, 2}, a.Values(), "receiver must not see donor's later elements")
	assert.NoError(t, ring.Verify(a))
	assert.NoError(t, ring.Verify(b))
}

// TestSplitMerge_RoundTrip splits rings of many sizes and merges the
// halves back, expecting the original order every time.
func TestSplitMerge_RoundTrip(t *testing.T) {
	for n := 0; n <= 16; n++ {
		r := ring.New[int]()
		want := make([]int, 0, n)
		for i := 0; i < n; i++ {
			r.Append(i)
			want = append(want, i)
		}

		first, second := r.Split()
		first.Merge(second)

		require.Equal(t, want, first.Values(), "n=%d: round trip must restore order", n)
		require.True(t, second.IsEmpty(), "n=%d", n)
		require.NoError(t, ring.Verify(first), "n=%d", n)
		require.NoError(t, ring.Verify(second), "n=%d", n)
	}
}
