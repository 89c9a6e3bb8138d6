package soavec

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lettersVec() *Vec2[int, string] {
	v := NewVec2[int, string]()
	v.Push(0, "a")
	v.Push(1, "b")
	v.Push(2, "c")
	v.Push(3, "d")
	v.Push(4, "e")
	return v
}

func TestSliceRanges(t *testing.T) {
	v := lettersVec()

	s := v.Slice(1, 4)
	require.Equal(t, 3, s.Len())
	assert.Equal(t, 1, *s.At(0).V1)
	assert.Equal(t, 3, *s.At(2).V1)

	// Sub-slicing composes: s[a:b][c:d] == s[a+c:a+d].
	inner := s.Slice(1, 3)
	assert.Equal(t, 2, *inner.At(0).V1)
	assert.Equal(t, 3, *inner.At(1).V1)

	assert.Equal(t, 2, v.SliceFrom(3).Len())
	assert.Equal(t, 4, *v.SliceFrom(3).At(1).V1)
	assert.Equal(t, 2, v.SliceTo(2).Len())
	assert.Equal(t, 3, v.SliceInclusive(1, 3).Len())
	assert.Equal(t, 5, v.Full().Len())

	// Empty ranges are fine, including at the very end.
	assert.Equal(t, 0, v.Slice(5, 5).Len())
	assert.Equal(t, 0, v.Slice(2, 2).Len())
	assert.True(t, v.Slice(2, 2).IsEmpty())
}

func TestSliceRangePanics(t *testing.T) {
	v := lettersVec()
	assert.Panics(t, func() { v.Slice(0, 6) })
	assert.Panics(t, func() { v.Slice(3, 2) })
	assert.Panics(t, func() { v.Slice(-1, 2) })
	assert.Panics(t, func() { v.SliceInclusive(0, 5) })

	s := v.Slice(1, 4)
	assert.Panics(t, func() { s.Slice(0, 4) }, "sub-slice bound checks against the view length")
	assert.Panics(t, func() { s.At(3) })
	_, ok := s.Get(3)
	assert.False(t, ok)
}

func TestSliceFromParts(t *testing.T) {
	v := lettersVec()

	s := Slice2FromParts(v, 1, 3)
	require.Equal(t, 3, s.Len())
	assert.Equal(t, 1, *s.At(0).V1)
	assert.Equal(t, 3, *s.At(2).V1)

	// The raw constructor builds the same view the checked one does.
	checked := v.Slice(1, 4)
	assert.Equal(t, *checked.At(1).V1, *s.At(1).V1)
}

func TestSliceMutationIsShared(t *testing.T) {
	v := lettersVec()
	s := v.Slice(1, 4)

	s.Set(0, 99, "z")
	c1, c2 := v.Columns()
	assert.Equal(t, []int{0, 99, 2, 3, 4}, c1)
	assert.Equal(t, []string{"a", "z", "c", "d", "e"}, c2)

	s.Swap(0, 2)
	c1, _ = v.Columns()
	assert.Equal(t, []int{0, 3, 2, 99, 4}, c1)

	// Swapping an index with itself is allowed.
	s.Swap(1, 1)
	c1, _ = v.Columns()
	assert.Equal(t, []int{0, 3, 2, 99, 4}, c1)

	sc1, sc2 := s.Columns()
	assert.Equal(t, []int{3, 2, 99}, sc1)
	assert.Equal(t, []string{"d", "c", "z"}, sc2)
}

func TestSortFunc(t *testing.T) {
	v := NewVec2[int, string]()
	v.Push(3, "c")
	v.Push(1, "a")
	v.Push(4, "d")
	v.Push(2, "b")

	v.SortFunc(func(a, b Ref2[int, string]) int { return cmp.Compare(*a.V1, *b.V1) })
	c1, c2 := v.Columns()
	assert.Equal(t, []int{1, 2, 3, 4}, c1)
	assert.Equal(t, []string{"a", "b", "c", "d"}, c2, "records move together across columns")

	// Sorting a sorted container is the identity.
	v.SortFunc(func(a, b Ref2[int, string]) int { return cmp.Compare(*a.V1, *b.V1) })
	c1, _ = v.Columns()
	assert.Equal(t, []int{1, 2, 3, 4}, c1)
}

func TestSortStableKeepsEqualOrder(t *testing.T) {
	v := NewVec2[int, string]()
	v.Push(2, "first")
	v.Push(1, "x")
	v.Push(2, "second")
	v.Push(1, "y")
	v.Push(2, "third")

	v.SortStableFunc(func(a, b Ref2[int, string]) int { return cmp.Compare(*a.V1, *b.V1) })
	c1, c2 := v.Columns()
	assert.Equal(t, []int{1, 1, 2, 2, 2}, c1)
	assert.Equal(t, []string{"x", "y", "first", "second", "third"}, c2)
}

func TestSortSubSliceLeavesRestAlone(t *testing.T) {
	v := NewVec2[int, string]()
	v.Push(9, "i")
	v.Push(3, "c")
	v.Push(1, "a")
	v.Push(2, "b")
	v.Push(0, "z")

	SortByKey2(v.Slice(1, 4), func(r Ref2[int, string]) int { return *r.V1 })
	c1, c2 := v.Columns()
	assert.Equal(t, []int{9, 1, 2, 3, 0}, c1)
	assert.Equal(t, []string{"i", "a", "b", "c", "z"}, c2)
}

func TestSortByKeyDescending(t *testing.T) {
	v := NewVec2[int, string]()
	v.Push(1, "a")
	v.Push(3, "c")
	v.Push(2, "b")

	v.SortFunc(func(a, b Ref2[int, string]) int { return cmp.Compare(*b.V1, *a.V1) })
	c1, _ := v.Columns()
	assert.Equal(t, []int{3, 2, 1}, c1)

	SortStableByKey2(v.Full(), func(r Ref2[int, string]) string { return *r.V2 })
	_, c2 := v.Columns()
	assert.Equal(t, []string{"a", "b", "c"}, c2)
}

func TestReverseView(t *testing.T) {
	v := lettersVec()
	v.Slice(1, 4).Reverse()
	c1, _ := v.Columns()
	assert.Equal(t, []int{0, 3, 2, 1, 4}, c1)
}

func TestSwapWithViews(t *testing.T) {
	v := lettersVec()
	// Non-overlapping halves of the same container.
	v.Slice(0, 2).SwapWith(v.Slice(3, 5))
	c1, c2 := v.Columns()
	assert.Equal(t, []int{3, 4, 2, 0, 1}, c1)
	assert.Equal(t, []string{"d", "e", "c", "a", "b"}, c2)
}
