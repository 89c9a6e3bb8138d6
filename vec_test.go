package soavec

import (
	"fmt"
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestPushBuildsColumns(t *testing.T) {
	v := NewVec2[int32, int32]()
	v.Push(1, 2)
	v.Push(3, 4)
	v.Push(5, 6)
	v.Push(7, 8)

	require.Equal(t, 4, v.Len())
	c1, c2 := v.Columns()
	assert.Equal(t, []int32{1, 3, 5, 7}, c1)
	assert.Equal(t, []int32{2, 4, 6, 8}, c2)

	v.Swap(1, 2)
	c1, c2 = v.Columns()
	assert.Equal(t, []int32{1, 5, 3, 7}, c1)
	assert.Equal(t, []int32{2, 6, 4, 8}, c2)

	a, b, ok := v.Remove(0)
	require.True(t, ok)
	assert.Equal(t, int32(1), a)
	assert.Equal(t, int32(2), b)
	c1, c2 = v.Columns()
	assert.Equal(t, []int32{5, 3, 7}, c1)
	assert.Equal(t, []int32{6, 4, 8}, c2)
}

func TestPopReversesPushOrder(t *testing.T) {
	v := NewVec2[int, string]()
	v.Push(1, "a")
	v.Push(2, "b")
	v.Push(3, "c")

	a, b, ok := v.Pop()
	require.True(t, ok)
	assert.Equal(t, 3, a)
	assert.Equal(t, "c", b)

	a, b, ok = v.Pop()
	require.True(t, ok)
	assert.Equal(t, 2, a)
	assert.Equal(t, "b", b)

	a, b, ok = v.Pop()
	require.True(t, ok)
	assert.Equal(t, 1, a)
	assert.Equal(t, "a", b)

	_, _, ok = v.Pop()
	assert.False(t, ok)
	assert.True(t, v.IsEmpty())
}

func TestInsertRemoveRoundTrip(t *testing.T) {
	v := NewVec2[int, string]()
	v.Push(1, "a")
	v.Push(3, "c")

	v.Insert(1, 2, "b")
	require.Equal(t, 3, v.Len())
	c1, c2 := v.Columns()
	assert.Equal(t, []int{1, 2, 3}, c1)
	assert.Equal(t, []string{"a", "b", "c"}, c2)

	a, b, ok := v.Remove(1)
	require.True(t, ok)
	assert.Equal(t, 2, a)
	assert.Equal(t, "b", b)
	c1, c2 = v.Columns()
	assert.Equal(t, []int{1, 3}, c1)
	assert.Equal(t, []string{"a", "c"}, c2)

	// Insert at len appends.
	v.Insert(v.Len(), 4, "d")
	c1, _ = v.Columns()
	assert.Equal(t, []int{1, 3, 4}, c1)

	assert.Panics(t, func() { v.Insert(v.Len()+1, 0, "") })
	assert.Panics(t, func() { v.Insert(-1, 0, "") })

	// Remove out of bounds leaves the container untouched.
	_, _, ok = v.Remove(v.Len())
	assert.False(t, ok)
	assert.Equal(t, 3, v.Len())
}

func TestGetBoundIsStrict(t *testing.T) {
	v := NewVec2[int, int]()
	v.Push(10, 20)

	r, ok := v.Get(0)
	require.True(t, ok)
	assert.Equal(t, 10, *r.V1)
	assert.Equal(t, 20, *r.V2)

	// Capacity above len is never readable, only [0, len) is.
	require.Greater(t, v.Cap(), v.Len())
	_, ok = v.Get(1)
	assert.False(t, ok)
	_, ok = v.Get(-1)
	assert.False(t, ok)

	assert.Panics(t, func() { v.At(1) })
	assert.Panics(t, func() { v.Set(1, 0, 0) })
}

func TestRefMutatesInPlace(t *testing.T) {
	v := NewVec2[int, string]()
	v.Push(1, "a")
	v.Push(2, "b")

	r := v.At(1)
	*r.V1 = 99
	*r.V2 = "z"

	c1, c2 := v.Columns()
	assert.Equal(t, []int{1, 99}, c1)
	assert.Equal(t, []string{"a", "z"}, c2)

	first, ok := v.First()
	require.True(t, ok)
	assert.Equal(t, 1, *first.V1)
	last, ok := v.Last()
	require.True(t, ok)
	assert.Equal(t, 99, *last.V1)
}

func TestSwapRemoveMovesLastIntoHole(t *testing.T) {
	v := NewVec2[int, string]()
	v.Push(1, "a")
	v.Push(2, "b")
	v.Push(3, "c")

	a, b := v.SwapRemove(0)
	assert.Equal(t, 1, a)
	assert.Equal(t, "a", b)
	c1, c2 := v.Columns()
	assert.Equal(t, []int{3, 2}, c1)
	assert.Equal(t, []string{"c", "b"}, c2)

	assert.Panics(t, func() { v.SwapRemove(2) })
}

func TestTruncateAndClear(t *testing.T) {
	v := NewVec2[int, int]()
	for i := 0; i < 10; i++ {
		v.Push(i, i)
	}
	capBefore := v.Cap()

	v.Truncate(3)
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, capBefore, v.Cap())

	v.Truncate(5)
	assert.Equal(t, 3, v.Len(), "truncate above len is a no-op")

	v.Clear()
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, capBefore, v.Cap())
}

func TestGrowthIsDeterministic(t *testing.T) {
	v := NewVec2[int, int]()
	assert.Equal(t, 0, v.Cap())

	caps := []int{}
	for i := 0; i < 17; i++ {
		v.Push(i, i)
		caps = append(caps, v.Cap())
	}
	assert.Equal(t, 4, caps[0])
	assert.Equal(t, 4, caps[3])
	assert.Equal(t, 8, caps[4])
	assert.Equal(t, 16, caps[8])
	assert.Equal(t, 32, caps[16])

	w := NewVec2WithCapacity[int, int](100)
	assert.Equal(t, 100, w.Cap(), "explicit capacity is taken as-is")
	w.Reserve(100)
	assert.Equal(t, 100, w.Cap())
	w.Reserve(101)
	assert.Equal(t, 128, w.Cap())
}

func TestShrink(t *testing.T) {
	v := NewVec2WithCapacity[int, int](64)
	v.Push(1, 1)
	v.Push(2, 2)

	v.ShrinkTo(16)
	assert.Equal(t, 16, v.Cap())

	v.ShrinkToFit()
	assert.Equal(t, 2, v.Cap())
	c1, _ := v.Columns()
	assert.Equal(t, []int{1, 2}, c1)

	v.Clear()
	v.ShrinkToFit()
	assert.Equal(t, 0, v.Cap())
}

func TestAppendMovesRecords(t *testing.T) {
	a := NewVec2[int, string]()
	a.Push(1, "a")
	b := NewVec2[int, string]()
	b.Push(2, "b")
	b.Push(3, "c")
	bCap := b.Cap()

	a.Append(b)
	require.Equal(t, 3, a.Len())
	require.Equal(t, 0, b.Len())
	assert.Equal(t, bCap, b.Cap(), "source keeps its allocation")

	c1, c2 := a.Columns()
	assert.Equal(t, []int{1, 2, 3}, c1)
	assert.Equal(t, []string{"a", "b", "c"}, c2)
}

func TestRepeatAndClone(t *testing.T) {
	v := NewVec2[int, string]()
	v.Push(1, "a")
	v.Push(2, "b")

	r := v.Repeat(3)
	require.Equal(t, 6, r.Len())
	assert.Equal(t, 6, r.Cap())
	c1, _ := r.Columns()
	assert.Equal(t, []int{1, 2, 1, 2, 1, 2}, c1)

	empty := v.Repeat(0)
	assert.True(t, empty.IsEmpty())

	cl := v.Clone()
	v.Set(0, 99, "z")
	c1, c2 := cl.Columns()
	assert.Equal(t, []int{1, 2}, c1)
	assert.Equal(t, []string{"a", "b"}, c2)
}

func TestFromColumns(t *testing.T) {
	v, err := FromColumns2([]int{1, 2, 3}, []string{"a", "b", "c"})
	require.NoError(t, err)
	require.Equal(t, 3, v.Len())
	assert.Equal(t, 3, v.Cap())

	// The container owns its copies.
	src := []int{9}
	w, err := FromColumns2(src, []string{"x"})
	require.NoError(t, err)
	src[0] = 0
	c1, _ := w.Columns()
	assert.Equal(t, []int{9}, c1)

	_, err = FromColumns2([]int{1, 2}, []string{"a"})
	require.ErrorIs(t, err, ErrUnevenLengths)

	empty, err := FromColumns2([]int(nil), []string(nil))
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())
}

func TestCollectAndExtend(t *testing.T) {
	src := NewVec2[int, string]()
	src.Push(1, "a")
	src.Push(2, "b")

	v := Collect2(src.Drain().All())
	require.Equal(t, 2, v.Len())
	assert.True(t, src.IsEmpty())

	more := NewVec2[int, string]()
	more.Push(3, "c")
	v.Extend(more.Drain().All())
	c1, _ := v.Columns()
	assert.Equal(t, []int{1, 2, 3}, c1)
}

func TestFillReverseSwapWith(t *testing.T) {
	v := NewVec2[int, string]()
	v.Push(1, "a")
	v.Push(2, "b")
	v.Push(3, "c")

	v.Reverse()
	c1, c2 := v.Columns()
	assert.Equal(t, []int{3, 2, 1}, c1)
	assert.Equal(t, []string{"c", "b", "a"}, c2)

	w := NewVec2[int, string]()
	w.Push(7, "x")
	w.Push(8, "y")
	w.Push(9, "z")

	v.SwapWith(w)
	c1, _ = v.Columns()
	assert.Equal(t, []int{7, 8, 9}, c1)
	c1, _ = w.Columns()
	assert.Equal(t, []int{3, 2, 1}, c1)

	w.Fill(0, "-")
	c1, c2 = w.Columns()
	assert.Equal(t, []int{0, 0, 0}, c1)
	assert.Equal(t, []string{"-", "-", "-"}, c2)

	n := 0
	w.FillWith(func() (int, string) { n++; return n, "f" })
	c1, _ = w.Columns()
	assert.Equal(t, []int{1, 2, 3}, c1)

	short := NewVec2[int, string]()
	assert.Panics(t, func() { v.SwapWith(short) })
}

func TestFilter(t *testing.T) {
	v := NewVec2[int, string]()
	v.Push(10, "a")
	v.Push(11, "b")
	v.Push(12, "c")
	v.Push(13, "d")

	sel := roaring.BitmapOf(0, 2, 3, 100)
	out := v.Filter(sel)
	require.Equal(t, 3, out.Len())
	c1, c2 := out.Columns()
	assert.Equal(t, []int{10, 12, 13}, c1)
	assert.Equal(t, []string{"a", "c", "d"}, c2)

	// The original container is untouched.
	assert.Equal(t, 4, v.Len())

	none := v.Filter(roaring.New())
	assert.True(t, none.IsEmpty())
}

func TestThreeAndFourFieldContainers(t *testing.T) {
	v3 := NewVec3[int, string, float64]()
	v3.Push(1, "a", 0.5)
	v3.Push(2, "b", 1.5)
	a, b, c, ok := v3.Pop()
	require.True(t, ok)
	assert.Equal(t, 2, a)
	assert.Equal(t, "b", b)
	assert.Equal(t, 1.5, c)

	v4 := NewVec4[int8, int16, int32, int64]()
	v4.Push(1, 2, 3, 4)
	v4.Push(5, 6, 7, 8)
	c1, c2, c3, c4 := v4.Columns()
	assert.Equal(t, []int8{1, 5}, c1)
	assert.Equal(t, []int16{2, 6}, c2)
	assert.Equal(t, []int32{3, 7}, c3)
	assert.Equal(t, []int64{4, 8}, c4)

	w4, _, _, _, ok := v4.Remove(0)
	require.True(t, ok)
	assert.Equal(t, int8(1), w4)
	assert.Equal(t, 1, v4.Len())
}

func TestConcurrentReaders(t *testing.T) {
	v := NewVec2[int, int]()
	for i := 0; i < 1000; i++ {
		v.Push(i, i*2)
	}

	var g errgroup.Group
	for w := 0; w < 8; w++ {
		g.Go(func() error {
			sum := 0
			for _, r := range v.All() {
				sum += *r.V1
			}
			if want := 999 * 1000 / 2; sum != want {
				return fmt.Errorf("sum = %d, want %d", sum, want)
			}
			if c1, _ := v.Columns(); len(c1) != 1000 {
				return fmt.Errorf("column length = %d, want 1000", len(c1))
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
