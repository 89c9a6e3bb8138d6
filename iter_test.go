package soavec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIterBothEnds(t *testing.T) {
	v := NewVec2[int, string]()
	v.Push(1, "a")
	v.Push(2, "b")
	v.Push(3, "c")
	v.Push(4, "d")

	it := v.Iter()
	require.Equal(t, 4, it.Len())

	r, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, 1, *r.V1)

	r, ok = it.NextBack()
	require.True(t, ok)
	assert.Equal(t, 4, *r.V1)
	assert.Equal(t, 2, it.Len())

	r, ok = it.Next()
	require.True(t, ok)
	assert.Equal(t, 2, *r.V1)

	r, ok = it.NextBack()
	require.True(t, ok)
	assert.Equal(t, 3, *r.V1)

	// The ends met; both directions are exhausted for good.
	_, ok = it.Next()
	assert.False(t, ok)
	_, ok = it.NextBack()
	assert.False(t, ok)
	assert.Equal(t, 0, it.Len())
}

func TestAllAndBackward(t *testing.T) {
	v := NewVec2[int, string]()
	v.Push(1, "a")
	v.Push(2, "b")
	v.Push(3, "c")

	var got []int
	for i, r := range v.All() {
		assert.Equal(t, i, len(got))
		got = append(got, *r.V1)
	}
	assert.Equal(t, []int{1, 2, 3}, got)

	got = got[:0]
	for _, r := range v.Backward() {
		got = append(got, *r.V1)
	}
	assert.Equal(t, []int{3, 2, 1}, got)

	// Early break is fine.
	got = got[:0]
	for _, r := range v.All() {
		got = append(got, *r.V1)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 2}, got)
}

func TestIterYieldsLiveRefs(t *testing.T) {
	v := NewVec2[int, string]()
	v.Push(1, "a")
	v.Push(2, "b")

	for _, r := range v.All() {
		*r.V1 *= 10
	}
	c1, _ := v.Columns()
	assert.Equal(t, []int{10, 20}, c1)
}

func TestDrainConsumesContainer(t *testing.T) {
	v := NewVec2[int, string]()
	v.Push(1, "a")
	v.Push(2, "b")
	v.Push(3, "c")

	d := v.Drain()
	assert.Equal(t, 0, v.Len(), "the container is empty as soon as drain starts")
	assert.Equal(t, 0, v.Cap())
	require.Equal(t, 3, d.Len())

	a, b, ok := d.Next()
	require.True(t, ok)
	assert.Equal(t, 1, a)
	assert.Equal(t, "a", b)

	a, b, ok = d.NextBack()
	require.True(t, ok)
	assert.Equal(t, 3, a)
	assert.Equal(t, "c", b)

	a, _, ok = d.Next()
	require.True(t, ok)
	assert.Equal(t, 2, a)

	_, _, ok = d.Next()
	assert.False(t, ok)
	d.Close()

	// The drained container is reusable.
	v.Push(9, "z")
	assert.Equal(t, 1, v.Len())
}

func TestDrainAllClosesOnEarlyBreak(t *testing.T) {
	v := NewVec2[int, string]()
	v.Push(1, "a")
	v.Push(2, "b")
	v.Push(3, "c")

	d := v.Drain()
	var got []int
	for r := range d.All() {
		got = append(got, r.V1)
		if len(got) == 1 {
			break
		}
	}
	assert.Equal(t, []int{1}, got)

	// The loop body broke early, All closed the iterator anyway.
	_, _, ok := d.Next()
	assert.False(t, ok)
}

func TestDrainCloseIsIdempotent(t *testing.T) {
	v := NewVec2[int, string]()
	v.Push(1, "a")

	d := v.Drain()
	d.Close()
	d.Close()

	_, _, ok := d.Next()
	assert.False(t, ok)
	_, _, ok = d.NextBack()
	assert.False(t, ok)
}

func TestDrainEmptyContainer(t *testing.T) {
	v := NewVec2[int, string]()
	d := v.Drain()
	assert.Equal(t, 0, d.Len())
	_, _, ok := d.Next()
	assert.False(t, ok)
	d.Close()
}
