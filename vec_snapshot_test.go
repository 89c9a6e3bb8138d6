package soavec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/soavec/codec"
	"github.com/hupe1980/soavec/snapshot"
)

func TestSnapshotRoundTrip(t *testing.T) {
	v := NewVec2[int, string]()
	v.Push(1, "a")
	v.Push(2, "b")
	v.Push(3, "c")

	var buf bytes.Buffer
	n, err := v.WriteSnapshot(&buf)
	require.NoError(t, err)
	require.Equal(t, int64(buf.Len()), n)

	// The source is untouched by serialization.
	assert.Equal(t, 3, v.Len())

	w := NewVec2[int, string]()
	require.NoError(t, w.ReadSnapshot(&buf))
	c1, c2 := w.Columns()
	assert.Equal(t, []int{1, 2, 3}, c1)
	assert.Equal(t, []string{"a", "b", "c"}, c2)
}

func TestSnapshotAppendsToExistingRecords(t *testing.T) {
	v := NewVec2[int, string]()
	v.Push(1, "a")

	var buf bytes.Buffer
	_, err := v.WriteSnapshot(&buf)
	require.NoError(t, err)

	w := NewVec2[int, string]()
	w.Push(0, "existing")
	require.NoError(t, w.ReadSnapshot(&buf))
	c1, _ := w.Columns()
	assert.Equal(t, []int{0, 1}, c1)
}

func TestSnapshotWithOptions(t *testing.T) {
	v := NewVec2[int, string]()
	for i := 0; i < 100; i++ {
		v.Push(i, "payload")
	}

	var buf bytes.Buffer
	_, err := v.WriteSnapshot(&buf,
		snapshot.WithCodec(codec.GoJSON{}),
		snapshot.WithCompression(snapshot.CompressionZstd),
	)
	require.NoError(t, err)

	// The reader needs no options; codec and compression come from the
	// stream header.
	w := NewVec2[int, string]()
	require.NoError(t, w.ReadSnapshot(&buf))
	assert.Equal(t, 100, w.Len())
	r, ok := w.Get(99)
	require.True(t, ok)
	assert.Equal(t, 99, *r.V1)
}

func TestSnapshotArityMismatch(t *testing.T) {
	v := NewVec2[int, int]()
	v.Push(1, 2)

	var buf bytes.Buffer
	_, err := v.WriteSnapshot(&buf)
	require.NoError(t, err)

	w := NewVec3[int, int, int]()
	err = w.ReadSnapshot(&buf)
	require.ErrorIs(t, err, snapshot.ErrArityMismatch)
	assert.True(t, w.IsEmpty())
}

func TestSnapshotEmptyContainer(t *testing.T) {
	v := NewVec2[int, string]()

	var buf bytes.Buffer
	_, err := v.WriteSnapshot(&buf)
	require.NoError(t, err)

	w := NewVec2[int, string]()
	require.NoError(t, w.ReadSnapshot(&buf))
	assert.True(t, w.IsEmpty())
}

func TestSnapshotFourFields(t *testing.T) {
	v := NewVec4[int, string, float64, bool]()
	v.Push(1, "a", 0.5, true)
	v.Push(2, "b", 1.5, false)

	var buf bytes.Buffer
	_, err := v.WriteSnapshot(&buf, snapshot.WithCompression(snapshot.CompressionLZ4))
	require.NoError(t, err)

	w := NewVec4[int, string, float64, bool]()
	require.NoError(t, w.ReadSnapshot(&buf))
	c1, c2, c3, c4 := w.Columns()
	assert.Equal(t, []int{1, 2}, c1)
	assert.Equal(t, []string{"a", "b"}, c2)
	assert.Equal(t, []float64{0.5, 1.5}, c3)
	assert.Equal(t, []bool{true, false}, c4)
}
