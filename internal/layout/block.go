package layout

import (
	"reflect"
	"unsafe"
)

// danglingSentinel is the shared target of every capacity-0 base address.
// The pointers are non-nil so typed slice views of empty columns stay legal,
// but nothing may ever be read or written through them; length 0 gates all
// access.
var danglingSentinel byte

// Block is one combined allocation holding `capacity` slots for every field
// of a Shape. A zero-capacity Block holds no allocation at all, only the
// dangling sentinel bases.
//
// Block is a small value type; copying it shares the underlying allocation
// (and keeps it alive for the garbage collector).
type Block struct {
	shape    *Shape
	capacity int
	ref      reflect.Value // pointer to the combined struct; invalid when capacity == 0
	bases    []unsafe.Pointer
}

// Dangling returns the capacity-0 block for the shape.
func (s *Shape) Dangling() Block {
	bases := make([]unsafe.Pointer, len(s.types))
	for i := range bases {
		bases[i] = unsafe.Pointer(&danglingSentinel)
	}
	return Block{shape: s, bases: bases}
}

// Alloc allocates one combined block with room for capacity records.
// capacity must be positive. Allocation failure (the combined size
// overflowing the address space, or the allocator refusing the request)
// panics; out-of-memory is fatal by contract, not a recoverable error.
func (s *Shape) Alloc(capacity int) Block {
	if capacity <= 0 {
		panic("soavec/layout: Alloc capacity must be positive")
	}
	st := s.blockType(capacity)
	ref := reflect.New(st)
	base := ref.UnsafePointer()
	bases := make([]unsafe.Pointer, len(s.types))
	for i := range bases {
		if s.sizes[i] == 0 {
			bases[i] = unsafe.Pointer(&danglingSentinel)
			continue
		}
		bases[i] = unsafe.Add(base, st.Field(i).Offset)
	}
	return Block{shape: s, capacity: capacity, ref: ref, bases: bases}
}

// Shape returns the shape the block was allocated for.
func (b *Block) Shape() *Shape {
	return b.shape
}

// Cap returns the block's capacity in records.
func (b *Block) Cap() int {
	return b.capacity
}

// Base returns the base address of field i's column.
func (b *Block) Base(i int) unsafe.Pointer {
	return b.bases[i]
}

// Ptr returns the address of record idx within field i's column, advancing
// by elements of the field's own size. idx must be within the capacity the
// block was allocated for.
func (b *Block) Ptr(i, idx int) unsafe.Pointer {
	return unsafe.Add(b.bases[i], uintptr(idx)*b.shape.sizes[i])
}

// column returns field i's column as an addressable slice of length cap.
func (b *Block) column(i int) reflect.Value {
	arr := b.ref.Elem().Field(i)
	return arr.Slice(0, b.capacity)
}

// Copy copies n records from src starting at srcOff into dst starting at
// dstOff, field by field. Source and destination may be the same block with
// overlapping ranges; the copy has memmove semantics per column, which makes
// it safe for the element shifts done by insert and remove.
func Copy(dst *Block, dstOff int, src *Block, srcOff, n int) {
	if n == 0 {
		return
	}
	for i := range dst.shape.types {
		d := dst.column(i).Slice(dstOff, dstOff+n)
		s := src.column(i).Slice(srcOff, srcOff+n)
		reflect.Copy(d, s)
	}
}

// Zero clears the record slots in [from, to), releasing any references the
// vacated records held. This is the drop primitive: logically removed
// records must be zeroed so the garbage collector can reclaim what they
// pointed to while the block stays alive.
func (b *Block) Zero(from, to int) {
	if from >= to || b.capacity == 0 {
		return
	}
	for i := range b.shape.types {
		if b.shape.sizes[i] == 0 {
			continue
		}
		col := b.column(i)
		for idx := from; idx < to; idx++ {
			col.Index(idx).SetZero()
		}
	}
}

// Release drops the block's reference to its allocation. The memory is
// reclaimed by the garbage collector once no other Block value shares it.
// Releasing a dangling block is a no-op.
func (b *Block) Release() {
	b.ref = reflect.Value{}
	b.capacity = 0
	for i := range b.bases {
		b.bases[i] = unsafe.Pointer(&danglingSentinel)
	}
}
