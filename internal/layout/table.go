package layout

import (
	"fmt"
	"math/bits"
	"unsafe"
)

// minCapacity is the smallest non-zero capacity a table ever grows to.
const minCapacity = 4

// Table is the owning length/capacity/block triple behind every container.
// The invariant is len <= block.Cap(): the first len slots of every column
// hold live records, everything above is zeroed or about to be overwritten.
//
// Table only moves whole records around; reading and writing individual
// field values is left to the typed layer generated on top of it.
type Table struct {
	block Block
	len   int
}

// NewTable returns an empty table with no allocation.
func NewTable(shape *Shape) Table {
	return Table{block: shape.Dangling()}
}

// NewTableWithCapacity returns an empty table that can hold capacity records
// without reallocating. A capacity of 0 allocates nothing.
func NewTableWithCapacity(shape *Shape, capacity int) Table {
	if capacity <= 0 {
		return NewTable(shape)
	}
	return Table{block: shape.Alloc(capacity)}
}

// Len returns the number of live records.
func (t *Table) Len() int {
	return t.len
}

// Cap returns the current capacity in records.
func (t *Table) Cap() int {
	return t.block.Cap()
}

// SetLen sets the live-record count without touching storage. The typed
// layer calls this after it has written (or moved out) the affected slots.
func (t *Table) SetLen(n int) {
	t.len = n
}

// Snapshot returns the current block by value, for deriving views. The view
// shares (and keeps alive) the current allocation; any table operation that
// reallocates leaves such views pointing at the old block.
func (t *Table) Snapshot() Block {
	return t.block
}

// Base returns the base address of field i's column.
func (t *Table) Base(i int) unsafe.Pointer {
	return t.block.Base(i)
}

// Ptr returns the address of record idx within field i's column.
func (t *Table) Ptr(i, idx int) unsafe.Pointer {
	return t.block.Ptr(i, idx)
}

// Zero clears the record slots in [from, to).
func (t *Table) Zero(from, to int) {
	t.block.Zero(from, to)
}

// Reserve ensures capacity for at least additional more records. Growth is
// deterministic: the new capacity is the next power of two at or above
// len+additional, with a floor of 4. All live records are bulk-copied into
// one new combined block and the old block is released, so growth is
// all-or-nothing across fields. Panics on arithmetic overflow.
func (t *Table) Reserve(additional int) {
	if additional < 0 {
		panic(fmt.Sprintf("soavec/layout: negative reserve: %d", additional))
	}
	need := t.len + additional
	if need < t.len {
		panic("soavec/layout: capacity overflow")
	}
	if need <= t.block.Cap() {
		return
	}
	t.regrow(nextCapacity(need))
}

// ShrinkTo reduces capacity to max(len, min). A min above the current
// capacity is a no-op. Shrinking to capacity 0 releases the allocation.
func (t *Table) ShrinkTo(min int) {
	if min > t.block.Cap() {
		return
	}
	capacity := t.len
	if min > capacity {
		capacity = min
	}
	if capacity == 0 {
		shape := t.block.Shape()
		t.block.Release()
		t.block = shape.Dangling()
		return
	}
	t.regrow(capacity)
}

func (t *Table) regrow(capacity int) {
	next := t.block.Shape().Alloc(capacity)
	Copy(&next, 0, &t.block, 0, t.len)
	t.block.Release()
	t.block = next
}

// Truncate drops every record at index newLen and above. The length is cut
// before the slots are cleared so a fault mid-clear can never revisit a
// half-dropped record.
func (t *Table) Truncate(newLen int) {
	if newLen >= t.len {
		return
	}
	old := t.len
	t.len = newLen
	t.block.Zero(newLen, old)
}

// ShiftRight opens a one-record gap at idx by moving [idx, len) up one slot.
// The caller must have reserved room for one more record and must overwrite
// slot idx (then bump the length) itself.
func (t *Table) ShiftRight(idx int) {
	Copy(&t.block, idx+1, &t.block, idx, t.len-idx)
}

// ShiftLeft closes the gap at idx by moving [idx+1, len) down one slot,
// clears the vacated last slot, and decrements the length. The caller must
// have moved the record at idx out first.
func (t *Table) ShiftLeft(idx int) {
	Copy(&t.block, idx, &t.block, idx+1, t.len-idx-1)
	t.block.Zero(t.len-1, t.len)
	t.len--
}

// SwapRemove fills the hole at idx with the last record (unless idx is the
// last record), clears the vacated last slot, and decrements the length.
// Order is not preserved. The caller must have moved the record at idx out
// first.
func (t *Table) SwapRemove(idx int) {
	last := t.len - 1
	if idx != last {
		Copy(&t.block, idx, &t.block, last, 1)
	}
	t.block.Zero(last, t.len)
	t.len--
}

// AppendFrom moves every record of other onto the end of t. Ownership of the
// records transfers: other is left empty, its allocation untouched for reuse.
func (t *Table) AppendFrom(other *Table) {
	n := other.len
	if n == 0 {
		return
	}
	t.Reserve(n)
	Copy(&t.block, t.len, &other.block, 0, n)
	t.len += n
	// The records were moved, not dropped; clearing the source slots just
	// stops them from pinning the moved records' referents twice.
	other.len = 0
	other.block.Zero(0, n)
}

// Repeat returns a new table holding n consecutive shallow copies of t's
// records, allocated at exactly n*len capacity.
func (t *Table) Repeat(n int) Table {
	if n < 0 {
		panic(fmt.Sprintf("soavec/layout: negative repeat count: %d", n))
	}
	total := n * t.len
	if n != 0 && total/n != t.len {
		panic("soavec/layout: capacity overflow")
	}
	out := NewTableWithCapacity(t.block.Shape(), total)
	for k := 0; k < n; k++ {
		Copy(&out.block, k*t.len, &t.block, 0, t.len)
	}
	out.len = total
	return out
}

// Clone returns a new table with the same records at capacity len.
func (t *Table) Clone() Table {
	out := NewTableWithCapacity(t.block.Shape(), t.len)
	Copy(&out.block, 0, &t.block, 0, t.len)
	out.len = t.len
	return out
}

// Take steals the table's storage for an owning iterator, leaving the table
// empty and unallocated. The caller becomes responsible for zeroing the
// remaining live records and releasing the block.
func (t *Table) Take() (Block, int) {
	block, n := t.block, t.len
	t.block = block.Shape().Dangling()
	t.len = 0
	return block, n
}

// nextCapacity rounds need up to a power of two with a floor of minCapacity.
func nextCapacity(need int) int {
	if need <= minCapacity {
		return minCapacity
	}
	shift := bits.Len(uint(need - 1))
	if shift >= bits.UintSize-1 {
		panic("soavec/layout: capacity overflow")
	}
	return 1 << shift
}
