// Command soavec-gen emits the per-arity container sources (vec_N.go). The
// storage engine is shared and arity-erased; only the thin typed surface is
// generated, one file per field count.
//
// Usage:
//
//	soavec-gen -max 4 -out .
package main

import (
	"flag"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

type field struct {
	I   int // 1-based field number, matches the V1..VN naming
	Col int // 0-based column index into the block
}

type arity struct {
	N        int
	Decl     string // "T1, T2 any"
	Params   string // "T1, T2"
	Args     string // "v1, v2"
	ArgsDecl string // "v1 T1, v2 T2"
	Rets     string // "r1, r2"
	RetsDecl string // "r1 T1, r2 T2"
	Cols     string // "[]T1, []T2"
	RecArgs  string // "r.V1, r.V2"
	RecLit   string // "V1: v1, V2: v2"
	Derefs   string // "*r.V1, *r.V2"
	Ps       string // "p1, p2"
	PDerefs  string // "*p1, *p2"
	Zs       string // "z1, z2"
	Fields   []field
}

func newArity(n int) arity {
	join := func(f func(i int) string) string {
		parts := make([]string, n)
		for i := 1; i <= n; i++ {
			parts[i-1] = f(i)
		}
		return strings.Join(parts, ", ")
	}
	a := arity{
		N:        n,
		Decl:     join(func(i int) string { return fmt.Sprintf("T%d", i) }) + " any",
		Params:   join(func(i int) string { return fmt.Sprintf("T%d", i) }),
		Args:     join(func(i int) string { return fmt.Sprintf("v%d", i) }),
		ArgsDecl: join(func(i int) string { return fmt.Sprintf("v%d T%d", i, i) }),
		Rets:     join(func(i int) string { return fmt.Sprintf("r%d", i) }),
		RetsDecl: join(func(i int) string { return fmt.Sprintf("r%d T%d", i, i) }),
		Cols:     join(func(i int) string { return fmt.Sprintf("[]T%d", i) }),
		RecArgs:  join(func(i int) string { return fmt.Sprintf("r.V%d", i) }),
		RecLit:   join(func(i int) string { return fmt.Sprintf("V%d: v%d", i, i) }),
		Derefs:   join(func(i int) string { return fmt.Sprintf("*r.V%d", i) }),
		Ps:       join(func(i int) string { return fmt.Sprintf("p%d", i) }),
		PDerefs:  join(func(i int) string { return fmt.Sprintf("*p%d", i) }),
		Zs:       join(func(i int) string { return fmt.Sprintf("z%d", i) }),
	}
	for i := 1; i <= n; i++ {
		a.Fields = append(a.Fields, field{I: i, Col: i - 1})
	}
	return a
}

func main() {
	maxArity := flag.Int("max", 4, "highest field count to generate (inclusive, from 2)")
	outDir := flag.String("out", ".", "output directory")
	flag.Parse()

	if *maxArity < 2 {
		fmt.Fprintln(os.Stderr, "soavec-gen: -max must be at least 2")
		os.Exit(1)
	}

	tmpl := template.Must(template.New("vec").Parse(vecTemplate))
	for n := 2; n <= *maxArity; n++ {
		var buf strings.Builder
		if err := tmpl.Execute(&buf, newArity(n)); err != nil {
			fmt.Fprintf(os.Stderr, "soavec-gen: %v\n", err)
			os.Exit(1)
		}
		src, err := format.Source([]byte(buf.String()))
		if err != nil {
			fmt.Fprintf(os.Stderr, "soavec-gen: vec_%d.go: %v\n", n, err)
			os.Exit(1)
		}
		name := filepath.Join(*outDir, fmt.Sprintf("vec_%d.go", n))
		if err := os.WriteFile(name, src, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "soavec-gen: %v\n", err)
			os.Exit(1)
		}
	}
}

const vecTemplate = `// Code generated by soavec-gen. DO NOT EDIT.

package soavec

import (
	"cmp"
	"fmt"
	"io"
	"iter"
	"reflect"
	"sort"
	"unsafe"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/soavec/internal/layout"
	"github.com/hupe1980/soavec/snapshot"
)

// Record{{.N}} is one owned record of a {{.N}}-field shape.
type Record{{.N}}[{{.Decl}}] struct {
{{- range .Fields}}
	V{{.I}} T{{.I}}
{{- end}}
}

// Ref{{.N}} is a tuple of field pointers to one stored record. The pointers stay
// valid until the owning container reallocates or removes the record.
type Ref{{.N}}[{{.Decl}}] struct {
{{- range .Fields}}
	V{{.I}} *T{{.I}}
{{- end}}
}

func shape{{.N}}[{{.Decl}}]() *layout.Shape {
	return layout.NewShape(
{{- range .Fields}}
		reflect.TypeFor[T{{.I}}](),
{{- end}}
	)
}

// Vec{{.N}} is a growable container of {{.N}}-field records in a structure-of-arrays
// layout: each field lives in its own contiguous column, all columns share
// one length and one capacity inside a single allocation.
type Vec{{.N}}[{{.Decl}}] struct {
	tab layout.Table
}

// NewVec{{.N}} constructs a new, empty Vec{{.N}}. It does not allocate until records
// are pushed onto it.
func NewVec{{.N}}[{{.Decl}}]() *Vec{{.N}}[{{.Params}}] {
	return &Vec{{.N}}[{{.Params}}]{tab: layout.NewTable(shape{{.N}}[{{.Params}}]())}
}

// NewVec{{.N}}WithCapacity constructs an empty Vec{{.N}} that holds capacity records
// without reallocating. A capacity of 0 allocates nothing.
func NewVec{{.N}}WithCapacity[{{.Decl}}](capacity int) *Vec{{.N}}[{{.Params}}] {
	return &Vec{{.N}}[{{.Params}}]{tab: layout.NewTableWithCapacity(shape{{.N}}[{{.Params}}](), capacity)}
}

// FromColumns{{.N}} builds a Vec{{.N}} by copying one ready-made column per field.
// The columns must all have the same length; otherwise ErrUnevenLengths is
// returned and nothing is copied or truncated.
func FromColumns{{.N}}[{{.Decl}}]({{range $i, $f := .Fields}}{{if $i}}, {{end}}c{{$f.I}} []T{{$f.I}}{{end}}) (*Vec{{.N}}[{{.Params}}], error) {
	n := len(c1)
{{- range .Fields}}{{if gt .I 1}}
	if len(c{{.I}}) != n {
		return nil, fmt.Errorf("%w: %d vs %d", ErrUnevenLengths, n, len(c{{.I}}))
	}
{{- end}}{{end}}
	v := NewVec{{.N}}WithCapacity[{{.Params}}](n)
	if n > 0 {
{{- range .Fields}}
		copy(unsafe.Slice((*T{{.I}})(v.tab.Base({{.Col}})), n), c{{.I}})
{{- end}}
		v.tab.SetLen(n)
	}
	return v, nil
}

// Collect{{.N}} builds a Vec{{.N}} from an ordered sequence of records.
func Collect{{.N}}[{{.Decl}}](seq iter.Seq[Record{{.N}}[{{.Params}}]]) *Vec{{.N}}[{{.Params}}] {
	v := NewVec{{.N}}[{{.Params}}]()
	v.Extend(seq)
	return v
}

// Len returns the number of records in the container.
func (v *Vec{{.N}}[{{.Params}}]) Len() int { return v.tab.Len() }

// Cap returns the number of records the container can hold without
// reallocating.
func (v *Vec{{.N}}[{{.Params}}]) Cap() int { return v.tab.Cap() }

// IsEmpty reports whether the container holds no records.
func (v *Vec{{.N}}[{{.Params}}]) IsEmpty() bool { return v.tab.Len() == 0 }

// Push appends one record.
func (v *Vec{{.N}}[{{.Params}}]) Push({{.ArgsDecl}}) {
	v.tab.Reserve(1)
	n := v.tab.Len()
{{- range .Fields}}
	*(*T{{.I}})(v.tab.Ptr({{.Col}}, n)) = v{{.I}}
{{- end}}
	v.tab.SetLen(n + 1)
}

// Pop removes and returns the last record. ok is false on an empty
// container.
func (v *Vec{{.N}}[{{.Params}}]) Pop() ({{.RetsDecl}}, ok bool) {
	n := v.tab.Len()
	if n == 0 {
		return {{.Rets}}, false
	}
{{- range .Fields}}
	r{{.I}} = *(*T{{.I}})(v.tab.Ptr({{.Col}}, n-1))
{{- end}}
	v.tab.SetLen(n - 1)
	v.tab.Zero(n-1, n)
	return {{.Rets}}, true
}

// Insert places a record at index i, shifting [i, len) one slot up.
// O(len-i). Panics when i is outside [0, len].
func (v *Vec{{.N}}[{{.Params}}]) Insert(i int, {{.ArgsDecl}}) {
	n := v.tab.Len()
	if i < 0 || i > n {
		panic(boundsMsg(i, n))
	}
	v.tab.Reserve(1)
	v.tab.ShiftRight(i)
{{- range .Fields}}
	*(*T{{.I}})(v.tab.Ptr({{.Col}}, i)) = v{{.I}}
{{- end}}
	v.tab.SetLen(n + 1)
}

// Remove takes out the record at index i, shifting [i+1, len) one slot
// down. O(len-i). ok is false when i is out of bounds; the container is
// unchanged in that case.
func (v *Vec{{.N}}[{{.Params}}]) Remove(i int) ({{.RetsDecl}}, ok bool) {
	n := v.tab.Len()
	if i < 0 || i >= n {
		return {{.Rets}}, false
	}
{{- range .Fields}}
	r{{.I}} = *(*T{{.I}})(v.tab.Ptr({{.Col}}, i))
{{- end}}
	v.tab.ShiftLeft(i)
	return {{.Rets}}, true
}

// SwapRemove takes out the record at index i and moves the last record into
// its place. O(1), does not preserve order. Panics when i is out of bounds.
func (v *Vec{{.N}}[{{.Params}}]) SwapRemove(i int) ({{.RetsDecl}}) {
	n := v.tab.Len()
	if i < 0 || i >= n {
		panic(boundsMsg(i, n))
	}
{{- range .Fields}}
	r{{.I}} = *(*T{{.I}})(v.tab.Ptr({{.Col}}, i))
{{- end}}
	v.tab.SwapRemove(i)
	return {{.Rets}}
}

// Truncate drops every record at index n and above. A n at or above the
// current length is a no-op. Capacity is unchanged.
func (v *Vec{{.N}}[{{.Params}}]) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	v.tab.Truncate(n)
}

// Clear drops all records, keeping the allocated capacity.
func (v *Vec{{.N}}[{{.Params}}]) Clear() { v.tab.Truncate(0) }

// Reserve ensures capacity for at least additional more records. Growth is
// deterministic: the new capacity is max(4, the next power of two at or
// above len+additional).
func (v *Vec{{.N}}[{{.Params}}]) Reserve(additional int) { v.tab.Reserve(additional) }

// ShrinkTo reduces the capacity to max(len, min). A min above the current
// capacity is a no-op.
func (v *Vec{{.N}}[{{.Params}}]) ShrinkTo(min int) { v.tab.ShrinkTo(min) }

// ShrinkToFit reduces the capacity to the current length.
func (v *Vec{{.N}}[{{.Params}}]) ShrinkToFit() { v.tab.ShrinkTo(v.tab.Len()) }

// Append moves all records of other onto the end of v, leaving other empty.
// Other's allocation is kept for reuse.
func (v *Vec{{.N}}[{{.Params}}]) Append(other *Vec{{.N}}[{{.Params}}]) { v.tab.AppendFrom(&other.tab) }

// Repeat returns a new container holding n consecutive copies of v's
// records, allocated at exactly n*len capacity. Copies are shallow.
func (v *Vec{{.N}}[{{.Params}}]) Repeat(n int) *Vec{{.N}}[{{.Params}}] {
	return &Vec{{.N}}[{{.Params}}]{tab: v.tab.Repeat(n)}
}

// Clone returns a shallow copy of the container at capacity len.
func (v *Vec{{.N}}[{{.Params}}]) Clone() *Vec{{.N}}[{{.Params}}] {
	return &Vec{{.N}}[{{.Params}}]{tab: v.tab.Clone()}
}

// Extend appends every record produced by seq, in order.
func (v *Vec{{.N}}[{{.Params}}]) Extend(seq iter.Seq[Record{{.N}}[{{.Params}}]]) {
	for r := range seq {
		v.Push({{.RecArgs}})
	}
}

// Get returns field pointers to the record at index i, or ok=false when i
// is out of bounds.
func (v *Vec{{.N}}[{{.Params}}]) Get(i int) (Ref{{.N}}[{{.Params}}], bool) { return v.Full().Get(i) }

// At returns field pointers to the record at index i. Panics when i is out
// of bounds.
func (v *Vec{{.N}}[{{.Params}}]) At(i int) Ref{{.N}}[{{.Params}}] { return v.Full().At(i) }

// Set overwrites the record at index i. Panics when i is out of bounds.
func (v *Vec{{.N}}[{{.Params}}]) Set(i int, {{.ArgsDecl}}) { v.Full().Set(i, {{.Args}}) }

// First returns the first record, or ok=false on an empty container.
func (v *Vec{{.N}}[{{.Params}}]) First() (Ref{{.N}}[{{.Params}}], bool) { return v.Get(0) }

// Last returns the last record, or ok=false on an empty container.
func (v *Vec{{.N}}[{{.Params}}]) Last() (Ref{{.N}}[{{.Params}}], bool) { return v.Get(v.tab.Len() - 1) }

// Columns returns one typed slice per field, each of length Len, aliasing
// the container's storage.
func (v *Vec{{.N}}[{{.Params}}]) Columns() ({{.Cols}}) { return v.Full().Columns() }

// Swap exchanges the records at indexes a and b. Panics when either index
// is out of bounds.
func (v *Vec{{.N}}[{{.Params}}]) Swap(a, b int) { v.Full().Swap(a, b) }

// SwapWith exchanges all records of v with those of other. Panics when the
// lengths differ.
func (v *Vec{{.N}}[{{.Params}}]) SwapWith(other *Vec{{.N}}[{{.Params}}]) { v.Full().SwapWith(other.Full()) }

// Reverse reverses the order of the records in place. O(len).
func (v *Vec{{.N}}[{{.Params}}]) Reverse() { v.Full().Reverse() }

// Fill overwrites every record with the given field values.
func (v *Vec{{.N}}[{{.Params}}]) Fill({{.ArgsDecl}}) { v.Full().Fill({{.Args}}) }

// FillWith overwrites every record with values produced by f.
func (v *Vec{{.N}}[{{.Params}}]) FillWith(f func() ({{.Params}})) { v.Full().FillWith(f) }

// SortFunc sorts the records by the comparison function. The sort is not
// stable.
func (v *Vec{{.N}}[{{.Params}}]) SortFunc(cmp func(a, b Ref{{.N}}[{{.Params}}]) int) { v.Full().SortFunc(cmp) }

// SortStableFunc sorts the records by the comparison function, keeping the
// original order of equal records.
func (v *Vec{{.N}}[{{.Params}}]) SortStableFunc(cmp func(a, b Ref{{.N}}[{{.Params}}]) int) {
	v.Full().SortStableFunc(cmp)
}

// Full returns a view over all records.
func (v *Vec{{.N}}[{{.Params}}]) Full() Slice{{.N}}[{{.Params}}] {
	return Slice{{.N}}[{{.Params}}]{block: v.tab.Snapshot(), n: v.tab.Len()}
}

// Slice returns a view over the records in [a, b). Panics unless
// 0 <= a <= b <= len.
func (v *Vec{{.N}}[{{.Params}}]) Slice(a, b int) Slice{{.N}}[{{.Params}}] { return v.Full().Slice(a, b) }

// SliceFrom returns a view over the records in [a, len).
func (v *Vec{{.N}}[{{.Params}}]) SliceFrom(a int) Slice{{.N}}[{{.Params}}] { return v.Full().SliceFrom(a) }

// SliceTo returns a view over the records in [0, b).
func (v *Vec{{.N}}[{{.Params}}]) SliceTo(b int) Slice{{.N}}[{{.Params}}] { return v.Full().SliceTo(b) }

// SliceInclusive returns a view over the records in [a, b].
func (v *Vec{{.N}}[{{.Params}}]) SliceInclusive(a, b int) Slice{{.N}}[{{.Params}}] {
	return v.Full().SliceInclusive(a, b)
}

// Iter returns a double-ended iterator over all records.
func (v *Vec{{.N}}[{{.Params}}]) Iter() *Iter{{.N}}[{{.Params}}] { return v.Full().Iter() }

// All returns an index/record sequence over all records,
// for use with range.
func (v *Vec{{.N}}[{{.Params}}]) All() iter.Seq2[int, Ref{{.N}}[{{.Params}}]] { return v.Full().All() }

// Backward returns an index/record sequence walking the records last to
// first.
func (v *Vec{{.N}}[{{.Params}}]) Backward() iter.Seq2[int, Ref{{.N}}[{{.Params}}]] { return v.Full().Backward() }

// Drain transfers ownership of the storage to an owning iterator and resets
// v to empty. The iterator releases the storage when closed or fully
// consumed.
func (v *Vec{{.N}}[{{.Params}}]) Drain() *Drain{{.N}}[{{.Params}}] {
	block, n := v.tab.Take()
	return &Drain{{.N}}[{{.Params}}]{block: block, tail: n}
}

// Filter returns a new container holding the records whose indexes are set
// in sel, in index order. Set bits at or above Len are ignored.
func (v *Vec{{.N}}[{{.Params}}]) Filter(sel *roaring.Bitmap) *Vec{{.N}}[{{.Params}}] {
	n := v.tab.Len()
	hint := int(sel.GetCardinality())
	if hint > n {
		hint = n
	}
	out := NewVec{{.N}}WithCapacity[{{.Params}}](hint)
	it := sel.Iterator()
	for it.HasNext() {
		i := int(it.Next())
		if i >= n {
			break
		}
		out.Push(
{{- range .Fields}}
			*(*T{{.I}})(v.tab.Ptr({{.Col}}, i)),
{{- end}}
		)
	}
	return out
}

// WriteSnapshot serializes the records to w in index order, one encoded
// record per element.
func (v *Vec{{.N}}[{{.Params}}]) WriteSnapshot(w io.Writer, opts ...snapshot.Option) (int64, error) {
	n := v.tab.Len()
	enc, err := snapshot.NewEncoder(w, {{.N}}, uint64(n), opts...)
	if err != nil {
		return 0, err
	}
	for i := 0; i < n; i++ {
		rec := Record{{.N}}[{{.Params}}]{
{{- range .Fields}}
			V{{.I}}: *(*T{{.I}})(v.tab.Ptr({{.Col}}, i)),
{{- end}}
		}
		if err := enc.Encode(rec); err != nil {
			return 0, err
		}
	}
	return enc.Close()
}

// ReadSnapshot reads records from r in order and appends them through the
// normal push path. On a decode error the records appended so far remain.
func (v *Vec{{.N}}[{{.Params}}]) ReadSnapshot(r io.Reader, opts ...snapshot.Option) error {
	dec, err := snapshot.NewDecoder(r, opts...)
	if err != nil {
		return err
	}
	if dec.Arity() != {{.N}} {
		return fmt.Errorf("%w: snapshot has %d fields, container has {{.N}}", snapshot.ErrArityMismatch, dec.Arity())
	}
	v.tab.Reserve(int(dec.Count()))
	for i := uint64(0); i < dec.Count(); i++ {
		var rec Record{{.N}}[{{.Params}}]
		if err := dec.Decode(&rec); err != nil {
			return err
		}
		v.Push({{.RecArgs}})
	}
	return nil
}

// Slice{{.N}}FromParts builds a view over records [off, off+n) of v's current
// storage without bounds validation. The caller must guarantee off >= 0,
// n >= 0 and off+n <= v.Len(); prefer Slice when the range is untrusted.
func Slice{{.N}}FromParts[{{.Decl}}](v *Vec{{.N}}[{{.Params}}], off, n int) Slice{{.N}}[{{.Params}}] {
	return Slice{{.N}}[{{.Params}}]{block: v.tab.Snapshot(), off: off, n: n}
}

// Slice{{.N}} is a non-owning view over a contiguous run of records of a Vec{{.N}}.
// Views never allocate or free; they alias (and keep alive) the storage of
// the container they were derived from. A view obtained before a container
// operation that reallocates keeps pointing at the old storage.
type Slice{{.N}}[{{.Decl}}] struct {
	block layout.Block
	off   int
	n     int
}

// Len returns the number of records in the view.
func (s Slice{{.N}}[{{.Params}}]) Len() int { return s.n }

// IsEmpty reports whether the view covers no records.
func (s Slice{{.N}}[{{.Params}}]) IsEmpty() bool { return s.n == 0 }

func (s Slice{{.N}}[{{.Params}}]) ref(i int) Ref{{.N}}[{{.Params}}] {
	return Ref{{.N}}[{{.Params}}]{
{{- range .Fields}}
		V{{.I}}: (*T{{.I}})(s.block.Ptr({{.Col}}, s.off+i)),
{{- end}}
	}
}

func (s Slice{{.N}}[{{.Params}}]) swap(a, b int) {
	pa, pb := s.ref(a), s.ref(b)
{{- range .Fields}}
	*pa.V{{.I}}, *pb.V{{.I}} = *pb.V{{.I}}, *pa.V{{.I}}
{{- end}}
}

// Get returns field pointers to the record at index i, or ok=false when i
// is out of bounds.
func (s Slice{{.N}}[{{.Params}}]) Get(i int) (Ref{{.N}}[{{.Params}}], bool) {
	if i < 0 || i >= s.n {
		return Ref{{.N}}[{{.Params}}]{}, false
	}
	return s.ref(i), true
}

// At returns field pointers to the record at index i. Panics when i is out
// of bounds.
func (s Slice{{.N}}[{{.Params}}]) At(i int) Ref{{.N}}[{{.Params}}] {
	if i < 0 || i >= s.n {
		panic(boundsMsg(i, s.n))
	}
	return s.ref(i)
}

// Set overwrites the record at index i. Panics when i is out of bounds.
func (s Slice{{.N}}[{{.Params}}]) Set(i int, {{.ArgsDecl}}) {
	r := s.At(i)
{{- range .Fields}}
	*r.V{{.I}} = v{{.I}}
{{- end}}
}

// First returns the first record of the view, or ok=false when it is empty.
func (s Slice{{.N}}[{{.Params}}]) First() (Ref{{.N}}[{{.Params}}], bool) { return s.Get(0) }

// Last returns the last record of the view, or ok=false when it is empty.
func (s Slice{{.N}}[{{.Params}}]) Last() (Ref{{.N}}[{{.Params}}], bool) { return s.Get(s.n - 1) }

// Columns returns one typed slice per field, each of length Len, aliasing
// the viewed storage.
func (s Slice{{.N}}[{{.Params}}]) Columns() ({{.Cols}}) {
	return {{range $i, $f := .Fields}}{{if $i}},
		{{end}}unsafe.Slice((*T{{$f.I}})(s.block.Ptr({{$f.Col}}, s.off)), s.n){{end}}
}

// Slice returns the sub-view [a, b). Panics unless 0 <= a <= b <= len.
func (s Slice{{.N}}[{{.Params}}]) Slice(a, b int) Slice{{.N}}[{{.Params}}] {
	if a < 0 || b < a || b > s.n {
		panic(rangeMsg(a, b, s.n))
	}
	return Slice{{.N}}[{{.Params}}]{block: s.block, off: s.off + a, n: b - a}
}

// SliceFrom returns the sub-view [a, len).
func (s Slice{{.N}}[{{.Params}}]) SliceFrom(a int) Slice{{.N}}[{{.Params}}] { return s.Slice(a, s.n) }

// SliceTo returns the sub-view [0, b).
func (s Slice{{.N}}[{{.Params}}]) SliceTo(b int) Slice{{.N}}[{{.Params}}] { return s.Slice(0, b) }

// SliceInclusive returns the sub-view [a, b].
func (s Slice{{.N}}[{{.Params}}]) SliceInclusive(a, b int) Slice{{.N}}[{{.Params}}] { return s.Slice(a, b+1) }

// Swap exchanges the records at indexes a and b. Swapping an index with
// itself is a no-op. Panics when either index is out of bounds.
func (s Slice{{.N}}[{{.Params}}]) Swap(a, b int) {
	if a < 0 || a >= s.n {
		panic(boundsMsg(a, s.n))
	}
	if b < 0 || b >= s.n {
		panic(boundsMsg(b, s.n))
	}
	if a == b {
		return
	}
	s.swap(a, b)
}

// SwapWith exchanges all records of s with those of other. Panics when the
// lengths differ.
func (s Slice{{.N}}[{{.Params}}]) SwapWith(other Slice{{.N}}[{{.Params}}]) {
	if other.n != s.n {
		panic(fmt.Sprintf("soavec: swap with mismatched lengths: %d vs %d", s.n, other.n))
	}
	for i := 0; i < s.n; i++ {
		a, b := s.ref(i), other.ref(i)
{{- range .Fields}}
		*a.V{{.I}}, *b.V{{.I}} = *b.V{{.I}}, *a.V{{.I}}
{{- end}}
	}
}

// Reverse reverses the order of the records in place. O(len).
func (s Slice{{.N}}[{{.Params}}]) Reverse() {
	for i, j := 0, s.n-1; i < j; i, j = i+1, j-1 {
		s.swap(i, j)
	}
}

// Fill overwrites every record in the view with the given field values.
func (s Slice{{.N}}[{{.Params}}]) Fill({{.ArgsDecl}}) {
	s.FillWith(func() ({{.Params}}) { return {{.Args}} })
}

// FillWith overwrites every record in the view with values produced by f.
func (s Slice{{.N}}[{{.Params}}]) FillWith(f func() ({{.Params}})) {
	for i := 0; i < s.n; i++ {
		r := s.ref(i)
		{{.Derefs}} = f()
	}
}

// SortFunc sorts the records by the comparison function. The sort is not
// stable.
func (s Slice{{.N}}[{{.Params}}]) SortFunc(cmp func(a, b Ref{{.N}}[{{.Params}}]) int) {
	s.sortFunc(cmp, false)
}

// SortStableFunc sorts the records by the comparison function, keeping the
// original order of equal records.
func (s Slice{{.N}}[{{.Params}}]) SortStableFunc(cmp func(a, b Ref{{.N}}[{{.Params}}]) int) {
	s.sortFunc(cmp, true)
}

// sortFunc sorts an index permutation (the comparator only ever observes
// records, it never moves them), then applies the permutation to the
// columns in one swap pass.
func (s Slice{{.N}}[{{.Params}}]) sortFunc(cmp func(a, b Ref{{.N}}[{{.Params}}]) int, stable bool) {
	perm := make([]int, s.n)
	for i := range perm {
		perm[i] = i
	}
	less := func(a, b int) bool { return cmp(s.ref(perm[a]), s.ref(perm[b])) < 0 }
	if stable {
		sort.SliceStable(perm, less)
	} else {
		sort.Slice(perm, less)
	}
	s.applyPermutation(perm)
}

// applyPermutation reorders the records so record perm[i] ends up at
// position i, walking each cycle once with at most len record swaps.
// Consumes perm.
func (s Slice{{.N}}[{{.Params}}]) applyPermutation(perm []int) {
	for i := range perm {
		if perm[i] == i {
			continue
		}
		j := i
		for {
			k := perm[j]
			perm[j] = j
			if k == i {
				break
			}
			s.swap(j, k)
			j = k
		}
	}
}

// Iter returns a double-ended iterator over the view.
func (s Slice{{.N}}[{{.Params}}]) Iter() *Iter{{.N}}[{{.Params}}] {
	return &Iter{{.N}}[{{.Params}}]{s: s, tail: s.n}
}

// All returns an index/record sequence over the view, for use with range.
func (s Slice{{.N}}[{{.Params}}]) All() iter.Seq2[int, Ref{{.N}}[{{.Params}}]] {
	return func(yield func(int, Ref{{.N}}[{{.Params}}]) bool) {
		for i := 0; i < s.n; i++ {
			if !yield(i, s.ref(i)) {
				return
			}
		}
	}
}

// Backward returns an index/record sequence walking the view last to first.
func (s Slice{{.N}}[{{.Params}}]) Backward() iter.Seq2[int, Ref{{.N}}[{{.Params}}]] {
	return func(yield func(int, Ref{{.N}}[{{.Params}}]) bool) {
		for i := s.n - 1; i >= 0; i-- {
			if !yield(i, s.ref(i)) {
				return
			}
		}
	}
}

// SortByKey{{.N}} sorts the view by a key derived from each record. The sort is
// not stable.
func SortByKey{{.N}}[{{.Decl}}, K cmp.Ordered](s Slice{{.N}}[{{.Params}}], key func(Ref{{.N}}[{{.Params}}]) K) {
	s.SortFunc(func(a, b Ref{{.N}}[{{.Params}}]) int { return cmp.Compare(key(a), key(b)) })
}

// SortStableByKey{{.N}} sorts the view by a key derived from each record,
// keeping the original order of equal records.
func SortStableByKey{{.N}}[{{.Decl}}, K cmp.Ordered](s Slice{{.N}}[{{.Params}}], key func(Ref{{.N}}[{{.Params}}]) K) {
	s.SortStableFunc(func(a, b Ref{{.N}}[{{.Params}}]) int { return cmp.Compare(key(a), key(b)) })
}

// Iter{{.N}} is a double-ended, exact-size iterator over a view. Both ends
// advance toward each other; the iterator is exhausted when they meet.
// Restarting means creating a new iterator.
type Iter{{.N}}[{{.Decl}}] struct {
	s    Slice{{.N}}[{{.Params}}]
	head int
	tail int
}

// Len returns the number of records not yet yielded.
func (it *Iter{{.N}}[{{.Params}}]) Len() int { return it.tail - it.head }

// Next yields the next record from the front.
func (it *Iter{{.N}}[{{.Params}}]) Next() (Ref{{.N}}[{{.Params}}], bool) {
	if it.head >= it.tail {
		return Ref{{.N}}[{{.Params}}]{}, false
	}
	r := it.s.ref(it.head)
	it.head++
	return r, true
}

// NextBack yields the next record from the back.
func (it *Iter{{.N}}[{{.Params}}]) NextBack() (Ref{{.N}}[{{.Params}}], bool) {
	if it.head >= it.tail {
		return Ref{{.N}}[{{.Params}}]{}, false
	}
	it.tail--
	return it.s.ref(it.tail), true
}

// Drain{{.N}} is an owning iterator over a Vec{{.N}}'s records. It holds the
// container's storage and must be closed: Close drops all unconsumed
// records and releases the storage, exactly once. All does this
// automatically, even when the range loop stops early.
type Drain{{.N}}[{{.Decl}}] struct {
	block  layout.Block
	head   int
	tail   int
	closed bool
}

// Len returns the number of records not yet consumed.
func (d *Drain{{.N}}[{{.Params}}]) Len() int { return d.tail - d.head }

// Next moves the next record out from the front.
func (d *Drain{{.N}}[{{.Params}}]) Next() ({{.RetsDecl}}, ok bool) {
	if d.closed || d.head >= d.tail {
		return {{.Rets}}, false
	}
{{- range .Fields}}
	p{{.I}} := (*T{{.I}})(d.block.Ptr({{.Col}}, d.head))
{{- end}}
	{{.Rets}} = {{.PDerefs}}
{{- range .Fields}}
	var z{{.I}} T{{.I}}
{{- end}}
	{{.PDerefs}} = {{.Zs}}
	d.head++
	return {{.Rets}}, true
}

// NextBack moves the next record out from the back.
func (d *Drain{{.N}}[{{.Params}}]) NextBack() ({{.RetsDecl}}, ok bool) {
	if d.closed || d.head >= d.tail {
		return {{.Rets}}, false
	}
	d.tail--
{{- range .Fields}}
	p{{.I}} := (*T{{.I}})(d.block.Ptr({{.Col}}, d.tail))
{{- end}}
	{{.Rets}} = {{.PDerefs}}
{{- range .Fields}}
	var z{{.I}} T{{.I}}
{{- end}}
	{{.PDerefs}} = {{.Zs}}
	return {{.Rets}}, true
}

// All returns a record sequence that consumes the iterator and closes it
// when the loop finishes or stops early.
func (d *Drain{{.N}}[{{.Params}}]) All() iter.Seq[Record{{.N}}[{{.Params}}]] {
	return func(yield func(Record{{.N}}[{{.Params}}]) bool) {
		defer d.Close()
		for {
			{{.Args}}, ok := d.Next()
			if !ok {
				return
			}
			if !yield(Record{{.N}}[{{.Params}}]{ {{- .RecLit -}} }) {
				return
			}
		}
	}
}

// Close drops all unconsumed records and releases the storage. Closing an
// already-closed iterator is a no-op.
func (d *Drain{{.N}}[{{.Params}}]) Close() {
	if d.closed {
		return
	}
	d.closed = true
	d.block.Zero(d.head, d.tail)
	d.block.Release()
}
`
