// Package soavec provides growable record containers with a structure-of-
// arrays (columnar) memory layout.
//
// A VecN behaves like a vector of N-field records, but each field lives in
// its own contiguous column so an operation only touches the columns it
// needs, improving cache utilization on wide records. Unlike a struct of N
// slices, one length and one capacity govern all columns and every resize
// makes exactly one allocation, so growth is all-or-nothing across fields.
//
//	// Some 'entity' data.
//	type Position struct{ X, Y float64 }
//	type Velocity struct{ DX, DY float64 }
//	type ColdData struct{ /* many fields omitted */ }
//
//	entities := soavec.NewVec3[Position, Velocity, ColdData]()
//	entities.Push(Position{1, 2}, Velocity{0, 0.5}, ColdData{})
//	entities.Push(Position{0, 2}, Velocity{0.5, 0.5}, ColdData{})
//
//	// Only the position and velocity columns are loaded here; the cold
//	// column is never touched.
//	for _, r := range entities.All() {
//		r.V1.X += r.V2.DX
//		r.V1.Y += r.V2.DY
//	}
//
//	entities.SwapRemove(0)
//
// # Containers, views and iterators
//
// VecN owns its storage. SliceN is a non-owning window over a run of records,
// created by Full, Slice, SliceFrom, SliceTo or SliceInclusive; all in-place
// operations (Swap, Reverse, Fill, the sort family) are implemented on the
// view, and the container delegates to its full view. IterN walks a view from
// either end; Drain transfers ownership of the storage to an owning iterator
// that releases it when closed.
//
// A view or iterator pins the block it was created over. Container operations
// that reallocate (Push past capacity, Reserve, ShrinkTo, ...) leave old
// views pointing at the old block: memory-safe in Go, but the view no longer
// observes the container. Do not hold views across mutating calls.
//
// # Arities
//
// The per-arity API (Vec2 through Vec4) is generated from one template by
// cmd/soavec-gen; run `go generate ./...` after raising the -max arity to
// emit more. All arity-independent storage logic lives in internal/layout.
//
// # Concurrency
//
// Containers are single-threaded by contract: no internal locking, no
// atomics. Any number of concurrent readers is safe; a writer requires
// exclusive access.
//
// # Errors
//
// Out-of-range indexes on the panicking accessors and capacity arithmetic
// overflow panic with a descriptive message; use the checked Get/Remove
// forms when an index is untrusted. Allocation failure is fatal. The one
// recoverable error in the core is ErrUnevenLengths from the FromColumnsN
// constructors, because uneven input columns come from the outside world.
package soavec
