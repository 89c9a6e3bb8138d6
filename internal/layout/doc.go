// Package layout implements the combined-allocation storage model that backs
// every soavec container: one heap block holding a fixed-capacity array per
// field of a record shape, with per-field alignment handled by the runtime.
//
// The block is allocated as a single runtime-built struct
// (struct{ F0 [C]T0; F1 [C]T1; ... }) so the garbage collector scans
// pointer-bearing columns precisely. Releasing the sole reference to the
// block is deallocation; Zero is the drop primitive that clears vacated
// record slots so removed records release their referents immediately.
//
// # Concurrency Model
//
// Shapes are immutable and safe for concurrent use. Blocks and Tables carry
// no synchronization: concurrent readers are safe, writes require external
// synchronization (typically "don't" - the containers are single-threaded
// by contract).
//
// Everything in this package is an unchecked primitive layer. Callers (the
// generated typed containers) validate bounds exactly once per operation;
// passing an out-of-range index or a foreign block here is a programming
// error with undefined results.
package layout
