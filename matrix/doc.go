// Package matrix builds row-major matrices inside a single contiguous allocation.
//
// One block holds a row table, alignment padding and the element data:
//
//	[ row table : rows words ][ padding ][ data : rows*cols elements, row-major ]
//
// The row table stores, for each row i, the byte offset of that row inside the
// block (DataOffset + i*cols*sizeof(T)). Offsets rather than addresses are
// stored, so nothing in the block can dangle.
//
// The package provides:
//
//   - NewRegion: untyped allocation for a given element size and alignment.
//   - New[T] / Block[T]: the typed, single-owner handle with Row, At, Set,
//     Release and Move.
//   - AsFlat / FlatView[T]: the same data segment as one linear sequence,
//     plus IndexToCoord and CoordToIndex.
//
// Ownership: a handle owns exactly one allocation. Release is idempotent and
// returns the memory to its allocator exactly once; callers normally write
// `defer b.Release()`. Move transfers ownership and empties the source. Any
// accessor on an empty handle returns ErrInvalidHandle.
//
// Handles are not synchronized. Callers sharing a handle across goroutines
// must add their own locking.
//
// See the examples in this package for usage patterns.
package matrix
