// SPDX-License-Identifier: MIT

// Package matrix - Block[T]: the typed, single-owner matrix handle.
//
// Purpose:
//   - Typed row access through the row table (rows[i][j]).
//   - Safe accessors at the public surface: errors instead of panics.
//   - Exactly-once release with move-only ownership.
//
// Complexity quicksheet:
//   - New: O(rows) + allocation; Row/At/Set: O(1); Clone/String/Fill: O(rows*cols).

package matrix

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/katalvlaran/blockmat/layout"
)

// ---------- error context tags ----------

const (
	ctxNew   = "New"
	ctxRow   = "Row"
	ctxAt    = "At"
	ctxSet   = "Set"
	ctxIndex = "Index"
	ctxCoord = "Coord"
	ctxAdopt = "Adopt"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
	_fmtInvalid  = "matrix.Block(invalid)"
)

// blockErrorf wraps a sentinel with method context and coordinates.
func blockErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("Block.%s(%d,%d): %w", method, i, j, err)
}

// Block is a rows×cols row-major matrix of T stored in one Region.
// The zero value is an empty handle; use New.
type Block[T Element] struct {
	_ noCopy

	reg *Region
}

// New allocates a zeroed rows×cols Block of T.
// MAIN DESCRIPTION:
//   - Typed allocate: element size and alignment come from T.
//
// Implementation:
//   - Stage 1: resolve options.
//   - Stage 2: newRegion(rows, cols, sizeof(T), alignof(T)).
//
// Errors:
//   - ErrInvalidDimensions, ErrSizeOverflow, ErrOutOfMemory, ErrBadAllocation.
//
// Complexity:
//   - Time O(rows) + allocation, Space O(TotalBytes).
//
// AI-Hints:
//   - Always pair with `defer b.Release()`.
func New[T Element](rows, cols int, opts ...Option) (*Block[T], error) {
	var zero T
	reg, err := newRegion(rows, cols, unsafe.Sizeof(zero), unsafe.Alignof(zero), gatherOptions(opts...))
	if err != nil {
		return nil, fmt.Errorf("matrix.%s: %w", ctxNew, err)
	}

	return &Block[T]{reg: reg}, nil
}

// Adopt takes ownership of r as a Block of T. r is emptied on success.
// The region's element size and alignment must match T.
//
// Errors:
//   - ErrInvalidHandle for an empty region, ErrInvalidElement on a geometry mismatch.
func Adopt[T Element](r *Region) (*Block[T], error) {
	if err := r.live(); err != nil {
		return nil, fmt.Errorf("matrix.%s: %w", ctxAdopt, err)
	}
	var zero T
	if r.plan.ElemSize != unsafe.Sizeof(zero) || r.plan.ElemAlign != unsafe.Alignof(zero) {
		return nil, fmt.Errorf("matrix.%s: region elem=%d/%d, type elem=%d/%d: %w",
			ctxAdopt, r.plan.ElemSize, r.plan.ElemAlign,
			unsafe.Sizeof(zero), unsafe.Alignof(zero), ErrInvalidElement)
	}

	return &Block[T]{reg: r.Move()}, nil
}

// region returns the live Region or the sentinel explaining why there is none.
func (b *Block[T]) region() (*Region, error) {
	if b == nil {
		return nil, ErrNilBlock
	}
	if !b.reg.Valid() {
		return nil, ErrInvalidHandle
	}

	return b.reg, nil
}

// Valid reports whether b owns an allocation.
func (b *Block[T]) Valid() bool { return b != nil && b.reg.Valid() }

// Rows returns the row count, or 0 for an empty handle. Complexity: O(1).
func (b *Block[T]) Rows() int {
	if !b.Valid() {
		return 0
	}

	return b.reg.plan.Rows
}

// Cols returns the column count, or 0 for an empty handle. Complexity: O(1).
func (b *Block[T]) Cols() int {
	if !b.Valid() {
		return 0
	}

	return b.reg.plan.Cols
}

// Shape returns (rows, cols) or ErrInvalidHandle.
func (b *Block[T]) Shape() (rows, cols int, err error) {
	reg, err := b.region()
	if err != nil {
		return 0, 0, fmt.Errorf("Block.Shape: %w", err)
	}

	return reg.plan.Rows, reg.plan.Cols, nil
}

// Plan returns the byte layout of the block.
func (b *Block[T]) Plan() (layout.Plan, error) {
	reg, err := b.region()
	if err != nil {
		return layout.Plan{}, fmt.Errorf("Block.Plan: %w", err)
	}

	return reg.plan, nil
}

// row builds the typed row slice from the table entry. reg live, i valid.
func row[T Element](reg *Region, i int) []T {
	return unsafe.Slice((*T)(reg.rowPointer(i)), reg.plan.Cols)
}

// Row returns row i as a slice of length Cols aliasing the block.
// MAIN DESCRIPTION:
//   - rows[i]: read the row table entry, view Cols elements from there.
//
// Behavior highlights:
//   - Writes through the slice are visible through At, the flat view and other rows' neighbors.
//   - The slice must not be used after Release or Move.
//
// Errors:
//   - ErrInvalidHandle, ErrIndexOutOfRange.
//
// Complexity:
//   - Time O(1), Space O(1).
func (b *Block[T]) Row(i int) ([]T, error) {
	reg, err := b.region()
	if err != nil {
		return nil, blockErrorf(ctxRow, i, 0, err)
	}
	if err = validateRow(&reg.plan, i); err != nil {
		return nil, blockErrorf(ctxRow, i, 0, err)
	}

	return row[T](reg, i), nil
}

// At returns the element at (i, j).
// Errors: ErrInvalidHandle, ErrIndexOutOfRange. Complexity: O(1).
func (b *Block[T]) At(i, j int) (T, error) {
	var zero T
	reg, err := b.region()
	if err != nil {
		return zero, blockErrorf(ctxAt, i, j, err)
	}
	if err = validateCoord(&reg.plan, i, j); err != nil {
		return zero, blockErrorf(ctxAt, i, j, err)
	}

	return row[T](reg, i)[j], nil
}

// Set stores v at (i, j).
// Errors: ErrInvalidHandle, ErrIndexOutOfRange. Complexity: O(1).
func (b *Block[T]) Set(i, j int, v T) error {
	reg, err := b.region()
	if err != nil {
		return blockErrorf(ctxSet, i, j, err)
	}
	if err = validateCoord(&reg.plan, i, j); err != nil {
		return blockErrorf(ctxSet, i, j, err)
	}
	row[T](reg, i)[j] = v

	return nil
}

// Index maps a valid (i, j) to its linear row-major index.
func (b *Block[T]) Index(i, j int) (int, error) {
	reg, err := b.region()
	if err != nil {
		return 0, blockErrorf(ctxIndex, i, j, err)
	}
	if err = validateCoord(&reg.plan, i, j); err != nil {
		return 0, blockErrorf(ctxIndex, i, j, err)
	}

	return CoordToIndex(i, j, reg.plan.Cols), nil
}

// Coord maps a valid linear index k to its (i, j) coordinate.
func (b *Block[T]) Coord(k int) (i, j int, err error) {
	reg, err := b.region()
	if err != nil {
		return 0, 0, fmt.Errorf("Block.%s(%d): %w", ctxCoord, k, err)
	}
	if err = validateIndex(&reg.plan, k); err != nil {
		return 0, 0, fmt.Errorf("Block.%s(%d): %w", ctxCoord, k, err)
	}
	i, j = IndexToCoord(k, reg.plan.Cols)

	return i, j, nil
}

// Clone allocates an independent copy with the same shape and contents.
// Without options the copy uses the source's allocator, logger and label.
// Complexity: O(rows*cols).
func (b *Block[T]) Clone(opts ...Option) (*Block[T], error) {
	reg, err := b.region()
	if err != nil {
		return nil, fmt.Errorf("Block.Clone: %w", err)
	}

	base := []Option{WithAllocator(reg.alloc), WithLogger(reg.logger), WithLabel(reg.label)}
	cp, err := New[T](reg.plan.Rows, reg.plan.Cols, append(base, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("Block.Clone: %w", err)
	}
	copy(flat[T](cp.reg), flat[T](reg))

	return cp, nil
}

// String renders one bracketed line per row, e.g. "[0, 1]\n[10, 11]\n".
// An empty handle renders as "matrix.Block(invalid)".
// Complexity: O(rows*cols).
func (b *Block[T]) String() string {
	reg, err := b.region()
	if err != nil {
		return _fmtInvalid
	}

	var sb strings.Builder
	for i := 0; i < reg.plan.Rows; i++ {
		sb.WriteString(_fmtRowOpen)
		for j, v := range row[T](reg, i) {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprint(&sb, v)
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// Release frees the allocation exactly once; later calls are no-ops.
// Any accessor afterwards returns ErrInvalidHandle.
func (b *Block[T]) Release() error {
	if b == nil {
		return nil
	}

	return b.reg.Release()
}

// Move transfers ownership to a new Block and empties b.
// Moving an empty handle yields an empty handle. Complexity: O(1).
func (b *Block[T]) Move() *Block[T] {
	if b == nil {
		return &Block[T]{}
	}

	return &Block[T]{reg: b.reg.Move()}
}
