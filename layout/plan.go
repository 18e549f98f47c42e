// SPDX-License-Identifier: MIT

package layout

import (
	"fmt"
	"unsafe"

	"github.com/katalvlaran/blockmat/checked"
)

// Row table word geometry. Entries are stored as uintptr, so they have the
// size and alignment of a pointer on every supported platform.
const (
	PointerSize  = unsafe.Sizeof(uintptr(0))
	PointerAlign = unsafe.Alignof(uintptr(0))
)

// Plan describes the segments of one matrix block. All sizes are in bytes.
// A Plan returned by New always satisfies:
//   - (RowTableBytes + PaddingBytes) % ElemAlign == 0
//   - TotalBytes == RowTableBytes + PaddingBytes + DataBytes
type Plan struct {
	Rows, Cols int // strictly positive dimensions

	ElemSize  uintptr // size of one element
	ElemAlign uintptr // alignment of one element (power of two)
	ElemCount uintptr // Rows*Cols

	RowTableBytes uintptr // Rows * PointerSize
	PaddingBytes  uintptr // gap before the data segment, < ElemAlign
	DataBytes     uintptr // ElemCount * ElemSize
	TotalBytes    uintptr // sum of the three segments
}

// New computes the layout for a rows×cols matrix of elements with the given size and alignment.
// MAIN DESCRIPTION:
//   - plan_layout: row table, padding, data and total sizes, or a sentinel error.
//
// Implementation:
//   - Stage 1: validate dimensions and element geometry.
//   - Stage 2: rowTable = rows*PointerSize, count = rows*cols, data = count*elemSize (checked).
//   - Stage 3: padding = (align - rowTable%align) % align.
//   - Stage 4: total = rowTable + padding + data (checked).
//
// Errors:
//   - ErrInvalidDimensions: rows <= 0 or cols <= 0.
//   - ErrInvalidElement: elemSize == 0 or elemAlign not a power of two.
//   - ErrSizeOverflow (also matching checked.ErrOverflow): any intermediate overflow.
//
// Complexity:
//   - Time O(1), Space O(1).
func New(rows, cols int, elemSize, elemAlign uintptr) (Plan, error) {
	if rows <= 0 || cols <= 0 {
		return Plan{}, fmt.Errorf("layout.New(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	if elemSize == 0 || !checked.IsPowerOfTwo(elemAlign) {
		return Plan{}, fmt.Errorf("layout.New: size=%d align=%d: %w", elemSize, elemAlign, ErrInvalidElement)
	}

	r, c := uintptr(rows), uintptr(cols)

	rowTable, err := checked.Mul(r, PointerSize)
	if err != nil {
		return Plan{}, overflow("row table", err)
	}
	count, err := checked.Mul(r, c)
	if err != nil {
		return Plan{}, overflow("element count", err)
	}
	data, err := checked.Mul(count, elemSize)
	if err != nil {
		return Plan{}, overflow("data", err)
	}

	var padding uintptr
	if mis := rowTable % elemAlign; mis != 0 {
		padding = elemAlign - mis
	}

	header, err := checked.Add(rowTable, padding)
	if err != nil {
		return Plan{}, overflow("header", err)
	}
	total, err := checked.Add(header, data)
	if err != nil {
		return Plan{}, overflow("total", err)
	}

	return Plan{
		Rows:          rows,
		Cols:          cols,
		ElemSize:      elemSize,
		ElemAlign:     elemAlign,
		ElemCount:     count,
		RowTableBytes: rowTable,
		PaddingBytes:  padding,
		DataBytes:     data,
		TotalBytes:    total,
	}, nil
}

// For plans a rows×cols matrix of T.
func For[T any](rows, cols int) (Plan, error) {
	var zero T
	return New(rows, cols, unsafe.Sizeof(zero), unsafe.Alignof(zero))
}

func overflow(what string, err error) error {
	return fmt.Errorf("layout.New: %s: %w: %w", what, ErrSizeOverflow, err)
}

// DataOffset is the byte offset of the data segment from the block base.
func (p Plan) DataOffset() uintptr { return p.RowTableBytes + p.PaddingBytes }

// RowStride is the byte length of one row.
func (p Plan) RowStride() uintptr { return uintptr(p.Cols) * p.ElemSize }

// RowOffset is the byte offset of row i from the block base. i is not bounds-checked.
func (p Plan) RowOffset(i int) uintptr { return p.DataOffset() + uintptr(i)*p.RowStride() }

// BaseAlign is the alignment the whole block must satisfy: the larger of the
// row-table word alignment and the element alignment. Since DataOffset is a
// multiple of ElemAlign, an aligned base yields an aligned data segment.
func (p Plan) BaseAlign() uintptr { return max(PointerAlign, p.ElemAlign) }

// String renders the segment sizes for diagnostics.
func (p Plan) String() string {
	return fmt.Sprintf("%dx%d elem=%d/%d table=%d pad=%d data=%d total=%d",
		p.Rows, p.Cols, p.ElemSize, p.ElemAlign,
		p.RowTableBytes, p.PaddingBytes, p.DataBytes, p.TotalBytes)
}
