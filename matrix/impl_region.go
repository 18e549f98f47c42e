// SPDX-License-Identifier: MIT

// Package matrix - Region: the untyped owner of one block allocation.
//
// Purpose:
//   - Run the layout plan, perform the single raw allocation and fill the row table.
//   - Own the buffer: release it exactly once, on Release. A Region the program
//     drops without Release is reported at WARN, never released behind its back.
//
// AI-Hints:
//   - Prefer New[T] for typed access; NewRegion is for callers that only know
//     the element size and alignment at run time.

package matrix

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"unsafe"

	"github.com/katalvlaran/blockmat/layout"
	"github.com/katalvlaran/blockmat/rawalloc"
)

// ---------- error context tags ----------

const (
	ctxNewRegion = "NewRegion"
	ctxRowBytes  = "RowBytes"
	ctxRowOffset = "RowOffset"
)

// Region owns one block: row table, padding and data segment.
// The zero value is an empty handle.
type Region struct {
	_ noCopy

	buf     []byte             // exactly plan.TotalBytes, as returned by alloc
	plan    layout.Plan        // immutable once allocated
	alloc   rawalloc.Allocator // receives buf on Release
	logger  *slog.Logger
	label   string
	cleanup runtime.Cleanup // reports the Region if it is dropped unreleased
}

// leak is the state the leak report needs. It holds no reference to the
// buffer, so borrowed slices alone decide when heap memory becomes garbage.
type leak struct {
	logger *slog.Logger
	label  string
	bytes  uintptr
}

// NewRegion allocates a rows×cols block for elements of the given size and alignment.
// MAIN DESCRIPTION:
//   - allocate: plan, one raw allocation, row table fill-in, ownership.
//
// Implementation:
//   - Stage 1: layout.New (dimension, element and overflow checks).
//   - Stage 2: Allocate(TotalBytes, BaseAlign) on the configured allocator.
//   - Stage 3: verify length/alignment; on violation release the buffer first.
//   - Stage 4: row table entry i = DataOffset + i*RowStride.
//   - Stage 5: register the leak report and return the owning handle.
//
// Errors:
//   - ErrInvalidDimensions, ErrInvalidElement, ErrSizeOverflow (from layout).
//   - ErrOutOfMemory when the allocator fails (the backend cause stays wrapped).
//   - ErrBadAllocation when the allocator broke its contract.
//
// Complexity:
//   - Time O(rows) for the table plus the allocator's cost, Space O(TotalBytes).
func NewRegion(rows, cols int, elemSize, elemAlign uintptr, opts ...Option) (*Region, error) {
	return newRegion(rows, cols, elemSize, elemAlign, gatherOptions(opts...))
}

func newRegion(rows, cols int, elemSize, elemAlign uintptr, o Options) (*Region, error) {
	plan, err := layout.New(rows, cols, elemSize, elemAlign)
	if err != nil {
		return nil, fmt.Errorf("matrix.%s: %w", ctxNewRegion, err)
	}

	buf, err := o.alloc.Allocate(plan.TotalBytes, plan.BaseAlign())
	if err != nil {
		if !errors.Is(err, ErrOutOfMemory) {
			err = fmt.Errorf("%w: %w", ErrOutOfMemory, err)
		}
		return nil, fmt.Errorf("matrix.%s(%d,%d): %w", ctxNewRegion, rows, cols, err)
	}

	// Nothing may leak past this point: a broken buffer goes back before we fail.
	if uintptr(len(buf)) != plan.TotalBytes || !rawalloc.IsAligned(buf, plan.BaseAlign()) {
		relErr := o.alloc.Release(buf)
		return nil, errors.Join(
			fmt.Errorf("matrix.%s(%d,%d): len=%d align=%d: %w",
				ctxNewRegion, rows, cols, len(buf), plan.BaseAlign(), ErrBadAllocation),
			relErr,
		)
	}

	for i := 0; i < rows; i++ {
		putWord(buf, uintptr(i)*layout.PointerSize, plan.RowOffset(i))
	}

	r := &Region{
		buf:    buf,
		plan:   plan,
		alloc:  o.alloc,
		logger: o.logger,
		label:  o.label,
	}
	r.arm()

	o.logger.Debug("matrix: region allocated",
		slog.String("label", o.label),
		slog.Int("rows", rows),
		slog.Int("cols", cols),
		slog.Uint64("padding", uint64(plan.PaddingBytes)),
		slog.Uint64("total", uint64(plan.TotalBytes)),
	)

	return r, nil
}

// arm registers the report for a Region dropped without Release.
func (r *Region) arm() {
	r.cleanup = runtime.AddCleanup(r, reportLeaked, leak{
		logger: r.logger,
		label:  r.label,
		bytes:  r.plan.TotalBytes,
	})
}

// reportLeaked runs on the cleanup goroutine. It never releases the buffer:
// slices from Row, AsFlat or RowBytes may still be in use and do not keep the
// Region reachable. Heap memory is collected with its last slice; mapped
// memory stays mapped.
func reportLeaked(l leak) {
	l.logger.Warn("matrix: region dropped without Release",
		slog.String("label", l.label),
		slog.Uint64("bytes", uint64(l.bytes)),
	)
}

// putWord stores v as a machine word at byte offset off. off must be a
// multiple of layout.PointerSize inside a PointerAlign-aligned buffer.
func putWord(buf []byte, off, v uintptr) {
	*(*uintptr)(unsafe.Pointer(&buf[off])) = v
}

// word loads the machine word at byte offset off.
func word(buf []byte, off uintptr) uintptr {
	return *(*uintptr)(unsafe.Pointer(&buf[off]))
}

// Valid reports whether r currently owns an allocation.
func (r *Region) Valid() bool { return r != nil && r.buf != nil }

// live returns r or the sentinel explaining why it cannot be used.
func (r *Region) live() error {
	if r == nil {
		return ErrNilBlock
	}
	if r.buf == nil {
		return ErrInvalidHandle
	}

	return nil
}

// Plan returns the layout the block was allocated with.
func (r *Region) Plan() (layout.Plan, error) {
	if err := r.live(); err != nil {
		return layout.Plan{}, fmt.Errorf("Region.Plan: %w", err)
	}

	return r.plan, nil
}

// RowOffset returns the byte offset stored in row table entry i.
// Complexity: O(1).
func (r *Region) RowOffset(i int) (uintptr, error) {
	if err := r.live(); err != nil {
		return 0, fmt.Errorf("Region.%s(%d): %w", ctxRowOffset, i, err)
	}
	if err := validateRow(&r.plan, i); err != nil {
		return 0, fmt.Errorf("Region.%s(%d): %w", ctxRowOffset, i, err)
	}

	return r.rowOffset(i), nil
}

// rowOffset reads table entry i without checks.
func (r *Region) rowOffset(i int) uintptr {
	return word(r.buf, uintptr(i)*layout.PointerSize)
}

// RowBytes returns row i of the data segment as a byte slice aliasing the block.
// The slice is capped at the row end and is valid only until Release or Move.
// MAIN DESCRIPTION:
//   - Double indirection: table entry i, then RowStride bytes from that offset.
//
// Errors:
//   - ErrInvalidHandle, ErrIndexOutOfRange.
//
// Complexity:
//   - Time O(1), Space O(1).
func (r *Region) RowBytes(i int) ([]byte, error) {
	if err := r.live(); err != nil {
		return nil, fmt.Errorf("Region.%s(%d): %w", ctxRowBytes, i, err)
	}
	if err := validateRow(&r.plan, i); err != nil {
		return nil, fmt.Errorf("Region.%s(%d): %w", ctxRowBytes, i, err)
	}
	off := r.rowOffset(i)
	end := off + r.plan.RowStride()

	return r.buf[off:end:end], nil
}

// DataBytes returns the whole data segment (rows*cols elements, row-major).
func (r *Region) DataBytes() ([]byte, error) {
	if err := r.live(); err != nil {
		return nil, fmt.Errorf("Region.DataBytes: %w", err)
	}
	off := r.plan.DataOffset()

	return r.buf[off:r.plan.TotalBytes:r.plan.TotalBytes], nil
}

// Bytes returns the whole block including the row table and padding.
func (r *Region) Bytes() ([]byte, error) {
	if err := r.live(); err != nil {
		return nil, fmt.Errorf("Region.Bytes: %w", err)
	}

	return r.buf, nil
}

// dataPointer returns the address of the first data byte. r must be live.
func (r *Region) dataPointer() unsafe.Pointer {
	return unsafe.Pointer(&r.buf[r.plan.DataOffset()])
}

// rowPointer returns the address of row i through the row table. r must be live, i valid.
func (r *Region) rowPointer(i int) unsafe.Pointer {
	return unsafe.Pointer(&r.buf[r.rowOffset(i)])
}

// Release returns the allocation to its allocator. Idempotent: only the first
// call on a live Region reaches the allocator; later calls return nil.
// MAIN DESCRIPTION:
//   - Stop the leak report, empty the handle, release the buffer once.
//
// Behavior highlights:
//   - The handle is empty afterwards even if the allocator reports an error.
//
// Complexity:
//   - Time O(1) plus the allocator's cost.
func (r *Region) Release() error {
	if r == nil || r.buf == nil {
		return nil
	}

	r.cleanup.Stop()
	buf, alloc := r.buf, r.alloc
	total := r.plan.TotalBytes
	r.buf, r.plan, r.alloc = nil, layout.Plan{}, nil

	if err := alloc.Release(buf); err != nil {
		return fmt.Errorf("Region.Release: %w", err)
	}

	r.logger.Debug("matrix: region released",
		slog.String("label", r.label),
		slog.Uint64("total", uint64(total)),
	)

	return nil
}

// Move transfers ownership to a new Region and empties r.
// Moving an empty or nil Region yields an empty Region.
// Complexity: O(1).
func (r *Region) Move() *Region {
	if r == nil || r.buf == nil {
		return &Region{}
	}

	r.cleanup.Stop()
	nr := &Region{
		buf:    r.buf,
		plan:   r.plan,
		alloc:  r.alloc,
		logger: r.logger,
		label:  r.label,
	}
	nr.arm()
	r.buf, r.plan, r.alloc = nil, layout.Plan{}, nil

	nr.logger.Debug("matrix: region moved", slog.String("label", nr.label))

	return nr
}
