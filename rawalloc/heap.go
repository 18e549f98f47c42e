// SPDX-License-Identifier: MIT

package rawalloc

import (
	"fmt"
	"math"

	"github.com/katalvlaran/blockmat/checked"
)

// Heap allocates from the Go heap.
//
// Alignment is obtained by over-allocating size+align-1 bytes and slicing at the
// first aligned address. Release is bookkeeping only; the garbage collector
// reclaims the memory once the last reference is gone.
//
// The Go runtime aborts the process when it cannot satisfy a make, so a Heap
// with a non-zero limit refuses larger requests with ErrOutOfMemory up front.
// The zero value has no limit.
type Heap struct {
	limit uintptr
}

// NewHeap returns a Heap that refuses requests above limit bytes.
// A zero limit disables the check.
func NewHeap(limit uintptr) *Heap { return &Heap{limit: limit} }

// Limit returns the largest request h accepts, or 0 when unlimited.
func (h *Heap) Limit() uintptr { return h.limit }

// Allocate returns a zeroed, aligned buffer of exactly size bytes.
// MAIN DESCRIPTION:
//   - Over-allocate and slice to the requested alignment.
//
// Implementation:
//   - Stage 1: validate size/align.
//   - Stage 2: size above the heap limit → ErrOutOfMemory, before touching the runtime.
//   - Stage 2b: raw length = size + align - 1 (checked, and capped at MaxInt).
//   - Stage 3: make the raw slice; runtime length panics map to ErrOutOfMemory.
//   - Stage 4: slice [off : off+size : off+size] so appends cannot spill.
//
// Errors:
//   - ErrBadSize, ErrBadAlignment, ErrOutOfMemory.
//
// Complexity:
//   - Time O(size) for zeroing, Space O(size+align).
func (h *Heap) Allocate(size, align uintptr) ([]byte, error) {
	if err := validateRequest(size, align); err != nil {
		return nil, fmt.Errorf("Heap.Allocate(%d): %w", size, err)
	}
	if h.limit != 0 && size > h.limit {
		return nil, fmt.Errorf("Heap.Allocate(%d): limit %d: %w", size, h.limit, ErrOutOfMemory)
	}

	rawLen, err := checked.Add(size, align-1)
	if err != nil || rawLen > math.MaxInt {
		return nil, fmt.Errorf("Heap.Allocate(%d): %w", size, ErrOutOfMemory)
	}

	raw, err := makeBytes(int(rawLen))
	if err != nil {
		return nil, fmt.Errorf("Heap.Allocate(%d): %w", size, err)
	}

	off := (align - Addr(raw)%align) % align
	buf := raw[off : off+size : off+size]

	return buf, nil
}

// Release accepts any non-empty buffer; the memory is reclaimed by the GC.
func (h *Heap) Release(buf []byte) error {
	if cap(buf) == 0 {
		return fmt.Errorf("Heap.Release: %w", ErrDoubleRelease)
	}

	return nil
}

// makeBytes converts the runtime's "len out of range" panic into ErrOutOfMemory.
func makeBytes(n int) (buf []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			buf, err = nil, fmt.Errorf("%v: %w", r, ErrOutOfMemory)
		}
	}()

	return make([]byte, n), nil
}
