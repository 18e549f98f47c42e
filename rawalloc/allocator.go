// SPDX-License-Identifier: MIT

package rawalloc

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/katalvlaran/blockmat/checked"
)

// Allocator is a raw allocate/release pair.
//
// Allocate returns a buffer with len == size whose first byte is aligned to align.
// Release returns a buffer previously obtained from the same Allocator; the
// caller must not touch the buffer afterwards.
type Allocator interface {
	Allocate(size, align uintptr) ([]byte, error)
	Release(buf []byte) error
}

// Default returns the process-wide Heap allocator, limited to DefaultHeapLimit.
func Default() Allocator { return defaultHeap }

var defaultHeap = NewHeap(DefaultHeapLimit())

// fallbackHeapLimit applies where physical memory cannot be queried.
const fallbackHeapLimit = 4 << 30

// DefaultHeapLimit returns half of the physical memory, or 4 GiB when the
// platform does not report it.
func DefaultHeapLimit() uintptr {
	total, err := physicalMemory()
	if err != nil || total == 0 {
		return fallbackHeapLimit
	}
	half := total / 2
	if half > uint64(MaxRequest) {
		return MaxRequest
	}

	return uintptr(half)
}

// MaxRequest is the largest size any backend can express as a slice length.
const MaxRequest = uintptr(math.MaxInt)

// validateRequest checks the arguments shared by every backend.
func validateRequest(size, align uintptr) error {
	if size == 0 {
		return ErrBadSize
	}
	if !checked.IsPowerOfTwo(align) {
		return fmt.Errorf("align=%d: %w", align, ErrBadAlignment)
	}

	return nil
}

// Addr returns the address of the first byte of buf, or 0 for an empty buffer.
func Addr(buf []byte) uintptr {
	if cap(buf) == 0 {
		return 0
	}

	return uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
}

// IsAligned reports whether buf starts at a multiple of align.
func IsAligned(buf []byte, align uintptr) bool {
	return align != 0 && Addr(buf)%align == 0
}
