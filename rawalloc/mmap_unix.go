// SPDX-License-Identifier: MIT

//go:build linux || darwin || freebsd

package rawalloc

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/sys/unix"
)

// Mmap allocates anonymous private mappings. Buffers are page aligned and
// zero-filled by the kernel; Release unmaps them.
type Mmap struct {
	pageSize uintptr
}

// NewMmap returns an mmap-backed allocator.
func NewMmap() (*Mmap, error) {
	return &Mmap{pageSize: uintptr(unix.Getpagesize())}, nil
}

// PageSize reports the largest alignment this allocator can honor.
func (m *Mmap) PageSize() uintptr { return m.pageSize }

// Allocate maps size bytes of anonymous memory.
// MAIN DESCRIPTION:
//   - One mmap(2) per request; page alignment covers any align <= page size.
//
// Errors:
//   - ErrBadSize, ErrBadAlignment (align > page size), ErrOutOfMemory (ENOMEM or size > MaxInt).
//
// Complexity:
//   - Time O(1) syscall; pages are materialized lazily by the kernel.
func (m *Mmap) Allocate(size, align uintptr) ([]byte, error) {
	if err := validateRequest(size, align); err != nil {
		return nil, fmt.Errorf("Mmap.Allocate(%d): %w", size, err)
	}
	if align > m.pageSize {
		return nil, fmt.Errorf("Mmap.Allocate: align=%d > page=%d: %w", align, m.pageSize, ErrBadAlignment)
	}
	if size > math.MaxInt {
		return nil, fmt.Errorf("Mmap.Allocate(%d): %w", size, ErrOutOfMemory)
	}

	buf, err := unix.Mmap(-1, 0, int(size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		if errors.Is(err, unix.ENOMEM) || errors.Is(err, unix.EINVAL) {
			return nil, fmt.Errorf("Mmap.Allocate(%d): %w: %w", size, ErrOutOfMemory, err)
		}
		return nil, fmt.Errorf("Mmap.Allocate(%d): %w", size, err)
	}

	return buf, nil
}

// Release unmaps a buffer returned by Allocate.
func (m *Mmap) Release(buf []byte) error {
	if cap(buf) == 0 {
		return fmt.Errorf("Mmap.Release: %w", ErrDoubleRelease)
	}
	if err := unix.Munmap(buf); err != nil {
		return fmt.Errorf("Mmap.Release: %w", err)
	}

	return nil
}
