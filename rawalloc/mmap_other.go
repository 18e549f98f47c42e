// SPDX-License-Identifier: MIT

//go:build !(linux || darwin || freebsd)

package rawalloc

// Mmap is unavailable on this platform; NewMmap always fails.
type Mmap struct{}

// NewMmap reports ErrUnsupported.
func NewMmap() (*Mmap, error) { return nil, ErrUnsupported }

// PageSize is zero on unsupported platforms.
func (m *Mmap) PageSize() uintptr { return 0 }

// Allocate reports ErrUnsupported.
func (m *Mmap) Allocate(size, align uintptr) ([]byte, error) { return nil, ErrUnsupported }

// Release reports ErrUnsupported.
func (m *Mmap) Release(buf []byte) error { return ErrUnsupported }
