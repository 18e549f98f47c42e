// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Small deterministic fixtures (mustBlock, fillPattern).
//   - Misbehaving allocators to drive the failure branches of NewRegion.

package matrix_test

import (
	"bytes"
	"errors"
	"sync"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/blockmat/matrix"
	"github.com/katalvlaran/blockmat/rawalloc"
)

// mustBlock ALLOCATES an r×c Block or fails the test, and releases it at cleanup.
func mustBlock[T matrix.Element](tb testing.TB, r, c int, opts ...matrix.Option) *matrix.Block[T] {
	tb.Helper()
	b, err := matrix.New[T](r, c, opts...)
	require.NoError(tb, err)
	tb.Cleanup(func() { _ = b.Release() })

	return b
}

// realElement excludes complex kinds, which cannot be converted from int.
type realElement interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// fillPattern writes 10*i + j into every cell through Set.
func fillPattern[T realElement](tb testing.TB, b *matrix.Block[T]) {
	tb.Helper()
	for i := 0; i < b.Rows(); i++ {
		for j := 0; j < b.Cols(); j++ {
			require.NoError(tb, b.Set(i, j, T(10*i+j)))
		}
	}
}

// addrOf returns the address of the first element of s.
func addrOf[T any](s []T) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(s)))
}

// errBackend is the cause reported by failingAllocator.
var errBackend = errors.New("backend refused")

// failingAllocator refuses every request.
type failingAllocator struct{}

func (failingAllocator) Allocate(size, align uintptr) ([]byte, error) { return nil, errBackend }
func (failingAllocator) Release(buf []byte) error                   { return nil }

// shiftingAllocator returns heap buffers deliberately shifted off alignment
// (or truncated) and records what it gets back.
type shiftingAllocator struct {
	truncate bool
	handed   [][]byte
	released [][]byte
}

func (s *shiftingAllocator) Allocate(size, align uintptr) ([]byte, error) {
	raw, err := rawalloc.Default().Allocate(size+1, max(align, 2))
	if err != nil {
		return nil, err
	}
	buf := raw[1 : size+1] // misaligned by one byte
	if s.truncate {
		buf = raw[:size-1] // aligned but short
	}
	s.handed = append(s.handed, buf)

	return buf, nil
}

func (s *shiftingAllocator) Release(buf []byte) error {
	s.released = append(s.released, buf)
	return nil
}

// lockedBuffer is a log sink shared with the runtime's cleanup goroutine.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}
