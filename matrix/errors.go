// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every failure of this package is reported through one of these sentinels and
// must be matched with errors.Is. Public methods never panic on user input;
// panics are reserved for programmer errors (nil options, cols <= 0 in the
// pure index helpers).

package matrix

import (
	"errors"

	"github.com/katalvlaran/blockmat/layout"
	"github.com/katalvlaran/blockmat/rawalloc"
)

// NOTE ON WRAPPING
// ----------------
// Sentinels are wrapped at the detection site with method context, e.g.
// "Block.At(3,0): matrix: index out of range". Errors coming from layout and
// rawalloc keep their own sentinels; the aliases below let callers match them
// without importing those packages.

var (
	// ErrInvalidDimensions indicates rows <= 0 or cols <= 0.
	ErrInvalidDimensions = layout.ErrInvalidDimensions

	// ErrSizeOverflow indicates that the block size is not representable.
	ErrSizeOverflow = layout.ErrSizeOverflow

	// ErrInvalidElement indicates an unusable element size/alignment, or a
	// region whose element geometry does not match the requested type.
	ErrInvalidElement = layout.ErrInvalidElement

	// ErrOutOfMemory indicates that the raw allocation request failed.
	ErrOutOfMemory = rawalloc.ErrOutOfMemory
)

var (
	// ErrInvalidHandle indicates an operation on a released or moved-from handle.
	ErrInvalidHandle = errors.New("matrix: invalid handle")

	// ErrIndexOutOfRange indicates a row, column or linear index outside bounds.
	ErrIndexOutOfRange = errors.New("matrix: index out of range")

	// ErrBadAllocation indicates that an allocator returned a buffer that is too
	// short or misaligned. The buffer has already been released when this is returned.
	ErrBadAllocation = errors.New("matrix: allocator returned an unusable buffer")

	// ErrNilBlock indicates a nil *Block or *Region receiver.
	ErrNilBlock = errors.New("matrix: nil receiver")
)
