// SPDX-License-Identifier: MIT

package layout

import "errors"

var (
	// ErrInvalidDimensions is returned when rows or cols is not strictly positive.
	// Zero-sized matrices are rejected rather than represented as valid-but-empty.
	ErrInvalidDimensions = errors.New("layout: dimensions must be > 0")

	// ErrSizeOverflow is returned when any layout quantity does not fit in a uintptr.
	// Returned errors also match checked.ErrOverflow.
	ErrSizeOverflow = errors.New("layout: size overflow")

	// ErrInvalidElement is returned for a zero element size or an alignment
	// that is not a power of two.
	ErrInvalidElement = errors.New("layout: invalid element size or alignment")
)
