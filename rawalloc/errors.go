// SPDX-License-Identifier: MIT

package rawalloc

import "errors"

var (
	// ErrOutOfMemory is returned when the backend cannot satisfy a request.
	ErrOutOfMemory = errors.New("rawalloc: out of memory")

	// ErrBadAlignment is returned for an alignment that is not a power of two
	// or that the backend cannot honor.
	ErrBadAlignment = errors.New("rawalloc: unsupported alignment")

	// ErrBadSize is returned for a zero-byte request.
	ErrBadSize = errors.New("rawalloc: size must be > 0")

	// ErrDoubleRelease is returned by Meter when a buffer is released twice
	// or was never handed out by it.
	ErrDoubleRelease = errors.New("rawalloc: buffer not live")

	// ErrUnsupported is returned when a backend is not available on this platform.
	ErrUnsupported = errors.New("rawalloc: backend not supported on this platform")
)
