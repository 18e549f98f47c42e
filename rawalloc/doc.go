// SPDX-License-Identifier: MIT

// Package rawalloc provides the raw allocate/release pair behind a matrix block.
//
// An Allocator hands out one aligned byte buffer per Allocate call and takes it
// back through Release. Backends:
//
//   - Heap: Go heap memory, over-allocated and sliced to the requested alignment.
//     Default() caps requests at DefaultHeapLimit, since the runtime aborts on
//     an allocation it cannot back.
//   - Mmap: anonymous private mappings (linux, darwin, freebsd), page aligned.
//   - Meter: a wrapper adding a byte budget, live-buffer bookkeeping and stats.
//
// Allocators never retry: an ErrOutOfMemory is reported once to the caller.
package rawalloc
