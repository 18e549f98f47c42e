// Package blockmat builds two-dimensional matrices inside ONE contiguous
// allocation that holds both a row table and the element data.
//
// 🚀 What is blockmat?
//
//	A small, dependency-light library for matrices you can address two ways:
//		• rows[i][j] through a row table stored at the front of the block
//		• a flat rows*cols sequence for iteration and bulk transforms
//
// ✨ Guarantees
//
//   - Overflow-safe sizing – every byte count is computed with checked arithmetic
//   - Aligned data – the data segment starts at a multiple of the element alignment
//   - Exactly-once release – single-owner, move-only handles with idempotent Release
//   - No panics on user input – sentinel errors matched with errors.Is
//
// Under the hood, everything is organized under four subpackages:
//
//	checked/  — overflow-safe Mul and Add over uintptr
//	layout/   — the block plan: row table, padding, data, total
//	rawalloc/ — the raw allocate/release pair (Go heap, mmap, metered)
//	matrix/   — Region, Block[T], FlatView[T] and the index mapping
//
// Block layout:
//
//	offset 0                                   DataOffset                     TotalBytes
//	│ row table (rows words) │ padding │ row 0 │ row 1 │ … │ row rows-1 │
//	        entry i ──────────────────────▶ DataOffset + i*cols*sizeof(T)
//
// The cmd/blockmat command exercises the whole stack from the terminal.
package blockmat
