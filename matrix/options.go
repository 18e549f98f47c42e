// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for block allocation.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants and package-level defaults),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves a ...Option list.
//
// Design goals:
//   - No global mutable state: defaults are read-only.
//   - Every option changes observable behavior and is covered by tests.
//   - Panic only on invalid parameters (programmer error).
package matrix

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/blockmat/rawalloc"
)

// ---------- Defaults (single source of truth) ----------

// DefaultLabel tags log records of blocks created without WithLabel.
const DefaultLabel = "block"

// discardLogger is used when no logger is configured.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicNilAllocator = "matrix: WithAllocator: allocator must be non-nil"
	panicNilLogger    = "matrix: WithLogger: logger must be non-nil"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (last one wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	alloc  rawalloc.Allocator // rawalloc.Default()
	logger *slog.Logger       // discardLogger
	label  string             // DefaultLabel
}

// WithAllocator selects the raw allocate/release pair backing new blocks.
// Implementation:
//   - Stage 1: reject nil (panic, programmer error).
//   - Stage 2: return a setter writing the allocator.
//
// Notes:
//   - The allocator is captured by the block: Release always goes back to the
//     allocator that produced the buffer, even after Move.
//
// AI-Hints:
//   - Wrap with rawalloc.NewMeter to observe allocations or impose a byte budget.
func WithAllocator(a rawalloc.Allocator) Option {
	if a == nil {
		panic(panicNilAllocator)
	}

	return func(o *Options) { o.alloc = a }
}

// WithLogger routes allocation lifecycle records (DEBUG) and dropped-handle
// warnings (WARN) to l. Panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

// WithLabel tags log records of the block. An empty label restores DefaultLabel.
func WithLabel(label string) Option {
	return func(o *Options) {
		if label == "" {
			label = DefaultLabel
		}
		o.label = label
	}
}

// defaultOptions returns the zero-configuration Options.
func defaultOptions() Options {
	return Options{
		alloc:  rawalloc.Default(),
		logger: discardLogger,
		label:  DefaultLabel,
	}
}

// gatherOptions applies opts over the defaults in order. Nil options are skipped.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
