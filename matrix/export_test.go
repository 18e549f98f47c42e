// SPDX-License-Identifier: MIT

package matrix

import (
	"log/slog"

	"github.com/katalvlaran/blockmat/rawalloc"
)

// OptionsSnapshot is a read-only view of resolved Options for white-box tests.
type OptionsSnapshot struct {
	Allocator rawalloc.Allocator
	Logger    *slog.Logger
	Label     string
}

// GatherOptionsSnapshot_TestOnly resolves opts like the public constructors do.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)
	return OptionsSnapshot{Allocator: o.alloc, Logger: o.logger, Label: o.label}
}

// DiscardLogger_TestOnly exposes the default logger.
var DiscardLogger_TestOnly = discardLogger
