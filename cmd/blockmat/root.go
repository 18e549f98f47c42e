// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/blockmat/rawalloc"
)

// globalOptions holds the persistent flags shared by every subcommand.
type globalOptions struct {
	verbose bool
	jsonOut bool
	backend string
	budget  uint64
}

// shapeOptions holds the matrix shape and element type flags.
type shapeOptions struct {
	rows int
	cols int
	elem string
}

const (
	backendHeap = "heap"
	backendMmap = "mmap"
)

func newRootCmd() *cobra.Command {
	g := &globalOptions{}

	root := &cobra.Command{
		Use:   "blockmat",
		Short: "Build and inspect single-allocation row-major matrices",
		Long: `blockmat allocates a matrix as one contiguous block holding a row table,
alignment padding and the element data, and exercises row and flat access on it.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&g.verbose, "verbose", "v", false, "Log allocation lifecycle to stderr")
	pf.BoolVar(&g.jsonOut, "json", false, "Output in JSON format")
	pf.StringVar(&g.backend, "backend", backendHeap, "Raw allocator backend: heap or mmap")
	pf.Uint64Var(&g.budget, "budget", 0, "Byte budget for all allocations (0 = unlimited)")

	root.AddCommand(newDemoCmd(g), newPlanCmd(g), newVersionCmd())

	return root
}

// addShapeFlags registers --rows, --cols and --type on fs.
func addShapeFlags(fs *pflag.FlagSet, s *shapeOptions) {
	fs.IntVarP(&s.rows, "rows", "r", 3, "Number of rows")
	fs.IntVarP(&s.cols, "cols", "c", 2, "Number of columns")
	fs.StringVarP(&s.elem, "type", "t", "int32", "Element type")
}

// logger returns a DEBUG logger on w when --verbose is set, else a discarding one.
func (g *globalOptions) logger(w io.Writer) *slog.Logger {
	if !g.verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// allocator builds the configured backend, always wrapped in a Meter so the
// demo can report allocation statistics.
func (g *globalOptions) allocator() (*rawalloc.Meter, error) {
	var inner rawalloc.Allocator
	switch g.backend {
	case backendHeap:
		inner = rawalloc.Default()
	case backendMmap:
		mm, err := rawalloc.NewMmap()
		if err != nil {
			return nil, fmt.Errorf("backend %q: %w", g.backend, err)
		}
		inner = mm
	default:
		return nil, fmt.Errorf("unknown backend %q (want %s or %s)", g.backend, backendHeap, backendMmap)
	}

	return rawalloc.NewMeter(inner, uintptr(g.budget)), nil
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
