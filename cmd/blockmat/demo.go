// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/katalvlaran/blockmat/matrix"
	"github.com/katalvlaran/blockmat/rawalloc"
)

// errRoundTrip is returned when flat and row access disagree.
var errRoundTrip = errors.New("round-trip check failed")

// demoOptions holds the demo command flags.
type demoOptions struct {
	shapeOptions
	factor int
}

// demoElement is the set of element types the demo can fill with 10*i + j.
type demoElement interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

func newDemoCmd(g *globalOptions) *cobra.Command {
	o := &demoOptions{}
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Allocate, fill, print, scale and verify a matrix",
		Long: `The demo command allocates a rows x cols matrix, fills cell (i,j) with 10*i+j,
prints it, multiplies every element through the flat view, verifies that the
flat view and row access agree, and prints the result.

Example:
  blockmat demo
  blockmat demo --rows 4 --cols 3 --type float64 --factor 3
  blockmat demo --backend mmap --verbose`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout(), cmd.ErrOrStderr(), g, o)
		},
	}
	addShapeFlags(cmd.Flags(), &o.shapeOptions)
	cmd.Flags().IntVarP(&o.factor, "factor", "f", 2, "Scale factor applied through the flat view")

	return cmd
}

func runDemo(w, errw io.Writer, g *globalOptions, o *demoOptions) error {
	meter, err := g.allocator()
	if err != nil {
		return err
	}
	logger := g.logger(errw)

	switch o.elem {
	case "int8":
		err = demo[int8](w, g, o, meter, logger)
	case "int16":
		err = demo[int16](w, g, o, meter, logger)
	case "int32":
		err = demo[int32](w, g, o, meter, logger)
	case "int64":
		err = demo[int64](w, g, o, meter, logger)
	case "uint8":
		err = demo[uint8](w, g, o, meter, logger)
	case "uint16":
		err = demo[uint16](w, g, o, meter, logger)
	case "uint32":
		err = demo[uint32](w, g, o, meter, logger)
	case "uint64":
		err = demo[uint64](w, g, o, meter, logger)
	case "float32":
		err = demo[float32](w, g, o, meter, logger)
	case "float64":
		err = demo[float64](w, g, o, meter, logger)
	default:
		return fmt.Errorf("demo does not support element type %q", o.elem)
	}
	if err != nil {
		return err
	}

	st := meter.Stats()
	logger.Debug("allocator stats",
		slog.Uint64("allocations", st.Allocations),
		slog.Uint64("releases", st.Releases),
		slog.Uint64("peak", uint64(st.Peak)),
	)
	if st.Live != 0 {
		return fmt.Errorf("%d allocation(s) still live after demo", st.Live)
	}

	return nil
}

func demo[T demoElement](w io.Writer, g *globalOptions, o *demoOptions, alloc rawalloc.Allocator, logger *slog.Logger) (err error) {
	m, err := matrix.New[T](o.rows, o.cols,
		matrix.WithAllocator(alloc),
		matrix.WithLogger(logger),
		matrix.WithLabel("demo"),
	)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, m.Release())
	}()

	for i := 0; i < o.rows; i++ {
		r, err := m.Row(i)
		if err != nil {
			return err
		}
		for j := range r {
			r[j] = T(10*i + j)
		}
	}

	p, err := m.Plan()
	if err != nil {
		return err
	}
	before := m.String()

	view, err := m.Flat()
	if err != nil {
		return err
	}
	if err = view.Scale(T(o.factor)); err != nil {
		return err
	}
	if err = verifyRoundTrip(m, view); err != nil {
		return err
	}
	flat, err := view.Slice()
	if err != nil {
		return err
	}

	if g.jsonOut {
		return printJSON(w, struct {
			Rows    int           `json:"rows"`
			Cols    int           `json:"cols"`
			Type    string        `json:"type"`
			Backend string        `json:"backend"`
			Factor  int           `json:"factor"`
			Flat    []json.Number `json:"flat"`
			Total   uint64        `json:"total_bytes"`
		}{o.rows, o.cols, o.elem, g.backend, o.factor, jsonNumbers(flat), uint64(p.TotalBytes)})
	}

	pr := message.NewPrinter(language.English)
	fmt.Fprintf(w, "matrix %dx%d %s (backend %s)\n", o.rows, o.cols, o.elem, g.backend)
	pr.Fprintf(w, "block: %d bytes, padding %d\n\n", p.TotalBytes, p.PaddingBytes)
	fmt.Fprint(w, before)
	fmt.Fprintf(w, "\nflat x%d: %s\n", o.factor, joinValues(flat))
	fmt.Fprintf(w, "round-trip: ok (%d elements)\n\n", len(flat))
	fmt.Fprint(w, m)

	return nil
}

// verifyRoundTrip checks flat[k] == row(i)[j] and k == CoordToIndex(IndexToCoord(k)).
func verifyRoundTrip[T demoElement](m *matrix.Block[T], view *matrix.FlatView[T]) error {
	cols := m.Cols()
	for k, v := range view.All() {
		i, j := matrix.IndexToCoord(k, cols)
		if back := matrix.CoordToIndex(i, j, cols); back != k {
			return fmt.Errorf("index %d maps back to %d: %w", k, back, errRoundTrip)
		}
		at, err := m.At(i, j)
		if err != nil {
			return err
		}
		if at != v {
			return fmt.Errorf("flat[%d]=%v, row(%d)[%d]=%v: %w", k, v, i, j, at, errRoundTrip)
		}
	}

	return nil
}

// joinValues renders values separated by single spaces.
func joinValues[T any](vals []T) string {
	parts := make([]string, len(vals))
	for k, v := range vals {
		parts[k] = fmt.Sprint(v)
	}

	return strings.Join(parts, " ")
}

// jsonNumbers keeps values numeric in JSON (a []uint8 would encode as base64).
func jsonNumbers[T any](vals []T) []json.Number {
	out := make([]json.Number, len(vals))
	for k, v := range vals {
		out[k] = json.Number(fmt.Sprint(v))
	}

	return out
}
