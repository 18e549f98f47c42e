// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/katalvlaran/blockmat/layout"
)

// planReport is the JSON form of a layout plan.
type planReport struct {
	Rows          int     `json:"rows"`
	Cols          int     `json:"cols"`
	Type          string  `json:"type"`
	ElemSize      uintptr `json:"elem_size"`
	ElemAlign     uintptr `json:"elem_align"`
	Elements      uintptr `json:"elements"`
	RowTableBytes uintptr `json:"row_table_bytes"`
	PaddingBytes  uintptr `json:"padding_bytes"`
	DataOffset    uintptr `json:"data_offset"`
	DataBytes     uintptr `json:"data_bytes"`
	TotalBytes    uintptr `json:"total_bytes"`
	BaseAlign     uintptr `json:"base_align"`
}

func newPlanCmd(g *globalOptions) *cobra.Command {
	s := &shapeOptions{}
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Print the byte layout of a matrix block without allocating it",
		Long: `The plan command computes the row table, padding, data and total sizes
for a matrix of the given shape and element type.

Example:
  blockmat plan --rows 3 --cols 2 --type int32
  blockmat plan -r 100000 -c 100000 -t complex128 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(cmd.OutOrStdout(), g, s)
		},
	}
	addShapeFlags(cmd.Flags(), s)

	return cmd
}

func runPlan(w io.Writer, g *globalOptions, s *shapeOptions) error {
	geo, err := lookupElem(s.elem)
	if err != nil {
		return err
	}
	p, err := layout.New(s.rows, s.cols, geo.size, geo.align)
	if err != nil {
		return err
	}

	if g.jsonOut {
		return printJSON(w, planReport{
			Rows:          p.Rows,
			Cols:          p.Cols,
			Type:          s.elem,
			ElemSize:      p.ElemSize,
			ElemAlign:     p.ElemAlign,
			Elements:      p.ElemCount,
			RowTableBytes: p.RowTableBytes,
			PaddingBytes:  p.PaddingBytes,
			DataOffset:    p.DataOffset(),
			DataBytes:     p.DataBytes,
			TotalBytes:    p.TotalBytes,
			BaseAlign:     p.BaseAlign(),
		})
	}

	pr := message.NewPrinter(language.English)
	fmt.Fprintf(w, "layout %dx%d %s\n", p.Rows, p.Cols, s.elem)
	pr.Fprintf(w, "  row table : %d bytes\n", p.RowTableBytes)
	pr.Fprintf(w, "  padding   : %d bytes\n", p.PaddingBytes)
	pr.Fprintf(w, "  data      : %d bytes (%d elements)\n", p.DataBytes, p.ElemCount)
	pr.Fprintf(w, "  total     : %d bytes\n", p.TotalBytes)
	fmt.Fprintf(w, "  base align: %d\n", p.BaseAlign())

	return nil
}
