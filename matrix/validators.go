// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Single source of truth for bounds checks against a layout.Plan.
//   - Return plain sentinels; call sites wrap with method context.

package matrix

import "github.com/katalvlaran/blockmat/layout"

// validateRow checks 0 <= i < p.Rows.
func validateRow(p *layout.Plan, i int) error {
	if i < 0 || i >= p.Rows {
		return ErrIndexOutOfRange
	}

	return nil
}

// validateCoord checks 0 <= i < p.Rows and 0 <= j < p.Cols.
func validateCoord(p *layout.Plan, i, j int) error {
	if err := validateRow(p, i); err != nil {
		return err
	}
	if j < 0 || j >= p.Cols {
		return ErrIndexOutOfRange
	}

	return nil
}

// validateIndex checks 0 <= k < p.Rows*p.Cols.
func validateIndex(p *layout.Plan, k int) error {
	if k < 0 || uintptr(k) >= p.ElemCount {
		return ErrIndexOutOfRange
	}

	return nil
}
