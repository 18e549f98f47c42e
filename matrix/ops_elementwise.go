// SPDX-License-Identifier: MIT

// Package matrix - element-wise operations on Block.
//
// Every operation walks rows through the row table in fixed i→j order, so
// results are deterministic and no temporary buffers are allocated.

package matrix

import "fmt"

// Fill sets every element to v.
// Errors: ErrInvalidHandle. Complexity: O(rows*cols).
func (b *Block[T]) Fill(v T) error {
	reg, err := b.region()
	if err != nil {
		return fmt.Errorf("Block.Fill: %w", err)
	}
	data := flat[T](reg)
	for k := range data {
		data[k] = v
	}

	return nil
}

// Do visits each element (i, j) in row-major order and calls f(i, j, v).
// Iteration stops when f returns false.
// Errors: ErrInvalidHandle. Complexity: O(rows*cols).
func (b *Block[T]) Do(f func(i, j int, v T) bool) error {
	reg, err := b.region()
	if err != nil {
		return fmt.Errorf("Block.Do: %w", err)
	}
	for i := 0; i < reg.plan.Rows; i++ {
		for j, v := range row[T](reg, i) {
			if !f(i, j, v) {
				return nil
			}
		}
	}

	return nil
}

// Apply replaces each element with f(i, j, v) in place, row by row.
// Errors: ErrInvalidHandle. Complexity: O(rows*cols).
//
// AI-Hints:
//   - Keep f pure; it must not Release or Move the block.
func (b *Block[T]) Apply(f func(i, j int, v T) T) error {
	reg, err := b.region()
	if err != nil {
		return fmt.Errorf("Block.Apply: %w", err)
	}
	for i := 0; i < reg.plan.Rows; i++ {
		r := row[T](reg, i)
		for j, v := range r {
			r[j] = f(i, j, v)
		}
	}

	return nil
}
