// SPDX-License-Identifier: MIT

// Package matrix - flat views: the data segment as one linear sequence.
//
// Purpose:
//   - AsFlat: the borrowed []T of length rows*cols (zero-cost, unchecked lifetime).
//   - FlatView: the same memory behind accessors that re-check the owning handle,
//     so a stale view reports ErrInvalidHandle instead of touching freed memory.
//
// Invariant:
//   - flat[k] == row(k / cols)[k % cols] for all k < rows*cols (same bytes, no copy).

package matrix

import (
	"fmt"
	"iter"
	"unsafe"
)

const (
	ctxFlat    = "Flat"
	ctxFlatAt  = "FlatView.At"
	ctxFlatSet = "FlatView.Set"
)

// flat views the whole data segment of a live region as []T.
func flat[T Element](reg *Region) []T {
	return unsafe.Slice((*T)(reg.dataPointer()), int(reg.plan.ElemCount))
}

// AsFlat returns the data segment of b as a slice of length rows*cols.
// MAIN DESCRIPTION:
//   - as_flat: a borrowed alias of the block's elements in row-major order.
//
// Behavior highlights:
//   - Mutations are visible through Row/At and vice versa.
//   - The slice is valid only while b is live and not moved-from; no runtime
//     check protects a retained slice. Use Block.Flat for a checked view.
//
// Errors:
//   - ErrInvalidHandle, ErrNilBlock.
//
// Complexity:
//   - Time O(1), Space O(1).
func AsFlat[T Element](b *Block[T]) ([]T, error) {
	reg, err := b.region()
	if err != nil {
		return nil, fmt.Errorf("matrix.As%s: %w", ctxFlat, err)
	}

	return flat[T](reg), nil
}

// FlatView is a non-owning linear accessor bound to one Block.
// It holds a back-reference to the handle, not ownership.
type FlatView[T Element] struct {
	owner *Block[T]
	reg   *Region // the region the view was created from
}

// Flat returns a checked linear view of b.
func (b *Block[T]) Flat() (*FlatView[T], error) {
	reg, err := b.region()
	if err != nil {
		return nil, fmt.Errorf("Block.%s: %w", ctxFlat, err)
	}

	return &FlatView[T]{owner: b, reg: reg}, nil
}

// region returns the live region if the owner still holds the same allocation.
func (v *FlatView[T]) region() (*Region, error) {
	if v == nil || v.owner == nil {
		return nil, ErrNilBlock
	}
	if v.owner.reg != v.reg || !v.reg.Valid() {
		return nil, ErrInvalidHandle
	}

	return v.reg, nil
}

// Valid reports whether the view still aliases a live block.
func (v *FlatView[T]) Valid() bool {
	_, err := v.region()
	return err == nil
}

// Len returns rows*cols, or 0 once the owner was released or moved.
func (v *FlatView[T]) Len() int {
	reg, err := v.region()
	if err != nil {
		return 0
	}

	return int(reg.plan.ElemCount)
}

// Slice returns the underlying []T (see AsFlat for lifetime rules).
func (v *FlatView[T]) Slice() ([]T, error) {
	reg, err := v.region()
	if err != nil {
		return nil, fmt.Errorf("FlatView.Slice: %w", err)
	}

	return flat[T](reg), nil
}

// At returns element k. Errors: ErrInvalidHandle, ErrIndexOutOfRange. Complexity: O(1).
func (v *FlatView[T]) At(k int) (T, error) {
	var zero T
	reg, err := v.region()
	if err != nil {
		return zero, fmt.Errorf("%s(%d): %w", ctxFlatAt, k, err)
	}
	if err = validateIndex(&reg.plan, k); err != nil {
		return zero, fmt.Errorf("%s(%d): %w", ctxFlatAt, k, err)
	}

	return flat[T](reg)[k], nil
}

// Set stores x at element k. Errors: ErrInvalidHandle, ErrIndexOutOfRange. Complexity: O(1).
func (v *FlatView[T]) Set(k int, x T) error {
	reg, err := v.region()
	if err != nil {
		return fmt.Errorf("%s(%d): %w", ctxFlatSet, k, err)
	}
	if err = validateIndex(&reg.plan, k); err != nil {
		return fmt.Errorf("%s(%d): %w", ctxFlatSet, k, err)
	}
	flat[T](reg)[k] = x

	return nil
}

// Coord maps a valid linear index to (i, j) of the owning block.
func (v *FlatView[T]) Coord(k int) (i, j int, err error) {
	reg, err := v.region()
	if err != nil {
		return 0, 0, fmt.Errorf("FlatView.Coord(%d): %w", k, err)
	}
	if err = validateIndex(&reg.plan, k); err != nil {
		return 0, 0, fmt.Errorf("FlatView.Coord(%d): %w", k, err)
	}
	i, j = IndexToCoord(k, reg.plan.Cols)

	return i, j, nil
}

// All yields (k, value) in row-major order. It is the read-only flat view:
// values are copies, so ranging over All cannot modify the block.
// Iteration stops early, without error, if the owner is released or moved
// while iterating.
func (v *FlatView[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for k := 0; ; k++ {
			reg, err := v.region()
			if err != nil || uintptr(k) >= reg.plan.ElemCount {
				return
			}
			if !yield(k, flat[T](reg)[k]) {
				return
			}
		}
	}
}

// Apply replaces every element with f(k, value), in index order.
// Errors: ErrInvalidHandle. Complexity: O(rows*cols).
func (v *FlatView[T]) Apply(f func(k int, x T) T) error {
	reg, err := v.region()
	if err != nil {
		return fmt.Errorf("FlatView.Apply: %w", err)
	}
	data := flat[T](reg)
	for k, x := range data {
		data[k] = f(k, x)
	}

	return nil
}

// Scale multiplies every element by factor in place.
func (v *FlatView[T]) Scale(factor T) error {
	if err := v.Apply(func(_ int, x T) T { return x * factor }); err != nil {
		return fmt.Errorf("FlatView.Scale: %w", err)
	}

	return nil
}
