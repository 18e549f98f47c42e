// SPDX-License-Identifier: MIT

package checked_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/blockmat/checked"
)

// TestMul covers the zero short-circuit, the exact boundary and the first overflowing product.
func TestMul(t *testing.T) {
	half := checked.MaxSize/2 + 1 // 2^(w-1)

	tests := []struct {
		name    string
		a, b    uintptr
		want    uintptr
		wantErr bool
	}{
		{name: "zero left", a: 0, b: checked.MaxSize, want: 0},
		{name: "zero right", a: checked.MaxSize, b: 0, want: 0},
		{name: "small", a: 6, b: 7, want: 42},
		{name: "max times one", a: checked.MaxSize, b: 1, want: checked.MaxSize},
		{name: "exact boundary", a: checked.MaxSize / 3, b: 3, want: checked.MaxSize / 3 * 3},
		{name: "half times two overflows", a: half, b: 2, wantErr: true},
		{name: "max times max overflows", a: checked.MaxSize, b: checked.MaxSize, wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := checked.Mul(tc.a, tc.b)
			if tc.wantErr {
				require.ErrorIs(t, err, checked.ErrOverflow)
				require.Zero(t, got)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

// TestAdd covers the exact boundary and the first overflowing sum.
func TestAdd(t *testing.T) {
	got, err := checked.Add(checked.MaxSize-1, 1)
	require.NoError(t, err)
	require.Equal(t, checked.MaxSize, got)

	got, err = checked.Add(0, 0)
	require.NoError(t, err)
	require.Zero(t, got)

	_, err = checked.Add(checked.MaxSize, 1)
	require.ErrorIs(t, err, checked.ErrOverflow)

	_, err = checked.Add(1, checked.MaxSize)
	require.ErrorIs(t, err, checked.ErrOverflow)
	require.Contains(t, err.Error(), "checked.Add(1,")
}

// TestIsPowerOfTwo checks small values and the top bit.
func TestIsPowerOfTwo(t *testing.T) {
	require.False(t, checked.IsPowerOfTwo(0))
	require.True(t, checked.IsPowerOfTwo(1))
	require.True(t, checked.IsPowerOfTwo(8))
	require.False(t, checked.IsPowerOfTwo(12))
	require.True(t, checked.IsPowerOfTwo(checked.MaxSize/2+1))
	require.False(t, checked.IsPowerOfTwo(checked.MaxSize))
}
