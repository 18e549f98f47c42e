// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/blockmat/matrix"
)

// TestIndexRoundTrip checks both directions of the mapping for several shapes.
func TestIndexRoundTrip(t *testing.T) {
	for _, shape := range [][2]int{{1, 1}, {3, 2}, {2, 3}, {7, 1}, {1, 9}, {13, 17}} {
		rows, cols := shape[0], shape[1]
		for k := 0; k < rows*cols; k++ {
			i, j := matrix.IndexToCoord(k, cols)
			require.Less(t, i, rows)
			require.Less(t, j, cols)
			require.Equal(t, k, matrix.CoordToIndex(i, j, cols))
		}
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				ii, jj := matrix.IndexToCoord(matrix.CoordToIndex(i, j, cols), cols)
				require.Equal(t, [2]int{i, j}, [2]int{ii, jj})
			}
		}
	}
}

// TestIndexKnownValues pins the 3×2 mapping.
func TestIndexKnownValues(t *testing.T) {
	i, j := matrix.IndexToCoord(3, 2)
	require.Equal(t, 1, i)
	require.Equal(t, 1, j)
	require.Equal(t, 4, matrix.CoordToIndex(2, 0, 2))
}

// TestIndexNonPositiveColsPanics documents the programmer-error contract.
func TestIndexNonPositiveColsPanics(t *testing.T) {
	require.PanicsWithValue(t, "matrix: index mapping requires cols > 0", func() { matrix.IndexToCoord(1, 0) })
	require.Panics(t, func() { matrix.CoordToIndex(0, 0, -1) })
}
