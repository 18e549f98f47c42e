// SPDX-License-Identifier: MIT

package matrix

const panicNonPositiveCols = "matrix: index mapping requires cols > 0"

// IndexToCoord maps a linear row-major index to (i, j) = (k / cols, k % cols).
// Exact inverse of CoordToIndex for 0 <= k < rows*cols.
// Panics if cols <= 0 (programmer error). Complexity: O(1).
func IndexToCoord(k, cols int) (i, j int) {
	if cols <= 0 {
		panic(panicNonPositiveCols)
	}

	return k / cols, k % cols
}

// CoordToIndex maps (i, j) to the linear row-major index i*cols + j.
// Panics if cols <= 0 (programmer error). Complexity: O(1).
func CoordToIndex(i, j, cols int) int {
	if cols <= 0 {
		panic(panicNonPositiveCols)
	}

	return i*cols + j
}
