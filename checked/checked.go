// SPDX-License-Identifier: MIT

package checked

import (
	"errors"
	"fmt"
)

// MaxSize is the largest value representable by the platform size type.
const MaxSize = ^uintptr(0)

// ErrOverflow is returned when a product or sum does not fit in a uintptr.
var ErrOverflow = errors.New("checked: size overflow")

// Mul returns a*b or ErrOverflow.
// MAIN DESCRIPTION:
//   - Multiply two sizes without wraparound.
//
// Implementation:
//   - Stage 1: a zero operand yields 0 (no overflow possible).
//   - Stage 2: reject when a > MaxSize/b.
//   - Stage 3: return the exact product.
//
// Errors:
//   - ErrOverflow, wrapped with both operands.
//
// Complexity:
//   - Time O(1), Space O(1).
func Mul(a, b uintptr) (uintptr, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	if a > MaxSize/b {
		return 0, fmt.Errorf("checked.Mul(%d,%d): %w", a, b, ErrOverflow)
	}

	return a * b, nil
}

// Add returns a+b or ErrOverflow.
// MAIN DESCRIPTION:
//   - Add two sizes without wraparound.
//
// Implementation:
//   - Stage 1: reject when a > MaxSize-b.
//   - Stage 2: return the exact sum.
//
// Errors:
//   - ErrOverflow, wrapped with both operands.
//
// Complexity:
//   - Time O(1), Space O(1).
func Add(a, b uintptr) (uintptr, error) {
	if a > MaxSize-b {
		return 0, fmt.Errorf("checked.Add(%d,%d): %w", a, b, ErrOverflow)
	}

	return a + b, nil
}

// IsPowerOfTwo reports whether x is a power of two (1, 2, 4, ...). Zero is not.
func IsPowerOfTwo(x uintptr) bool {
	return x != 0 && x&(x-1) == 0
}
