// SPDX-License-Identifier: MIT

// Package checked provides overflow-safe arithmetic over machine-word sizes.
//
// Every size that blockmat derives from caller-supplied dimensions goes through
// Mul and Add. Both functions are total over uintptr: they either return the
// exact result or ErrOverflow, never a wrapped-around value.
//
// Complexity:
//   - Mul, Add, IsPowerOfTwo: O(1), no allocations on the success path.
package checked
