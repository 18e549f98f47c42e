// SPDX-License-Identifier: MIT

//go:build !linux && !darwin && !freebsd

package rawalloc

// physicalMemory is not available here; DefaultHeapLimit falls back.
func physicalMemory() (uint64, error) { return 0, ErrUnsupported }
