// SPDX-License-Identifier: MIT

//go:build darwin || freebsd

package rawalloc

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// physicalMemory returns the installed RAM in bytes.
func physicalMemory() (uint64, error) {
	name := "hw.physmem"
	if runtime.GOOS == "darwin" {
		name = "hw.memsize"
	}

	return unix.SysctlUint64(name)
}
