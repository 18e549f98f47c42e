// SPDX-License-Identifier: MIT

//go:build linux

package rawalloc

import "golang.org/x/sys/unix"

// physicalMemory returns the installed RAM in bytes.
func physicalMemory() (uint64, error) {
	var si unix.Sysinfo_t
	if err := unix.Sysinfo(&si); err != nil {
		return 0, err
	}

	return uint64(si.Totalram) * uint64(si.Unit), nil
}
