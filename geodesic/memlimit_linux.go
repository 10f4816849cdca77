// SPDX-License-Identifier: MIT

//go:build linux

package geodesic

import "golang.org/x/sys/unix"

// systemMemory reports total physical memory in bytes, 0 if unknown.
func systemMemory() uint64 {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return 0
	}

	return uint64(info.Totalram) * uint64(info.Unit)
}
