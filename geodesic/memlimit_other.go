// SPDX-License-Identifier: MIT

//go:build !linux

package geodesic

// systemMemory reports total physical memory in bytes, 0 if unknown.
func systemMemory() uint64 { return 0 }
