// SPDX-License-Identifier: MIT

package geodesic

import (
	"math"
	"runtime/debug"
)

const (
	// matrixBudgetShare is the divisor applied to the memory ceiling to get
	// the default all-pairs budget.
	matrixBudgetShare = 2

	// fallbackMatrixBudget applies when neither a Go memory limit nor the
	// physical memory size is known.
	fallbackMatrixBudget int64 = 4 << 30
)

// defaultMatrixBudget returns the default MaxMatrixBytes: half of the Go
// runtime memory limit when one is set (GOMEMLIMIT or debug.SetMemoryLimit),
// otherwise half of physical memory, otherwise fallbackMatrixBudget.
//
// Go cannot recover from running out of memory, so the size check before
// allocating is the only protection AllPairs has.
func defaultMatrixBudget() int64 {
	if limit := debug.SetMemoryLimit(-1); limit > 0 && limit < math.MaxInt64 {
		return max(limit/matrixBudgetShare, 1)
	}
	if total := systemMemory(); total > 0 {
		if total > math.MaxInt64 {
			total = math.MaxInt64
		}
		return max(int64(total/matrixBudgetShare), 1)
	}

	return fallbackMatrixBudget
}
