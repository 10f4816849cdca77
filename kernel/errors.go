// SPDX-License-Identifier: MIT

package kernel

import "errors"

var (
	// ErrBadSigma indicates a kernel width that is not a positive finite number.
	ErrBadSigma = errors.New("kernel: sigma must be positive and finite")

	// ErrLengthMismatch indicates a value slice whose length differs from
	// the number of vertices the kernels were built for.
	ErrLengthMismatch = errors.New("kernel: value count does not match vertex count")

	// ErrBadIterations indicates a negative smoothing iteration count.
	ErrBadIterations = errors.New("kernel: iterations must be non-negative")
)
