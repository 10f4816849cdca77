// SPDX-License-Identifier: MIT

package roi

import "errors"

var (
	// ErrNoSeeds indicates an empty seed list.
	ErrNoSeeds = errors.New("roi: no seed vertices")

	// ErrNilRegion indicates a nil region bitmap.
	ErrNilRegion = errors.New("roi: nil region")

	// ErrBadSteps indicates a negative dilation or erosion step count.
	ErrBadSteps = errors.New("roi: steps must be non-negative")
)
