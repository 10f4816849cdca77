// SPDX-License-Identifier: MIT

package builder

import "math"

const defaultSeed int64 = 1

// Method tags for error wrapping.
const (
	methodFromFaces = "FromFaces"
	methodPlatonic  = "Platonic"
	methodIcosphere = "Icosphere"
	methodGrid      = "Grid"
	methodStrip     = "Strip"
)

// Irrational constants of the Platonic embeddings.
var (
	phi   = (1 + math.Sqrt(5)) / 2
	sqrt2 = math.Sqrt2
)
