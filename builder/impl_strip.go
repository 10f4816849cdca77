// SPDX-License-Identifier: MIT
// Package: surfgeo/builder
//
// impl_strip.go — two triangles hinged on one shared edge.
//
// Vertex order is fixed: 0 = apex of the first triangle, 1 and 2 = the
// shared edge, 3 = apex of the second triangle. The apexes are the only
// pair that is not directly connected.

package builder

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/surfgeo/mesh"
)

// Strip builds the triangles (apexA, s0, s1) and (apexB, s1, s0).
func Strip(apexA, s0, s1, apexB r3.Vec) (*mesh.Surface, error) {
	if s0 == s1 {
		return nil, fmt.Errorf("%s: shared edge has zero length: %w", methodStrip, ErrBadFace)
	}

	return FromFaces([]r3.Vec{apexA, s0, s1, apexB}, []Face{{0, 1, 2}, {3, 2, 1}})
}
