// SPDX-License-Identifier: MIT
// Package: surfgeo/builder
//
// impl_icosphere.go — Icosphere(level, opts...) constructor.
//
// Contract:
//   • level ≥ 0; level 0 is the icosahedron itself.
//   • Each level splits every triangle into four through edge midpoints,
//     then projects the new vertices onto the sphere of radius cfg.scale.
//   • V = 10·4^level + 2, F = 20·4^level.

package builder

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/surfgeo/mesh"
)

// Icosphere builds a geodesic sphere of radius cfg.scale (default 1).
func Icosphere(level int, opts ...Option) (*mesh.Surface, error) {
	if level < 0 {
		return nil, fmt.Errorf("%s: level %d: %w", methodIcosphere, level, ErrTooFewVertices)
	}
	cfg := newBuilderConfig(opts...)
	shell := platonicShells[Icosahedron]

	coords := make([]r3.Vec, len(shell.coords))
	for i, p := range shell.coords {
		coords[i] = r3.Unit(p)
	}
	faces := make([]Face, len(shell.faces))
	copy(faces, shell.faces)

	for l := 0; l < level; l++ {
		mid := make(map[[2]int]int, len(faces)*3/2)
		midpoint := func(a, b int) int {
			key := [2]int{min(a, b), max(a, b)}
			if v, ok := mid[key]; ok {
				return v
			}
			coords = append(coords, r3.Unit(r3.Add(coords[a], coords[b])))
			mid[key] = len(coords) - 1
			return len(coords) - 1
		}
		next := make([]Face, 0, len(faces)*4)
		for _, f := range faces {
			ab := midpoint(f[0], f[1])
			bc := midpoint(f[1], f[2])
			ca := midpoint(f[2], f[0])
			next = append(next,
				Face{f[0], ab, ca},
				Face{f[1], bc, ab},
				Face{f[2], ca, bc},
				Face{ab, bc, ca},
			)
		}
		faces = next
	}

	for i, p := range coords {
		coords[i] = r3.Scale(cfg.scale+cfg.offset(), p)
	}

	return FromFaces(coords, faces)
}
