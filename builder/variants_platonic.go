// SPDX-License-Identifier: MIT
// Package: surfgeo/builder
//
// variants_platonic.go — canonical embeddings of the triangulated Platonic
// solids.
//
// Design:
//   • Single source of truth for vertex positions and face lists.
//   • Datasets are immutable; builders copy and scale them.
//   • Faces are listed counter-clockwise when seen from outside.

package builder

import (
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// PlatonicName enumerates the Platonic solids whose faces are triangles.
type PlatonicName int

// Enum values (stable ordering).
const (
	Tetrahedron PlatonicName = iota // V=4,  F=4
	Octahedron                      // V=6,  F=8
	Icosahedron                     // V=12, F=20
)

// String provides a readable identifier for logs and errors.
func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "Tetrahedron"
	case Octahedron:
		return "Octahedron"
	case Icosahedron:
		return "Icosahedron"
	default:
		return "Unknown"
	}
}

// ParsePlatonic maps a case-insensitive name back to its PlatonicName.
func ParsePlatonic(name string) (PlatonicName, bool) {
	for _, p := range []PlatonicName{Tetrahedron, Octahedron, Icosahedron} {
		if strings.EqualFold(p.String(), name) {
			return p, true
		}
	}

	return 0, false
}

// platonicShell holds raw positions and the edge length they realize.
type platonicShell struct {
	coords []r3.Vec
	faces  []Face
	edge   float64 // edge length of the raw embedding
}

var platonicShells = map[PlatonicName]platonicShell{
	// Alternate cube corners; edge 2√2.
	Tetrahedron: {
		coords: []r3.Vec{
			{X: 1, Y: 1, Z: 1},
			{X: 1, Y: -1, Z: -1},
			{X: -1, Y: 1, Z: -1},
			{X: -1, Y: -1, Z: 1},
		},
		faces: []Face{
			{0, 1, 2}, {0, 3, 1}, {0, 2, 3}, {1, 3, 2},
		},
		edge: 2 * sqrt2,
	},
	// Unit axis points; edge √2.
	Octahedron: {
		coords: []r3.Vec{
			{X: 1}, {X: -1},
			{Y: 1}, {Y: -1},
			{Z: 1}, {Z: -1},
		},
		faces: []Face{
			{0, 2, 4}, {2, 1, 4}, {1, 3, 4}, {3, 0, 4},
			{2, 0, 5}, {1, 2, 5}, {3, 1, 5}, {0, 3, 5},
		},
		edge: sqrt2,
	},
	// (0, ±1, ±φ) cyclic permutations; edge 2.
	Icosahedron: {
		coords: []r3.Vec{
			{X: -1, Y: phi}, {X: 1, Y: phi}, {X: -1, Y: -phi}, {X: 1, Y: -phi},
			{Y: -1, Z: phi}, {Y: 1, Z: phi}, {Y: -1, Z: -phi}, {Y: 1, Z: -phi},
			{X: phi, Z: -1}, {X: phi, Z: 1}, {X: -phi, Z: -1}, {X: -phi, Z: 1},
		},
		faces: []Face{
			{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
			{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
			{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
			{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
		},
		edge: 2,
	},
}
