// SPDX-License-Identifier: MIT
// Package: surfgeo/builder
//
// faces.go — triangle list → per-vertex neighbor lists.
//
// Contract:
//   • Every face is three distinct vertex indices in 0..N-1.
//   • Each vertex lists every vertex it shares a face with, once, ascending.
//   • The relation is symmetric by construction.

package builder

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/surfgeo/mesh"
)

// Face is a triangle given by three vertex indices.
type Face [3]int

// FromFaces assembles a mesh.Surface from positions and triangles.
//
// Complexity: O(F + N·k log k) for F faces and average degree k.
func FromFaces(coords []r3.Vec, faces []Face) (*mesh.Surface, error) {
	n := len(coords)
	sets := make([]map[int]struct{}, n)
	for fi, f := range faces {
		for _, v := range f {
			if v < 0 || v >= n {
				return nil, fmt.Errorf("%s: face %d %v: %w", methodFromFaces, fi, f, ErrBadFace)
			}
		}
		if f[0] == f[1] || f[1] == f[2] || f[0] == f[2] {
			return nil, fmt.Errorf("%s: face %d %v: %w", methodFromFaces, fi, f, ErrBadFace)
		}
		for i := 0; i < 3; i++ {
			a, b := f[i], f[(i+1)%3]
			link(sets, a, b)
			link(sets, b, a)
		}
	}

	adjacency := make([][]int, n)
	for v, set := range sets {
		ring := make([]int, 0, len(set))
		for w := range set {
			ring = append(ring, w)
		}
		sort.Ints(ring)
		adjacency[v] = ring
	}

	return mesh.NewSurface(coords, adjacency), nil
}

func link(sets []map[int]struct{}, a, b int) {
	if sets[a] == nil {
		sets[a] = make(map[int]struct{}, 6)
	}
	sets[a][b] = struct{}{}
}
