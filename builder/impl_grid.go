// SPDX-License-Identifier: MIT
// Package: surfgeo/builder
//
// impl_grid.go — Grid(rows, cols, opts...) constructor.
//
// Contract:
//   • rows ≥ 2 and cols ≥ 2; otherwise ErrTooFewVertices.
//   • Vertex (r, c) has index r*cols + c and sits at
//     (c·scale, r·scale, jitter) in the z = 0 plane.
//   • Every cell is split along its (r,c)–(r+1,c+1) diagonal, so interior
//     vertices have degree 6.

package builder

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/surfgeo/mesh"
)

// Grid builds a flat triangulated rows×cols sheet with spacing cfg.scale.
func Grid(rows, cols int, opts ...Option) (*mesh.Surface, error) {
	if rows < 2 || cols < 2 {
		return nil, fmt.Errorf("%s: rows=%d, cols=%d: %w", methodGrid, rows, cols, ErrTooFewVertices)
	}
	cfg := newBuilderConfig(opts...)

	coords := make([]r3.Vec, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			coords = append(coords, r3.Vec{
				X: float64(c) * cfg.scale,
				Y: float64(r) * cfg.scale,
				Z: cfg.offset(),
			})
		}
	}

	faces := make([]Face, 0, 2*(rows-1)*(cols-1))
	for r := 0; r < rows-1; r++ {
		for c := 0; c < cols-1; c++ {
			a := r*cols + c
			b := a + 1
			d := a + cols
			e := d + 1
			faces = append(faces, Face{a, b, e}, Face{a, e, d})
		}
	}

	return FromFaces(coords, faces)
}
