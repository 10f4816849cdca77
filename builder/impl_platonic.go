// SPDX-License-Identifier: MIT
// Package: surfgeo/builder
//
// impl_platonic.go — Platonic(name, opts...) constructor.
//
// Contract:
//   • name ∈ {Tetrahedron, Octahedron, Icosahedron}; otherwise ErrUnknownSolid.
//   • The shell is scaled so that every edge has length cfg.scale.
//   • Jitter, if any, moves vertices radially and breaks the equal edges.

package builder

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/surfgeo/mesh"
)

// Platonic builds the named solid with edge length cfg.scale (default 1),
// centered on the origin.
func Platonic(name PlatonicName, opts ...Option) (*mesh.Surface, error) {
	shell, ok := platonicShells[name]
	if !ok {
		return nil, fmt.Errorf("%s: %v: %w", methodPlatonic, name, ErrUnknownSolid)
	}
	cfg := newBuilderConfig(opts...)

	k := cfg.scale / shell.edge
	coords := make([]r3.Vec, len(shell.coords))
	for i, p := range shell.coords {
		p = r3.Scale(k, p)
		if cfg.jitter > 0 {
			p = r3.Add(p, r3.Scale(cfg.offset(), r3.Unit(p)))
		}
		coords[i] = p
	}
	faces := make([]Face, len(shell.faces))
	copy(faces, shell.faces)

	return FromFaces(coords, faces)
}
