// SPDX-License-Identifier: MIT
// Package builder generates synthetic triangulated surfaces as
// mesh.Surface values: Platonic solids, icospheres, flat grids and the
// two-triangle strip.
//
// The surfaces feed the geodesic engine in tests, examples and the surfgeo
// command. Adjacency comes from the face list (FromFaces): every vertex
// lists the vertices it shares a triangle with, in ascending order.
//
// Options:
//
//   - WithScale(s):  edge length (Platonic), radius (Icosphere), spacing (Grid).
//   - WithJitter(a): deterministic random displacement in [-a, a].
//   - WithSeed(n):   seed for the jitter source.
//
// Errors (sentinel): ErrTooFewVertices, ErrUnknownSolid, ErrBadFace.
package builder
