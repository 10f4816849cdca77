// SPDX-License-Identifier: MIT
// Package mesh defines the read-only inputs of the geodesic engine: a
// coordinate provider and a topology provider for a triangulated surface.
//
// Overview:
//
//   - Vertices are dense indices 0..N-1.
//   - CoordinateProvider returns the 3D position of a vertex (gonum r3.Vec).
//   - TopologyProvider returns the ordered 1-ring neighbor list of a vertex.
//   - Surface is a plain in-memory CoordinateProvider; Surface.Topology
//     returns its TopologyProvider view.
//
// Ownership:
//
//   - Providers own their data. Consumers (geodesic.New, builder, kernel)
//     copy what they need and never write back.
//   - A Surface is a snapshot: once handed to an engine, later edits are not
//     observed. Rebuild the engine after changing positions or topology.
//
// Errors (sentinel):
//
//   - ErrCountMismatch  positions and neighbor lists disagree on N.
//   - ErrBadNeighbor    a neighbor index is out of range or refers to itself.
//   - ErrAsymmetricEdge a lists b but b does not list a.
package mesh
