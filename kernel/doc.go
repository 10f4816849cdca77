// SPDX-License-Identifier: MIT

// Package kernel builds geodesic Gaussian smoothing kernels on a surface
// and applies them to per-vertex scalar data.
//
// For every vertex v the kernel holds the vertices within cutoff·σ of v
// (geodesic distance, smoothed edges on) and the weights
//
//	w = exp(-(d/σ)²/2)
//
// normalised to sum to one. When the radius search returns fewer than
// DefaultMinNeighbors vertices, typically because σ is small against the
// local edge length, the kernel falls back to v and its 1-ring with
// distances from a subset query.
//
// Build runs on a bounded errgroup. A geodesic.Engine serializes its
// queries, so each worker constructs and owns its own engine over the same
// surface instead of sharing one.
//
//	k, err := kernel.Build(ctx, surf, surf.Topology(), 2.0, kernel.WithWorkers(4))
//	smoothed, err := k.Smooth(thickness, 3)
package kernel
