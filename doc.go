// Package surfgeo computes approximate geodesic distances on triangulated
// surface meshes.
//
// 🚀 What is surfgeo?
//
//	A small library and command that bring together:
//		• Surfaces: coordinate & topology providers plus an in-memory mesh
//		• Geodesics: Dijkstra over 1-hop edges, optionally sharpened by
//		  2-hop shortcuts unfolded across adjacent triangle pairs
//		• Queries: radius ball, single source, target subset, all pairs
//		• Kernels: geodesic Gaussian smoothing built on a worker pool
//		• Regions: seed growing, dilation and erosion as roaring bitmaps
//
// Under the hood, everything is organized under these subpackages:
//
//	mesh/      — CoordinateProvider, TopologyProvider and Surface
//	builder/   — synthetic surfaces: Platonic solids, icospheres, grids, strips
//	geodesic/  — the distance engine, all-pairs matrices and path read-out
//	kernel/    — per-vertex Gaussian kernels and scalar smoothing
//	roi/       — regions of interest over an engine
//	metrics/   — Prometheus observer for engine builds and queries
//	config/    — YAML configuration for cmd/surfgeo
//
// Quick ASCII example:
//
//	    a
//	   / \
//	  s0──s1
//	   \ /
//	    b
//
//	two triangles sharing edge s0–s1: the 1-hop path a→s0→b is bent, the
//	smoothed edge a→b runs straight across the unfolded pair.
//
//	go get github.com/katalvlaran/surfgeo
package surfgeo
