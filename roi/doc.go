// SPDX-License-Identifier: MIT

// Package roi selects regions of interest on a surface as compressed vertex
// sets.
//
// A region is a *roaring.Bitmap of vertex indices, so the usual set algebra
// (Or, And, AndNot, Xor) applies directly. Grow returns the union of
// geodesic balls around seed vertices; Dilate and Erode move a region
// boundary by whole 1-ring steps; Boundary extracts the vertices of a
// region that touch its complement.
package roi
