// SPDX-License-Identifier: MIT

package geodesic

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// unfold approximates the surface distance from v to b across the two
// triangles (v, a1, a2) and (b, a1, a2) hinged on the shared edge a1–a2.
//
// The crossing point x is taken where the segment v–b comes closest to the
// line through a1 and a2; when the triangles lie in one plane x is the exact
// intersection and the result is |v-b|. The shortcut is rejected (ok=false)
// when x falls outside the shared edge, or when the configuration is
// degenerate (parallel lines, zero-length edge, non-finite values); plain
// graph search then finds the distance through regular edges.
//
// nearA2 reports whether x lies in the half of the edge next to a2, whether
// or not the shortcut is accepted.
//
// Complexity: O(1).
func unfold(v, a1, a2, b r3.Vec, eps float64) (dist float64, nearA2, ok bool) {
	ep := r3.Sub(v, b)   // b → v
	ns := r3.Sub(a1, a2) // shared edge, a2 → a1
	ne := r3.Sub(b, a2)  // a2 → b

	cross := r3.Cross(ep, ns)
	full := r3.Norm(cross)
	if !(full > eps) {
		return 0, false, false
	}
	normal := r3.Scale(1/full, cross)
	gap := r3.Scale(r3.Dot(normal, ne), normal) // common perpendicular between the two lines

	part := r3.Norm(r3.Cross(r3.Sub(ne, gap), ns))
	x := r3.Sub(r3.Add(b, r3.Scale(part/full, ep)), gap)

	edge := r3.Norm(ns)
	if !(edge > eps) {
		return 0, false, false
	}
	t := r3.Dot(r3.Scale(1/edge, ns), r3.Sub(x, a2)) // position of x along a2 → a1
	if math.IsNaN(t) {
		return 0, false, false
	}
	nearA2 = t < edge*0.5
	if t < 0 || t > edge {
		return 0, nearA2, false
	}

	dist = r3.Norm(r3.Sub(v, x)) + r3.Norm(r3.Sub(x, b))
	if straight := r3.Norm(ep); straight > dist {
		dist = straight // rounding can leave the bent path shorter than the chord
	}
	if math.IsNaN(dist) || math.IsInf(dist, 0) {
		return 0, nearA2, false
	}

	return dist, nearA2, true
}
