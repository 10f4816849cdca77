// SPDX-License-Identifier: MIT

package roi

import (
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/surfgeo/geodesic"
)

// Graph is the adjacency read-out Dilate, Erode and Boundary need.
// *geodesic.Engine satisfies it.
type Graph interface {
	Count() int
	Neighbors(v int) ([]int, []float64)
}

// Grow returns every vertex within radius of at least one seed.
//
// Errors: ErrNoSeeds, and the engine's ErrVertexOutOfRange or
// ErrNegativeRadius for the first offending seed.
func Grow(eng *geodesic.Engine, seeds []int, radius float64, smooth bool) (*roaring.Bitmap, error) {
	if len(seeds) == 0 {
		return nil, fmt.Errorf("Grow: %w", ErrNoSeeds)
	}
	region := roaring.New()
	for _, s := range seeds {
		reached, err := eng.Within(s, radius, smooth)
		if err != nil {
			return nil, fmt.Errorf("Grow: seed %d: %w", s, err)
		}
		for _, r := range reached {
			region.Add(uint32(r.Vertex))
		}
	}

	return region, nil
}

// Nearest labels each vertex of region with the index (into seeds) of the
// closest seed, or -1 when no seed reaches it. Ties go to the earlier seed.
// It returns a map keyed by vertex; vertices outside region are omitted.
func Nearest(eng *geodesic.Engine, seeds []int, region *roaring.Bitmap, smooth bool) (map[int]int, error) {
	if len(seeds) == 0 {
		return nil, fmt.Errorf("Nearest: %w", ErrNoSeeds)
	}
	if region == nil {
		return nil, fmt.Errorf("Nearest: %w", ErrNilRegion)
	}
	targets := make([]int, 0, region.GetCardinality())
	it := region.Iterator()
	for it.HasNext() {
		targets = append(targets, int(it.Next()))
	}

	best := make([]float64, len(targets))
	label := make(map[int]int, len(targets))
	for i, t := range targets {
		label[t] = -1
		best[i] = -1
	}
	for si, s := range seeds {
		dist, err := eng.To(s, targets, smooth)
		if err != nil {
			return nil, fmt.Errorf("Nearest: seed %d: %w", s, err)
		}
		for i, d := range dist {
			if !math.IsInf(d, 1) && (best[i] < 0 || d < best[i]) {
				best[i] = d
				label[targets[i]] = si
			}
		}
	}

	return label, nil
}

// Dilate adds the 1-ring of region steps times and returns a new bitmap.
func Dilate(g Graph, region *roaring.Bitmap, steps int) (*roaring.Bitmap, error) {
	if steps < 0 {
		return nil, fmt.Errorf("Dilate: %d: %w", steps, ErrBadSteps)
	}
	if region == nil {
		return nil, fmt.Errorf("Dilate: %w", ErrNilRegion)
	}
	out := region.Clone()
	front := region.Clone()
	for i := 0; i < steps && !front.IsEmpty(); i++ {
		next := roaring.New()
		it := front.Iterator()
		for it.HasNext() {
			v := int(it.Next())
			nbr, _ := g.Neighbors(v)
			for _, w := range nbr {
				if !out.Contains(uint32(w)) {
					next.Add(uint32(w))
				}
			}
		}
		out.Or(next)
		front = next
	}

	return out, nil
}

// Erode removes the boundary of region steps times and returns a new bitmap.
func Erode(g Graph, region *roaring.Bitmap, steps int) (*roaring.Bitmap, error) {
	if steps < 0 {
		return nil, fmt.Errorf("Erode: %d: %w", steps, ErrBadSteps)
	}
	if region == nil {
		return nil, fmt.Errorf("Erode: %w", ErrNilRegion)
	}
	out := region.Clone()
	for i := 0; i < steps && !out.IsEmpty(); i++ {
		out.AndNot(Boundary(g, out))
	}

	return out, nil
}

// Boundary returns the vertices of region with at least one neighbor
// outside it. A nil region has an empty boundary.
func Boundary(g Graph, region *roaring.Bitmap) *roaring.Bitmap {
	edge := roaring.New()
	if region == nil {
		return edge
	}
	it := region.Iterator()
	for it.HasNext() {
		v := it.Next()
		nbr, _ := g.Neighbors(int(v))
		for _, w := range nbr {
			if !region.Contains(uint32(w)) {
				edge.Add(v)
				break
			}
		}
	}

	return edge
}
