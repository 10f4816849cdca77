// SPDX-License-Identifier: MIT

package mesh

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// CoordinateProvider exposes read-only vertex positions.
type CoordinateProvider interface {
	// Count returns the number of vertices N.
	Count() int
	// Position returns the position of vertex i, 0 <= i < Count().
	Position(i int) r3.Vec
}

// TopologyProvider exposes the 1-ring adjacency of a surface.
type TopologyProvider interface {
	// Count returns the number of vertices N.
	Count() int
	// Neighbors returns the ordered 1-ring of vertex i. Callers must not
	// modify the returned slice.
	Neighbors(i int) []int
}

// Surface is an in-memory triangulated surface. Coords[i] is the position of
// vertex i and Adjacency[i] its ordered 1-ring.
type Surface struct {
	Coords    []r3.Vec
	Adjacency [][]int
}

var _ CoordinateProvider = (*Surface)(nil)

// NewSurface wraps positions and neighbor lists without copying them.
func NewSurface(coords []r3.Vec, adjacency [][]int) *Surface {
	return &Surface{Coords: coords, Adjacency: adjacency}
}

// Count implements CoordinateProvider. It reports the number of positions;
// Validate checks that the neighbor lists agree.
func (s *Surface) Count() int { return len(s.Coords) }

// Position implements CoordinateProvider.
func (s *Surface) Position(i int) r3.Vec { return s.Coords[i] }

// Ring returns the 1-ring of vertex i. Surface is not a TopologyProvider
// since its Count reports positions; pass Topology() to consumers.
func (s *Surface) Ring(i int) []int { return s.Adjacency[i] }

// EdgeLength returns the Euclidean distance between vertices a and b.
func (s *Surface) EdgeLength(a, b int) float64 {
	return r3.Norm(r3.Sub(s.Coords[a], s.Coords[b]))
}

// Topology returns the TopologyProvider view of s. Its Count is the number
// of neighbor lists, so a consumer comparing it with Count sees a mismatch.
func (s *Surface) Topology() TopologyProvider { return adjacencyView(s.Adjacency) }

// Validate checks that positions and neighbor lists agree on N, that every
// neighbor index is in range and not a self-loop, and that every neighbor
// relation is mirrored.
func (s *Surface) Validate() error {
	n := len(s.Coords)
	if len(s.Adjacency) != n {
		return fmt.Errorf("Validate: %d positions, %d neighbor lists: %w", n, len(s.Adjacency), ErrCountMismatch)
	}
	for v, ring := range s.Adjacency {
		for _, w := range ring {
			if w < 0 || w >= n || w == v {
				return fmt.Errorf("Validate: vertex %d lists %d: %w", v, w, ErrBadNeighbor)
			}
			if !contains(s.Adjacency[w], v) {
				return fmt.Errorf("Validate: %d lists %d but not the reverse: %w", v, w, ErrAsymmetricEdge)
			}
		}
	}

	return nil
}

type adjacencyView [][]int

func (a adjacencyView) Count() int            { return len(a) }
func (a adjacencyView) Neighbors(i int) []int { return a[i] }

func contains(ring []int, v int) bool {
	for _, w := range ring {
		if w == v {
			return true
		}
	}

	return false
}
