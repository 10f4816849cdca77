// SPDX-License-Identifier: MIT

package geodesic

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/surfgeo/mesh"
)

const opNew = "New"

// adjacency is a compressed neighbor table: the neighbors of v are
// nbr[off[v]:off[v+1]] with lengths dist[off[v]:off[v+1]].
type adjacency struct {
	off  []int
	nbr  []int
	dist []float64
}

func (a *adjacency) span(v int) (lo, hi int) { return a.off[v], a.off[v+1] }

func (a *adjacency) edges() int { return len(a.nbr) }

// lookup returns the stored length of the edge v→w.
func (a *adjacency) lookup(v, w int) (float64, bool) {
	lo, hi := a.span(v)
	for k := lo; k < hi; k++ {
		if a.nbr[k] == w {
			return a.dist[k], true
		}
	}

	return 0, false
}

// readProviders copies the positions and builds the 1-hop table. A provider
// that panics, typically by indexing past a short neighbor list, is
// reported as ErrBadTopology.
func readProviders(coords mesh.CoordinateProvider, topo mesh.TopologyProvider) (pos []r3.Vec, one adjacency, err error) {
	defer func() {
		if r := recover(); r != nil {
			pos, one = nil, adjacency{}
			err = fmt.Errorf("%s: provider failed: %v: %w", opNew, r, ErrBadTopology)
		}
	}()

	pos = make([]r3.Vec, coords.Count())
	for i := range pos {
		pos[i] = coords.Position(i)
	}
	one, err = buildOneHop(pos, topo)
	if err != nil {
		return nil, adjacency{}, err
	}

	return pos, one, nil
}

// buildOneHop copies the ordered 1-rings and precomputes Euclidean lengths.
func buildOneHop(pos []r3.Vec, topo mesh.TopologyProvider) (adjacency, error) {
	n := len(pos)
	total := 0
	for v := 0; v < n; v++ {
		total += len(topo.Neighbors(v))
	}
	a := adjacency{
		off:  make([]int, n+1),
		nbr:  make([]int, 0, total),
		dist: make([]float64, 0, total),
	}
	for v := 0; v < n; v++ {
		for _, w := range topo.Neighbors(v) {
			if w < 0 || w >= n {
				return adjacency{}, fmt.Errorf("%s: vertex %d lists neighbor %d: %w", opNew, v, w, ErrBadTopology)
			}
			a.nbr = append(a.nbr, w)
			a.dist = append(a.dist, r3.Norm(r3.Sub(pos[v], pos[w])))
		}
		a.off[v+1] = len(a.nbr)
	}

	return a, nil
}

// Scratch marks used while collecting second-order neighbors of one vertex.
// Values above markSeen encode the slot of the candidate in the output list
// as mark-markSeen-1.
const (
	markNone = 0 // not related to the current vertex
	markRing = 1 // the vertex itself or one of its 1-hop neighbors
	markSeen = 2 // reached once through a single 1-hop neighbor
)

// buildTwoHop synthesizes the smoothed second-order edges. A vertex b two
// hops from v gets an edge only if it is reached through at least two
// different 1-hop neighbors, i.e. v and b sit on opposite sides of a shared
// edge and the triangle pair can be unfolded. Entries with b < v are copied
// from b's table, which was built first. It returns the table and the
// number of rejected unfoldings.
func buildTwoHop(pos []r3.Vec, one *adjacency, eps float64) (adjacency, int) {
	n := len(pos)
	two := adjacency{off: make([]int, n+1)}

	mark := make([]int, n)
	side := make([]int, n) // first 1-hop neighbor through which b was seen
	var (
		touched  []int
		slotNbr  []int
		slotDist []float64
		rejected int
	)

	for v := 0; v < n; v++ {
		touched, slotNbr, slotDist = touched[:0], slotNbr[:0], slotDist[:0]
		lo, hi := one.span(v)
		mark[v] = markRing
		for k := lo; k < hi; k++ {
			mark[one.nbr[k]] = markRing
		}

		for k := lo; k < hi; k++ {
			a := one.nbr[k]
			alo, ahi := one.span(a)
			for kk := alo; kk < ahi; kk++ {
				b := one.nbr[kk]
				m := mark[b]
				if m == markRing {
					continue
				}
				if m == markNone {
					mark[b] = markSeen
					side[b] = a
					touched = append(touched, b)
					continue
				}

				var d float64
				if b < v {
					var found bool
					if d, found = two.lookup(b, v); !found {
						continue // rejected by the reverse construction as well
					}
				} else {
					var nearA2, ok bool
					d, nearA2, ok = unfold(pos[v], pos[side[b]], pos[a], pos[b], eps)
					if nearA2 {
						side[b] = a
					}
					if !ok {
						rejected++
						continue
					}
				}

				if m == markSeen {
					slotNbr = append(slotNbr, b)
					slotDist = append(slotDist, d)
					mark[b] = len(slotNbr) + markSeen
				} else if slot := m - markSeen - 1; d < slotDist[slot] {
					slotDist[slot] = d
				}
			}
		}

		two.nbr = append(two.nbr, slotNbr...)
		two.dist = append(two.dist, slotDist...)
		two.off[v+1] = len(two.nbr)

		for k := lo; k < hi; k++ {
			mark[one.nbr[k]] = markNone
		}
		for _, b := range touched {
			mark[b] = markNone
		}
		mark[v] = markNone
	}

	return two, rejected
}
