// SPDX-License-Identifier: MIT
// Package geodesic
//
// Purpose:
//   - Dense all-pairs geodesic distances without N independent full searches.
//
// Contract:
//   - Roots are processed in increasing index order.
//   - A root starts with every distance already learned from earlier roots
//     pre-seeded; only the rest is found by expansion, and the expansion stops
//     as soon as nothing unknown remains.
//   - After each root, every freshly found shortest path is walked back to the
//     root and each sub-path is written into the matrix rows of its endpoints.

package geodesic

import (
	"fmt"
	"math"
	"time"

	"github.com/dustin/go-humanize"
)

const opAllPairs = "AllPairs"

// unknown marks a matrix cell whose distance has not been learned yet.
const unknown = -1.0

// bytesPerCell is the footprint of one (distance, parent) matrix cell.
const bytesPerCell = 8 + 4

// AllPairs is a dense N×N geodesic distance matrix with the matching
// shortest-path parents. Row i holds the distances from root i.
// Unreachable pairs hold +Inf and NoParent.
type AllPairs struct {
	n      int
	dist   []float64
	parent []int32
}

// Count returns N.
func (a *AllPairs) Count() int { return a.n }

// At returns the distance from i to j.
func (a *AllPairs) At(i, j int) (float64, error) {
	if i < 0 || i >= a.n || j < 0 || j >= a.n {
		return 0, fmt.Errorf("At(%d,%d) of %d: %w", i, j, a.n, ErrVertexOutOfRange)
	}

	return a.dist[i*a.n+j], nil
}

// Parent returns the predecessor of j on the shortest path from i.
func (a *AllPairs) Parent(i, j int) (int, error) {
	if i < 0 || i >= a.n || j < 0 || j >= a.n {
		return NoParent, fmt.Errorf("Parent(%d,%d) of %d: %w", i, j, a.n, ErrVertexOutOfRange)
	}

	return int(a.parent[i*a.n+j]), nil
}

// Row returns the distances from root i. The slice aliases the matrix.
func (a *AllPairs) Row(i int) []float64 {
	if i < 0 || i >= a.n {
		return nil
	}

	return a.dist[i*a.n : (i+1)*a.n : (i+1)*a.n]
}

// Path returns the vertices on the shortest path from i to j, both included.
func (a *AllPairs) Path(i, j int) ([]int, error) {
	if i < 0 || i >= a.n || j < 0 || j >= a.n {
		return nil, fmt.Errorf("Path(%d,%d) of %d: %w", i, j, a.n, ErrVertexOutOfRange)
	}
	row := a.parent[i*a.n : (i+1)*a.n]

	return walkParents(func(v int) int { return int(row[v]) }, a.n, i, j)
}

// AllPairs computes the geodesic distance between every pair of vertices.
//
// The two N×N matrices are allocated up front. If their size overflows or
// exceeds MaxMatrixBytes (by default a share of the memory ceiling, see
// WithMaxMatrixBytes), AllPairs returns (nil, ErrAllocation) without
// allocating. The check is the only guard: an allocation the runtime cannot
// satisfy is a fatal error, not a panic.
//
// The engine lock is held for the whole computation, allocation included.
//
// Complexity: worst case O(N·(V+E) log V) time; O(N²) space.
func (e *Engine) AllPairs(smooth bool) (*AllPairs, error) {
	start := time.Now()
	if e.n == 0 {
		err := fmt.Errorf("%s: %w", opAllPairs, ErrEmptyEngine)
		e.observe(QueryAllPairs, 0, start, err)
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	res, err := e.allocAllPairs()
	if err != nil {
		e.cfg.Logger.Error("all-pairs allocation failed", "vertices", e.n, "error", err)
		e.observe(QueryAllPairs, 0, start, err)
		return nil, err
	}
	e.allToAll(res, smooth)

	elapsed := time.Since(start)
	e.cfg.Logger.Info("all-pairs distances computed",
		"vertices", e.n,
		"smooth", smooth,
		"elapsed", elapsed,
	)
	e.observe(QueryAllPairs, e.n, start, nil)

	return res, nil
}

// allocAllPairs checks the requested size against the budget and allocates
// both matrices.
func (e *Engine) allocAllPairs() (*AllPairs, error) {
	n := e.n
	if n > math.MaxInt32 || n > math.MaxInt/n || n*n > math.MaxInt/bytesPerCell {
		return nil, fmt.Errorf("%s: %d×%d cells overflow: %w", opAllPairs, n, n, ErrAllocation)
	}
	cells := n * n
	bytes := uint64(cells) * bytesPerCell
	if limit := e.cfg.MaxMatrixBytes; limit > 0 && bytes > uint64(limit) {
		return nil, fmt.Errorf("%s: need %s, limit %s: %w",
			opAllPairs, humanize.IBytes(bytes), humanize.IBytes(uint64(limit)), ErrAllocation)
	}
	e.cfg.Logger.Info("allocating all-pairs matrices", "vertices", n, "size", humanize.IBytes(bytes))

	return &AllPairs{
		n:      n,
		dist:   make([]float64, cells),
		parent: make([]int32, cells),
	}, nil
}

// allToAll fills res. The caller holds e.mu; scratch state is restored to
// its resting value before returning.
func (e *Engine) allToAll(res *AllPairs, smooth bool) {
	n := e.n
	dist, parent := res.dist, res.parent
	for i := range dist {
		dist[i] = unknown
		parent[i] = NoParent
	}
	known := make([]bool, n) // distance came from an earlier root

	for root := 0; root < n; root++ {
		row := dist[root*n : (root+1)*n]
		prow := parent[root*n : (root+1)*n]

		remain := 0
		for i := 0; i < n; i++ {
			if i != root && row[i] >= 0 {
				e.state[i] = stateSeeded
				known[i] = true
			} else {
				e.state[i] = stateUnvisited
				known[i] = false
				remain++
			}
		}

		e.queue.clear()
		row[root] = 0
		prow[root] = int32(root)
		e.state[root] = stateQueued
		e.queue.push(root, 0)

		for remain > 0 {
			u, ok := e.queue.popLive(e.isFinal)
			if !ok {
				break
			}
			if !known[u] {
				remain--
			}
			e.state[u] = stateFinalized
			e.relaxRow(u, &e.one, row, prow)
			if smooth {
				e.relaxRow(u, &e.two, row, prow)
			}
		}

		e.propagate(root, dist, parent, known)

		if e.cfg.Progress != nil {
			e.cfg.Progress(root+1, n)
		}
	}

	for i := range dist {
		if dist[i] < 0 {
			dist[i] = math.Inf(1)
		}
	}
	for i := 0; i < n; i++ {
		e.state[i] = stateUnvisited
	}
	e.queue.clear()
}

// relaxRow is relax for one all-pairs row. A pre-seeded neighbor is queued
// once with its known distance instead of being relaxed.
func (e *Engine) relaxRow(u int, adj *adjacency, row []float64, prow []int32) {
	du := row[u]
	lo, hi := adj.span(u)
	for k := lo; k < hi; k++ {
		v := adj.nbr[k]
		switch e.state[v] {
		case stateFinalized, stateSeededQueued:
			continue
		case stateSeeded:
			e.state[v] = stateSeededQueued
			e.queue.push(v, row[v])
		case stateUnvisited:
			cand := du + adj.dist[k]
			row[v] = cand
			prow[v] = int32(u)
			e.state[v] = stateQueued
			e.queue.push(v, cand)
		case stateQueued:
			cand := du + adj.dist[k]
			if cand < row[v] {
				row[v] = cand
				prow[v] = int32(u)
				e.queue.push(v, cand)
			}
		}
	}
}

// propagate spreads the tree of root to later roots. For every target t >
// root found fresh in this pass, each vertex m on the path root→t splits it
// into root→m and m→t, and d(m,t) = d(root,t) - d(root,m). Rows below root
// are already complete and are not written.
func (e *Engine) propagate(root int, dist []float64, parent []int32, known []bool) {
	n := e.n
	row := dist[root*n : (root+1)*n]
	prow := parent[root*n : (root+1)*n]

	for t := root + 1; t < n; t++ {
		if known[t] || e.state[t] != stateFinalized {
			continue // already propagated by an earlier root, or unreachable
		}
		dt := row[t]
		last := prow[t] // predecessor of t on every sub-path ending at t
		step := int32(t)
		m := int(prow[t])
		for hops := 0; m != root; hops++ {
			if m < 0 || hops >= n {
				break
			}
			dm := dt - row[m]
			if m > root {
				dist[m*n+t] = dm
				parent[m*n+t] = last
			}
			dist[t*n+m] = dm
			parent[t*n+m] = step
			step = int32(m)
			m = int(prow[m])
		}
		if m != root {
			continue // broken parent chain: t's row to root stays unknown
		}
		dist[t*n+root] = dt
		parent[t*n+root] = step
	}
}
