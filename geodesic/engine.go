// SPDX-License-Identifier: MIT

package geodesic

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/katalvlaran/surfgeo/mesh"
)

// Engine answers geodesic distance queries on one surface snapshot.
//
// The adjacency tables are built once by New and never change; they may be
// read concurrently. Queries share scratch buffers sized to the surface, so
// every query holds the engine mutex for its whole duration: concurrent
// callers are safe but serialized. Use one Engine per goroutine for
// parallelism (see package kernel).
type Engine struct {
	n    int
	cfg  Options
	one  adjacency // 1-hop edges
	two  adjacency // synthesized 2-hop edges
	rejd int       // unfoldings rejected during construction

	mu       sync.Mutex
	out      []float64     // tentative/final distance per vertex, +Inf at rest
	parent   []int         // predecessor per vertex, NoParent at rest
	state    []vertexState // stateUnvisited at rest
	interest []bool        // subset queries only, false at rest
	changed  []int         // vertices that left their resting value
	queue    vertexQueue
}

// New precomputes the 1-hop and 2-hop adjacency of the surface described by
// coords and topo.
//
// When the providers disagree on the vertex count, a neighbor index is out
// of range, or a provider panics while being read, New returns a valid
// empty engine (Count() == 0) together with ErrCountMismatch or
// ErrBadTopology. Every query on an empty engine
// fails validation and returns an empty result.
//
// Complexity: O(N·k²) time for average degree k, O(N·k) space.
func New(coords mesh.CoordinateProvider, topo mesh.TopologyProvider, opts ...Option) (*Engine, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	e := &Engine{cfg: cfg}

	if coords.Count() != topo.Count() {
		cfg.Logger.Warn("geodesic engine left empty",
			"coordinates", coords.Count(),
			"topology", topo.Count(),
		)
		return e, fmt.Errorf("%s: %d coordinates, %d topology vertices: %w",
			opNew, coords.Count(), topo.Count(), ErrCountMismatch)
	}

	start := time.Now()
	pos, one, err := readProviders(coords, topo)
	if err != nil {
		cfg.Logger.Warn("geodesic engine left empty", "error", err)
		return e, err
	}
	n := len(pos)
	two, rejected := buildTwoHop(pos, &one, cfg.Epsilon)

	e.n = n
	e.one = one
	e.two = two
	e.rejd = rejected
	e.out = make([]float64, n)
	e.parent = make([]int, n)
	e.state = make([]vertexState, n)
	e.interest = make([]bool, n)
	e.changed = make([]int, 0, n)
	e.queue = newVertexQueue(n)
	for i := 0; i < n; i++ {
		e.out[i] = math.Inf(1)
		e.parent[i] = NoParent
	}

	elapsed := time.Since(start)
	cfg.Logger.Debug("geodesic engine built",
		"vertices", n,
		"edges", one.edges(),
		"smoothed_edges", two.edges(),
		"rejected_unfoldings", rejected,
		"elapsed", elapsed,
	)
	if cfg.Observer != nil {
		cfg.Observer.ObserveBuild(n, one.edges(), two.edges(), elapsed)
	}

	return e, nil
}

// Count returns the number of vertices, 0 for an empty engine.
func (e *Engine) Count() int { return e.n }

// Neighbors returns the 1-hop neighbors of v and their edge lengths. The
// slices alias immutable engine storage and must not be modified. It
// returns nil slices when v is out of range.
func (e *Engine) Neighbors(v int) ([]int, []float64) {
	if v < 0 || v >= e.n {
		return nil, nil
	}
	lo, hi := e.one.span(v)

	return e.one.nbr[lo:hi:hi], e.one.dist[lo:hi:hi]
}

// SmoothedNeighbors returns the synthesized 2-hop neighbors of v and their
// unfolded distances, with the same aliasing rules as Neighbors.
func (e *Engine) SmoothedNeighbors(v int) ([]int, []float64) {
	if v < 0 || v >= e.n {
		return nil, nil
	}
	lo, hi := e.two.span(v)

	return e.two.nbr[lo:hi:hi], e.two.dist[lo:hi:hi]
}

// RejectedUnfoldings reports how many second-order shortcut candidates were
// discarded during construction because the unfolding was degenerate or the
// crossing point fell outside the shared edge.
func (e *Engine) RejectedUnfoldings() int { return e.rejd }

func (e *Engine) validVertex(v int) bool { return v >= 0 && v < e.n }

func (e *Engine) observe(kind QueryKind, finalized int, start time.Time, err error) {
	if e.cfg.Observer != nil {
		e.cfg.Observer.ObserveQuery(kind, finalized, time.Since(start), err)
	}
}

// Within returns every vertex whose geodesic distance from root is at most
// radius, in order of increasing distance, with its parent on the shortest
// path. With smooth set, the 2-hop unfolded edges take part in the search.
//
// Errors: ErrVertexOutOfRange, ErrNegativeRadius (result is nil).
func (e *Engine) Within(root int, radius float64, smooth bool) ([]Reached, error) {
	start := time.Now()
	if !e.validVertex(root) {
		err := fmt.Errorf("Within: root %d of %d: %w", root, e.n, ErrVertexOutOfRange)
		e.observe(QueryWithin, 0, start, err)
		return nil, err
	}
	if !(radius >= 0) {
		err := fmt.Errorf("Within: radius %g: %w", radius, ErrNegativeRadius)
		e.observe(QueryWithin, 0, start, err)
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	var res []Reached
	e.search(root, radius, smooth, -1, func(v int) {
		res = append(res, Reached{Vertex: v, Distance: e.out[v], Parent: e.parent[v]})
	})
	e.reset()
	e.observe(QueryWithin, len(res), start, nil)

	return res, nil
}

// From computes the distance from root to every vertex. Unreachable
// vertices get +Inf. The result is written into dst when it has enough
// capacity, otherwise a new slice is allocated.
//
// Errors: ErrVertexOutOfRange (result is nil).
func (e *Engine) From(root int, smooth bool, dst []float64) ([]float64, error) {
	dist, _, err := e.from(root, smooth, dst, nil, false)

	return dist, err
}

// FromParents is From that also returns the shortest-path tree: parents[v]
// is the predecessor of v, parents[root] == root and unreachable vertices
// have NoParent. Both buffers are reused when large enough.
func (e *Engine) FromParents(root int, smooth bool, dst []float64, parents []int) ([]float64, []int, error) {
	return e.from(root, smooth, dst, parents, true)
}

func (e *Engine) from(root int, smooth bool, dst []float64, parents []int, wantParents bool) ([]float64, []int, error) {
	start := time.Now()
	if !e.validVertex(root) {
		err := fmt.Errorf("From: root %d of %d: %w", root, e.n, ErrVertexOutOfRange)
		e.observe(QueryFrom, 0, start, err)
		return nil, nil, err
	}

	dst = resize(dst, e.n)
	for i := range dst {
		dst[i] = math.Inf(1)
	}
	if wantParents {
		parents = resize(parents, e.n)
		for i := range parents {
			parents[i] = NoParent
		}
	} else {
		parents = nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	finalized := 0
	e.search(root, math.Inf(1), smooth, -1, func(v int) {
		finalized++
		dst[v] = e.out[v]
		if parents != nil {
			parents[v] = e.parent[v]
		}
	})
	e.reset()
	e.observe(QueryFrom, finalized, start, nil)

	return dst, parents, nil
}

// To returns the distance from root to each vertex of targets, aligned with
// targets. The search stops as soon as every target is final. Unreachable
// targets get +Inf; duplicates are allowed.
//
// Errors: ErrVertexOutOfRange for root or any target (result is nil).
func (e *Engine) To(root int, targets []int, smooth bool) ([]float64, error) {
	start := time.Now()
	if !e.validVertex(root) {
		err := fmt.Errorf("To: root %d of %d: %w", root, e.n, ErrVertexOutOfRange)
		e.observe(QueryTo, 0, start, err)
		return nil, err
	}
	for i, t := range targets {
		if !e.validVertex(t) {
			err := fmt.Errorf("To: targets[%d]=%d of %d: %w", i, t, e.n, ErrVertexOutOfRange)
			e.observe(QueryTo, 0, start, err)
			return nil, err
		}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	remain := 0
	for _, t := range targets {
		if !e.interest[t] {
			e.touch(t)
			e.interest[t] = true
			remain++
		}
	}
	finalized := 0
	e.search(root, math.Inf(1), smooth, remain, func(int) { finalized++ })

	res := make([]float64, len(targets))
	for i, t := range targets {
		if e.state[t] == stateFinalized {
			res[i] = e.out[t]
		} else {
			res[i] = math.Inf(1)
		}
	}
	e.reset()
	e.observe(QueryTo, finalized, start, nil)

	return res, nil
}

func resize[T any](buf []T, n int) []T {
	if cap(buf) >= n {
		return buf[:n]
	}

	return make([]T, n)
}
