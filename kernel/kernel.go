// SPDX-License-Identifier: MIT

package kernel

import (
	"context"
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/surfgeo/geodesic"
	"github.com/katalvlaran/surfgeo/mesh"
)

// Kernels is an immutable set of per-vertex smoothing kernels in CSR form.
// It is safe for concurrent use.
type Kernels struct {
	sigma    float64
	off      []int
	nbr      []int
	weight   []float64
	fallback int
}

type row struct {
	nbr    []int
	weight []float64
}

// Build computes one kernel per vertex of the surface.
//
// Work is split into contiguous vertex ranges handed to at most
// WithWorkers goroutines. Each goroutine builds a private geodesic.Engine,
// so the precomputation is repeated per worker and queries never contend.
// Build returns ctx.Err() if the context is cancelled first.
func Build(ctx context.Context, coords mesh.CoordinateProvider, topo mesh.TopologyProvider, sigma float64, opts ...Option) (*Kernels, error) {
	if !(sigma > 0) || math.IsInf(sigma, 1) {
		return nil, fmt.Errorf("Build: sigma %g: %w", sigma, ErrBadSigma)
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if coords.Count() != topo.Count() {
		return nil, fmt.Errorf("Build: %d coordinates, %d topology vertices: %w",
			coords.Count(), topo.Count(), geodesic.ErrCountMismatch)
	}

	start := time.Now()
	n := coords.Count()
	rows := make([]row, n)
	var fallback atomic.Int64

	workers := cfg.workers
	if workers > n {
		workers = max(n, 1)
	}
	chunk := (n + workers - 1) / workers

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		g.Go(func() error {
			eng, err := geodesic.New(coords, topo, cfg.engineOpts...)
			if err != nil {
				return fmt.Errorf("Build: %w", err)
			}
			for v := lo; v < hi; v++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				r, fellBack, err := vertexKernel(eng, v, sigma, &cfg)
				if err != nil {
					return fmt.Errorf("Build: vertex %d: %w", v, err)
				}
				if fellBack {
					fallback.Add(1)
				}
				rows[v] = r
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	k := &Kernels{sigma: sigma, off: make([]int, n+1), fallback: int(fallback.Load())}
	for v, r := range rows {
		k.off[v+1] = k.off[v] + len(r.nbr)
	}
	k.nbr = make([]int, 0, k.off[n])
	k.weight = make([]float64, 0, k.off[n])
	for _, r := range rows {
		k.nbr = append(k.nbr, r.nbr...)
		k.weight = append(k.weight, r.weight...)
	}

	cfg.logger.Debug("geodesic kernels built",
		"vertices", n,
		"sigma", sigma,
		"entries", len(k.nbr),
		"fallback", k.fallback,
		"workers", workers,
		"elapsed", time.Since(start),
	)

	return k, nil
}

func vertexKernel(eng *geodesic.Engine, v int, sigma float64, cfg *config) (row, bool, error) {
	reached, err := eng.Within(v, cfg.cutoff*sigma, true)
	if err != nil {
		return row{}, false, err
	}

	var r row
	fellBack := len(reached) < cfg.minNeighbors
	if fellBack {
		ring, _ := eng.Neighbors(v)
		r.nbr = make([]int, 0, len(ring)+1)
		r.nbr = append(r.nbr, v)
		r.nbr = append(r.nbr, ring...)
		r.weight, err = eng.To(v, r.nbr, true)
		if err != nil {
			return row{}, false, err
		}
	} else {
		r.nbr = make([]int, len(reached))
		r.weight = make([]float64, len(reached))
		for i, x := range reached {
			r.nbr[i] = x.Vertex
			r.weight[i] = x.Distance
		}
	}

	for i, d := range r.weight {
		q := d / sigma
		r.weight[i] = math.Exp(-q * q / 2)
	}
	// The centre always carries weight 1, so the sum is never zero.
	floats.Scale(1/floats.Sum(r.weight), r.weight)

	return r, fellBack, nil
}

// Count returns the number of vertices.
func (k *Kernels) Count() int { return len(k.off) - 1 }

// Sigma returns the kernel width.
func (k *Kernels) Sigma() float64 { return k.sigma }

// Fallbacks reports how many vertices use the 1-ring fallback kernel.
func (k *Kernels) Fallbacks() int { return k.fallback }

// Weights returns the neighbors of v and their normalised weights. The
// slices alias kernel storage and must not be modified.
func (k *Kernels) Weights(v int) ([]int, []float64) {
	if v < 0 || v >= k.Count() {
		return nil, nil
	}
	lo, hi := k.off[v], k.off[v+1]

	return k.nbr[lo:hi:hi], k.weight[lo:hi:hi]
}

// Apply writes the kernel-weighted average of values around every vertex
// into dst, reusing it when large enough. dst must not alias values.
func (k *Kernels) Apply(values, dst []float64) ([]float64, error) {
	n := k.Count()
	if len(values) != n {
		return nil, fmt.Errorf("Apply: %d values for %d vertices: %w", len(values), n, ErrLengthMismatch)
	}
	if cap(dst) >= n {
		dst = dst[:n]
	} else {
		dst = make([]float64, n)
	}
	for v := 0; v < n; v++ {
		var acc float64
		for i := k.off[v]; i < k.off[v+1]; i++ {
			acc += k.weight[i] * values[k.nbr[i]]
		}
		dst[v] = acc
	}

	return dst, nil
}

// Smooth applies the kernels iterations times and returns a new slice;
// values is left untouched. Zero iterations returns a copy.
func (k *Kernels) Smooth(values []float64, iterations int) ([]float64, error) {
	if iterations < 0 {
		return nil, fmt.Errorf("Smooth: %d: %w", iterations, ErrBadIterations)
	}
	if len(values) != k.Count() {
		return nil, fmt.Errorf("Smooth: %d values for %d vertices: %w", len(values), k.Count(), ErrLengthMismatch)
	}
	cur := make([]float64, len(values))
	copy(cur, values)
	next := make([]float64, len(values))
	for it := 0; it < iterations; it++ {
		next, _ = k.Apply(cur, next)
		cur, next = next, cur
	}

	return cur, nil
}
