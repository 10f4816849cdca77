// SPDX-License-Identifier: MIT

package geodesic

import (
	"log/slog"
	"time"
)

// NoParent marks a vertex that was not reached by a search.
const NoParent = -1

// defaultEpsilon is the length below which an unfolding edge or cross
// product is treated as degenerate.
const defaultEpsilon = 1e-12

// Reached is one (vertex, distance) pair produced by a bounded search.
// Parent is the previous vertex on the shortest path back to the root; the
// root is its own parent.
type Reached struct {
	Vertex   int
	Distance float64
	Parent   int
}

// QueryKind names a query entry point for observers.
type QueryKind string

const (
	QueryWithin   QueryKind = "within"
	QueryFrom     QueryKind = "from"
	QueryTo       QueryKind = "to"
	QueryAllPairs QueryKind = "all_pairs"
)

// Observer receives a callback after construction and after every query.
// Implementations must be safe for concurrent use when shared between
// engines. See package metrics for a Prometheus implementation.
type Observer interface {
	ObserveBuild(vertices, edges, smoothedEdges int, elapsed time.Duration)
	ObserveQuery(kind QueryKind, finalized int, elapsed time.Duration, err error)
}

// ProgressFunc is called by AllPairs after each root with the number of
// roots completed so far and the total.
type ProgressFunc func(done, total int)

// Options configures an Engine.
//
// Logger         – structured logger; defaults to a discarding logger.
// Observer       – optional metrics sink; nil disables observation.
// MaxMatrixBytes – upper bound for the all-pairs matrices; 0 means no limit.
//                  Defaults to half the Go memory limit or of physical memory.
// Progress       – optional all-pairs progress callback.
// Epsilon        – degeneracy threshold used while unfolding triangle pairs.
type Options struct {
	Logger         *slog.Logger
	Observer       Observer
	MaxMatrixBytes int64
	Progress       ProgressFunc
	Epsilon        float64
}

// Option represents a functional option for configuring an Engine.
type Option func(*Options)

// DefaultOptions returns the options used when none are supplied.
func DefaultOptions() Options {
	return Options{
		Logger:         slog.New(slog.DiscardHandler),
		MaxMatrixBytes: defaultMatrixBudget(),
		Epsilon:        defaultEpsilon,
	}
}

// WithLogger sets the structured logger. A nil logger keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithObserver installs a metrics observer.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		o.Observer = obs
	}
}

// WithMaxMatrixBytes caps the memory AllPairs may request for its two N×N
// matrices. Zero removes the cap, leaving the process exposed to a fatal
// out-of-memory error. Panics with ErrBadOption when n is negative.
func WithMaxMatrixBytes(n int64) Option {
	if n < 0 {
		panic(ErrBadOption.Error())
	}
	return func(o *Options) {
		o.MaxMatrixBytes = n
	}
}

// WithProgress sets the all-pairs progress callback.
func WithProgress(fn ProgressFunc) Option {
	return func(o *Options) {
		o.Progress = fn
	}
}

// WithEpsilon sets the degeneracy threshold for triangle unfolding.
// Panics with ErrBadOption when eps is negative.
func WithEpsilon(eps float64) Option {
	if eps < 0 {
		panic(ErrBadOption.Error())
	}
	return func(o *Options) {
		o.Epsilon = eps
	}
}

// vertexState is the per-vertex search status kept in scratch memory.
type vertexState uint8

const (
	stateUnvisited    vertexState = iota // no tentative distance yet
	stateQueued                          // tentative distance recorded, entry on the heap
	stateSeeded                          // distance known before the search (all-pairs)
	stateSeededQueued                    // known distance, entry on the heap
	stateFinalized                       // distance is final
)
