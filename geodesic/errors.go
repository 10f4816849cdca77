// SPDX-License-Identifier: MIT
// Package geodesic: sentinel error set.
//
// Every query validates its arguments before touching scratch state and
// returns one of these sentinels (possibly wrapped with %w and an operation
// tag). Invalid calls always come back with a nil/empty result; callers
// treat an empty result as "distance unknown".

package geodesic

import "errors"

var (
	// ErrCountMismatch is returned by New when the coordinate provider and
	// the topology provider disagree on the number of vertices. The engine
	// returned alongside it is valid but empty (Count() == 0).
	ErrCountMismatch = errors.New("geodesic: coordinate and topology vertex counts differ")

	// ErrBadTopology is returned by New when a neighbor index is outside
	// 0..N-1. The engine returned alongside it is valid but empty.
	ErrBadTopology = errors.New("geodesic: neighbor index out of range")

	// ErrVertexOutOfRange indicates a root or target index outside 0..N-1.
	ErrVertexOutOfRange = errors.New("geodesic: vertex index out of range")

	// ErrNegativeRadius indicates a negative (or NaN) search radius.
	ErrNegativeRadius = errors.New("geodesic: radius must be non-negative")

	// ErrEmptyEngine indicates a query against an engine with no vertices.
	ErrEmptyEngine = errors.New("geodesic: engine has no vertices")

	// ErrAllocation indicates that the all-pairs matrices would overflow or
	// exceed MaxMatrixBytes. Nothing is allocated when it is returned.
	ErrAllocation = errors.New("geodesic: cannot allocate all-pairs matrices")

	// ErrNoPath indicates that the target was not reached from the root, or
	// that the parent array does not describe a tree rooted there.
	ErrNoPath = errors.New("geodesic: no path to target")

	// ErrBadOption is the panic payload of option constructors that receive
	// an out-of-domain value.
	ErrBadOption = errors.New("geodesic: invalid option value")
)
