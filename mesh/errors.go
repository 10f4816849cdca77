// SPDX-License-Identifier: MIT

package mesh

import "errors"

var (
	// ErrCountMismatch indicates that the coordinate and topology providers
	// report a different number of vertices.
	ErrCountMismatch = errors.New("mesh: coordinate and topology vertex counts differ")

	// ErrBadNeighbor indicates a neighbor index outside 0..N-1 or a self-loop.
	ErrBadNeighbor = errors.New("mesh: invalid neighbor index")

	// ErrAsymmetricEdge indicates that a neighbor relation is not mirrored.
	ErrAsymmetricEdge = errors.New("mesh: neighbor relation is not symmetric")
)
