// SPDX-License-Identifier: MIT
// Package: surfgeo/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers use errors.Is.
//   • Context is attached with %w and the method tag of the builder.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the allowed minimum
// (Grid rows/cols < 2, negative subdivision level, ...).
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrUnknownSolid indicates a PlatonicName without a triangulated shell.
var ErrUnknownSolid = errors.New("builder: unknown or non-triangulated solid")

// ErrBadFace indicates a face with an out-of-range or repeated vertex index.
var ErrBadFace = errors.New("builder: invalid face")
