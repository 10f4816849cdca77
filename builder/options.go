// SPDX-License-Identifier: MIT
// Package: surfgeo/builder
//
// options.go — functional options for the surface builders.
//
// Contract (strict):
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Builders themselves never panic; they return sentinel errors.
//   • Determinism is explicit: jitter is drawn from a seeded *rand.Rand.

package builder

import (
	"math/rand"
)

// Option customizes a builder by mutating a builderConfig before
// construction begins.
type Option func(*builderConfig)

// builderConfig is the single source of truth for builder knobs.
//
// Deterministic defaults:
//   • scale  = 1.0  (edge length for Tetrahedron/Strip, radius for spheres,
//                    spacing for Grid)
//   • jitter = 0.0  (no displacement)
//   • rng    = rand.New(rand.NewSource(1))
type builderConfig struct {
	scale  float64
	jitter float64
	rng    *rand.Rand
}

func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		scale: 1.0,
		rng:   rand.New(rand.NewSource(defaultSeed)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithScale sets the characteristic length of the surface.
// Panics if s is not strictly positive.
func WithScale(s float64) Option {
	if !(s > 0) {
		panic("builder: WithScale requires s > 0")
	}
	return func(c *builderConfig) {
		c.scale = s
	}
}

// WithJitter displaces every vertex by a uniform random offset in
// [-amp, amp]: along z for Grid, radially for the spheres. Topology is
// unchanged. Panics if amp is negative.
func WithJitter(amp float64) Option {
	if amp < 0 {
		panic("builder: WithJitter requires amp >= 0")
	}
	return func(c *builderConfig) {
		c.jitter = amp
	}
}

// WithSeed reseeds the jitter source.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// offset draws one jitter sample.
func (c builderConfig) offset() float64 {
	if c.jitter == 0 {
		return 0
	}

	return (2*c.rng.Float64() - 1) * c.jitter
}
