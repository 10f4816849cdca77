// SPDX-License-Identifier: MIT

package kernel

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/katalvlaran/surfgeo/geodesic"
)

const (
	// DefaultCutoff is the search radius in units of sigma.
	DefaultCutoff = 4.0

	// DefaultMinNeighbors is the smallest kernel, centre included, that is
	// accepted from the radius search before falling back to the 1-ring.
	DefaultMinNeighbors = 7
)

// Option configures Build.
type Option func(*config)

type config struct {
	workers      int
	cutoff       float64
	minNeighbors int
	logger       *slog.Logger
	engineOpts   []geodesic.Option
}

func defaultConfig() config {
	return config{
		workers:      runtime.GOMAXPROCS(0),
		cutoff:       DefaultCutoff,
		minNeighbors: DefaultMinNeighbors,
		logger:       slog.New(slog.DiscardHandler),
	}
}

// WithWorkers bounds the number of goroutines, each owning one engine.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("kernel: WithWorkers(%d): need at least one worker", n))
	}
	return func(c *config) { c.workers = n }
}

// WithCutoff sets the search radius as a multiple of sigma. Panics if m <= 0.
func WithCutoff(m float64) Option {
	if !(m > 0) {
		panic(fmt.Sprintf("kernel: WithCutoff(%g): must be positive", m))
	}
	return func(c *config) { c.cutoff = m }
}

// WithMinNeighbors sets the fallback threshold. Panics if k < 1.
func WithMinNeighbors(k int) Option {
	if k < 1 {
		panic(fmt.Sprintf("kernel: WithMinNeighbors(%d): must be positive", k))
	}
	return func(c *config) { c.minNeighbors = k }
}

// WithLogger routes build diagnostics to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithEngineOptions forwards options to every per-worker geodesic engine.
func WithEngineOptions(opts ...geodesic.Option) Option {
	return func(c *config) { c.engineOpts = append(c.engineOpts, opts...) }
}
