// SPDX-License-Identifier: MIT

// Package metrics exports geodesic engine activity to Prometheus.
//
// A Collector implements geodesic.Observer; pass it to geodesic.New with
// geodesic.WithObserver. Metrics are registered on the Registerer given to
// New, so tests and embedders can use a private registry.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/surfgeo/geodesic"
)

const namespace = "surfgeo"

// Collector records engine builds and queries.
type Collector struct {
	Queries       *prometheus.CounterVec
	QueryDuration *prometheus.HistogramVec
	Finalized     *prometheus.HistogramVec
	Vertices      prometheus.Gauge
	Edges         *prometheus.GaugeVec
	BuildDuration prometheus.Histogram
}

// New creates a Collector and registers its metrics on reg.
// A nil reg means prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)

	return &Collector{
		Queries: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "queries_total",
				Help:      "Geodesic queries by kind and outcome.",
			},
			[]string{"kind", "status"},
		),
		QueryDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "query_duration_seconds",
				Help:      "Wall time of geodesic queries.",
				Buckets:   []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1, 10, 60},
			},
			[]string{"kind"},
		),
		Finalized: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "query_finalized_vertices",
				Help:      "Vertices settled per query.",
				Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
			},
			[]string{"kind"},
		),
		Vertices: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "engine_vertices",
			Help:      "Vertex count of the most recently built engine.",
		}),
		Edges: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "engine_edges",
				Help:      "Directed edge count of the most recently built engine.",
			},
			[]string{"table"},
		),
		BuildDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "engine_build_duration_seconds",
			Help:      "Time spent precomputing adjacency tables.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

// ObserveBuild implements geodesic.Observer.
func (c *Collector) ObserveBuild(vertices, edges, smoothedEdges int, elapsed time.Duration) {
	c.Vertices.Set(float64(vertices))
	c.Edges.WithLabelValues("one_hop").Set(float64(edges))
	c.Edges.WithLabelValues("two_hop").Set(float64(smoothedEdges))
	c.BuildDuration.Observe(elapsed.Seconds())
}

// ObserveQuery implements geodesic.Observer.
func (c *Collector) ObserveQuery(kind geodesic.QueryKind, finalized int, elapsed time.Duration, err error) {
	k := string(kind)
	c.Queries.WithLabelValues(k, status(err)).Inc()
	if err != nil {
		return
	}
	c.QueryDuration.WithLabelValues(k).Observe(elapsed.Seconds())
	c.Finalized.WithLabelValues(k).Observe(float64(finalized))
}

func status(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, geodesic.ErrAllocation):
		return "allocation"
	default:
		return "invalid"
	}
}

var _ geodesic.Observer = (*Collector)(nil)
