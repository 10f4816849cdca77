package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/surfgeo/builder"
	"github.com/katalvlaran/surfgeo/geodesic"
	"github.com/katalvlaran/surfgeo/metrics"
)

// gather indexes the registry's families by name.
func gather(t *testing.T, reg *prometheus.Registry) map[string]*dto.MetricFamily {
	t.Helper()
	mfs, err := reg.Gather()
	require.NoError(t, err)
	out := make(map[string]*dto.MetricFamily, len(mfs))
	for _, mf := range mfs {
		out[mf.GetName()] = mf
	}

	return out
}

// labelled finds the metric of mf whose labels include all of want.
func labelled(t *testing.T, mf *dto.MetricFamily, want map[string]string) *dto.Metric {
	t.Helper()
	require.NotNil(t, mf)
	for _, m := range mf.GetMetric() {
		hit := 0
		for _, lp := range m.GetLabel() {
			if v, ok := want[lp.GetName()]; ok && v == lp.GetValue() {
				hit++
			}
		}
		if hit == len(want) {
			return m
		}
	}
	t.Fatalf("%s: no series with labels %v", mf.GetName(), want)

	return nil
}

func TestCollector_RecordsEngineActivity(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := metrics.New(reg)

	s, err := builder.Platonic(builder.Octahedron)
	require.NoError(t, err)
	eng, err := geodesic.New(s, s.Topology(),
		geodesic.WithObserver(c),
		geodesic.WithMaxMatrixBytes(1),
	)
	require.NoError(t, err)

	_, err = eng.Within(0, 10, true)
	require.NoError(t, err)
	_, err = eng.From(0, false, nil)
	require.NoError(t, err)
	_, err = eng.Within(-1, 1, true)
	require.ErrorIs(t, err, geodesic.ErrVertexOutOfRange)
	_, err = eng.AllPairs(true)
	require.ErrorIs(t, err, geodesic.ErrAllocation)

	fams := gather(t, reg)

	require.Equal(t, 6.0, fams["surfgeo_engine_vertices"].GetMetric()[0].GetGauge().GetValue())
	require.Equal(t, 24.0, labelled(t, fams["surfgeo_engine_edges"], map[string]string{"table": "one_hop"}).GetGauge().GetValue())
	require.Equal(t, 6.0, labelled(t, fams["surfgeo_engine_edges"], map[string]string{"table": "two_hop"}).GetGauge().GetValue())
	require.EqualValues(t, 1, fams["surfgeo_engine_build_duration_seconds"].GetMetric()[0].GetHistogram().GetSampleCount())

	queries := fams["surfgeo_queries_total"]
	require.Equal(t, 1.0, labelled(t, queries, map[string]string{"kind": "within", "status": "ok"}).GetCounter().GetValue())
	require.Equal(t, 1.0, labelled(t, queries, map[string]string{"kind": "within", "status": "invalid"}).GetCounter().GetValue())
	require.Equal(t, 1.0, labelled(t, queries, map[string]string{"kind": "from", "status": "ok"}).GetCounter().GetValue())
	require.Equal(t, 1.0, labelled(t, queries, map[string]string{"kind": "all_pairs", "status": "allocation"}).GetCounter().GetValue())

	within := labelled(t, fams["surfgeo_query_finalized_vertices"], map[string]string{"kind": "within"}).GetHistogram()
	require.EqualValues(t, 1, within.GetSampleCount())
	require.Equal(t, 6.0, within.GetSampleSum())
}

func TestNew_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.New(reg)
	require.Panics(t, func() { metrics.New(reg) })
}
