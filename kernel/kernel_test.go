package kernel_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/surfgeo/builder"
	"github.com/katalvlaran/surfgeo/geodesic"
	"github.com/katalvlaran/surfgeo/kernel"
	"github.com/katalvlaran/surfgeo/mesh"
)

func sheet(t *testing.T) *mesh.Surface {
	t.Helper()
	s, err := builder.Grid(6, 8, builder.WithJitter(0.2), builder.WithSeed(11))
	require.NoError(t, err)

	return s
}

func TestBuild_WeightsNormalised(t *testing.T) {
	s := sheet(t)
	k, err := kernel.Build(context.Background(), s, s.Topology(), 1.0, kernel.WithWorkers(3))
	require.NoError(t, err)
	require.Equal(t, s.Count(), k.Count())
	require.Equal(t, 1.0, k.Sigma())
	require.Zero(t, k.Fallbacks())

	for v := 0; v < k.Count(); v++ {
		nbr, w := k.Weights(v)
		require.GreaterOrEqual(t, len(nbr), kernel.DefaultMinNeighbors)
		require.Equal(t, v, nbr[0], "centre comes first")
		require.InDelta(t, 1.0, floats.Sum(w), 1e-12)
		require.Equal(t, w[0], floats.Max(w), "centre has the largest weight")
	}
	nbr, w := k.Weights(-1)
	require.Nil(t, nbr)
	require.Nil(t, w)
}

func TestBuild_WorkerCountDoesNotChangeResult(t *testing.T) {
	s := sheet(t)
	ctx := context.Background()
	one, err := kernel.Build(ctx, s, s.Topology(), 0.8, kernel.WithWorkers(1))
	require.NoError(t, err)
	many, err := kernel.Build(ctx, s, s.Topology(), 0.8, kernel.WithWorkers(5))
	require.NoError(t, err)

	for v := 0; v < s.Count(); v++ {
		n1, w1 := one.Weights(v)
		n2, w2 := many.Weights(v)
		require.Equal(t, n1, n2)
		require.Equal(t, w1, w2)
	}
}

func TestBuild_FallbackToRing(t *testing.T) {
	s := sheet(t)
	k, err := kernel.Build(context.Background(), s, s.Topology(), 0.01)
	require.NoError(t, err)
	require.Equal(t, s.Count(), k.Fallbacks())

	for v := 0; v < s.Count(); v++ {
		nbr, w := k.Weights(v)
		require.Len(t, nbr, len(s.Ring(v))+1)
		require.Equal(t, v, nbr[0])
		require.InDelta(t, 1.0, w[0], 1e-12)
	}
}

func TestApplyAndSmooth(t *testing.T) {
	s := sheet(t)
	k, err := kernel.Build(context.Background(), s, s.Topology(), 1.0)
	require.NoError(t, err)

	flat := make([]float64, s.Count())
	for i := range flat {
		flat[i] = 3.5
	}
	out, err := k.Apply(flat, nil)
	require.NoError(t, err)
	for _, x := range out {
		require.InDelta(t, 3.5, x, 1e-12)
	}

	spike := make([]float64, s.Count())
	spike[20] = 1
	sm, err := k.Smooth(spike, 3)
	require.NoError(t, err)
	require.Equal(t, 1.0, spike[20], "input untouched")
	require.Less(t, floats.Max(sm), 1.0)
	require.GreaterOrEqual(t, floats.Min(sm), 0.0)
	require.Greater(t, sm[20], 0.0)

	same, err := k.Smooth(spike, 0)
	require.NoError(t, err)
	require.Equal(t, spike, same)
}

func TestErrors(t *testing.T) {
	s := sheet(t)
	ctx := context.Background()
	for _, sigma := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := kernel.Build(ctx, s, s.Topology(), sigma)
		require.ErrorIs(t, err, kernel.ErrBadSigma)
	}

	short := mesh.NewSurface(s.Coords[:3], s.Adjacency)
	_, err := kernel.Build(ctx, short, short.Topology(), 1)
	require.ErrorIs(t, err, geodesic.ErrCountMismatch)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = kernel.Build(cancelled, s, s.Topology(), 1)
	require.ErrorIs(t, err, context.Canceled)

	k, err := kernel.Build(ctx, s, s.Topology(), 1)
	require.NoError(t, err)
	_, err = k.Apply([]float64{1}, nil)
	require.ErrorIs(t, err, kernel.ErrLengthMismatch)
	_, err = k.Smooth(make([]float64, s.Count()), -1)
	require.ErrorIs(t, err, kernel.ErrBadIterations)
}

func TestBuild_SinglePointSurface(t *testing.T) {
	s := mesh.NewSurface([]r3.Vec{{}}, [][]int{{}})
	k, err := kernel.Build(context.Background(), s, s.Topology(), 1)
	require.NoError(t, err)
	nbr, w := k.Weights(0)
	require.Equal(t, []int{0}, nbr)
	require.Equal(t, []float64{1}, w)
	require.Equal(t, 1, k.Fallbacks())
}

func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { kernel.WithWorkers(0) })
	require.Panics(t, func() { kernel.WithCutoff(0) })
	require.Panics(t, func() { kernel.WithMinNeighbors(0) })
}
