package geodesic_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/surfgeo/builder"
	"github.com/katalvlaran/surfgeo/geodesic"
	"github.com/katalvlaran/surfgeo/mesh"
)

const tol = 1e-9

// newEngine builds an engine over s and fails the test on error.
func newEngine(t *testing.T, s *mesh.Surface, opts ...geodesic.Option) *geodesic.Engine {
	t.Helper()
	eng, err := geodesic.New(s, s.Topology(), opts...)
	require.NoError(t, err)
	require.Equal(t, s.Count(), eng.Count())

	return eng
}

// bumpyGrid is a non-flat sheet: smoothing produces shortcuts of varied length.
func bumpyGrid(t *testing.T) *mesh.Surface {
	t.Helper()
	s, err := builder.Grid(7, 9, builder.WithJitter(0.35), builder.WithSeed(7))
	require.NoError(t, err)

	return s
}

func bumpySphere(t *testing.T) *mesh.Surface {
	t.Helper()
	s, err := builder.Icosphere(2, builder.WithScale(10), builder.WithJitter(0.4), builder.WithSeed(3))
	require.NoError(t, err)

	return s
}

// edgeLength returns the length of the 1-hop or 2-hop edge u→v.
func edgeLength(t *testing.T, eng *geodesic.Engine, u, v int) float64 {
	t.Helper()
	nbr, dist := eng.Neighbors(u)
	for k, w := range nbr {
		if w == v {
			return dist[k]
		}
	}
	nbr, dist = eng.SmoothedNeighbors(u)
	for k, w := range nbr {
		if w == v {
			return dist[k]
		}
	}
	t.Fatalf("no edge %d→%d", u, v)

	return 0
}

// pathLength sums the edge lengths along path.
func pathLength(t *testing.T, eng *geodesic.Engine, path []int) float64 {
	t.Helper()
	var sum float64
	for i := 1; i < len(path); i++ {
		sum += edgeLength(t, eng, path[i-1], path[i])
	}

	return sum
}
