package mesh_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/surfgeo/mesh"
)

func triangle() *mesh.Surface {
	return mesh.NewSurface(
		[]r3.Vec{{}, {X: 3}, {Y: 4}},
		[][]int{{1, 2}, {0, 2}, {0, 1}},
	)
}

func TestSurface_Providers(t *testing.T) {
	s := triangle()
	require.NoError(t, s.Validate())
	require.Equal(t, 3, s.Count())
	require.Equal(t, 3, s.Topology().Count())
	require.Equal(t, r3.Vec{X: 3}, s.Position(1))
	require.Equal(t, []int{0, 2}, s.Ring(1))
	require.InDelta(t, 5.0, s.EdgeLength(1, 2), 1e-12)
	require.InDelta(t, math.Hypot(3, 4), s.EdgeLength(2, 1), 1e-12)
}

func TestSurface_Validate(t *testing.T) {
	tests := []struct {
		name string
		adj  [][]int
		want error
	}{
		{"count mismatch", [][]int{{1}, {0}}, mesh.ErrCountMismatch},
		{"out of range", [][]int{{1, 7}, {0}, {}}, mesh.ErrBadNeighbor},
		{"self loop", [][]int{{0}, {}, {}}, mesh.ErrBadNeighbor},
		{"one-sided edge", [][]int{{1, 2}, {0}, {0, 1}}, mesh.ErrAsymmetricEdge},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := mesh.NewSurface([]r3.Vec{{}, {X: 1}, {Y: 1}}, tc.adj)
			require.ErrorIs(t, s.Validate(), tc.want)
		})
	}
}

func TestSurface_TopologyViewReportsListCount(t *testing.T) {
	s := mesh.NewSurface([]r3.Vec{{}, {X: 1}, {Y: 1}}, [][]int{{1}, {0}})
	require.Equal(t, 3, s.Count())
	require.Equal(t, 2, s.Topology().Count())
}
