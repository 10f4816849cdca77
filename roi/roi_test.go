package roi_test

import (
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/surfgeo/builder"
	"github.com/katalvlaran/surfgeo/geodesic"
	"github.com/katalvlaran/surfgeo/mesh"
	"github.com/katalvlaran/surfgeo/roi"
)

// flat5 is a 5×5 unit grid; vertex 12 is the centre, with axis neighbors
// 7, 11, 13, 17 and diagonal neighbors 6, 18.
func flat5(t *testing.T) *geodesic.Engine {
	t.Helper()
	s, err := builder.Grid(5, 5)
	require.NoError(t, err)
	eng, err := geodesic.New(s, s.Topology())
	require.NoError(t, err)

	return eng
}

func TestGrow(t *testing.T) {
	eng := flat5(t)

	r, err := roi.Grow(eng, []int{12}, 1, false)
	require.NoError(t, err)
	require.Equal(t, []uint32{7, 11, 12, 13, 17}, r.ToArray())

	r, err = roi.Grow(eng, []int{0, 24}, 0, false)
	require.NoError(t, err)
	require.Equal(t, []uint32{0, 24}, r.ToArray())

	_, err = roi.Grow(eng, nil, 1, false)
	require.ErrorIs(t, err, roi.ErrNoSeeds)
	_, err = roi.Grow(eng, []int{99}, 1, false)
	require.ErrorIs(t, err, geodesic.ErrVertexOutOfRange)
	_, err = roi.Grow(eng, []int{0}, -1, false)
	require.ErrorIs(t, err, geodesic.ErrNegativeRadius)
}

func TestDilateErodeBoundary(t *testing.T) {
	eng := flat5(t)
	seed := roaring.BitmapOf(12)

	ring, err := roi.Dilate(eng, seed, 1)
	require.NoError(t, err)
	require.Equal(t, []uint32{6, 7, 11, 12, 13, 17, 18}, ring.ToArray())
	require.Equal(t, []uint32{12}, seed.ToArray(), "input untouched")

	edge := roi.Boundary(eng, ring)
	require.Equal(t, []uint32{6, 7, 11, 13, 17, 18}, edge.ToArray())

	core, err := roi.Erode(eng, ring, 1)
	require.NoError(t, err)
	require.Equal(t, []uint32{12}, core.ToArray())

	all, err := roi.Dilate(eng, seed, 10)
	require.NoError(t, err)
	require.EqualValues(t, 25, all.GetCardinality())

	same, err := roi.Dilate(eng, seed, 0)
	require.NoError(t, err)
	require.True(t, same.Equals(seed))

	_, err = roi.Dilate(eng, seed, -1)
	require.ErrorIs(t, err, roi.ErrBadSteps)
	_, err = roi.Erode(eng, seed, -1)
	require.ErrorIs(t, err, roi.ErrBadSteps)
}

func TestNearest(t *testing.T) {
	s, err := builder.Grid(5, 5)
	require.NoError(t, err)
	// Append an isolated vertex 25 that no seed can reach.
	lonely := mesh.NewSurface(
		append(append([]r3.Vec(nil), s.Coords...), r3.Vec{Z: 9}),
		append(append([][]int(nil), s.Adjacency...), nil),
	)
	eng, err := geodesic.New(lonely, lonely.Topology())
	require.NoError(t, err)

	region := roaring.BitmapOf(1, 12, 23, 25)
	label, err := roi.Nearest(eng, []int{0, 24}, region, false)
	require.NoError(t, err)
	require.Equal(t, map[int]int{1: 0, 12: 0, 23: 1, 25: -1}, label)

	_, err = roi.Nearest(eng, nil, region, false)
	require.ErrorIs(t, err, roi.ErrNoSeeds)
}

func TestNilRegion(t *testing.T) {
	eng := flat5(t)

	_, err := roi.Nearest(eng, []int{0}, nil, false)
	require.ErrorIs(t, err, roi.ErrNilRegion)
	_, err = roi.Dilate(eng, nil, 1)
	require.ErrorIs(t, err, roi.ErrNilRegion)
	_, err = roi.Erode(eng, nil, 1)
	require.ErrorIs(t, err, roi.ErrNilRegion)
	require.True(t, roi.Boundary(eng, nil).IsEmpty())
}
