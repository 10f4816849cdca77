package geodesic

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVertexQueue_PopsInDistanceOrder(t *testing.T) {
	q := newVertexQueue(4)
	rng := rand.New(rand.NewSource(5))
	var want []float64
	for i := 0; i < 200; i++ {
		d := rng.Float64() * 100
		want = append(want, d)
		q.push(i, d)
	}
	sort.Float64s(want)
	for _, d := range want {
		require.Equal(t, d, q.pop().dist)
	}
	require.Zero(t, q.len())
}

func TestVertexQueue_PopLiveSkipsStaleEntries(t *testing.T) {
	q := newVertexQueue(8)
	q.push(1, 5)
	q.push(2, 3)
	q.push(1, 1) // improved entry for vertex 1
	final := map[int]bool{}

	v, ok := q.popLive(func(v int) bool { return final[v] })
	require.True(t, ok)
	require.Equal(t, 1, v)
	final[1] = true

	v, ok = q.popLive(func(v int) bool { return final[v] })
	require.True(t, ok)
	require.Equal(t, 2, v)
	final[2] = true

	// Only the stale (1, 5) entry remains.
	v, ok = q.popLive(func(v int) bool { return final[v] })
	require.False(t, ok)
	require.Equal(t, NoParent, v)
}

func TestVertexQueue_ClearKeepsCapacity(t *testing.T) {
	q := newVertexQueue(2)
	for i := 0; i < 64; i++ {
		q.push(i, float64(i))
	}
	c := cap(q.h)
	q.clear()
	require.Zero(t, q.len())
	require.Equal(t, c, cap(q.h))
}
