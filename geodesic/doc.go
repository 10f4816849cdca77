// Package geodesic computes approximate geodesic (along-the-surface)
// distances between vertices of a triangulated surface mesh.
//
// Overview:
//
//   - New precomputes two immutable edge tables from a mesh.CoordinateProvider
//     and a mesh.TopologyProvider: the 1-hop edges with their Euclidean
//     lengths, and synthesized 2-hop "smoothed" edges whose length is found by
//     unfolding the two triangles that separate a vertex from a second-order
//     neighbor.
//   - Queries run Dijkstra over the 1-hop graph, optionally augmented with the
//     2-hop graph (smooth=true). The 1-hop graph is always present, so a
//     smoothed distance is never longer than the plain graph distance.
//   - AllPairs fills a dense N×N matrix, reusing the shortest-path trees of
//     earlier roots so that later roots only expand what is still unknown.
//
// This is an approximation, not an exact geodesic solver: the unfolding
// correction only looks at one triangle pair at a time, and a shortcut whose
// crossing point falls outside the shared edge is discarded.
//
// Queries:
//
//	Within(root, radius, smooth)            vertices within radius, with parents
//	From(root, smooth, dst)                 distance to every vertex
//	FromParents(root, smooth, dst, parents) the same plus the shortest-path tree
//	To(root, targets, smooth)               distance to a subset, stops early
//	AllPairs(smooth)                        dense distance and parent matrices
//
// Concurrency:
//
//   - An Engine owns scratch buffers sized to the mesh. Each query validates
//     its arguments without locking, then holds the engine mutex until its
//     scratch state is restored. Concurrent callers are serialized.
//   - Neighbors and SmoothedNeighbors read immutable tables and never lock.
//   - For parallel work create one Engine per goroutine.
//
// Errors (sentinel):
//
//   - ErrCountMismatch, ErrBadTopology: construction failed; the returned
//     engine is valid but empty.
//   - ErrVertexOutOfRange, ErrNegativeRadius, ErrEmptyEngine: invalid query;
//     the result is nil and no state changed.
//   - ErrAllocation: the all-pairs matrices would exceed the memory budget.
//   - ErrNoPath: path reconstruction failed.
//
// Degenerate geometry met while unfolding (parallel or zero-length edges) is
// not an error: the shortcut is skipped and counted in RejectedUnfoldings.
//
// Example:
//
//	eng, err := geodesic.New(surface, surface.Topology(),
//	    geodesic.WithLogger(slog.Default()))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ball, _ := eng.Within(0, 10.0, true)
//	for _, r := range ball {
//	    fmt.Println(r.Vertex, r.Distance)
//	}
package geodesic
