// SPDX-License-Identifier: MIT

package geodesic

import "fmt"

// PathTo rebuilds the shortest path from root to target out of a parent
// array returned by FromParents. The result starts at root and ends at
// target. A parent chain longer than the array, which can only come from a
// corrupted array, is reported as ErrNoPath instead of looping forever.
func PathTo(parents []int, root, target int) ([]int, error) {
	n := len(parents)
	if root < 0 || root >= n || target < 0 || target >= n {
		return nil, fmt.Errorf("PathTo(%d,%d) of %d: %w", root, target, n, ErrVertexOutOfRange)
	}

	return walkParents(func(v int) int { return parents[v] }, n, root, target)
}

// PathFromReached rebuilds the path to target from the output of Within.
func PathFromReached(reached []Reached, target int) ([]int, error) {
	if len(reached) == 0 {
		return nil, fmt.Errorf("PathFromReached: empty result: %w", ErrNoPath)
	}
	byVertex := make(map[int]int, len(reached))
	for _, r := range reached {
		byVertex[r.Vertex] = r.Parent
	}
	if _, ok := byVertex[target]; !ok {
		return nil, fmt.Errorf("PathFromReached: vertex %d not reached: %w", target, ErrNoPath)
	}
	root := reached[0].Vertex
	lookup := func(v int) int {
		if p, ok := byVertex[v]; ok {
			return p
		}
		return NoParent
	}

	return walkParents(lookup, len(reached), root, target)
}

func walkParents(parentOf func(int) int, limit, root, target int) ([]int, error) {
	path := []int{target}
	v := target
	for v != root {
		p := parentOf(v)
		if p == NoParent || p == v || len(path) > limit {
			return nil, fmt.Errorf("path %d→%d: %w", root, target, ErrNoPath)
		}
		path = append(path, p)
		v = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
