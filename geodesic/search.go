// SPDX-License-Identifier: MIT

package geodesic

import "math"

// search runs one Dijkstra expansion from root over the 1-hop graph, plus
// the 2-hop graph when smooth is set. The caller holds e.mu.
//
// Relaxations whose result exceeds radius never reach the queue, so a
// bounded search only visits the ball of that radius. remain counts the
// unresolved vertices of interest: the loop stops once it reaches zero.
// Pass a negative remain to expand everything reachable. visit is called
// once per vertex, in order of increasing distance, right after the vertex
// becomes final.
//
// Scratch state is left dirty; call reset once the results are read.
func (e *Engine) search(root int, radius float64, smooth bool, remain int, visit func(v int)) {
	e.queue.clear()
	e.touch(root)
	e.out[root] = 0
	e.parent[root] = root // a path ends where a vertex is its own parent
	e.state[root] = stateQueued
	e.queue.push(root, 0)

	for remain != 0 {
		u, ok := e.queue.popLive(e.isFinal)
		if !ok {
			break
		}
		e.state[u] = stateFinalized
		if e.interest[u] {
			remain--
		}
		visit(u)

		e.relax(u, &e.one, radius)
		if smooth {
			e.relax(u, &e.two, radius)
		}
	}
}

// relax offers every edge of u in table adj to its far endpoint. Only a
// strictly shorter distance replaces a recorded one.
func (e *Engine) relax(u int, adj *adjacency, radius float64) {
	du := e.out[u]
	lo, hi := adj.span(u)
	for k := lo; k < hi; k++ {
		v := adj.nbr[k]
		switch e.state[v] {
		case stateFinalized:
			continue
		case stateUnvisited:
			cand := du + adj.dist[k]
			if cand > radius {
				continue // keep it off the heap
			}
			e.touch(v)
			e.state[v] = stateQueued
			e.out[v] = cand
			e.parent[v] = u
			e.queue.push(v, cand)
		default:
			cand := du + adj.dist[k]
			if cand < e.out[v] {
				e.out[v] = cand
				e.parent[v] = u
				e.queue.push(v, cand)
			}
		}
	}
}

// touch records v in the changed list the first time it leaves its resting
// value during the current query.
func (e *Engine) touch(v int) {
	if e.state[v] == stateUnvisited && !e.interest[v] {
		e.changed = append(e.changed, v)
	}
}

func (e *Engine) isFinal(v int) bool { return e.state[v] == stateFinalized }

// reset returns every touched vertex to its resting value in O(touched).
func (e *Engine) reset() {
	for _, v := range e.changed {
		e.out[v] = math.Inf(1)
		e.parent[v] = NoParent
		e.state[v] = stateUnvisited
		e.interest[v] = false
	}
	e.changed = e.changed[:0]
	e.queue.clear()
}
