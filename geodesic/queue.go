// SPDX-License-Identifier: MIT

package geodesic

import "container/heap"

// queueItem is one heap entry: a vertex and the distance it was pushed with.
type queueItem struct {
	vertex int
	dist   float64
}

// itemHeap is a min-heap of queueItem ordered by dist ascending.
// It implements heap.Interface; use vertexQueue instead of calling it directly.
type itemHeap []queueItem

func (h itemHeap) Len() int           { return len(h) }
func (h itemHeap) Less(i, j int) bool { return h[i].dist < h[j].dist }
func (h itemHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *itemHeap) Push(x any) { *h = append(*h, x.(queueItem)) }

func (h *itemHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

// vertexQueue is the search frontier. Decrease-key is emulated lazily: an
// improved vertex is pushed again and the outdated entry is dropped by
// popLive once the vertex is final.
type vertexQueue struct {
	h itemHeap
}

func newVertexQueue(capacity int) vertexQueue {
	return vertexQueue{h: make(itemHeap, 0, capacity)}
}

func (q *vertexQueue) len() int { return len(q.h) }

func (q *vertexQueue) push(v int, dist float64) {
	heap.Push(&q.h, queueItem{vertex: v, dist: dist})
}

// pop removes the entry with the smallest distance. The queue must not be empty.
func (q *vertexQueue) pop() queueItem {
	return heap.Pop(&q.h).(queueItem)
}

// popLive pops entries until it finds a vertex for which final reports
// false. It returns false when the queue runs dry first.
func (q *vertexQueue) popLive(final func(v int) bool) (int, bool) {
	for len(q.h) > 0 {
		item := q.pop()
		if !final(item.vertex) {
			return item.vertex, true
		}
	}

	return NoParent, false
}

// clear empties the queue and keeps its backing array.
func (q *vertexQueue) clear() { q.h = q.h[:0] }
