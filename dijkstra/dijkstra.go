package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/pacsam/routeinspect/core"
)

// Dijkstra computes shortest distances from the source node (set via
// Source) to all other nodes in the weighted graph g.
//
// Returns:
//
//   - dist: slice indexed by node; dist[v] is the minimum distance from the
//     source to v, or Unreachable if no path exists.
//   - prev: predecessor slice if WithReturnPath was given (nil otherwise).
//     prev[v] == u means the shortest path to v arrives via u;
//     prev[v] == NoPredecessor for the source and unreachable nodes.
//   - err:  error if inputs are invalid or a negative weight is detected.
//
// Ties in minimum-distance selection are broken by heap pop order, which is
// deterministic for a fixed edge insertion order.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra(g *core.Graph, opts ...Option) ([]int64, []int, error) {
	// 1) Build Options from functional opts.
	cfg := DefaultOptions(0)
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate graph and source.
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if cfg.Source < 0 || cfg.Source >= g.NodeCount() {
		return nil, nil, fmt.Errorf("%w: %d (nodes: %d)", ErrBadSource, cfg.Source, g.NodeCount())
	}

	// 3) Pre-scan all edges to detect negative weights; fail fast.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: edge %d—%d weight=%d", ErrNegativeWeight, e.U, e.V, e.Weight)
		}
	}

	// 4) Prepare distance, predecessor and visited state.
	n := g.NodeCount()
	dist := make([]int64, n)
	for v := range dist {
		dist[v] = Unreachable
	}
	dist[cfg.Source] = 0

	var prev []int
	if cfg.ReturnPath {
		prev = make([]int, n)
		for v := range prev {
			prev[v] = NoPredecessor
		}
	}

	visited := make([]bool, n)

	// 5) Seed the min-heap with the source at distance 0.
	pq := make(nodePQ, 0, n)
	heap.Init(&pq)
	heap.Push(&pq, nodeItem{id: cfg.Source, dist: 0})

	// 6) Main loop: settle nodes in increasing distance order.
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(nodeItem)
		u := item.id

		// Skip stale heap entries (lazy decrease-key).
		if visited[u] {
			continue
		}
		visited[u] = true

		// Relax every edge incident to u.
		neighbors, err := g.Neighbors(u)
		if err != nil {
			return nil, nil, fmt.Errorf("dijkstra: neighbors of %d: %w", u, err)
		}
		for _, e := range neighbors {
			v := e.V
			if visited[v] {
				continue
			}
			cand := dist[u] + e.Weight
			if cand >= dist[v] {
				continue
			}
			dist[v] = cand
			if prev != nil {
				prev[v] = u
			}
			heap.Push(&pq, nodeItem{id: v, dist: cand})
		}
	}

	return dist, prev, nil
}

// nodeItem is one (node, tentative distance) entry in the priority queue.
type nodeItem struct {
	id   int
	dist int64
}

// nodePQ is a min-heap of nodeItem ordered by dist ascending. Stale
// duplicates from the lazy decrease-key strategy are filtered on pop via
// the visited slice.
type nodePQ []nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
