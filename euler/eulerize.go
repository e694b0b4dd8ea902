package euler

import (
	"fmt"

	"github.com/pacsam/routeinspect/core"
	"github.com/pacsam/routeinspect/dijkstra"
)

// spTree is one odd node's shortest-path tree: distances to every node plus
// the predecessor chain needed to materialize a path. Transient — built for
// a single Eulerize call and discarded with it.
type spTree struct {
	dist []int64
	prev []int
}

// Eulerize duplicates edges of g, in place, until every node has even
// degree. A graph where that already holds is returned untouched.
//
// Method (nearest-pair heuristic, not minimum-weight perfect matching):
//
//  1. Collect all odd-degree nodes.
//  2. Run Dijkstra with predecessor recovery from each odd node.
//  3. Pair odd nodes greedily: each still-unmatched node, in ascending
//     index order, takes the nearest still-unmatched peer by shortest-path
//     distance (ties to the lower index).
//  4. For each pair, duplicate every edge along the materialized shortest
//     path. The pair's endpoints flip to even parity; every intermediate
//     node gains two incident duplicates, preserving its parity.
//
// Distances never change while edges are being duplicated — a duplicate is
// a parallel copy at the same weight — so the trees from step 2 stay valid
// across the whole pairing loop.
//
// Errors:
//   - ErrOddParity   if the odd-degree node count is odd (handshake-lemma
//     violation; internal bug).
//   - ErrUnreachable if a matched pair has no connecting path (disconnected
//     input).
//
// Complexity: O(k·(V+E) log V + k² + k·V) for k odd-degree nodes.
func Eulerize(g *core.Graph) error {
	if g == nil {
		return dijkstra.ErrNilGraph
	}

	// 1) Odd-degree nodes, ascending. Already Eulerian → no-op.
	odd := g.OddNodes()
	if len(odd) == 0 {
		return nil
	}
	if len(odd)&1 == 1 {
		return fmt.Errorf("%w: %d", ErrOddParity, len(odd))
	}

	// 2) One shortest-path tree per odd node, keyed by node index.
	trees := make(map[int]spTree, len(odd))
	for _, v := range odd {
		dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(v), dijkstra.WithReturnPath())
		if err != nil {
			return fmt.Errorf("euler: shortest paths from %d: %w", v, err)
		}
		trees[v] = spTree{dist: dist, prev: prev}
	}

	// 3) Greedy nearest pairing over the odd set, restricted to odd-to-odd
	//    distances (the implicit complete graph G' of the matching step).
	remaining := append([]int(nil), odd...)
	for len(remaining) > 1 {
		a := remaining[0]
		remaining = remaining[1:]

		tree := trees[a]
		bestIdx := -1
		bestDist := dijkstra.Unreachable
		for i, b := range remaining {
			if d := tree.dist[b]; d < bestDist {
				bestDist, bestIdx = d, i
			}
		}
		if bestIdx < 0 {
			return fmt.Errorf("%w: node %d", ErrUnreachable, a)
		}
		b := remaining[bestIdx]
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)

		// 4) Duplicate the a—b shortest path onto g.
		if err := duplicatePath(g, tree, a, b); err != nil {
			return err
		}
	}

	return nil
}

// duplicatePath walks the predecessor chain of a's shortest-path tree from
// b back to a, appending one parallel edge per hop. The per-hop weight is
// recovered from the distance telescoping dist[v] - dist[prev[v]].
func duplicatePath(g *core.Graph, tree spTree, a, b int) error {
	for v := b; v != a; {
		u := tree.prev[v]
		if u == dijkstra.NoPredecessor {
			return fmt.Errorf("%w: broken predecessor chain at %d (pair %d—%d)", ErrUnreachable, v, a, b)
		}
		if err := g.AddEdge(u, v, tree.dist[v]-tree.dist[u]); err != nil {
			return fmt.Errorf("euler: duplicating path edge %d—%d: %w", u, v, err)
		}
		v = u
	}

	return nil
}
