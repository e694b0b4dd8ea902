package euler

import (
	"fmt"

	"github.com/pacsam/routeinspect/core"
)

// Circuit extracts a closed walk from an eulerized graph using Hierholzer's
// algorithm, starting and ending at start.
//
// A frontier stack holds nodes with unconsumed incident edges, seeded with
// start. The node on top is inspected: with no unused edge left it is
// finalized — popped and appended to the walk (the walk therefore builds in
// reverse completion order, which is itself a valid circuit) — otherwise
// one unused incident edge is consumed and its far endpoint pushed. Edge
// choice takes the latest-added unused occurrence, which is deterministic
// for a fixed edge insertion order.
//
// Preconditions (upstream contract, not enforced here): g is connected and
// every node has even degree. If violated, the returned walk fails to cover
// all edges instead of erroring — a documented gap, since detecting it here
// would re-verify what FixCulDeSacs and Eulerize already guarantee.
//
// Errors:
//   - ErrBadStart if start is not a node of g.
//
// Complexity: O(V + E) time and space.
func Circuit(g *core.Graph, start int) ([]int, error) {
	if g == nil || start < 0 || start >= g.NodeCount() {
		return nil, fmt.Errorf("%w: %d", ErrBadStart, start)
	}

	// Local working copy of the incidence structure: per node, the indices
	// of incident edge occurrences; used marks globally consumed edges.
	n := g.NodeCount()
	type arc struct {
		to  int // far endpoint
		idx int // edge index in g.Edges() order
	}
	incident := make([][]arc, n)
	for i, e := range g.Edges() {
		incident[e.U] = append(incident[e.U], arc{to: e.V, idx: i})
		incident[e.V] = append(incident[e.V], arc{to: e.U, idx: i})
	}
	used := make([]bool, g.EdgeCount())

	var walk []int
	stack := []int{start}
	for len(stack) > 0 {
		u := stack[len(stack)-1]

		// Drop already-consumed occurrences from the tail of u's list; each
		// occurrence is discarded at most once, keeping the loop O(E) overall.
		for len(incident[u]) > 0 && used[incident[u][len(incident[u])-1].idx] {
			incident[u] = incident[u][:len(incident[u])-1]
		}

		if len(incident[u]) == 0 {
			// No unused edge: finalize u.
			walk = append(walk, u)
			stack = stack[:len(stack)-1]
			continue
		}

		// Consume one edge u—v and continue from v.
		a := incident[u][len(incident[u])-1]
		incident[u] = incident[u][:len(incident[u])-1]
		used[a.idx] = true
		stack = append(stack, a.to)
	}

	return walk, nil
}
