package euler

import (
	"fmt"

	"github.com/pacsam/routeinspect/core"
)

// FixCulDeSacs duplicates the single incident edge of every degree-1 node,
// in ascending node order. A closed route can only cover a dead end by
// walking in and back out, so the segment must be traversable twice;
// duplicating it turns degree 1 into degree 2 (even) and flips the parity
// of the far endpoint.
//
// Runs in place on g and must execute exactly once per pipeline run:
// a second pass would duplicate the (now degree-2) edges again only if the
// node were still degree 1, which it no longer is, but the stage is not
// idempotent in general and the pipeline does not repeat it.
//
// Errors:
//   - ErrNoNeighbor if a degree-1 node has no retrievable incident edge
//     (internal consistency violation).
//
// Complexity: O(V + D) where D is the number of dead ends.
func FixCulDeSacs(g *core.Graph) error {
	// Collect dead ends first: duplication changes degrees, and the scan
	// must see the original parity only.
	var deadEnds []int
	for v := 0; v < g.NodeCount(); v++ {
		deg, err := g.Degree(v)
		if err != nil {
			return fmt.Errorf("euler: degree of %d: %w", v, err)
		}
		if deg == 1 {
			deadEnds = append(deadEnds, v)
		}
	}

	for _, v := range deadEnds {
		neighbors, err := g.Neighbors(v)
		if err != nil {
			return fmt.Errorf("euler: neighbors of %d: %w", v, err)
		}
		if len(neighbors) == 0 {
			return fmt.Errorf("%w: node %d", ErrNoNeighbor, v)
		}
		e := neighbors[0]
		if err = g.AddEdge(e.U, e.V, e.Weight); err != nil {
			return fmt.Errorf("euler: duplicating dead-end edge %d—%d: %w", e.U, e.V, err)
		}
	}

	return nil
}
