package euler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pacsam/routeinspect/core"
	"github.com/pacsam/routeinspect/dijkstra"
	"github.com/pacsam/routeinspect/euler"
)

func TestEulerize_NoOpWhenAlreadyEulerian(t *testing.T) {
	g := buildSquare(t)
	require.NoError(t, euler.Eulerize(g))
	assert.Equal(t, 4, g.EdgeCount(), "Eulerian input must stay untouched")
}

func TestEulerize_NilGraph(t *testing.T) {
	assert.ErrorIs(t, euler.Eulerize(nil), dijkstra.ErrNilGraph)
}

func TestEulerize_PathAfterCulDeSacFix(t *testing.T) {
	// Spec'd dead-end scenario: 0—1—2. Fixing both cul-de-sacs leaves all
	// degrees even already, so eulerization is a no-op afterwards.
	g := buildPath(t)
	require.NoError(t, euler.FixCulDeSacs(g))
	require.NoError(t, euler.Eulerize(g))
	requireAllEven(t, g)
	assert.Equal(t, 4, g.EdgeCount())
}

func TestEulerize_BarePathPairsEndpoints(t *testing.T) {
	// Without the dead-end pass, 0 and 2 are odd and get paired directly;
	// the shortest 0—2 path (through 1) is duplicated edge by edge.
	g := buildPath(t)
	requireHandshake(t, g)

	require.NoError(t, euler.Eulerize(g))

	requireAllEven(t, g)
	assert.Equal(t, 4, g.EdgeCount(), "two duplicated hops along 0—1—2")

	// The duplicates keep the original per-hop weights.
	var total int64
	for _, e := range g.Edges() {
		total += e.Weight
	}
	assert.Equal(t, int64(400), total)
}

func TestEulerize_IntermediateParityPreserved(t *testing.T) {
	// H-shaped network: odd nodes far apart with an even-degree node on the
	// connecting path. Duplication must flip only the endpoints' parity.
	//
	//	0—1 (10), 1—2 (10), 1—3 (30): odd nodes 0, 2, 3 plus hub 1 is odd too.
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(0, 1, 10))
	require.NoError(t, g.AddEdge(1, 2, 10))
	require.NoError(t, g.AddEdge(1, 3, 30))
	require.Equal(t, []int{0, 1, 2, 3}, g.OddNodes())

	require.NoError(t, euler.Eulerize(g))
	requireAllEven(t, g)

	// Greedy pairing in index order: 0 takes nearest odd (hub 1, 10 ft),
	// then 2 pairs with 3 across the hub (40 ft via two hops).
	assert.Equal(t, 6, g.EdgeCount())
}

func TestEulerize_StarNetwork(t *testing.T) {
	// Star with four spokes: center even (degree 4), all leaves odd.
	g := core.NewGraph()
	for leaf, w := range map[int]int64{1: 10, 2: 20, 3: 30, 4: 40} {
		require.NoError(t, g.AddEdge(0, leaf, w))
	}
	require.Len(t, g.OddNodes(), 4)

	require.NoError(t, euler.Eulerize(g))
	requireAllEven(t, g)

	// Every leaf-to-leaf path runs through the center, so each pairing
	// duplicates two spokes: 4 originals + 4 duplicates.
	assert.Equal(t, 8, g.EdgeCount())
}
