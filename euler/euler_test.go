// Package euler_test exercises the three augmentation/extraction stages:
// dead-end fixing, eulerization, and Hierholzer circuit extraction. Shared
// fixtures and invariant helpers live here.
package euler_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pacsam/routeinspect/core"
)

// buildSquare: 0—1 (10), 1—2 (10), 2—3 (10), 0—3 (15). Already Eulerian.
func buildSquare(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(0, 1, 10))
	require.NoError(t, g.AddEdge(1, 2, 10))
	require.NoError(t, g.AddEdge(2, 3, 10))
	require.NoError(t, g.AddEdge(0, 3, 15))

	return g
}

// buildPath: 0—1—2 with 100 ft segments; both endpoints are dead ends.
func buildPath(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(0, 1, 100))
	require.NoError(t, g.AddEdge(1, 2, 100))

	return g
}

// requireHandshake asserts the odd-degree node count is even — it must hold
// before and after every augmentation stage.
func requireHandshake(t *testing.T, g *core.Graph) {
	t.Helper()
	require.Zero(t, len(g.OddNodes())%2, "handshake lemma violated")
}

// requireAllEven asserts every node of g has even degree.
func requireAllEven(t *testing.T, g *core.Graph) {
	t.Helper()
	require.Empty(t, g.OddNodes(), "expected all degrees even")
}

// requireCoversAllEdges asserts the walk's consecutive pairs consume every
// edge of g exactly once: per endpoint pair, the number of walk steps must
// equal the number of parallel edges between that pair.
func requireCoversAllEdges(t *testing.T, g *core.Graph, walk []int) {
	t.Helper()
	require.Len(t, walk, g.EdgeCount()+1, "walk node count must be edge count + 1")

	type pair struct{ lo, hi int }
	norm := func(u, v int) pair {
		if u > v {
			u, v = v, u
		}
		return pair{lo: u, hi: v}
	}

	want := make(map[pair]int)
	for _, e := range g.Edges() {
		want[norm(e.U, e.V)]++
	}
	got := make(map[pair]int)
	for i := 0; i+1 < len(walk); i++ {
		got[norm(walk[i], walk[i+1])]++
	}
	require.Equal(t, want, got, "walk must consume each edge exactly once")
}
