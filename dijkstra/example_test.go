package dijkstra_test

import (
	"fmt"

	"github.com/pacsam/routeinspect/core"
	"github.com/pacsam/routeinspect/dijkstra"
)

// ExampleDijkstra computes shortest distances over a weighted triangle:
// the direct 0—2 segment (5) loses to the two-hop route through 1 (3).
func ExampleDijkstra() {
	g := core.NewGraph()
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(1, 2, 2)
	_ = g.AddEdge(0, 2, 5)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(0))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(dist)

	// Output:
	// [0 1 3]
}
