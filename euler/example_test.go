package euler_test

import (
	"fmt"

	"github.com/pacsam/routeinspect/core"
	"github.com/pacsam/routeinspect/euler"
)

// ExampleCircuit extracts an Euler circuit from a square network where
// every node already has even degree.
func ExampleCircuit() {
	g := core.NewGraph()
	_ = g.AddEdge(0, 1, 10)
	_ = g.AddEdge(1, 2, 10)
	_ = g.AddEdge(2, 3, 10)
	_ = g.AddEdge(0, 3, 15)

	walk, err := euler.Circuit(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(walk)

	// Output:
	// [0 1 2 3 0]
}

// ExampleEulerize balances a bare path graph: the endpoints are odd, so
// the shortest path between them is duplicated hop by hop.
func ExampleEulerize() {
	g := core.NewGraph()
	_ = g.AddEdge(0, 1, 100)
	_ = g.AddEdge(1, 2, 100)

	if err := euler.Eulerize(g); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("edges:", g.EdgeCount(), "odd nodes:", len(g.OddNodes()))

	// Output:
	// edges: 4 odd nodes: 0
}
