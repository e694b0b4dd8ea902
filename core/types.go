// Package core defines the Graph and Edge types shared by every stage of
// the route-inspection pipeline.
//
// This file declares the types, sentinel errors, and the NewGraph
// constructor; query and mutation methods live in methods.go.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrNodeOutOfRange indicates a query referenced a node index ≥ NodeCount or < 0.
	ErrNodeOutOfRange = errors.New("core: node index out of range")

	// ErrNegativeNode indicates an edge endpoint with a negative index.
	ErrNegativeNode = errors.New("core: negative node index")

	// ErrNegativeWeight indicates an edge with a negative weight; all segment
	// lengths must be non-negative.
	ErrNegativeWeight = errors.New("core: negative edge weight")
)

// Edge is one undirected segment of the network: an unordered endpoint pair
// (U, V) and a non-negative Weight in feet.
//
// Edges returned by Graph.Neighbors are oriented so that U is the queried
// node; the stored pair keeps whatever orientation AddEdge received.
type Edge struct {
	// U is one endpoint (the near endpoint in Neighbors results).
	U int

	// V is the other endpoint.
	V int

	// Weight is the segment length in feet.
	Weight int64
}

// Graph is a weighted undirected multigraph over dense integer node indices
// 0..NodeCount()-1. Parallel edges are first-class: eulerization duplicates
// segments as literal additional edges, never merged.
//
// The edge multiset is append-only (the pipeline only ever duplicates
// edges), and insertion order is the deterministic iteration order for
// Edges and Neighbors.
//
// Graph is not safe for concurrent mutation. The planning pipeline owns its
// graph exclusively from parse through circuit extraction; concurrent
// read-only access (e.g. parallel shortest-path runs) is fine.
type Graph struct {
	n     int    // number of nodes; every endpoint is < n
	edges []Edge // edge multiset in insertion order

	// adj[u] holds indices into edges for every occurrence incident to u.
	// A self-loop index appears twice, so len(adj[u]) is exactly degree(u).
	adj [][]int
}

// NewGraph creates an empty Graph with no nodes and no edges.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{}
}
