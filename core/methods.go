package core

// NodeCount returns the number of nodes (max endpoint seen + 1, or the
// highest index passed to EnsureNode + 1, whichever is larger).
// Complexity: O(1).
func (g *Graph) NodeCount() int { return g.n }

// EdgeCount returns the number of edges in the multiset, counting each
// parallel duplicate separately.
// Complexity: O(1).
func (g *Graph) EdgeCount() int { return len(g.edges) }

// EnsureNode grows the graph so that node id exists, even if no edge
// touches it yet. Used by the parser to reserve indices for empty input
// lines. Returns ErrNegativeNode for id < 0.
// Complexity: amortized O(1).
func (g *Graph) EnsureNode(id int) error {
	if id < 0 {
		return ErrNegativeNode
	}
	g.grow(id + 1)

	return nil
}

// AddEdge appends one undirected edge (u, v, weight) to the multiset,
// growing the node count to cover both endpoints. Parallel edges and
// self-loops are always permitted.
//
// Errors:
//   - ErrNegativeNode   if u < 0 or v < 0.
//   - ErrNegativeWeight if weight < 0.
//
// Complexity: amortized O(1).
func (g *Graph) AddEdge(u, v int, weight int64) error {
	if u < 0 || v < 0 {
		return ErrNegativeNode
	}
	if weight < 0 {
		return ErrNegativeWeight
	}

	hi := u
	if v > hi {
		hi = v
	}
	g.grow(hi + 1)

	idx := len(g.edges)
	g.edges = append(g.edges, Edge{U: u, V: v, Weight: weight})
	g.adj[u] = append(g.adj[u], idx)
	// A self-loop contributes two endpoint occurrences to the same node.
	g.adj[v] = append(g.adj[v], idx)

	return nil
}

// Degree returns the number of edge occurrences incident to id; a self-loop
// counts twice. Returns ErrNodeOutOfRange for an unknown node.
// Complexity: O(1).
func (g *Graph) Degree(id int) (int, error) {
	if id < 0 || id >= g.n {
		return 0, ErrNodeOutOfRange
	}

	return len(g.adj[id]), nil
}

// Neighbors returns the edges incident to id, one entry per occurrence in
// edge insertion order, each oriented so that Edge.U == id. The returned
// slice is freshly allocated and safe for the caller to retain.
//
// Errors:
//   - ErrNodeOutOfRange if id is not a node of the graph.
//
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id int) ([]Edge, error) {
	if id < 0 || id >= g.n {
		return nil, ErrNodeOutOfRange
	}

	out := make([]Edge, 0, len(g.adj[id]))
	for _, idx := range g.adj[id] {
		e := g.edges[idx]
		if e.U != id {
			// orient the edge outward from id
			e.U, e.V = e.V, e.U
		}
		out = append(out, e)
	}

	return out, nil
}

// Edges returns a snapshot of the edge multiset in insertion order.
// The slice is freshly allocated; Edge values are copies.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	return append([]Edge(nil), g.edges...)
}

// OddNodes returns all nodes with odd degree, in ascending index order.
// By the handshake lemma the result always has even length.
// Complexity: O(V).
func (g *Graph) OddNodes() []int {
	var odd []int
	for v := 0; v < g.n; v++ {
		if len(g.adj[v])&1 == 1 {
			odd = append(odd, v)
		}
	}

	return odd
}

// Clone returns a deep copy of the graph. Mutating the copy never affects
// the original; used by callers that want to diff a graph against its
// eulerized form.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	c := &Graph{
		n:     g.n,
		edges: append([]Edge(nil), g.edges...),
		adj:   make([][]int, len(g.adj)),
	}
	for v := range g.adj {
		c.adj[v] = append([]int(nil), g.adj[v]...)
	}

	return c
}

// grow extends the node range to at least n nodes.
func (g *Graph) grow(n int) {
	if n <= g.n {
		return
	}
	for len(g.adj) < n {
		g.adj = append(g.adj, nil)
	}
	g.n = n
}
