// Package dijkstra implements Dijkstra's single-source shortest-path
// algorithm over the dense-int weighted multigraph in core.
//
// Dijkstra computes the minimum-cost distance from a source node to every
// other node in a graph with non-negative edge weights. Vertices are
// processed in order of increasing distance using a min-heap priority
// queue with a lazy decrease-key strategy (duplicates are pushed and stale
// entries skipped on pop).
//
// Complexity:
//
//	– Time:  O((V + E) log V)
//	– Space: O(V + E) (distance/predecessor slices plus worst-case heap).
//
// Options:
//
//	– Source(v):       index of the starting node (must be a node of the graph).
//	– WithReturnPath(): also return the predecessor slice for path recovery.
//
// Errors (sentinel):
//
//	– ErrNilGraph       if the provided graph pointer is nil.
//	– ErrBadSource      if the source index is not a node of the graph.
//	– ErrNegativeWeight if a negative edge weight is detected.
package dijkstra

import "errors"

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrBadSource indicates that the source index is negative or not a node
	// of the provided graph.
	ErrBadSource = errors.New("dijkstra: source node out of range")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	// core.Graph.AddEdge already rejects these, so hitting this error means a
	// contract violation upstream, not bad user data.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)

// Unreachable is the distance reported for nodes the source cannot reach.
const Unreachable = int64(1<<63 - 1) // math.MaxInt64

// NoPredecessor marks a node with no recorded predecessor (the source
// itself, or an unreachable node) in the predecessor slice.
const NoPredecessor = -1

// Options configures a single Dijkstra run.
//
// Source     – index of the starting node.
// ReturnPath – if true, return the predecessor slice; otherwise it is nil.
type Options struct {
	Source     int
	ReturnPath bool
}

// Option is a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting node index. Must name a node of the graph;
// validated by Dijkstra itself, not here.
func Source(v int) Option {
	return func(o *Options) { o.Source = v }
}

// WithReturnPath enables predecessor recording so callers can materialize
// the shortest path to any reached node. Default is distances only.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

// DefaultOptions returns an Options value with the given source and
// predecessor recording disabled.
func DefaultOptions(source int) Options {
	return Options{Source: source}
}
