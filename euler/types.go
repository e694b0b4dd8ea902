package euler

import "errors"

// Sentinel errors for the augmentation and circuit stages. The first three
// report contract violations between pipeline components — a bug, not bad
// user data — and abort the run loudly rather than degrade silently.
var (
	// ErrNoNeighbor indicates a degree-1 node with no retrievable incident
	// edge, which the core adjacency invariant rules out.
	ErrNoNeighbor = errors.New("euler: degree-1 node has no incident edge")

	// ErrOddParity indicates an odd count of odd-degree nodes. The handshake
	// lemma guarantees the count is even in any graph, so this can only mean
	// internal state corruption.
	ErrOddParity = errors.New("euler: odd number of odd-degree nodes")

	// ErrUnreachable indicates an odd-degree node whose matched partner has
	// no path to it; the input graph is disconnected.
	ErrUnreachable = errors.New("euler: no path between matched odd-degree nodes")

	// ErrBadStart indicates a circuit start node outside the graph.
	ErrBadStart = errors.New("euler: start node out of range")
)
