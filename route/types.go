// Package route wires the full planning pipeline together and renders its
// results: parse the network, fix dead ends, eulerize, extract the circuit,
// then label the walk and report its length in miles.
//
// Node labels follow the hand-drawn-map convention of single letters
// (0→"A", 1→"B", …); networks beyond 26 nodes keep their numeric circuit
// and mileage but need an external labeling scheme.
package route

import "errors"

var (
	// ErrTooManyNodes indicates a walk node beyond index 25, which the
	// alphabetic labeling scheme cannot name. Only labeling fails: the
	// numeric circuit and mileage stay valid.
	ErrTooManyNodes = errors.New("route: node index beyond alphabetic labels (A–Z)")

	// ErrEdgeMissing indicates a consecutive walk pair with no corresponding
	// graph edge. The circuit extractor only emits real edges, so this is a
	// broken invariant between components, not bad input.
	ErrEdgeMissing = errors.New("route: walk step has no corresponding edge")
)

// Result is the outcome of one planning run.
type Result struct {
	// Circuit is the closed walk as node indices; Circuit[0] equals
	// Circuit[len-1] and consecutive pairs consume every edge of the
	// eulerized network exactly once.
	Circuit []int

	// Feet is the total traversed distance, summing every walked segment.
	Feet int64

	// Miles is Feet converted at 5280 ft/mile, truncated (not rounded) to
	// two decimal places.
	Miles float64
}
