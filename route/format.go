package route

import (
	"fmt"
	"math"
	"strings"

	"github.com/pacsam/routeinspect/core"
)

// alphabet maps node indices to the letters used on the hand-drawn map.
const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// feetPerMile converts segment weights (feet) to user-facing miles.
const feetPerMile = 5280.0

// Alphabetize renders a walk as letter labels joined by " -- ", e.g.
// [0 1 2] → "A -- B -- C". Supports only the first 26 nodes; any node
// beyond index 25 returns ErrTooManyNodes without touching the numeric
// circuit or its mileage.
func Alphabetize(path []int) (string, error) {
	labels := make([]string, len(path))
	for i, node := range path {
		if node < 0 || node >= len(alphabet) {
			return "", fmt.Errorf("%w: node %d", ErrTooManyNodes, node)
		}
		labels[i] = string(alphabet[node])
	}

	return strings.Join(labels, " -- "), nil
}

// LengthMiles sums the weight of each consecutive edge of path as found in
// g and converts the total from feet to miles, truncated to two decimals.
// Every consecutive pair must correspond to an existing edge; a missing one
// returns ErrEdgeMissing (broken upstream invariant, fatal).
func LengthMiles(path []int, g *core.Graph) (float64, error) {
	feet, err := lengthFeet(path, g)
	if err != nil {
		return 0, err
	}

	return milesFromFeet(feet), nil
}

// lengthFeet sums the weights of the consecutive edges of path. Parallel
// duplicates carry the weight of their original, so matching the first
// incident edge to the next walk node is exact.
func lengthFeet(path []int, g *core.Graph) (int64, error) {
	var feet int64
	for i := 0; i+1 < len(path); i++ {
		u, v := path[i], path[i+1]
		neighbors, err := g.Neighbors(u)
		if err != nil {
			return 0, fmt.Errorf("route: neighbors of %d: %w", u, err)
		}
		found := false
		for _, e := range neighbors {
			if e.V == v {
				feet += e.Weight
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("%w: step %d—%d", ErrEdgeMissing, u, v)
		}
	}

	return feet, nil
}

// milesFromFeet truncates — never rounds — to two decimal places, matching
// the trip-report convention: 10559 ft is 1.99 miles, not 2.00.
func milesFromFeet(feet int64) float64 {
	return math.Trunc(float64(feet)/feetPerMile*100) / 100
}
