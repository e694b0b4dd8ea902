package route_test

import (
	"fmt"
	"strings"

	"github.com/pacsam/routeinspect/route"
)

// ExamplePlan plans a route over a 4-node square network. The graph is
// already Eulerian (every node has degree 2), so the circuit walks each
// segment exactly once.
func ExamplePlan() {
	const network = "1:10,3:15\n2:10\n3:10\n"

	res, err := route.Plan(strings.NewReader(network))
	if err != nil {
		fmt.Println("Problem:", err)
		return
	}

	labels, err := route.Alphabetize(res.Circuit)
	if err != nil {
		fmt.Println("Problem:", err)
		return
	}
	fmt.Println(labels)
	fmt.Printf("%.2f miles\n", res.Miles)

	// Output:
	// A -- B -- C -- D -- A
	// 0.00 miles
}

// ExampleAlphabetize converts a numeric walk back to the letter labels used
// on the hand-drawn map.
func ExampleAlphabetize() {
	labels, _ := route.Alphabetize([]int{0, 1, 2})
	fmt.Println(labels)

	// Output:
	// A -- B -- C
}
