package route

import (
	"fmt"
	"io"

	"github.com/pacsam/routeinspect/core"
	"github.com/pacsam/routeinspect/euler"
	"github.com/pacsam/routeinspect/parse"
)

// Plan runs the whole pipeline over the adjacency text in r and returns
// the covering circuit with its total length. The start (and end) of the
// circuit is node 0.
//
// Stages, each mutating the one exclusively-owned graph in place:
// parse → euler.FixCulDeSacs → euler.Eulerize → euler.Circuit → length.
//
// All failures are fatal and propagate unwrapped in meaning: parse errors
// for corrupt input, euler sentinels for internal contract violations.
// There are no partial results.
func Plan(r io.Reader) (Result, error) {
	g, err := parse.Parse(r)
	if err != nil {
		return Result{}, err
	}

	return planGraph(g)
}

// PlanFile is Plan over the contents of the file at path. The file handle
// is scoped to the parse step and released on completion or failure.
func PlanFile(path string) (Result, error) {
	g, err := parse.ParseFile(path)
	if err != nil {
		return Result{}, err
	}

	return planGraph(g)
}

func planGraph(g *core.Graph) (Result, error) {
	if err := euler.FixCulDeSacs(g); err != nil {
		return Result{}, err
	}
	if err := euler.Eulerize(g); err != nil {
		return Result{}, err
	}

	circuit, err := euler.Circuit(g, 0)
	if err != nil {
		return Result{}, err
	}

	feet, err := lengthFeet(circuit, g)
	if err != nil {
		return Result{}, fmt.Errorf("route: measuring circuit: %w", err)
	}

	return Result{
		Circuit: circuit,
		Feet:    feet,
		Miles:   milesFromFeet(feet),
	}, nil
}
