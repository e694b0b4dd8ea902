// Package parse converts textual adjacency descriptions into core graphs.
//
// Input format (one line per node, node index = zero-based line number):
//
//	1:120,2:340
//	2:95
//	3:410
//
// Each comma-separated token is "neighbor:weight" and contributes one
// undirected edge from the line's node to neighbor with the given weight in
// feet. Tokens without a ':' separator are skipped (malformed entries are
// ignored, not fatal); a token whose pieces fail integer parsing aborts the
// whole parse with an error wrapping ErrBadToken — a corrupt data file has
// no useful partial-graph recovery.
//
// Duplicate tokens produce duplicate (parallel) edges on purpose: real
// networks have multi-path segments, and the multigraph keeps each one.
// Empty lines still reserve their node index.
package parse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pacsam/routeinspect/core"
)

// ErrBadToken indicates a "neighbor:weight" token whose neighbor index or
// weight failed integer parsing. The whole parse fails; there is no
// partial-graph recovery.
var ErrBadToken = errors.New("parse: malformed neighbor:weight token")

// Parse reads an adjacency description from r and builds the corresponding
// weighted undirected multigraph. Edges are added in the order encountered,
// which fixes the deterministic iteration order for the whole pipeline.
//
// Complexity: O(L + E) over L input lines and E tokens.
func Parse(r io.Reader) (*core.Graph, error) {
	g := core.NewGraph()
	scanner := bufio.NewScanner(r)

	line := 0
	for scanner.Scan() {
		// Reserve the node index even when the line carries no edges.
		if err := g.EnsureNode(line); err != nil {
			return nil, fmt.Errorf("parse: line %d: %w", line, err)
		}

		for _, token := range strings.Split(scanner.Text(), ",") {
			pieces := strings.SplitN(token, ":", 2)
			if len(pieces) < 2 {
				// No separator: skip the token, keep the line.
				continue
			}

			neighbor, err := strconv.Atoi(strings.TrimSpace(pieces[0]))
			if err != nil {
				return nil, fmt.Errorf("%w: line %d token %q: bad neighbor index: %v", ErrBadToken, line, token, err)
			}
			weight, err := strconv.ParseInt(strings.TrimSpace(pieces[1]), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d token %q: bad weight: %v", ErrBadToken, line, token, err)
			}

			if err = g.AddEdge(line, neighbor, weight); err != nil {
				return nil, fmt.Errorf("%w: line %d token %q: %v", ErrBadToken, line, token, err)
			}
		}
		line++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("parse: reading input: %w", err)
	}

	return g, nil
}

// ParseFile opens path, parses its contents via Parse, and releases the
// file handle on completion or failure.
func ParseFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("parse: open %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f)
}
