// Package routeinspect plans minimum-backtracking closed routes over
// hand-authored trail and road networks — the Route Inspection Problem,
// better known as the Chinese Postman Problem.
//
// Given a weighted undirected multigraph describing a network (weights are
// segment lengths in feet), the library finds a closed walk that traverses
// every segment at least once while keeping the repeated distance small:
//
//   - core/     — weighted undirected multigraph over dense integer nodes
//   - parse/    — adjacency-text parser (one line per node, "neighbor:weight" tokens)
//   - dijkstra/ — single-source shortest paths with predecessor recovery
//   - euler/    — dead-end fixing, eulerization and Hierholzer circuit extraction
//   - route/    — the end-to-end pipeline plus letter labeling and mileage
//
// The pipeline runs parse → euler.FixCulDeSacs → euler.Eulerize →
// euler.Circuit → route formatting, mutating one exclusively-owned graph in
// place. Eulerization pairs odd-degree nodes greedily by shortest-path
// distance; the result is a valid Eulerian multigraph but not guaranteed to
// be the globally minimum-weight augmentation.
//
// cmd/routeinspect wraps the pipeline in a small interactive CLI.
package routeinspect
