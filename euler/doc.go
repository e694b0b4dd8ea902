// Package euler turns an arbitrary connected trail network into an Eulerian
// multigraph and extracts a closed walk that covers every segment.
//
// Three stages, applied in order to one exclusively-owned *core.Graph:
//
//  1. FixCulDeSacs — every degree-1 node (a dead end) gets its single
//     incident edge duplicated, because the only way a closed route covers
//     a dead end is to walk in and back out.
//  2. Eulerize — the remaining odd-degree nodes are paired greedily by
//     shortest-path distance and, for each pair, every edge on the shortest
//     path between them is duplicated in place. Afterwards every node has
//     even degree.
//  3. Circuit — Hierholzer's algorithm produces a closed walk that uses
//     every edge of the eulerized multigraph exactly once.
//
// The pairing in stage 2 is a nearest-neighbor heuristic, not a true
// minimum-weight perfect matching: each unmatched odd node, in index order,
// is paired with its nearest unmatched peer. The augmentation is always
// valid; its total duplicated distance is merely near-optimal, not minimal.
//
// Stage 3 assumes its preconditions (connected graph, all degrees even)
// hold from upstream and does not verify them; on a violated precondition
// it returns a walk that does not cover all edges rather than failing.
//
// Complexity: stage 1 is O(V + E); stage 2 is O(k·(V+E) log V + k²) for k
// odd nodes; stage 3 is O(V + E).
package euler
