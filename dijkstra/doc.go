// Package dijkstra computes minimum-travel-time routes over a metro
// core.Graph with Dijkstra's algorithm.
//
// SingleSource returns the full distance table from one station to every
// other; Pair additionally reconstructs the minimum-weight path to a single
// target, finalizing stations in nondecreasing distance order and stopping
// early the moment the target is selected (correct under non-negative
// weights). Rank orders all reachable stations by distance from a source
// and reports the k closest and m farthest.
//
// Vertices are selected with a min-heap using the lazy-decrease-key
// strategy: improved distances push duplicate heap entries and stale ones
// are skipped when popped. Heap ties are broken by ascending station ID, so
// distances and predecessor-derived paths are reproducible across runs.
//
// Unreachable stations carry the distance math.Inf(1); an unreachable pair
// is a result, not an error.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) (heap worst case under lazy-decrease-key)
package dijkstra
