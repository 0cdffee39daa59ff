// Package traverse provides unweighted path search over a core.Graph:
// depth-first (DFSPath) and breadth-first (BFSPath) between two stations.
//
// DFSPath returns *a* path, the first one found in depth-first order; it is
// not guaranteed shortest. BFSPath returns a path with the fewest hops.
// Both explore neighbors in ascending station-ID order (the order
// core.Graph.Neighbors reports), so results are reproducible.
//
// "No path" is an expected outcome, not a fault: when start and goal are
// disconnected both functions return a nil path and a nil error. Errors are
// reserved for structural problems (nil graph, unknown station, invalid
// option) and cancellation.
package traverse
