// Package core defines the in-memory model of a metro network:
// Station, Connection, and the undirected weighted Graph they form.
//
// A Graph is built once from a station/connection dataset at session start
// and is treated as read-only by every query for the rest of the session.
// Mutating methods are guarded by an internal sync.RWMutex so the build
// phase itself is safe, but no engine in this module mutates a Graph.
//
// Adjacency is a simple nested map keyed by station ID. Parallel
// connections between the same pair of stations are permitted on input with
// last-write-wins semantics: the adjacency entry always holds the most
// recently registered connection.
//
// Errors:
//
//	ErrEmptyStationID     - station ID is the empty string.
//	ErrStationNotFound    - operation referenced a station absent from the graph.
//	ErrConnectionNotFound - no connection exists between the two stations.
//	ErrNegativeWeight     - connection weight is negative.
//	ErrSelfConnection     - connection endpoints are the same station.
package core
