// Package core: Graph method implementations.
//
// All accessors take the read lock and all mutators the write lock, so the
// build phase is safe under concurrent use; after construction the graph is
// read-only by convention and the locks are uncontended.

package core

import (
	"fmt"
	"sort"
)

// AddStation inserts the station into the graph, overwriting any existing
// station with the same ID (insert-or-overwrite semantics; duplicates are
// not an error). Returns ErrEmptyStationID if the ID is empty.
// Complexity: O(1) amortized.
func (g *Graph) AddStation(s Station) error {
	if s.ID == "" {
		return ErrEmptyStationID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	st := s // store a private copy
	g.stations[s.ID] = &st
	if _, ok := g.adj[s.ID]; !ok {
		g.adj[s.ID] = make(map[string]*Connection)
	}

	return nil
}

// AddConnection registers an undirected connection between two existing
// stations with the given line label and travel time.
//
// Validation is eager: both endpoints must already be present
// (ErrStationNotFound otherwise), the weight must be non-negative
// (ErrNegativeWeight), and the endpoints must differ (ErrSelfConnection).
// A repeated connection between the same pair overwrites the previous one
// (last-write-wins). Complexity: O(1).
func (g *Graph) AddConnection(from, to, line string, weight float64) error {
	if from == "" || to == "" {
		return ErrEmptyStationID
	}
	if from == to {
		return fmt.Errorf("%w: %q", ErrSelfConnection, from)
	}
	if weight < 0 {
		return fmt.Errorf("%w: %s→%s weight=%v", ErrNegativeWeight, from, to, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.stations[from]; !ok {
		return fmt.Errorf("%w: %q", ErrStationNotFound, from)
	}
	if _, ok := g.stations[to]; !ok {
		return fmt.Errorf("%w: %q", ErrStationNotFound, to)
	}

	c := &Connection{From: from, To: to, Line: line, Weight: weight}
	// Mirror the adjacency both ways; the graph is undirected.
	g.adj[from][to] = c
	g.adj[to][from] = c

	return nil
}

// HasStation reports whether a station with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasStation(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.stations[id]

	return ok
}

// Station returns the station record for id.
// Returns ErrStationNotFound if id is unknown. Complexity: O(1).
func (g *Graph) Station(id string) (Station, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	s, ok := g.stations[id]
	if !ok {
		return Station{}, fmt.Errorf("%w: %q", ErrStationNotFound, id)
	}

	return *s, nil
}

// Neighbors returns the IDs of all stations directly connected to id,
// in ascending ID order for reproducible traversal.
// Returns ErrStationNotFound if id is unknown.
// Complexity: O(d log d), where d is the station's degree.
func (g *Graph) Neighbors(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.stations[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrStationNotFound, id)
	}

	out := make([]string, 0, len(g.adj[id]))
	for nbr := range g.adj[id] {
		out = append(out, nbr)
	}
	sort.Strings(out)

	return out, nil
}

// Connection returns the connection between stations a and b.
// Returns ErrStationNotFound if either endpoint is unknown,
// ErrConnectionNotFound if they are not directly connected.
// Complexity: O(1).
func (g *Graph) Connection(a, b string) (Connection, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.stations[a]; !ok {
		return Connection{}, fmt.Errorf("%w: %q", ErrStationNotFound, a)
	}
	if _, ok := g.stations[b]; !ok {
		return Connection{}, fmt.Errorf("%w: %q", ErrStationNotFound, b)
	}
	c, ok := g.adj[a][b]
	if !ok {
		return Connection{}, fmt.Errorf("%w: %s—%s", ErrConnectionNotFound, a, b)
	}

	return *c, nil
}

// Weight returns the travel time of the connection between a and b.
// Same error semantics as Connection. Complexity: O(1).
func (g *Graph) Weight(a, b string) (float64, error) {
	c, err := g.Connection(a, b)
	if err != nil {
		return 0, err
	}

	return c.Weight, nil
}

// HasConnection reports whether a and b are directly connected.
// Complexity: O(1).
func (g *Graph) HasConnection(a, b string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adj[a][b]

	return ok
}

// Degree returns the number of stations directly connected to id.
// Returns ErrStationNotFound if id is unknown. Complexity: O(1).
func (g *Graph) Degree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.stations[id]; !ok {
		return 0, fmt.Errorf("%w: %q", ErrStationNotFound, id)
	}

	return len(g.adj[id]), nil
}

// StationCount returns the total number of stations. Complexity: O(1).
func (g *Graph) StationCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.stations)
}

// ConnectionCount returns the number of distinct connections
// (unordered station pairs). Complexity: O(V).
func (g *Graph) ConnectionCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	total := 0
	for _, nbrs := range g.adj {
		total += len(nbrs)
	}

	// Every connection is mirrored, so each pair was counted twice.
	return total / 2
}

// Stations returns all station IDs in ascending order.
// Complexity: O(V log V).
func (g *Graph) Stations() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := make([]string, 0, len(g.stations))
	for id := range g.stations {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Connections returns every connection exactly once, sorted by the
// ascending (low ID, high ID) endpoint pair for reproducible output.
// Complexity: O(E log E).
func (g *Graph) Connections() []Connection {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Connection, 0, len(g.adj))
	for from, nbrs := range g.adj {
		for to, c := range nbrs {
			// Emit each unordered pair once, from its lower endpoint.
			if from < to {
				out = append(out, *c)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := normalize(out[i]), normalize(out[j])
		if a.From != b.From {
			return a.From < b.From
		}

		return a.To < b.To
	})

	return out
}

// Density returns the graph density 2E / (V·(V−1)),
// or 0 for graphs with fewer than two stations.
// Complexity: O(V).
func (g *Graph) Density() float64 {
	v := g.StationCount()
	if v < 2 {
		return 0
	}

	return 2 * float64(g.ConnectionCount()) / (float64(v) * float64(v-1))
}

// normalize orients a connection so that From ≤ To.
func normalize(c Connection) Connection {
	if c.From > c.To {
		c.From, c.To = c.To, c.From
	}

	return c
}
