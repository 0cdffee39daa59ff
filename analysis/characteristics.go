// Package analysis derives whole-network characteristics of a metro
// core.Graph: size, density, connectivity, hop diameter, average shortest
// path length, and degree statistics.
//
// Path-length figures are unweighted (hops, not minutes) and are computed
// with a breadth-first sweep from every station; they are only defined for
// connected networks and stay zero otherwise.
package analysis

import (
	"errors"
	"sort"

	"github.com/katalvlaran/metrograph/core"
)

// ErrNilGraph is returned if a nil graph pointer is passed.
var ErrNilGraph = errors.New("analysis: graph is nil")

// Characteristics summarizes a metro network.
type Characteristics struct {
	// Stations and Connections are the node and edge counts.
	Stations    int
	Connections int

	// Density is 2E / (V·(V−1)).
	Density float64

	// Connected reports whether every station can reach every other.
	Connected bool

	// Diameter is the longest shortest path in hops; 0 unless Connected.
	Diameter int

	// AvgPathLength is the mean shortest path length in hops over all
	// ordered station pairs; 0 unless Connected.
	AvgPathLength float64

	// MinDegree, MaxDegree, AvgDegree summarize station degrees.
	MinDegree int
	MaxDegree int
	AvgDegree float64

	// Hubs lists the stations of maximum degree, ascending by ID.
	Hubs []string
}

// Characterize computes the Characteristics of g.
// Complexity: O(V·(V + E)) dominated by the all-pairs BFS sweep.
func Characterize(g *core.Graph) (*Characteristics, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	c := &Characteristics{
		Stations:    g.StationCount(),
		Connections: g.ConnectionCount(),
		Density:     g.Density(),
	}
	if c.Stations == 0 {
		return c, nil
	}

	stations := g.Stations()

	// Degree statistics.
	c.MinDegree = int(^uint(0) >> 1) // max int, lowered below
	total := 0
	for _, id := range stations {
		d, err := g.Degree(id)
		if err != nil {
			return nil, err
		}
		total += d
		if d < c.MinDegree {
			c.MinDegree = d
		}
		if d > c.MaxDegree {
			c.MaxDegree = d
		}
	}
	c.AvgDegree = float64(total) / float64(c.Stations)
	for _, id := range stations {
		if d, _ := g.Degree(id); d == c.MaxDegree {
			c.Hubs = append(c.Hubs, id)
		}
	}
	sort.Strings(c.Hubs)

	// Connectivity: one BFS must reach every station.
	first, err := hopDepths(g, stations[0])
	if err != nil {
		return nil, err
	}
	c.Connected = len(first) == c.Stations
	if !c.Connected || c.Stations < 2 {
		return c, nil
	}

	// All-pairs BFS sweep for diameter and average path length.
	sum, pairs := 0, 0
	for _, src := range stations {
		depths, err := hopDepths(g, src)
		if err != nil {
			return nil, err
		}
		for id, d := range depths {
			if id == src {
				continue
			}
			sum += d
			pairs++
			if d > c.Diameter {
				c.Diameter = d
			}
		}
	}
	c.AvgPathLength = float64(sum) / float64(pairs)

	return c, nil
}

// hopDepths runs an unweighted BFS from src and returns the hop count of
// every reachable station (src included at 0).
func hopDepths(g *core.Graph, src string) (map[string]int, error) {
	depths := map[string]int{src: 0}
	queue := []string{src}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		nbrs, err := g.Neighbors(cur)
		if err != nil {
			return nil, err
		}
		for _, nbr := range nbrs {
			if _, seen := depths[nbr]; seen {
				continue
			}
			depths[nbr] = depths[cur] + 1
			queue = append(queue, nbr)
		}
	}

	return depths, nil
}
