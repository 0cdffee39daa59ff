// Package dijkstra: distance-ranking analysis.
package dijkstra

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/metrograph/core"
)

// StationDistance pairs a station ID with its minimum travel time from a
// ranking source.
type StationDistance struct {
	ID       string
	Distance float64
}

// Ranking reports the stations closest to and farthest from a source,
// by minimum travel time.
type Ranking struct {
	// Source is the station the distances are measured from.
	Source string

	// Closest holds up to the requested number of nearest reachable
	// stations, ascending by distance. The source itself is excluded.
	Closest []StationDistance

	// Farthest holds up to the requested number of most distant reachable
	// stations, still ascending by distance.
	Farthest []StationDistance
}

// Rank runs SingleSource from source and ranks every reachable station by
// ascending distance, excluding the source itself and any unreachable
// station. Ties in distance are broken by ascending station ID so output is
// reproducible. closest and farthest bound the two result lists and must be
// non-negative (ErrBadCount).
//
// Complexity: O((V + E) log V) for the distances plus O(V log V) sorting.
func Rank(g *core.Graph, source string, closest, farthest int, opts ...Option) (*Ranking, error) {
	if closest < 0 || farthest < 0 {
		return nil, fmt.Errorf("%w: closest=%d farthest=%d", ErrBadCount, closest, farthest)
	}

	dist, err := SingleSource(g, source, opts...)
	if err != nil {
		return nil, err
	}

	// Keep reachable stations only; the source (distance 0) is excluded
	// from both lists.
	ranked := make([]StationDistance, 0, len(dist))
	for id, d := range dist {
		if id == source || IsUnreachable(d) {
			continue
		}
		ranked = append(ranked, StationDistance{ID: id, Distance: d})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Distance != ranked[j].Distance {
			return ranked[i].Distance < ranked[j].Distance
		}

		return ranked[i].ID < ranked[j].ID
	})

	res := &Ranking{Source: source}
	if n := min(closest, len(ranked)); n > 0 {
		res.Closest = append([]StationDistance(nil), ranked[:n]...)
	}
	if n := min(farthest, len(ranked)); n > 0 {
		res.Farthest = append([]StationDistance(nil), ranked[len(ranked)-n:]...)
	}

	return res, nil
}
