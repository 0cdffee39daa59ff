// Package report formats engine results for human consumption.
//
// A Reporter writes plain-text reports to an io.Writer: network summaries,
// DFS/BFS pathfinding comparisons, shortest weighted paths, and distance
// rankings. It consumes the graph's station attributes and the engines'
// outputs and produces nothing the core depends on. A missing route is
// rendered as "no path found", never raised; unknown station IDs propagate
// the core sentinel error.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/metrograph/analysis"
	"github.com/katalvlaran/metrograph/core"
	"github.com/katalvlaran/metrograph/dijkstra"
)

const (
	headerRule    = 50
	wideRule      = 70
	noPathMessage = "no path found"
)

// Reporter renders session reports for one metro graph.
type Reporter struct {
	w io.Writer
	g *core.Graph
}

// New returns a Reporter writing to w about g.
func New(w io.Writer, g *core.Graph) *Reporter {
	return &Reporter{w: w, g: g}
}

// stationName resolves a station's display name, falling back to the ID
// when the dataset carries no name.
func (r *Reporter) stationName(id string) (string, error) {
	s, err := r.g.Station(id)
	if err != nil {
		return "", err
	}
	if s.Name == "" {
		return s.ID, nil
	}

	return s.Name, nil
}

// NetworkSummary prints the whole-network characteristics block.
func (r *Reporter) NetworkSummary(c *analysis.Characteristics) error {
	rule := strings.Repeat("=", headerRule)
	fmt.Fprintln(r.w, rule)
	fmt.Fprintln(r.w, "METRO NETWORK ANALYSIS")
	fmt.Fprintln(r.w, rule)
	fmt.Fprintf(r.w, "Number of stations (vertices): %d\n", c.Stations)
	fmt.Fprintf(r.w, "Number of connections (edges): %d\n", c.Connections)
	fmt.Fprintf(r.w, "Graph density: %.4f\n", c.Density)
	fmt.Fprintf(r.w, "Graph is connected: %t\n", c.Connected)
	if c.Connected {
		fmt.Fprintf(r.w, "Average shortest path length: %.2f\n", c.AvgPathLength)
		fmt.Fprintf(r.w, "Graph diameter: %d\n", c.Diameter)
	}
	fmt.Fprintf(r.w, "Average degree: %.2f\n", c.AvgDegree)
	fmt.Fprintf(r.w, "Maximum degree: %d\n", c.MaxDegree)
	fmt.Fprintf(r.w, "Minimum degree: %d\n", c.MinDegree)
	if len(c.Hubs) > 0 {
		fmt.Fprintf(r.w, "Stations with highest degree (%d):\n", c.MaxDegree)
		for _, id := range c.Hubs {
			name, err := r.stationName(id)
			if err != nil {
				return err
			}
			fmt.Fprintf(r.w, "  - %s\n", name)
		}
	}
	fmt.Fprintln(r.w, rule)

	return nil
}

// PathDetails prints one algorithm's route: length and the station listing,
// or the no-path message when path is empty.
func (r *Reporter) PathDetails(algorithm string, path []string) error {
	if len(path) == 0 {
		fmt.Fprintf(r.w, "%s: %s\n", algorithm, noPathMessage)

		return nil
	}

	fmt.Fprintf(r.w, "\n%s path:\n", algorithm)
	fmt.Fprintf(r.w, "Length: %d stations\n", len(path))
	fmt.Fprintln(r.w, "Route:")

	return r.route(path)
}

// route prints the Start/intermediate/End station lines of a path.
func (r *Reporter) route(path []string) error {
	for i, id := range path {
		name, err := r.stationName(id)
		if err != nil {
			return err
		}
		switch i {
		case 0:
			fmt.Fprintf(r.w, "  Start: %s\n", name)
		case len(path) - 1:
			fmt.Fprintf(r.w, "  End: %s\n", name)
		default:
			fmt.Fprintf(r.w, "  %d: %s\n", i, name)
		}
	}

	return nil
}

// ComparePaths prints the DFS-versus-BFS comparison for one station pair.
func (r *Reporter) ComparePaths(start, goal string, dfsPath, bfsPath []string) error {
	startName, err := r.stationName(start)
	if err != nil {
		return err
	}
	goalName, err := r.stationName(goal)
	if err != nil {
		return err
	}

	rule := strings.Repeat("=", wideRule)
	fmt.Fprintln(r.w, rule)
	fmt.Fprintf(r.w, "PATHFINDING COMPARISON: %s -> %s\n", startName, goalName)
	fmt.Fprintln(r.w, rule)

	if err = r.PathDetails("DFS", dfsPath); err != nil {
		return err
	}
	if err = r.PathDetails("BFS", bfsPath); err != nil {
		return err
	}

	fmt.Fprintln(r.w, "\nCOMPARISON:")
	if len(dfsPath) == 0 || len(bfsPath) == 0 {
		fmt.Fprintln(r.w, "One or both algorithms failed to find a path")

		return nil
	}
	fmt.Fprintf(r.w, "DFS path length: %d stations\n", len(dfsPath))
	fmt.Fprintf(r.w, "BFS path length: %d stations\n", len(bfsPath))
	switch {
	case len(dfsPath) == len(bfsPath):
		fmt.Fprintln(r.w, "Both algorithms found paths of equal length")
	case len(bfsPath) < len(dfsPath):
		fmt.Fprintln(r.w, "BFS found a shorter path (optimal)")
	default:
		fmt.Fprintln(r.w, "DFS found a shorter path")
	}
	if equalPaths(dfsPath, bfsPath) {
		fmt.Fprintln(r.w, "Both algorithms found the same path")
	} else {
		fmt.Fprintln(r.w, "Algorithms found different paths")
	}

	return nil
}

// ShortestPath prints a weighted shortest-path result from the Pair engine.
func (r *Reporter) ShortestPath(start, end string, distance float64, path []string) error {
	startName, err := r.stationName(start)
	if err != nil {
		return err
	}
	endName, err := r.stationName(end)
	if err != nil {
		return err
	}

	fmt.Fprintf(r.w, "\nSHORTEST PATH: %s -> %s\n", startName, endName)
	if dijkstra.IsUnreachable(distance) || len(path) == 0 {
		fmt.Fprintf(r.w, "  %s\n", noPathMessage)

		return nil
	}
	fmt.Fprintf(r.w, "Total travel time: %.2f minutes\n", distance)
	fmt.Fprintf(r.w, "Number of stations: %d\n", len(path))
	fmt.Fprintln(r.w, "Route:")

	return r.route(path)
}

// DistanceRanking prints the closest/farthest station listing from Rank.
func (r *Reporter) DistanceRanking(rk *dijkstra.Ranking) error {
	sourceName, err := r.stationName(rk.Source)
	if err != nil {
		return err
	}

	fmt.Fprintf(r.w, "DISTANCES FROM %s TO ALL STATIONS:\n", strings.ToUpper(sourceName))
	fmt.Fprintln(r.w, strings.Repeat("-", headerRule))

	fmt.Fprintln(r.w, "CLOSEST STATIONS:")
	if err = r.ranked(rk.Closest); err != nil {
		return err
	}
	fmt.Fprintln(r.w, "\nFARTHEST STATIONS:")

	return r.ranked(rk.Farthest)
}

// ranked prints one "name: distance" block of a ranking.
func (r *Reporter) ranked(list []dijkstra.StationDistance) error {
	for _, sd := range list {
		name, err := r.stationName(sd.ID)
		if err != nil {
			return err
		}
		fmt.Fprintf(r.w, "  %s: %.2f minutes\n", name, sd.Distance)
	}

	return nil
}

// equalPaths reports whether two paths are identical station for station.
func equalPaths(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
