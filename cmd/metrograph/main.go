// Command metrograph runs one offline metro network analysis session:
// it loads a station/connection dataset, builds the in-memory graph, prints
// the network summary, the DFS/BFS comparison and Dijkstra shortest path
// for each configured station pair, the distance rankings, and optionally
// writes a DOT visualization of the network.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/metrograph/analysis"
	"github.com/katalvlaran/metrograph/dataset"
	"github.com/katalvlaran/metrograph/dijkstra"
	"github.com/katalvlaran/metrograph/report"
	"github.com/katalvlaran/metrograph/traverse"
	"github.com/katalvlaran/metrograph/viz"
)

func main() {
	log.SetFlags(0)

	scenarioPath := flag.String("config", "scenario.yaml", "path to the analysis scenario YAML")
	flag.Parse()

	if err := run(*scenarioPath, os.Stdout); err != nil {
		log.Fatalf("metrograph: %v", err)
	}
}

// run executes the whole session against w. Structural errors abort the
// session; a missing route between queried stations is reported, not fatal.
func run(scenarioPath string, w io.Writer) error {
	s, err := loadScenario(scenarioPath)
	if err != nil {
		return err
	}

	stations, connections, err := dataset.Load(s.Stations, s.Connections)
	if err != nil {
		return err
	}
	g, err := dataset.Build(stations, connections)
	if err != nil {
		return err
	}

	rep := report.New(w, g)

	chars, err := analysis.Characterize(g)
	if err != nil {
		return err
	}
	if err = rep.NetworkSummary(chars); err != nil {
		return err
	}

	for _, q := range s.Queries {
		dfsPath, err := traverse.DFSPath(g, q.From, q.To)
		if err != nil {
			return err
		}
		bfsPath, err := traverse.BFSPath(g, q.From, q.To)
		if err != nil {
			return err
		}
		if err = rep.ComparePaths(q.From, q.To, dfsPath, bfsPath); err != nil {
			return err
		}

		dist, path, err := dijkstra.Pair(g, q.From, q.To)
		if err != nil {
			return err
		}
		if err = rep.ShortestPath(q.From, q.To, dist, path); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}

	for _, r := range s.Rankings {
		rk, err := dijkstra.Rank(g, r.Source, r.Closest, r.Farthest)
		if err != nil {
			return err
		}
		if err = rep.DistanceRanking(rk); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}

	if s.DOT != "" {
		f, err := os.Create(s.DOT)
		if err != nil {
			return fmt.Errorf("metrograph: create DOT file: %w", err)
		}
		defer f.Close()
		if err = viz.WriteDOT(f, g); err != nil {
			return err
		}
		fmt.Fprintf(w, "Visualization written to %s\n", s.DOT)
	}

	return nil
}
