package report_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metrograph/analysis"
	"github.com/katalvlaran/metrograph/core"
	"github.com/katalvlaran/metrograph/dijkstra"
	"github.com/katalvlaran/metrograph/report"
)

// buildNamedLine returns the 1—2—3—4 line with display names plus the
// weight-100 shortcut 1—4.
func buildNamedLine(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	names := map[string]string{"1": "Rho Fiera", "2": "Molino Dorino", "3": "Bonola", "4": "Lotto"}
	for id, name := range names {
		require.NoError(t, g.AddStation(core.Station{ID: id, Name: name, Line: "M1"}))
	}
	require.NoError(t, g.AddConnection("1", "2", "M1", 1))
	require.NoError(t, g.AddConnection("2", "3", "M1", 1))
	require.NoError(t, g.AddConnection("3", "4", "M1", 1))
	require.NoError(t, g.AddConnection("1", "4", "M1", 100))

	return g
}

func TestNetworkSummary(t *testing.T) {
	g := buildNamedLine(t)
	c, err := analysis.Characterize(g)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.New(&buf, g).NetworkSummary(c))

	out := buf.String()
	assert.Contains(t, out, "METRO NETWORK ANALYSIS")
	assert.Contains(t, out, "Number of stations (vertices): 4")
	assert.Contains(t, out, "Number of connections (edges): 4")
	assert.Contains(t, out, "Graph is connected: true")
	assert.Contains(t, out, "Stations with highest degree (2):")
}

func TestComparePaths(t *testing.T) {
	g := buildNamedLine(t)

	var buf bytes.Buffer
	err := report.New(&buf, g).ComparePaths("1", "4",
		[]string{"1", "2", "3", "4"}, // DFS
		[]string{"1", "4"},           // BFS
	)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "PATHFINDING COMPARISON: Rho Fiera -> Lotto")
	assert.Contains(t, out, "DFS path length: 4 stations")
	assert.Contains(t, out, "BFS path length: 2 stations")
	assert.Contains(t, out, "BFS found a shorter path (optimal)")
	assert.Contains(t, out, "Algorithms found different paths")
	assert.Contains(t, out, "  Start: Rho Fiera")
	assert.Contains(t, out, "  End: Lotto")
	assert.Contains(t, out, "  1: Molino Dorino")
}

func TestComparePaths_NoPath(t *testing.T) {
	g := buildNamedLine(t)

	var buf bytes.Buffer
	err := report.New(&buf, g).ComparePaths("1", "4", nil, nil)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "DFS: no path found")
	assert.Contains(t, out, "BFS: no path found")
	assert.Contains(t, out, "One or both algorithms failed to find a path")
}

func TestComparePaths_UnknownStation(t *testing.T) {
	g := buildNamedLine(t)
	var buf bytes.Buffer
	err := report.New(&buf, g).ComparePaths("1", "42", nil, nil)
	assert.ErrorIs(t, err, core.ErrStationNotFound)
}

func TestShortestPath(t *testing.T) {
	g := buildNamedLine(t)

	var buf bytes.Buffer
	err := report.New(&buf, g).ShortestPath("1", "4", 3, []string{"1", "2", "3", "4"})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "SHORTEST PATH: Rho Fiera -> Lotto")
	assert.Contains(t, out, "Total travel time: 3.00 minutes")
	assert.Contains(t, out, "Number of stations: 4")
}

func TestShortestPath_Unreachable(t *testing.T) {
	g := buildNamedLine(t)

	var buf bytes.Buffer
	err := report.New(&buf, g).ShortestPath("1", "4", math.Inf(1), nil)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "no path found")
	assert.NotContains(t, buf.String(), "Total travel time")
}

func TestDistanceRanking(t *testing.T) {
	g := buildNamedLine(t)
	rk, err := dijkstra.Rank(g, "1", 2, 1)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.New(&buf, g).DistanceRanking(rk))

	out := buf.String()
	assert.Contains(t, out, "DISTANCES FROM RHO FIERA TO ALL STATIONS:")
	assert.Contains(t, out, "CLOSEST STATIONS:")
	assert.Contains(t, out, "  Molino Dorino: 1.00 minutes")
	assert.Contains(t, out, "FARTHEST STATIONS:")
	assert.Contains(t, out, "  Lotto: 3.00 minutes")
}
