package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metrograph/analysis"
	"github.com/katalvlaran/metrograph/core"
)

// buildSquare returns the 4-cycle 1—2—3—4—1.
func buildSquare(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range []string{"1", "2", "3", "4"} {
		require.NoError(t, g.AddStation(core.Station{ID: id, Line: "M1"}))
	}
	require.NoError(t, g.AddConnection("1", "2", "M1", 1))
	require.NoError(t, g.AddConnection("2", "3", "M1", 1))
	require.NoError(t, g.AddConnection("3", "4", "M1", 1))
	require.NoError(t, g.AddConnection("4", "1", "M1", 1))

	return g
}

func TestCharacterize_NilGraph(t *testing.T) {
	_, err := analysis.Characterize(nil)
	assert.ErrorIs(t, err, analysis.ErrNilGraph)
}

func TestCharacterize_EmptyGraph(t *testing.T) {
	c, err := analysis.Characterize(core.NewGraph())
	require.NoError(t, err)
	assert.Equal(t, 0, c.Stations)
	assert.False(t, c.Connected)
}

func TestCharacterize_Square(t *testing.T) {
	c, err := analysis.Characterize(buildSquare(t))
	require.NoError(t, err)

	assert.Equal(t, 4, c.Stations)
	assert.Equal(t, 4, c.Connections)
	assert.InDelta(t, 2.0/3.0, c.Density, 1e-12)
	assert.True(t, c.Connected)

	// On a 4-cycle every station has degree 2, opposite corners are 2 hops
	// apart, and the 12 ordered pairs split into 8 at 1 hop and 4 at 2.
	assert.Equal(t, 2, c.MinDegree)
	assert.Equal(t, 2, c.MaxDegree)
	assert.Equal(t, 2.0, c.AvgDegree)
	assert.Equal(t, 2, c.Diameter)
	assert.InDelta(t, 4.0/3.0, c.AvgPathLength, 1e-12)
	assert.Equal(t, []string{"1", "2", "3", "4"}, c.Hubs)
}

func TestCharacterize_Disconnected(t *testing.T) {
	g := buildSquare(t)
	require.NoError(t, g.AddStation(core.Station{ID: "5", Line: "M2"}))

	c, err := analysis.Characterize(g)
	require.NoError(t, err)
	assert.False(t, c.Connected)
	assert.Equal(t, 0, c.Diameter, "path figures undefined when disconnected")
	assert.Equal(t, 0.0, c.AvgPathLength)
	assert.Equal(t, 0, c.MinDegree, "the isolated station has degree 0")
}

func TestCharacterize_Hubs(t *testing.T) {
	// Star with hub "h": highest degree is unique.
	g := core.NewGraph()
	require.NoError(t, g.AddStation(core.Station{ID: "h", Line: "M1"}))
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, g.AddStation(core.Station{ID: id, Line: "M1"}))
		require.NoError(t, g.AddConnection("h", id, "M1", 1))
	}

	c, err := analysis.Characterize(g)
	require.NoError(t, err)
	assert.Equal(t, 3, c.MaxDegree)
	assert.Equal(t, []string{"h"}, c.Hubs)
}
