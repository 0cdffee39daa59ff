package viz_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metrograph/core"
	"github.com/katalvlaran/metrograph/viz"
)

func TestColorFor(t *testing.T) {
	assert.Equal(t, "#e74c3c", viz.ColorFor("M1"))
	assert.Equal(t, "#2ecc71", viz.ColorFor("M2"))

	// Any composite interchange label shares the transfer color.
	assert.Equal(t, "#34495e", viz.ColorFor("M1-M2"))
	assert.Equal(t, "#34495e", viz.ColorFor("M2-M5"))

	// Unknown single labels fall back to gray.
	assert.Equal(t, "#95a5a6", viz.ColorFor("M9"))
	assert.Equal(t, "#95a5a6", viz.ColorFor(""))
}

func TestLineColors_Copy(t *testing.T) {
	colors := viz.LineColors()
	colors["M1"] = "mutated"
	assert.Equal(t, "#e74c3c", viz.ColorFor("M1"), "palette must not be mutable from outside")
}

func buildTwoLineNetwork(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddStation(core.Station{ID: "1", Name: "Duomo", Line: "M1-M3", Lat: 45.464, Lon: 9.190}))
	require.NoError(t, g.AddStation(core.Station{ID: "2", Name: "Cordusio", Line: "M1", Lat: 45.466, Lon: 9.186}))
	require.NoError(t, g.AddStation(core.Station{ID: "3", Name: "Missori", Line: "M3", Lat: 45.460, Lon: 9.189}))
	require.NoError(t, g.AddConnection("1", "2", "M1", 1.5))
	require.NoError(t, g.AddConnection("3", "1", "M3", 2))

	return g
}

func TestDOT_NilGraph(t *testing.T) {
	_, err := viz.DOT(nil)
	assert.ErrorIs(t, err, viz.ErrNilGraph)
}

func TestDOT_Content(t *testing.T) {
	g := buildTwoLineNetwork(t)

	doc, err := viz.DOT(g)
	require.NoError(t, err)

	assert.Contains(t, doc, "graph metro {")
	// Interchange node takes the transfer color and its geographic position.
	assert.Contains(t, doc, `"1" [label="Duomo" fillcolor="#34495e" pos="9.19,45.464!"]`)
	assert.Contains(t, doc, `"2" [label="Cordusio" fillcolor="#e74c3c"`)
	// Connections are normalized to the (low, high) endpoint order.
	assert.Contains(t, doc, `"1" -- "2" [color="#e74c3c" label="1.5"]`)
	assert.Contains(t, doc, `"1" -- "3" [color="#f39c12" label="2"]`)
}

func TestDOT_Deterministic(t *testing.T) {
	g := buildTwoLineNetwork(t)

	first, err := viz.DOT(g)
	require.NoError(t, err)
	second, err := viz.DOT(g)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestWriteDOT(t *testing.T) {
	g := buildTwoLineNetwork(t)

	var buf bytes.Buffer
	require.NoError(t, viz.WriteDOT(&buf, g))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("graph metro {")))
	assert.True(t, bytes.HasSuffix(buf.Bytes(), []byte("}\n")))
}
