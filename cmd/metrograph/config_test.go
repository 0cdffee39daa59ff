package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestLoadScenario_Full(t *testing.T) {
	path := writeScenario(t, `
stations: stations.json
connections: connections.json
queries:
  - from: "1"
    to: "4"
rankings:
  - source: "1"
    closest: 3
    farthest: 2
dot: network.dot
`)

	s, err := loadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, "stations.json", s.Stations)
	assert.Equal(t, "connections.json", s.Connections)
	require.Len(t, s.Queries, 1)
	assert.Equal(t, query{From: "1", To: "4"}, s.Queries[0])
	require.Len(t, s.Rankings, 1)
	assert.Equal(t, ranking{Source: "1", Closest: 3, Farthest: 2}, s.Rankings[0])
	assert.Equal(t, "network.dot", s.DOT)
}

func TestLoadScenario_RankingDefaults(t *testing.T) {
	path := writeScenario(t, `
stations: stations.json
connections: connections.json
rankings:
  - source: "1"
`)

	s, err := loadScenario(path)
	require.NoError(t, err)
	require.Len(t, s.Rankings, 1)
	assert.Equal(t, defaultClosest, s.Rankings[0].Closest)
	assert.Equal(t, defaultFarthest, s.Rankings[0].Farthest)
}

func TestLoadScenario_Invalid(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing dataset paths", "queries: []\n"},
		{"query without endpoints", "stations: s.json\nconnections: c.json\nqueries:\n  - from: \"1\"\n"},
		{"ranking without source", "stations: s.json\nconnections: c.json\nrankings:\n  - closest: 3\n"},
		{"negative ranking count", "stations: s.json\nconnections: c.json\nrankings:\n  - source: \"1\"\n    closest: -1\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := loadScenario(writeScenario(t, tc.body))
			assert.ErrorIs(t, err, ErrBadScenario)
		})
	}
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := loadScenario(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadScenario_BadYAML(t *testing.T) {
	_, err := loadScenario(writeScenario(t, "stations: [unclosed"))
	assert.Error(t, err)
}
