// Package dataset loads metro station and connection records from their
// JSON files and builds the in-memory core.Graph for an analysis session.
//
// The expected formats mirror the dataset files:
//
//	stations.json: {"stations": [{"id": 1, "name": "Duomo", "line": "M1-M3",
//	                              "coordinates": [45.464, 9.190]}, …]}
//	edges.json:    {"edges": [{"from": 1, "to": 2, "line": "M1",
//	                           "weight": 1.5}, …]}
//
// Identifiers may be JSON numbers or strings; both map onto the graph's
// string station IDs. Structural problems (a connection referencing a
// missing station, a negative weight) surface as the core package's
// sentinel errors wrapped with record context.
package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/metrograph/core"
)

// ErrBadCoordinates indicates a station record whose coordinates are not a
// [latitude, longitude] pair.
var ErrBadCoordinates = errors.New("dataset: coordinates must be a [lat, lon] pair")

// StationRecord is one entry of the stations file.
type StationRecord struct {
	ID          json.Number `json:"id"`
	Name        string      `json:"name"`
	Line        string      `json:"line"`
	Coordinates []float64   `json:"coordinates"`
}

// ConnectionRecord is one entry of the connections (edges) file.
type ConnectionRecord struct {
	From   json.Number `json:"from"`
	To     json.Number `json:"to"`
	Line   string      `json:"line"`
	Weight float64     `json:"weight"`
}

// stationsFile and connectionsFile are the top-level JSON envelopes.
type stationsFile struct {
	Stations []StationRecord `json:"stations"`
}

type connectionsFile struct {
	Edges []ConnectionRecord `json:"edges"`
}

// LoadStations reads and decodes the stations file at path.
func LoadStations(path string) ([]StationRecord, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: could not read stations file: %w", err)
	}
	var f stationsFile
	if err = json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("dataset: could not parse %s: %w", path, err)
	}

	return f.Stations, nil
}

// LoadConnections reads and decodes the connections file at path.
func LoadConnections(path string) ([]ConnectionRecord, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: could not read connections file: %w", err)
	}
	var f connectionsFile
	if err = json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("dataset: could not parse %s: %w", path, err)
	}

	return f.Edges, nil
}

// Load reads both record collections for a session.
func Load(stationsPath, connectionsPath string) ([]StationRecord, []ConnectionRecord, error) {
	stations, err := LoadStations(stationsPath)
	if err != nil {
		return nil, nil, err
	}
	connections, err := LoadConnections(connectionsPath)
	if err != nil {
		return nil, nil, err
	}

	return stations, connections, nil
}

// Build constructs the metro graph from loaded records: all stations first,
// then every connection. The first structural error aborts the build with
// the offending record's index in the message.
func Build(stations []StationRecord, connections []ConnectionRecord) (*core.Graph, error) {
	g := core.NewGraph()

	for i, s := range stations {
		if len(s.Coordinates) != 2 {
			return nil, fmt.Errorf("%w: station record %d (%s)", ErrBadCoordinates, i, s.ID)
		}
		st := core.Station{
			ID:   s.ID.String(),
			Name: s.Name,
			Line: s.Line,
			Lat:  s.Coordinates[0],
			Lon:  s.Coordinates[1],
		}
		if err := g.AddStation(st); err != nil {
			return nil, fmt.Errorf("dataset: station record %d: %w", i, err)
		}
	}

	for i, c := range connections {
		if err := g.AddConnection(c.From.String(), c.To.String(), c.Line, c.Weight); err != nil {
			return nil, fmt.Errorf("dataset: connection record %d: %w", i, err)
		}
	}

	return g, nil
}
