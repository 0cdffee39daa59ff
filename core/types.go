// Package core: model types and sentinel errors.
//
// This file declares Station, Connection, Graph, and the sentinel errors
// returned by graph accessors.
package core

import (
	"errors"
	"strings"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyStationID indicates that the provided station ID is empty.
	ErrEmptyStationID = errors.New("core: station ID is empty")

	// ErrStationNotFound indicates an operation referenced a non-existent station.
	ErrStationNotFound = errors.New("core: station not found")

	// ErrConnectionNotFound indicates no connection exists between the two stations.
	ErrConnectionNotFound = errors.New("core: connection not found")

	// ErrNegativeWeight indicates a connection weight below zero.
	// Shortest-path correctness depends on non-negative travel times,
	// so the graph rejects such connections at construction time.
	ErrNegativeWeight = errors.New("core: negative connection weight")

	// ErrSelfConnection indicates a connection whose endpoints are identical.
	ErrSelfConnection = errors.New("core: connection endpoints are identical")
)

// lineSeparator joins line codes in a composite label such as "M1-M2".
const lineSeparator = "-"

// Station is a node of the metro network.
//
// ID uniquely identifies the station within its Graph. Line is either a
// single line code ("M1") or a composite interchange label ("M1-M2").
// Lat and Lon are geographic coordinates consumed only by the visualizer.
type Station struct {
	// ID is the unique, stable identifier for this station.
	ID string

	// Name is the human-readable display name.
	Name string

	// Line is the line label; composite labels mark interchange stations.
	Line string

	// Lat is the latitude in degrees.
	Lat float64

	// Lon is the longitude in degrees.
	Lon float64
}

// IsInterchange reports whether the station belongs to more than one line,
// i.e. its line label is composite ("M1-M2").
func (s Station) IsInterchange() bool {
	return strings.Contains(s.Line, lineSeparator)
}

// Lines returns the individual line codes the station belongs to.
// A plain label yields a single-element slice.
func (s Station) Lines() []string {
	return strings.Split(s.Line, lineSeparator)
}

// Connection is an undirected weighted edge between two stations.
//
// Weight is the travel time in minutes and is always ≥ 0. A Connection is
// traversable in both directions with the same weight.
type Connection struct {
	// From and To are the endpoint station IDs as given to AddConnection.
	From string
	To   string

	// Line is the line label the connection belongs to.
	Line string

	// Weight is the travel time in minutes (non-negative).
	Weight float64
}

// Graph is the in-memory metro network.
//
// It is undirected and weighted, with a simple adjacency structure:
// adj[a][b] holds the connection between a and b (both directions present).
// Build it once with AddStation/AddConnection, then treat it as read-only.
type Graph struct {
	mu sync.RWMutex // guards stations and adj during the build phase

	stations map[string]*Station           // station ID → Station
	adj      map[string]map[string]*Connection // from ID → to ID → connection
}

// NewGraph creates an empty metro network graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		stations: make(map[string]*Station),
		adj:      make(map[string]map[string]*Connection),
	}
}
