package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default ranking list sizes when a scenario omits them.
const (
	defaultClosest  = 10
	defaultFarthest = 5
)

// ErrBadScenario indicates a scenario file that is structurally invalid.
var ErrBadScenario = errors.New("metrograph: invalid scenario")

// scenario describes one offline analysis session: where the dataset lives
// and which queries to run against it.
type scenario struct {
	// Stations and Connections are the dataset JSON file paths.
	Stations    string `yaml:"stations"`
	Connections string `yaml:"connections"`

	// Queries lists station pairs for the DFS/BFS comparison and the
	// Dijkstra shortest-path report.
	Queries []query `yaml:"queries"`

	// Rankings lists source stations for the closest/farthest analysis.
	Rankings []ranking `yaml:"rankings"`

	// DOT, if set, is where the network visualization is written.
	DOT string `yaml:"dot"`
}

type query struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

type ranking struct {
	Source   string `yaml:"source"`
	Closest  int    `yaml:"closest"`
	Farthest int    `yaml:"farthest"`
}

// loadScenario reads, decodes, and validates a scenario YAML file,
// filling in the default ranking sizes.
func loadScenario(path string) (*scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("metrograph: could not read scenario file: %w", err)
	}
	var s scenario
	if err = yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("metrograph: could not parse %s: %w", path, err)
	}

	if s.Stations == "" || s.Connections == "" {
		return nil, fmt.Errorf("%w: stations and connections paths are required", ErrBadScenario)
	}
	for i, q := range s.Queries {
		if q.From == "" || q.To == "" {
			return nil, fmt.Errorf("%w: query %d needs both from and to", ErrBadScenario, i)
		}
	}
	for i := range s.Rankings {
		r := &s.Rankings[i]
		if r.Source == "" {
			return nil, fmt.Errorf("%w: ranking %d needs a source", ErrBadScenario, i)
		}
		if r.Closest == 0 {
			r.Closest = defaultClosest
		}
		if r.Farthest == 0 {
			r.Farthest = defaultFarthest
		}
		if r.Closest < 0 || r.Farthest < 0 {
			return nil, fmt.Errorf("%w: ranking %d counts must be non-negative", ErrBadScenario, i)
		}
	}

	return &s, nil
}
