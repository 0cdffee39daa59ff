// Package dijkstra: sentinel errors and configuration options.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the shortest-path engine.
var (
	// ErrEmptySource indicates that the provided source station ID is empty.
	ErrEmptySource = errors.New("dijkstra: source station ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrStationNotFound indicates that a referenced station does not exist
	// in the provided graph.
	ErrStationNotFound = errors.New("dijkstra: station not found in graph")

	// ErrNegativeWeight indicates that a negative connection weight was
	// encountered during relaxation. core.Graph rejects negative weights at
	// construction time, so this guards the algorithm's precondition.
	ErrNegativeWeight = errors.New("dijkstra: negative connection weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative
	// value, which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadCount indicates a negative closest/farthest count passed to Rank.
	ErrBadCount = errors.New("dijkstra: ranking counts must be non-negative")
)

// IsUnreachable reports whether d is the "infinite" sentinel distance
// assigned to stations the source cannot reach.
func IsUnreachable(d float64) bool {
	return math.IsInf(d, 1)
}

// Options configures the behavior of the shortest-path engine.
//
// MaxDistance – optional cap on distances to explore; stations whose
// shortest distance exceeds it keep the unreachable sentinel.
// Must be ≥ 0. Default is math.Inf(1) (no cap).
type Options struct {
	MaxDistance float64 // maximum travel time to explore, in minutes
}

// Option represents a functional option for configuring the engine.
type Option func(*Options)

// WithMaxDistance sets a maximum travel-time threshold.
// Stations whose shortest distance would exceed this value are not explored.
// Must pass a non-negative value; negative values cause ErrBadMaxDistance.
// Default (if not set) is math.Inf(1) (no cap).
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 {
			// Panic to signal invalid configuration early, as option
			// constructors validate their own arguments.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns an Options struct with no distance cap.
func DefaultOptions() Options {
	return Options{
		MaxDistance: math.Inf(1),
	}
}
