// Package dijkstra: single-source and single-pair shortest paths.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/metrograph/core"
)

// SingleSource computes the minimum travel time from source to every
// station in g and returns the complete distance table. Unreachable
// stations map to math.Inf(1).
//
// Preconditions and validation (in order):
//  1. source must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain source (ErrStationNotFound).
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func SingleSource(g *core.Graph, source string, opts ...Option) (map[string]float64, error) {
	r, err := newRunner(g, source, false, opts)
	if err != nil {
		return nil, err
	}
	// No target: exhaust the frontier.
	if err = r.process(""); err != nil {
		return nil, err
	}

	return r.dist, nil
}

// Pair computes the minimum travel time and path from source to target.
// It is the same algorithm as SingleSource with predecessor tracking and
// early termination the moment target is selected as the current minimum,
// which is correct because stations are finalized in nondecreasing distance
// order under non-negative weights.
//
// Returns (math.Inf(1), nil, nil) when target is unreachable from source;
// a missing route is a result, not an error. source == target is valid and
// yields (0, [source]).
//
// Validation is as in SingleSource, plus target must exist in g
// (ErrStationNotFound).
func Pair(g *core.Graph, source, target string, opts ...Option) (float64, []string, error) {
	r, err := newRunner(g, source, true, opts)
	if err != nil {
		return 0, nil, err
	}
	if !g.HasStation(target) {
		return 0, nil, fmt.Errorf("%w: target %q", ErrStationNotFound, target)
	}

	// Trivial zero-hop route.
	if source == target {
		return 0, []string{source}, nil
	}

	if err = r.process(target); err != nil {
		return 0, nil, err
	}

	// Unreachable target: infinite distance, empty path.
	d := r.dist[target]
	if IsUnreachable(d) {
		return math.Inf(1), nil, nil
	}

	// Reconstruct by walking predecessor pointers backward, then reversing.
	path := []string{target}
	for cur := target; cur != source; {
		cur = r.prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return d, path, nil
}

// runner holds the mutable state for a single Dijkstra execution.
// All state is per-call; the graph itself is never mutated.
type runner struct {
	g       *core.Graph        // the input graph; read-only here
	options Options            // configuration (MaxDistance)
	dist    map[string]float64 // station ID → current best distance from source
	prev    map[string]string  // station ID → predecessor on the shortest path
	visited map[string]bool    // whether a station's distance is finalized
	pq      stationPQ          // min-heap for lazy priority selection
}

// newRunner validates the inputs and prepares the initial algorithm state:
// every distance at +∞ except the source at 0, and the source on the heap.
func newRunner(g *core.Graph, source string, trackPrev bool, opts []Option) (*runner, error) {
	// 1) Build Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate source, graph, membership.
	if source == "" {
		return nil, ErrEmptySource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasStation(source) {
		return nil, fmt.Errorf("%w: source %q", ErrStationNotFound, source)
	}

	// 3) Initialize dist[v] = +∞ for all stations, 0 for the source.
	stations := g.Stations()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]float64, len(stations)),
		visited: make(map[string]bool, len(stations)),
		pq:      make(stationPQ, 0, len(stations)),
	}
	if trackPrev {
		r.prev = make(map[string]string, len(stations))
	}
	for _, id := range stations {
		r.dist[id] = math.Inf(1)
	}
	r.dist[source] = 0

	// 4) Seed the heap with the source at distance 0.
	heap.Init(&r.pq)
	heap.Push(&r.pq, &stationItem{id: source, dist: 0})

	return r, nil
}

// process is the main loop: repeatedly finalize the unfinalized station with
// minimum tentative distance and relax its neighbors. The loop ends when the
// heap empties (every remaining station is unreachable), when the minimum
// exceeds MaxDistance, or when target (if non-empty) is finalized.
func (r *runner) process(target string) error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*stationItem)
		u, d := item.id, item.dist

		// Stale heap entry under lazy-decrease-key: already finalized.
		if r.visited[u] {
			continue
		}
		// Beyond the cap: every remaining entry is at least this far.
		if d > r.options.MaxDistance {
			break
		}

		// Finalize u; its shortest distance is now d.
		r.visited[u] = true

		// Early exit: the target's distance is final once it is selected.
		if target != "" && u == target {
			return nil
		}

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each neighbor of u and improves its tentative distance
// where source→…→u→v is strictly shorter than the best known route to v.
func (r *runner) relax(u string) error {
	nbrs, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %q: %w", u, err)
	}

	for _, v := range nbrs {
		w, err := r.g.Weight(u, v)
		if err != nil {
			return fmt.Errorf("dijkstra: weight of %s—%s: %w", u, v, err)
		}
		// core.AddConnection rejects negative weights, but the algorithm's
		// correctness depends on this, so guard here as well.
		if w < 0 {
			return fmt.Errorf("%w: %s—%s weight=%v", ErrNegativeWeight, u, v, w)
		}

		newDist := r.dist[u] + w
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strict improvement only; equal-distance routes keep the
		// predecessor discovered first, which is deterministic given the
		// heap's ID tie-break.
		if newDist >= r.dist[v] {
			continue
		}

		r.dist[v] = newDist
		if r.prev != nil {
			r.prev[v] = u
		}
		// Lazy-decrease-key: push a duplicate, skip stale entries on pop.
		heap.Push(&r.pq, &stationItem{id: v, dist: newDist})
	}

	return nil
}

// stationItem is a heap entry: a station and its tentative distance.
type stationItem struct {
	id   string
	dist float64
}

// stationPQ is a min-heap of *stationItem ordered by ascending distance,
// with ties broken by ascending station ID for reproducible selection.
type stationPQ []*stationItem

func (pq stationPQ) Len() int { return len(pq) }

func (pq stationPQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq stationPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *stationPQ) Push(x interface{}) { *pq = append(*pq, x.(*stationItem)) }

func (pq *stationPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
