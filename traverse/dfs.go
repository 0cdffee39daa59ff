// Package traverse: depth-first path search.
package traverse

import (
	"fmt"

	"github.com/katalvlaran/metrograph/core"
)

// frame is one level of the explicit DFS stack: the station being explored
// and a cursor into its (sorted) neighbor list.
type frame struct {
	id   string
	nbrs []string
	next int
}

// DFSPath finds a path from start to goal in depth-first order and returns
// it as an ordered sequence of station IDs. The path is not guaranteed
// shortest: it is the first one reached given ascending-ID neighbor order.
//
// Cycle avoidance is per-path, not global: a station already on the current
// path is skipped, but may be re-explored later via a different branch after
// backtracking. The traversal is iterative with an explicit stack and a
// single mutable path buffer, so call-stack depth is never a concern.
//
// Returns (nil, nil) when start and goal are disconnected.
// Returns ErrGraphNil, ErrOptionViolation, core.ErrStationNotFound for
// invalid input, or the context's error on cancellation.
// Complexity: O(V + E) per explored branch; worst case exponential in
// pathological graphs, linear on trees.
func DFSPath(g *core.Graph, start, goal string, opts ...Option) ([]string, error) {
	// 1. Validate input graph and options.
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	// 2. Both endpoints must exist; surface the core sentinel.
	if !g.HasStation(start) {
		return nil, fmt.Errorf("traverse: start %w: %q", core.ErrStationNotFound, start)
	}
	if !g.HasStation(goal) {
		return nil, fmt.Errorf("traverse: goal %w: %q", core.ErrStationNotFound, goal)
	}

	// 3. Trivial zero-hop path.
	if start == goal {
		return []string{start}, nil
	}

	// 4. Seed the explicit stack with the start station.
	nbrs, err := g.Neighbors(start)
	if err != nil {
		return nil, fmt.Errorf("traverse: neighbors of %q: %w", start, err)
	}
	path := []string{start}
	onPath := map[string]bool{start: true}
	stack := []frame{{id: start, nbrs: nbrs}}

	for len(stack) > 0 {
		// Cancellation check once per step.
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		top := &stack[len(stack)-1]

		// Neighbors exhausted: backtrack, freeing the station for other branches.
		if top.next >= len(top.nbrs) {
			stack = stack[:len(stack)-1]
			delete(onPath, top.id)
			path = path[:len(path)-1]
			continue
		}

		nbr := top.nbrs[top.next]
		top.next++

		// Per-path visited check: skip stations already on the current path.
		if onPath[nbr] {
			continue
		}
		if !o.FilterNeighbor(top.id, nbr) {
			continue
		}
		// len(path) is exactly the hop count to nbr.
		if o.MaxDepth > 0 && len(path) > o.MaxDepth {
			continue
		}

		// First path to reach the goal in depth-first order wins.
		if nbr == goal {
			out := make([]string, 0, len(path)+1)
			out = append(out, path...)
			out = append(out, nbr)

			return out, nil
		}

		// Advance: push nbr onto the path and descend.
		next, err := g.Neighbors(nbr)
		if err != nil {
			return nil, fmt.Errorf("traverse: neighbors of %q: %w", nbr, err)
		}
		path = append(path, nbr)
		onPath[nbr] = true
		stack = append(stack, frame{id: nbr, nbrs: next})
	}

	// Disconnected: no path is a result, not an error.
	return nil, nil
}
