// Package traverse: breadth-first path search.
package traverse

import (
	"fmt"

	"github.com/katalvlaran/metrograph/core"
)

// queueItem pairs a station ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// BFSPath finds a fewest-hops path from start to goal and returns it as an
// ordered sequence of station IDs. The frontier is first-in-first-out and
// the visited set is global (a station is enqueued at most once), so the
// first path reaching goal is hop-optimal by construction. With ascending-ID
// neighbor order the result is reproducible across runs.
//
// Returns (nil, nil) when start and goal are disconnected.
// Returns ErrGraphNil, ErrOptionViolation, core.ErrStationNotFound for
// invalid input, or the context's error on cancellation.
// Complexity: O(V + E) time, O(V) space.
func BFSPath(g *core.Graph, start, goal string, opts ...Option) ([]string, error) {
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

	// 3. Trivial zero-hop path, returned without searching.
	if start == goal {
		return []string{start}, nil
	}

	// 4. FIFO frontier with parent links for path reconstruction.
	queue := []queueItem{{id: start, depth: 0}}
	visited := map[string]bool{start: true}
	parent := make(map[string]string)

	for len(queue) > 0 {
		// Cancellation check once per dequeue.
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		item := queue[0]
		queue = queue[1:]

		nbrs, err := g.Neighbors(item.id)
		if err != nil {
			return nil, fmt.Errorf("traverse: neighbors of %q: %w", item.id, err)
		}
		for _, nbr := range nbrs {
			if visited[nbr] {
				continue
			}
			if !o.FilterNeighbor(item.id, nbr) {
				continue
			}
			nextDepth := item.depth + 1
			if o.MaxDepth > 0 && nextDepth > o.MaxDepth {
				continue
			}

			visited[nbr] = true
			parent[nbr] = item.id

			// First time the goal is seen, its path is hop-optimal.
			if nbr == goal {
				return reconstruct(parent, start, goal), nil
			}
			queue = append(queue, queueItem{id: nbr, depth: nextDepth})
		}
	}

	// Disconnected: no path is a result, not an error.
	return nil, nil
}

// reconstruct walks parent links backward from goal to start, then reverses.
func reconstruct(parent map[string]string, start, goal string) []string {
	path := []string{goal}
	for cur := goal; cur != start; {
		cur = parent[cur]
		path = append(path, cur)
	}
	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
