// Package viz: deterministic DOT serialization of the metro graph.
package viz

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/katalvlaran/metrograph/core"
)

// ErrNilGraph is returned if a nil graph pointer is passed.
var ErrNilGraph = errors.New("viz: graph is nil")

// DOT serializes g as an undirected Graphviz document with deterministic
// output: stations sorted by ID, connections by their normalized endpoint
// pair. Node positions come from the stations' geographic coordinates
// (longitude as x, latitude as y, pinned), node and edge colors from the
// line palette, and edge labels carry the travel time in minutes.
func DOT(g *core.Graph) (string, error) {
	if g == nil {
		return "", ErrNilGraph
	}

	var b strings.Builder
	b.WriteString("graph metro {\n")
	b.WriteString("  graph [label=\"Metro Network\" fontsize=14]\n")
	b.WriteString("  node [shape=circle style=filled fontsize=8 width=0.25 fixedsize=true]\n\n")

	// Line legend, one comment per known line color.
	for _, line := range sortedLines() {
		fmt.Fprintf(&b, "  // %s: %s\n", line, lineColors[line])
	}
	fmt.Fprintf(&b, "  // transfer stations: %s\n\n", transferColor)

	for _, id := range g.Stations() {
		s, err := g.Station(id)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "  %s [label=%s fillcolor=%s pos=\"%v,%v!\"]\n",
			quote(s.ID), quote(s.Name), quote(ColorFor(s.Line)), s.Lon, s.Lat)
	}
	b.WriteString("\n")

	for _, c := range g.Connections() {
		from, to := c.From, c.To
		if from > to {
			from, to = to, from
		}
		fmt.Fprintf(&b, "  %s -- %s [color=%s label=\"%v\"]\n",
			quote(from), quote(to), quote(ColorFor(c.Line)), c.Weight)
	}
	b.WriteString("}\n")

	return b.String(), nil
}

// WriteDOT serializes g and writes the document to w.
func WriteDOT(w io.Writer, g *core.Graph) error {
	doc, err := DOT(g)
	if err != nil {
		return err
	}
	if _, err = io.WriteString(w, doc); err != nil {
		return fmt.Errorf("viz: write DOT: %w", err)
	}

	return nil
}

// sortedLines returns the known line codes in ascending order.
func sortedLines() []string {
	lines := make([]string, 0, len(lineColors))
	for line := range lineColors {
		lines = append(lines, line)
	}
	sort.Strings(lines)

	return lines
}

// quote renders a DOT double-quoted string, escaping embedded quotes.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}
