// Package viz renders a metro core.Graph as a static visualization.
//
// Stations and connections are color-coded by metro line; interchange
// stations (composite line labels such as "M1-M2") share a single transfer
// color. The output format is Graphviz DOT with geographic node positions,
// suitable for a one-shot render at the end of an analysis session.
package viz

// Line color palette. Composite interchange labels all map to
// transferColor; anything unknown falls back to defaultColor.
const (
	transferColor = "#34495e" // transfer/interchange stations
	defaultColor  = "#95a5a6" // unknown line label
)

// lineColors maps single line codes to their display colors.
var lineColors = map[string]string{
	"M1": "#e74c3c", // red line
	"M2": "#2ecc71", // green line
	"M3": "#f39c12", // yellow line
	"M5": "#9b59b6", // purple line
}

// LineColors returns a copy of the single-line palette.
func LineColors() map[string]string {
	out := make(map[string]string, len(lineColors))
	for line, color := range lineColors {
		out[line] = color
	}

	return out
}

// ColorFor resolves the display color of a line label: the line's own color,
// the transfer color for composite interchange labels, or the gray fallback.
func ColorFor(line string) string {
	if c, ok := lineColors[line]; ok {
		return c
	}
	if isComposite(line) {
		return transferColor
	}

	return defaultColor
}

// isComposite reports whether the label joins several line codes ("M1-M2").
func isComposite(line string) bool {
	for i := 0; i < len(line); i++ {
		if line[i] == '-' {
			return true
		}
	}

	return false
}
