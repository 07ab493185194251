package report

import (
	"strings"
)

// DefaultBarWidth is the width of a degree bar in cells.
const DefaultBarWidth = 20

// degreeBar renders a horizontal bar for a membership degree in [0,1].
func degreeBar(th theme, degree float64, width int) string {
	if width < 4 {
		width = 4
	}

	filled := int(float64(width)*degree + 0.5)
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	empty := width - filled

	return th.filled.Render(strings.Repeat("█", filled)) +
		th.empty.Render(strings.Repeat("░", empty))
}
