// Package overlay splices rendered boxes into a larger frame. It is
// the compositing layer under the toast manager: the background is a
// fully rendered Bubble Tea view, the overlay a lipgloss box, and the
// result the same frame with the box occupying a rectangle of cells.
//
// All splicing is ANSI aware. Widths are measured in terminal cells,
// escape sequences pass through unchanged, and background cells outside
// the overlay rectangle keep their exact content and styling.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// resetSeq clears SGR state at segment boundaries so a background line
// cut mid-run cannot bleed styling into the overlay, and vice versa.
const resetSeq = "\x1b[0m"

// Composite draws overlay on top of background with the overlay's
// top-left corner at cell (x, y). Rows and columns not covered by the
// overlay are untouched. The frame grows if the overlay extends past
// the background's bottom or right edge.
func Composite(overlay, background string, x, y int) string {
	if overlay == "" {
		return background
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	bgLines := strings.Split(background, "\n")
	ovLines := strings.Split(overlay, "\n")

	for len(bgLines) < y+len(ovLines) {
		bgLines = append(bgLines, "")
	}

	for i, ov := range ovLines {
		bgLines[y+i] = compositeRow(bgLines[y+i], ov, x)
	}
	return strings.Join(bgLines, "\n")
}

// compositeRow splices one overlay line into one background line at
// column x: untouched left segment, overlay, untouched right segment.
func compositeRow(bg, ov string, x int) string {
	ovWidth := ansi.StringWidth(ov)
	bgWidth := ansi.StringWidth(bg)

	var b strings.Builder

	if x > 0 {
		left := ansi.Truncate(bg, x, "")
		b.WriteString(left)
		// Pad when the background line ends before the overlay starts.
		if w := ansi.StringWidth(left); w < x {
			b.WriteString(strings.Repeat(" ", x-w))
		}
		b.WriteString(resetSeq)
	}

	b.WriteString(ov)

	if right := x + ovWidth; bgWidth > right {
		b.WriteString(resetSeq)
		b.WriteString(ansi.Cut(bg, right, bgWidth))
	}

	return b.String()
}
