package toast

import (
	"fmt"
	"strings"
)

// Position anchors a toast inside the host frame.
type Position int

const (
	// PositionDefault resolves to the manager's configured position.
	PositionDefault Position = iota
	// PositionTop anchors below the top inset, horizontally centered.
	PositionTop
	// PositionCenter centers the toast in the usable area.
	PositionCenter
	// PositionBottom anchors above the bottom inset, horizontally centered.
	PositionBottom
)

// String returns the string representation of the position.
func (p Position) String() string {
	switch p {
	case PositionDefault:
		return "default"
	case PositionTop:
		return "top"
	case PositionCenter:
		return "center"
	case PositionBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// ParsePosition converts a position name into a Position. Names are
// matched case-insensitively.
func ParsePosition(s string) (Position, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top":
		return PositionTop, nil
	case "center", "centre", "middle":
		return PositionCenter, nil
	case "bottom":
		return PositionBottom, nil
	default:
		return PositionDefault, fmt.Errorf("invalid position %q (must be one of: %s)",
			s, strings.Join(ValidPositions(), ", "))
	}
}

// ValidPositions returns the list of valid position names.
func ValidPositions() []string {
	return []string{"top", "center", "bottom"}
}

// Insets reserve rows and columns at the container edges that toasts must
// not cover, such as a status bar or an input prompt.
type Insets struct {
	Top    int
	Bottom int
	Left   int
	Right  int
}

// rect is a placed box in container cells.
type rect struct {
	x, y, w, h int
}

// contains reports whether the cell at (x, y) falls inside the rect.
func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// placeBox computes the top-left cell for a boxW x boxH box anchored at
// pos inside a width x height container. offset moves the box further
// from its anchored edge, in rows, and is how stacked toasts avoid each
// other. The result is clamped so the box stays inside the usable area
// even when it does not fit.
func placeBox(pos Position, width, height int, in Insets, offset, boxW, boxH int) (int, int) {
	usableW := width - in.Left - in.Right
	usableH := height - in.Top - in.Bottom

	x := in.Left + (usableW-boxW)/2

	var y int
	switch pos {
	case PositionTop:
		y = in.Top + offset
	case PositionCenter:
		y = in.Top + (usableH-boxH)/2 + offset
	default:
		// Bottom is also the fallback for unresolved positions.
		y = height - in.Bottom - boxH - offset
	}

	x = clamp(x, in.Left, width-in.Right-boxW)
	y = clamp(y, in.Top, height-in.Bottom-boxH)
	return x, y
}

// placeAt centers a box on the cell (cx, cy) and clamps it inside the
// container. Insets are ignored for point placement.
func placeAt(cx, cy, width, height, boxW, boxH int) (int, int) {
	x := clamp(cx-boxW/2, 0, width-boxW)
	y := clamp(cy-boxH/2, 0, height-boxH)
	return x, y
}

// clamp bounds v to [lo, hi]. When the range is inverted because the box
// is larger than the container, the low bound wins so the box anchors to
// the leading edge and overflows off the trailing one.
func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
