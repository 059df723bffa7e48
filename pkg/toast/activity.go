package toast

import (
	"github.com/charmbracelet/bubbles/spinner"
)

// activity is the indeterminate activity toast: a spinner in a toast
// box, pinned on screen until explicitly hidden. A manager shows at
// most one.
type activity struct {
	spin     spinner.Model
	style    Style
	position Position
	at       *cell
	fade     spring
	rect     rect
	hiding   bool
}

func newActivity(st Style, pos Position, at *cell, fps int) *activity {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = st.Icon
	return &activity{
		spin:     sp,
		style:    st,
		position: pos,
		at:       at,
		fade:     newSpring(fps, 0),
	}
}

// render draws the activity box for the current animation frame, or ""
// while it is too faded to draw.
func (a *activity) render() string {
	v := clampFrac(a.fade.value())
	if v < fadeHidden {
		return ""
	}
	st := a.style
	switch {
	case v < fadeDim:
		st = st.dimmed()
	case v < fadeSoft:
		st = st.soft()
	}
	return st.Box.Render(a.spin.View())
}

// renderFull draws the box at full opacity. Used for measuring so the
// footprint stays fixed while fading.
func (a *activity) renderFull() string {
	return a.style.Box.Render(a.spin.View())
}
