package toast

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Fade ladder thresholds. Terminals have no real alpha channel, so the
// spring's continuous fade level is quantized into discrete steps:
// invisible, dimmed gray, soft colors, full styling.
const (
	fadeHidden = 0.1
	fadeDim    = 0.55
	fadeSoft   = 0.9
)

// render draws the toast box for the current animation frame. It
// returns "" while the toast is too faded to draw.
func (t *Toast) render(width, height int, in Insets) string {
	v := clampFrac(t.fade.value())
	if v < fadeHidden {
		return ""
	}
	st := t.style
	switch {
	case v < fadeDim:
		st = st.dimmed()
	case v < fadeSoft:
		st = st.soft()
	}
	return renderBox(st, t.opts.Icon, t.opts.Title, t.opts.Message, width, height, in)
}

// measure returns the dimensions the toast occupies when fully visible.
// The footprint stays fixed while the toast fades, so hit testing and
// stacking offsets do not wobble.
func (t *Toast) measure(width, height int, in Insets) (int, int) {
	s := renderBox(t.style, t.opts.Icon, t.opts.Title, t.opts.Message, width, height, in)
	return lipgloss.Width(s), lipgloss.Height(s)
}

// renderBox lays out the icon, title and message inside the styled box,
// wrapping and truncating to honor the style's size caps.
func renderBox(st Style, icon, title, message string, width, height int, in Insets) string {
	usableW := max(width-in.Left-in.Right, 1)
	usableH := max(height-in.Top-in.Bottom, 1)

	maxW := int(float64(usableW) * st.MaxWidthPercent)
	maxH := int(float64(usableH) * st.MaxHeightPercent)

	contentW := max(maxW-st.Box.GetHorizontalFrameSize(), 1)
	contentH := max(maxH-st.Box.GetVerticalFrameSize(), 1)

	var parts []string
	if head := headline(st, icon, title); head != "" {
		parts = append(parts, ansi.Truncate(head, contentW, "…"))
	}
	if message != "" {
		lines := strings.Split(ansi.Wrap(message, contentW, ""), "\n")
		budget := max(contentH-len(parts), 1)
		if len(lines) > budget {
			lines = lines[:budget]
			last := len(lines) - 1
			lines[last] = ansi.Truncate(lines[last]+"…", contentW, "…")
		}
		for _, line := range lines {
			parts = append(parts, st.Message.Render(line))
		}
	}

	return st.Box.Render(lipgloss.JoinVertical(st.Align, parts...))
}

// headline renders the icon and title line, or "" when both are empty.
func headline(st Style, icon, title string) string {
	switch {
	case icon != "" && title != "":
		return st.Icon.Render(icon) + " " + st.Title.Render(title)
	case icon != "":
		return st.Icon.Render(icon)
	case title != "":
		return st.Title.Render(title)
	default:
		return ""
	}
}
