package toast

import (
	"github.com/charmbracelet/lipgloss"
)

// Style controls how a toast is drawn. The zero value renders an
// unstyled box; DefaultStyle and StyleFor return the stock appearance.
type Style struct {
	// Box draws the toast frame: border, padding and background.
	Box lipgloss.Style
	// Title styles the title line. Rendered above the message.
	Title lipgloss.Style
	// Message styles the body text.
	Message lipgloss.Style
	// Icon styles the leading glyph.
	Icon lipgloss.Style
	// Align positions text lines inside the box.
	Align lipgloss.Position
	// MaxWidthPercent caps the box width as a fraction of the usable
	// container width. Clamped to [0, 1].
	MaxWidthPercent float64
	// MaxHeightPercent caps the box height as a fraction of the usable
	// container height. Clamped to [0, 1].
	MaxHeightPercent float64
}

// Normalized returns a copy of the style with the percentage fields
// clamped to [0, 1]. Out-of-range values never escape past admission.
func (s Style) Normalized() Style {
	s.MaxWidthPercent = clampFrac(s.MaxWidthPercent)
	s.MaxHeightPercent = clampFrac(s.MaxHeightPercent)
	return s
}

// soft returns a copy one step below full opacity: accent colors kept,
// text fainted, background dropped.
func (s Style) soft() Style {
	s.Box = s.Box.UnsetBackground()
	s.Title = s.Title.Faint(true)
	s.Message = s.Message.Faint(true)
	s.Icon = s.Icon.Faint(true)
	return s
}

// dimmed returns a washed-out copy used for the low-opacity frames of
// the fade animation.
func (s Style) dimmed() Style {
	dim := lipgloss.Color("8")
	s.Box = s.Box.UnsetBackground().BorderForeground(dim).Faint(true)
	s.Title = s.Title.UnsetForeground().UnsetBackground().Bold(false).Faint(true)
	s.Message = s.Message.UnsetForeground().UnsetBackground().Faint(true)
	s.Icon = s.Icon.UnsetForeground().UnsetBackground().Faint(true)
	return s
}

// DefaultStyle returns the stock toast appearance: rounded border,
// horizontal padding, centered text, capped at 80% of the usable area.
func DefaultStyle() Style {
	return Style{
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 2),
		Title:            lipgloss.NewStyle().Bold(true),
		Message:          lipgloss.NewStyle(),
		Icon:             lipgloss.NewStyle(),
		Align:            lipgloss.Center,
		MaxWidthPercent:  0.8,
		MaxHeightPercent: 0.8,
	}
}

// StyleFor returns the default style with the accent color for level
// applied to the border, title and icon.
func StyleFor(level Level) Style {
	s := DefaultStyle()
	accent := level.accent()
	s.Box = s.Box.BorderForeground(accent)
	s.Title = s.Title.Foreground(accent)
	s.Icon = s.Icon.Foreground(accent)
	return s
}

// accent returns the ANSI accent color for the level.
func (l Level) accent() lipgloss.Color {
	switch l {
	case LevelSuccess:
		return lipgloss.Color("10")
	case LevelWarning:
		return lipgloss.Color("11")
	case LevelError:
		return lipgloss.Color("9")
	default:
		return lipgloss.Color("12")
	}
}

// clampFrac bounds a fraction to [0, 1].
func clampFrac(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
