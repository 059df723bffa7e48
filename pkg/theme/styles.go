package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/crouton-dev/crouton/pkg/toast"
)

// Spec is a theme document: a base style plus per-level overrides.
// Missing fields inherit, level over base over stock.
type Spec struct {
	Description string               `toml:"description,omitempty" yaml:"description,omitempty"`
	Base        StyleSpec            `toml:"base" yaml:"base"`
	Levels      map[string]StyleSpec `toml:"levels,omitempty" yaml:"levels,omitempty"`
}

// StyleSpec is the TOML form of a toast style. Color fields take any
// value lipgloss understands: ANSI palette indexes or hex strings.
type StyleSpec struct {
	Background       string   `toml:"background,omitempty" yaml:"background,omitempty"`
	Foreground       string   `toml:"foreground,omitempty" yaml:"foreground,omitempty"`
	Border           string   `toml:"border,omitempty" yaml:"border,omitempty"`
	BorderStyle      string   `toml:"border_style,omitempty" yaml:"border_style,omitempty"`
	TitleColor       string   `toml:"title_color,omitempty" yaml:"title_color,omitempty"`
	TitleBold        *bool    `toml:"title_bold,omitempty" yaml:"title_bold,omitempty"`
	IconColor        string   `toml:"icon_color,omitempty" yaml:"icon_color,omitempty"`
	PaddingX         *int     `toml:"padding_x,omitempty" yaml:"padding_x,omitempty"`
	PaddingY         *int     `toml:"padding_y,omitempty" yaml:"padding_y,omitempty"`
	Align            string   `toml:"align,omitempty" yaml:"align,omitempty"`
	MaxWidthPercent  *float64 `toml:"max_width_percent,omitempty" yaml:"max_width_percent,omitempty"`
	MaxHeightPercent *float64 `toml:"max_height_percent,omitempty" yaml:"max_height_percent,omitempty"`
}

// Validate checks enum fields and level names. Out-of-range size
// percentages are not an error; they are clamped when styles are built.
func (s Spec) Validate() error {
	if err := s.Base.validate(); err != nil {
		return fmt.Errorf("base: %w", err)
	}
	for name, level := range s.Levels {
		if _, err := toast.ParseLevel(name); err != nil {
			return err
		}
		if err := level.validate(); err != nil {
			return fmt.Errorf("levels.%s: %w", name, err)
		}
	}
	return nil
}

func (s StyleSpec) validate() error {
	switch s.BorderStyle {
	case "", "rounded", "normal", "thick", "double", "hidden", "none":
	default:
		return fmt.Errorf("invalid border_style %q (must be one of: rounded, normal, thick, double, hidden, none)", s.BorderStyle)
	}
	switch strings.ToLower(s.Align) {
	case "", "left", "center", "right":
	default:
		return fmt.Errorf("invalid align %q (must be one of: left, center, right)", s.Align)
	}
	if s.PaddingX != nil && *s.PaddingX < 0 {
		return fmt.Errorf("invalid padding_x %d (must not be negative)", *s.PaddingX)
	}
	if s.PaddingY != nil && *s.PaddingY < 0 {
		return fmt.Errorf("invalid padding_y %d (must not be negative)", *s.PaddingY)
	}
	return nil
}

// Styles builds the lipgloss styling for the theme: the base style and
// one resolved style per level with overrides.
func (s Spec) Styles() (toast.Style, map[toast.Level]toast.Style) {
	base := buildStyle(s.Base)
	levels := make(map[toast.Level]toast.Style, len(s.Levels))
	for name, override := range s.Levels {
		level, err := toast.ParseLevel(name)
		if err != nil {
			continue // Validate rejects these before Styles runs
		}
		levels[level] = buildStyle(merge(s.Base, override))
	}
	return base, levels
}

// merge overlays override onto base field by field.
func merge(base, override StyleSpec) StyleSpec {
	out := base
	if override.Background != "" {
		out.Background = override.Background
	}
	if override.Foreground != "" {
		out.Foreground = override.Foreground
	}
	if override.Border != "" {
		out.Border = override.Border
	}
	if override.BorderStyle != "" {
		out.BorderStyle = override.BorderStyle
	}
	if override.TitleColor != "" {
		out.TitleColor = override.TitleColor
	}
	if override.TitleBold != nil {
		out.TitleBold = override.TitleBold
	}
	if override.IconColor != "" {
		out.IconColor = override.IconColor
	}
	if override.PaddingX != nil {
		out.PaddingX = override.PaddingX
	}
	if override.PaddingY != nil {
		out.PaddingY = override.PaddingY
	}
	if override.Align != "" {
		out.Align = override.Align
	}
	if override.MaxWidthPercent != nil {
		out.MaxWidthPercent = override.MaxWidthPercent
	}
	if override.MaxHeightPercent != nil {
		out.MaxHeightPercent = override.MaxHeightPercent
	}
	return out
}

// buildStyle maps one resolved spec onto the stock toast style.
func buildStyle(sp StyleSpec) toast.Style {
	st := toast.DefaultStyle()

	if sp.BorderStyle != "" {
		if border, drawn := parseBorder(sp.BorderStyle); drawn {
			st.Box = st.Box.Border(border)
		} else {
			st.Box = st.Box.UnsetBorderStyle()
		}
	}

	px, py := 2, 0
	if sp.PaddingX != nil {
		px = *sp.PaddingX
	}
	if sp.PaddingY != nil {
		py = *sp.PaddingY
	}
	st.Box = st.Box.Padding(py, px)

	if sp.Background != "" {
		bg := lipgloss.Color(sp.Background)
		st.Box = st.Box.Background(bg).BorderBackground(bg)
		st.Title = st.Title.Background(bg)
		st.Message = st.Message.Background(bg)
		st.Icon = st.Icon.Background(bg)
	}
	if sp.Foreground != "" {
		fg := lipgloss.Color(sp.Foreground)
		st.Box = st.Box.Foreground(fg)
		st.Message = st.Message.Foreground(fg)
	}
	if sp.Border != "" {
		st.Box = st.Box.BorderForeground(lipgloss.Color(sp.Border))
	}
	if sp.TitleColor != "" {
		st.Title = st.Title.Foreground(lipgloss.Color(sp.TitleColor))
	}
	if sp.TitleBold != nil {
		st.Title = st.Title.Bold(*sp.TitleBold)
	}
	if sp.IconColor != "" {
		st.Icon = st.Icon.Foreground(lipgloss.Color(sp.IconColor))
	}
	if sp.Align != "" {
		st.Align = parseAlign(sp.Align)
	}
	if sp.MaxWidthPercent != nil {
		st.MaxWidthPercent = *sp.MaxWidthPercent
	}
	if sp.MaxHeightPercent != nil {
		st.MaxHeightPercent = *sp.MaxHeightPercent
	}

	return st.Normalized()
}

// parseBorder maps a border name to a lipgloss border. drawn is false
// for "none".
func parseBorder(name string) (lipgloss.Border, bool) {
	switch name {
	case "normal":
		return lipgloss.NormalBorder(), true
	case "thick":
		return lipgloss.ThickBorder(), true
	case "double":
		return lipgloss.DoubleBorder(), true
	case "hidden":
		return lipgloss.HiddenBorder(), true
	case "none":
		return lipgloss.Border{}, false
	default:
		return lipgloss.RoundedBorder(), true
	}
}

func parseAlign(name string) lipgloss.Position {
	switch strings.ToLower(name) {
	case "left":
		return lipgloss.Left
	case "right":
		return lipgloss.Right
	default:
		return lipgloss.Center
	}
}
