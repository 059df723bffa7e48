package toast

import (
	"fmt"
	"strings"
	"time"
)

// Config controls a Manager's defaults and behavior. Individual toasts
// can override the presentation fields through Options.
type Config struct {
	// Duration is how long toasts stay visible before auto-dismissing.
	Duration time.Duration
	// Position is used for toasts that do not specify one.
	Position Position
	// TapToDismiss dismisses a toast when it is clicked.
	TapToDismiss bool
	// QueueEnabled holds new toasts in FIFO order while one is visible
	// instead of overlapping them. Stackable toasts bypass the queue up
	// to MaxVisible.
	QueueEnabled bool
	// MaxVisible caps how many stackable toasts display at once.
	MaxVisible int
	// Gap is the number of blank rows between stacked toasts.
	Gap int
	// FPS drives the fade and reflow animations.
	FPS int
	// Style, when non-nil, replaces the built-in per-level appearance
	// for every toast without its own override.
	Style *Style
	// LevelStyles overrides the appearance for specific levels. Themes
	// populate this.
	LevelStyles map[Level]Style
	// OnShown is called when a toast first becomes visible. Used to
	// hook in sounds or desktop mirroring.
	OnShown func(*Toast)
}

// DefaultConfig returns a Config with sensible defaults: three second
// duration, bottom position, tap-to-dismiss on, queueing off.
func DefaultConfig() Config {
	return Config{
		Duration:     3 * time.Second,
		Position:     PositionBottom,
		TapToDismiss: true,
		QueueEnabled: false,
		MaxVisible:   5,
		Gap:          1,
		FPS:          30,
	}
}

// Validate checks the configuration for invalid values.
func (c Config) Validate() error {
	if c.Duration <= 0 {
		return fmt.Errorf("invalid duration: %v (must be positive)", c.Duration)
	}
	switch c.Position {
	case PositionTop, PositionCenter, PositionBottom:
	default:
		return fmt.Errorf("invalid position: %s (must be one of: %s)",
			c.Position, strings.Join(ValidPositions(), ", "))
	}
	if c.MaxVisible < 1 {
		return fmt.Errorf("invalid max visible: %d (must be at least 1)", c.MaxVisible)
	}
	if c.Gap < 0 {
		return fmt.Errorf("invalid gap: %d (must not be negative)", c.Gap)
	}
	if c.FPS < 1 || c.FPS > 120 {
		return fmt.Errorf("invalid fps: %d (must be between 1 and 120)", c.FPS)
	}
	return nil
}

// styleFor resolves the appearance for a toast at level: an explicit
// per-level style wins, then the base style, then the built-in accent.
func (c Config) styleFor(level Level) Style {
	if s, ok := c.LevelStyles[level]; ok {
		return s.Normalized()
	}
	if c.Style != nil {
		return c.Style.Normalized()
	}
	return StyleFor(level)
}
