package toast

import (
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// Level classifies a toast for styling and downstream integrations
// (chime sounds, desktop urgency).
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelWarning
	LevelError
)

// LevelNames maps levels to human-readable names.
var LevelNames = map[Level]string{
	LevelInfo:    "info",
	LevelSuccess: "success",
	LevelWarning: "warning",
	LevelError:   "error",
}

// String returns the string representation of the level.
func (l Level) String() string {
	if name, ok := LevelNames[l]; ok {
		return name
	}
	return "unknown"
}

// ParseLevel converts a level name into a Level. Names are matched
// case-insensitively.
func ParseLevel(s string) (Level, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for l, n := range LevelNames {
		if n == name {
			return l, nil
		}
	}
	return LevelInfo, fmt.Errorf("invalid level %q (must be one of: info, success, warning, error)", s)
}

// DismissCause records why a toast left the screen.
type DismissCause int

const (
	// CauseTimeout means the display duration elapsed.
	CauseTimeout DismissCause = iota
	// CauseTapped means the user clicked the toast (or pressed the dismiss key).
	CauseTapped
	// CauseHidden means the toast was hidden programmatically.
	CauseHidden
)

// String returns the string representation of the dismissal cause.
func (c DismissCause) String() string {
	switch c {
	case CauseTimeout:
		return "timeout"
	case CauseTapped:
		return "tapped"
	case CauseHidden:
		return "hidden"
	default:
		return "unknown"
	}
}

// phase tracks where a toast is in its on-screen lifecycle.
type phase int

const (
	phaseIn phase = iota
	phaseVisible
	phaseOut
	phaseDone
)

// ErrMissingContent is returned when a toast has no message, no title and
// no icon. Such a toast has nothing to draw and is never shown.
var ErrMissingContent = errors.New("toast has no message, title or icon")

// Options describes the toast to create. All fields are optional except
// that at least one of Message, Title and Icon must be non-empty.
type Options struct {
	// Message is the body text. Wrapped to the computed box width.
	Message string
	// Title is rendered bold above the message.
	Title string
	// Icon is a leading glyph (emoji or nerd-font symbol).
	Icon string
	// Level selects the accent styling. Defaults to LevelInfo.
	Level Level
	// Position overrides the manager's configured position.
	Position Position
	// Duration overrides the manager's configured display duration.
	// Zero means the configured default; negative means never auto-dismiss.
	Duration time.Duration
	// Style overrides the resolved level style entirely.
	Style *Style
	// Stackable toasts display simultaneously, offset from the container
	// edge, instead of following the one-at-a-time queue discipline.
	Stackable bool
	// OnDismiss is invoked exactly once when the toast is removed.
	OnDismiss func(DismissCause)
}

// Info returns Options for a plain informational toast.
func Info(message string) Options {
	return Options{Message: message, Level: LevelInfo}
}

// Success returns Options for a success toast.
func Success(message string) Options {
	return Options{Message: message, Level: LevelSuccess}
}

// Warning returns Options for a warning toast.
func Warning(message string) Options {
	return Options{Message: message, Level: LevelWarning}
}

// Error returns Options for an error toast.
func Error(message string) Options {
	return Options{Message: message, Level: LevelError}
}

// Toast is a single transient notification. Toasts are created by New (or
// Manager.Show) and owned by a Manager until dismissed.
type Toast struct {
	id        ulid.ULID
	opts      Options
	createdAt time.Time

	// Resolved presentation, filled in by the manager on admission.
	style    Style
	position Position
	duration time.Duration
	at       *cell // non-nil for point placement

	// Lifecycle state. Only the owning manager touches these.
	phase     phase
	gen       int // timer generation; stale timeout messages are discarded
	fade      spring
	offset    spring // stacking offset from the anchored edge, in rows
	rect      rect
	shownAt   time.Time
	cause     DismissCause
	completed bool
}

// cell is a terminal cell coordinate.
type cell struct {
	x, y int
}

// New creates a toast from opts. It returns ErrMissingContent when the
// message, title and icon are all empty.
func New(opts Options) (*Toast, error) {
	if opts.Message == "" && opts.Title == "" && opts.Icon == "" {
		return nil, ErrMissingContent
	}

	id, err := ulid.New(ulid.Timestamp(time.Now()), rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to generate ULID: %w", err)
	}

	return &Toast{
		id:        id,
		opts:      opts,
		createdAt: time.Now(),
	}, nil
}

// ID returns the toast's unique identifier.
func (t *Toast) ID() ulid.ULID {
	return t.id
}

// Message returns the body text.
func (t *Toast) Message() string {
	return t.opts.Message
}

// Title returns the title text.
func (t *Toast) Title() string {
	return t.opts.Title
}

// Icon returns the icon glyph.
func (t *Toast) Icon() string {
	return t.opts.Icon
}

// Level returns the severity level.
func (t *Toast) Level() Level {
	return t.opts.Level
}

// Position returns the resolved display position.
func (t *Toast) Position() Position {
	return t.position
}

// Stackable reports whether the toast uses the stacking discipline.
func (t *Toast) Stackable() bool {
	return t.opts.Stackable
}

// Duration returns the resolved display duration. Zero while the toast is
// still queued; negative when it never auto-dismisses.
func (t *Toast) Duration() time.Duration {
	return t.duration
}

// ShownAt returns when the toast was first displayed. Zero while queued.
func (t *Toast) ShownAt() time.Time {
	return t.shownAt
}

// Visible reports whether the toast currently occupies the screen,
// including while it is fading in or out.
func (t *Toast) Visible() bool {
	return t.phase == phaseIn || t.phase == phaseVisible || t.phase == phaseOut
}

// dismissing reports whether the toast is already on its way out.
func (t *Toast) dismissing() bool {
	return t.phase == phaseOut || t.phase == phaseDone
}

// complete invokes the completion callback. Repeat calls are no-ops, so
// the callback runs exactly once per toast regardless of how dismissal
// and cleanup interleave.
func (t *Toast) complete(cause DismissCause) {
	if t.completed {
		return
	}
	t.completed = true
	t.cause = cause
	if t.opts.OnDismiss != nil {
		t.opts.OnDismiss(cause)
	}
}
