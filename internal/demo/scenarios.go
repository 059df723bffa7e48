package demo

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/crouton-dev/crouton/pkg/toast"
)

// scenario is one runnable entry in the demo's list.
type scenario struct {
	title string
	desc  string
	run   func(*Model) tea.Cmd
}

func (s scenario) Title() string       { return s.title }
func (s scenario) Description() string { return s.desc }
func (s scenario) FilterValue() string { return s.title + " " + s.desc }

// scenarios returns the demo entries in display order.
func scenarios() []scenario {
	return []scenario{
		{
			title: "Plain toast",
			desc:  "Message only, default position and duration",
			run: func(m *Model) tea.Cmd {
				return m.show(toast.Info("This is a piece of toast"))
			},
		},
		{
			title: "Success with title",
			desc:  "Title, message and icon at the top",
			run: func(m *Model) tea.Cmd {
				return m.show(toast.Options{
					Title:    "Saved",
					Message:  "Your changes are safe",
					Icon:     "✔",
					Level:    toast.LevelSuccess,
					Position: toast.PositionTop,
				})
			},
		},
		{
			title: "Warning at center",
			desc:  "Position override on a single toast",
			run: func(m *Model) tea.Cmd {
				return m.show(toast.Options{
					Message:  "Battery below 20%",
					Level:    toast.LevelWarning,
					Position: toast.PositionCenter,
				})
			},
		},
		{
			title: "Sticky error",
			desc:  "Never expires, click it to dismiss",
			run: func(m *Model) tea.Cmd {
				return m.show(toast.Options{
					Title:    "Upload failed",
					Message:  "Connection reset by peer",
					Level:    toast.LevelError,
					Duration: -1,
				})
			},
		},
		{
			title: "Icon only",
			desc:  "A toast with no text at all",
			run: func(m *Model) tea.Cmd {
				return m.show(toast.Options{Icon: "🍞"})
			},
		},
		{
			title: "Long message",
			desc:  "Wraps to the width cap, truncates past the height cap",
			run: func(m *Model) tea.Cmd {
				return m.show(toast.Info("The archive you requested has been rebuilt " +
					"from seventeen incremental snapshots, verified against the " +
					"manifest, compressed, and staged for download. This is a lot " +
					"of words for a toast, which is exactly the point."))
			},
		},
		{
			title: "Toast at point",
			desc:  "Arms point placement; the next click drops a toast there",
			run: func(m *Model) tea.Cmd {
				m.pointArmed = true
				return statusCmd("Click anywhere to place the toast", false)
			},
		},
		{
			title: "Queued burst",
			desc:  "Three at once; toggle queueing (f) to serialize them",
			run: func(m *Model) tea.Cmd {
				return tea.Batch(
					m.show(toast.Info("First in line")),
					m.show(toast.Info("Second in line")),
					m.show(toast.Info("Third in line")),
				)
			},
		},
		{
			title: "Stacked burst",
			desc:  "Three stacked toasts, offset from the edge",
			run: func(m *Model) tea.Cmd {
				return tea.Batch(
					m.showStacked(toast.Success("Build passed")),
					m.showStacked(toast.Warning("Cache almost full")),
					m.showStacked(toast.Error("Lint failed")),
				)
			},
		},
		{
			title: "Activity spinner",
			desc:  "Indeterminate activity at the center; run again to hide",
			run: func(m *Model) tea.Cmd {
				if m.toasts.ActivityVisible() {
					return m.toasts.HideActivity()
				}
				return m.toasts.ShowActivity(toast.PositionCenter)
			},
		},
	}
}
