package demo

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/crouton-dev/crouton/pkg/toast"
)

// maxEvents caps the feed so a long session does not grow without bound.
const maxEvents = 200

// event is one entry in the demo's event feed.
type event struct {
	At      time.Time `yaml:"at"`
	Kind    string    `yaml:"kind"`
	Level   string    `yaml:"level"`
	Summary string    `yaml:"summary"`
	Cause   string    `yaml:"cause,omitempty"`
}

// session is shared between the model and the manager callbacks. The
// callbacks fire inside Update on the program goroutine, so no locking
// is needed.
type session struct {
	events []event
	shown  []*toast.Toast // freshly shown, awaiting sound and mirroring
}

func (s *session) record(e event) {
	e.At = time.Now()
	s.events = append(s.events, e)
	if len(s.events) > maxEvents {
		s.events = s.events[len(s.events)-maxEvents:]
	}
}

// toastShown is wired in as the manager's OnShown hook. It fires on
// admission, so a queued toast is recorded when it actually displays.
func (s *session) toastShown(t *toast.Toast) {
	s.record(event{Kind: "shown", Level: t.Level().String(), Summary: summarize(t)})
	s.shown = append(s.shown, t)
}

// drainShown hands over the toasts shown since the last drain.
func (s *session) drainShown() []*toast.Toast {
	out := s.shown
	s.shown = nil
	return out
}

// export writes the feed to a temp file as YAML and returns its path.
func (s *session) export() (string, error) {
	data, err := yaml.Marshal(s.events)
	if err != nil {
		return "", fmt.Errorf("failed to marshal events: %w", err)
	}

	f, err := os.CreateTemp("", "crouton-events-*.yaml")
	if err != nil {
		return "", fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}
	return f.Name(), nil
}

// summarize produces the one-line feed label for a toast.
func summarize(t *toast.Toast) string {
	switch {
	case t.Title() != "":
		return t.Title()
	case t.Message() != "":
		return t.Message()
	default:
		return t.Icon()
	}
}

// optsSummary is summarize for options that have not become a toast yet.
func optsSummary(opts toast.Options) string {
	switch {
	case opts.Title != "":
		return opts.Title
	case opts.Message != "":
		return opts.Message
	default:
		return opts.Icon
	}
}
