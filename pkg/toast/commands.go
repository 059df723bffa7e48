package toast

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/oklog/ulid/v2"
)

// Messages flow back to Manager.Update through the host program's
// update loop. They carry the owning manager's tag so that multiple
// managers in one program do not consume each other's traffic.

// TimeoutMsg reports that a toast's display duration elapsed.
type TimeoutMsg struct {
	Tag int
	ID  ulid.ULID
	Gen int
}

// FrameMsg advances the fade and reflow animations by one frame.
type FrameMsg struct {
	Tag int
}

var lastTag int64

// nextTag returns a process-unique manager tag.
func nextTag() int {
	return int(atomic.AddInt64(&lastTag, 1))
}

// timeoutCmd schedules the auto-dismiss for a toast. The generation
// counter invalidates the message if the toast is dismissed and a timer
// is still in flight.
func timeoutCmd(tag int, id ulid.ULID, gen int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return TimeoutMsg{Tag: tag, ID: id, Gen: gen}
	})
}

// frameCmd schedules the next animation frame.
func frameCmd(tag, fps int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(fps), func(time.Time) tea.Msg {
		return FrameMsg{Tag: tag}
	})
}
