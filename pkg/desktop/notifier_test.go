package desktop

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crouton-dev/crouton/pkg/toast"
)

var (
	_ Notifier = Disabled{}
	_ Notifier = (*DBusNotifier)(nil)
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestUrgency_String(t *testing.T) {
	assert.Equal(t, "low", UrgencyLow.String())
	assert.Equal(t, "normal", UrgencyNormal.String())
	assert.Equal(t, "critical", UrgencyCritical.String())
	assert.Equal(t, "unknown", Urgency(9).String())
}

func TestUrgencyFor(t *testing.T) {
	assert.Equal(t, UrgencyLow, UrgencyFor(toast.LevelInfo))
	assert.Equal(t, UrgencyLow, UrgencyFor(toast.LevelSuccess))
	assert.Equal(t, UrgencyNormal, UrgencyFor(toast.LevelWarning))
	assert.Equal(t, UrgencyCritical, UrgencyFor(toast.LevelError))
}

func TestFromToast(t *testing.T) {
	tt, err := toast.New(toast.Options{
		Title:   "Saved",
		Message: "profile updated",
		Level:   toast.LevelSuccess,
	})
	require.NoError(t, err)

	n := FromToast(tt)
	assert.Equal(t, "Saved", n.Title)
	assert.Equal(t, "profile updated", n.Body)
	assert.Equal(t, UrgencyLow, n.Urgency)
	assert.Equal(t, int32(-1), n.Timeout, "unresolved duration defers to the server default")
}

func TestFromToast_MessageOnly(t *testing.T) {
	tt, err := toast.New(toast.Error("disk full"))
	require.NoError(t, err)

	n := FromToast(tt)
	assert.Equal(t, "disk full", n.Title, "message becomes the summary when there is no title")
	assert.Empty(t, n.Body)
	assert.Equal(t, UrgencyCritical, n.Urgency)
}

func TestFromToast_IconFoldedIntoSummary(t *testing.T) {
	tt, err := toast.New(toast.Options{Icon: "✓"})
	require.NoError(t, err)

	n := FromToast(tt)
	assert.Equal(t, "✓ info", n.Title)
	assert.Empty(t, n.Body)
	assert.Empty(t, n.Icon, "terminal glyphs are not freedesktop icon names")
}

func TestFromToast_Timeout(t *testing.T) {
	m := toast.NewManager(toast.Config{}, testLogger())
	m.SetSize(80, 24)

	m.Show(toast.Options{Message: "expiring", Duration: 1500 * time.Millisecond})
	m.Show(toast.Options{Message: "sticky", Duration: -1})

	active := m.Active()
	require.Len(t, active, 2)
	assert.Equal(t, int32(1500), FromToast(active[0]).Timeout)
	assert.Equal(t, int32(0), FromToast(active[1]).Timeout, "sticky toasts never expire")
}

func TestDisabled(t *testing.T) {
	var n Notifier = Disabled{}

	id, err := n.Notify(Notification{Title: "dropped"})
	require.NoError(t, err)
	assert.Zero(t, id)
	assert.NoError(t, n.Close(42))
}

func TestDBusNotifier_Disabled(t *testing.T) {
	d := NewDBusNotifier("crouton", testLogger())
	assert.True(t, d.Enabled())

	d.SetEnabled(false)
	assert.False(t, d.Enabled())

	id, err := d.Notify(Notification{Title: "dropped"})
	require.NoError(t, err)
	assert.Zero(t, id, "disabled notifier never dials the bus")
}

func TestDBusNotifier_CloseWithoutConnection(t *testing.T) {
	d := NewDBusNotifier("crouton", testLogger())

	assert.NoError(t, d.Close(0))
	assert.NoError(t, d.Close(7), "close before any send is a no-op")
	assert.NoError(t, d.Stop())
}
