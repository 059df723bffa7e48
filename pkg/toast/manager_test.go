package toast

import (
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// settleFrames is more than enough frames for any spring to come to
// rest at the default FPS.
const settleFrames = 600

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testManager(cfg Config) *Manager {
	m := NewManager(cfg, testLogger())
	m.SetSize(80, 24)
	return m
}

// run drives the animation loop n frames without a real clock.
func run(m *Manager, n int) {
	for i := 0; i < n; i++ {
		m.Update(FrameMsg{Tag: m.tag})
	}
}

func TestManager_ShowDisplaysToast(t *testing.T) {
	m := testManager(DefaultConfig())
	cmd := m.Show(Info("hello"))
	require.NotNil(t, cmd)
	require.Len(t, m.Active(), 1)
	assert.True(t, m.Active()[0].Visible())
	assert.False(t, m.Active()[0].ShownAt().IsZero())
}

func TestManager_MissingContentIsNoOp(t *testing.T) {
	m := testManager(DefaultConfig())
	cmd := m.Show(Options{Level: LevelError})
	assert.Nil(t, cmd)
	assert.Empty(t, m.Active())
	assert.Zero(t, m.Queued())
}

func TestManager_ResolvesConfigDefaults(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Position = PositionTop
	cfg.Duration = 5 * time.Second
	m := testManager(cfg)

	m.Show(Info("defaults"))
	tst := m.Active()[0]
	assert.Equal(t, PositionTop, tst.Position())
	assert.Equal(t, 5*time.Second, tst.duration)

	m.Show(Options{Message: "overrides", Position: PositionBottom, Duration: -1})
	tst = m.Active()[1]
	assert.Equal(t, PositionBottom, tst.Position())
	assert.Equal(t, time.Duration(-1), tst.duration)
}

func TestManager_QueueHoldsSecondToast(t *testing.T) {
	cfg := DefaultConfig()
	cfg.QueueEnabled = true
	m := testManager(cfg)

	m.Show(Info("first"))
	m.Show(Info("second"))

	require.Len(t, m.Active(), 1)
	assert.Equal(t, "first", m.Active()[0].Message())
	assert.Equal(t, 1, m.Queued())

	// Dismiss the first; the second is promoted once the fade-out
	// settles.
	m.Hide()
	run(m, settleFrames)

	require.Len(t, m.Active(), 1)
	assert.Equal(t, "second", m.Active()[0].Message())
	assert.Zero(t, m.Queued())
}

func TestManager_QueueDisabledOverlaps(t *testing.T) {
	m := testManager(DefaultConfig())
	m.Show(Info("first"))
	m.Show(Info("second"))
	assert.Len(t, m.Active(), 2)
	assert.Zero(t, m.Queued())
}

func TestManager_TimeoutDismisses(t *testing.T) {
	m := testManager(DefaultConfig())

	var causes []DismissCause
	m.Show(Options{
		Message:   "expiring",
		OnDismiss: func(c DismissCause) { causes = append(causes, c) },
	})
	tst := m.Active()[0]

	m.Update(TimeoutMsg{Tag: m.tag, ID: tst.ID(), Gen: tst.gen})
	run(m, settleFrames)

	assert.Empty(t, m.Active())
	require.Len(t, causes, 1)
	assert.Equal(t, CauseTimeout, causes[0])
}

func TestManager_StaleTimeoutIgnored(t *testing.T) {
	m := testManager(DefaultConfig())

	var causes []DismissCause
	m.Show(Options{
		Message:   "tap me",
		OnDismiss: func(c DismissCause) { causes = append(causes, c) },
	})
	tst := m.Active()[0]
	staleGen := tst.gen

	// Tap first, then deliver the now-stale timer message.
	m.Update(tea.MouseMsg{
		X:      tst.rect.x + 1,
		Y:      tst.rect.y + 1,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	m.Update(TimeoutMsg{Tag: m.tag, ID: tst.ID(), Gen: staleGen})
	run(m, settleFrames)

	require.Len(t, causes, 1)
	assert.Equal(t, CauseTapped, causes[0])
}

func TestManager_TapOutsideRectDoesNothing(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Position = PositionBottom
	m := testManager(cfg)

	m.Show(Info("untouched"))
	m.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	require.Len(t, m.Active(), 1)
	assert.False(t, m.Active()[0].dismissing())
}

func TestManager_TapToDismissDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TapToDismiss = false
	m := testManager(cfg)

	m.Show(Info("sticky"))
	tst := m.Active()[0]
	m.Update(tea.MouseMsg{
		X:      tst.rect.x + 1,
		Y:      tst.rect.y + 1,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	assert.False(t, tst.dismissing())
}

func TestManager_StackedOffsets(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Position = PositionTop
	m := testManager(cfg)

	m.ShowStacked(Info("one"))
	m.ShowStacked(Info("two"))
	m.ShowStacked(Info("three"))
	require.Len(t, m.Active(), 3)

	_, h := m.Active()[0].measure(80, 24, Insets{})
	slot := float64(h + cfg.Gap)
	assert.Equal(t, 0.0, m.Active()[0].offset.target)
	assert.Equal(t, slot, m.Active()[1].offset.target)
	assert.Equal(t, 2*slot, m.Active()[2].offset.target)
}

func TestManager_StackedReflowOnDismiss(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Position = PositionTop
	m := testManager(cfg)

	m.ShowStacked(Info("one"))
	m.ShowStacked(Info("two"))
	first := m.Active()[0]
	second := m.Active()[1]
	assert.Greater(t, second.offset.target, 0.0)

	m.HideToast(first.ID())
	assert.Equal(t, 0.0, second.offset.target)
}

func TestManager_StackedMaxVisible(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxVisible = 2
	m := testManager(cfg)

	m.ShowStacked(Info("one"))
	m.ShowStacked(Info("two"))
	m.ShowStacked(Info("three"))

	assert.Len(t, m.Active(), 2)
	assert.Equal(t, 1, m.Queued())

	// A freed slot pulls the queued toast in.
	m.Hide()
	run(m, settleFrames)
	assert.Len(t, m.Active(), 2)
	assert.Zero(t, m.Queued())
}

func TestManager_HideAll(t *testing.T) {
	cfg := DefaultConfig()
	cfg.QueueEnabled = true
	m := testManager(cfg)

	shown := 0
	queued := 0
	m.Show(Options{Message: "shown", OnDismiss: func(DismissCause) { shown++ }})
	m.Show(Options{Message: "queued", OnDismiss: func(DismissCause) { queued++ }})
	m.ShowActivity(PositionCenter)

	m.HideAll(HideOptions{ClearQueue: true, IncludeActivity: true})
	run(m, settleFrames)

	assert.Empty(t, m.Active())
	assert.Zero(t, m.Queued())
	assert.False(t, m.ActivityVisible())
	assert.Nil(t, m.activity)

	// Only the toast that actually displayed completes.
	assert.Equal(t, 1, shown)
	assert.Zero(t, queued)
}

func TestManager_HideAllKeepsQueueByDefault(t *testing.T) {
	cfg := DefaultConfig()
	cfg.QueueEnabled = true
	m := testManager(cfg)

	m.Show(Info("first"))
	m.Show(Info("second"))
	require.Equal(t, 1, m.Queued())

	m.HideAll(HideOptions{})
	run(m, settleFrames)

	// The queued toast is promoted once the screen clears.
	require.Len(t, m.Active(), 1)
	assert.Equal(t, "second", m.Active()[0].Message())
	assert.Zero(t, m.Queued())
}

func TestManager_HideAllStackedLeavesRegular(t *testing.T) {
	m := testManager(DefaultConfig())

	m.Show(Info("regular"))
	m.ShowStacked(Info("stack one"))
	m.ShowStacked(Info("stack two"))

	m.HideAllStacked()
	run(m, settleFrames)

	require.Len(t, m.Active(), 1)
	assert.Equal(t, "regular", m.Active()[0].Message())
}

func TestManager_HideToastDropsQueued(t *testing.T) {
	cfg := DefaultConfig()
	cfg.QueueEnabled = true
	m := testManager(cfg)

	m.Show(Info("visible"))

	calls := 0
	waiting, err := New(Options{Message: "waiting", OnDismiss: func(DismissCause) { calls++ }})
	require.NoError(t, err)
	m.ShowToast(waiting)
	require.Equal(t, 1, m.Queued())

	m.HideToast(waiting.ID())
	assert.Zero(t, m.Queued())
	assert.Zero(t, calls)
}

func TestManager_HideDismissesOldest(t *testing.T) {
	m := testManager(DefaultConfig())
	m.Show(Info("oldest"))
	m.Show(Info("newest"))

	m.Hide()
	assert.True(t, m.Active()[0].dismissing())
	assert.False(t, m.Active()[1].dismissing())
}

func TestManager_ShowAtPlacesNearPoint(t *testing.T) {
	m := testManager(DefaultConfig())
	m.ShowAt(Info("here"), 40, 12)

	tst := m.Active()[0]
	assert.True(t, tst.rect.contains(40, 12))
}

func TestManager_Activity(t *testing.T) {
	m := testManager(DefaultConfig())
	assert.False(t, m.ActivityVisible())

	cmd := m.ShowActivity(PositionCenter)
	require.NotNil(t, cmd)
	assert.True(t, m.ActivityVisible())

	// Activity does not count against the toast queue.
	m.Show(Info("alongside"))
	assert.Len(t, m.Active(), 1)

	m.HideActivity()
	assert.False(t, m.ActivityVisible())
	run(m, settleFrames)
	assert.Nil(t, m.activity)
}

func TestManager_ViewPreservesBackground(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Position = PositionBottom
	m := testManager(cfg)

	row := strings.Repeat(".", 80)
	lines := make([]string, 24)
	for i := range lines {
		lines[i] = row
	}
	background := strings.Join(lines, "\n")

	assert.Equal(t, background, m.View(background))

	m.Show(Info("hello"))
	run(m, settleFrames)

	out := strings.Split(m.View(background), "\n")
	require.Len(t, out, 24)

	tst := m.Active()[0]
	for i := 0; i < tst.rect.y; i++ {
		assert.Equal(t, row, out[i], "row %d above the toast changed", i)
	}
	assert.Contains(t, ansi.Strip(out[tst.rect.y+1]), "hello")
}

func TestManager_WindowSizeUpdates(t *testing.T) {
	m := testManager(DefaultConfig())
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	w, h := m.Size()
	assert.Equal(t, 120, w)
	assert.Equal(t, 40, h)
}

func TestManager_IgnoresForeignTags(t *testing.T) {
	m := testManager(DefaultConfig())
	m.Show(Info("mine"))
	tst := m.Active()[0]

	assert.Nil(t, m.Update(FrameMsg{Tag: m.tag + 99}))
	assert.Nil(t, m.Update(TimeoutMsg{Tag: m.tag + 99, ID: tst.ID(), Gen: tst.gen}))
	assert.False(t, tst.dismissing())
}

func TestManager_AnimationStops(t *testing.T) {
	m := testManager(DefaultConfig())
	m.Show(Options{Message: "steady", Duration: -1})
	run(m, settleFrames)

	// Everything settled: a frame produces no follow-up work.
	assert.Nil(t, m.Update(FrameMsg{Tag: m.tag}))
	assert.Len(t, m.Active(), 1)
}

func TestManager_SetQueueEnabledReleasesQueue(t *testing.T) {
	cfg := DefaultConfig()
	cfg.QueueEnabled = true
	m := testManager(cfg)

	m.Show(Info("first"))
	m.Show(Info("second"))
	require.Equal(t, 1, m.Queued())

	cmd := m.SetQueueEnabled(false)
	require.NotNil(t, cmd)
	assert.Len(t, m.Active(), 2)
	assert.Zero(t, m.Queued())
	assert.False(t, m.Config().QueueEnabled)
}

func TestManager_SetPosition(t *testing.T) {
	m := testManager(DefaultConfig())
	m.SetPosition(PositionTop)
	assert.Equal(t, PositionTop, m.Config().Position)

	m.SetPosition(PositionDefault)
	assert.Equal(t, PositionTop, m.Config().Position, "default is not a concrete position")

	m.Show(Info("follows the default"))
	assert.Equal(t, PositionTop, m.Active()[0].Position())
}

func TestManager_SetStylesRestylesVisible(t *testing.T) {
	m := testManager(DefaultConfig())

	pinnedStyle := DefaultStyle()
	pinnedStyle.MaxWidthPercent = 0.5
	m.Show(Info("themed"))
	m.Show(Options{Message: "pinned", Style: &pinnedStyle})

	themed := m.Active()[0]
	pinned := m.Active()[1]

	next := DefaultStyle()
	next.Box = next.Box.Padding(1, 4)
	m.SetStyles(&next, nil)

	assert.Equal(t, next.Box.GetHorizontalFrameSize(), themed.style.Box.GetHorizontalFrameSize())
	assert.Equal(t, 0.5, pinned.style.MaxWidthPercent, "per-toast override survives restyling")

	levels := map[Level]Style{LevelError: pinnedStyle}
	m.SetStyles(nil, levels)
	assert.Equal(t, 0.8, themed.style.MaxWidthPercent, "info toast falls back to the stock accent")
}
