package toast

import (
	"container/list"
	"log/slog"
	"math"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/oklog/ulid/v2"

	"github.com/crouton-dev/crouton/pkg/overlay"
)

// Manager owns every toast shown over one host view: admission,
// queueing, stacking, animation, dismissal and compositing. It is not
// goroutine safe; drive it from the host program's update loop by
// forwarding messages to Update and drawing through View.
type Manager struct {
	cfg    Config
	logger *slog.Logger

	width  int
	height int
	insets Insets

	active   []*Toast
	queue    *list.List
	activity *activity

	tag       int
	animating bool
}

// NewManager creates a toast manager. Zero-value config fields fall
// back to the DefaultConfig values; pass nil to use the default logger.
func NewManager(cfg Config, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		cfg:    cfg.withDefaults(),
		logger: logger,
		queue:  list.New(),
		tag:    nextTag(),
	}
}

// withDefaults fills zero-value fields so that Config{} behaves.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Duration == 0 {
		c.Duration = d.Duration
	}
	if c.Position == PositionDefault {
		c.Position = d.Position
	}
	if c.MaxVisible < 1 {
		c.MaxVisible = d.MaxVisible
	}
	if c.Gap < 0 {
		c.Gap = 0
	}
	if c.FPS < 1 {
		c.FPS = d.FPS
	}
	return c
}

// SetSize updates the container dimensions and re-places every visible
// toast. Update calls this on tea.WindowSizeMsg, so hosts that forward
// all messages never need to.
func (m *Manager) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.relayout()
}

// SetInsets reserves container edges that toasts must not cover, such
// as a status bar or an input prompt.
func (m *Manager) SetInsets(in Insets) {
	m.insets = in
	m.relayout()
}

// Size returns the current container dimensions.
func (m *Manager) Size() (int, int) {
	return m.width, m.height
}

// Config returns a copy of the manager's active configuration.
func (m *Manager) Config() Config {
	return m.cfg
}

// SetPosition changes the default position for subsequently shown
// toasts. PositionDefault is ignored.
func (m *Manager) SetPosition(pos Position) {
	if pos == PositionDefault {
		return
	}
	m.cfg.Position = pos
}

// SetQueueEnabled turns the one-at-a-time queue discipline on or off.
// Turning it off releases everything currently queued.
func (m *Manager) SetQueueEnabled(enabled bool) tea.Cmd {
	m.cfg.QueueEnabled = enabled
	if !enabled {
		return m.promote()
	}
	return nil
}

// SetStyles replaces the configured base and per-level styles, for theme
// switching and hot reload. Visible toasts restyle in place unless they
// carry a per-toast style override.
func (m *Manager) SetStyles(base *Style, levels map[Level]Style) {
	m.cfg.Style = base
	m.cfg.LevelStyles = levels
	for _, t := range m.active {
		if t.opts.Style == nil {
			t.style = m.cfg.styleFor(t.opts.Level)
		}
	}
	m.relayout()
}

// Show creates a toast from opts and displays or enqueues it. A toast
// with no content is logged and dropped rather than shown empty.
func (m *Manager) Show(opts Options) tea.Cmd {
	t, err := New(opts)
	if err != nil {
		m.logger.Warn("not showing toast", "error", err)
		return nil
	}
	return m.ShowToast(t)
}

// ShowToast displays or enqueues an already-created toast.
func (m *Manager) ShowToast(t *Toast) tea.Cmd {
	if t == nil {
		return nil
	}
	m.resolve(t)
	if !m.roomFor(t) {
		m.queue.PushBack(t)
		m.logger.Debug("toast queued", "id", t.id, "queued", m.queue.Len())
		return nil
	}
	return m.admit(t)
}

// ShowAt displays the toast centered on the cell (x, y), clamped to the
// container. Point-placed toasts do not participate in stacking.
func (m *Manager) ShowAt(opts Options, x, y int) tea.Cmd {
	t, err := New(opts)
	if err != nil {
		m.logger.Warn("not showing toast", "error", err)
		return nil
	}
	t.at = &cell{x: x, y: y}
	return m.ShowToast(t)
}

// ShowStacked is Show with the stacking discipline forced on.
func (m *Manager) ShowStacked(opts Options) tea.Cmd {
	opts.Stackable = true
	return m.Show(opts)
}

// resolve fills the toast's presentation from its options and the
// manager defaults.
func (m *Manager) resolve(t *Toast) {
	if t.opts.Style != nil {
		t.style = t.opts.Style.Normalized()
	} else {
		t.style = m.cfg.styleFor(t.opts.Level)
	}
	t.position = t.opts.Position
	if t.position == PositionDefault {
		t.position = m.cfg.Position
	}
	t.duration = t.opts.Duration
	if t.duration == 0 {
		t.duration = m.cfg.Duration
	}
}

// roomFor reports whether the toast can display right now. Stackable
// toasts are gated by MaxVisible; others by the queue discipline.
func (m *Manager) roomFor(t *Toast) bool {
	if t.opts.Stackable {
		return m.stackedCount() < m.cfg.MaxVisible
	}
	if m.cfg.QueueEnabled && len(m.active) > 0 {
		return false
	}
	return true
}

// admit makes the toast visible: assigns its slot, starts the fade-in
// and schedules the auto-dismiss timer.
func (m *Manager) admit(t *Toast) tea.Cmd {
	t.phase = phaseIn
	t.shownAt = time.Now()
	t.fade = newSpring(m.cfg.FPS, 0)
	t.fade.retarget(1)
	t.offset = newSpring(m.cfg.FPS, 0)

	m.active = append(m.active, t)
	m.retargetStacks()
	t.offset.snap(t.offset.target)
	m.place(t)

	m.logger.Debug("toast shown",
		"id", t.id,
		"level", t.opts.Level,
		"position", t.position,
		"duration", t.duration)

	if m.cfg.OnShown != nil {
		m.cfg.OnShown(t)
	}

	cmds := []tea.Cmd{m.ensureFrames()}
	if t.duration > 0 {
		t.gen++
		cmds = append(cmds, timeoutCmd(m.tag, t.id, t.gen, t.duration))
	}
	return tea.Batch(cmds...)
}

// Hide dismisses the oldest visible toast.
func (m *Manager) Hide() tea.Cmd {
	for _, t := range m.active {
		if !t.dismissing() {
			return m.beginDismiss(t, CauseHidden)
		}
	}
	return nil
}

// HideToast dismisses the toast with the given id. A queued toast is
// dropped without displaying; its completion callback does not run
// because it was never shown.
func (m *Manager) HideToast(id ulid.ULID) tea.Cmd {
	if t := m.find(id); t != nil {
		return m.beginDismiss(t, CauseHidden)
	}
	for e := m.queue.Front(); e != nil; e = e.Next() {
		if e.Value.(*Toast).id == id {
			m.queue.Remove(e)
			m.logger.Debug("queued toast dropped", "id", id)
			return nil
		}
	}
	return nil
}

// HideOptions scopes HideAll.
type HideOptions struct {
	// ClearQueue also drops queued toasts that were never shown.
	ClearQueue bool
	// IncludeActivity also hides the activity toast.
	IncludeActivity bool
}

// HideAll dismisses every visible toast.
func (m *Manager) HideAll(opts HideOptions) tea.Cmd {
	if opts.ClearQueue {
		m.ClearQueue()
	}
	var cmds []tea.Cmd
	for _, t := range m.active {
		if !t.dismissing() {
			cmds = append(cmds, m.beginDismiss(t, CauseHidden))
		}
	}
	if opts.IncludeActivity {
		cmds = append(cmds, m.HideActivity())
	}
	return tea.Batch(cmds...)
}

// HideAllStacked dismisses the stacked toasts, visible and queued,
// leaving regular toasts alone.
func (m *Manager) HideAllStacked() tea.Cmd {
	var cmds []tea.Cmd
	for _, t := range m.active {
		if t.opts.Stackable && !t.dismissing() {
			cmds = append(cmds, m.beginDismiss(t, CauseHidden))
		}
	}
	for e := m.queue.Front(); e != nil; {
		next := e.Next()
		if e.Value.(*Toast).opts.Stackable {
			m.queue.Remove(e)
		}
		e = next
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// ClearQueue drops every queued toast without showing it. Completion
// callbacks do not run for toasts that never displayed.
func (m *Manager) ClearQueue() {
	if n := m.queue.Len(); n > 0 {
		m.queue.Init()
		m.logger.Debug("toast queue cleared", "dropped", n)
	}
}

// ShowActivity displays the indeterminate activity toast at pos. A
// manager shows at most one; repeat calls move it.
func (m *Manager) ShowActivity(pos Position) tea.Cmd {
	return m.showActivity(pos, nil)
}

// ShowActivityAt displays the activity toast centered on (x, y).
func (m *Manager) ShowActivityAt(x, y int) tea.Cmd {
	return m.showActivity(PositionDefault, &cell{x: x, y: y})
}

func (m *Manager) showActivity(pos Position, at *cell) tea.Cmd {
	if pos == PositionDefault {
		pos = m.cfg.Position
	}
	if m.activity == nil {
		m.activity = newActivity(m.cfg.styleFor(LevelInfo), pos, at, m.cfg.FPS)
	} else {
		m.activity.position = pos
		m.activity.at = at
		m.activity.hiding = false
	}
	m.activity.fade.retarget(1)
	m.placeActivity()
	m.logger.Debug("activity shown", "position", pos)
	return tea.Batch(m.activity.spin.Tick, m.ensureFrames())
}

// HideActivity fades out the activity toast.
func (m *Manager) HideActivity() tea.Cmd {
	if m.activity == nil || m.activity.hiding {
		return nil
	}
	m.activity.hiding = true
	m.activity.fade.retarget(0)
	m.logger.Debug("activity hidden")
	return m.ensureFrames()
}

// ActivityVisible reports whether the activity toast is on screen.
func (m *Manager) ActivityVisible() bool {
	return m.activity != nil && !m.activity.hiding
}

// Active returns the visible toasts in display order, oldest first.
func (m *Manager) Active() []*Toast {
	out := make([]*Toast, len(m.active))
	copy(out, m.active)
	return out
}

// Queued returns how many toasts are waiting to display.
func (m *Manager) Queued() int {
	return m.queue.Len()
}

// Update handles animation frames, auto-dismiss timers, mouse clicks
// and window resizes. Forward every message from the host Update and
// append the returned command.
func (m *Manager) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return nil
	case FrameMsg:
		if msg.Tag != m.tag {
			return nil
		}
		return m.step()
	case TimeoutMsg:
		if msg.Tag != m.tag {
			return nil
		}
		return m.timeout(msg)
	case tea.MouseMsg:
		return m.click(msg)
	case spinner.TickMsg:
		if m.activity == nil {
			return nil
		}
		var cmd tea.Cmd
		m.activity.spin, cmd = m.activity.spin.Update(msg)
		return cmd
	}
	return nil
}

// timeout handles an auto-dismiss timer firing. Stale generations are
// discarded so a toast dismissed by tap is not dismissed twice.
func (m *Manager) timeout(msg TimeoutMsg) tea.Cmd {
	t := m.find(msg.ID)
	if t == nil || t.gen != msg.Gen || t.dismissing() {
		return nil
	}
	m.logger.Debug("toast expired", "id", t.id)
	return m.beginDismiss(t, CauseTimeout)
}

// click dismisses the topmost toast under a left press.
func (m *Manager) click(msg tea.MouseMsg) tea.Cmd {
	if !m.cfg.TapToDismiss {
		return nil
	}
	mouse := tea.MouseEvent(msg)
	if mouse.Action != tea.MouseActionPress || mouse.Button != tea.MouseButtonLeft {
		return nil
	}
	// Later toasts draw over earlier ones, so hit test in reverse.
	for i := len(m.active) - 1; i >= 0; i-- {
		t := m.active[i]
		if t.dismissing() || !t.rect.contains(mouse.X, mouse.Y) {
			continue
		}
		m.logger.Debug("toast tapped", "id", t.id)
		return m.beginDismiss(t, CauseTapped)
	}
	return nil
}

// beginDismiss starts the fade-out. The toast stays active until the
// fade settles, then completes in step.
func (m *Manager) beginDismiss(t *Toast, cause DismissCause) tea.Cmd {
	if t.dismissing() {
		return nil
	}
	t.phase = phaseOut
	t.cause = cause
	t.gen++ // invalidate any in-flight timer
	t.fade.retarget(0)
	m.retargetStacks()
	return m.ensureFrames()
}

// step advances every animation one frame, completes toasts whose
// fade-out settled and promotes queued toasts into freed slots.
func (m *Manager) step() tea.Cmd {
	m.animating = false
	var cmds []tea.Cmd
	moving := false
	removed := false

	kept := m.active[:0]
	for _, t := range m.active {
		t.fade.step()
		t.offset.step()
		if t.phase == phaseIn && t.fade.settled() {
			t.phase = phaseVisible
			t.fade.snap(1)
		}
		if t.phase == phaseOut && t.fade.settled() {
			t.phase = phaseDone
			t.complete(t.cause)
			m.logger.Debug("toast dismissed", "id", t.id, "cause", t.cause)
			removed = true
			continue
		}
		if !t.fade.settled() || !t.offset.settled() {
			moving = true
		}
		m.place(t)
		kept = append(kept, t)
	}
	m.active = kept

	if a := m.activity; a != nil {
		a.fade.step()
		if a.hiding && a.fade.settled() {
			m.activity = nil
		} else {
			if !a.fade.settled() {
				moving = true
			}
			m.placeActivity()
		}
	}

	if removed {
		if cmd := m.promote(); cmd != nil {
			cmds = append(cmds, cmd)
			moving = true
		}
	}

	if moving {
		cmds = append(cmds, m.ensureFrames())
	}
	return tea.Batch(cmds...)
}

// promote admits queued toasts in FIFO order while there is room. The
// head of the queue blocks: a stackable behind a waiting regular toast
// stays queued until the regular toast has displayed.
func (m *Manager) promote() tea.Cmd {
	var cmds []tea.Cmd
	for {
		e := m.queue.Front()
		if e == nil {
			break
		}
		t := e.Value.(*Toast)
		if !m.roomFor(t) {
			break
		}
		m.queue.Remove(e)
		cmds = append(cmds, m.admit(t))
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// View composites the visible toasts over the host frame. The
// background should already be laid out to the manager's size.
func (m *Manager) View(background string) string {
	out := background
	for _, t := range m.active {
		box := t.render(m.width, m.height, m.insets)
		if box == "" {
			continue
		}
		out = overlay.Composite(box, out, t.rect.x, t.rect.y)
	}
	if m.activity != nil {
		if box := m.activity.render(); box != "" {
			out = overlay.Composite(box, out, m.activity.rect.x, m.activity.rect.y)
		}
	}
	return out
}

// ensureFrames starts the animation loop if it is not already running.
// One FrameMsg is in flight at a time.
func (m *Manager) ensureFrames() tea.Cmd {
	if m.animating {
		return nil
	}
	m.animating = true
	return frameCmd(m.tag, m.cfg.FPS)
}

// relayout recomputes stacking offsets and rects after a size or inset
// change.
func (m *Manager) relayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	m.retargetStacks()
	for _, t := range m.active {
		m.place(t)
	}
	if m.activity != nil {
		m.placeActivity()
	}
}

// retargetStacks recomputes stacking offsets from the current
// membership and sizes. Surviving toasts animate into freed slots;
// dismissing toasts keep their place while they fade.
func (m *Manager) retargetStacks() {
	totals := make(map[Position]int)
	for _, t := range m.active {
		if !t.opts.Stackable || t.at != nil || t.dismissing() {
			continue
		}
		_, h := t.measure(m.width, m.height, m.insets)
		t.offset.retarget(float64(totals[t.position]))
		totals[t.position] += h + m.cfg.Gap
	}
}

// place computes the toast's rect from its anchor and animated offset.
func (m *Manager) place(t *Toast) {
	w, h := t.measure(m.width, m.height, m.insets)
	var x, y int
	if t.at != nil {
		x, y = placeAt(t.at.x, t.at.y, m.width, m.height, w, h)
	} else {
		off := int(math.Round(t.offset.value()))
		x, y = placeBox(t.position, m.width, m.height, m.insets, off, w, h)
	}
	t.rect = rect{x: x, y: y, w: w, h: h}
}

func (m *Manager) placeActivity() {
	a := m.activity
	box := a.renderFull()
	w, h := lipgloss.Width(box), lipgloss.Height(box)
	var x, y int
	if a.at != nil {
		x, y = placeAt(a.at.x, a.at.y, m.width, m.height, w, h)
	} else {
		x, y = placeBox(a.position, m.width, m.height, m.insets, 0, w, h)
	}
	a.rect = rect{x: x, y: y, w: w, h: h}
}

// find returns the active toast with the given id, or nil.
func (m *Manager) find(id ulid.ULID) *Toast {
	for _, t := range m.active {
		if t.id == id {
			return t
		}
	}
	return nil
}

// stackedCount counts stackable toasts holding a display slot,
// including ones still fading out.
func (m *Manager) stackedCount() int {
	n := 0
	for _, t := range m.active {
		if t.opts.Stackable {
			n++
		}
	}
	return n
}
