// Package demo implements the interactive showcase for the toast
// library: a scenario list on the left, a live event feed on the right,
// and toasts compositing over both.
package demo

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"

	"github.com/crouton-dev/crouton/pkg/chime"
	"github.com/crouton-dev/crouton/pkg/desktop"
	"github.com/crouton-dev/crouton/pkg/theme"
	"github.com/crouton-dev/crouton/pkg/toast"
)

// Mode represents the current UI mode.
type Mode int

const (
	ModeBrowse Mode = iota
	ModeCompose
	ModeHelp
)

// Model is the demo's top-level bubbletea model.
type Model struct {
	logger *slog.Logger

	toasts   *toast.Manager
	themes   *theme.Loader
	sounds   *chime.Player
	notifier desktop.Notifier
	session  *session

	// Current mode
	mode Mode

	// Components
	list  list.Model
	input textinput.Model
	help  help.Model

	// State
	themeNames []string
	themeIdx   int
	mirror     bool
	pointArmed bool
	width      int
	height     int
	ready      bool

	// Key bindings
	keys KeyMap

	// Status message
	statusMsg string
	statusErr bool
}

type themeMsg struct {
	theme *theme.Theme
}

type statusMsg struct {
	text  string
	isErr bool
}

type clearStatusMsg struct{}

// statusCmd surfaces a transient line in the bottom bar.
func statusCmd(text string, isErr bool) tea.Cmd {
	return func() tea.Msg {
		return statusMsg{text: text, isErr: isErr}
	}
}

// RunOptions configures the demo.
type RunOptions struct {
	// Theme names the theme to start with. Empty means the default.
	Theme string
	// FPS overrides the animation frame rate. Zero keeps the default.
	FPS int
	// Sound enables chime playback.
	Sound bool
	// Mirror also sends each toast to the desktop notification service.
	Mirror bool
	// Logger receives the demo's structured logs. Nil means the default.
	Logger *slog.Logger
}

// New creates the demo model.
func New(opts RunOptions) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	sess := &session{}

	cfg := toast.DefaultConfig()
	if opts.FPS > 0 {
		cfg.FPS = opts.FPS
	}
	cfg.OnShown = sess.toastShown
	mgr := toast.NewManager(cfg, logger)
	// Keep the bottom bar clear of toasts.
	mgr.SetInsets(toast.Insets{Bottom: 1})

	themes := theme.NewLoader(logger)
	if err := themes.LoadTheme(opts.Theme); err != nil {
		logger.Warn("failed to load theme, using default", "error", err)
	}
	if th := themes.GetTheme(); th != nil {
		base, levels := th.Spec.Styles()
		mgr.SetStyles(&base, levels)
	}

	sounds := chime.NewPlayer(logger)
	sounds.SetEnabled(opts.Sound)
	registerDefaultSounds(sounds)

	scs := scenarios()
	items := make([]list.Item, len(scs))
	for i, s := range scs {
		items[i] = s
	}
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Scenarios"
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	input := textinput.New()
	input.Placeholder = "Toast message..."
	input.CharLimit = 120

	names := themes.ListThemes()
	idx := 0
	for i, name := range names {
		if name == themes.CurrentTheme() {
			idx = i
			break
		}
	}

	return Model{
		logger:     logger,
		toasts:     mgr,
		themes:     themes,
		sounds:     sounds,
		notifier:   desktop.NewDBusNotifier("crouton-demo", logger),
		session:    sess,
		mode:       ModeBrowse,
		list:       l,
		input:      input,
		help:       help.New(),
		themeNames: names,
		themeIdx:   idx,
		mirror:     opts.Mirror,
		keys:       DefaultKeyMap(),
	}
}

// registerDefaultSounds maps levels to the freedesktop sound theme,
// which most Linux desktops ship. Levels whose file is absent stay
// silent.
func registerDefaultSounds(p *chime.Player) {
	const dir = "/usr/share/sounds/freedesktop/stereo"
	for level, name := range map[toast.Level]string{
		toast.LevelInfo:    "message.oga",
		toast.LevelSuccess: "complete.oga",
		toast.LevelWarning: "dialog-warning.oga",
		toast.LevelError:   "dialog-error.oga",
	} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			p.SetSound(level, path)
		}
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.list.SetSize(m.listWidth(), msg.Height-2)
		m.toasts.SetSize(msg.Width, msg.Height)
		return m, nil

	case themeMsg:
		return m.applyTheme(msg.theme)

	case statusMsg:
		m.statusMsg = msg.text
		m.statusErr = msg.isErr
		return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg {
			return clearStatusMsg{}
		})

	case clearStatusMsg:
		m.statusMsg = ""
		m.statusErr = false
		return m, nil
	}

	// Animation frames, timers and spinner ticks flow to the manager.
	// Promotion can fire the shown hook, so drain afterwards.
	cmd := m.toasts.Update(msg)
	return m, tea.Batch(cmd, m.drainEffects())
}

// handleKey handles key presses.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Compose captures every key except its own exits, so typing "q"
	// does not quit.
	if m.mode == ModeCompose {
		return m.handleComposeKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		if m.mode == ModeHelp {
			m.mode = ModeBrowse
		} else {
			m.mode = ModeHelp
		}
		return m, nil
	}

	if m.mode == ModeHelp {
		if key.Matches(msg, m.keys.Back) {
			m.mode = ModeBrowse
		}
		return m, nil
	}

	return m.handleBrowseKey(msg)
}

// handleBrowseKey handles keys in the scenario browser.
func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Enter):
		if sc, ok := m.list.SelectedItem().(scenario); ok {
			cmd := sc.run(&m)
			return m, cmd
		}
		return m, nil

	case key.Matches(msg, m.keys.Compose):
		m.mode = ModeCompose
		m.input.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Hide):
		return m, m.toasts.Hide()

	case key.Matches(msg, m.keys.HideAll):
		return m, m.toasts.HideAll(toast.HideOptions{ClearQueue: true, IncludeActivity: true})

	case key.Matches(msg, m.keys.Activity):
		if m.toasts.ActivityVisible() {
			return m, m.toasts.HideActivity()
		}
		return m, m.toasts.ShowActivity(toast.PositionCenter)

	case key.Matches(msg, m.keys.Export):
		if len(m.session.events) == 0 {
			return m, statusCmd("No events to export yet", false)
		}
		path, err := m.session.export()
		if err != nil {
			return m, statusCmd("Export failed: "+err.Error(), true)
		}
		return m, statusCmd("Events written to "+path, false)

	case key.Matches(msg, m.keys.Position):
		return m, m.cyclePosition()

	case key.Matches(msg, m.keys.Theme):
		return m.nextTheme()

	case key.Matches(msg, m.keys.Queue):
		enabled := !m.toasts.Config().QueueEnabled
		cmd := m.toasts.SetQueueEnabled(enabled)
		label := "Queueing off: toasts overlap"
		if enabled {
			label = "Queueing on: one toast at a time"
		}
		return m, tea.Batch(cmd, m.drainEffects(), statusCmd(label, false))

	case key.Matches(msg, m.keys.Sound):
		m.sounds.SetEnabled(!m.sounds.Enabled())
		if m.sounds.Enabled() {
			return m, statusCmd("Sound on", false)
		}
		return m, statusCmd("Sound off", false)

	case key.Matches(msg, m.keys.Mirror):
		m.mirror = !m.mirror
		if m.mirror {
			return m, statusCmd("Mirroring toasts to the desktop", false)
		}
		return m, statusCmd("Desktop mirroring off", false)
	}

	// Pass to list
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// handleComposeKey handles keys while typing a custom toast.
func (m Model) handleComposeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyEsc:
		m.mode = ModeBrowse
		m.input.Blur()
		m.input.SetValue("")
		return m, nil

	case tea.KeyEnter:
		text := strings.TrimSpace(m.input.Value())
		m.mode = ModeBrowse
		m.input.Blur()
		m.input.SetValue("")
		if text == "" {
			return m, statusCmd("Refusing to show an empty toast", true)
		}
		return m, m.show(toast.Info(text))
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleMouse routes clicks: an armed point placement wins, everything
// else goes to the manager for tap-to-dismiss hit testing.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	mouse := tea.MouseEvent(msg)
	if m.pointArmed && mouse.Action == tea.MouseActionPress && mouse.Button == tea.MouseButtonLeft {
		m.pointArmed = false
		return m, m.showAt(toast.Options{Message: "Right here", Icon: "📍"}, mouse.X, mouse.Y)
	}
	return m, tea.Batch(m.toasts.Update(msg), m.drainEffects())
}

// show displays a toast and records its lifecycle in the event feed.
func (m Model) show(opts toast.Options) tea.Cmd {
	opts.OnDismiss = m.dismissRecorder(opts)
	return tea.Batch(m.toasts.Show(opts), m.drainEffects())
}

// showStacked is show with the stacking discipline forced on.
func (m Model) showStacked(opts toast.Options) tea.Cmd {
	opts.Stackable = true
	return m.show(opts)
}

// showAt is show with point placement.
func (m Model) showAt(opts toast.Options, x, y int) tea.Cmd {
	opts.OnDismiss = m.dismissRecorder(opts)
	return tea.Batch(m.toasts.ShowAt(opts, x, y), m.drainEffects())
}

// dismissRecorder chains a feed entry onto the toast's own completion
// callback.
func (m Model) dismissRecorder(opts toast.Options) func(toast.DismissCause) {
	summary := optsSummary(opts)
	level := opts.Level.String()
	prev := opts.OnDismiss
	sess := m.session
	return func(cause toast.DismissCause) {
		if prev != nil {
			prev(cause)
		}
		sess.record(event{
			Kind:    "dismissed",
			Level:   level,
			Summary: summary,
			Cause:   cause.String(),
		})
	}
}

// drainEffects converts freshly shown toasts into their side effects:
// chime playback and desktop mirroring.
func (m Model) drainEffects() tea.Cmd {
	shown := m.session.drainShown()
	if len(shown) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(shown))
	for _, t := range shown {
		cmds = append(cmds, m.effectsFor(t))
	}
	return tea.Batch(cmds...)
}

// effectsFor builds the command running a shown toast's side effects
// off the update goroutine.
func (m Model) effectsFor(t *toast.Toast) tea.Cmd {
	level := t.Level()
	sounds := m.sounds
	var n *desktop.Notification
	if m.mirror {
		v := desktop.FromToast(t)
		n = &v
	}
	notifier := m.notifier

	return func() tea.Msg {
		if err := sounds.PlayFor(level); err != nil {
			return statusMsg{text: "Chime failed: " + err.Error(), isErr: true}
		}
		if n != nil {
			if _, err := notifier.Notify(*n); err != nil {
				return statusMsg{text: "Desktop notification failed: " + err.Error(), isErr: true}
			}
		}
		return nil
	}
}

var positionCycle = []toast.Position{toast.PositionBottom, toast.PositionCenter, toast.PositionTop}

// cyclePosition advances the manager's default position.
func (m Model) cyclePosition() tea.Cmd {
	cur := m.toasts.Config().Position
	next := positionCycle[0]
	for i, p := range positionCycle {
		if p == cur {
			next = positionCycle[(i+1)%len(positionCycle)]
			break
		}
	}
	m.toasts.SetPosition(next)
	return statusCmd("Default position: "+next.String(), false)
}

// nextTheme loads the next theme in the cycle. The loader's apply
// callback routes the loaded theme back into Update as a themeMsg.
func (m Model) nextTheme() (tea.Model, tea.Cmd) {
	if len(m.themeNames) == 0 {
		return m, statusCmd("No themes found", true)
	}
	m.themeIdx = (m.themeIdx + 1) % len(m.themeNames)
	name := m.themeNames[m.themeIdx]
	if err := m.themes.LoadTheme(name); err != nil {
		return m, statusCmd("Failed to load theme: "+err.Error(), true)
	}
	return m, nil
}

// applyTheme restyles the manager from a loaded theme.
func (m Model) applyTheme(th *theme.Theme) (tea.Model, tea.Cmd) {
	if th == nil {
		return m, nil
	}
	base, levels := th.Spec.Styles()
	m.toasts.SetStyles(&base, levels)
	return m, statusCmd(fmt.Sprintf("Theme %q applied", th.Name), false)
}

// listWidth sizes the scenario column.
func (m Model) listWidth() int {
	w := m.width * 2 / 5
	if w > 44 {
		w = 44
	}
	if w < 20 {
		w = 20
	}
	return w
}

// View renders the demo with toasts composited on top.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var frame string
	if m.mode == ModeHelp {
		frame = m.viewHelp()
	} else {
		frame = m.viewMain()
	}
	return m.toasts.View(frame)
}

func (m Model) viewMain() string {
	listWidth := m.listWidth()
	feedWidth := m.width - listWidth - 2
	if feedWidth < 10 {
		feedWidth = 10
	}

	left := lipgloss.NewStyle().Width(listWidth).Render(m.list.View())
	right := m.viewFeed(feedWidth)
	columns := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)

	body := lipgloss.Place(m.width, m.height-1, lipgloss.Left, lipgloss.Top, columns)
	return body + "\n" + m.viewBar()
}

func (m Model) viewFeed(width int) string {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	timeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	rows := []string{headerStyle.Render("Events"), ""}

	events := m.session.events
	budget := m.height - 5
	if budget < 1 {
		budget = 1
	}
	if len(events) > budget {
		events = events[len(events)-budget:]
	}
	if len(events) == 0 {
		rows = append(rows, timeStyle.Render("Run a scenario to see its lifecycle here."))
	}
	// Newest first.
	for i := len(events) - 1; i >= 0; i-- {
		e := events[i]
		line := fmt.Sprintf("%s %s %s %s",
			levelGlyph(e.Level), e.Kind, e.Summary,
			timeStyle.Render(humanize.Time(e.At)))
		rows = append(rows, ansi.Truncate(line, width, "…"))
	}
	return strings.Join(rows, "\n")
}

// levelGlyph marks feed lines by severity.
func levelGlyph(level string) string {
	switch level {
	case "success":
		return "✔"
	case "warning":
		return "▲"
	case "error":
		return "✖"
	default:
		return "•"
	}
}

func (m Model) viewBar() string {
	if m.mode == ModeCompose {
		return "Message: " + m.input.View()
	}
	if m.statusMsg != "" {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
		if m.statusErr {
			style = style.Foreground(lipgloss.Color("9"))
		}
		return style.Render(m.statusMsg)
	}
	return m.stateLine()
}

func (m Model) stateLine() string {
	cfg := m.toasts.Config()
	parts := []string{
		"pos:" + cfg.Position.String(),
		"theme:" + m.themes.CurrentTheme(),
		toggleLabel("queue", cfg.QueueEnabled),
		toggleLabel("sound", m.sounds.Enabled()),
		toggleLabel("mirror", m.mirror),
	}
	if n := m.toasts.Queued(); n > 0 {
		parts = append(parts, fmt.Sprintf("waiting:%d", n))
	}
	parts = append(parts, "? help")
	return lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(strings.Join(parts, "  "))
}

func toggleLabel(name string, on bool) string {
	if on {
		return name + ":on"
	}
	return name + ":off"
}

func (m Model) viewHelp() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("12")).
		MarginBottom(1)

	h := m.help
	h.ShowAll = true

	content := titleStyle.Render("crouton demo") + "\n" +
		h.View(m.keys) + "\n\n" +
		lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render("Press ? or esc to return")

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// Run starts the demo program and blocks until it exits.
func Run(opts RunOptions) error {
	m := New(opts)

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	// Theme loads re-enter the update loop as messages. The goroutine
	// hop keeps Send off the update goroutine, where it could block.
	m.themes.SetApplyCallback(func(th *theme.Theme) {
		go p.Send(themeMsg{theme: th})
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	m.themes.StartHotReload(ctx)
	defer m.themes.StopHotReload()
	defer m.sounds.Close()

	if n, ok := m.notifier.(*desktop.DBusNotifier); ok {
		defer n.Stop()
	}

	_, err := p.Run()
	return err
}
