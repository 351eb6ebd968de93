// Package tui is the terminal front end of the theme switch: a host page with
// focusable buttons and the theme dialog drawn over it.
package tui

import (
	"context"
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/mark3labs/themeswitch/internal/config"
	"github.com/mark3labs/themeswitch/internal/events"
	"github.com/mark3labs/themeswitch/internal/hooks"
	"github.com/mark3labs/themeswitch/internal/logger"
	"github.com/mark3labs/themeswitch/internal/prefs"
	"github.com/mark3labs/themeswitch/internal/switcher"
	"github.com/mark3labs/themeswitch/internal/tui/theme"
)

// OpenRequestMsg asks the app to open the theme dialog for an opener.
type OpenRequestMsg struct {
	OpenerID string
}

// ThemeChangedMsg reports a selection announced on the bus.
type ThemeChangedMsg struct {
	Name string
}

// HookResultMsg reports the outcome of the theme change hooks.
type HookResultMsg struct {
	Theme  string
	Output string
	Err    error
}

// dialogRenderedMsg arrives after the frame showing the dialog was drawn.
type dialogRenderedMsg struct {
	pending switcher.Pending
}

// busMsg wraps messages coming from the event bus so the listener can be
// re-armed after each one.
type busMsg struct {
	msg tea.Msg
}

// App is the main Bubbletea model. It also serves as the widget's Host.
type App struct {
	ctx    context.Context
	widget *switcher.Widget
	bus    *events.Bus
	keys   pageKeyMap

	page   *Page
	dialog *ThemeDialog
	about  *AboutPanel

	scope        string
	hooks        []*hooks.HookConfig
	hooksWorkDir string

	focused  string
	status   string
	width    int
	height   int
	busChan  chan tea.Msg
	quitting bool
}

// NewApp creates the app and attaches the theme switch. bus may be nil.
func NewApp(ctx context.Context, cfg *config.Config, store prefs.Store, bus *events.Bus) *App {
	a := &App{
		ctx:     ctx,
		bus:     bus,
		keys:    defaultPageKeys(),
		page:    NewPage(),
		dialog:  NewThemeDialog(),
		about:   NewAboutPanel(),
		busChan: make(chan tea.Msg, 16),
		scope:   cfg.Scope,
	}
	a.focused = a.page.First()

	a.widget = switcher.Attach(switcher.Config{
		Options:       cfg.Options,
		SaveSelection: cfg.SaveSelection,
	}, store, switcher.NotifierFunc(a.selectionChanged), a)

	theme.Apply(a.widget.Selected())
	return a
}

// SetHooks registers the commands run after each selection. cfg may be nil.
func (a *App) SetHooks(cfg *hooks.Config, workDir string) {
	if cfg == nil {
		a.hooks = nil
		return
	}
	a.hooks = cfg.Hooks.OnThemeChange
	a.hooksWorkDir = workDir
}

// Widget returns the attached theme switch.
func (a *App) Widget() *switcher.Widget { return a.widget }

// Init requests the terminal background and starts listening on the bus.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.RequestBackgroundColor}
	if a.bus != nil {
		cmds = append(cmds, a.subscribeToBus(), a.waitForBus())
	}
	return tea.Batch(cmds...)
}

// Update handles all incoming messages.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.about.SetSize(msg.Width, msg.Height)
		return a, nil

	case tea.BackgroundColorMsg:
		theme.SetDarkTerminal(msg.IsDark())
		return a, nil

	case tea.KeyPressMsg:
		return a.handleKeyPress(msg)

	case tea.MouseClickMsg:
		return a.handleMouse(msg)

	case OpenRequestMsg:
		return a, a.openDialog(msg.OpenerID)

	case dialogRenderedMsg:
		a.widget.AfterRender(msg.pending)
		return a, nil

	case HookResultMsg:
		if msg.Err != nil {
			a.status = fmt.Sprintf("Theme hook failed: %v", msg.Err)
		}
		return a, nil

	case ThemeChangedMsg:
		if msg.Name != a.widget.Selected() {
			a.status = fmt.Sprintf("Another view selected %s", msg.Name)
		}
		return a, nil

	case busMsg:
		_, cmd := a.Update(msg.msg)
		return a, tea.Batch(cmd, a.waitForBus())
	}

	if a.about.IsVisible() {
		_, cmd := a.about.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *App) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keys.ForceQuit) {
		a.quitting = true
		return a, tea.Quit
	}

	if a.about.IsVisible() {
		closed, cmd := a.about.Update(msg)
		if closed {
			a.Focus(a.about.Hide())
		}
		return a, cmd
	}

	if !a.widget.State().Hidden {
		return a, a.handleAction(a.widget.HandleKey(msg.String()))
	}

	switch {
	case key.Matches(msg, a.keys.Next):
		a.Focus(a.page.Next(a.focused, 1))
	case key.Matches(msg, a.keys.Prev):
		a.Focus(a.page.Next(a.focused, -1))
	case key.Matches(msg, a.keys.Themes):
		return a, a.openDialog(a.focused)
	case key.Matches(msg, a.keys.Activate):
		return a.activate(a.focused)
	case key.Matches(msg, a.keys.Quit):
		a.quitting = true
		return a, tea.Quit
	}
	return a, nil
}

// handleMouse routes left clicks. The about panel and the dialog sit on top
// of the page, so they see clicks first; a click outside the dialog closes it.
func (a *App) handleMouse(msg tea.MouseClickMsg) (tea.Model, tea.Cmd) {
	mouse := msg.Mouse()
	if mouse.Button != tea.MouseLeft {
		return a, nil
	}

	if a.about.IsVisible() {
		a.Focus(a.about.Hide())
		return a, nil
	}

	if !a.widget.State().Hidden {
		if !uv.Pos(mouse.X, mouse.Y).In(a.dialog.Area()) {
			a.widget.Close()
			return a, a.handleAction(switcher.ActionClosed)
		}
		return a, a.handleAction(a.widget.Click(a.dialog.HitTest(mouse.X, mouse.Y)))
	}

	id := a.page.HitTest(mouse.X, mouse.Y)
	if id == "" {
		return a, nil
	}
	a.Focus(id)
	return a.activate(id)
}

// handleAction follows up on what the dialog did with a key or click.
func (a *App) handleAction(action switcher.Action) tea.Cmd {
	if action != switcher.ActionNone {
		logger.Debug("Theme dialog action: %s", action)
	}

	switch action {
	case switcher.ActionReadMore:
		a.about.Show(switcher.ReadMoreID)
	case switcher.ActionSelected:
		return a.runHooks(a.widget.Selected())
	case switcher.ActionClosed:
		// Openers from the bus may not exist on this page.
		if !a.page.Has(a.focused) {
			a.focused = a.page.First()
		}
	}
	return nil
}

func (a *App) activate(id string) (tea.Model, tea.Cmd) {
	switch id {
	case ButtonTheme:
		return a, a.openDialog(id)
	case ButtonAbout:
		a.about.Show(id)
	case ButtonQuit:
		a.quitting = true
		return a, tea.Quit
	}
	return a, nil
}

// openDialog opens the dialog and schedules focusing its first element for
// after the next frame.
func (a *App) openDialog(openerID string) tea.Cmd {
	pending, ok := a.widget.Open(switcher.OpenRequest{Opener: switcher.OpenerID(openerID)})
	if !ok {
		return nil
	}
	return func() tea.Msg {
		return dialogRenderedMsg{pending: pending}
	}
}

// runHooks runs the theme change hooks off the event loop.
func (a *App) runHooks(name string) tea.Cmd {
	if len(a.hooks) == 0 {
		return nil
	}
	hs, dir := a.hooks, a.hooksWorkDir
	vars := hooks.Variables{Theme: name, Scope: a.scope}
	return func() tea.Msg {
		out, err := hooks.ExecuteAll(a.ctx, hs, dir, vars)
		return HookResultMsg{Theme: name, Output: out, Err: err}
	}
}

// selectionChanged applies the palette and announces the selection.
func (a *App) selectionChanged(name string) {
	theme.Apply(name)
	a.status = fmt.Sprintf("Theme set to %s", name)
	if a.bus != nil {
		a.bus.SelectionChanged(name)
	}
}

// Tabbables implements switcher.Host.
func (a *App) Tabbables() []string {
	if a.widget.State().Hidden {
		return nil
	}
	return a.widget.Tabbables()
}

// Focus implements switcher.Host. Dialog elements only exist while the
// dialog is open.
func (a *App) Focus(id string) bool {
	if a.page.Has(id) || (!a.widget.State().Hidden && a.widget.Owns(id)) {
		a.focused = id
		return true
	}
	return false
}

// Focused implements switcher.Host.
func (a *App) Focused() string { return a.focused }

// View renders the app.
func (a *App) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.MouseMode = tea.MouseModeCellMotion

	if a.quitting {
		view.AltScreen = false
		view.MouseMode = 0
		view.Content = lipgloss.NewLayer("")
		return view
	}

	canvas := uv.NewScreenBuffer(a.width, a.height)
	a.Draw(canvas, canvas.Bounds())
	view.Content = lipgloss.NewLayer(canvas.Render())
	view.BackgroundColor = theme.HexToColor(theme.Current().BgBase)
	return view
}

// Draw renders the page with the dialog and about panel on top.
func (a *App) Draw(scr uv.Screen, area uv.Rectangle) {
	a.page.Draw(scr, area, a.focused, a.widget.Selected(), a.status, HintBindings(a.keys.ShortHelp()...))
	a.dialog.Draw(scr, area, a.widget, a.focused)
	a.about.Draw(scr, area)
}

// subscribeToBus forwards bus events to busChan until the context ends.
func (a *App) subscribeToBus() tea.Cmd {
	return func() tea.Msg {
		forward := func(msg tea.Msg) {
			select {
			case a.busChan <- msg:
			default:
				logger.Warn("Dropping bus event, queue full")
			}
		}

		openSub, err := a.bus.SubscribeOpen(func(e events.DialogOpen) {
			forward(OpenRequestMsg{OpenerID: e.OpenerID})
		})
		if err != nil {
			logger.Error("Failed to subscribe to open requests: %v", err)
			return nil
		}
		defer func() { _ = openSub.Unsubscribe() }()

		changedSub, err := a.bus.SubscribeThemeChanged(func(e events.ThemeChanged) {
			forward(ThemeChangedMsg{Name: e.ThemeName})
		})
		if err != nil {
			logger.Error("Failed to subscribe to theme changes: %v", err)
			return nil
		}
		defer func() { _ = changedSub.Unsubscribe() }()

		<-a.ctx.Done()
		return nil
	}
}

// waitForBus blocks for the next forwarded bus event.
func (a *App) waitForBus() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-a.busChan:
			return busMsg{msg: msg}
		case <-a.ctx.Done():
			return nil
		}
	}
}
