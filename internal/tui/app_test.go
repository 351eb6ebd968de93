package tui

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/stretchr/testify/require"

	"github.com/mark3labs/themeswitch/internal/config"
	"github.com/mark3labs/themeswitch/internal/events"
	"github.com/mark3labs/themeswitch/internal/hooks"
	inats "github.com/mark3labs/themeswitch/internal/nats"
	"github.com/mark3labs/themeswitch/internal/prefs"
	"github.com/mark3labs/themeswitch/internal/switcher"
)

func newTestApp(t *testing.T, cfg *config.Config, store prefs.Store) *App {
	t.Helper()

	if cfg == nil {
		cfg = &config.Config{SaveSelection: true}
	}
	if store == nil {
		store = prefs.NewMemoryStore()
	}
	app := NewApp(context.Background(), cfg, store, nil)
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return app
}

// press sends a key and runs any command it returns, feeding the result back.
func press(app *App, keys ...string) {
	for _, k := range keys {
		_, cmd := app.Update(tea.KeyPressMsg{Text: k})
		if cmd == nil {
			continue
		}
		if msg, ok := cmd().(dialogRenderedMsg); ok {
			app.Update(msg)
		}
	}
}

// click sends a left click and runs any command it returns, like press.
func click(app *App, x, y int) {
	_, cmd := app.Update(tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseLeft})
	if cmd == nil {
		return
	}
	if msg, ok := cmd().(dialogRenderedMsg); ok {
		app.Update(msg)
	}
}

// drawApp renders a frame so hit regions match what is on screen.
func drawApp(app *App) uv.ScreenBuffer {
	canvas := uv.NewScreenBuffer(app.width, app.height)
	app.Draw(canvas, canvas.Bounds())
	return canvas
}

// locate returns the cell where text starts on screen.
func locate(t *testing.T, canvas uv.ScreenBuffer, text string) (int, int) {
	t.Helper()

	want := []rune(text)
	b := canvas.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x+len(want) <= b.Max.X; x++ {
			match := true
			for i, r := range want {
				c := canvas.CellAt(x+i, y)
				if c == nil || c.Content != string(r) {
					match = false
					break
				}
			}
			if match {
				return x, y
			}
		}
	}
	t.Fatalf("%q not on screen", text)
	return 0, 0
}

func TestNewApp(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, nil, nil)

	require.NotNil(t, app.Widget())
	require.Equal(t, ButtonTheme, app.Focused())
	require.True(t, app.Widget().State().Hidden)
	require.Equal(t, "auto", app.Widget().Selected())
	require.Nil(t, app.Tabbables(), "closed dialog has no tabbables")
}

func TestApp_PageNavigation(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, nil, nil)

	press(app, "tab")
	require.Equal(t, ButtonAbout, app.Focused())
	press(app, "tab", "tab")
	require.Equal(t, ButtonTheme, app.Focused())
	press(app, "shift+tab")
	require.Equal(t, ButtonQuit, app.Focused())
}

func TestApp_OpenSelectClose(t *testing.T) {
	t.Parallel()

	store := prefs.NewMemoryStore()
	app := newTestApp(t, nil, store)

	press(app, "enter")
	w := app.Widget()
	require.False(t, w.State().Hidden)
	require.Equal(t, ButtonTheme, w.State().OpenerID)
	require.Equal(t, w.Registry().ID(0), app.Focused(), "first tabbable gets focus after render")

	press(app, "down", "down", "enter")
	require.Equal(t, "dark", w.Selected())
	require.Equal(t, "Theme set to dark", app.status)
	require.Equal(t, "dark", store.Snapshot()[prefs.KeySelection])

	press(app, "esc")
	require.True(t, w.State().Hidden)
	require.Equal(t, ButtonTheme, app.Focused())
}

func TestApp_DialogTrapsTab(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, nil, nil)
	press(app, "t")

	first := app.Widget().Registry().ID(0)
	press(app, "tab", "tab", "tab")
	require.Equal(t, switcher.CloseButtonID, app.Focused())
	press(app, "tab")
	require.Equal(t, first, app.Focused())
	press(app, "shift+tab")
	require.Equal(t, switcher.CloseButtonID, app.Focused())

	// Page buttons are out of reach while the dialog is open.
	press(app, "q")
	require.False(t, app.quitting)
	require.False(t, app.Widget().State().Hidden)

	press(app, "enter")
	require.True(t, app.Widget().State().Hidden)
	require.Equal(t, ButtonTheme, app.Focused())
}

func TestApp_OpenFromOtherButton(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, nil, nil)
	press(app, "tab", "t")
	require.Equal(t, ButtonAbout, app.Widget().State().OpenerID)

	press(app, "esc")
	require.Equal(t, ButtonAbout, app.Focused())
}

func TestApp_SaveToggle(t *testing.T) {
	t.Parallel()

	store := prefs.NewMemoryStore()
	app := newTestApp(t, &config.Config{SaveSelection: false}, store)

	press(app, "t", "right", "enter")
	require.Equal(t, "light", app.Widget().Selected())
	require.Empty(t, store.Snapshot())

	press(app, "tab", "space")
	require.Equal(t, switcher.SaveSelectionID, app.Focused())
	require.Equal(t, map[string]string{
		prefs.KeySaveSelection: "true",
		prefs.KeySelection:     "light",
	}, store.Snapshot())

	press(app, "enter")
	require.Empty(t, store.Snapshot())
}

func TestApp_ReadMore(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, nil, nil)
	press(app, "t", "tab", "tab")
	require.Equal(t, switcher.ReadMoreID, app.Focused())

	press(app, "enter")
	require.True(t, app.about.IsVisible())
	require.False(t, app.Widget().State().Hidden)

	press(app, "esc")
	require.False(t, app.about.IsVisible())
	require.False(t, app.Widget().State().Hidden, "esc only closes the panel")
	require.Equal(t, switcher.ReadMoreID, app.Focused())
}

func TestApp_AboutFromPage(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, nil, nil)
	press(app, "tab", "enter")
	require.True(t, app.about.IsVisible())

	press(app, "q")
	require.False(t, app.about.IsVisible())
	require.Equal(t, ButtonAbout, app.Focused())
}

func TestApp_StaleRenderIsIgnored(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, nil, nil)
	_, cmd := app.Update(OpenRequestMsg{OpenerID: ButtonTheme})
	require.NotNil(t, cmd)
	rendered := cmd()

	press(app, "esc")
	app.Update(rendered)
	require.Equal(t, ButtonTheme, app.Focused())
	require.True(t, app.Widget().State().Hidden)
}

func TestApp_OpenRequestWithoutOpener(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, nil, nil)
	_, cmd := app.Update(OpenRequestMsg{})
	require.Nil(t, cmd)
	require.True(t, app.Widget().State().Hidden)
}

func TestApp_RestoresStoredTheme(t *testing.T) {
	t.Parallel()

	store := prefs.NewMemoryStore()
	store.Write(prefs.KeySaveSelection, "true")
	store.Write(prefs.KeySelection, "🦕")

	app := newTestApp(t, &config.Config{Options: []string{"🐢", "🦕", "🐸"}}, store)
	require.Equal(t, "🦕", app.Widget().Selected())
}

func TestApp_Quit(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, nil, nil)
	_, cmd := app.Update(tea.KeyPressMsg{Text: "ctrl+c"})
	require.NotNil(t, cmd)
	require.True(t, app.quitting)
	view := app.View()
	require.False(t, view.AltScreen)
	require.Equal(t, tea.MouseModeNone, view.MouseMode)
}

func TestApp_View(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, nil, nil)
	view := app.View()
	require.True(t, view.AltScreen)
	require.Equal(t, tea.MouseModeCellMotion, view.MouseMode)
	require.NotNil(t, view.Content)
	require.NotNil(t, view.BackgroundColor)
}

func TestApp_BusOpenRequest(t *testing.T) {
	t.Parallel()

	rt, err := inats.Start("")
	require.NoError(t, err)
	defer func() { _ = rt.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bus := events.NewBus(rt.Conn, "test")
	app := NewApp(ctx, &config.Config{}, prefs.NewMemoryStore(), bus)
	go app.subscribeToBus()()

	var got tea.Msg
	require.Eventually(t, func() bool {
		_ = bus.PublishOpen(ButtonAbout)
		select {
		case got = <-app.busChan:
			return true
		case <-time.After(20 * time.Millisecond):
			return false
		}
	}, 3*time.Second, 10*time.Millisecond)

	require.Equal(t, OpenRequestMsg{OpenerID: ButtonAbout}, got)

	app.Update(busMsg{msg: got})
	require.False(t, app.Widget().State().Hidden)
	require.Equal(t, ButtonAbout, app.Widget().State().OpenerID)
}

func TestApp_SelectionRunsHooks(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, &config.Config{Scope: "docs"}, nil)
	app.SetHooks(&hooks.Config{Hooks: hooks.HooksConfig{OnThemeChange: []*hooks.HookConfig{
		{Command: "echo {{theme}}-{{scope}}"},
	}}}, t.TempDir())

	press(app, "t", "left")
	_, cmd := app.Update(tea.KeyPressMsg{Text: "enter"})
	require.NotNil(t, cmd)

	msg, ok := cmd().(HookResultMsg)
	require.True(t, ok)
	require.NoError(t, msg.Err)
	require.Equal(t, "dark", msg.Theme)
	require.Equal(t, "dark-docs\n", msg.Output)

	app.SetHooks(&hooks.Config{Hooks: hooks.HooksConfig{OnThemeChange: []*hooks.HookConfig{
		{Command: "exit 2"},
	}}}, t.TempDir())
	press(app, "left")
	_, cmd = app.Update(tea.KeyPressMsg{Text: "enter"})
	app.Update(cmd())
	require.Contains(t, app.status, "Theme hook failed")
}

func TestApp_MouseDialogControls(t *testing.T) {
	t.Parallel()

	store := prefs.NewMemoryStore()
	app := newTestApp(t, &config.Config{SaveSelection: false}, store)
	w := app.Widget()

	x, y := locate(t, drawApp(app), "About")
	click(app, x, y)
	require.True(t, app.about.IsVisible())
	require.Equal(t, ButtonAbout, app.Focused())

	click(app, 0, 0)
	require.False(t, app.about.IsVisible())
	require.Equal(t, ButtonAbout, app.Focused())

	press(app, "t")
	require.False(t, w.State().Hidden)

	x, y = locate(t, drawApp(app), "( ) dark")
	click(app, x+2, y)
	require.Equal(t, "dark", w.Selected())
	require.Equal(t, w.Registry().ID(2), app.Focused())
	require.Empty(t, store.Snapshot())

	x, y = locate(t, drawApp(app), "Remember selection")
	click(app, x, y)
	require.True(t, w.State().SaveSelection)
	require.Equal(t, switcher.SaveSelectionID, app.Focused())
	require.Equal(t, "dark", store.Snapshot()[prefs.KeySelection])

	x, y = locate(t, drawApp(app), "What is this?")
	click(app, x, y)
	require.True(t, app.about.IsVisible())
	require.Equal(t, switcher.ReadMoreID, app.Focused())

	click(app, 0, 0)
	require.False(t, app.about.IsVisible())
	require.False(t, w.State().Hidden, "closing the panel keeps the dialog")

	// The dialog border is inside the box but not a control.
	drawApp(app)
	area := app.dialog.Area()
	click(app, area.Min.X, area.Min.Y)
	require.False(t, w.State().Hidden)

	x, y = locate(t, drawApp(app), "Close")
	click(app, x, y)
	require.True(t, w.State().Hidden)
	require.Equal(t, ButtonAbout, app.Focused())
}

func TestApp_MouseOutsideClosesDialog(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, nil, nil)
	press(app, "t")
	drawApp(app)

	_, cmd := app.Update(tea.MouseClickMsg{X: 0, Y: 0, Button: tea.MouseRight})
	require.Nil(t, cmd)
	require.False(t, app.Widget().State().Hidden, "only the left button counts")

	click(app, 0, 0)
	require.True(t, app.Widget().State().Hidden)
	require.Equal(t, ButtonTheme, app.Focused())
}

func TestApp_CloseWithoutPageOpener(t *testing.T) {
	t.Parallel()

	for _, closeWith := range []string{"key", "click"} {
		app := newTestApp(t, nil, nil)
		_, cmd := app.Update(OpenRequestMsg{OpenerID: "remote-btn"})
		require.NotNil(t, cmd)
		app.Update(cmd())
		require.Equal(t, app.Widget().Registry().ID(0), app.Focused())

		if closeWith == "key" {
			press(app, "esc")
		} else {
			drawApp(app)
			click(app, 0, 0)
		}

		require.True(t, app.Widget().State().Hidden, closeWith)
		require.Equal(t, ButtonTheme, app.Focused(), closeWith)

		press(app, "tab")
		require.Equal(t, ButtonAbout, app.Focused(), closeWith)
	}
}
