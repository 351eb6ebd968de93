package tui

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/mark3labs/themeswitch/internal/config"
	"github.com/mark3labs/themeswitch/internal/prefs"
	"github.com/mark3labs/themeswitch/internal/switcher"
)

func TestThemeDialog_Render(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, &config.Config{Options: []string{"🐢", "🦕", "🐸"}, SaveSelection: true}, prefs.NewMemoryStore())
	out := ansi.Strip(NewThemeDialog().Render(app.Widget(), ""))

	require.Contains(t, out, "Choose a theme")
	require.Contains(t, out, "(•) 🐢")
	require.Contains(t, out, "( ) 🦕")
	require.Contains(t, out, "[x] Remember selection")
	require.Contains(t, out, "What is this?")
	require.Contains(t, out, "Close")
}

func TestThemeDialog_RenderAfterSelect(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, &config.Config{SaveSelection: false}, prefs.NewMemoryStore())
	app.Widget().Select(2)
	out := ansi.Strip(NewThemeDialog().Render(app.Widget(), switcher.CloseButtonID))

	require.Contains(t, out, "( ) auto")
	require.Contains(t, out, "(•) dark")
	require.Contains(t, out, "[ ] Remember selection")
}

func TestPage_Next(t *testing.T) {
	t.Parallel()

	p := NewPage()
	require.Equal(t, ButtonAbout, p.Next(ButtonTheme, 1))
	require.Equal(t, ButtonTheme, p.Next(ButtonQuit, 1))
	require.Equal(t, ButtonQuit, p.Next(ButtonTheme, -1))
	require.Equal(t, ButtonTheme, p.Next("missing", 1))
	require.True(t, p.Has(ButtonQuit))
	require.False(t, p.Has(switcher.CloseButtonID))
}

func TestRenderHintBar(t *testing.T) {
	t.Parallel()

	require.Empty(t, RenderHintBar("odd"))
	out := ansi.Strip(RenderHintBar("enter", "select", "esc", "close"))
	require.Equal(t, "enter select . esc close", out)
}
