package tui

import (
	"strings"

	"charm.land/bubbles/v2/key"

	"github.com/mark3labs/themeswitch/internal/tui/theme"
)

// Standard key representations for consistent hints across the app.
const (
	KeyArrows = "←→↑↓"
	KeyEnter  = "enter"
	KeySpace  = "space"
	KeyEsc    = "esc"
	KeyTab    = "tab"
)

// RenderHint renders a single key-description pair.
// Example: RenderHint("enter", "select") -> "enter select"
func RenderHint(key, desc string) string {
	s := theme.Current().S()
	return s.HintKey.Render(key) + " " + s.HintDesc.Render(desc)
}

// RenderHintBar renders key-description pairs separated by " . ".
// An odd number of arguments renders nothing.
func RenderHintBar(pairs ...string) string {
	if len(pairs) == 0 || len(pairs)%2 != 0 {
		return ""
	}

	sep := " " + theme.Current().S().HintSeparator.Render(".") + " "
	parts := make([]string, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		parts = append(parts, RenderHint(pairs[i], pairs[i+1]))
	}
	return strings.Join(parts, sep)
}

// HintBindings renders the help text of enabled bindings as a hint bar.
func HintBindings(bindings ...key.Binding) string {
	pairs := make([]string, 0, len(bindings)*2)
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		pairs = append(pairs, h.Key, h.Desc)
	}
	return RenderHintBar(pairs...)
}

// HintDialog returns the theme dialog hints.
// "←→↑↓ browse . enter select . tab cycle . esc close"
func HintDialog() string {
	return RenderHintBar(KeyArrows, "browse", KeyEnter, "select", KeyTab, "cycle", KeyEsc, "close")
}

// HintAbout returns hints for the about panel.
func HintAbout() string {
	return RenderHintBar("↑/↓", "scroll", KeyEsc, "back")
}
