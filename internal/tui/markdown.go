package tui

import (
	"strings"

	"charm.land/glamour/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/mark3labs/themeswitch/internal/tui/theme"
)

// renderMarkdown renders markdown with glamour, matching the current palette's
// brightness. Falls back to plain word wrapping if rendering fails.
func renderMarkdown(content string, width int) string {
	if width > 100 {
		width = 100
	}
	if width < 20 {
		width = 20
	}

	style := "dark"
	if !theme.Current().IsDark {
		style = "light"
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return ansi.Wordwrap(content, width, " ")
	}

	rendered, err := r.Render(content)
	if err != nil {
		return ansi.Wordwrap(content, width, " ")
	}

	return strings.TrimSuffix(rendered, "\n")
}
