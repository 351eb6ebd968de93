package tui

import (
	"bytes"
	"strings"

	chroma "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/mark3labs/themeswitch/internal/tui/theme"
)

// previewSource is the snippet highlighted under the current theme.
const previewSource = `themes := []string{"auto", "light", "dark"}
for i, name := range themes {
	fmt.Printf("%d: %s\n", i, name)
}`

// chromaStyles maps palettes to the chroma style closest to them.
var chromaStyles = map[string]string{
	"light":            "github",
	"dark":             "monokai",
	"catppuccin-mocha": "catppuccin-mocha",
}

// chromaStyleFor picks a highlighting style for t. Unknown palettes fall
// back on their brightness.
func chromaStyleFor(t *theme.Theme) string {
	if name, ok := chromaStyles[t.Name]; ok {
		return name
	}
	if t.IsDark {
		return "monokai"
	}
	return "github"
}

// renderPreview highlights previewSource with the style matching t, with every
// token background set to the theme's surface color. Returns the plain source
// when highlighting fails.
func renderPreview(t *theme.Theme) string {
	formatter := formatters.Get("terminal16m")
	if formatter == nil {
		formatter = formatters.Get("terminal256")
	}
	if formatter == nil {
		return previewSource
	}

	base := styles.Get(chromaStyleFor(t))
	if base == nil {
		base = styles.Fallback
	}

	style := base
	if bg := chroma.ParseColour(t.BgSurface); bg.IsSet() {
		if built, err := base.Builder().Transform(func(entry chroma.StyleEntry) chroma.StyleEntry {
			entry.Background = bg
			return entry
		}).Build(); err == nil {
			style = built
		}
	}

	lexer := lexers.Get("go")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	iterator, err := lexer.Tokenise(nil, previewSource)
	if err != nil {
		return previewSource
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return previewSource
	}
	return strings.TrimRight(buf.String(), "\n")
}
