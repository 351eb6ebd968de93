package tui

import (
	"slices"
	"strings"

	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/mark3labs/themeswitch/internal/tui/theme"
)

// Page button ids.
const (
	ButtonTheme = "btn-theme"
	ButtonAbout = "btn-about"
	ButtonQuit  = "btn-quit"
)

// Button is a focusable control on the host page.
type Button struct {
	ID    string
	Label string
}

// Page is the screen behind the dialog: a title, a row of buttons and a
// status line.
type Page struct {
	buttons []Button
	regions []hitRegion
}

// NewPage creates the default page.
func NewPage() *Page {
	return &Page{
		buttons: []Button{
			{ID: ButtonTheme, Label: "Theme"},
			{ID: ButtonAbout, Label: "About"},
			{ID: ButtonQuit, Label: "Quit"},
		},
	}
}

// Has reports whether id is one of the page's buttons.
func (p *Page) Has(id string) bool {
	return slices.ContainsFunc(p.buttons, func(b Button) bool { return b.ID == id })
}

// First returns the id of the first button.
func (p *Page) First() string {
	return p.buttons[0].ID
}

// Next returns the button after (or before, when step is negative) current,
// wrapping around. An unknown current starts from the first button.
func (p *Page) Next(current string, step int) string {
	i := slices.IndexFunc(p.buttons, func(b Button) bool { return b.ID == current })
	if i < 0 {
		return p.First()
	}
	n := len(p.buttons)
	return p.buttons[((i+step)%n+n)%n].ID
}

// HitTest returns the id of the button drawn at screen cell (x, y), or "".
func (p *Page) HitTest(x, y int) string {
	pos := uv.Pos(x, y)
	for _, r := range p.regions {
		if pos.In(r.rect) {
			return r.id
		}
	}
	return ""
}

// Draw renders the page into area and records where its buttons landed.
func (p *Page) Draw(scr uv.Screen, area uv.Rectangle, focused, selected, status, hints string) {
	s := theme.Current().S()

	const gap = "  "
	pad := lipgloss.NewStyle().Padding(1, 2)

	header := []string{
		s.PageTitle.Render("themeswitch"),
		"",
		s.PageText.Render("Pick a theme for this terminal. Press t or activate Theme to open the switcher."),
		"",
	}

	x := area.Min.X + pad.GetPaddingLeft()
	y := area.Min.Y + pad.GetPaddingTop() + lipgloss.Height(strings.Join(header, "\n"))
	p.regions = p.regions[:0]
	buttons := make([]string, len(p.buttons))
	for i, b := range p.buttons {
		style := s.Button
		if b.ID == focused {
			style = s.ButtonFocused
		}
		buttons[i] = style.Render(b.Label)
		w := lipgloss.Width(buttons[i])
		p.regions = append(p.regions, hitRegion{id: b.ID, rect: uv.Rect(x, y, w, 1)})
		x += w + len(gap)
	}

	lines := append(header,
		lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(buttons, gap)),
		"",
		s.PageText.Render("Current theme: ") + s.DialogTitle.Render(selected),
		"",
		renderPreview(theme.Current()),
	)
	if status != "" {
		lines = append(lines, s.StatusText.Render(status))
	}

	content := pad.Render(strings.Join(lines, "\n"))
	uv.NewStyledString(content).Draw(scr, area)

	if hints != "" && area.Dy() > 0 {
		footer := uv.Rectangle{
			Min: uv.Position{X: area.Min.X + 2, Y: area.Max.Y - 1},
			Max: uv.Position{X: area.Max.X, Y: area.Max.Y},
		}
		uv.NewStyledString(hints).Draw(scr, footer)
	}
}
