package tui

import (
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/mark3labs/themeswitch/internal/tui/theme"
)

const aboutText = `# Themes

The theme switch changes the colors of this terminal session.

- **auto** follows the terminal background
- **light** and **dark** force one palette
- any other name gets a palette derived from the name

Tick **Remember selection** to keep your choice for the next session.
Unticking it forgets the stored theme right away.

Use the arrow keys to browse the themes, **enter** to pick one and
**esc** to close the dialog.`

// AboutPanel shows the help text behind the dialog's "What is this?" link.
type AboutPanel struct {
	viewport viewport.Model
	visible  bool
	returnTo string
	width    int
	height   int
}

// NewAboutPanel creates a hidden panel.
func NewAboutPanel() *AboutPanel {
	vp := viewport.New(
		viewport.WithWidth(60),
		viewport.WithHeight(14),
	)
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	return &AboutPanel{viewport: vp, width: 60, height: 14}
}

// Show displays the panel. returnTo is the element focused again on close.
func (p *AboutPanel) Show(returnTo string) {
	p.visible = true
	p.returnTo = returnTo
	p.viewport.SetContent(renderMarkdown(aboutText, p.width))
	p.viewport.GotoTop()
}

// Hide closes the panel and returns the element to refocus.
func (p *AboutPanel) Hide() string {
	p.visible = false
	return p.returnTo
}

// IsVisible returns whether the panel is showing.
func (p *AboutPanel) IsVisible() bool {
	return p.visible
}

// SetSize fits the panel into a screen of width x height.
func (p *AboutPanel) SetSize(width, height int) {
	p.width = min(max(width-10, 20), 80)
	p.height = min(max(height-8, 5), 20)
	p.viewport.SetWidth(p.width)
	p.viewport.SetHeight(p.height)
	if p.visible {
		p.viewport.SetContent(renderMarkdown(aboutText, p.width))
	}
}

// Update scrolls the viewport. It reports true when the panel wants to close.
func (p *AboutPanel) Update(msg tea.Msg) (closed bool, cmd tea.Cmd) {
	if !p.visible {
		return false, nil
	}
	if k, ok := msg.(tea.KeyPressMsg); ok {
		switch k.String() {
		case "esc", "escape", "q", "enter":
			return true, nil
		}
	}
	p.viewport, cmd = p.viewport.Update(msg)
	return false, cmd
}

// Draw renders the panel centered in area.
func (p *AboutPanel) Draw(scr uv.Screen, area uv.Rectangle) {
	if !p.visible {
		return
	}

	s := theme.Current().S()
	var b strings.Builder
	b.WriteString(p.viewport.View())
	b.WriteString("\n\n")
	b.WriteString(HintAbout())

	box := s.DialogBorder.Render(b.String())
	uv.NewStyledString(box).Draw(scr, centered(area, lipgloss.Width(box), lipgloss.Height(box)))
}
