package tui

import (
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/mark3labs/themeswitch/internal/switcher"
	"github.com/mark3labs/themeswitch/internal/tui/theme"
)

// ThemeDialog draws the theme switch widget as a centered modal. It holds no
// state of its own beyond the last drawn area and where its controls landed.
type ThemeDialog struct {
	title      string
	dialogArea uv.Rectangle
	regions    []hitRegion
}

// hitRegion is where a clickable element was drawn. Dialog regions are
// relative to the box; page regions are screen cells.
type hitRegion struct {
	id   string
	rect uv.Rectangle
}

type block struct {
	id   string
	view string
}

// NewThemeDialog creates the dialog renderer.
func NewThemeDialog() *ThemeDialog {
	return &ThemeDialog{title: "Choose a theme"}
}

// Area returns where the dialog was last drawn.
func (d *ThemeDialog) Area() uv.Rectangle {
	return d.dialogArea
}

// Render returns the dialog box for w with focused highlighted, and records
// where each control sits inside it.
func (d *ThemeDialog) Render(w *switcher.Widget, focused string) string {
	s := theme.Current().S()
	reg := w.Registry()

	blocks := []block{{view: s.DialogTitle.Render(d.title)}, {}}
	for i, o := range reg.Options() {
		mark := "( )"
		style := s.Option
		if o.Selected {
			mark = "(•)"
			style = s.OptionSelected
		}
		if reg.ID(i) == focused {
			style = s.OptionFocused
		}
		blocks = append(blocks, block{id: reg.ID(i), view: style.Render(mark + " " + o.Name)})
	}

	check := "[ ]"
	if w.State().SaveSelection {
		check = "[x]"
	}

	blocks = append(blocks,
		block{},
		block{id: switcher.SaveSelectionID, view: controlStyle(focused, switcher.SaveSelectionID).Render(check + " Remember selection")},
		block{id: switcher.ReadMoreID, view: linkStyle(focused).Render("What is this?")},
		block{},
		block{id: switcher.CloseButtonID, view: buttonStyle(focused).Render("Close")},
		block{},
		block{view: HintDialog()},
	)

	top := s.DialogBorder.GetBorderTopSize() + s.DialogBorder.GetPaddingTop()
	left := s.DialogBorder.GetBorderLeftSize() + s.DialogBorder.GetPaddingLeft()

	d.regions = d.regions[:0]
	views := make([]string, len(blocks))
	y := top
	for i, b := range blocks {
		views[i] = b.view
		h := lipgloss.Height(b.view)
		if b.id != "" {
			d.regions = append(d.regions, hitRegion{id: b.id, rect: uv.Rect(left, y, lipgloss.Width(b.view), h)})
		}
		y += h
	}

	return s.DialogBorder.Render(lipgloss.JoinVertical(lipgloss.Left, views...))
}

// HitTest returns the id of the control drawn at screen cell (x, y), or ""
// when the cell holds none.
func (d *ThemeDialog) HitTest(x, y int) string {
	p := uv.Pos(x-d.dialogArea.Min.X, y-d.dialogArea.Min.Y)
	for _, r := range d.regions {
		if p.In(r.rect) {
			return r.id
		}
	}
	return ""
}

// Draw renders the dialog centered in area.
func (d *ThemeDialog) Draw(scr uv.Screen, area uv.Rectangle, w *switcher.Widget, focused string) {
	if w.State().Hidden {
		return
	}

	box := d.Render(w, focused)
	d.dialogArea = centered(area, lipgloss.Width(box), lipgloss.Height(box))
	uv.NewStyledString(box).Draw(scr, d.dialogArea)
}

func controlStyle(focused, id string) lipgloss.Style {
	s := theme.Current().S()
	if focused == id {
		return s.ControlFocused
	}
	return s.Control
}

func linkStyle(focused string) lipgloss.Style {
	s := theme.Current().S()
	if focused == switcher.ReadMoreID {
		return s.ControlFocused
	}
	return s.Link
}

func buttonStyle(focused string) lipgloss.Style {
	s := theme.Current().S()
	if focused == switcher.CloseButtonID {
		return s.ButtonFocused
	}
	return s.Button
}

// centered returns a w x h rectangle centered in area, clamped to its origin.
func centered(area uv.Rectangle, w, h int) uv.Rectangle {
	x := max((area.Dx()-w)/2, 0)
	y := max((area.Dy()-h)/2, 0)
	return uv.Rectangle{
		Min: uv.Position{X: area.Min.X + x, Y: area.Min.Y + y},
		Max: uv.Position{X: area.Min.X + x + w, Y: area.Min.Y + y + h},
	}
}
