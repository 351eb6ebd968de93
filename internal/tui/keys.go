package tui

import "charm.land/bubbles/v2/key"

// pageKeyMap holds the bindings active while the dialog is closed.
type pageKeyMap struct {
	Next      key.Binding
	Prev      key.Binding
	Activate  key.Binding
	Themes    key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func defaultPageKeys() pageKeyMap {
	return pageKeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp(KeyTab, "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("shift+tab", "prev"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter", "space", " "),
			key.WithHelp(KeyEnter, "activate"),
		),
		Themes: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "themes"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp lists the bindings shown in the page footer.
func (k pageKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Activate, k.Themes, k.Quit}
}
