package theme

import "charm.land/lipgloss/v2"

// Styles contains all pre-built lipgloss styles for the TUI.
type Styles struct {
	PageTitle      lipgloss.Style
	PageText       lipgloss.Style
	Button         lipgloss.Style
	ButtonFocused  lipgloss.Style
	StatusText     lipgloss.Style
	DialogBorder   lipgloss.Style
	DialogTitle    lipgloss.Style
	Option         lipgloss.Style
	OptionSelected lipgloss.Style
	OptionFocused  lipgloss.Style
	Control        lipgloss.Style
	ControlFocused lipgloss.Style
	Link           lipgloss.Style
	HintKey        lipgloss.Style
	HintDesc       lipgloss.Style
	HintSeparator  lipgloss.Style
}

func (t *Theme) buildStyles() *Styles {
	primary := lipgloss.Color(t.Primary)
	fg := lipgloss.Color(t.FgBase)
	muted := lipgloss.Color(t.FgMuted)
	surface := lipgloss.Color(t.BgSurface)
	bg := lipgloss.Color(t.BgBase)

	return &Styles{
		PageTitle: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true),
		PageText: lipgloss.NewStyle().
			Foreground(fg),
		Button: lipgloss.NewStyle().
			Foreground(fg).
			Background(surface).
			Padding(0, 2),
		ButtonFocused: lipgloss.NewStyle().
			Foreground(bg).
			Background(primary).
			Bold(true).
			Padding(0, 2),
		StatusText: lipgloss.NewStyle().
			Foreground(muted),
		DialogBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Background(bg).
			Padding(1, 3),
		DialogTitle: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true),
		Option: lipgloss.NewStyle().
			Foreground(fg).
			Padding(0, 1),
		OptionSelected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Secondary)).
			Bold(true).
			Padding(0, 1),
		OptionFocused: lipgloss.NewStyle().
			Foreground(bg).
			Background(primary).
			Bold(true).
			Padding(0, 1),
		Control: lipgloss.NewStyle().
			Foreground(fg),
		ControlFocused: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			Underline(true),
		Link: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Secondary)).
			Underline(true),
		HintKey: lipgloss.NewStyle().
			Foreground(primary),
		HintDesc: lipgloss.NewStyle().
			Foreground(muted),
		HintSeparator: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.BgOverlay)),
	}
}
