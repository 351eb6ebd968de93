package theme

// Accent endpoints used by Derive.
const (
	accentA = "#f38ba8"
	accentB = "#89dceb"
)

// NewDark creates the default dark palette.
func NewDark() *Theme {
	return &Theme{
		Name:   "dark",
		IsDark: true,

		Primary:   "#cba6f7",
		Secondary: "#89b4fa",

		BgBase:    "#1e1e2e",
		BgSurface: "#313244",
		BgOverlay: "#6c7086",

		FgMuted:  "#7f849c",
		FgBase:   "#cdd6f4",
		FgBright: "#ffffff",

		Success: "#a6e3a1",
		Warning: "#f9e2af",
		Error:   "#f38ba8",
	}
}

// NewLight creates the light palette.
func NewLight() *Theme {
	return &Theme{
		Name:   "light",
		IsDark: false,

		Primary:   "#8839ef",
		Secondary: "#1e66f5",

		BgBase:    "#eff1f5",
		BgSurface: "#ccd0da",
		BgOverlay: "#9ca0b0",

		FgMuted:  "#8c8fa1",
		FgBase:   "#4c4f69",
		FgBright: "#11111b",

		Success: "#40a02b",
		Warning: "#df8e1d",
		Error:   "#d20f39",
	}
}

// NewCatppuccinMocha creates the Catppuccin Mocha palette.
func NewCatppuccinMocha() *Theme {
	return &Theme{
		Name:   "catppuccin-mocha",
		IsDark: true,

		Primary:   "#cba6f7", // Mauve
		Secondary: "#f5c2e7", // Pink

		BgBase:    "#1e1e2e",
		BgSurface: "#45475a",
		BgOverlay: "#7f849c",

		FgMuted:  "#a6adc8",
		FgBase:   "#cdd6f4",
		FgBright: "#f5e0dc",

		Success: "#a6e3a1",
		Warning: "#fab387",
		Error:   "#eba0ac",
	}
}
