// Package theme holds the color palettes a theme switch selection maps to.
package theme

import (
	"hash/fnv"
	"image/color"
	"sort"
	"sync"

	"charm.land/lipgloss/v2"
)

// Auto resolves to Light or Dark depending on the terminal background.
const Auto = "auto"

// Theme defines the color palette for the TUI.
type Theme struct {
	Name   string
	IsDark bool

	Primary   string
	Secondary string

	BgBase    string
	BgSurface string
	BgOverlay string

	FgMuted  string
	FgBase   string
	FgBright string

	Success string
	Warning string
	Error   string

	styles     *Styles
	stylesOnce sync.Once
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	t.stylesOnce.Do(func() {
		t.styles = t.buildStyles()
	})
	return t.styles
}

var (
	mu       sync.RWMutex
	registry = map[string]func() *Theme{
		"light":            NewLight,
		"dark":             NewDark,
		"catppuccin-mocha": NewCatppuccinMocha,
	}
	current      = NewDark()
	darkTerminal = true
)

// Register adds a named palette constructor, replacing any existing one.
func Register(name string, fn func() *Theme) {
	mu.Lock()
	defer mu.Unlock()
	registry[name] = fn
}

// Names returns the registered palette names, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ForName returns the palette for an option name. Auto follows the terminal
// background; names without a registered palette get one derived from the
// name, so every option looks different.
func ForName(name string) *Theme {
	mu.RLock()
	fn, ok := registry[name]
	dark := darkTerminal
	mu.RUnlock()

	switch {
	case name == Auto && dark:
		t := NewDark()
		t.Name = Auto
		return t
	case name == Auto:
		t := NewLight()
		t.Name = Auto
		return t
	case ok:
		return fn()
	}
	return Derive(name)
}

// Current returns the palette in use.
func Current() *Theme {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Apply makes the palette for name current and returns it.
func Apply(name string) *Theme {
	t := ForName(name)
	mu.Lock()
	current = t
	mu.Unlock()
	return t
}

// SetDarkTerminal records the detected terminal background for Auto. The
// current palette is rebuilt when it is Auto.
func SetDarkTerminal(dark bool) {
	mu.Lock()
	darkTerminal = dark
	name := current.Name
	mu.Unlock()

	if name == Auto {
		Apply(Auto)
	}
}

// Derive builds a palette for an arbitrary name by tinting the dark palette
// with an accent picked from the name's hash.
func Derive(name string) *Theme {
	h := fnv.New32a()
	_, _ = h.Write([]byte(name))
	pos := float64(h.Sum32()%1000) / 1000

	t := NewDark()
	t.Name = name
	t.Primary = InterpolateColor(accentA, accentB, pos)
	t.Secondary = InterpolateColor(accentB, accentA, pos)
	t.BgSurface = InterpolateColor(t.BgBase, t.Primary, 0.12)
	return t
}

// HexToColor converts a hex string to a color for lipgloss and tea.View.
func HexToColor(hex string) color.Color {
	return lipgloss.Color(hex)
}
