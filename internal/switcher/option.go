// Package switcher is the focus and selection state machine behind the theme
// switch dialog.
//
// Nothing here draws. Transitions update state and ask a Host to move focus;
// the rendering layer decides what that looks like on screen.
package switcher

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/gosimple/slug"
)

// DefaultOptions is used when no option names are configured.
var DefaultOptions = []string{"auto", "light", "dark"}

// Option is one entry of the radio group.
type Option struct {
	Name     string
	Selected bool
}

// Registry is an immutable snapshot of the ordered options. Select returns a
// new snapshot; existing snapshots never change.
type Registry struct {
	options  []Option
	ids      []string
	selected int
}

// NewRegistry builds a registry from names. Blank and repeated names are
// dropped; an empty result falls back to DefaultOptions. The option named
// preferred is selected when it exists, otherwise the first option.
func NewRegistry(names []string, preferred string) *Registry {
	cleaned := cleanNames(names)
	if len(cleaned) == 0 {
		cleaned = slices.Clone(DefaultOptions)
	}

	selected := slices.Index(cleaned, preferred)
	if selected < 0 {
		selected = 0
	}

	options := make([]Option, len(cleaned))
	for i, name := range cleaned {
		options[i] = Option{Name: name, Selected: i == selected}
	}

	return &Registry{
		options:  options,
		ids:      elementIDs(cleaned),
		selected: selected,
	}
}

func cleanNames(names []string) []string {
	out := make([]string, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}

// elementIDs derives a stable focus id for every option. Names that slug to
// nothing (emoji, punctuation) use their position instead. A taken id gets
// a numeric suffix, counting up from the position until it is free.
func elementIDs(names []string) []string {
	ids := make([]string, len(names))
	used := make(map[string]bool, len(names))
	for i, name := range names {
		base := slug.Make(name)
		if base == "" {
			base = strconv.Itoa(i)
		}
		id := "theme-" + base
		for n := i; used[id]; n++ {
			id = fmt.Sprintf("theme-%s-%d", base, n)
		}
		used[id] = true
		ids[i] = id
	}
	return ids
}

// Len returns the number of options.
func (r *Registry) Len() int { return len(r.options) }

// Options returns a copy of the options in order.
func (r *Registry) Options() []Option { return slices.Clone(r.options) }

// Names returns the option names in order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.options))
	for i, o := range r.options {
		names[i] = o.Name
	}
	return names
}

// Selected returns the selected option and its index.
func (r *Registry) Selected() (Option, int) {
	return r.options[r.selected], r.selected
}

// IDs returns the element id of each option, in order.
func (r *Registry) IDs() []string { return slices.Clone(r.ids) }

// ID returns the element id of the option at index.
func (r *Registry) ID(index int) string { return r.ids[index] }

// IndexOfID returns the index of the option with element id, or -1.
func (r *Registry) IndexOfID(id string) int { return slices.Index(r.ids, id) }

// IndexOf returns the index of the option called name, or -1.
func (r *Registry) IndexOf(name string) int {
	return slices.IndexFunc(r.options, func(o Option) bool { return o.Name == name })
}

// Select returns a snapshot in which only the option at index is selected.
// It panics when index is out of range.
func (r *Registry) Select(index int) *Registry {
	if index < 0 || index >= len(r.options) {
		panic(fmt.Sprintf("switcher: select index %d out of range [0, %d)", index, len(r.options)))
	}

	options := make([]Option, len(r.options))
	for i, o := range r.options {
		options[i] = Option{Name: o.Name, Selected: i == index}
	}

	return &Registry{
		options:  options,
		ids:      r.ids,
		selected: index,
	}
}
