package switcher

import (
	"fmt"
	"slices"

	"github.com/mark3labs/themeswitch/internal/logger"
	"github.com/mark3labs/themeswitch/internal/prefs"
)

// Element ids of the dialog's non-option controls.
const (
	DialogID        = "dialog-theme-selection"
	SaveSelectionID = "save-selection"
	ReadMoreID      = "read-more"
	CloseButtonID   = "btn-close-dialog"
)

// Host is the rendering layer's side of focus management.
type Host interface {
	// Tabbables returns the live, ordered tab sequence inside the dialog.
	Tabbables() []string
	// Focus moves focus to id and reports whether the element exists.
	Focus(id string) bool
	// Focused returns the id of the focused element, or "".
	Focused() string
}

// Notifier receives selection changes.
type Notifier interface {
	SelectionChanged(name string)
}

type nopHost struct{}

func (nopHost) Tabbables() []string  { return nil }
func (nopHost) Focus(id string) bool { return false }
func (nopHost) Focused() string      { return "" }

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(name string)

func (f NotifierFunc) SelectionChanged(name string) { f(name) }

// Opener is the element that asked for the dialog.
type Opener interface {
	ID() string
}

// OpenerID is an Opener identified by a fixed string.
type OpenerID string

func (o OpenerID) ID() string { return string(o) }

// OpenRequest asks the dialog to open on behalf of Opener.
type OpenRequest struct {
	Opener Opener
}

// Pending is returned by Open. The rendering layer hands it back to
// AfterRender once the frame showing the dialog has been committed.
type Pending struct {
	ticket uint64
}

// DialogState is the dialog's open/closed state.
type DialogState struct {
	Hidden        bool
	OpenerID      string
	SaveSelection bool
}

// Action reports what HandleKey or Click did.
type Action int

const (
	ActionNone Action = iota
	ActionHandled
	ActionClosed
	ActionSelected
	ActionReadMore
)

func (a Action) String() string {
	switch a {
	case ActionHandled:
		return "handled"
	case ActionClosed:
		return "closed"
	case ActionSelected:
		return "selected"
	case ActionReadMore:
		return "read-more"
	default:
		return "none"
	}
}

// Config seeds a Widget at attach time.
type Config struct {
	// Options are the option names in order. Empty means DefaultOptions.
	Options []string
	// SaveSelection applies when the store holds no persistence flag.
	SaveSelection bool
	// Trap overrides the sentinel ids. The zero value means DefaultTrap.
	Trap Trap
}

// Widget owns the option registry and dialog state of one theme switch.
// It is not safe for concurrent use; drive it from a single event loop.
type Widget struct {
	reg      *Registry
	state    DialogState
	store    prefs.Store
	notifier Notifier
	host     Host
	trap     Trap
	ticket   uint64
}

// Attach creates a hidden Widget. The persistence flag and the stored
// selection are read from store once, here. A nil host suits headless use:
// focus requests then always fail.
func Attach(cfg Config, store prefs.Store, notifier Notifier, host Host) *Widget {
	save := cfg.SaveSelection
	if v, ok := prefs.Lookup(store, prefs.KeySaveSelection); ok {
		save = v
	}

	var preferred string
	if save {
		preferred, _ = store.Read(prefs.KeySelection)
	}

	trap := cfg.Trap
	if trap == (Trap{}) {
		trap = DefaultTrap()
	}
	if notifier == nil {
		notifier = NotifierFunc(func(string) {})
	}
	if host == nil {
		host = nopHost{}
	}

	w := &Widget{
		reg:      NewRegistry(cfg.Options, preferred),
		state:    DialogState{Hidden: true, SaveSelection: save},
		store:    store,
		notifier: notifier,
		host:     host,
		trap:     trap,
	}

	selected, _ := w.reg.Selected()
	logger.Debug("Theme switch attached: %d options, selected %q, save=%v", w.reg.Len(), selected.Name, save)
	return w
}

// Registry returns the current snapshot.
func (w *Widget) Registry() *Registry { return w.reg }

// State returns a copy of the dialog state.
func (w *Widget) State() DialogState { return w.state }

// Selected returns the name of the selected option.
func (w *Widget) Selected() string {
	o, _ := w.reg.Selected()
	return o.Name
}

// Select makes the option at index the only selected one, remembers it when
// persistence is on and notifies. It panics when index is out of range.
func (w *Widget) Select(index int) {
	w.reg = w.reg.Select(index)
	name := w.reg.options[index].Name

	if w.state.SaveSelection {
		prefs.WriteBool(w.store, prefs.KeySaveSelection, true)
		w.store.Write(prefs.KeySelection, name)
	}

	logger.Debug("Theme selected: %s", name)
	w.notifier.SelectionChanged(name)
}

// SelectName selects the option called name. It returns an error when no
// option has that name.
func (w *Widget) SelectName(name string) error {
	i := w.reg.IndexOf(name)
	if i < 0 {
		return fmt.Errorf("unknown theme %q (available: %v)", name, w.reg.Names())
	}
	w.Select(i)
	return nil
}

// SetSaveSelection turns persistence on or off. On stores the flag and the
// current selection; off removes both.
func (w *Widget) SetSaveSelection(on bool) {
	w.state.SaveSelection = on
	if on {
		prefs.WriteBool(w.store, prefs.KeySaveSelection, true)
		w.store.Write(prefs.KeySelection, w.Selected())
		return
	}
	w.store.Delete(prefs.KeySaveSelection)
	w.store.Delete(prefs.KeySelection)
}

// Tabbables returns the dialog's tab sequence. Only the selected option is
// part of it.
func (w *Widget) Tabbables() []string {
	_, i := w.reg.Selected()
	return []string{w.reg.ID(i), SaveSelectionID, ReadMoreID, CloseButtonID}
}

// Owns reports whether id is an element inside the dialog.
func (w *Widget) Owns(id string) bool {
	switch id {
	case "":
		return false
	case DialogID, SaveSelectionID, ReadMoreID, CloseButtonID, w.trap.Start, w.trap.End:
		return true
	}
	return w.reg.IndexOfID(id) >= 0
}

// Open shows the dialog for req's opener. ok is false when nothing is left
// to do: the opener has no id, or the dialog already holds focus. Otherwise
// the caller must pass p to AfterRender once the dialog is on screen.
func (w *Widget) Open(req OpenRequest) (p Pending, ok bool) {
	if req.Opener == nil || req.Opener.ID() == "" {
		logger.Debug("Ignoring open request without opener id")
		return Pending{}, false
	}

	w.state.OpenerID = req.Opener.ID()
	if !w.state.Hidden && w.Owns(w.host.Focused()) {
		return Pending{}, false
	}

	w.state.Hidden = false
	w.ticket++
	logger.Debug("Theme dialog opened by %s", w.state.OpenerID)
	return Pending{ticket: w.ticket}, true
}

// AfterRender focuses the first tabbable element. It does nothing when the
// dialog was closed or reopened since p was issued.
func (w *Widget) AfterRender(p Pending) bool {
	if w.state.Hidden || p.ticket == 0 || p.ticket != w.ticket {
		return false
	}
	tabbables := w.host.Tabbables()
	if len(tabbables) == 0 {
		return false
	}
	return w.host.Focus(tabbables[0])
}

// Close hides the dialog and returns focus to the opener.
func (w *Widget) Close() {
	if w.state.Hidden {
		return
	}
	w.state.Hidden = true
	w.ticket++

	if w.state.OpenerID == "" {
		logger.Debug("Theme dialog closed without opener")
		return
	}
	if !w.host.Focus(w.state.OpenerID) {
		logger.Debug("Opener %s is gone, focus not restored", w.state.OpenerID)
	}
}

// HandleKey routes a key press while the dialog is open.
func (w *Widget) HandleKey(key string) Action {
	if w.state.Hidden {
		return ActionNone
	}

	switch key {
	case "esc", "escape":
		w.Close()
		return ActionClosed
	case "tab":
		w.cycle(Next)
		return ActionHandled
	case "shift+tab":
		w.cycle(Previous)
		return ActionHandled
	}

	focused := w.host.Focused()
	if i := w.reg.IndexOfID(focused); i >= 0 {
		if dir, ok := DirectionForKey(key); ok {
			next, _ := Roving{IDs: w.reg.ids}.Move(focused, dir)
			w.host.Focus(next)
			return ActionHandled
		}
		if isConfirm(key) {
			w.Select(i)
			return ActionSelected
		}
		return ActionNone
	}

	switch focused {
	case SaveSelectionID:
		if isConfirm(key) {
			w.SetSaveSelection(!w.state.SaveSelection)
			return ActionHandled
		}
	case ReadMoreID:
		if key == "enter" {
			return ActionReadMore
		}
	case CloseButtonID:
		if isConfirm(key) {
			w.Close()
			return ActionClosed
		}
	}
	return ActionNone
}

// Click activates the dialog element with id, as a pointer press would. The
// element is focused first, so focus follows the pointer.
func (w *Widget) Click(id string) Action {
	if w.state.Hidden || !w.Owns(id) {
		return ActionNone
	}

	if i := w.reg.IndexOfID(id); i >= 0 {
		w.host.Focus(id)
		w.Select(i)
		return ActionSelected
	}

	switch id {
	case SaveSelectionID:
		w.host.Focus(id)
		w.SetSaveSelection(!w.state.SaveSelection)
		return ActionHandled
	case ReadMoreID:
		w.host.Focus(id)
		return ActionReadMore
	case CloseButtonID:
		w.Close()
		return ActionClosed
	}
	return ActionNone
}

// cycle moves focus one step along [Start, tabbables..., End]. Landing on a
// sentinel hands focus to the trap.
func (w *Widget) cycle(dir Direction) {
	tabbables := w.host.Tabbables()
	seq := make([]string, 0, len(tabbables)+2)
	seq = append(seq, w.trap.Start)
	seq = append(seq, tabbables...)
	seq = append(seq, w.trap.End)

	pos := w.position(tabbables)
	var target string
	switch {
	case pos < 0 && dir == Next:
		target = seq[1]
	case pos < 0:
		target = seq[len(seq)-2]
	case dir == Next:
		target = seq[pos+2]
	default:
		target = seq[pos]
	}

	if target == w.trap.Start || target == w.trap.End {
		redirected, ok := w.trap.Redirect(target, w.host.Tabbables())
		if !ok {
			return
		}
		target = redirected
	}
	w.host.Focus(target)
}

// position returns the index of the focused element within tabbables. An
// option browsed with the arrow keys counts as the selected option's slot.
func (w *Widget) position(tabbables []string) int {
	focused := w.host.Focused()
	if i := slices.Index(tabbables, focused); i >= 0 {
		return i
	}
	if w.reg.IndexOfID(focused) >= 0 {
		_, sel := w.reg.Selected()
		return slices.Index(tabbables, w.reg.ID(sel))
	}
	return -1
}

func isConfirm(key string) bool {
	return key == "enter" || key == "space" || key == " "
}
