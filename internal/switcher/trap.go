package switcher

// Default sentinel ids placed around the dialog's tab sequence.
const (
	TrapStartID = "trap-start"
	TrapEndID   = "trap-end"
)

// Trap keeps Tab and Shift+Tab inside the dialog. Focus reaching one sentinel
// is sent to the opposite end of the live tab sequence.
type Trap struct {
	Start string
	End   string
}

// DefaultTrap returns a Trap using TrapStartID and TrapEndID.
func DefaultTrap() Trap {
	return Trap{Start: TrapStartID, End: TrapEndID}
}

// Redirect returns where focus goes when sentinel receives it. ok is false
// when sentinel is not one of the trap's sentinels or tabbables is empty.
func (t Trap) Redirect(sentinel string, tabbables []string) (target string, ok bool) {
	if len(tabbables) == 0 {
		return "", false
	}
	switch sentinel {
	case t.Start:
		return tabbables[len(tabbables)-1], true
	case t.End:
		return tabbables[0], true
	}
	return "", false
}
