package switcher

// Direction is the way a directional key moves focus.
type Direction int

const (
	Previous Direction = iota
	Next
)

// Advance returns the index that receives focus when moving from current in
// dir, wrapping between 0 and last.
func Advance(current, last int, dir Direction) int {
	switch dir {
	case Previous:
		if current <= 0 {
			return last
		}
		return current - 1
	default:
		if current >= last {
			return 0
		}
		return current + 1
	}
}

// DirectionForKey maps a key name to a direction. ok is false for keys the
// radio group does not handle.
func DirectionForKey(key string) (dir Direction, ok bool) {
	switch key {
	case "left", "up", "h", "k":
		return Previous, true
	case "right", "down", "l", "j":
		return Next, true
	}
	return 0, false
}

// Roving moves keyboard focus among a fixed, ordered set of element ids.
type Roving struct {
	IDs []string
}

// Move returns the id that follows current in dir. ok is false when current
// is not one of the ids.
func (r Roving) Move(current string, dir Direction) (next string, ok bool) {
	for i, id := range r.IDs {
		if id == current {
			return r.IDs[Advance(i, len(r.IDs)-1, dir)], true
		}
	}
	return "", false
}
