package domain

// NoFocus is the focused index when nothing is selected.
const NoFocus = -1

// NavigationState tracks which row of the flattened result list has focus.
// It does not care which source produced the row.
type NavigationState struct {
	Focused int
}

// NewNavigationState returns a state with no focus.
func NewNavigationState() NavigationState {
	return NavigationState{Focused: NoFocus}
}

// Advance moves focus down, wrapping to the first row after the last.
func (n *NavigationState) Advance(length int) {
	if length <= 0 {
		n.Focused = NoFocus
		return
	}
	n.Focused++
	if n.Focused >= length {
		n.Focused = 0
	}
}

// Retreat moves focus up, wrapping to the last row before the first.
// Retreating with no focus lands on the last row.
func (n *NavigationState) Retreat(length int) {
	if length <= 0 {
		n.Focused = NoFocus
		return
	}
	n.Focused--
	if n.Focused < 0 || n.Focused >= length {
		n.Focused = length - 1
	}
}

// SelectFirst focuses the first row of a fresh result set,
// or clears focus when the set is empty.
func (n *NavigationState) SelectFirst(length int) {
	if length > 0 {
		n.Focused = 0
		return
	}
	n.Focused = NoFocus
}

// Reset clears focus.
func (n *NavigationState) Reset() {
	n.Focused = NoFocus
}

// HasFocus reports whether a row is focused.
func (n NavigationState) HasFocus() bool {
	return n.Focused >= 0
}
