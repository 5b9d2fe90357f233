// Package counter implements the bounded counter widget state.
package counter

// DefaultLimit is the value at which the limit notice appears.
const DefaultLimit = 10

// LimitMessage is shown while the value is at or above the limit.
const LimitMessage = "You have reached your limit."

// State holds the counter value and its warning threshold.
// The zero value is a counter at 0 with a limit of 0, so prefer New.
type State struct {
	Value int
	Limit int
}

// New returns a counter at zero with the given limit.
// A non-positive limit falls back to DefaultLimit.
func New(limit int) State {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return State{Limit: limit}
}

// Increment adds one. There is no upper bound; the limit only drives the notice.
func (s *State) Increment() {
	s.Value++
}

// Decrement subtracts one, clamped at zero.
func (s *State) Decrement() {
	if s.Value > 0 {
		s.Value--
		return
	}
	s.Value = 0
}

// CanDecrement reports whether the decrease control is operable.
func (s State) CanDecrement() bool {
	return s.Value > 0
}

// AtLimit reports whether the limit notice should be visible.
func (s State) AtLimit() bool {
	return s.Value >= s.Limit
}
