// Package story advances the branching story event graph recorded in the
// save flags.
package story

import (
	"github.com/FelpHendeson/TerminalRPG/engine/state"
	"github.com/FelpHendeson/TerminalRPG/types"
)

// Current returns the story event the player is on. Returns (zero, false)
// when the story has ended or the id no longer resolves.
func Current(defs *state.Defs, st *state.State) (types.StoryEvent, bool) {
	id := st.Flags.StoryID
	if id == "" {
		id = defs.StoryRoot
	}
	if id == "" || id == types.StoryEnd {
		return types.StoryEvent{}, false
	}
	evt, ok := defs.Story[id]
	return evt, ok
}

// Advance moves the story forward. For branching events choice selects the
// branch (out-of-range picks nothing and ends the story); for linear events
// choice is ignored. A missing next id ends the story.
func Advance(defs *state.Defs, st *state.State, choice int) {
	evt, ok := Current(defs, st)
	if !ok {
		return
	}
	next := evt.Next
	if len(evt.Choices) > 0 {
		next = ""
		if choice >= 0 && choice < len(evt.Choices) {
			next = evt.Choices[choice].Next
		}
	}
	if next == "" {
		next = types.StoryEnd
	}
	st.Flags.StoryID = next
}

// Finished reports whether the story has reached its terminal id.
func Finished(defs *state.Defs, st *state.State) bool {
	_, ok := Current(defs, st)
	return !ok
}
