package entity

import "github.com/FelpHendeson/TerminalRPG/types"

// NPC is a non-player character definition: shared reference data loaded at
// startup. The player-specific relationship value is NOT stored here — it
// lives in the save flags, keyed by this NPC's id.
type NPC struct {
	ID   string
	Name string
	Stats

	Role      string // merchant, quest_giver, guard, villager...
	Dialogue  []string
	Schedules []types.Schedule
}

// AvailableAt reports whether the NPC is present at the given location and
// hour. An NPC with no schedule at all is always available everywhere.
func (n *NPC) AvailableAt(locationID string, hour int) bool {
	if len(n.Schedules) == 0 {
		return true
	}
	for _, s := range n.Schedules {
		if s.Location == locationID && s.Contains(hour) {
			return true
		}
	}
	return false
}
