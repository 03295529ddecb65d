// Package roster filters the NPC and monster rosters by location and hour
// against per-entity schedule windows.
package roster

import (
	"github.com/FelpHendeson/TerminalRPG/engine/entity"
	"github.com/FelpHendeson/TerminalRPG/engine/state"
)

// NPCsAt returns the NPCs present at a location for the given hour, in
// roster-definition order. NPCs without any schedule are always present.
func NPCsAt(defs *state.Defs, locationID string, hour int) []*entity.NPC {
	var out []*entity.NPC
	for _, npc := range defs.NPCs {
		if npc.AvailableAt(locationID, hour) {
			out = append(out, npc)
		}
	}
	return out
}

// MonstersAt returns combat-ready instances of every monster that can spawn
// at the location for the given hour, in roster-definition order. Monsters
// without a location list spawn anywhere; without a spawn window, at any
// hour.
func MonstersAt(defs *state.Defs, locationID string, hour int) []*entity.Monster {
	var out []*entity.Monster
	for _, m := range defs.Monsters {
		if m.SpawnsAt(locationID, hour) {
			out = append(out, m.Instance())
		}
	}
	return out
}
