package entity

import "github.com/FelpHendeson/TerminalRPG/types"

// Monster is a monster definition: shared reference data describing where
// and when the monster spawns and what defeating it yields.
type Monster struct {
	ID   string
	Name string
	Stats

	XP        int           // experience yield on defeat
	Locations []string      // nil = can appear anywhere
	Spawn     *types.Window // nil = any hour
}

// SpawnsAt reports whether the monster can appear at the given location and
// hour. No location list means globally available; no spawn window means
// any hour.
func (m *Monster) SpawnsAt(locationID string, hour int) bool {
	if len(m.Locations) > 0 {
		found := false
		for _, loc := range m.Locations {
			if loc == locationID {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if m.Spawn == nil {
		return true
	}
	return m.Spawn.Contains(hour)
}

// Instance returns a fresh combat-ready copy with full hit points, leaving
// the shared definition untouched.
func (m *Monster) Instance() *Monster {
	inst := *m
	inst.HP = inst.MaxHP
	inst.Skills = append([]string(nil), m.Skills...)
	inst.EffectStatus = []string{}
	return &inst
}
