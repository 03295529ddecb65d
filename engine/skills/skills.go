// Package skills manages the player's learned and equipped skills against
// the skill catalog.
package skills

import (
	"github.com/FelpHendeson/TerminalRPG/engine/entity"
	"github.com/FelpHendeson/TerminalRPG/engine/state"
	"github.com/FelpHendeson/TerminalRPG/types"
)

// Equip limits.
const (
	MaxActives  = 4
	MaxPassives = 2
)

// Learn adds a skill to the player's known list. Unknown catalog ids are
// rejected; re-learning is a no-op.
func Learn(defs *state.Defs, p *entity.Player, skillID string) bool {
	if _, ok := defs.Skills[skillID]; !ok {
		return false
	}
	for _, id := range p.Skills {
		if id == skillID {
			return true
		}
	}
	p.Skills = append(p.Skills, skillID)
	return true
}

// Equip slots a learned skill, honoring the active/passive limits.
// Returns false when the skill is unknown, unlearned, or the slots are full.
func Equip(defs *state.Defs, p *entity.Player, skillID string) bool {
	def, ok := defs.Skills[skillID]
	if !ok {
		return false
	}
	if !knows(p, skillID) {
		return false
	}
	if def.Type == types.SkillActive {
		if contains(p.EquippedActives, skillID) {
			return true
		}
		if len(p.EquippedActives) >= MaxActives {
			return false
		}
		p.EquippedActives = append(p.EquippedActives, skillID)
		return true
	}
	if contains(p.EquippedPassives, skillID) {
		return true
	}
	if len(p.EquippedPassives) >= MaxPassives {
		return false
	}
	p.EquippedPassives = append(p.EquippedPassives, skillID)
	return true
}

// Unequip removes a skill from whichever slot list holds it. Returns false
// when the skill was not equipped.
func Unequip(p *entity.Player, skillID string) bool {
	if removed, ok := remove(p.EquippedActives, skillID); ok {
		p.EquippedActives = removed
		return true
	}
	if removed, ok := remove(p.EquippedPassives, skillID); ok {
		p.EquippedPassives = removed
		return true
	}
	return false
}

func remove(ids []string, id string) ([]string, bool) {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...), true
		}
	}
	return ids, false
}

func knows(p *entity.Player, skillID string) bool {
	return contains(p.Skills, skillID)
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
