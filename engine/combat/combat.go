// Package combat resolves a whole fight in one call: alternating
// subtract-and-compare rounds with the player striking first.
package combat

import "github.com/FelpHendeson/TerminalRPG/engine/entity"

// Outcome summarizes a resolved fight.
type Outcome struct {
	Won          bool
	Rounds       int
	GoldGained   int
	XPGained     int
	LevelsGained []int // levels reached from victory xp, in order
}

// Fight runs the fight to the end and applies loot and experience to the
// player on victory. The monster argument should be a fresh Instance so the
// shared definition is never damaged.
func Fight(p *entity.Player, m *entity.Monster) Outcome {
	var out Outcome
	for p.IsAlive() && m.IsAlive() {
		out.Rounds++
		m.ReceiveDamage(p.Atk)
		if !m.IsAlive() {
			break
		}
		p.ReceiveDamage(m.Atk)
	}

	if !p.IsAlive() {
		return out
	}

	out.Won = true
	out.GoldGained = m.Gold
	out.XPGained = m.XP
	p.Gold += m.Gold
	if m.XP > 0 {
		out.LevelsGained = p.GainXP(m.XP)
	}
	return out
}
