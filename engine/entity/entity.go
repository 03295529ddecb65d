// Package entity implements the stat model shared by players, NPCs, and
// monsters. Each kind is its own struct embedding Stats; kind-specific data
// lives only on the relevant type.
package entity

// Stats is the attribute block common to every entity kind.
type Stats struct {
	Level        int      `json:"level"`
	HP           int      `json:"hp"`
	MaxHP        int      `json:"maxHp"`
	MP           int      `json:"mp,omitempty"`
	MaxMP        int      `json:"maxMp,omitempty"`
	Atk          int      `json:"atk"`
	Def          int      `json:"def"`
	Spd          int      `json:"spd"`
	Gold         int      `json:"gold"`
	Skills       []string `json:"skills"`
	EffectStatus []string `json:"effectStatus"`
}

// IsAlive reports whether the entity still has hit points.
func (s *Stats) IsAlive() bool {
	return s.HP > 0
}

// ReceiveDamage applies damage reduced by defense. Defense can never reduce
// the effective damage below 1, and hp is floored at 0. Returns the
// effective damage dealt.
func (s *Stats) ReceiveDamage(amount int) int {
	effective := amount - s.Def
	if effective < 1 {
		effective = 1
	}
	s.HP -= effective
	if s.HP < 0 {
		s.HP = 0
	}
	return effective
}

// Heal restores hit points, capped at MaxHP.
func (s *Stats) Heal(amount int) {
	s.HP += amount
	if s.HP > s.MaxHP {
		s.HP = s.MaxHP
	}
}

// ApplyEffect adds a status effect if not already present.
func (s *Stats) ApplyEffect(effect string) {
	if s.HasEffect(effect) {
		return
	}
	s.EffectStatus = append(s.EffectStatus, effect)
}

// RemoveEffect removes a status effect if present.
func (s *Stats) RemoveEffect(effect string) {
	out := s.EffectStatus[:0]
	for _, e := range s.EffectStatus {
		if e != effect {
			out = append(out, e)
		}
	}
	s.EffectStatus = out
}

// HasEffect reports whether a status effect is active.
func (s *Stats) HasEffect(effect string) bool {
	for _, e := range s.EffectStatus {
		if e == effect {
			return true
		}
	}
	return false
}
