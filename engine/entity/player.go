package entity

import "github.com/google/uuid"

// Growth applied on every level-up, matching the long-standing balance
// numbers: threshold grows by 20% (floored), flat stat bumps, full heal.
const (
	levelUpHPGain  = 20
	levelUpAtkGain = 5
	levelUpDefGain = 3
	levelUpSpdGain = 1
)

// Player is the player character: common stats plus experience, inventory,
// fame, and equipped skills.
type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Stats

	XP               int      `json:"xp"`
	XPToLevelUp      int      `json:"xpToLevelUp"`
	Inventory        []string `json:"inventory"`
	Fame             int      `json:"fame"`
	EquippedActives  []string `json:"equippedActives"`
	EquippedPassives []string `json:"equippedPassives"`
}

// NewPlayer creates a fresh level-1 player with default stats.
func NewPlayer(name string) *Player {
	if name == "" {
		name = "Hero"
	}
	return &Player{
		ID:   uuid.NewString(),
		Name: name,
		Stats: Stats{
			Level:        1,
			HP:           100,
			MaxHP:        100,
			MP:           50,
			MaxMP:        50,
			Atk:          10,
			Def:          5,
			Spd:          5,
			Skills:       []string{},
			EffectStatus: []string{},
		},
		XPToLevelUp:      100,
		Inventory:        []string{},
		EquippedActives:  []string{},
		EquippedPassives: []string{},
	}
}

// GainXP adds experience and applies as many sequential level-ups as the
// total allows in one call. Returns the ordered list of levels reached
// (empty if no level-up triggered).
func (p *Player) GainXP(amount int) []int {
	p.XP += amount
	var leveled []int
	for p.XP >= p.XPToLevelUp {
		p.levelUp()
		leveled = append(leveled, p.Level)
	}
	return leveled
}

// levelUp consumes the current threshold, raises stats, and fully restores
// hp. The next threshold is 20% larger, floored.
func (p *Player) levelUp() {
	p.Level++
	p.XP -= p.XPToLevelUp
	p.XPToLevelUp = p.XPToLevelUp * 12 / 10
	p.MaxHP += levelUpHPGain
	p.Atk += levelUpAtkGain
	p.Def += levelUpDefGain
	p.Spd += levelUpSpdGain
	p.HP = p.MaxHP
}

// AddItem appends an item to the inventory.
func (p *Player) AddItem(item string) {
	p.Inventory = append(p.Inventory, item)
}

// RemoveItem removes the first matching item from the inventory.
// Returns false if the player does not carry it.
func (p *Player) RemoveItem(item string) bool {
	for i, it := range p.Inventory {
		if it == item {
			p.Inventory = append(p.Inventory[:i], p.Inventory[i+1:]...)
			return true
		}
	}
	return false
}

// HasItem reports whether the player carries the given item.
func (p *Player) HasItem(item string) bool {
	for _, it := range p.Inventory {
		if it == item {
			return true
		}
	}
	return false
}
