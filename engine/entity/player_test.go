package entity

import "testing"

func TestNewPlayer_Defaults(t *testing.T) {
	p := NewPlayer("Ayla")
	if p.Name != "Ayla" {
		t.Errorf("name = %q", p.Name)
	}
	if p.ID == "" {
		t.Error("player should get a generated id")
	}
	if p.Level != 1 || p.HP != 100 || p.MaxHP != 100 || p.Atk != 10 || p.Def != 5 || p.Spd != 5 {
		t.Errorf("default stats = %+v", p.Stats)
	}
	if p.XPToLevelUp != 100 {
		t.Errorf("XPToLevelUp = %d, want 100", p.XPToLevelUp)
	}

	anon := NewPlayer("")
	if anon.Name != "Hero" {
		t.Errorf("empty name fallback = %q, want Hero", anon.Name)
	}
	if anon.ID == p.ID {
		t.Error("two players should not share an id")
	}
}

func TestGainXP_NoLevelUp(t *testing.T) {
	p := NewPlayer("x")
	leveled := p.GainXP(99)
	if len(leveled) != 0 {
		t.Errorf("leveled = %v, want none", leveled)
	}
	if p.XP != 99 || p.Level != 1 {
		t.Errorf("xp = %d level = %d", p.XP, p.Level)
	}
}

func TestGainXP_SingleLevelUp(t *testing.T) {
	p := NewPlayer("x")
	p.HP = 30 // wounded before leveling

	leveled := p.GainXP(150)
	if len(leveled) != 1 || leveled[0] != 2 {
		t.Fatalf("leveled = %v, want [2]", leveled)
	}
	if p.XP != 50 {
		t.Errorf("leftover xp = %d, want 50", p.XP)
	}
	if p.XPToLevelUp != 120 {
		t.Errorf("next threshold = %d, want 120 (100 * 1.2)", p.XPToLevelUp)
	}
	if p.MaxHP != 120 || p.Atk != 15 || p.Def != 8 || p.Spd != 6 {
		t.Errorf("stats after level-up = %+v", p.Stats)
	}
	if p.HP != p.MaxHP {
		t.Errorf("hp = %d, want full heal to %d", p.HP, p.MaxHP)
	}
}

func TestGainXP_MultipleLevelsInOneCall(t *testing.T) {
	p := NewPlayer("x")
	// 250 xp: level 2 at 100 (leftover 150), level 3 at 120 (leftover 30).
	leveled := p.GainXP(250)
	if len(leveled) != 2 || leveled[0] != 2 || leveled[1] != 3 {
		t.Fatalf("leveled = %v, want [2 3]", leveled)
	}
	if p.Level != 3 {
		t.Errorf("level = %d, want 3", p.Level)
	}
	if p.XP != 30 {
		t.Errorf("leftover xp = %d, want 30", p.XP)
	}
	if p.XPToLevelUp != 144 {
		t.Errorf("threshold = %d, want 144 (120 * 1.2)", p.XPToLevelUp)
	}
}

func TestGainXP_ThresholdFloored(t *testing.T) {
	p := NewPlayer("x")
	p.XPToLevelUp = 25
	p.GainXP(25)
	// 25 * 1.2 = 30 exactly; 30 * 1.2 = 36; but from 25: floor(25*1.2) = 30.
	if p.XPToLevelUp != 30 {
		t.Errorf("threshold = %d, want 30", p.XPToLevelUp)
	}
	p.XP = 0
	p.XPToLevelUp = 21
	p.GainXP(21)
	if p.XPToLevelUp != 25 {
		t.Errorf("threshold = %d, want floor(21*1.2) = 25", p.XPToLevelUp)
	}
}

func TestInventory_AddRemoveHas(t *testing.T) {
	p := NewPlayer("x")
	p.AddItem("pocao")
	p.AddItem("pocao")
	p.AddItem("espada")

	if !p.HasItem("espada") {
		t.Error("espada should be carried")
	}
	if !p.RemoveItem("pocao") {
		t.Error("removing a carried item should succeed")
	}
	if !p.HasItem("pocao") {
		t.Error("second pocao should remain")
	}
	if p.RemoveItem("escudo") {
		t.Error("removing an absent item should fail")
	}
	if len(p.Inventory) != 2 {
		t.Errorf("inventory = %v", p.Inventory)
	}
}
