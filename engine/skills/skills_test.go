package skills

import (
	"fmt"
	"testing"

	"github.com/FelpHendeson/TerminalRPG/engine/entity"
	"github.com/FelpHendeson/TerminalRPG/engine/state"
	"github.com/FelpHendeson/TerminalRPG/types"
)

func testDefs() *state.Defs {
	catalog := map[string]types.SkillDef{
		"meditar": {ID: "meditar", Name: "Meditar", Type: types.SkillPassive},
		"pele_de_pedra": {
			ID: "pele_de_pedra", Name: "Pele de Pedra", Type: types.SkillPassive,
		},
		"regenerar": {ID: "regenerar", Name: "Regenerar", Type: types.SkillPassive},
	}
	for i := 1; i <= 5; i++ {
		id := fmt.Sprintf("golpe%d", i)
		catalog[id] = types.SkillDef{ID: id, Name: id, Type: types.SkillActive}
	}
	return &state.Defs{Skills: catalog}
}

func TestLearn_CatalogChecked(t *testing.T) {
	defs := testDefs()
	p := entity.NewPlayer("Ayla")

	if Learn(defs, p, "voar") {
		t.Error("learning a skill outside the catalog must fail")
	}
	if !Learn(defs, p, "golpe1") {
		t.Fatal("learning a catalog skill should succeed")
	}
	if !Learn(defs, p, "golpe1") {
		t.Error("re-learning is a benign no-op")
	}
	if len(p.Skills) != 1 {
		t.Errorf("skills = %v, want one entry", p.Skills)
	}
}

func TestEquip_RequiresLearning(t *testing.T) {
	defs := testDefs()
	p := entity.NewPlayer("Ayla")

	if Equip(defs, p, "golpe1") {
		t.Error("equipping an unlearned skill must fail")
	}
	Learn(defs, p, "golpe1")
	if !Equip(defs, p, "golpe1") {
		t.Error("equipping a learned skill should succeed")
	}
}

func TestEquip_ActiveLimitFour(t *testing.T) {
	defs := testDefs()
	p := entity.NewPlayer("Ayla")
	for i := 1; i <= 5; i++ {
		Learn(defs, p, fmt.Sprintf("golpe%d", i))
	}

	for i := 1; i <= 4; i++ {
		if !Equip(defs, p, fmt.Sprintf("golpe%d", i)) {
			t.Fatalf("equipping active %d should succeed", i)
		}
	}
	if Equip(defs, p, "golpe5") {
		t.Error("fifth active should be rejected")
	}
	if len(p.EquippedActives) != MaxActives {
		t.Errorf("actives = %v", p.EquippedActives)
	}
}

func TestEquip_PassiveLimitTwo(t *testing.T) {
	defs := testDefs()
	p := entity.NewPlayer("Ayla")
	for _, id := range []string{"meditar", "pele_de_pedra", "regenerar"} {
		Learn(defs, p, id)
	}

	if !Equip(defs, p, "meditar") || !Equip(defs, p, "pele_de_pedra") {
		t.Fatal("first two passives should equip")
	}
	if Equip(defs, p, "regenerar") {
		t.Error("third passive should be rejected")
	}
	if len(p.EquippedPassives) != MaxPassives {
		t.Errorf("passives = %v", p.EquippedPassives)
	}
}

func TestEquip_ReEquipIdempotent(t *testing.T) {
	defs := testDefs()
	p := entity.NewPlayer("Ayla")
	Learn(defs, p, "golpe1")
	Equip(defs, p, "golpe1")

	if !Equip(defs, p, "golpe1") {
		t.Error("re-equipping an equipped skill reports success")
	}
	if len(p.EquippedActives) != 1 {
		t.Errorf("actives = %v, want a single entry", p.EquippedActives)
	}
}

func TestUnequip_FreesSlot(t *testing.T) {
	defs := testDefs()
	p := entity.NewPlayer("Ayla")
	for i := 1; i <= 5; i++ {
		Learn(defs, p, fmt.Sprintf("golpe%d", i))
	}
	for i := 1; i <= 4; i++ {
		Equip(defs, p, fmt.Sprintf("golpe%d", i))
	}

	if !Unequip(p, "golpe2") {
		t.Fatal("unequipping an equipped skill should succeed")
	}
	if Unequip(p, "golpe2") {
		t.Error("second unequip should fail")
	}
	if !Equip(defs, p, "golpe5") {
		t.Error("freed slot should accept another active")
	}
}
