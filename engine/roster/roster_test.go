package roster

import (
	"testing"

	"github.com/FelpHendeson/TerminalRPG/engine/entity"
	"github.com/FelpHendeson/TerminalRPG/engine/state"
	"github.com/FelpHendeson/TerminalRPG/types"
)

func testDefs() *state.Defs {
	npcs := []*entity.NPC{
		{
			ID: "ferreiro", Name: "Ferreiro",
			Schedules: []types.Schedule{
				{Location: "vila", Window: types.Window{Start: 9, End: 17}},
			},
		},
		{
			ID: "guarda", Name: "Guarda Noturno",
			Schedules: []types.Schedule{
				{Location: "vila", Window: types.Window{Start: 22, End: 5}},
			},
		},
		{ID: "andarilho", Name: "Andarilho"}, // no schedule: always around
	}
	monsters := []*entity.Monster{
		{
			ID: "goblin", Name: "Goblin",
			Stats:     entity.Stats{HP: 20, MaxHP: 20, Atk: 5},
			Locations: []string{"floresta"},
			Spawn:     &types.Window{Start: 20, End: 6},
		},
		{
			ID: "slime", Name: "Slime",
			Stats: entity.Stats{HP: 10, MaxHP: 10, Atk: 2},
		},
	}
	defs := &state.Defs{
		NPCs:      npcs,
		NPCByID:   map[string]*entity.NPC{},
		Monsters:  monsters,
		MonstByID: map[string]*entity.Monster{},
	}
	for _, n := range npcs {
		defs.NPCByID[n.ID] = n
	}
	for _, m := range monsters {
		defs.MonstByID[m.ID] = m
	}
	return defs
}

func ids(npcs []*entity.NPC) []string {
	out := make([]string, len(npcs))
	for i, n := range npcs {
		out[i] = n.ID
	}
	return out
}

func TestNPCsAt_MorningShift(t *testing.T) {
	defs := testDefs()
	got := ids(NPCsAt(defs, "vila", 10))
	want := []string{"ferreiro", "andarilho"}
	if len(got) != len(want) {
		t.Fatalf("NPCs at 10h = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestNPCsAt_NightShiftWraparound(t *testing.T) {
	defs := testDefs()

	for _, hour := range []int{23, 2} {
		got := ids(NPCsAt(defs, "vila", hour))
		if len(got) != 2 || got[0] != "guarda" || got[1] != "andarilho" {
			t.Errorf("NPCs at %dh = %v, want [guarda andarilho]", hour, got)
		}
	}

	got := ids(NPCsAt(defs, "vila", 17))
	// 17 is the smith's exclusive bound and outside the guard's window.
	if len(got) != 1 || got[0] != "andarilho" {
		t.Errorf("NPCs at 17h = %v, want [andarilho]", got)
	}
}

func TestNPCsAt_WrongLocation(t *testing.T) {
	defs := testDefs()
	got := ids(NPCsAt(defs, "floresta", 10))
	if len(got) != 1 || got[0] != "andarilho" {
		t.Errorf("NPCs in the forest = %v, want only the wanderer", got)
	}
}

func TestMonstersAt_NightForest(t *testing.T) {
	defs := testDefs()
	got := MonstersAt(defs, "floresta", 23)
	if len(got) != 2 {
		t.Fatalf("monsters at night = %d, want goblin + slime", len(got))
	}
	if got[0].ID != "goblin" || got[1].ID != "slime" {
		t.Errorf("order = %s, %s", got[0].ID, got[1].ID)
	}
}

func TestMonstersAt_DaytimeExcludesNocturnal(t *testing.T) {
	defs := testDefs()
	got := MonstersAt(defs, "floresta", 10)
	if len(got) != 1 || got[0].ID != "slime" {
		t.Errorf("daytime monsters = %v, want only slime", got)
	}
}

func TestMonstersAt_ReturnsInstances(t *testing.T) {
	defs := testDefs()
	got := MonstersAt(defs, "floresta", 23)
	got[0].ReceiveDamage(100)
	if defs.MonstByID["goblin"].HP != 20 {
		t.Error("fighting a roster instance must not wound the shared definition")
	}

	again := MonstersAt(defs, "floresta", 23)
	if again[0].HP != 20 {
		t.Errorf("fresh instance hp = %d, want full 20", again[0].HP)
	}
}
