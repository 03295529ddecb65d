package engine

import (
	"testing"

	"github.com/FelpHendeson/TerminalRPG/engine/entity"
	"github.com/FelpHendeson/TerminalRPG/engine/save"
	"github.com/FelpHendeson/TerminalRPG/engine/state"
	"github.com/FelpHendeson/TerminalRPG/types"
)

// testDefs is a small but complete game: one world branch down to a village
// with two locals, a scheduled NPC, a nocturnal monster, and a kill quest.
func testDefs() *state.Defs {
	npc := &entity.NPC{
		ID: "ferreiro", Name: "Ferreiro",
		Dialogue: []string{"Bons ventos.", "Precisa de algo?"},
		Schedules: []types.Schedule{
			{Location: "vila_inicial", Window: types.Window{Start: 8, End: 18}},
		},
	}
	goblin := &entity.Monster{
		ID: "goblin", Name: "Goblin",
		Stats:     entity.Stats{HP: 20, MaxHP: 20, Atk: 5, Def: 2, Gold: 8},
		XP:        12,
		Locations: []string{"floresta"},
	}
	defs := &state.Defs{
		Game: types.GameDef{Title: "Teste", Start: "vila_inicial"},
		Worlds: []types.TreeNode{{
			ID: "aethel", Name: "Aethel",
			Children: []types.TreeNode{{
				ID: "norvand", Children: []types.TreeNode{{
					ID: "imperio", Children: []types.TreeNode{{
						ID: "reino", Children: []types.TreeNode{{
							ID: "dominio", Children: []types.TreeNode{{
								ID: "capital", Children: []types.TreeNode{{
									ID: "vila_inicial", Name: "Vila Inicial",
									Children: []types.TreeNode{
										{ID: "praca", Name: "Praça"},
										{ID: "floresta", Name: "Floresta"},
									},
								}},
							}},
						}},
					}},
				}},
			}},
		}},
		NPCs:      []*entity.NPC{npc},
		NPCByID:   map[string]*entity.NPC{"ferreiro": npc},
		Monsters:  []*entity.Monster{goblin},
		MonstByID: map[string]*entity.Monster{"goblin": goblin},
		Quests: []types.QuestDef{{
			ID: "q_goblins", Name: "Praga de Goblins",
			Location: "vila_inicial",
			Objectives: []types.Objective{
				{Type: types.ObjectiveKill, Target: "goblin", Required: 2},
			},
			Rewards: types.QuestRewards{Gold: 100},
		}},
		QuestByID: map[string]*types.QuestDef{},
		Skills:    map[string]types.SkillDef{},
		Story: map[string]types.StoryEvent{
			"start": {ID: "start", Text: "Começa aqui.", Next: types.StoryEnd},
		},
		StoryRoot: "start",
	}
	for i := range defs.Quests {
		defs.QuestByID[defs.Quests[i].ID] = &defs.Quests[i]
	}
	return defs
}

func newTestSession(t *testing.T) *Session {
	t.Helper()
	s := New(testDefs(), entity.NewPlayer("Ayla"))
	s.RNG = NewRNG(1) // reproducible dialogue and explore picks
	return s
}

func TestNew_PlacesPlayerAtGameStart(t *testing.T) {
	s := newTestSession(t)

	node, ok := s.Here()
	if !ok {
		t.Fatal("session should start with a location")
	}
	if node.ID != "vila_inicial" {
		t.Errorf("start = %s, want vila_inicial", node.ID)
	}
	if s.HereID() != "vila_inicial" {
		t.Errorf("HereID = %q", s.HereID())
	}
	if s.Clock.Hour() != 8 {
		t.Errorf("start hour = %d, want 8", s.Clock.Hour())
	}
}

func TestNew_FallsBackWhenStartUnknown(t *testing.T) {
	defs := testDefs()
	defs.Game.Start = "atlantida"
	s := New(defs, entity.NewPlayer("Ayla"))

	node, ok := s.Here()
	if !ok || node.ID != "vila_inicial" {
		t.Errorf("fallback location = %v, want the default settlement", node)
	}
}

func TestTravel(t *testing.T) {
	s := newTestSession(t)

	node, ok := s.Travel("floresta")
	if !ok || node.ID != "floresta" {
		t.Fatalf("travel = %v, %v", node, ok)
	}
	if s.HereID() != "floresta" {
		t.Errorf("HereID = %q after travel", s.HereID())
	}

	if _, ok := s.Travel("atlantida"); ok {
		t.Error("travel to an unknown place should fail")
	}
	if s.HereID() != "floresta" {
		t.Error("failed travel should not move the player")
	}
}

func TestNPCsHere_FollowsClock(t *testing.T) {
	s := newTestSession(t)

	if npcs := s.NPCsHere(); len(npcs) != 1 || npcs[0].ID != "ferreiro" {
		t.Errorf("NPCs at 8h = %v", npcs)
	}

	s.Clock.SetHour(20)
	if npcs := s.NPCsHere(); len(npcs) != 0 {
		t.Errorf("NPCs at 20h = %v, the smith has gone home", npcs)
	}
}

func TestTalk_BumpsRelationAndPicksLine(t *testing.T) {
	s := newTestSession(t)

	res, ok := s.Talk("ferreiro")
	if !ok {
		t.Fatal("the smith is here at 8h")
	}
	if res.Relation != 1 {
		t.Errorf("relation = %d, want 1", res.Relation)
	}
	if res.Line == "" {
		t.Error("talk should pick a dialogue line")
	}

	if _, ok := s.Talk("fantasma"); ok {
		t.Error("talking to an absent NPC should fail")
	}
}

func TestHunt_QuestProgressOnVictoryOnly(t *testing.T) {
	s := newTestSession(t)

	if !s.AcceptQuest("q_goblins") {
		t.Fatal("quest should be acceptable in the village")
	}
	s.Travel("floresta")

	res, ok := s.Hunt("goblin")
	if !ok || !res.Outcome.Won {
		t.Fatalf("hunt = %+v, %v", res, ok)
	}
	if len(res.Completed) != 0 {
		t.Errorf("first kill completed %v", res.Completed)
	}

	res, _ = s.Hunt("goblin")
	if len(res.Completed) != 1 || res.Completed[0].ID != "q_goblins" {
		t.Fatalf("second kill completed %v, want [q_goblins]", res.Completed)
	}
	if s.State.Flags.QuestStatus("q_goblins") != types.QuestCompleted {
		t.Error("quest should be completed")
	}

	if _, ok := s.Hunt("dragao"); ok {
		t.Error("hunting an absent monster should fail")
	}
}

func TestAvailableQuests_GatedToVillage(t *testing.T) {
	s := newTestSession(t)

	if q := s.AvailableQuests(); len(q) != 1 || q[0].ID != "q_goblins" {
		t.Errorf("available in village = %v", q)
	}

	s.Travel("floresta")
	if q := s.AvailableQuests(); len(q) != 0 {
		t.Errorf("available in forest = %v, want none", q)
	}
}

func TestExplore(t *testing.T) {
	s := newTestSession(t)

	if _, ok := s.Explore(); ok {
		t.Error("the village is quiet; explore should find nothing")
	}

	s.Travel("floresta")
	m, ok := s.Explore()
	if !ok || m.ID != "goblin" {
		t.Errorf("explore = %v, %v", m, ok)
	}
}

func TestRest_AdvancesClockAndHeals(t *testing.T) {
	s := newTestSession(t)
	s.State.Player.HP = 10

	h := s.Rest(8)
	if h != 16 {
		t.Errorf("hour after rest = %d, want 16", h)
	}
	if s.State.Flags.Time.Hour != 16 {
		t.Error("rest should sync the flags hour")
	}
	if s.State.Player.HP != s.State.Player.MaxHP {
		t.Error("rest should fully heal")
	}

	if h := s.Rest(10); h != 2 {
		t.Errorf("rest past midnight = %d, want 2", h)
	}
}

func TestSnapshot_RoundTripThroughSave(t *testing.T) {
	s := newTestSession(t)
	s.State.Player.Gold = 42
	s.Clock.SetHour(22)
	s.AdvanceStory(0)

	sd := s.Snapshot()
	if sd.Flags.Time.Hour != 22 {
		t.Errorf("snapshot hour = %d, want the clock synced in", sd.Flags.Time.Hour)
	}

	restored := NewFromSave(testDefs(), sd)
	if restored.State.Player.Gold != 42 {
		t.Errorf("restored gold = %d", restored.State.Player.Gold)
	}
	if restored.Clock.Hour() != 22 {
		t.Errorf("restored hour = %d", restored.Clock.Hour())
	}
	if restored.HereID() != "vila_inicial" {
		t.Errorf("restored location = %q", restored.HereID())
	}
	if _, running := restored.StoryEvent(); running {
		t.Error("story finished before the save; should stay finished")
	}
}

func TestNewFromSave_MissingLocationFallsBack(t *testing.T) {
	sd := &save.SaveData{
		Version: save.CurrentVersion,
		Player:  entity.NewPlayer("Ayla"),
		Flags:   state.Flags{Time: state.TimeState{Hour: 12}},
	}
	s := NewFromSave(testDefs(), sd)

	node, ok := s.Here()
	if !ok || node.ID != "vila_inicial" {
		t.Errorf("fallback = %v, want the default settlement", node)
	}
}

func TestRNG_Deterministic(t *testing.T) {
	a, b := NewRNG(7), NewRNG(7)
	for i := 0; i < 10; i++ {
		if a.Roll(20) != b.Roll(20) {
			t.Fatal("same seed should give the same sequence")
		}
	}
	r := NewRNG(7)
	for i := 0; i < 100; i++ {
		if v := r.Roll(6); v < 1 || v > 6 {
			t.Fatalf("Roll(6) = %d out of range", v)
		}
		if v := r.Pick(3); v < 0 || v > 2 {
			t.Fatalf("Pick(3) = %d out of range", v)
		}
	}
}
