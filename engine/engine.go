// Package engine provides the Session that wires the location index, the
// clock, the rosters, and the quest engine into the player-facing game
// operations. One Session instance per running game; every dependency is an
// explicit field, never a package-level singleton.
package engine

import (
	"time"

	"github.com/FelpHendeson/TerminalRPG/engine/clock"
	"github.com/FelpHendeson/TerminalRPG/engine/combat"
	"github.com/FelpHendeson/TerminalRPG/engine/entity"
	"github.com/FelpHendeson/TerminalRPG/engine/quest"
	"github.com/FelpHendeson/TerminalRPG/engine/roster"
	"github.com/FelpHendeson/TerminalRPG/engine/save"
	"github.com/FelpHendeson/TerminalRPG/engine/skills"
	"github.com/FelpHendeson/TerminalRPG/engine/state"
	"github.com/FelpHendeson/TerminalRPG/engine/story"
	"github.com/FelpHendeson/TerminalRPG/engine/world"
	"github.com/FelpHendeson/TerminalRPG/types"
)

// Session holds everything one running game needs.
type Session struct {
	Defs  *state.Defs
	State *state.State
	World *world.Index
	Clock *clock.Clock
	RNG   *RNG
}

// New creates a session for a fresh player. The starting location comes from
// the game definition, falling back to the first settlement in the tree.
func New(defs *state.Defs, player *entity.Player) *Session {
	s := &Session{
		Defs:  defs,
		State: state.NewState(defs, player),
		World: world.Build(defs.Worlds),
		RNG:   NewRNG(time.Now().UnixNano()),
	}
	s.Clock = clock.New(s.State.Flags.Time.Hour)

	if _, ok := s.World.SetCurrent(&s.State.Flags, defs.Game.Start); !ok {
		if node, ok := s.World.DefaultLocation(); ok {
			s.World.SetCurrent(&s.State.Flags, node)
		}
	}
	return s
}

// NewFromSave creates a session from loaded save data. A save without a
// resolvable location falls back to the default settlement.
func NewFromSave(defs *state.Defs, sd *save.SaveData) *Session {
	st := state.NewState(defs, sd.Player)
	save.Apply(st, sd)
	st.Flags.EnsureMaps()

	s := &Session{
		Defs:  defs,
		State: st,
		World: world.Build(defs.Worlds),
		RNG:   NewRNG(time.Now().UnixNano()),
	}
	s.Clock = clock.New(st.Flags.Time.Hour)

	if _, ok := s.World.Current(&st.Flags); !ok {
		if node, ok := s.World.DefaultLocation(); ok {
			s.World.SetCurrent(&st.Flags, node)
		}
	}
	return s
}

// Here returns the player's current location node.
func (s *Session) Here() (*types.LocationNode, bool) {
	return s.World.Current(&s.State.Flags)
}

// HereID returns the most specific settlement id of the current position,
// the id quest location gates and schedules compare against.
func (s *Session) HereID() string {
	if s.State.Flags.Location == nil {
		return ""
	}
	return s.State.Flags.Location.MostSpecific()
}

// Travel moves the player to the referenced location. Unknown destinations
// leave the player where they are.
func (s *Session) Travel(ref any) (*types.LocationNode, bool) {
	return s.World.SetCurrent(&s.State.Flags, ref)
}

// NPCsHere lists the NPCs present at the current location and hour.
func (s *Session) NPCsHere() []*entity.NPC {
	return roster.NPCsAt(s.Defs, s.HereID(), s.Clock.Hour())
}

// MonstersHere lists combat-ready monsters that can spawn here right now.
func (s *Session) MonstersHere() []*entity.Monster {
	return roster.MonstersAt(s.Defs, s.HereID(), s.Clock.Hour())
}

// AvailableQuests lists the quests the player can accept here and now.
func (s *Session) AvailableQuests() []types.QuestDef {
	return quest.Available(s.Defs, s.State, s.HereID(), s.Clock.Hour())
}

// ActiveQuests lists the player's accepted quests.
func (s *Session) ActiveQuests() []types.QuestDef {
	return quest.Active(s.Defs, s.State)
}

// AcceptQuest accepts a quest, re-checking availability at this instant so
// a stale menu can never accept a quest that is no longer offered.
func (s *Session) AcceptQuest(questID string) bool {
	return quest.Accept(s.Defs, s.State, s.HereID(), s.Clock.Hour(), questID)
}

// TalkResult is the outcome of one conversation.
type TalkResult struct {
	NPC       *entity.NPC
	Line      string
	Relation  int
	Completed []types.QuestDef
}

// Talk runs a conversation with an NPC who is present here and now: a small
// relationship bump, one dialogue line, and talk-objective progress.
// Returns false when the NPC is not around.
func (s *Session) Talk(npcID string) (TalkResult, bool) {
	var npc *entity.NPC
	for _, n := range s.NPCsHere() {
		if n.ID == npcID {
			npc = n
			break
		}
	}
	if npc == nil {
		return TalkResult{}, false
	}

	res := TalkResult{NPC: npc}
	res.Relation = s.State.Flags.ChangeRelation(npc.ID, 1)
	if len(npc.Dialogue) > 0 {
		res.Line = npc.Dialogue[s.RNG.Pick(len(npc.Dialogue))]
	}
	res.Completed = quest.RecordTalk(s.Defs, s.State, npc.ID)
	return res, true
}

// HuntResult is the outcome of seeking out and fighting a monster.
type HuntResult struct {
	Monster   *entity.Monster
	Outcome   combat.Outcome
	Completed []types.QuestDef
}

// Hunt fights a monster that spawns here and now. Kill-objective progress is
// recorded only on victory. Returns false when the monster is not around.
func (s *Session) Hunt(monsterID string) (HuntResult, bool) {
	var target *entity.Monster
	for _, m := range s.MonstersHere() {
		if m.ID == monsterID {
			target = m
			break
		}
	}
	if target == nil {
		return HuntResult{}, false
	}

	res := HuntResult{Monster: target}
	res.Outcome = combat.Fight(s.State.Player, target)
	if res.Outcome.Won {
		res.Completed = quest.RecordKill(s.Defs, s.State, target.ID)
	}
	return res, true
}

// Explore picks a random monster that spawns here and now, or false when
// the area is quiet.
func (s *Session) Explore() (*entity.Monster, bool) {
	monsters := s.MonstersHere()
	if len(monsters) == 0 {
		return nil, false
	}
	return monsters[s.RNG.Pick(len(monsters))], true
}

// Rest advances the clock by the given number of hours (any non-negative
// value, wrapping past midnight) and fully restores the player.
func (s *Session) Rest(hours int) int {
	h := s.Clock.Advance(hours)
	s.State.Flags.Time.Hour = h
	s.State.Player.Heal(s.State.Player.MaxHP)
	return h
}

// LearnSkill teaches the player a skill from the catalog.
func (s *Session) LearnSkill(skillID string) bool {
	return skills.Learn(s.Defs, s.State.Player, skillID)
}

// EquipSkill slots a learned skill, honoring the active/passive limits.
func (s *Session) EquipSkill(skillID string) bool {
	return skills.Equip(s.Defs, s.State.Player, skillID)
}

// UnequipSkill frees a skill slot.
func (s *Session) UnequipSkill(skillID string) bool {
	return skills.Unequip(s.State.Player, skillID)
}

// StoryEvent returns the current story event, if the story is still running.
func (s *Session) StoryEvent() (types.StoryEvent, bool) {
	return story.Current(s.Defs, s.State)
}

// AdvanceStory moves the story past the current event.
func (s *Session) AdvanceStory(choice int) {
	story.Advance(s.Defs, s.State, choice)
}

// Snapshot syncs the clock into the flags and captures the state for the
// save store.
func (s *Session) Snapshot() *save.SaveData {
	s.State.Flags.Time.Hour = s.Clock.Hour()
	return save.Snapshot(s.State)
}
