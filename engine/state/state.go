// Package state holds the immutable game definitions and the mutable
// per-save player state (flags aggregate).
package state

import (
	"github.com/FelpHendeson/TerminalRPG/engine/entity"
	"github.com/FelpHendeson/TerminalRPG/types"
)

// Relationship values are clamped into this range on every mutation.
const (
	RelationMin = -100
	RelationMax = 100
)

// Defs holds the immutable game definitions compiled by the loader.
// Rosters keep their definition order; the by-id maps are lookup shortcuts.
type Defs struct {
	Game   types.GameDef
	Worlds []types.TreeNode

	NPCs      []*entity.NPC
	NPCByID   map[string]*entity.NPC
	Monsters  []*entity.Monster
	MonstByID map[string]*entity.Monster

	Quests    []types.QuestDef
	QuestByID map[string]*types.QuestDef

	Skills    map[string]types.SkillDef
	Story     map[string]types.StoryEvent
	StoryRoot string
}

// TimeState is the persisted clock state: hour of day only.
type TimeState struct {
	Hour int `json:"hour"`
}

// Flags is the per-save aggregate of everything that is not the player
// record itself: position, clock, quest lifecycle, relationships, unlocks.
type Flags struct {
	Location       *types.LocationPath          `json:"location,omitempty"`
	Time           TimeState                    `json:"time"`
	Quests         map[string]types.QuestStatus `json:"quests"`
	QuestProgress  map[string]int               `json:"questProgress"`
	NPCRelations   map[string]int               `json:"npcRelations"`
	UnlockedQuests []string                     `json:"unlockedQuests"`
	StoryID        string                       `json:"storyId,omitempty"`
}

// State is the complete mutable game state for one save.
type State struct {
	Player *entity.Player
	Flags  Flags
}

// NewState creates a fresh game state for a new player. The clock starts at
// 08:00 and the story at its root event.
func NewState(defs *Defs, player *entity.Player) *State {
	return &State{
		Player: player,
		Flags: Flags{
			Time:           TimeState{Hour: 8},
			Quests:         map[string]types.QuestStatus{},
			QuestProgress:  map[string]int{},
			NPCRelations:   map[string]int{},
			UnlockedQuests: []string{},
			StoryID:        defs.StoryRoot,
		},
	}
}

// EnsureMaps guarantees all flag maps are non-nil. Called after loading a
// save so older or hand-edited files never leave nil maps behind.
func (f *Flags) EnsureMaps() {
	if f.Quests == nil {
		f.Quests = map[string]types.QuestStatus{}
	}
	if f.QuestProgress == nil {
		f.QuestProgress = map[string]int{}
	}
	if f.NPCRelations == nil {
		f.NPCRelations = map[string]int{}
	}
	if f.UnlockedQuests == nil {
		f.UnlockedQuests = []string{}
	}
}

// QuestStatus returns the lifecycle state of a quest. Unknown ids are unset.
func (f *Flags) QuestStatus(questID string) types.QuestStatus {
	return f.Quests[questID]
}

// SetQuestStatus records a quest lifecycle transition.
func (f *Flags) SetQuestStatus(questID string, status types.QuestStatus) {
	f.Quests[questID] = status
}

// Progress returns the objective progress counter for a quest. The counter
// is only meaningful while the quest is accepted.
func (f *Flags) Progress(questID string) int {
	return f.QuestProgress[questID]
}

// IncProgress increments a quest's progress counter and returns the new value.
func (f *Flags) IncProgress(questID string) int {
	f.QuestProgress[questID]++
	return f.QuestProgress[questID]
}

// ResetProgress zeroes a quest's progress counter.
func (f *Flags) ResetProgress(questID string) {
	f.QuestProgress[questID] = 0
}

// Relation returns the player's relationship with an NPC. Unknown NPCs are 0.
func (f *Flags) Relation(npcID string) int {
	return f.NPCRelations[npcID]
}

// ChangeRelation applies a delta to an NPC relationship, clamping the result
// into [RelationMin, RelationMax]. Returns the stored value.
func (f *Flags) ChangeRelation(npcID string, delta int) int {
	v := f.NPCRelations[npcID] + delta
	if v < RelationMin {
		v = RelationMin
	}
	if v > RelationMax {
		v = RelationMax
	}
	f.NPCRelations[npcID] = v
	return v
}

// IsUnlocked reports whether a secret quest has been unlocked.
func (f *Flags) IsUnlocked(questID string) bool {
	for _, id := range f.UnlockedQuests {
		if id == questID {
			return true
		}
	}
	return false
}

// UnlockQuest adds a quest id to the unlocked-secret set. Idempotent.
func (f *Flags) UnlockQuest(questID string) {
	if f.IsUnlocked(questID) {
		return
	}
	f.UnlockedQuests = append(f.UnlockedQuests, questID)
}
