// Package quest implements quest availability filtering, the acceptance
// lifecycle, objective progress tracking, and reward application.
//
// Per quest the lifecycle is strictly forward:
//
//	unset --Accept--> accepted --(progress >= required)--> completed
//
// There is no transition out of completed.
package quest

import (
	"github.com/FelpHendeson/TerminalRPG/engine/state"
	"github.com/FelpHendeson/TerminalRPG/types"
)

// Available returns the quests the player can accept right now, filtered by
// a conjunction of independent predicates: lifecycle status, location gate,
// secret visibility, time window, and player-state conditions. locationID is
// the most specific settlement id of the player's current position.
func Available(defs *state.Defs, st *state.State, locationID string, hour int) []types.QuestDef {
	var out []types.QuestDef
	for _, q := range defs.Quests {
		if offerable(&q, st, locationID, hour) {
			out = append(out, q)
		}
	}
	return out
}

// offerable evaluates every availability predicate for one quest. The checks
// are side-effect free and order-independent; ordering here is just
// cheapest-first.
func offerable(q *types.QuestDef, st *state.State, locationID string, hour int) bool {
	// Already accepted or completed quests are never re-offered.
	if st.Flags.QuestStatus(q.ID) != types.QuestUnset {
		return false
	}
	// Location gate: compare against the most specific current id.
	if q.Location != "" && q.Location != locationID {
		return false
	}
	// Secret quests must have been unlocked first.
	if q.Visibility == types.VisibilitySecret && !st.Flags.IsUnlocked(q.ID) {
		return false
	}
	// Time gate, with the midnight wraparound rule.
	if q.Time != nil && !q.Time.Contains(hour) {
		return false
	}
	if q.Conditions.MinLevel > 0 && st.Player.Level < q.Conditions.MinLevel {
		return false
	}
	if q.Conditions.Fame > 0 && st.Player.Fame < q.Conditions.Fame {
		return false
	}
	// Relationship gates are conjunctive: every named NPC must qualify.
	for npcID, min := range q.Conditions.Relations {
		if st.Flags.Relation(npcID) < min {
			return false
		}
	}
	return true
}

// Accept moves a quest from unset to accepted and zeroes its progress
// counter. The quest must be in the availability list at this moment;
// anything else (unknown id, stale menu, already accepted) is a no-op
// returning false.
func Accept(defs *state.Defs, st *state.State, locationID string, hour int, questID string) bool {
	q, ok := defs.QuestByID[questID]
	if !ok {
		return false
	}
	if !offerable(q, st, locationID, hour) {
		return false
	}
	st.Flags.SetQuestStatus(questID, types.QuestAccepted)
	st.Flags.ResetProgress(questID)
	return true
}

// Active returns the currently accepted quests in definition order.
func Active(defs *state.Defs, st *state.State) []types.QuestDef {
	var out []types.QuestDef
	for _, q := range defs.Quests {
		if st.Flags.QuestStatus(q.ID) == types.QuestAccepted {
			out = append(out, q)
		}
	}
	return out
}

// RecordKill reports a defeated monster to every accepted quest whose first
// objective is a kill of that target. Returns the quests completed by this
// call (possibly several when they share the target).
func RecordKill(defs *state.Defs, st *state.State, monsterID string) []types.QuestDef {
	return record(defs, st, types.ObjectiveKill, monsterID)
}

// RecordTalk reports a finished conversation to every accepted quest whose
// first objective is a talk with that target. Returns the quests completed
// by this call.
func RecordTalk(defs *state.Defs, st *state.State, npcID string) []types.QuestDef {
	return record(defs, st, types.ObjectiveTalk, npcID)
}

// record increments progress on every matching accepted quest. Only the
// first objective is ever consulted; additional objectives are carried in
// the data but deliberately not tracked.
func record(defs *state.Defs, st *state.State, otype types.ObjectiveType, target string) []types.QuestDef {
	var completed []types.QuestDef
	for _, q := range defs.Quests {
		if st.Flags.QuestStatus(q.ID) != types.QuestAccepted {
			continue
		}
		if len(q.Objectives) == 0 {
			continue
		}
		obj := q.Objectives[0]
		if obj.Type != otype || obj.Target != target {
			continue
		}
		if st.Flags.IncProgress(q.ID) >= obj.Required {
			if _, ok := Complete(defs, st, q.ID); ok {
				completed = append(completed, q)
			}
		}
	}
	return completed
}

// Complete transitions an accepted quest to completed and applies its
// rewards exactly once. Calling it for a quest in any other state is a
// silent no-op returning false — double-completion is a reachable ordering
// in menu flow, not a programmer error.
func Complete(defs *state.Defs, st *state.State, questID string) (types.QuestRewards, bool) {
	q, ok := defs.QuestByID[questID]
	if !ok {
		return types.QuestRewards{}, false
	}
	if st.Flags.QuestStatus(questID) != types.QuestAccepted {
		return types.QuestRewards{}, false
	}
	st.Flags.SetQuestStatus(questID, types.QuestCompleted)
	applyRewards(st, q.Rewards)
	return q.Rewards, true
}

// applyRewards credits the player: gold and fame directly, xp through the
// level-up-aware gain, items appended to the inventory.
func applyRewards(st *state.State, r types.QuestRewards) {
	st.Player.Gold += r.Gold
	st.Player.Fame += r.Fame
	if r.XP > 0 {
		st.Player.GainXP(r.XP)
	}
	for _, item := range r.Items {
		st.Player.AddItem(item)
	}
}
