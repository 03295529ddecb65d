package loader

import (
	"fmt"
	"strings"

	"github.com/FelpHendeson/TerminalRPG/engine/state"
	"github.com/FelpHendeson/TerminalRPG/engine/world"
	"github.com/FelpHendeson/TerminalRPG/types"
)

// ValidationError aggregates every referential problem found in the compiled
// definitions so content authors can fix them all in one pass.
type ValidationError struct {
	Errors   []string
	Warnings []string
}

func (e *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("content validation failed with %d error(s)", len(e.Errors)))
	for _, msg := range e.Errors {
		sb.WriteString("\n  error: ")
		sb.WriteString(msg)
	}
	for _, msg := range e.Warnings {
		sb.WriteString("\n  warning: ")
		sb.WriteString(msg)
	}
	return sb.String()
}

// validate checks cross-references between the compiled definitions: location
// ids, schedule hours, objective targets, story links. Warnings alone do not
// fail the load.
func validate(defs *state.Defs) error {
	v := &ValidationError{}
	idx := world.Build(defs.Worlds)

	if len(defs.Worlds) == 0 {
		v.Errors = append(v.Errors, "no World defined")
	}

	if defs.Game.Start != "" {
		if _, ok := idx.Resolve(defs.Game.Start); !ok {
			v.Errors = append(v.Errors, fmt.Sprintf("game start %q does not resolve to a location", defs.Game.Start))
		}
	}

	for _, npc := range defs.NPCs {
		for i, s := range npc.Schedules {
			if _, ok := idx.Resolve(s.Location); !ok {
				v.Warnings = append(v.Warnings, fmt.Sprintf("NPC %s schedule %d: unknown location %q", npc.ID, i+1, s.Location))
			}
			checkWindow(v, fmt.Sprintf("NPC %s schedule %d", npc.ID, i+1), s.Window)
		}
	}

	for _, m := range defs.Monsters {
		for _, loc := range m.Locations {
			if _, ok := idx.Resolve(loc); !ok {
				v.Warnings = append(v.Warnings, fmt.Sprintf("monster %s: unknown location %q", m.ID, loc))
			}
		}
		if m.Spawn != nil {
			checkWindow(v, "monster "+m.ID+" spawn", *m.Spawn)
		}
	}

	for i := range defs.Quests {
		q := &defs.Quests[i]
		if q.Location != "" {
			if _, ok := idx.Resolve(q.Location); !ok {
				v.Errors = append(v.Errors, fmt.Sprintf("quest %s: unknown location %q", q.ID, q.Location))
			}
		}
		if q.Time != nil {
			checkWindow(v, "quest "+q.ID+" time", *q.Time)
		}
		if len(q.Objectives) == 0 {
			v.Warnings = append(v.Warnings, fmt.Sprintf("quest %s has no objectives and can never complete", q.ID))
		}
		for j, obj := range q.Objectives {
			switch obj.Type {
			case types.ObjectiveKill:
				if _, ok := defs.MonstByID[obj.Target]; !ok {
					v.Errors = append(v.Errors, fmt.Sprintf("quest %s objective %d: unknown monster %q", q.ID, j+1, obj.Target))
				}
			case types.ObjectiveTalk:
				if _, ok := defs.NPCByID[obj.Target]; !ok {
					v.Errors = append(v.Errors, fmt.Sprintf("quest %s objective %d: unknown NPC %q", q.ID, j+1, obj.Target))
				}
			default:
				v.Errors = append(v.Errors, fmt.Sprintf("quest %s objective %d: unknown type %q", q.ID, j+1, obj.Type))
			}
			if obj.Required < 1 {
				v.Errors = append(v.Errors, fmt.Sprintf("quest %s objective %d: required must be at least 1", q.ID, j+1))
			}
		}
		for npcID := range q.Conditions.Relations {
			if _, ok := defs.NPCByID[npcID]; !ok {
				v.Errors = append(v.Errors, fmt.Sprintf("quest %s: relation condition names unknown NPC %q", q.ID, npcID))
			}
		}
	}

	for id, ev := range defs.Story {
		if len(ev.Choices) > 0 {
			for j, ch := range ev.Choices {
				checkStoryLink(v, defs, fmt.Sprintf("event %s choice %d", id, j+1), ch.Next)
			}
		} else {
			checkStoryLink(v, defs, "event "+id, ev.Next)
		}
	}

	if len(v.Errors) > 0 {
		return v
	}
	return nil
}

func checkWindow(v *ValidationError, owner string, w types.Window) {
	if w.Start < 0 || w.Start > 23 {
		v.Errors = append(v.Errors, fmt.Sprintf("%s: from hour %d out of range 0-23", owner, w.Start))
	}
	if w.End < 0 || w.End > 24 {
		v.Errors = append(v.Errors, fmt.Sprintf("%s: to hour %d out of range 0-24", owner, w.End))
	}
}

func checkStoryLink(v *ValidationError, defs *state.Defs, owner, next string) {
	if next == "" || next == types.StoryEnd {
		return
	}
	if _, ok := defs.Story[next]; !ok {
		v.Errors = append(v.Errors, fmt.Sprintf("%s: links to unknown event %q", owner, next))
	}
}
