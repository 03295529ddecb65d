package loader

import (
	"fmt"

	"github.com/FelpHendeson/TerminalRPG/engine/entity"
	"github.com/FelpHendeson/TerminalRPG/engine/state"
	"github.com/FelpHendeson/TerminalRPG/types"
	lua "github.com/yuin/gopher-lua"
)

// compile converts the collected Lua tables into typed game definitions.
// It resolves structure only; cross-references are checked by validate.
func compile(coll *collector) (*state.Defs, error) {
	defs := &state.Defs{
		NPCByID:   map[string]*entity.NPC{},
		MonstByID: map[string]*entity.Monster{},
		QuestByID: map[string]*types.QuestDef{},
		Skills:    map[string]types.SkillDef{},
		Story:     map[string]types.StoryEvent{},
	}

	if coll.game != nil {
		defs.Game = types.GameDef{
			Title:   getString(coll.game, "title", "Untitled"),
			Author:  getString(coll.game, "author", ""),
			Version: getString(coll.game, "version", ""),
			Start:   getString(coll.game, "start", ""),
			Intro:   getString(coll.game, "intro", ""),
		}
	}

	for _, raw := range coll.worlds {
		node, err := compileTreeNode(raw.id, raw.table)
		if err != nil {
			return nil, err
		}
		defs.Worlds = append(defs.Worlds, node)
	}

	for _, raw := range coll.npcs {
		npc, err := compileNPC(raw.id, raw.table)
		if err != nil {
			return nil, err
		}
		defs.NPCs = append(defs.NPCs, npc)
		defs.NPCByID[npc.ID] = npc
	}

	for _, raw := range coll.monsters {
		m, err := compileMonster(raw.id, raw.table)
		if err != nil {
			return nil, err
		}
		defs.Monsters = append(defs.Monsters, m)
		defs.MonstByID[m.ID] = m
	}

	for _, raw := range coll.quests {
		q, err := compileQuest(raw.id, raw.table)
		if err != nil {
			return nil, err
		}
		defs.Quests = append(defs.Quests, q)
	}
	// Index after the slice stops growing so the pointers stay valid.
	for i := range defs.Quests {
		defs.QuestByID[defs.Quests[i].ID] = &defs.Quests[i]
	}

	for _, raw := range coll.skills {
		s, err := compileSkill(raw.id, raw.table)
		if err != nil {
			return nil, err
		}
		defs.Skills[s.ID] = s
	}

	for i, raw := range coll.events {
		ev := compileEvent(raw.id, raw.table)
		defs.Story[ev.ID] = ev
		if i == 0 {
			defs.StoryRoot = ev.ID
		}
	}

	return defs, nil
}

func compileTreeNode(id string, tbl *lua.LTable) (types.TreeNode, error) {
	node := types.TreeNode{
		ID:          id,
		Name:        getString(tbl, "name", id),
		Description: getString(tbl, "description", ""),
	}
	var err error
	eachTable(tbl, "children", func(child *lua.LTable) {
		if err != nil {
			return
		}
		childID := getString(child, "id", "")
		if childID == "" {
			err = fmt.Errorf("world %s: child node missing id", id)
			return
		}
		sub, subErr := compileTreeNode(childID, child)
		if subErr != nil {
			err = subErr
			return
		}
		node.Children = append(node.Children, sub)
	})
	return node, err
}

// compileStats reads the flat stat fields every entity kind shares.
func compileStats(tbl *lua.LTable) entity.Stats {
	maxHP := getInt(tbl, "maxHp", 10)
	maxMP := getInt(tbl, "maxMp", 0)
	return entity.Stats{
		Level:        getInt(tbl, "level", 1),
		HP:           maxHP,
		MaxHP:        maxHP,
		MP:           maxMP,
		MaxMP:        maxMP,
		Atk:          getInt(tbl, "atk", 1),
		Def:          getInt(tbl, "def", 0),
		Spd:          getInt(tbl, "spd", 1),
		Gold:         getInt(tbl, "gold", 0),
		Skills:       getStrings(tbl, "skills"),
		EffectStatus: []string{},
	}
}

func compileNPC(id string, tbl *lua.LTable) (*entity.NPC, error) {
	name, err := requireString(tbl, "name", "NPC "+id)
	if err != nil {
		return nil, err
	}
	npc := &entity.NPC{
		ID:       id,
		Name:     name,
		Stats:    compileStats(tbl),
		Role:     getString(tbl, "role", "villager"),
		Dialogue: getStrings(tbl, "dialogue"),
	}
	eachTable(tbl, "schedules", func(sched *lua.LTable) {
		npc.Schedules = append(npc.Schedules, types.Schedule{
			Location: getString(sched, "location", ""),
			Window:   compileWindow(sched),
		})
	})
	return npc, nil
}

func compileMonster(id string, tbl *lua.LTable) (*entity.Monster, error) {
	name, err := requireString(tbl, "name", "Monster "+id)
	if err != nil {
		return nil, err
	}
	m := &entity.Monster{
		ID:        id,
		Name:      name,
		Stats:     compileStats(tbl),
		XP:        getInt(tbl, "xp", 0),
		Locations: getStrings(tbl, "locations"),
	}
	if spawn := getTable(tbl, "spawn"); spawn != nil {
		w := compileWindow(spawn)
		m.Spawn = &w
	}
	return m, nil
}

func compileQuest(id string, tbl *lua.LTable) (types.QuestDef, error) {
	name, err := requireString(tbl, "name", "Quest "+id)
	if err != nil {
		return types.QuestDef{}, err
	}
	q := types.QuestDef{
		ID:          id,
		Name:        name,
		Type:        types.QuestType(getString(tbl, "type", string(types.QuestSecondary))),
		Description: getString(tbl, "description", ""),
		Location:    getString(tbl, "location", ""),
		Visibility:  types.QuestVisibility(getString(tbl, "visibility", string(types.VisibilityNormal))),
	}
	if tw := getTable(tbl, "time"); tw != nil {
		w := compileWindow(tw)
		q.Time = &w
	}
	if cond := getTable(tbl, "conditions"); cond != nil {
		q.Conditions = types.QuestConditions{
			MinLevel: getInt(cond, "minLevel", 0),
			Fame:     getInt(cond, "fame", 0),
		}
		if rel := getTable(cond, "relations"); rel != nil {
			q.Conditions.Relations = map[string]int{}
			rel.ForEach(func(k, v lua.LValue) {
				ks, kok := k.(lua.LString)
				vn, vok := v.(lua.LNumber)
				if kok && vok {
					q.Conditions.Relations[string(ks)] = int(vn)
				}
			})
		}
	}
	eachTable(tbl, "objectives", func(obj *lua.LTable) {
		q.Objectives = append(q.Objectives, types.Objective{
			Type:        types.ObjectiveType(getString(obj, "type", string(types.ObjectiveKill))),
			Target:      getString(obj, "target", ""),
			Required:    getInt(obj, "required", 1),
			Description: getString(obj, "description", ""),
		})
	})
	if rw := getTable(tbl, "rewards"); rw != nil {
		q.Rewards = types.QuestRewards{
			Gold:  getInt(rw, "gold", 0),
			Fame:  getInt(rw, "fame", 0),
			XP:    getInt(rw, "xp", 0),
			Items: getStrings(rw, "items"),
		}
	}
	return q, nil
}

func compileSkill(id string, tbl *lua.LTable) (types.SkillDef, error) {
	name, err := requireString(tbl, "name", "Skill "+id)
	if err != nil {
		return types.SkillDef{}, err
	}
	return types.SkillDef{
		ID:          id,
		Name:        name,
		Type:        types.SkillType(getString(tbl, "type", string(types.SkillActive))),
		Element:     getString(tbl, "element", ""),
		Category:    getString(tbl, "category", ""),
		Description: getString(tbl, "description", ""),
	}, nil
}

func compileEvent(id string, tbl *lua.LTable) types.StoryEvent {
	ev := types.StoryEvent{
		ID:   id,
		Text: getString(tbl, "text", ""),
		Next: getString(tbl, "next", ""),
	}
	eachTable(tbl, "choices", func(ch *lua.LTable) {
		ev.Choices = append(ev.Choices, types.StoryChoice{
			Text: getString(ch, "text", ""),
			Next: getString(ch, "next", ""),
		})
	})
	return ev
}

// compileWindow reads an hour window authored as from/to. "end" is a Lua
// keyword, so content files use "to" for the exclusive bound.
func compileWindow(tbl *lua.LTable) types.Window {
	return types.Window{
		Start: getInt(tbl, "from", 0),
		End:   getInt(tbl, "to", 0),
	}
}
