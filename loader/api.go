package loader

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// registerAPI installs the content constructors into the Lua state. All
// constructors except Game use the curried form:
//
//	NPC "ferreiro" {
//	    name = "Ferreiro",
//	    ...
//	}
func registerAPI(L *lua.LState, coll *collector) {
	L.SetGlobal("Game", L.NewFunction(func(L *lua.LState) int {
		tbl := L.CheckTable(1)
		if coll.game != nil {
			L.RaiseError("Game {} defined more than once")
		}
		coll.game = tbl
		return 0
	}))

	L.SetGlobal("World", curried(L, "World", &coll.worlds))
	L.SetGlobal("NPC", curried(L, "NPC", &coll.npcs))
	L.SetGlobal("Monster", curried(L, "Monster", &coll.monsters))
	L.SetGlobal("Quest", curried(L, "Quest", &coll.quests))
	L.SetGlobal("Skill", curried(L, "Skill", &coll.skills))
	L.SetGlobal("Event", curried(L, "Event", &coll.events))
}

// curried builds a constructor of the form `Name "id" { ... }`. The outer
// call takes the id string and returns a closure that captures it and
// receives the definition table.
func curried(L *lua.LState, name string, dst *[]rawDef) *lua.LFunction {
	return L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		if id == "" {
			L.RaiseError("%s requires a non-empty id", name)
		}
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			for _, d := range *dst {
				if d.id == id {
					L.RaiseError("duplicate %s id %q", name, id)
				}
			}
			*dst = append(*dst, rawDef{id: id, table: tbl})
			return 0
		}))
		return 1
	})
}

// getString reads a string field, returning def when absent.
func getString(tbl *lua.LTable, key, def string) string {
	v := tbl.RawGetString(key)
	if s, ok := v.(lua.LString); ok {
		return string(s)
	}
	return def
}

// getInt reads an integer field, returning def when absent.
func getInt(tbl *lua.LTable, key string, def int) int {
	v := tbl.RawGetString(key)
	if n, ok := v.(lua.LNumber); ok {
		return int(n)
	}
	return def
}

// getTable reads a table field, returning nil when absent or mistyped.
func getTable(tbl *lua.LTable, key string) *lua.LTable {
	v := tbl.RawGetString(key)
	if t, ok := v.(*lua.LTable); ok {
		return t
	}
	return nil
}

// getStrings reads an array-style table of strings.
func getStrings(tbl *lua.LTable, key string) []string {
	t := getTable(tbl, key)
	if t == nil {
		return nil
	}
	var out []string
	t.ForEach(func(_, v lua.LValue) {
		if s, ok := v.(lua.LString); ok {
			out = append(out, string(s))
		}
	})
	return out
}

// eachTable iterates the array part of a table field, yielding only table
// elements.
func eachTable(tbl *lua.LTable, key string, fn func(*lua.LTable)) {
	t := getTable(tbl, key)
	if t == nil {
		return
	}
	t.ForEach(func(_, v lua.LValue) {
		if sub, ok := v.(*lua.LTable); ok {
			fn(sub)
		}
	})
}

// requireString reads a string field and errors when it is missing.
func requireString(tbl *lua.LTable, key, owner string) (string, error) {
	s := getString(tbl, key, "")
	if s == "" {
		return "", fmt.Errorf("%s: missing required field %q", owner, key)
	}
	return s, nil
}
