package loader

import (
	lua "github.com/yuin/gopher-lua"
)

// registerAPI registers the Lua world-building constructors as globals.
func registerAPI(L *lua.LState, coll *collector) {
	// Game { title = "...", start = "...", ... }
	L.SetGlobal("Game", L.NewFunction(func(L *lua.LState) int {
		coll.game = L.CheckTable(1)
		return 0
	}))

	// Room "id" { ... } is curried: Room("id") returns a function that
	// takes the definition table.
	L.SetGlobal("Room", curried(L, func(id string, tbl *lua.LTable) {
		coll.rooms = append(coll.rooms, rawDef{id: id, table: tbl})
	}))

	// Object "id" { ... }
	L.SetGlobal("Object", curried(L, func(id string, tbl *lua.LTable) {
		coll.objects = append(coll.objects, rawDef{id: id, table: tbl})
	}))

	// Thief "id" { location = "...", treasure_room = "...", ... }
	L.SetGlobal("Thief", curried(L, func(id string, tbl *lua.LTable) {
		coll.thieves = append(coll.thieves, rawDef{id: id, table: tbl})
	}))

	// Troll "id" { location = "...", object = "...", weapon = "...", ... }
	L.SetGlobal("Troll", curried(L, func(id string, tbl *lua.LTable) {
		coll.trolls = append(coll.trolls, rawDef{id: id, table: tbl})
	}))

	// Messages "table-name" { category = { "variant", ... }, ... }
	L.SetGlobal("Messages", curried(L, func(id string, tbl *lua.LTable) {
		coll.messages = append(coll.messages, rawDef{id: id, table: tbl})
	}))

	registerConditionHelpers(L)
}

// curried wraps a two-step constructor: F("id") returns a closure taking
// the definition table.
func curried(L *lua.LState, collect func(id string, tbl *lua.LTable)) *lua.LFunction {
	return L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			collect(id, L.CheckTable(1))
			return 0
		}))
		return 1
	})
}

// Exit condition helpers produce tagged tables consumed by compile.
func registerConditionHelpers(L *lua.LState) {
	condition := func(kind string) *lua.LFunction {
		return L.NewFunction(func(L *lua.LState) int {
			ref := L.CheckString(1)
			msg := L.OptString(2, "")
			tbl := L.NewTable()
			tbl.RawSetString("kind", lua.LString(kind))
			tbl.RawSetString("ref", lua.LString(ref))
			if msg != "" {
				tbl.RawSetString("message", lua.LString(msg))
			}
			L.Push(tbl)
			return 1
		})
	}

	// ObjectOpen("trapdoor", "The trapdoor is closed.")
	L.SetGlobal("ObjectOpen", condition("object_open"))
	// NotBlocked("troll", "The troll blocks your way.")
	L.SetGlobal("NotBlocked", condition("not_blocked"))
	// FlagSet("dam-open", "The gates are shut.")
	L.SetGlobal("FlagSet", condition("flag_set"))
	// HasItem("matchbook", "It is pitch black in there.")
	L.SetGlobal("HasItem", condition("has_item"))
}
