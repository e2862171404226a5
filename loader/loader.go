// Package loader reads world definitions from Lua files and compiles them
// into the engine's state. The Lua VM is sandboxed, used only at load
// time, and discarded afterwards.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/halvard/dungeon/engine/actors"
	"github.com/halvard/dungeon/engine/messages"
	"github.com/halvard/dungeon/engine/state"
	lua "github.com/yuin/gopher-lua"
)

// ActorBinding pairs a compiled actor with the GameObject the player
// interacts with.
type ActorBinding struct {
	Actor    actors.Actor
	ObjectID string
	// PinnedDifficulty is set when the Lua block named a tier explicitly,
	// shielding the actor from config-level difficulty overrides.
	PinnedDifficulty bool
}

// Result is a fully compiled, validated world definition.
type Result struct {
	World    *state.World
	Actors   []ActorBinding
	Messages map[string]messages.Table

	difficulty *actors.Difficulty // config-level tier, nil until SetDifficulty
}

// collector accumulates Lua definitions during file execution.
type collector struct {
	game     *lua.LTable
	rooms    []rawDef
	objects  []rawDef
	thieves  []rawDef
	trolls   []rawDef
	messages []rawDef
}

type rawDef struct {
	id    string
	table *lua.LTable
}

// Load reads all .lua files from dir, compiles them, and validates the
// resulting world. game.lua runs first; the rest run alphabetically.
func Load(dir string) (*Result, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading game directory %s: %w", dir, err)
	}

	var luaFiles []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".lua") {
			luaFiles = append(luaFiles, e.Name())
		}
	}
	if len(luaFiles) == 0 {
		return nil, fmt.Errorf("no .lua files found in %s", dir)
	}
	sort.Slice(luaFiles, func(i, j int) bool {
		if luaFiles[i] == "game.lua" {
			return true
		}
		if luaFiles[j] == "game.lua" {
			return false
		}
		return luaFiles[i] < luaFiles[j]
	})

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()
	openSafeLibs(L)
	sandbox(L)

	coll := &collector{}
	registerAPI(L, coll)

	for _, f := range luaFiles {
		if err := L.DoFile(filepath.Join(dir, f)); err != nil {
			return nil, fmt.Errorf("executing %s: %w", f, err)
		}
	}

	result, err := compile(coll)
	if err != nil {
		return nil, fmt.Errorf("compiling game data: %w", err)
	}
	if err := validate(result); err != nil {
		return nil, err
	}
	return result, nil
}

// openSafeLibs opens only the safe subset of Lua standard libraries.
func openSafeLibs(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// sandbox removes dangerous globals and functions.
func sandbox(L *lua.LState) {
	dangerous := []string{
		"dofile", "loadfile", "load", "loadstring",
		"rawset", "rawget", "rawequal",
		"collectgarbage",
	}
	for _, name := range dangerous {
		L.SetGlobal(name, lua.LNil)
	}

	// Remove math.randomseed to preserve determinism.
	if mathTbl := L.GetGlobal("math"); mathTbl != lua.LNil {
		if tbl, ok := mathTbl.(*lua.LTable); ok {
			tbl.RawSetString("randomseed", lua.LNil)
		}
	}
}
