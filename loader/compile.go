package loader

import (
	"fmt"

	"github.com/halvard/dungeon/engine/actors"
	"github.com/halvard/dungeon/engine/messages"
	"github.com/halvard/dungeon/engine/state"
	"github.com/halvard/dungeon/types"
	lua "github.com/yuin/gopher-lua"
)

// compile converts collected Lua tables into a world, actors, and message
// tables. Structural validation happens afterwards in validate.
func compile(coll *collector) (*Result, error) {
	if coll.game == nil {
		return nil, fmt.Errorf("no Game {} block defined")
	}

	game := types.GameInfo{
		Title:   strField(coll.game, "title"),
		Author:  strField(coll.game, "author"),
		Version: strField(coll.game, "version"),
		Start:   strField(coll.game, "start"),
		Intro:   strField(coll.game, "intro"),
	}
	if game.Start == "" {
		return nil, fmt.Errorf("Game block missing start room")
	}

	w := state.NewWorld(game)
	result := &Result{World: w, Messages: map[string]messages.Table{}}

	for _, r := range coll.rooms {
		room, err := compileRoom(r)
		if err != nil {
			return nil, err
		}
		if _, dup := w.Rooms[r.id]; dup {
			return nil, fmt.Errorf("duplicate room %q", r.id)
		}
		w.Rooms[r.id] = room
	}

	for _, o := range coll.objects {
		obj, err := compileObject(o)
		if err != nil {
			return nil, err
		}
		if _, dup := w.Objects[o.id]; dup {
			return nil, fmt.Errorf("duplicate object %q", o.id)
		}
		w.Objects[o.id] = obj
		if obj.Location == types.LocationPlayer {
			w.Player.Inventory = append(w.Player.Inventory, o.id)
		}
	}

	for _, t := range coll.thieves {
		tier := strField(t.table, "difficulty")
		thief := actors.NewThief(
			t.id,
			strFieldOr(t.table, "name", "thief"),
			strField(t.table, "location"),
			strField(t.table, "treasure_room"),
			actors.Profile(tier),
		)
		result.Actors = append(result.Actors, ActorBinding{
			Actor:            thief,
			ObjectID:         strFieldOr(t.table, "object", t.id),
			PinnedDifficulty: tier != "",
		})
	}

	for _, t := range coll.trolls {
		troll := actors.NewTroll(
			t.id,
			strFieldOr(t.table, "name", "troll"),
			strField(t.table, "location"),
			strFieldOr(t.table, "object", t.id),
			strField(t.table, "weapon"),
			intFieldOr(t.table, "strength", 2),
		)
		result.Actors = append(result.Actors, ActorBinding{
			Actor:    troll,
			ObjectID: strFieldOr(t.table, "object", t.id),
		})
	}

	for _, m := range coll.messages {
		table := messages.Table{Tables: map[string][]string{}}
		m.table.ForEach(func(k, v lua.LValue) {
			category, ok := k.(lua.LString)
			if !ok {
				return
			}
			variants, ok := v.(*lua.LTable)
			if !ok {
				return
			}
			var list []string
			variants.ForEach(func(_, variant lua.LValue) {
				if s, ok := variant.(lua.LString); ok {
					list = append(list, string(s))
				}
			})
			table.Tables[string(category)] = list
		})
		result.Messages[m.id] = table
	}

	return result, nil
}

func compileRoom(r rawDef) (*types.Room, error) {
	room := &types.Room{
		ID:               r.id,
		Name:             strField(r.table, "name"),
		Description:      strField(r.table, "desc"),
		ShortDescription: strField(r.table, "short"),
		Exits:            map[string]types.Exit{},
	}
	if room.Name == "" {
		return nil, fmt.Errorf("room %q missing name", r.id)
	}

	exits := r.table.RawGetString("exits")
	if tbl, ok := exits.(*lua.LTable); ok {
		var err error
		tbl.ForEach(func(k, v lua.LValue) {
			dir, dirOK := k.(lua.LString)
			if !dirOK || err != nil {
				return
			}
			exit, exitErr := compileExit(r.id, string(dir), v)
			if exitErr != nil {
				err = exitErr
				return
			}
			room.Exits[string(dir)] = exit
		})
		if err != nil {
			return nil, err
		}
	}
	return room, nil
}

// compileExit accepts either a bare room ID or a table with to/condition.
func compileExit(roomID, dir string, v lua.LValue) (types.Exit, error) {
	switch val := v.(type) {
	case lua.LString:
		return types.Exit{To: string(val)}, nil
	case *lua.LTable:
		exit := types.Exit{To: strField(val, "to")}
		if exit.To == "" {
			return types.Exit{}, fmt.Errorf("room %q exit %q missing target", roomID, dir)
		}
		if cond, ok := val.RawGetString("condition").(*lua.LTable); ok {
			exit.Condition = &types.ExitCondition{
				Kind:           strField(cond, "kind"),
				Ref:            strField(cond, "ref"),
				FailureMessage: strField(cond, "message"),
			}
		}
		return exit, nil
	default:
		return types.Exit{}, fmt.Errorf("room %q exit %q has invalid value", roomID, dir)
	}
}

func compileObject(o rawDef) (*types.Object, error) {
	tbl := o.table
	obj := &types.Object{
		ID:          o.id,
		Name:        strField(tbl, "name"),
		Description: strField(tbl, "desc"),
		Initial:     strField(tbl, "initial"),
		Location:    strField(tbl, "location"),
		Aliases:     strSlice(tbl, "aliases"),
		VisibleFor:  strSlice(tbl, "visible_for"),
		Portable:    boolField(tbl, "portable", false),
		Visible:     boolField(tbl, "visible", true),
		Hidden:      boolField(tbl, "hidden", false),
		Edible:      boolField(tbl, "edible", false),
		Sacred:      boolField(tbl, "sacred", false),
		Readable:    strField(tbl, "readable"),
		Tool:        strField(tbl, "tool"),
		Value:       intFieldOr(tbl, "value", 0),
	}
	if obj.Name == "" {
		return nil, fmt.Errorf("object %q missing name", o.id)
	}

	if sub, ok := tbl.RawGetString("container").(*lua.LTable); ok {
		obj.Container = &types.Container{
			Open:     boolField(sub, "open", false),
			Locked:   boolField(sub, "locked", false),
			KeyID:    strField(sub, "key"),
			Capacity: intFieldOr(sub, "capacity", 0),
		}
	}
	if sub, ok := tbl.RawGetString("light").(*lua.LTable); ok {
		obj.Light = &types.Light{Lit: boolField(sub, "lit", false)}
	}
	if sub, ok := tbl.RawGetString("door").(*lua.LTable); ok {
		obj.Door = &types.Door{
			BlocksPassage: boolField(sub, "blocks", false),
			KeyID:         strField(sub, "key"),
		}
	}
	if sub, ok := tbl.RawGetString("combat").(*lua.LTable); ok {
		obj.Combat = &types.Combat{
			Strength:   intFieldOr(sub, "strength", 0),
			ActorState: strField(sub, "state"),
		}
	}
	return obj, nil
}

// --- Lua table field helpers ---

func strField(tbl *lua.LTable, key string) string {
	if s, ok := tbl.RawGetString(key).(lua.LString); ok {
		return string(s)
	}
	return ""
}

func strFieldOr(tbl *lua.LTable, key, fallback string) string {
	if s := strField(tbl, key); s != "" {
		return s
	}
	return fallback
}

func boolField(tbl *lua.LTable, key string, fallback bool) bool {
	if b, ok := tbl.RawGetString(key).(lua.LBool); ok {
		return bool(b)
	}
	return fallback
}

func intFieldOr(tbl *lua.LTable, key string, fallback int) int {
	if n, ok := tbl.RawGetString(key).(lua.LNumber); ok {
		return int(n)
	}
	return fallback
}

func strSlice(tbl *lua.LTable, key string) []string {
	list, ok := tbl.RawGetString(key).(*lua.LTable)
	if !ok {
		return nil
	}
	var out []string
	list.ForEach(func(_, v lua.LValue) {
		if s, ok := v.(lua.LString); ok {
			out = append(out, string(s))
		}
	})
	return out
}
