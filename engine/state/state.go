// Package state manages the mutable world model and the lookups the engine
// and actors share: observability, room contents, and exit evaluation.
package state

import (
	"fmt"
	"sort"
	"strings"

	"github.com/halvard/dungeon/types"
)

// Exit condition kinds.
const (
	CondObjectOpen = "object_open"
	CondNotBlocked = "not_blocked"
	CondFlagSet    = "flag_set"
	CondHasItem    = "has_item"
)

// World is the complete mutable game state.
type World struct {
	Game    types.GameInfo
	Rooms   map[string]*types.Room
	Objects map[string]*types.Object
	Player  *types.Player
	Flags   map[string]bool
}

// NewWorld creates an empty world with the player at the start room.
func NewWorld(game types.GameInfo) *World {
	return &World{
		Game:    game,
		Rooms:   map[string]*types.Room{},
		Objects: map[string]*types.Object{},
		Player: &types.Player{
			Location:  game.Start,
			Inventory: []string{},
		},
		Flags: map[string]bool{},
	}
}

// Observable reports whether the player can currently perceive an object.
// The magical-invisibility flag, the puzzle-hidden flag, and any
// conditional-visibility tags compose by logical AND.
func (w *World) Observable(obj *types.Object) bool {
	if obj == nil || !obj.Visible || obj.Hidden {
		return false
	}
	for _, tag := range obj.VisibleFor {
		if !w.Flags[tag] {
			return false
		}
	}
	return true
}

// ObjectsInRoom returns the observable objects in a room, sorted by ID for
// deterministic narration.
func (w *World) ObjectsInRoom(roomID string) []string {
	var out []string
	for id, obj := range w.Objects {
		if obj.Location == roomID && w.Observable(obj) {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}

// HasItem reports whether the player carries the object.
func (w *World) HasItem(id string) bool {
	for _, v := range w.Player.Inventory {
		if v == id {
			return true
		}
	}
	return false
}

// RemoveFromInventory drops an object ID from the player's inventory.
func (w *World) RemoveFromInventory(id string) {
	inv := w.Player.Inventory
	for i, v := range inv {
		if v == id {
			w.Player.Inventory = append(inv[:i], inv[i+1:]...)
			return
		}
	}
}

// HasLitLight reports whether the player carries a lit light source.
func (w *World) HasLitLight() bool {
	for _, id := range w.Player.Inventory {
		if obj, ok := w.Objects[id]; ok && obj.Light != nil && obj.Light.Lit {
			return true
		}
	}
	return false
}

// EvaluateExit resolves a direction from a room. It returns the target room
// on success, or a failure message when the exit is missing or its
// condition does not hold.
func (w *World) EvaluateExit(roomID, direction string) (target string, failure string, ok bool) {
	room, found := w.Rooms[roomID]
	if !found {
		return "", "You can't go that way.", false
	}
	exit, found := room.Exits[direction]
	if !found {
		return "", "You can't go that way.", false
	}
	if exit.Condition == nil {
		return exit.To, "", true
	}

	cond := exit.Condition
	pass := false
	switch cond.Kind {
	case CondObjectOpen:
		if obj, ok := w.Objects[cond.Ref]; ok && obj.Container != nil {
			pass = obj.Container.Open
		}
	case CondNotBlocked:
		if obj, ok := w.Objects[cond.Ref]; ok && obj.Door != nil {
			pass = !obj.Door.BlocksPassage
		} else {
			pass = true
		}
	case CondFlagSet:
		pass = w.Flags[cond.Ref]
	case CondHasItem:
		pass = w.HasItem(cond.Ref)
	}

	if !pass {
		msg := cond.FailureMessage
		if msg == "" {
			msg = "The way is blocked."
		}
		return "", msg, false
	}
	return exit.To, "", true
}

// DisplayName returns an object's name, falling back to its ID.
func (w *World) DisplayName(id string) string {
	if obj, ok := w.Objects[id]; ok && obj.Name != "" {
		return obj.Name
	}
	return id
}

// Validate checks the structural invariants of a loaded world: every
// unconditional exit targets an existing room, and every exit condition
// names an existing object or a known flag.
func (w *World) Validate() error {
	var problems []string
	for roomID, room := range w.Rooms {
		for dir, exit := range room.Exits {
			if _, ok := w.Rooms[exit.To]; !ok {
				problems = append(problems, fmt.Sprintf(
					"room %q exit %q targets unknown room %q", roomID, dir, exit.To))
			}
			if exit.Condition == nil {
				continue
			}
			ref := exit.Condition.Ref
			switch exit.Condition.Kind {
			case CondFlagSet:
				// Flags may be created at runtime; any name is legal.
			case CondObjectOpen, CondNotBlocked, CondHasItem:
				if _, ok := w.Objects[ref]; !ok {
					problems = append(problems, fmt.Sprintf(
						"room %q exit %q condition references unknown object %q", roomID, dir, ref))
				}
			default:
				problems = append(problems, fmt.Sprintf(
					"room %q exit %q has unknown condition kind %q", roomID, dir, exit.Condition.Kind))
			}
		}
	}
	if _, ok := w.Rooms[w.Game.Start]; w.Game.Start != "" && !ok {
		problems = append(problems, fmt.Sprintf("start room %q does not exist", w.Game.Start))
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid world: %s", strings.Join(problems, "; "))
	}
	return nil
}
