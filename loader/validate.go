package loader

import (
	"fmt"

	"github.com/halvard/dungeon/types"
)

// validate checks cross-references the compiler cannot see per-definition:
// exit targets, condition refs, object locations, and actor bindings.
func validate(r *Result) error {
	w := r.World
	if err := w.Validate(); err != nil {
		return err
	}

	for id, obj := range w.Objects {
		loc := obj.Location
		if loc == "" || loc == types.LocationPlayer {
			continue
		}
		_, isRoom := w.Rooms[loc]
		_, isObject := w.Objects[loc]
		if !isRoom && !isObject && !isActorID(r, loc) {
			return fmt.Errorf("object %q located in unknown place %q", id, loc)
		}
	}

	for _, binding := range r.Actors {
		a := binding.Actor
		if _, ok := w.Rooms[a.Location()]; !ok {
			return fmt.Errorf("actor %q starts in unknown room %q", a.ID(), a.Location())
		}
		if _, ok := w.Objects[binding.ObjectID]; !ok {
			return fmt.Errorf("actor %q bound to unknown object %q", a.ID(), binding.ObjectID)
		}
		for _, item := range a.Inventory() {
			if _, ok := w.Objects[item]; !ok {
				return fmt.Errorf("actor %q holds unknown object %q", a.ID(), item)
			}
		}
	}
	return nil
}

func isActorID(r *Result, id string) bool {
	for _, b := range r.Actors {
		if b.Actor.ID() == id {
			return true
		}
	}
	return false
}
