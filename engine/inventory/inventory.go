// Package inventory moves objects between rooms, actors, and the player,
// handling probabilistic selection, the thief's magical hiding, touch
// tracking, and light-source-loss detection.
package inventory

import (
	"sort"

	"github.com/halvard/dungeon/engine/rng"
	"github.com/halvard/dungeon/types"
)

// Items the thief never parts with.
const (
	StilettoID = "stiletto"
	LargeBagID = "large-bag"
)

// Options controls a MoveItems call.
type Options struct {
	Probability    *float64  // per-item move chance; nil moves unconditionally
	Hide           bool      // flip visibility off ("thief's magic")
	Touch          bool      // set the touched marker
	ActorInventory *[]string // push moved IDs here, without duplicates
}

// Chance is a convenience for building Options.Probability.
func Chance(p float64) *float64 {
	return &p
}

// Result reports what a move operation did.
type Result struct {
	Moved     []string
	AnyMoved  bool
	LostLight bool // a moved item was a currently lit light source
}

// MoveItems relocates each listed object to dest. IDs absent from the world
// map are skipped. When Probability is set, each item passes an independent
// RNG check before moving.
func MoveItems(g *rng.Generator, ids []string, dest string, world map[string]*types.Object, opts Options) Result {
	var res Result
	for _, id := range ids {
		obj, ok := world[id]
		if !ok {
			continue
		}
		if opts.Probability != nil && !g.Bool(*opts.Probability) {
			continue
		}

		obj.Location = dest
		if opts.Hide {
			obj.Visible = false
		}
		if opts.Touch {
			obj.Touched = true
		}
		if opts.ActorInventory != nil && !contains(*opts.ActorInventory, id) {
			*opts.ActorInventory = append(*opts.ActorInventory, id)
		}
		if obj.Light != nil && obj.Light.Lit {
			res.LostLight = true
		}
		res.Moved = append(res.Moved, id)
	}
	res.AnyMoved = len(res.Moved) > 0
	return res
}

// junkStealChance is the per-item probability for ordinary worthless loot.
const junkStealChance = 0.10

// StealJunk has the thief sweep a room for worthless trinkets. Candidates
// must be visible, not sacred, portable, and of no value. Items in
// alwaysSteal (default: the stiletto) are taken unconditionally; the rest
// pass an independent 10% check. Stolen items move to the thief, hidden
// and touch-marked.
func StealJunk(g *rng.Generator, roomID string, world map[string]*types.Object, alwaysSteal []string, thiefID string, thiefInventory *[]string) Result {
	if alwaysSteal == nil {
		alwaysSteal = []string{StilettoID}
	}

	// Sorted candidate order keeps the RNG draw sequence reproducible
	// across runs; map iteration order is not.
	var unconditional, chancy []string
	for id, obj := range world {
		if obj.Location != roomID {
			continue
		}
		if !obj.Visible || obj.Sacred || !obj.Portable || obj.Value > 0 {
			continue
		}
		if contains(alwaysSteal, id) {
			unconditional = append(unconditional, id)
		} else {
			chancy = append(chancy, id)
		}
	}

	sort.Strings(unconditional)
	sort.Strings(chancy)

	res := MoveItems(g, unconditional, thiefID, world, Options{
		Hide:           true,
		Touch:          true,
		ActorInventory: thiefInventory,
	})
	chanceRes := MoveItems(g, chancy, thiefID, world, Options{
		Probability:    Chance(junkStealChance),
		Hide:           true,
		Touch:          true,
		ActorInventory: thiefInventory,
	})

	res.Moved = append(res.Moved, chanceRes.Moved...)
	res.AnyMoved = len(res.Moved) > 0
	res.LostLight = res.LostLight || chanceRes.LostLight
	return res
}

// RobMaze is StealJunk under its maze-context name.
func RobMaze(g *rng.Generator, roomID string, world map[string]*types.Object, alwaysSteal []string, thiefID string, thiefInventory *[]string) Result {
	return StealJunk(g, roomID, world, alwaysSteal, thiefID, thiefInventory)
}

// DepositBooty drops the thief's valuables into targetRoom, undoing the
// magical hiding and clearing the touched marker. The stiletto and the
// large bag are always retained; worthless items stay with the thief.
// A deposited egg is forced open.
func DepositBooty(thiefInventory *[]string, targetRoom string, world map[string]*types.Object) Result {
	var res Result
	var kept []string

	for _, id := range *thiefInventory {
		obj, ok := world[id]
		if !ok {
			continue
		}
		if id == StilettoID || id == LargeBagID || obj.Value <= 0 {
			kept = append(kept, id)
			continue
		}

		obj.Location = targetRoom
		obj.Visible = true
		obj.Touched = false
		if obj.ID == "egg" && obj.Container != nil {
			obj.Container.Open = true
		}
		if obj.Light != nil && obj.Light.Lit {
			res.LostLight = true
		}
		res.Moved = append(res.Moved, id)
	}

	*thiefInventory = kept
	res.AnyMoved = len(res.Moved) > 0
	return res
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
