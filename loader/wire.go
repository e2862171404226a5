package loader

import (
	"github.com/halvard/dungeon/engine"
	"github.com/halvard/dungeon/engine/actors"
	"github.com/halvard/dungeon/engine/dispatch"
)

// NewEngine wires a compiled world into a ready engine: actors registered,
// message tables installed, batch policy set, player-side combat numbers
// taken from the configured difficulty tier.
func (r *Result) NewEngine(seed int64, policy dispatch.Policy) *engine.Engine {
	e := engine.New(r.World, seed)
	if policy != "" {
		e.Policy = policy
	}
	if r.difficulty != nil {
		e.SetDifficulty(*r.difficulty)
	}
	for name, table := range r.Messages {
		e.Catalog.Register(name, table)
	}
	for _, b := range r.Actors {
		e.AddActor(b.Actor, b.ObjectID)
	}
	return e
}

// SetDifficulty applies a config-level difficulty tier: every thief whose
// Lua block did not pin a tier is reprofiled, and engines wired from this
// result pick up the tier's player-side numbers.
func (r *Result) SetDifficulty(name string) {
	if name == "" {
		return
	}
	profile := actors.Profile(name)
	r.difficulty = &profile
	for _, b := range r.Actors {
		if b.PinnedDifficulty {
			continue
		}
		if thief, ok := b.Actor.(*actors.Thief); ok {
			thief.SetProfile(profile)
		}
	}
}
