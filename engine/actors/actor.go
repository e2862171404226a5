// Package actors implements the NPC behavior cores: lifecycle state
// machines with tick, encounter, death, and damage hooks.
package actors

import (
	"fmt"

	"github.com/halvard/dungeon/engine/messages"
	"github.com/halvard/dungeon/engine/rng"
	"github.com/halvard/dungeon/types"
)

// Context carries the world references hooks act on. PlayerInventory may be
// nil for actors that never touch the player's belongings.
type Context struct {
	RNG             *rng.Generator
	World           map[string]*types.Object
	Messages        *messages.Catalog
	PlayerRoom      string
	PlayerInventory *[]string
}

// Actor is an NPC with autonomous and reactive behavior. OnDamage returns
// false when the attack is rejected by the actor's current state (for
// example an already-unconscious troll).
type Actor interface {
	ID() string
	Name() string
	Location() string
	SetLocation(room string)
	Inventory() []string
	TickEnabled() bool

	OnTick(ctx *Context) []string
	OnEncounter(ctx *Context) []string
	OnDeath(ctx *Context) []string
	OnDamage(ctx *Context, amount int) ([]string, bool)

	Snapshot() types.ActorState
	Restore(state types.ActorState)
}

// ValidationError marks programmatic misuse of an actor API, as opposed to
// a world-logic failure the player sees narrated.
type ValidationError struct {
	Op     string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

// Base holds the state shared by every actor.
type Base struct {
	id          string
	name        string
	location    string
	inventory   []string
	flags       map[string]any
	tickEnabled bool
}

// NewBase creates actor base state.
func NewBase(id, name, location string) Base {
	return Base{
		id:          id,
		name:        name,
		location:    location,
		flags:       map[string]any{},
		tickEnabled: true,
	}
}

func (b *Base) ID() string       { return b.id }
func (b *Base) Name() string     { return b.name }
func (b *Base) Location() string { return b.location }

func (b *Base) SetLocation(room string) { b.location = room }

func (b *Base) Inventory() []string { return b.inventory }

// InventoryRef exposes the inventory slice for the inventory engine's
// idempotent push.
func (b *Base) InventoryRef() *[]string { return &b.inventory }

// AddItem appends an item without duplicating an existing entry.
func (b *Base) AddItem(id string) {
	for _, v := range b.inventory {
		if v == id {
			return
		}
	}
	b.inventory = append(b.inventory, id)
}

// HasItem reports inventory membership.
func (b *Base) HasItem(id string) bool {
	for _, v := range b.inventory {
		if v == id {
			return true
		}
	}
	return false
}

func (b *Base) TickEnabled() bool        { return b.tickEnabled }
func (b *Base) SetTickEnabled(on bool)   { b.tickEnabled = on }
func (b *Base) Flag(key string) any      { return b.flags[key] }
func (b *Base) SetFlag(key string, v any) {
	b.flags[key] = v
}

// BoolFlag reads a flag as a boolean; unset or non-bool flags are false.
func (b *Base) BoolFlag(key string) bool {
	v, _ := b.flags[key].(bool)
	return v
}

// Default hook implementations: no behavior.
func (b *Base) OnTick(*Context) []string      { return nil }
func (b *Base) OnEncounter(*Context) []string { return nil }
func (b *Base) OnDeath(*Context) []string     { return nil }
func (b *Base) OnDamage(*Context, int) ([]string, bool) {
	return nil, true
}

func (b *Base) baseSnapshot(mode string) types.ActorState {
	flags := make(map[string]any, len(b.flags))
	for k, v := range b.flags {
		flags[k] = v
	}
	return types.ActorState{
		ID:          b.id,
		Name:        b.name,
		Location:    b.location,
		Inventory:   append([]string(nil), b.inventory...),
		Mode:        mode,
		Flags:       flags,
		TickEnabled: b.tickEnabled,
	}
}

func (b *Base) restoreBase(s types.ActorState) {
	b.location = s.Location
	b.inventory = append([]string(nil), s.Inventory...)
	b.flags = make(map[string]any, len(s.Flags))
	for k, v := range s.Flags {
		b.flags[k] = v
	}
	b.tickEnabled = s.TickEnabled
}

// Snapshot and Restore for plain actors with no extra mode.
func (b *Base) Snapshot() types.ActorState { return b.baseSnapshot("") }
func (b *Base) Restore(s types.ActorState) { b.restoreBase(s) }

// flagInt reads an integer flag, tolerating the float64 that JSON
// round-trips produce.
func flagInt(flags map[string]any, key string) (int, bool) {
	switch v := flags[key].(type) {
	case int:
		return v, true
	case float64:
		return int(v), true
	}
	return 0, false
}
