package actors

import "github.com/halvard/dungeon/types"

// Troll states, stored as strings and mirrored onto the troll's GameObject
// so non-actor-aware code (room-exit blocking) reads them directly.
const (
	TrollArmed       = "armed"
	TrollUnconscious = "unconscious"
	TrollDisarmed    = "disarmed"
	TrollDead        = "dead"
)

const trollFallbackMessage = "The troll brandishes his bloody axe."

// Troll guards a passage while armed. Knocking him out drops his weapon
// and unblocks the passage; attacking him again after that is rejected.
type Troll struct {
	Base
	state    string
	strength int
	objectID string // GameObject mirroring the troll in the room
	weaponID string
}

// NewTroll creates an armed troll guarding the given room.
func NewTroll(id, name, room, objectID, weaponID string, strength int) *Troll {
	t := &Troll{
		Base:     NewBase(id, name, room),
		state:    TrollArmed,
		strength: strength,
		objectID: objectID,
		weaponID: weaponID,
	}
	t.AddItem(weaponID)
	t.SetFlag("fighting", false)
	return t
}

func (t *Troll) State() string { return t.state }
func (t *Troll) Strength() int { return t.strength }

// BlocksPassage reports whether the troll currently bars the way.
func (t *Troll) BlocksPassage() bool {
	return t.state == TrollArmed || t.state == TrollDisarmed
}

// OnDamage applies combat damage. An unconscious or dead troll rejects
// the attack outright rather than absorbing it silently.
func (t *Troll) OnDamage(ctx *Context, amount int) ([]string, bool) {
	switch t.state {
	case TrollUnconscious:
		t.sync(ctx)
		return []string{"Attacking an unconscious troll is hardly sporting."}, false
	case TrollDead:
		return []string{"The troll is already dead."}, false
	}

	t.strength -= amount
	if t.strength > 0 {
		t.SetFlag("fighting", true)
		t.sync(ctx)
		return []string{t.narrate(ctx, "wounded",
			"The flat of the troll's axe hits you delicately on the head, but the troll staggers from your blow.")}, true
	}

	// Knocked out: drop the weapon, stop blocking the passage.
	t.state = TrollUnconscious
	t.SetTickEnabled(false)
	t.SetFlag("fighting", false)
	lines := []string{t.narrate(ctx, "knockout",
		"The troll collapses in a heap, unconscious.")}
	lines = append(lines, t.dropWeapon(ctx)...)
	t.sync(ctx)
	return lines, true
}

// Disarm knocks the axe from the troll's hands. He keeps blocking the
// passage until he is actually unconscious.
func (t *Troll) Disarm(ctx *Context) []string {
	if t.state != TrollArmed {
		return nil
	}
	t.state = TrollDisarmed
	t.SetFlag("staggered", true)
	lines := []string{t.narrate(ctx, "disarm",
		"The axe flies from the troll's hands and lands on the floor.")}
	lines = append(lines, t.dropWeapon(ctx)...)
	t.sync(ctx)
	return lines
}

// OnTick has a disarmed troll recover his axe when it is within reach.
// The turn he loses it he is still scrambling, which leaves a quick player
// one chance to snatch the axe first.
func (t *Troll) OnTick(ctx *Context) []string {
	if t.state != TrollDisarmed || ctx == nil {
		return nil
	}
	if t.BoolFlag("staggered") {
		t.SetFlag("staggered", false)
		return nil
	}
	weapon, ok := ctx.World[t.weaponID]
	if !ok || weapon.Location != t.Location() {
		return nil
	}
	weapon.Location = t.ID()
	t.AddItem(t.weaponID)
	t.state = TrollArmed
	t.sync(ctx)
	return []string{t.narrate(ctx, "rearm",
		"The troll scoops up his axe and glowers at you.")}
}

// OnEncounter fires when the player enters the troll's room.
func (t *Troll) OnEncounter(ctx *Context) []string {
	switch t.state {
	case TrollArmed, TrollDisarmed:
		return []string{t.narrate(ctx, "block",
			"A nasty-looking troll, brandishing a bloody axe, blocks all passages out of the room.")}
	case TrollUnconscious:
		return []string{"An unconscious troll is sprawled on the floor."}
	}
	return nil
}

// OnDeath finishes the troll off, for completeness of the lifecycle.
func (t *Troll) OnDeath(ctx *Context) []string {
	if t.state == TrollDead {
		return nil
	}
	lines := t.dropWeapon(ctx)
	t.state = TrollDead
	t.SetTickEnabled(false)
	t.SetFlag("fighting", false)
	t.sync(ctx)
	return append(lines, t.narrate(ctx, "death",
		"The troll sinks to the ground and vanishes in a cloud of greasy black smoke."))
}

// dropWeapon moves the axe from the troll's hands to his room, visible.
func (t *Troll) dropWeapon(ctx *Context) []string {
	if !t.HasItem(t.weaponID) || ctx == nil {
		return nil
	}
	var kept []string
	for _, id := range t.Inventory() {
		if id != t.weaponID {
			kept = append(kept, id)
		}
	}
	*t.InventoryRef() = kept

	if weapon, ok := ctx.World[t.weaponID]; ok {
		weapon.Location = t.Location()
		weapon.Visible = true
	}
	return nil
}

// sync mirrors the troll's state onto its GameObject after each action.
func (t *Troll) sync(ctx *Context) {
	if ctx == nil {
		return
	}
	obj, ok := ctx.World[t.objectID]
	if !ok {
		return
	}
	if obj.Combat == nil {
		obj.Combat = &types.Combat{}
	}
	obj.Combat.ActorState = t.state
	obj.Combat.Strength = t.strength
	if obj.Door == nil {
		obj.Door = &types.Door{}
	}
	obj.Door.BlocksPassage = t.BlocksPassage()
}

func (t *Troll) narrate(ctx *Context, category, fallback string) string {
	if ctx == nil || ctx.Messages == nil {
		return fallback
	}
	return ctx.Messages.RandomOr("troll-combat", category,
		map[string]string{"name": t.Name()}, fallback)
}

// Snapshot captures the troll's full state for saving.
func (t *Troll) Snapshot() types.ActorState {
	s := t.baseSnapshot(t.state)
	s.Flags["strength"] = t.strength
	s.Flags["object_id"] = t.objectID
	s.Flags["weapon_id"] = t.weaponID
	return s
}

// Restore applies a saved snapshot.
func (t *Troll) Restore(s types.ActorState) {
	t.restoreBase(s)
	if s.Mode != "" {
		t.state = s.Mode
	}
	if v, ok := flagInt(s.Flags, "strength"); ok {
		t.strength = v
	}
	if v, ok := s.Flags["object_id"].(string); ok {
		t.objectID = v
	}
	if v, ok := s.Flags["weapon_id"].(string); ok {
		t.weaponID = v
	}
}
