package actors

import (
	"github.com/halvard/dungeon/engine/inventory"
	"github.com/halvard/dungeon/types"
)

// Thief lifecycle modes.
const (
	ModeConscious   = "conscious"
	ModeUnconscious = "unconscious"
	ModeDead        = "dead"
)

// strengthFloor stops repeated damage while unconscious from
// runaway-decrementing strength.
const strengthFloor = -1

// Fallback narration when the message catalog has no entry.
const thiefFallbackMessage = "The thief is a slippery character."

// Thief is the light-fingered gentleman. Conscious ↔ unconscious is
// revivable; dead is terminal.
type Thief struct {
	Base
	mode           string
	strength       int
	engrossed      bool
	engrossedTurns int
	profile        Difficulty
	treasureRoomID string
}

// NewThief creates a thief at the given room using a difficulty profile.
func NewThief(id, name, room, treasureRoom string, profile Difficulty) *Thief {
	t := &Thief{
		Base:           NewBase(id, name, room),
		mode:           ModeConscious,
		strength:       profile.ThiefStrength,
		profile:        profile,
		treasureRoomID: treasureRoom,
	}
	if t.strength <= 0 {
		t.strength = Normal.ThiefStrength
	}
	t.SetFlag("fighting", false)
	return t
}

// SetProfile swaps the difficulty tier. Strength is rebased only while the
// thief is untouched at full health.
func (t *Thief) SetProfile(p Difficulty) {
	if t.strength == t.profile.ThiefStrength {
		t.strength = p.ThiefStrength
	}
	t.profile = p
}

func (t *Thief) Mode() string     { return t.mode }
func (t *Thief) Strength() int    { return t.strength }
func (t *Thief) Engrossed() bool  { return t.engrossed }

// TreasureRoomID returns the room where the thief hoards his booty.
func (t *Thief) TreasureRoomID() string { return t.treasureRoomID }

// IsInTreasureRoom reports whether the thief is currently at his hoard.
func (t *Thief) IsInTreasureRoom() bool {
	return t.Location() == t.treasureRoomID
}

// HasStiletto reports whether the stiletto is in the thief's inventory.
func (t *Thief) HasStiletto() bool {
	return t.HasItem(inventory.StilettoID)
}

// OnDamage applies combat damage. Strength exactly zero is death
// (terminal); negative strength floors at -1 and knocks the thief out,
// idempotently if he is already unconscious.
func (t *Thief) OnDamage(ctx *Context, amount int) ([]string, bool) {
	if t.mode == ModeDead {
		return []string{"The thief is already dead."}, false
	}

	t.strength -= amount
	switch {
	case t.strength == 0:
		t.mode = ModeDead
		t.SetTickEnabled(false)
		t.SetFlag("fighting", false)
		return append([]string{t.narrate(ctx, "combat", "killed",
			"The thief drops to the floor, dead.")}, t.OnDeath(ctx)...), true

	case t.strength < 0:
		if t.strength < strengthFloor {
			t.strength = strengthFloor
		}
		if t.mode == ModeUnconscious {
			return []string{t.narrate(ctx, "combat", "still-out",
				"The thief does not respond.")}, true
		}
		t.mode = ModeUnconscious
		t.SetTickEnabled(false)
		t.SetFlag("fighting", false)
		return []string{t.narrate(ctx, "combat", "knockout",
			"The thief crumples to the floor, unconscious.")}, true

	default:
		t.SetFlag("fighting", true)
		return []string{t.narrate(ctx, "combat", "wounded",
			"The thief staggers from the blow.")}, true
	}
}

// OnConscious revives an unconscious thief. Revival is an explicit
// external call, never automatic, and rejoins the fight.
func (t *Thief) OnConscious() {
	if t.mode != ModeUnconscious {
		return
	}
	t.mode = ModeConscious
	t.SetTickEnabled(true)
	t.SetFlag("fighting", true)
}

// AcceptGift adds an item to the thief's inventory. A strictly positive
// value engrosses him; engrossed state persists through damage and clears
// only via ResetEngrossed or the tick countdown.
func (t *Thief) AcceptGift(itemID string, value int) error {
	if itemID == "" {
		return &ValidationError{Op: "AcceptGift", Reason: "empty item id"}
	}
	if value < 0 {
		return &ValidationError{Op: "AcceptGift", Reason: "negative value"}
	}
	t.AddItem(itemID)
	if value > 0 {
		t.engrossed = true
		t.engrossedTurns = t.profile.EngrossedTurns
	}
	return nil
}

// ResetEngrossed explicitly clears the engrossed state.
func (t *Thief) ResetEngrossed() {
	t.engrossed = false
	t.engrossedTurns = 0
}

// OnTick runs the thief's autonomous behavior for one turn: away from the
// player he wanders his rounds, in a fight he strikes back or flees, and
// otherwise he sweeps the room for loot.
func (t *Thief) OnTick(ctx *Context) []string {
	if !t.TickEnabled() || t.mode != ModeConscious {
		return nil
	}

	// An engrossed thief admires his gift instead of working.
	if t.engrossed {
		if t.engrossedTurns > 0 {
			t.engrossedTurns--
		}
		if t.engrossedTurns == 0 {
			t.engrossed = false
		}
		return nil
	}

	if t.Location() != ctx.PlayerRoom {
		if ctx.RNG.Bool(t.profile.MoveProbability) {
			return t.wander(ctx)
		}
		return nil
	}

	if t.BoolFlag("fighting") {
		return t.fight(ctx)
	}

	var lines []string
	if ctx.RNG.Bool(t.profile.StealProbability) {
		res := inventory.StealJunk(ctx.RNG, ctx.PlayerRoom, ctx.World, nil, t.ID(), t.InventoryRef())
		if res.AnyMoved {
			lines = append(lines, t.narrateWith(ctx, "action", "steal",
				"You catch a glimpse of a seedy-looking gentleman slipping something into his bag.",
				map[string]string{"item": t.displayName(ctx, res.Moved[0])}))
			if res.LostLight {
				lines = append(lines, "You are plunged into darkness.")
			}
		}
	}

	// The sight of carried valuables can tip him from larceny to violence.
	if t.playerCarriesTreasure(ctx) && ctx.RNG.Bool(t.profile.Aggressiveness) {
		t.SetFlag("fighting", true)
		lines = append(lines, t.narrate(ctx, "combat", "threaten",
			"The thief draws his stiletto, eyeing the valuables you carry."))
	}
	return lines
}

// fight is one combat turn on the thief's side. A wounded thief may cut his
// losses and vanish to his hoard; otherwise he stabs, and a landed blow can
// knock the player's weapon to the floor.
func (t *Thief) fight(ctx *Context) []string {
	if t.strength < t.profile.ThiefStrength && ctx.RNG.Bool(t.profile.FleeProbability) {
		t.SetFlag("fighting", false)
		t.SetLocation(t.treasureRoomID)
		return []string{t.narrate(ctx, "combat", "flee",
			"Your opponent, determining discretion to be the better part of valor, vanishes into the gloom.")}
	}
	if !ctx.RNG.Bool(t.profile.HitProbability) {
		return []string{t.narrate(ctx, "combat", "miss",
			"The thief stabs nonchalantly with his stiletto and misses.")}
	}
	if line, ok := t.disarmPlayer(ctx); ok {
		return []string{line}
	}
	return []string{t.narrate(ctx, "combat", "hit",
		"The thief strikes like a snake! The resulting wound is serious.")}
}

// disarmPlayer knocks a carried weapon to the floor on a disarm roll. The
// roll is made even when no weapon is carried, keeping draw sequences
// aligned across inventories.
func (t *Thief) disarmPlayer(ctx *Context) (string, bool) {
	if !ctx.RNG.Bool(t.profile.DisarmProbability) || ctx.PlayerInventory == nil {
		return "", false
	}
	for i, id := range *ctx.PlayerInventory {
		obj, ok := ctx.World[id]
		if !ok || obj.Tool != "weapon" {
			continue
		}
		*ctx.PlayerInventory = append((*ctx.PlayerInventory)[:i], (*ctx.PlayerInventory)[i+1:]...)
		obj.Location = ctx.PlayerRoom
		return t.narrateWith(ctx, "combat", "disarm",
			"A quick thrust pinks your arm, and your weapon goes flying.",
			map[string]string{"item": obj.Name}), true
	}
	return "", false
}

// wander moves the thief between his hoard and wherever the player is.
// Arriving in the player's room announces him; slipping away is silent.
func (t *Thief) wander(ctx *Context) []string {
	if !t.IsInTreasureRoom() {
		t.SetLocation(t.treasureRoomID)
		return nil
	}
	t.SetLocation(ctx.PlayerRoom)
	return []string{t.narrate(ctx, "action", "appear",
		"A suspicious-looking individual with a large bag slips into the room.")}
}

// playerCarriesTreasure reports whether anything of value is in the
// player's hands.
func (t *Thief) playerCarriesTreasure(ctx *Context) bool {
	if ctx.PlayerInventory == nil {
		return false
	}
	for _, id := range *ctx.PlayerInventory {
		if obj, ok := ctx.World[id]; ok && obj.Value > 0 {
			return true
		}
	}
	return false
}

func (t *Thief) displayName(ctx *Context, id string) string {
	if obj, ok := ctx.World[id]; ok && obj.Name != "" {
		return obj.Name
	}
	return id
}

// OnEncounter fires when the player enters the thief's room.
func (t *Thief) OnEncounter(ctx *Context) []string {
	switch t.mode {
	case ModeDead:
		return nil
	case ModeUnconscious:
		return []string{t.narrate(ctx, "action", "unconscious",
			"The thief lies sprawled on the floor, breathing shallowly.")}
	}
	if t.engrossed {
		return []string{t.narrate(ctx, "action", "engrossed",
			"The thief is engrossed in his new trinket and ignores you.")}
	}
	return []string{t.narrate(ctx, "action", "appear",
		"A suspicious-looking individual with a large bag watches you.")}
}

// OnDeath deposits the hoard at the thief's final location and reveals it.
func (t *Thief) OnDeath(ctx *Context) []string {
	res := inventory.DepositBooty(t.InventoryRef(), t.Location(), ctx.World)
	if !res.AnyMoved {
		return nil
	}
	return []string{t.narrate(ctx, "action", "booty",
		"As the thief dies, his booty reappears around you.")}
}

// narrate looks up catalog flavor text, guaranteeing a line even with
// incomplete message data.
func (t *Thief) narrate(ctx *Context, table, category, fallback string) string {
	return t.narrateWith(ctx, table, category, fallback, nil)
}

func (t *Thief) narrateWith(ctx *Context, table, category, fallback string, extra map[string]string) string {
	if fallback == "" {
		fallback = thiefFallbackMessage
	}
	if ctx == nil || ctx.Messages == nil {
		return fallback
	}
	repl := map[string]string{"name": t.Name()}
	for k, v := range extra {
		repl[k] = v
	}
	return ctx.Messages.RandomOr("thief-"+table, category, repl, fallback)
}

// Snapshot captures the thief's full state for saving.
func (t *Thief) Snapshot() types.ActorState {
	s := t.baseSnapshot(t.mode)
	s.Flags["strength"] = t.strength
	s.Flags["engrossed"] = t.engrossed
	s.Flags["engrossed_turns"] = t.engrossedTurns
	s.Flags["treasure_room"] = t.treasureRoomID
	return s
}

// Restore applies a saved snapshot.
func (t *Thief) Restore(s types.ActorState) {
	t.restoreBase(s)
	if s.Mode != "" {
		t.mode = s.Mode
	}
	if v, ok := flagInt(s.Flags, "strength"); ok {
		t.strength = v
	}
	if v, ok := s.Flags["engrossed"].(bool); ok {
		t.engrossed = v
	}
	if v, ok := flagInt(s.Flags, "engrossed_turns"); ok {
		t.engrossedTurns = v
	}
	if v, ok := s.Flags["treasure_room"].(string); ok {
		t.treasureRoomID = v
	}
}
