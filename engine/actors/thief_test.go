package actors

import (
	"errors"
	"testing"

	"github.com/halvard/dungeon/engine/messages"
	"github.com/halvard/dungeon/engine/rng"
	"github.com/halvard/dungeon/types"
)

func thiefContext(seed int64) *Context {
	g := rng.New(seed)
	return &Context{
		RNG:      g,
		World:    map[string]*types.Object{},
		Messages: messages.NewCatalog(g),
	}
}

func newTestThief() *Thief {
	return NewThief("thief", "thief", "maze-1", "treasure-room", Normal)
}

func TestThief_InitialState(t *testing.T) {
	th := newTestThief()

	if th.Mode() != ModeConscious {
		t.Errorf("mode = %q, want conscious", th.Mode())
	}
	if th.Strength() != Normal.ThiefStrength {
		t.Errorf("strength = %d, want %d", th.Strength(), Normal.ThiefStrength)
	}
	if !th.TickEnabled() {
		t.Error("new thief should tick")
	}
}

func TestThief_DamageEqualToStrengthIsDeath(t *testing.T) {
	th := newTestThief()
	ctx := thiefContext(1)

	_, ok := th.OnDamage(ctx, th.Strength())
	if !ok {
		t.Fatal("lethal damage should be accepted")
	}
	if th.Mode() != ModeDead {
		t.Errorf("mode = %q, want dead", th.Mode())
	}
	if th.TickEnabled() {
		t.Error("dead thief must not tick")
	}

	// Death is terminal: further damage is rejected.
	if _, ok := th.OnDamage(ctx, 1); ok {
		t.Error("damage after death should be rejected")
	}
	if th.Mode() != ModeDead {
		t.Error("dead is terminal")
	}
}

func TestThief_DamageExceedingStrengthKnocksOut(t *testing.T) {
	th := newTestThief()
	ctx := thiefContext(1)

	th.OnDamage(ctx, th.Strength()+3)
	if th.Mode() != ModeUnconscious {
		t.Fatalf("mode = %q, want unconscious", th.Mode())
	}
	if th.Strength() != -1 {
		t.Errorf("strength = %d, want floor of -1", th.Strength())
	}
	if th.TickEnabled() {
		t.Error("unconscious thief must not tick")
	}
	if th.BoolFlag("fighting") {
		t.Error("knockout should clear the fighting flag")
	}

	// Repeated damage while unconscious never decrements past the floor.
	for i := 0; i < 5; i++ {
		th.OnDamage(ctx, 10)
	}
	if th.Strength() != -1 {
		t.Errorf("strength = %d after repeated damage, want -1", th.Strength())
	}
	if th.Mode() != ModeUnconscious {
		t.Errorf("mode = %q, want unconscious (idempotent)", th.Mode())
	}
}

func TestThief_Revival(t *testing.T) {
	th := newTestThief()
	ctx := thiefContext(1)

	th.OnDamage(ctx, th.Strength()+1)
	if th.Mode() != ModeUnconscious {
		t.Fatal("setup: thief should be unconscious")
	}

	th.OnConscious()
	if th.Mode() != ModeConscious {
		t.Errorf("mode = %q after revival, want conscious", th.Mode())
	}
	if !th.BoolFlag("fighting") {
		t.Error("revival should set fighting")
	}
	if !th.TickEnabled() {
		t.Error("revival should re-enable ticking")
	}

	// Revival does not resurrect the dead.
	th2 := newTestThief()
	th2.OnDamage(ctx, th2.Strength())
	th2.OnConscious()
	if th2.Mode() != ModeDead {
		t.Error("OnConscious must not revive a dead thief")
	}
}

func TestThief_AcceptGift(t *testing.T) {
	th := newTestThief()

	if err := th.AcceptGift("egg", 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !th.HasItem("egg") {
		t.Error("gift should be in inventory")
	}
	if !th.Engrossed() {
		t.Error("valuable gift should engross")
	}

	// Worthless gifts are accepted but do not engross.
	th2 := newTestThief()
	if err := th2.AcceptGift("leaflet", 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !th2.HasItem("leaflet") {
		t.Error("worthless gift still goes in the bag")
	}
	if th2.Engrossed() {
		t.Error("worthless gift should not engross")
	}
}

func TestThief_AcceptGift_ValidationErrors(t *testing.T) {
	th := newTestThief()

	err := th.AcceptGift("", 5)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(th.Inventory()) != 0 {
		t.Error("failed gift must not mutate inventory")
	}

	err = th.AcceptGift("egg", -1)
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(th.Inventory()) != 0 || th.Engrossed() {
		t.Error("failed gift must not mutate state")
	}
}

func TestThief_EngrossedPersistsThroughDamage(t *testing.T) {
	th := newTestThief()
	ctx := thiefContext(1)

	th.AcceptGift("egg", 10)
	th.OnDamage(ctx, 1)
	th.OnDamage(ctx, 1)
	if !th.Engrossed() {
		t.Error("engrossed must persist through damage")
	}

	th.ResetEngrossed()
	if th.Engrossed() {
		t.Error("explicit reset should clear engrossed")
	}
}

func TestThief_EngrossedCountdown(t *testing.T) {
	th := newTestThief()
	ctx := thiefContext(1)
	ctx.PlayerRoom = "elsewhere"

	th.AcceptGift("egg", 10)
	for i := 0; i < Normal.EngrossedTurns; i++ {
		if !th.Engrossed() {
			t.Fatalf("engrossed ended early at turn %d", i)
		}
		th.OnTick(ctx)
	}
	if th.Engrossed() {
		t.Error("engrossed should wear off after the profile duration")
	}
}

func TestThief_TreasureRoom(t *testing.T) {
	th := newTestThief()

	if th.TreasureRoomID() != "treasure-room" {
		t.Errorf("treasure room = %q", th.TreasureRoomID())
	}
	if th.IsInTreasureRoom() {
		t.Error("thief starts outside the treasure room")
	}
	th.SetLocation("treasure-room")
	if !th.IsInTreasureRoom() {
		t.Error("expected thief in treasure room")
	}
}

func TestThief_OnTick_StealsFromPlayerRoom(t *testing.T) {
	th := newTestThief()
	th.SetLocation("round-room")

	ctx := thiefContext(3)
	ctx.PlayerRoom = "round-room"
	ctx.World["stiletto"] = &types.Object{
		ID: "stiletto", Name: "stiletto", Location: "round-room",
		Portable: true, Visible: true,
	}

	// The steal probability gate eventually passes; the stiletto is then
	// taken unconditionally.
	stolen := false
	for i := 0; i < 200 && !stolen; i++ {
		th.OnTick(ctx)
		stolen = th.HasStiletto()
	}
	if !stolen {
		t.Error("expected the thief to lift the stiletto eventually")
	}
	if ctx.World["stiletto"].Visible {
		t.Error("stolen stiletto should be hidden")
	}
}

// certain builds a profile whose named probabilities are forced, so a
// single tick exercises one behavior path deterministically.
func certain(forced ...string) Difficulty {
	p := Normal
	p.HitProbability = 0
	p.DisarmProbability = 0
	p.Aggressiveness = 0
	p.MoveProbability = 0
	p.FleeProbability = 0
	p.StealProbability = 0
	for _, name := range forced {
		switch name {
		case "hit":
			p.HitProbability = 1
		case "disarm":
			p.DisarmProbability = 1
		case "aggressive":
			p.Aggressiveness = 1
		case "move":
			p.MoveProbability = 1
		case "flee":
			p.FleeProbability = 1
		case "steal":
			p.StealProbability = 1
		}
	}
	return p
}

func TestThief_OnTick_FightingThiefStrikesBack(t *testing.T) {
	th := NewThief("thief", "thief", "round-room", "treasure-room", certain("hit"))
	ctx := thiefContext(1)
	ctx.PlayerRoom = "round-room"

	th.OnDamage(ctx, 1) // provoked
	if !th.BoolFlag("fighting") {
		t.Fatal("setup: damage should start the fight")
	}

	lines := th.OnTick(ctx)
	if len(lines) != 1 {
		t.Fatalf("lines = %v, want one counterblow", lines)
	}
	if th.Location() != "round-room" {
		t.Error("a committed thief stands his ground")
	}
}

func TestThief_OnTick_DisarmsTheWeaponYouCarry(t *testing.T) {
	th := NewThief("thief", "thief", "round-room", "treasure-room", certain("hit", "disarm"))
	ctx := thiefContext(1)
	ctx.PlayerRoom = "round-room"
	ctx.World["sword"] = &types.Object{
		ID: "sword", Name: "elvish sword", Location: types.LocationPlayer,
		Portable: true, Visible: true, Tool: "weapon",
	}
	inv := []string{"sword"}
	ctx.PlayerInventory = &inv

	th.OnDamage(ctx, 1)
	lines := th.OnTick(ctx)

	if len(lines) != 1 {
		t.Fatalf("lines = %v, want disarm narration", lines)
	}
	if len(inv) != 0 {
		t.Errorf("inventory = %v, weapon should be knocked away", inv)
	}
	if ctx.World["sword"].Location != "round-room" {
		t.Errorf("sword at %q, want on the floor of round-room", ctx.World["sword"].Location)
	}
}

func TestThief_OnTick_WoundedThiefFlees(t *testing.T) {
	th := NewThief("thief", "thief", "round-room", "treasure-room", certain("flee"))
	ctx := thiefContext(1)
	ctx.PlayerRoom = "round-room"

	th.OnDamage(ctx, 1)
	lines := th.OnTick(ctx)

	if len(lines) != 1 {
		t.Fatalf("lines = %v, want flee narration", lines)
	}
	if !th.IsInTreasureRoom() {
		t.Errorf("location = %q, want the treasure room", th.Location())
	}
	if th.BoolFlag("fighting") {
		t.Error("fleeing ends the fight")
	}
}

func TestThief_OnTick_UnwoundedThiefNeverFlees(t *testing.T) {
	th := NewThief("thief", "thief", "round-room", "treasure-room", certain("flee", "hit"))
	ctx := thiefContext(1)
	ctx.PlayerRoom = "round-room"
	th.SetFlag("fighting", true) // picked a fight, untouched so far

	th.OnTick(ctx)
	if th.Location() != "round-room" {
		t.Error("an unwounded thief has no reason to run")
	}
}

func TestThief_OnTick_CarriedTreasureProvokesHim(t *testing.T) {
	th := NewThief("thief", "thief", "round-room", "treasure-room", certain("aggressive"))
	ctx := thiefContext(1)
	ctx.PlayerRoom = "round-room"
	ctx.World["jewels"] = &types.Object{
		ID: "jewels", Name: "trunk of jewels", Location: types.LocationPlayer,
		Portable: true, Visible: true, Value: 10,
	}
	inv := []string{"jewels"}
	ctx.PlayerInventory = &inv

	lines := th.OnTick(ctx)
	if !th.BoolFlag("fighting") {
		t.Fatal("visible treasure should tip the thief into a fight")
	}
	if len(lines) == 0 {
		t.Error("turning hostile should be narrated")
	}

	// Empty-handed players are beneath his notice.
	th2 := NewThief("thief2", "thief", "round-room", "treasure-room", certain("aggressive"))
	inv2 := []string{}
	ctx.PlayerInventory = &inv2
	th2.OnTick(ctx)
	if th2.BoolFlag("fighting") {
		t.Error("no treasure, no provocation")
	}
}

func TestThief_OnTick_WandersByWayOfHisHoard(t *testing.T) {
	th := NewThief("thief", "thief", "maze-1", "treasure-room", certain("move"))
	ctx := thiefContext(1)
	ctx.PlayerRoom = "round-room"

	th.OnTick(ctx)
	if !th.IsInTreasureRoom() {
		t.Fatalf("location = %q, first move heads for the hoard", th.Location())
	}

	lines := th.OnTick(ctx)
	if th.Location() != "round-room" {
		t.Fatalf("location = %q, second move seeks the player", th.Location())
	}
	if len(lines) == 0 {
		t.Error("arriving in the player's room should be announced")
	}
}

func TestThief_OnTick_StealNamesTheItem(t *testing.T) {
	th := NewThief("thief", "thief", "round-room", "treasure-room", certain("steal"))
	ctx := thiefContext(1)
	ctx.PlayerRoom = "round-room"
	ctx.Messages.Register("thief-action", messages.Table{
		Tables: map[string][]string{
			"steal": {"The thief relieves you of your {item}."},
		},
	})
	ctx.World["stiletto"] = &types.Object{
		ID: "stiletto", Name: "stiletto", Location: "round-room",
		Portable: true, Visible: true,
	}

	lines := th.OnTick(ctx)
	if len(lines) == 0 {
		t.Fatal("expected steal narration")
	}
	if lines[0] != "The thief relieves you of your stiletto." {
		t.Errorf("line = %q, {item} should be the item's display name", lines[0])
	}
}

func TestThief_OnDeath_DepositsBooty(t *testing.T) {
	th := newTestThief()
	th.SetLocation("treasure-room")
	ctx := thiefContext(1)
	ctx.World["coins"] = &types.Object{
		ID: "coins", Location: "thief", Portable: true,
		Visible: false, Touched: true, Value: 12,
	}
	th.AddItem("coins")

	th.OnDamage(ctx, th.Strength()) // exact kill triggers OnDeath

	obj := ctx.World["coins"]
	if obj.Location != "treasure-room" {
		t.Errorf("booty location = %q, want treasure-room", obj.Location)
	}
	if !obj.Visible || obj.Touched {
		t.Error("deposited booty should be visible with touched cleared")
	}
}

func TestThief_SnapshotRestore(t *testing.T) {
	th := newTestThief()
	ctx := thiefContext(1)
	th.AcceptGift("egg", 10)
	th.OnDamage(ctx, 2)
	th.SetLocation("maze-3")

	snap := th.Snapshot()

	restored := NewThief("thief", "thief", "x", "y", Normal)
	restored.Restore(snap)

	if restored.Mode() != th.Mode() ||
		restored.Strength() != th.Strength() ||
		restored.Engrossed() != th.Engrossed() ||
		restored.Location() != th.Location() ||
		restored.TreasureRoomID() != th.TreasureRoomID() {
		t.Errorf("restore mismatch: %+v vs snapshot of %+v", restored, th)
	}
	if !restored.HasItem("egg") {
		t.Error("inventory lost in restore")
	}
}
