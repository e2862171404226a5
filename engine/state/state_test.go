package state

import (
	"strings"
	"testing"

	"github.com/halvard/dungeon/types"
)

func testWorld() *World {
	w := NewWorld(types.GameInfo{Start: "west-of-house"})
	w.Rooms["west-of-house"] = &types.Room{
		ID: "west-of-house", Name: "West of House",
		Exits: map[string]types.Exit{
			"north": {To: "north-of-house"},
			"east": {To: "kitchen", Condition: &types.ExitCondition{
				Kind: CondObjectOpen, Ref: "window",
				FailureMessage: "The window is closed.",
			}},
		},
	}
	w.Rooms["north-of-house"] = &types.Room{ID: "north-of-house", Exits: map[string]types.Exit{}}
	w.Rooms["kitchen"] = &types.Room{ID: "kitchen", Exits: map[string]types.Exit{}}
	w.Objects["window"] = &types.Object{
		ID: "window", Name: "window", Location: "west-of-house",
		Visible: true, Container: &types.Container{},
	}
	w.Objects["lamp"] = &types.Object{
		ID: "lamp", Name: "brass lantern", Location: "west-of-house",
		Portable: true, Visible: true, Light: &types.Light{},
	}
	return w
}

func TestObservable_Composition(t *testing.T) {
	w := testWorld()
	obj := w.Objects["lamp"]

	if !w.Observable(obj) {
		t.Error("plain visible object should be observable")
	}

	obj.Visible = false
	if w.Observable(obj) {
		t.Error("magically hidden object must not be observable")
	}

	obj.Visible = true
	obj.Hidden = true
	if w.Observable(obj) {
		t.Error("puzzle-hidden object must not be observable")
	}

	obj.Hidden = false
	obj.VisibleFor = []string{"rainbow-solid"}
	if w.Observable(obj) {
		t.Error("unsatisfied visibility tag must hide the object")
	}

	w.Flags["rainbow-solid"] = true
	if !w.Observable(obj) {
		t.Error("all conditions satisfied: object should be observable")
	}
}

func TestObjectsInRoom_SortedAndFiltered(t *testing.T) {
	w := testWorld()
	w.Objects["lamp"].Visible = false

	got := w.ObjectsInRoom("west-of-house")
	if len(got) != 1 || got[0] != "window" {
		t.Errorf("got %v, want [window]", got)
	}
}

func TestEvaluateExit(t *testing.T) {
	w := testWorld()

	if _, _, ok := w.EvaluateExit("west-of-house", "south"); ok {
		t.Error("missing exit should fail")
	}

	target, _, ok := w.EvaluateExit("west-of-house", "north")
	if !ok || target != "north-of-house" {
		t.Errorf("got %q ok=%v", target, ok)
	}

	// Conditional exit: closed window blocks.
	_, msg, ok := w.EvaluateExit("west-of-house", "east")
	if ok {
		t.Error("closed window should block the exit")
	}
	if msg != "The window is closed." {
		t.Errorf("failure message %q", msg)
	}

	w.Objects["window"].Container.Open = true
	target, _, ok = w.EvaluateExit("west-of-house", "east")
	if !ok || target != "kitchen" {
		t.Errorf("open window: got %q ok=%v", target, ok)
	}
}

func TestEvaluateExit_NotBlocked(t *testing.T) {
	w := testWorld()
	w.Objects["troll"] = &types.Object{
		ID: "troll", Location: "west-of-house", Visible: true,
		Door: &types.Door{BlocksPassage: true},
	}
	w.Rooms["west-of-house"].Exits["west"] = types.Exit{
		To: "kitchen", Condition: &types.ExitCondition{
			Kind: CondNotBlocked, Ref: "troll",
			FailureMessage: "The troll fends you off with a menacing gesture.",
		},
	}

	_, msg, ok := w.EvaluateExit("west-of-house", "west")
	if ok {
		t.Error("blocking troll should stop movement")
	}
	if !strings.Contains(msg, "troll") {
		t.Errorf("failure message %q should mention the troll", msg)
	}

	w.Objects["troll"].Door.BlocksPassage = false
	if _, _, ok := w.EvaluateExit("west-of-house", "west"); !ok {
		t.Error("cleared block should allow movement")
	}
}

func TestInventoryHelpers(t *testing.T) {
	w := testWorld()
	w.Player.Inventory = []string{"lamp"}

	if !w.HasItem("lamp") {
		t.Error("expected lamp in inventory")
	}
	if w.HasLitLight() {
		t.Error("unlit lamp should not count as light")
	}
	w.Objects["lamp"].Light.Lit = true
	if !w.HasLitLight() {
		t.Error("lit lamp should count as light")
	}

	w.RemoveFromInventory("lamp")
	if w.HasItem("lamp") {
		t.Error("lamp should be removed")
	}
}

func TestValidate(t *testing.T) {
	w := testWorld()
	if err := w.Validate(); err != nil {
		t.Fatalf("valid world rejected: %v", err)
	}

	w.Rooms["west-of-house"].Exits["down"] = types.Exit{To: "nowhere"}
	if err := w.Validate(); err == nil {
		t.Error("dangling exit target should fail validation")
	}
	delete(w.Rooms["west-of-house"].Exits, "down")

	w.Rooms["west-of-house"].Exits["in"] = types.Exit{
		To: "kitchen", Condition: &types.ExitCondition{Kind: CondObjectOpen, Ref: "ghost"},
	}
	if err := w.Validate(); err == nil {
		t.Error("condition on unknown object should fail validation")
	}
}
