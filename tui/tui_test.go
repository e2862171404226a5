package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/halvard/dungeon/engine"
	"github.com/halvard/dungeon/engine/state"
	"github.com/halvard/dungeon/types"
)

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		kind string
		line string
		want lineKind
	}{
		{"description", "Exits: north, south, east.", kindExits},
		{"description", "There is a brass lantern here.", kindObject},
		{"description", "A grand hall with stone walls.", kindNarrative},
		{"description", "Taken.", kindNarrative},
		{"description", "", kindNarrative},
		{"error", "You can't go that way.", kindError},
		{"error", "Go where?", kindError},
		{"combat", "Your blow glances off.", kindCombat},
		{"system", "Your score is 5, in 3 moves.", kindSystem},
		{"help", "Move with compass directions.", kindSystem},
		{"", "[trace] fail-early: 2 executed, 0 failed, 0 skipped", kindTrace},
		{"inventory", "You are carrying:", kindNarrative},
	}
	for _, tt := range tests {
		got := classifyLine(tt.kind, tt.line)
		if got != tt.want {
			t.Errorf("classifyLine(%q, %q) = %v, want %v", tt.kind, tt.line, got, tt.want)
		}
	}
}

func TestStyledFloorItem(t *testing.T) {
	got := styledFloorItem("There is a brass lantern here.")
	if !strings.Contains(got, "brass lantern") || !strings.Contains(got, "There is a ") {
		t.Errorf("styled line lost its text: %q", got)
	}
	// Lines that do not match the frame render whole.
	got = styledFloorItem("There is a faint glow to the east")
	if !strings.Contains(got, "faint glow") {
		t.Errorf("styled line lost its text: %q", got)
	}
}

func TestWordWrap(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"short", 80, "short"},
		{"hello world", 5, "hello\nworld"},
		{"You are in a maze of twisty little passages, all alike.", 30,
			"You are in a maze of twisty\nlittle passages, all alike."},
		{"", 80, ""},
		{"one", 80, "one"},
		{"a b c d e", 3, "a b\nc d\ne"},
	}
	for _, tt := range tests {
		got := wordWrap(tt.text, tt.width)
		if got != tt.want {
			t.Errorf("wordWrap(%q, %d) =\n  %q\nwant:\n  %q", tt.text, tt.width, got, tt.want)
		}
	}
}

func TestHistory_PushAndOlder(t *testing.T) {
	h := NewHistory(5)
	h.Push("look")
	h.Push("go north")
	h.Push("take lamp")

	older, ok := h.Older()
	if !ok || older != "take lamp" {
		t.Errorf("expected 'take lamp', got %q (ok=%v)", older, ok)
	}

	older, ok = h.Older()
	if !ok || older != "go north" {
		t.Errorf("expected 'go north', got %q (ok=%v)", older, ok)
	}

	older, ok = h.Older()
	if !ok || older != "look" {
		t.Errorf("expected 'look', got %q (ok=%v)", older, ok)
	}

	// At oldest, stays there.
	older, ok = h.Older()
	if !ok || older != "look" {
		t.Errorf("expected 'look' at boundary, got %q (ok=%v)", older, ok)
	}
}

func TestHistory_Newer(t *testing.T) {
	h := NewHistory(5)
	h.Push("look")
	h.Push("go north")

	h.Older() // "go north"
	h.Older() // "look"

	newer, ok := h.Newer()
	if !ok || newer != "go north" {
		t.Errorf("expected 'go north', got %q (ok=%v)", newer, ok)
	}

	_, ok = h.Newer()
	if ok {
		t.Error("expected false when past newest entry")
	}
}

func TestHistory_Empty(t *testing.T) {
	h := NewHistory(5)
	if _, ok := h.Older(); ok {
		t.Error("expected false on empty history")
	}
	if _, ok := h.Newer(); ok {
		t.Error("expected false on empty history")
	}
}

func TestHistory_MaxSize(t *testing.T) {
	h := NewHistory(2)
	h.Push("a")
	h.Push("b")
	h.Push("c") // "a" evicted

	older, _ := h.Older()
	if older != "c" {
		t.Errorf("expected 'c', got %q", older)
	}
	older, _ = h.Older()
	if older != "b" {
		t.Errorf("expected 'b', got %q", older)
	}
	// "a" is gone.
	older, _ = h.Older()
	if older != "b" {
		t.Errorf("expected 'b' at boundary, got %q", older)
	}
}

func TestHistory_NoDuplicates(t *testing.T) {
	h := NewHistory(5)
	h.Push("look")
	h.Push("look")
	h.Push("look")

	if len(h.entries) != 1 {
		t.Errorf("expected 1 entry, got %d", len(h.entries))
	}
}

func TestHistory_LastGameSkipsMetaCommands(t *testing.T) {
	h := NewHistory(5)
	if _, ok := h.LastGame(); ok {
		t.Error("nothing to repeat before any game command")
	}

	h.Push("take lamp")
	h.Push("/save slot1")

	last, ok := h.LastGame()
	if !ok || last != "take lamp" {
		t.Errorf("LastGame = %q (ok=%v), meta-commands must not count", last, ok)
	}
}

// testEngine builds a tiny two-room world for model-level tests.
func testEngine(t *testing.T) *engine.Engine {
	t.Helper()
	w := state.NewWorld(types.GameInfo{
		Title: "Test Dungeon", Version: "1.0", Author: "Tester",
		Start: "hall", Intro: "Welcome to the test.",
	})
	w.Rooms["hall"] = &types.Room{
		ID: "hall", Name: "Hall", Description: "A grand hall.",
		Exits: map[string]types.Exit{"north": {To: "garden"}},
	}
	w.Rooms["garden"] = &types.Room{
		ID: "garden", Name: "Garden", Description: "An overgrown garden.",
		Exits: map[string]types.Exit{"south": {To: "hall"}},
	}
	w.Objects["coin"] = &types.Object{
		ID: "coin", Name: "gold coin", Location: "hall",
		Portable: true, Visible: true, Value: 5,
	}
	w.Player.Location = "hall"
	return engine.New(w, 42)
}

func TestReportLines_SkippedMarker(t *testing.T) {
	report := types.ExecutionReport{
		Results: []types.CommandResult{
			{Command: "go nowhere", Output: types.CommandOutput{
				Kind: "error", Lines: []string{"You can't go that way."},
			}},
			{Command: "take coin", Skipped: true},
		},
	}
	lines := reportLines(report)
	if len(lines) != 2 {
		t.Fatalf("lines = %v", lines)
	}
	if lines[0].kind != "error" {
		t.Errorf("kind = %q, want the command output's kind", lines[0].kind)
	}
	if lines[1].text != "(take coin skipped)" {
		t.Errorf("skipped marker = %q", lines[1].text)
	}
}

func TestFormatTrace(t *testing.T) {
	now := time.Now()
	report := types.ExecutionReport{
		Policy: "fail-early", Executed: 1, Failed: 0, Skipped: 1,
		Results: []types.CommandResult{
			{Command: "look", Success: true, Started: now, Ended: now.Add(time.Millisecond)},
			{Command: "take coin", Skipped: true},
		},
	}
	lines := formatTrace(report)
	if len(lines) != 2 {
		t.Fatalf("trace lines = %v", lines)
	}
	if !strings.Contains(lines[0], "fail-early") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[1], `"look"`) {
		t.Errorf("detail = %q", lines[1])
	}
}

func TestHandleMeta_Unknown(t *testing.T) {
	m := New(testEngine(t))
	out, quit := m.handleMeta("/bogus")
	if quit {
		t.Error("unknown meta should not quit")
	}
	if len(out) != 1 || !strings.Contains(out[0], "/bogus") {
		t.Errorf("output = %v", out)
	}
}

func TestHandleMeta_Quit(t *testing.T) {
	m := New(testEngine(t))
	if _, quit := m.handleMeta("/quit"); !quit {
		t.Error("/quit should signal quit")
	}
	if _, quit := m.handleMeta("/exit"); !quit {
		t.Error("/exit should signal quit")
	}
}

func TestHandleMeta_Seed(t *testing.T) {
	m := New(testEngine(t))
	out, _ := m.handleMeta("/seed")
	if len(out) != 1 || !strings.Contains(out[0], "42") {
		t.Errorf("seed output = %v", out)
	}
}

func TestHandleMeta_SaveLoad(t *testing.T) {
	m := New(testEngine(t))
	m.saveDir = t.TempDir()

	m.engine.Execute("take coin")

	out, _ := m.handleMeta("/save slot1")
	if len(out) != 1 || !strings.Contains(out[0], "slot1") {
		t.Fatalf("save output = %v", out)
	}

	// Fresh engine, same save dir.
	m2 := New(testEngine(t))
	m2.saveDir = m.saveDir
	out, _ = m2.handleMeta("/load slot1")
	if len(out) == 0 || !strings.Contains(out[0], "slot1") {
		t.Fatalf("load output = %v", out)
	}
	if len(m2.engine.World.Player.Inventory) != 1 {
		t.Errorf("inventory after load = %v", m2.engine.World.Player.Inventory)
	}
}

func TestHandleMeta_LoadMissing(t *testing.T) {
	m := New(testEngine(t))
	m.saveDir = t.TempDir()
	out, _ := m.handleMeta("/load nope")
	if len(out) != 1 || !strings.Contains(out[0], "Load failed") {
		t.Errorf("output = %v", out)
	}
}

func TestHandleMeta_TraceToggle(t *testing.T) {
	m := New(testEngine(t))
	out, _ := m.handleMeta("/trace")
	if !m.trace || !strings.Contains(out[0], "enabled") {
		t.Errorf("trace on: %v (trace=%v)", out, m.trace)
	}
	out, _ = m.handleMeta("/trace")
	if m.trace || !strings.Contains(out[0], "disabled") {
		t.Errorf("trace off: %v (trace=%v)", out, m.trace)
	}
}

func TestHandleMeta_State(t *testing.T) {
	m := New(testEngine(t))
	m.engine.Execute("take coin")
	out, _ := m.handleMeta("/state")
	joined := strings.Join(out, "\n")
	if !strings.Contains(joined, "Score: 5") || !strings.Contains(joined, "coin") {
		t.Errorf("state output = %v", out)
	}
}
