package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/halvard/dungeon/engine"
	"github.com/halvard/dungeon/engine/state"
	"github.com/halvard/dungeon/types"
)

func testEngine() *engine.Engine {
	w := state.NewWorld(types.GameInfo{
		Title: "Test", Start: "hall",
		Intro: "Welcome to the test hall.",
	})
	w.Rooms["hall"] = &types.Room{
		ID: "hall", Name: "Hall", Description: "A bare hall.",
		Exits: map[string]types.Exit{"north": {To: "study"}},
	}
	w.Rooms["study"] = &types.Room{
		ID: "study", Name: "Study", Description: "Books everywhere.",
		Exits: map[string]types.Exit{"south": {To: "hall"}},
	}
	w.Objects["coin"] = &types.Object{
		ID: "coin", Name: "gold coin", Location: "hall",
		Portable: true, Visible: true,
	}
	return engine.New(w, 1)
}

// runCLI feeds scripted input to a CLI over the test engine and returns
// everything it printed.
func runCLI(t *testing.T, eng *engine.Engine, input string) string {
	t.Helper()
	var out bytes.Buffer
	c := New(eng)
	c.In = strings.NewReader(input)
	c.Out = &out
	c.SaveDir = t.TempDir()
	c.Run()
	return out.String()
}

func TestRun_IntroAndOpeningLook(t *testing.T) {
	output := runCLI(t, testEngine(), "")

	if !strings.Contains(output, "Welcome to the test hall.") {
		t.Error("intro not printed")
	}
	if !strings.Contains(output, "A bare hall.") {
		t.Error("starting room not described")
	}
}

func TestRun_CommandOutput(t *testing.T) {
	output := runCLI(t, testEngine(), "take coin\n")

	if !strings.Contains(output, "Taken.") {
		t.Errorf("take output missing:\n%s", output)
	}
}

func TestRun_QuitStopsLoop(t *testing.T) {
	output := runCLI(t, testEngine(), "/quit\ntake coin\n")

	if !strings.Contains(output, "Goodbye.") {
		t.Error("quit message missing")
	}
	if strings.Contains(output, "Taken.") {
		t.Error("commands after /quit should not run")
	}
}

func TestRun_AgainRepeatsLastCommand(t *testing.T) {
	eng := testEngine()
	output := runCLI(t, eng, "take coin\ndrop coin\ng\n")

	// "g" repeats "drop coin", which fails the second time.
	if !strings.Contains(output, "You don't have that.") {
		t.Errorf("repeat should re-run drop:\n%s", output)
	}
}

func TestRun_AgainWithNoHistory(t *testing.T) {
	output := runCLI(t, testEngine(), "again\n")
	if !strings.Contains(output, "Nothing to repeat.") {
		t.Error("expected repeat warning")
	}
}

func TestRun_CommentsSkipped(t *testing.T) {
	output := runCLI(t, testEngine(), "# this is a script comment\n")
	if strings.Contains(output, "don't understand") {
		t.Error("comment lines should not reach the parser")
	}
}

func TestRun_SaveAndLoad(t *testing.T) {
	eng := testEngine()
	script := strings.Join([]string{
		"take coin",
		"/save slot1",
		"drop coin",
		"/load slot1",
		"inventory",
	}, "\n") + "\n"
	output := runCLI(t, eng, script)

	if !strings.Contains(output, "Game saved to slot1.") {
		t.Fatalf("save message missing:\n%s", output)
	}
	if !strings.Contains(output, "Game loaded from slot1") {
		t.Fatalf("load message missing:\n%s", output)
	}
	// After the load, the coin is carried again.
	idx := strings.LastIndex(output, "You are carrying:")
	if idx < 0 || !strings.Contains(output[idx:], "gold coin") {
		t.Errorf("inventory after load:\n%s", output)
	}
}

func TestRun_LoadMissingSlot(t *testing.T) {
	output := runCLI(t, testEngine(), "/load nope\n")
	if !strings.Contains(output, "Load failed") {
		t.Error("expected load failure message")
	}
}

func TestRun_UnknownMeta(t *testing.T) {
	output := runCLI(t, testEngine(), "/frob\n")
	if !strings.Contains(output, "Unknown command") {
		t.Error("expected unknown meta warning")
	}
}

func TestRun_MultiCommandLine(t *testing.T) {
	output := runCLI(t, testEngine(), "take coin and go north\n")

	if !strings.Contains(output, "Taken.") {
		t.Error("first chained command missing")
	}
	if !strings.Contains(output, "Books everywhere.") {
		t.Errorf("second chained command missing:\n%s", output)
	}
}

func TestRun_EchoInput(t *testing.T) {
	eng := testEngine()
	var out bytes.Buffer
	c := New(eng)
	c.In = strings.NewReader("take coin\n")
	c.Out = &out
	c.SaveDir = t.TempDir()
	c.EchoInput = true
	c.Run()

	if !strings.Contains(out.String(), "take coin") {
		t.Error("echo mode should print the input line")
	}
}
